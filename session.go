package searchtable

import (
	"github.com/gostonefire/searchtable/crt"
	hashfunc "github.com/gostonefire/searchtable/interfaces"
)

// Session - Holds the create/reset lifecycle of one search table. A session starts out uncreated,
// a table is created or loaded into it exactly once, and Reset returns it to the uncreated state.
// Operating on an uncreated session fails with crt.NotCreated, creating over an existing table
// fails with crt.AlreadyCreated.
type Session struct {
	table *SearchTable
}

// NewSession - Returns a pointer to a new, uncreated Session
func NewSession() *Session {
	return &Session{}
}

// Create - Creates a new search table in the session.
//   - conf is the Config struct with capacity, key length, data type and optional hash settings
//
// It returns:
//   - table is a pointer to the created SearchTable struct
//   - err is of type crt.AlreadyCreated if the session already holds a table, or a configuration
//     error from New
func (s *Session) Create(conf Config) (table *SearchTable, err error) {
	if s.table != nil {
		err = crt.AlreadyCreated{}
		return
	}

	table, err = New(conf)
	if err != nil {
		return
	}

	s.table = table

	return
}

// Load - Restores a search table from a JSON snapshot into the session.
//   - data is a snapshot produced by SearchTable.ToJSON
//   - hashAlgorithm is an optional custom slot selection algorithm, nil selects the built-in one
//
// It returns:
//   - table is a pointer to the restored SearchTable struct
//   - err is of type crt.AlreadyCreated if the session already holds a table, or an error from FromJSON
func (s *Session) Load(data []byte, hashAlgorithm hashfunc.HashAlgorithm) (table *SearchTable, err error) {
	if s.table != nil {
		err = crt.AlreadyCreated{}
		return
	}

	table, err = FromJSON(data, hashAlgorithm)
	if err != nil {
		return
	}

	s.table = table

	return
}

// Table - Returns the session's table, or an error of type crt.NotCreated if none exists
func (s *Session) Table() (table *SearchTable, err error) {
	if s.table == nil {
		err = crt.NotCreated{}
		return
	}

	table = s.table

	return
}

// Reset - Returns the session to the uncreated state, discarding any existing table
func (s *Session) Reset() {
	s.table = nil
}
