package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/gostonefire/searchtable"
	"github.com/gostonefire/searchtable/crt"
	"github.com/gostonefire/searchtable/model"
)

// CreateRequest - Body of a create table request
type CreateRequest struct {
	Capacity          int    `json:"capacity"`
	KeyLength         int    `json:"keyLength"`
	DataType          string `json:"dataType"`
	AllowDuplicates   bool   `json:"allowDuplicates"`
	HashMethod        string `json:"hashMethod,omitempty"`
	CollisionStrategy string `json:"collisionStrategy,omitempty"`
}

// KeyRequest - Body of an insert request
type KeyRequest struct {
	Key      string `json:"key"`
	Strategy string `json:"strategy,omitempty"`
}

// OperationResponse - Response of every table operation. Steps carry the full probe/comparison
// trace so the visualization layer can replay how the result was reached, and RequestID correlates
// a replayed trace with the server logs.
type OperationResponse struct {
	RequestID string       `json:"requestId"`
	Found     bool         `json:"found"`
	Success   bool         `json:"success"`
	Position  int          `json:"position"`
	Count     int          `json:"count"`
	Keys      []string     `json:"keys,omitempty"`
	Steps     []model.Step `json:"steps,omitempty"`
	Error     string       `json:"error,omitempty"`
}

// handleCreate - POST /table
func (s *Server) handleCreate(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	requestID := uuid.NewString()

	var req CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, requestID, http.StatusBadRequest, err)
		return
	}

	conf := searchtable.Config{
		Capacity:        req.Capacity,
		KeyLength:       req.KeyLength,
		AllowDuplicates: req.AllowDuplicates,
	}

	var err error
	if conf.DataType, err = crt.ParseDataType(req.DataType); err != nil {
		s.writeError(w, requestID, http.StatusBadRequest, err)
		return
	}
	if req.HashMethod != "" {
		if conf.HashMethod, err = crt.ParseHashMethod(req.HashMethod); err != nil {
			s.writeError(w, requestID, http.StatusBadRequest, err)
			return
		}
	}
	if req.CollisionStrategy != "" {
		if conf.CollisionStrategy, err = crt.ParseStrategy(req.CollisionStrategy); err != nil {
			s.writeError(w, requestID, http.StatusBadRequest, err)
			return
		}
	}

	table, err := s.session.Create(conf)
	if err != nil {
		s.writeError(w, requestID, statusOf(err), err)
		return
	}

	s.logger.Info().Str("requestId", requestID).Int("capacity", req.Capacity).Msg("table created")
	s.writeResult(w, requestID, model.Result{Success: true, Position: -1}, table)
}

// handleReset - DELETE /table
func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	requestID := uuid.NewString()
	s.session.Reset()

	s.logger.Info().Str("requestId", requestID).Msg("table reset")
	s.writeResult(w, requestID, model.Result{Success: true, Position: -1}, nil)
}

// handleSnapshot - GET /table
func (s *Server) handleSnapshot(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	requestID := uuid.NewString()

	table, err := s.session.Table()
	if err != nil {
		s.writeError(w, requestID, statusOf(err), err)
		return
	}

	data, err := table.ToJSON()
	if err != nil {
		s.writeError(w, requestID, http.StatusInternalServerError, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(data)
}

// handleLoad - PUT /table
func (s *Server) handleLoad(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	requestID := uuid.NewString()

	data, err := io.ReadAll(r.Body)
	if err != nil {
		s.writeError(w, requestID, http.StatusBadRequest, err)
		return
	}

	table, err := s.session.Load(data, nil)
	if err != nil {
		s.writeError(w, requestID, statusOf(err), err)
		return
	}

	s.logger.Info().Str("requestId", requestID).Int("count", table.Count()).Msg("table loaded from snapshot")
	s.writeResult(w, requestID, model.Result{Success: true, Position: -1}, table)
}

// handleInfo - GET /table/info
func (s *Server) handleInfo(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	requestID := uuid.NewString()

	table, err := s.session.Table()
	if err != nil {
		s.writeError(w, requestID, statusOf(err), err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(table.Info())
}

// handleSort - POST /table/sort
func (s *Server) handleSort(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	requestID := uuid.NewString()

	table, err := s.session.Table()
	if err != nil {
		s.writeError(w, requestID, statusOf(err), err)
		return
	}

	table.Sort()

	s.writeResult(w, requestID, model.Result{Success: true, Position: -1}, table)
}

// handleInsert - POST /table/keys
func (s *Server) handleInsert(w http.ResponseWriter, r *http.Request) {
	s.tableOp(w, r, func(table *searchtable.SearchTable, req KeyRequest) (model.Result, error) {
		return table.Insert(req.Key)
	})
}

// handleSortedInsert - POST /table/keys/sorted
func (s *Server) handleSortedInsert(w http.ResponseWriter, r *http.Request) {
	s.tableOp(w, r, func(table *searchtable.SearchTable, req KeyRequest) (model.Result, error) {
		return table.SortedInsert(req.Key)
	})
}

// handleHashInsert - POST /table/hash/keys
func (s *Server) handleHashInsert(w http.ResponseWriter, r *http.Request) {
	s.tableOp(w, r, func(table *searchtable.SearchTable, req KeyRequest) (model.Result, error) {
		strategy, err := parseStrategy(req.Strategy)
		if err != nil {
			return model.Result{Position: -1}, err
		}
		return table.HashInsert(req.Key, strategy)
	})
}

// handleDelete - DELETE /table/keys/{key}
func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	s.keyOp(w, r, func(table *searchtable.SearchTable, key string) (model.Result, error) {
		return table.Delete(key)
	})
}

// handleHashDelete - DELETE /table/hash/keys/{key}?strategy=
func (s *Server) handleHashDelete(w http.ResponseWriter, r *http.Request) {
	s.keyOp(w, r, func(table *searchtable.SearchTable, key string) (model.Result, error) {
		strategy, err := parseStrategy(r.URL.Query().Get("strategy"))
		if err != nil {
			return model.Result{Position: -1}, err
		}
		return table.HashDelete(key, strategy)
	})
}

// handleSequentialSearch - GET /table/search/sequential/{key}
func (s *Server) handleSequentialSearch(w http.ResponseWriter, r *http.Request) {
	s.keyOp(w, r, func(table *searchtable.SearchTable, key string) (model.Result, error) {
		return table.SequentialSearch(key)
	})
}

// handleBinarySearch - GET /table/search/binary/{key}
func (s *Server) handleBinarySearch(w http.ResponseWriter, r *http.Request) {
	s.keyOp(w, r, func(table *searchtable.SearchTable, key string) (model.Result, error) {
		return table.BinarySearch(key)
	})
}

// handleHashSearch - GET /table/hash/search/{key}?strategy=
func (s *Server) handleHashSearch(w http.ResponseWriter, r *http.Request) {
	s.keyOp(w, r, func(table *searchtable.SearchTable, key string) (model.Result, error) {
		strategy, err := parseStrategy(r.URL.Query().Get("strategy"))
		if err != nil {
			return model.Result{Position: -1}, err
		}
		return table.HashSearch(key, strategy)
	})
}

// tableOp - Runs one body-carried operation against the session's table
func (s *Server) tableOp(w http.ResponseWriter, r *http.Request, op func(*searchtable.SearchTable, KeyRequest) (model.Result, error)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	requestID := uuid.NewString()

	var req KeyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, requestID, http.StatusBadRequest, err)
		return
	}

	table, err := s.session.Table()
	if err != nil {
		s.writeError(w, requestID, statusOf(err), err)
		return
	}

	result, err := op(table, req)
	if err != nil {
		s.writeError(w, requestID, statusOf(err), err)
		return
	}

	s.logger.Debug().Str("requestId", requestID).Int("position", result.Position).Msg("operation done")
	s.writeResult(w, requestID, result, table)
}

// keyOp - Runs one path-carried operation against the session's table
func (s *Server) keyOp(w http.ResponseWriter, r *http.Request, op func(*searchtable.SearchTable, string) (model.Result, error)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	requestID := uuid.NewString()

	table, err := s.session.Table()
	if err != nil {
		s.writeError(w, requestID, statusOf(err), err)
		return
	}

	result, err := op(table, mux.Vars(r)["key"])
	if err != nil {
		s.writeError(w, requestID, statusOf(err), err)
		return
	}

	s.logger.Debug().Str("requestId", requestID).Int("position", result.Position).Msg("operation done")
	s.writeResult(w, requestID, result, table)
}

// writeResult - Writes a successful OperationResponse, including the current slot contents so the
// visualization layer can render the array without a second round trip
func (s *Server) writeResult(w http.ResponseWriter, requestID string, result model.Result, table *searchtable.SearchTable) {
	resp := OperationResponse{
		RequestID: requestID,
		Found:     result.Found,
		Success:   result.Success,
		Position:  result.Position,
		Steps:     result.Steps,
	}
	if table != nil {
		resp.Count = table.Count()
		resp.Keys = table.Keys()
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resp)
}

// writeError - Writes a failed OperationResponse with the error message surfaced verbatim
func (s *Server) writeError(w http.ResponseWriter, requestID string, status int, err error) {
	s.logger.Warn().Str("requestId", requestID).Err(err).Msg("operation failed")

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(OperationResponse{
		RequestID: requestID,
		Position:  -1,
		Error:     err.Error(),
	})
}

// parseStrategy - Maps an optional strategy name to its crt constant, empty means the table default
func parseStrategy(name string) (strategy int, err error) {
	if name == "" {
		strategy = crt.DefaultStrategy
		return
	}

	strategy, err = crt.ParseStrategy(name)

	return
}

// statusOf - Maps the engine error taxonomy to HTTP statuses. Validation problems are the
// caller's input, state and capacity problems are conflicts with the current table state.
func statusOf(err error) int {
	switch {
	case errors.Is(err, crt.EmptyKey{}),
		errors.Is(err, crt.InvalidKey{}),
		errors.Is(err, crt.KeyTooLong{}),
		errors.Is(err, crt.WrongKeyLength{}),
		errors.Is(err, crt.DuplicateKey{}):
		return http.StatusUnprocessableEntity
	case errors.Is(err, crt.TableFull{}),
		errors.Is(err, crt.ProbingExhausted{}),
		errors.Is(err, crt.NotCreated{}),
		errors.Is(err, crt.AlreadyCreated{}):
		return http.StatusConflict
	default:
		return http.StatusBadRequest
	}
}
