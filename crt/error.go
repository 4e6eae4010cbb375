package crt

// EmptyKey - Custom error to inform that an empty or blank key was given
type EmptyKey struct {
	msg string
}

// Error - Used to notify that an empty or blank key was given
func (E EmptyKey) Error() string {
	if E.msg == "" {
		return "key is empty"
	}
	return E.msg
}

// InvalidKey - Custom error to inform that a key doesn't conform to the grammar of the configured data type
type InvalidKey struct {
	msg string
}

// Error - Used to notify that a key doesn't conform to the configured data type
func (E InvalidKey) Error() string {
	if E.msg == "" {
		return "key doesn't conform to the configured data type"
	}
	return E.msg
}

// KeyTooLong - Custom error to inform that a numeric key has more digits than the configured key length
type KeyTooLong struct {
	msg string
}

// Error - Used to notify that a numeric key is too long
func (E KeyTooLong) Error() string {
	if E.msg == "" {
		return "key is longer than the configured key length"
	}
	return E.msg
}

// WrongKeyLength - Custom error to inform that a non-numeric key doesn't match the configured key length
type WrongKeyLength struct {
	msg string
}

// Error - Used to notify that a key doesn't match the configured key length
func (E WrongKeyLength) Error() string {
	if E.msg == "" {
		return "key doesn't match the configured key length"
	}
	return E.msg
}

// DuplicateKey - Custom error to inform that a key already exists and duplicates are not allowed
type DuplicateKey struct {
	msg string
}

// Error - Used to notify that a key already exists
func (E DuplicateKey) Error() string {
	if E.msg == "" {
		return "key already exists"
	}
	return E.msg
}

// TableFull - Custom error to inform that the table is full and can't take more keys
type TableFull struct {
	msg string
}

// Error - Used to notify that the table is full
func (E TableFull) Error() string {
	if E.msg == "" {
		return "table full"
	}
	return E.msg
}

// ProbingExhausted - Custom error to inform that a probe sequence ran out of iterations without finding a free slot
type ProbingExhausted struct {
	msg string
}

// Error - Used to notify that a probe sequence was exhausted
func (P ProbingExhausted) Error() string {
	if P.msg == "" {
		return "probing algorithm exhausted"
	}
	return P.msg
}

// NotCreated - Custom error to inform that no search table has been created yet
type NotCreated struct {
	msg string
}

// Error - Used to notify that no search table has been created
func (E NotCreated) Error() string {
	if E.msg == "" {
		return "no search table has been created"
	}
	return E.msg
}

// AlreadyCreated - Custom error to inform that a search table already exists
type AlreadyCreated struct {
	msg string
}

// Error - Used to notify that a search table already exists
func (E AlreadyCreated) Error() string {
	if E.msg == "" {
		return "a search table already exists"
	}
	return E.msg
}
