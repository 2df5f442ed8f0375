package domain

import "errors"

// ErrorKind classifies a failure; only used to pick the HTTP status
type ErrorKind int

const (
	KindInvalid ErrorKind = iota
	KindNotFound
	KindConflict
	KindState
)

// Error is the single error type of SAGA operations.
// The message reads "Erro <operacao>: <motivo>."
type Error struct {
	Op     string
	Reason string
	Kind   ErrorKind
}

func (e *Error) Error() string {
	return "Erro " + e.Op + ": " + e.Reason + "."
}

func Invalid(op, reason string) error {
	return &Error{Op: op, Reason: reason, Kind: KindInvalid}
}

func NotFound(op, reason string) error {
	return &Error{Op: op, Reason: reason, Kind: KindNotFound}
}

func Conflict(op, reason string) error {
	return &Error{Op: op, Reason: reason, Kind: KindConflict}
}

func State(op, reason string) error {
	return &Error{Op: op, Reason: reason, Kind: KindState}
}

// KindOf returns err's kind, and false when err is not an *Error
func KindOf(err error) (ErrorKind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}
