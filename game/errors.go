package game

import (
    "fmt"
)

type ErrorKind int

const (
    NoneError ErrorKind = iota
    InvalidPhaseError
    SelectionMissingError
    CardTypeMismatchError
    NetworkViolationError
    SlotUnavailableError
    OverbuildDeniedError
    InsufficientFundsError
    ResourceExhaustedError
    InvalidPlayerCountError
)

var ErrorKindNames = map[ErrorKind]string{
    NoneError: "NoneError",
    InvalidPhaseError: "InvalidPhase",
    SelectionMissingError: "SelectionMissing",
    CardTypeMismatchError: "CardTypeMismatch",
    NetworkViolationError: "NetworkViolation",
    SlotUnavailableError: "SlotUnavailable",
    OverbuildDeniedError: "OverbuildDenied",
    InsufficientFundsError: "InsufficientFunds",
    ResourceExhaustedError: "ResourceExhausted",
    InvalidPlayerCountError: "InvalidPlayerCount",
}

// Error is how every rule rejection comes back from the engine.  Kind is
// stable and meant for programmatic handling (bots, tests); Detail is for
// humans and may change wording freely.
type Error struct {
    Kind ErrorKind
    Detail string
}

func (e *Error) Error() string {
    return fmt.Sprintf("%s: %s", ErrorKindNames[e.Kind], e.Detail)
}

func newError(kind ErrorKind, format string, fargs ...interface{}) *Error {
    return &Error{Kind: kind, Detail: fmt.Sprintf(format, fargs...)}
}
