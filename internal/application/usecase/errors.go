package usecase

import (
	"errors"
)

// Kind classifies the failures this layer surfaces to callers.
type Kind int

const (
	// KindUnclassified covers any error not produced by the use cases themselves.
	KindUnclassified Kind = iota
	KindValidation
	KindRetrieval
	KindComputation
	KindPersistence
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindRetrieval:
		return "retrieval"
	case KindComputation:
		return "computation"
	case KindPersistence:
		return "persistence"
	default:
		return "unclassified"
	}
}

// Fixed, caller-facing messages per kind.
const (
	MsgTraceIDNullOrEmpty = "TraceId must not be null or empty"
	MsgRetrievalFailed    = "Error retrieving time deposit accounts"
	MsgComputationFailed  = "Error computing time deposit interest and or balances"
	MsgPersistenceFailed  = "Error updating time deposit accounts in repository"
)

// Error is a classified use case failure. The underlying cause is logged where it happens
// and is not wrapped; callers see only Kind and Message.
type Error struct {
	Message string
	Kind    Kind
}

func (e *Error) Error() string {
	return e.Message
}

var (
	ErrInvalidTraceID    = &Error{Kind: KindValidation, Message: MsgTraceIDNullOrEmpty}
	ErrRetrievalFailed   = &Error{Kind: KindRetrieval, Message: MsgRetrievalFailed}
	ErrComputationFailed = &Error{Kind: KindComputation, Message: MsgComputationFailed}
	ErrPersistenceFailed = &Error{Kind: KindPersistence, Message: MsgPersistenceFailed}
)

// KindOf returns the classification of err, or KindUnclassified if err was not produced by this package.
func KindOf(err error) Kind {
	var ucErr *Error
	if errors.As(err, &ucErr) {
		return ucErr.Kind
	}
	return KindUnclassified
}
