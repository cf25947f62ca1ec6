package collections

import "github.com/pkg/errors"

var (
	ErrValueExisted    = errors.New("value existed")
	ErrValueNotExisted = errors.New("value not existed")
	ErrEmpty           = errors.New("collection is empty")
	ErrNilKey          = errors.New("nil key")
	ErrNilValue        = errors.New("nil value")

	ErrInvalidTableSize = errors.New("invalid table size")
	ErrNilSource        = errors.New("nil transfer source")
	ErrSelfTransfer     = errors.New("transfer from self")
	ErrIncompatibleType = errors.New("incompatible transfer source type")

	ErrNoSuchElement          = errors.New("no more elements")
	ErrUnsupportedOperation   = errors.New("unsupported operation")
	ErrConcurrentModification = errors.New("collection modified during iteration")
)
