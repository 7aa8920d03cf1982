package hashmap

import (
	"github.com/pkg/errors"
)

var (
	// ErrInvalidKey is returned when an empty key is stored.
	ErrInvalidKey = errors.New("hashmap: key must be a non-empty string")
	// ErrOutOfRange is returned when a bucket index falls outside the
	// bucket array. The hash function never produces one; seeing it means
	// the map is corrupted.
	ErrOutOfRange = errors.New("hashmap: bucket index out of range")
	// ErrInvalidLoadFactor is returned by SetLoadFactor for values
	// outside (0, 1].
	ErrInvalidLoadFactor = errors.New("hashmap: load factor must be in (0, 1]")
	// ErrIndexOutOfRange is returned by sequence operations addressing a
	// position that does not exist.
	ErrIndexOutOfRange = errors.New("hashmap: sequence index out of range")
)

func indexError(pos, size int) error {
	return errors.Wrapf(ErrIndexOutOfRange, "position %d, size %d", pos, size)
}
