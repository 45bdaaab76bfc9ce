package kernel

import (
	"fmt"
	"strconv"

	"foodorders/internal/pkg/errs"
)

// ID identifies a menu item or an order. Valid identifiers are positive; the zero
// value means "not assigned".
type ID int64

// NewID validates v and returns it as an ID.
func NewID(v int64) (ID, error) {
	id := ID(v)
	if err := id.Validate(); err != nil {
		return 0, err
	}
	return id, nil
}

// Validate reports whether the identifier is positive.
func (id ID) Validate() error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("id", fmt.Errorf("%d is not greater than 0", int64(id)))
	}
	return nil
}

// IsZero reports whether the identifier has not been assigned.
func (id ID) IsZero() bool {
	return id == 0
}

func (id ID) Int64() int64 {
	return int64(id)
}

func (id ID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

// NextID returns one greater than the largest identifier in ids, or 1 when ids is
// empty. It scans the whole slice; stores are small enough that a running counter
// is not worth the extra state.
func NextID(ids []ID) ID {
	var maxID ID
	for _, id := range ids {
		if id > maxID {
			maxID = id
		}
	}
	return maxID + 1
}
