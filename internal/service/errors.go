package service

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

var (
	ErrValidation        = errors.New("invalid input")      // 400
	ErrNotFound          = errors.New("not found")          // 404
	ErrForbidden         = errors.New("forbidden")          // 403
	ErrEmptyCart         = errors.New("cart is empty")      // 400
	ErrInsufficientStock = errors.New("insufficient stock") // 409
	ErrInternal          = errors.New("internal error")     // 500
)

const (
	KindNotFound          = "not_found"
	KindForbidden         = "forbidden"
	KindEmptyCart         = "empty_cart"
	KindInsufficientStock = "insufficient_stock"
	KindInvalidInput      = "invalid_input"
	KindInternal          = "internal"
)

// Kind names the error class of err for callers that need a stable
// discriminator. Anything unrecognised is internal.
func Kind(err error) string {
	switch {
	case errors.Is(err, ErrNotFound):
		return KindNotFound
	case errors.Is(err, ErrForbidden):
		return KindForbidden
	case errors.Is(err, ErrEmptyCart):
		return KindEmptyCart
	case errors.Is(err, ErrInsufficientStock):
		return KindInsufficientStock
	case errors.Is(err, ErrValidation):
		return KindInvalidInput
	default:
		return KindInternal
	}
}

func storageErr(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrInternal, err)
}

// lookupErr turns a missing row into what and anything else into a storage
// error.
func lookupErr(op string, err error, what string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%s: %w", what, ErrNotFound)
	}
	return storageErr(op, err)
}
