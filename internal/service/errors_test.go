package service

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestKind(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{fmt.Errorf("order x: %w", ErrNotFound), KindNotFound},
		{fmt.Errorf("order x: %w", ErrForbidden), KindForbidden},
		{ErrEmptyCart, KindEmptyCart},
		{fmt.Errorf("hat: %w", ErrInsufficientStock), KindInsufficientStock},
		{fmt.Errorf("city: %w", ErrValidation), KindInvalidInput},
		{storageErr("op", errors.New("disk on fire")), KindInternal},
		{errors.New("anything else"), KindInternal},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Kind(tt.err), tt.err.Error())
	}
}

func TestLookupErr(t *testing.T) {
	err := lookupErr("get", gorm.ErrRecordNotFound, "cart")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NotErrorIs(t, err, gorm.ErrRecordNotFound)

	cause := errors.New("conn reset")
	err = lookupErr("get", cause, "cart")
	assert.ErrorIs(t, err, ErrInternal)
	assert.ErrorIs(t, err, cause)
}
