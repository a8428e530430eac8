package validation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Email  string `json:"email" validate:"required,email"`
	Name   string `json:"name,omitempty" validate:"notblank"`
	Rating int    `json:"rating" validate:"gte=1,lte=5"`
	Hidden string `json:"-" validate:"required"`
}

func TestValidator_Valid(t *testing.T) {
	v := New()
	err := v.Validate(sample{Email: "a@b.c", Name: "ana", Rating: 3, Hidden: "x"})
	assert.NoError(t, err)
}

func TestValidator_FieldNames(t *testing.T) {
	v := New()
	err := v.Validate(sample{Email: "nope", Name: "   ", Rating: 9})
	require.Error(t, err)

	var fe *FieldsError
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, map[string]string{
		"email":  "must be a valid email address",
		"name":   "is required",
		"rating": "must be less than or equal to 5",
		"Hidden": "is required",
	}, fe.Fields)
	assert.Contains(t, err.Error(), "email must be a valid email address")
}
