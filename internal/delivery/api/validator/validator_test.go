package validator

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Email string `json:"email" validate:"required,email"`
	Term  string `query:"q" validate:"max=5"`
	Limit int    `validate:"gte=0"`
}

func TestCustomValidator_ReportsSerializedNames(t *testing.T) {
	err := New().Validate(&sample{Email: "nope", Term: "toolong", Limit: -1})
	require.Error(t, err)

	var fieldErrs validator.ValidationErrors
	require.True(t, errors.As(err, &fieldErrs))

	got := map[string]string{}
	for _, fe := range fieldErrs {
		got[fe.Field()] = fe.Tag()
	}
	assert.Equal(t, map[string]string{"email": "email", "q": "max", "Limit": "gte"}, got)
}

func TestCustomValidator_Valid(t *testing.T) {
	assert.NoError(t, New().Validate(&sample{Email: "ada@example.com"}))
}
