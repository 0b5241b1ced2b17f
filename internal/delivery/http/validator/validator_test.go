package validator

import (
	"testing"

	domainerrors "mahalla/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Mode     string `json:"mode" validate:"required,oneof=quick custom"`
	Priority int    `json:"priority" validate:"omitempty,min=1,max=3"`
}

func TestCustomValidator_Validate(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(&sample{Mode: "quick"}))
	assert.NoError(t, v.Validate(&sample{Mode: "custom", Priority: 3}))

	err := v.Validate(&sample{Mode: "bulk", Priority: 5})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	appErr, ok := err.(domainerrors.AppError)
	require.True(t, ok)
	assert.Equal(t, "mode: oneof=quick custom; priority: max=3", appErr.Details())
}
