package ai

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusError(t *testing.T) {
	err := fmt.Errorf("list models: %w", &StatusError{Code: 401, Message: "invalid api key"})

	assert.ErrorIs(t, err, ErrUnexpectedStatus)
	assert.Equal(t, "list models: unexpected status from proxy: 401 invalid api key", err.Error())

	var se *StatusError
	assert.True(t, errors.As(err, &se))
	assert.Equal(t, 401, se.Code)

	tests := []struct {
		code      int
		temporary bool
	}{
		{400, false},
		{401, false},
		{403, false},
		{404, false},
		{408, true},
		{429, true},
		{500, true},
		{502, true},
		{503, true},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.code), func(t *testing.T) {
			assert.Equal(t, tt.temporary, (&StatusError{Code: tt.code}).Temporary())
		})
	}
}
