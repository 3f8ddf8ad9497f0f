package jsonquery

import (
	"encoding/json"
	"errors"
	"testing"

	pkgerrors "github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestSerializeError(t *testing.T) {
	errWithCode, _ := json.Marshal(NewError("ERROR_CODE", "foo"))
	expected, _ := json.Marshal(map[string]interface{}{
		"extensions": map[string]interface{}{
			"code": "ERROR_CODE",
		},
		"message": "foo",
	})

	assert.Equal(t, string(expected), string(errWithCode))
}

func TestErrorCode(t *testing.T) {
	assert.Equal(t, "INVALID_INPUT", ErrInvalidInput.Code())
	assert.Equal(t, "EMPTY_QUERY", ErrEmptyQuery.Code())
	assert.Equal(t, "", (&Error{Message: "no extensions"}).Code())
}

func TestErrorSentinelsSurviveWrapping(t *testing.T) {
	wrapped := pkgerrors.Wrap(ErrEmptyQuery, "compiling")

	assert.True(t, errors.Is(wrapped, ErrEmptyQuery))
	assert.False(t, errors.Is(wrapped, ErrInvalidInput))
	assert.Equal(t, "compiling: query object has no data", wrapped.Error())
}
