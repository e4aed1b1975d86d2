package errs

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetErrorStatusCode(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, GetErrorStatusCode(ErrMissingField))
	assert.Equal(t, http.StatusBadRequest, GetErrorStatusCode(ErrImageCount))
	assert.Equal(t, http.StatusBadRequest, GetErrorStatusCode(ErrInvalidID))
	assert.Equal(t, http.StatusBadRequest, GetErrorStatusCode(ErrInvalidStatus))
	assert.Equal(t, http.StatusNotFound, GetErrorStatusCode(ErrNotFound))

	// Anything unmapped surfaces as an internal error.
	assert.Equal(t, http.StatusInternalServerError, GetErrorStatusCode(errors.New("boom")))
}
