package response

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	domainerrors "rewear.backend/internal/domain/errors"
)

func newTestContext() (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	return c, w
}

func TestSuccess(t *testing.T) {
	c, w := newTestContext()

	Success(c, http.StatusOK, gin.H{"ok": true})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"ok":true`)
}

func TestError_AppError(t *testing.T) {
	c, w := newTestContext()

	Error(c, fmt.Errorf("wrapped: %w", domainerrors.NotFound("missing")))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), domainerrors.CodeNotFound)
	assert.Contains(t, w.Body.String(), `"message":"missing"`)
}

func TestError_Sentinels(t *testing.T) {
	cases := map[error]int{
		domainerrors.ErrNotFound:      http.StatusNotFound,
		domainerrors.ErrAlreadyExists: http.StatusConflict,
		domainerrors.ErrInvalidInput:  http.StatusBadRequest,
		domainerrors.ErrUnauthorized:  http.StatusUnauthorized,
		domainerrors.ErrForbidden:     http.StatusForbidden,
	}
	for err, status := range cases {
		c, w := newTestContext()
		Error(c, err)
		assert.Equal(t, status, w.Code, err.Error())
	}
}

func TestError_GenericError(t *testing.T) {
	c, w := newTestContext()

	Error(c, errors.New("boom"))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), domainerrors.CodeInternalError)
	assert.NotContains(t, w.Body.String(), "boom")
}

func TestErrorWithError(t *testing.T) {
	c, w := newTestContext()

	ErrorWithError(c, http.StatusBadRequest, "ERR_X", "bad")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"code":"ERR_X"`)
}
