package dto

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/rafabene/dashboard-backend/internal/domain/errors"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"post inexistente é 404", errors.ErrPostNotFound, http.StatusNotFound},
		{"rascunho sem permissão é 403", errors.ErrPostNotPublished, http.StatusForbidden},
		{"política negada é 403", errors.ErrForbidden, http.StatusForbidden},
		{"conta desativada é 403", errors.ErrAccountDisabled, http.StatusForbidden},
		{"slug repetido é 409", errors.ErrSlugAlreadyExists, http.StatusConflict},
		{"credenciais inválidas é 401", errors.ErrInvalidCredentials, http.StatusUnauthorized},
		{"token de reset inválido é 400", errors.ErrInvalidResetToken, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, status := classify(tt.err)
			assert.Equal(t, tt.status, status)
		})
	}
}

func TestRespondError_PostNotPublished(t *testing.T) {
	gin.SetMode(gin.TestMode)

	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/posts/abc", nil)

	RespondError(c, errors.ErrPostNotPublished)

	assert.Equal(t, http.StatusForbidden, recorder.Code)
	assert.Contains(t, recorder.Header().Get("Content-Type"), "application/problem+json")
	assert.Contains(t, recorder.Body.String(), `"status":403`)
}
