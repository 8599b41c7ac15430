package dto

import (
	errs "errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/moogar0880/problems"

	"github.com/rafabene/dashboard-backend/internal/domain/errors"
)

// ErrorResponse segue RFC 7807 (Problem Details for HTTP APIs)
type ErrorResponse struct {
	problems.Problem
	Errors []ValidationError `json:"errors,omitempty"`
}

// ValidationError representa um erro de validação de campo
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Tag     string `json:"tag,omitempty"`
	Value   string `json:"value,omitempty"`
}

// NewErrorResponseI18n cria uma resposta de erro RFC 7807 usando i18n
func NewErrorResponseI18n(c *gin.Context, problemType, titleKey, detailKey string, status int, params ...map[string]interface{}) ErrorResponse {
	baseURL := c.GetString("base_url")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}

	return ErrorResponse{
		Problem: problems.Problem{
			Type:     baseURL + problemType,
			Title:    T(c, titleKey, params...),
			Status:   status,
			Detail:   T(c, detailKey, params...),
			Instance: c.Request.URL.Path,
		},
	}
}

// RespondProblem escreve a resposta de erro com o media type RFC 7807
func RespondProblem(c *gin.Context, response ErrorResponse) {
	c.Header("Content-Type", problems.ProblemMediaType)
	c.JSON(response.Status, response)
}

// RespondValidationError responde 400 com os erros de campo extraídos do
// binding. Erros que não são de validação viram uma resposta sem detalhes
// de campo.
func RespondValidationError(c *gin.Context, err error) {
	response := NewErrorResponseI18n(
		c,
		errors.ProblemTypeValidation,
		"error.validation.title",
		"error.validation.detail",
		http.StatusBadRequest,
	)

	var fieldErrors validator.ValidationErrors
	if errs.As(err, &fieldErrors) {
		for _, fe := range fieldErrors {
			response.Errors = append(response.Errors, ValidationError{
				Field:   fe.Field(),
				Message: T(c, "validation."+fe.Tag(), map[string]interface{}{"Field": fe.Field(), "Param": fe.Param()}),
				Tag:     fe.Tag(),
				Value:   fe.Param(),
			})
		}
	}

	RespondProblem(c, response)
}

// RespondError traduz um erro de domínio para a resposta HTTP
// correspondente. Erros desconhecidos viram 500 sem vazar detalhes.
func RespondError(c *gin.Context, err error) {
	problemType, titleKey, status := classify(err)

	detailKey := err.Error()
	if status == http.StatusInternalServerError {
		detailKey = "error.internal.detail"
	}

	RespondProblem(c, NewErrorResponseI18n(c, problemType, titleKey, detailKey, status))
}

// classify mapeia os erros sentinela do domínio para tipo de problema,
// chave de título e status HTTP
func classify(err error) (problemType, titleKey string, status int) {
	switch {
	case errs.Is(err, errors.ErrUserNotFound),
		errs.Is(err, errors.ErrPostNotFound),
		errs.Is(err, errors.ErrCategoryNotFound),
		errs.Is(err, errors.ErrCommentNotFound):
		return errors.ProblemTypeNotFound, "error.not_found.title", http.StatusNotFound

	case errs.Is(err, errors.ErrEmailAlreadyExists),
		errs.Is(err, errors.ErrSlugAlreadyExists),
		errs.Is(err, errors.ErrCategoryAlreadyExists):
		return errors.ProblemTypeConflict, "error.conflict.title", http.StatusConflict

	case errs.Is(err, errors.ErrInvalidCredentials),
		errs.Is(err, errors.ErrUnauthorized),
		errs.Is(err, errors.ErrInvalidTwoFactorCode):
		return errors.ProblemTypeUnauthorized, "error.unauthorized.title", http.StatusUnauthorized

	case errs.Is(err, errors.ErrForbidden),
		errs.Is(err, errors.ErrPostNotPublished),
		errs.Is(err, errors.ErrAccountDisabled):
		return errors.ProblemTypeForbidden, "error.forbidden.title", http.StatusForbidden

	case errs.Is(err, errors.ErrTwoFactorNotEnabled),
		errs.Is(err, errors.ErrTwoFactorAlreadyEnabled),
		errs.Is(err, errors.ErrTwoFactorNotConfigured),
		errs.Is(err, errors.ErrInvalidResetToken),
		errs.Is(err, errors.ErrPasswordRequired),
		errs.Is(err, errors.ErrSelfAction),
		errs.Is(err, errors.ErrInvalidEmail):
		return errors.ProblemTypeBadRequest, "error.bad_request.title", http.StatusBadRequest

	default:
		return errors.ProblemTypeInternal, "error.internal.title", http.StatusInternalServerError
	}
}
