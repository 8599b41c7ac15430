package errors

import "errors"

// Business errors
// Nota: Estes são códigos de erro (message IDs para i18n).
// As traduções devem estar em internal/infrastructure/i18n/locales/*.json
var (
	ErrUserNotFound     = errors.New("error.user_not_found")
	ErrPostNotFound     = errors.New("error.post_not_found")
	ErrCategoryNotFound = errors.New("error.category_not_found")
	ErrCommentNotFound  = errors.New("error.comment_not_found")

	ErrEmailAlreadyExists    = errors.New("error.email_already_exists")
	ErrSlugAlreadyExists     = errors.New("error.slug_already_exists")
	ErrCategoryAlreadyExists = errors.New("error.category_already_exists")

	ErrInvalidCredentials = errors.New("error.invalid_credentials")
	ErrAccountDisabled    = errors.New("error.account_disabled")
	ErrUnauthorized       = errors.New("error.unauthorized")
	ErrForbidden          = errors.New("error.forbidden")
	ErrPostNotPublished   = errors.New("error.post_not_published")

	ErrTwoFactorNotEnabled     = errors.New("error.two_factor_not_enabled")
	ErrTwoFactorAlreadyEnabled = errors.New("error.two_factor_already_enabled")
	ErrTwoFactorNotConfigured  = errors.New("error.two_factor_not_configured")
	ErrInvalidTwoFactorCode    = errors.New("error.invalid_two_factor_code")

	ErrInvalidResetToken = errors.New("error.invalid_reset_token")
	ErrPasswordRequired  = errors.New("error.password_required")
	ErrSelfAction        = errors.New("error.self_action_not_allowed")
)

// Domain errors
var (
	ErrInvalidEmail = errors.New("error.invalid_email")
)

// ProblemType define tipos de problemas (URIs RFC 7807)
// Nota: O domínio base virá de configuração (API_BASE_URL)
const (
	ProblemTypeValidation   = "/problems/validation-error"
	ProblemTypeNotFound     = "/problems/not-found"
	ProblemTypeConflict     = "/problems/conflict"
	ProblemTypeUnauthorized = "/problems/unauthorized"
	ProblemTypeForbidden    = "/problems/forbidden"
	ProblemTypeInternal     = "/problems/internal-error"
	ProblemTypeBadRequest   = "/problems/bad-request"
)
