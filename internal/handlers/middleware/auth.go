package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/moogar0880/problems"

	"github.com/rafabene/dashboard-backend/internal/domain/entities"
	"github.com/rafabene/dashboard-backend/internal/domain/errors"
	"github.com/rafabene/dashboard-backend/internal/domain/repositories"
	"github.com/rafabene/dashboard-backend/internal/infrastructure/i18n"
	"github.com/rafabene/dashboard-backend/internal/infrastructure/security"
)

const (
	// CurrentUserContextKey é a chave do usuário autenticado no contexto do Gin
	CurrentUserContextKey = "current_user"
	// ClaimsContextKey é a chave das claims do token no contexto do Gin
	ClaimsContextKey = "token_claims"
)

// AuthMiddleware autentica requisições via bearer token
type AuthMiddleware struct {
	tokens   *security.TokenManager
	userRepo repositories.UserRepository
}

// NewAuthMiddleware cria um novo AuthMiddleware
func NewAuthMiddleware(tokens *security.TokenManager, userRepo repositories.UserRepository) *AuthMiddleware {
	return &AuthMiddleware{
		tokens:   tokens,
		userRepo: userRepo,
	}
}

// RequireAuth exige um bearer token verificado. Tokens aguardando o
// segundo fator são rejeitados; use AllowPendingTwoFactor nas rotas que
// concluem o fluxo de dois fatores.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return m.authenticate(false)
}

// AllowPendingTwoFactor autentica aceitando tokens que ainda aguardam o
// segundo fator
func (m *AuthMiddleware) AllowPendingTwoFactor() gin.HandlerFunc {
	return m.authenticate(true)
}

func (m *AuthMiddleware) authenticate(allowPending bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		scheme, token, found := strings.Cut(header, " ")
		if !found || !strings.EqualFold(scheme, "Bearer") || token == "" {
			abortUnauthorized(c)
			return
		}

		claims, err := m.tokens.Parse(token)
		if err != nil {
			abortUnauthorized(c)
			return
		}

		if !allowPending && claims.PendingTwoFactor() {
			abortUnauthorized(c)
			return
		}

		user, err := m.userRepo.FindByEmail(c.Request.Context(), claims.Subject)
		if err != nil {
			abortProblem(c, errors.ProblemTypeInternal, "error.internal.title", "error.internal.detail", http.StatusInternalServerError)
			return
		}
		if user == nil || !user.IsActive {
			abortUnauthorized(c)
			return
		}

		c.Set(CurrentUserContextKey, user)
		c.Set(ClaimsContextKey, claims)
		c.Next()
	}
}

func abortUnauthorized(c *gin.Context) {
	abortProblem(c, errors.ProblemTypeUnauthorized, "error.unauthorized.title", "error.unauthorized.detail", http.StatusUnauthorized)
}

// abortProblem encerra a requisição com uma resposta RFC 7807. O dto não
// pode ser usado aqui (importaria o próprio middleware), então a resposta
// é montada direto.
func abortProblem(c *gin.Context, problemType, titleKey, detailKey string, status int) {
	baseURL := c.GetString("base_url")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}

	c.Header("Content-Type", problems.ProblemMediaType)
	c.AbortWithStatusJSON(status, problems.Problem{
		Type:     baseURL + problemType,
		Title:    translate(c, titleKey),
		Status:   status,
		Detail:   translate(c, detailKey),
		Instance: c.Request.URL.Path,
	})
}

// translate busca a tradução da chave usando o serviço e idioma já
// colocados no contexto pelo middleware de i18n
func translate(c *gin.Context, key string) string {
	value, exists := c.Get(I18nServiceContextKey)
	if !exists {
		return key
	}

	service, ok := value.(*i18n.Service)
	if !ok {
		return key
	}

	lang, _ := c.Get(LanguageContextKey)
	langStr, _ := lang.(string)
	if langStr == "" {
		langStr = service.GetDefaultLanguage()
	}

	return service.T(langStr, key)
}

// CurrentUser retorna o usuário autenticado do contexto da requisição
func CurrentUser(c *gin.Context) *entities.User {
	value, exists := c.Get(CurrentUserContextKey)
	if !exists {
		return nil
	}

	user, ok := value.(*entities.User)
	if !ok {
		return nil
	}
	return user
}

// CurrentClaims retorna as claims do token da requisição
func CurrentClaims(c *gin.Context) *security.Claims {
	value, exists := c.Get(ClaimsContextKey)
	if !exists {
		return nil
	}

	claims, ok := value.(*security.Claims)
	if !ok {
		return nil
	}
	return claims
}
