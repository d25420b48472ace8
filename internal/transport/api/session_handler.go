package api

import (
	"net/http"
	"time"

	"github.com/fsdevblog/orderflow/internal/domain"
	"github.com/fsdevblog/orderflow/internal/transport/api/tokens"
	"github.com/gin-gonic/gin"
)

type SessionHandler struct {
	provider  OperationsProvider
	jwtSecret []byte
	tokenTTL  time.Duration
}

func NewSessionHandler(provider OperationsProvider, jwtSecret []byte, tokenTTL time.Duration) *SessionHandler {
	return &SessionHandler{
		provider:  provider,
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
	}
}

type SessionParams struct {
	Email    string `binding:"required,email,max=255" json:"email"`
	Password string `binding:"required,max=72"        json:"password"`
	Role     string `binding:"omitempty,role"         json:"role"`
}

type UserResponse struct {
	ID           int64       `json:"id"`
	Name         string      `json:"name"`
	Email        string      `json:"email"`
	Role         domain.Role `json:"role"`
	LoyaltyLevel int         `json:"loyalty_level,omitempty"`
}

// Create POST RouteGroup + SessionRoute. Проверяет email и пароль и выдает токен с id и ролью пользователя.
// Переданная role должна совпадать с ролью пользователя.
func (h *SessionHandler) Create(c *gin.Context) {
	var params SessionParams
	if !bindJSON(c, &params) {
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	user, err := h.provider.Authenticate(ctx, params.Email, params.Password)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	if params.Role != "" && domain.Role(params.Role) != user.Role {
		abortWithDomainError(c, domain.NewForbiddenError(user.Role, domain.Role(params.Role)))
		return
	}

	token, err := tokens.GenerateUserJWT(user.ID, user.Role, h.tokenTTL, h.jwtSecret)
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	c.Header("Authorization", "Bearer "+token)
	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user": UserResponse{
			ID:           user.ID,
			Name:         user.Name,
			Email:        user.Email,
			Role:         user.Role,
			LoyaltyLevel: user.LoyaltyLevel,
		},
	})
}
