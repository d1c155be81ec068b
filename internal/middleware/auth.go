package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/BruksfildServices01/barber-booking/internal/config"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
)

const (
	ContextActorID   = "actorID"
	ContextActorRole = "actorRole"
)

// AuthMiddleware só VERIFICA tokens — emissão e sessão vivem fora
// deste serviço. O resultado vira um Actor explícito no contexto da
// requisição; nenhum handler lê estado global de sessão.
func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing_authorization_header"})
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_authorization_header"})
			return
		}

		tokenString := parts[1]

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrTokenMalformed
			}
			return []byte(cfg.JWTSecret), nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_token"})
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_token_claims"})
			return
		}

		sub, _ := claims["sub"].(string)
		role, _ := claims["role"].(string)

		actorID, err := uuid.Parse(sub)
		if err != nil || role == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_token_payload"})
			return
		}

		c.Set(ContextActorID, actorID)
		c.Set(ContextActorRole, role)

		c.Next()
	}
}

// ActorFrom reconstrói o Actor colocado pelo AuthMiddleware.
func ActorFrom(c *gin.Context) domain.Actor {
	id, _ := c.MustGet(ContextActorID).(uuid.UUID)
	role, _ := c.MustGet(ContextActorRole).(string)

	return domain.Actor{
		ID:   id,
		Role: role,
	}
}

// RequireAdmin corta operações de gestão (barbeiros, serviços)
// para quem não é admin.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !ActorFrom(c).IsAdmin() {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "admin_only"})
			return
		}
		c.Next()
	}
}
