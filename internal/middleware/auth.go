package middleware

import (
	"net/http"
	"strings"

	"github.com/embarkhq/embark/config"
	"github.com/embarkhq/embark/internal/dto"
	"github.com/embarkhq/embark/internal/model"
	"github.com/embarkhq/embark/internal/repository"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"github.com/rs/zerolog/log"
)

// CurrentUserKey is where AuthRequired stores the authenticated *model.User.
const CurrentUserKey = "currentUser"

// AuthRequired validates the bearer token and loads the authenticated user
// into the request context.
func AuthRequired(cfg *config.Config, userRepo repository.UserRepository) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		userID, err := extractUserID(ctx, cfg)
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Unauthorized"})
			return
		}

		user, err := userRepo.FindByID(userID)
		if err != nil {
			log.Warn().Err(err).Uint("userID", userID).Msg("AuthRequired: token references unknown user")
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Unauthorized"})
			return
		}

		ctx.Set(CurrentUserKey, user)
		ctx.Next()
	}
}

// AdminRequired runs after AuthRequired and rejects non-admin callers.
func AdminRequired() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		user := CurrentUser(ctx)
		if user == nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Unauthorized"})
			return
		}
		if !user.IsAdmin() {
			ctx.AbortWithStatusJSON(http.StatusForbidden, dto.ErrorResponse{Message: "Forbidden - Admin access required"})
			return
		}
		ctx.Next()
	}
}

// CurrentUser returns the authenticated user set by AuthRequired, or nil.
func CurrentUser(ctx *gin.Context) *model.User {
	value, ok := ctx.Get(CurrentUserKey)
	if !ok {
		return nil
	}
	user, ok := value.(*model.User)
	if !ok {
		return nil
	}
	return user
}

func extractUserID(ctx *gin.Context, cfg *config.Config) (uint, error) {
	tokenString := ctx.GetHeader("Authorization")
	if tokenString == "" {
		return 0, jwt.ErrTokenMalformed
	}
	tokenString = strings.TrimPrefix(tokenString, "Bearer ")

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(cfg.JWTSecret), nil
	})
	if err != nil {
		return 0, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return 0, jwt.ErrTokenInvalidClaims
	}

	userIDFloat, ok := claims["user_id"].(float64)
	if !ok {
		return 0, jwt.ErrTokenInvalidClaims
	}
	return uint(userIDFloat), nil
}
