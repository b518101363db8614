package middleware

import (
	"strings"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/gofiber/fiber/v3"

	"arts_crm/internal/common"
	"arts_crm/internal/global"
	"arts_crm/internal/logger"
	"arts_crm/internal/utility"
)

// tokenCache cache kết quả parse token để không phải verify chữ ký trên mỗi request.
// TTL 5 phút, ngắn hơn nhiều so với hạn token nên không giữ token đã hết hạn quá lâu.
var tokenCache = utility.NewCache(5*time.Minute, 10*time.Minute)

// AuthMiddleware xác thực JWT bearer token và lưu user_id vào request context.
// Token được truyền qua header Authorization: Bearer <token>.
func AuthMiddleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			logger.WithRequest(c).Warn("Request thiếu header Authorization")
			HandleErrorResponse(c, common.ErrTokenMissing)
			return nil
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
			logger.WithRequest(c).Warn("Header Authorization không đúng định dạng Bearer")
			HandleErrorResponse(c, common.ErrTokenInvalid)
			return nil
		}
		tokenStr := parts[1]

		// Thử lấy từ cache trước
		if cached, ok := tokenCache.Get(tokenStr); ok {
			if userID, ok := cached.(string); ok && userID != "" {
				c.Locals("user_id", userID)
				return c.Next()
			}
		}

		claims := &jwt.StandardClaims{}
		token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, common.ErrTokenInvalid
			}
			return []byte(global.MongoDB_ServerConfig.JwtSecret), nil
		})
		if err != nil {
			if vErr, ok := err.(*jwt.ValidationError); ok && vErr.Errors&jwt.ValidationErrorExpired != 0 {
				logger.WithRequest(c).Warn("Token đã hết hạn")
				HandleErrorResponse(c, common.ErrTokenExpired)
				return nil
			}
			logger.WithRequest(c).WithError(err).Warn("Token không hợp lệ")
			HandleErrorResponse(c, common.ErrTokenInvalid)
			return nil
		}
		if !token.Valid || claims.Subject == "" {
			logger.WithRequest(c).Warn("Token không hợp lệ hoặc thiếu subject")
			HandleErrorResponse(c, common.ErrTokenInvalid)
			return nil
		}

		tokenCache.Set(tokenStr, claims.Subject)
		c.Locals("user_id", claims.Subject)
		return c.Next()
	}
}
