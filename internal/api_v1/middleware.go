package api_v1

import (
	"github.com/gin-gonic/gin"
	"github.com/printdeck/printdeck/internal/api_v1/resp"
	"github.com/printdeck/printdeck/internal/conf"
)

// ApiKeyMiddleware rejects requests without the configured API key. When no
// key is configured the middleware is a no-op.
func ApiKeyMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := conf.Conf.Login.ApiKey
		if key == "" {
			c.Next()
			return
		}
		if c.GetHeader("Authorization") != "Bearer "+key && c.Query("api_key") != key {
			resp.RespondError(c, 401, "Invalid API key.")
			c.Abort()
			return
		}
		c.Next()
	}
}
