package api_v1

import (
	"github.com/gin-gonic/gin"
	"github.com/gookit/event"
	"github.com/printdeck/printdeck/internal/api_v1/resp"
	"github.com/printdeck/printdeck/internal/eventType"
)

func init() {
	event.On(eventType.ServerInitializeStart, event.ListenerFunc(func(e event.Event) error {
		r := e.Get("engine").(*gin.Engine)
		LoadBaseRoutes(r)
		return nil
	}), event.Normal+5)
}

func LoadBaseRoutes(r *gin.Engine) {
	r.Use(func(c *gin.Context) {
		if len(c.Request.URL.Path) >= 4 && c.Request.URL.Path[:4] == "/api" {
			c.Header("Cache-Control", "no-store")
		}
		c.Next()
	})

	r.Any("/ping", func(c *gin.Context) {
		c.String(200, "pong")
	})
	r.GET("/api/version", resp.GetVersion)
}
