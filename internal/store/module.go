package store

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/gookit/event"
	"github.com/printdeck/printdeck/internal/api_v1/resp"
	"github.com/printdeck/printdeck/internal/eventType"
	"go.uber.org/fx"
)

// FxModule provides the UI injection store and its dashboard-facing routes.
func FxModule() fx.Option {
	return fx.Options(
		fx.Provide(NewHub),
		fx.Provide(NewStore),
		fx.Invoke(registerStoreRoutes),
	)
}

func registerStoreRoutes(lc fx.Lifecycle, s *Store, hub *Hub) {
	event.On(eventType.ServerInitializeStart, event.ListenerFunc(func(e event.Event) error {
		r := e.Get("engine").(*gin.Engine)
		r.GET("/api/plugins/ui", func(c *gin.Context) {
			resp.RespondSuccess(c, s.Snapshot())
		})
		r.GET("/api/plugins/ws", hub.Serve)
		return nil
	}))

	lc.Append(fx.Hook{OnStop: func(_ctx context.Context) error {
		hub.Close()
		return nil
	}})
}
