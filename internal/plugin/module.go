package plugin

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gookit/event"
	"github.com/printdeck/printdeck/internal/api_v1"
	"github.com/printdeck/printdeck/internal/api_v1/resp"
	"github.com/printdeck/printdeck/internal/conf"
	"github.com/printdeck/printdeck/internal/eventType"
	"go.uber.org/fx"
)

// FxModule provides the plugin loader, discovery and their API routes.
func FxModule() fx.Option {
	return fx.Options(
		fx.Provide(NewLoader),
		fx.Provide(NewDiscovery),
		fx.Invoke(registerPluginRoutes),
		fx.Invoke(registerDiscoveryHooks),
	)
}

func registerPluginRoutes(l *Loader, d *Discovery) {
	event.On(eventType.ServerInitializeStart, event.ListenerFunc(func(e event.Event) error {
		loadRoutes(e.Get("engine").(*gin.Engine), l, d)
		return nil
	}))
}

func loadRoutes(r *gin.Engine, l *Loader, d *Discovery) {
	r.GET("/api/plugins", func(c *gin.Context) {
		resp.RespondSuccess(c, listPlugins(d))
	})
	r.POST("/api/plugins/load", api_v1.ApiKeyMiddleware(), func(c *gin.Context) {
		loadPlugins(c, l, d)
	})
}

func registerDiscoveryHooks(lc fx.Lifecycle, d *Discovery, _cfg *conf.Config) {
	// _cfg forces config loading before the first scan.
	lc.Append(fx.Hook{
		OnStart: func(_ctx context.Context) error {
			d.Scan()
			event.On(eventType.SchedulerEvery5Minutes, event.ListenerFunc(func(e event.Event) error {
				if conf.Conf.Plugins.AutoDiscover {
					d.Scan()
				}
				return nil
			}))
			return nil
		},
	})
}

// listPlugins merges the built-in registry with the plugin directory scan.
// Built-ins are always valid; they ship with the bundle they match.
func listPlugins(d *Discovery) []Listing {
	var listings []Listing
	for _, p := range Builtins() {
		listings = append(listings, Listing{Manifest: p.Manifest, Builtin: true, Valid: true})
	}
	return append(listings, d.Scan()...)
}

func loadPlugins(c *gin.Context, l *Loader, d *Discovery) {
	var req struct {
		Id []string `json:"id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.RespondError(c, http.StatusBadRequest, "Invalid or missing plugin ids.")
		return
	}

	results := make(map[string]any, len(req.Id))
	for _, id := range req.Id {
		mod, err := loadOne(c.Request.Context(), l, d, id)
		if err != nil {
			slog.Warn("Plugin load failed", slog.String("id", id), slog.Any("error", err))
			results[id] = gin.H{"loaded": false, "error": err.Error()}
			continue
		}
		results[id] = gin.H{"loaded": true, "entry": mod.Entry}
	}
	resp.RespondSuccess(c, results)
}

func loadOne(ctx context.Context, l *Loader, d *Discovery, id string) (*Module, error) {
	p := FindBuiltin(id)
	if p == nil {
		var err error
		if p, err = d.Find(id); err != nil {
			return nil, err
		}
	}
	return l.Load(ctx, p)
}
