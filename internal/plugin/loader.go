package plugin

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/dop251/goja"
	"github.com/gookit/event"
	"github.com/patrickmn/go-cache"
	"github.com/printdeck/printdeck/internal/conf"
	"github.com/printdeck/printdeck/internal/eventType"
	"github.com/printdeck/printdeck/internal/jsruntime"
	"github.com/printdeck/printdeck/internal/store"
	"github.com/printdeck/printdeck/internal/version"
)

// ErrExternalInDevMode is returned when an external plugin is loaded while
// the dashboard runs a development build. External bundles are built against
// release artifacts and cannot resolve against a dev bundle.
var ErrExternalInDevMode = errors.New("cannot load external plugins in dev mode")

// Loader resolves plugin UI resources. Built-in plugins delegate to their
// embedded loader; external plugins are executed from the plugin directory in
// a dedicated JS runtime.
type Loader struct {
	pluginsDir string
	dev        bool
	store      *store.Store
	kv         *jsruntime.RamKv

	// loaded caches resolved modules by plugin id so repeated loads return
	// the same handle.
	loaded *cache.Cache
}

func NewLoader(cfg *conf.Config, s *store.Store) *Loader {
	return &Loader{
		pluginsDir: cfg.Plugins.Dir,
		dev:        version.IsDevelopment(),
		store:      s,
		kv:         jsruntime.NewRamKv(),
		loaded:     cache.New(cache.NoExpiration, cache.NoExpiration),
	}
}

// Load resolves the plugin's resources. Errors for external plugins in dev
// mode are reported synchronously, before any file access happens.
func (l *Loader) Load(ctx context.Context, p *Plugin) (*Module, error) {
	if p.IsBuiltin() {
		return p.LoadDwcResources(ctx)
	}

	if l.dev {
		return nil, ErrExternalInDevMode
	}

	if cached, ok := l.loaded.Get(p.Id); ok {
		return cached.(*Module), nil
	}

	mod, err := l.loadExternal(ctx, p)
	if err != nil {
		event.Async(eventType.PluginLoadFailed, event.M{"id": p.Id, "error": err.Error()})
		return nil, err
	}

	l.loaded.Set(p.Id, mod, cache.NoExpiration)
	event.Async(eventType.PluginLoaded, event.M{"id": p.Id})
	slog.Info("Loaded external plugin", slog.String("id", p.Id), slog.String("version", p.Version))
	return mod, nil
}

func (l *Loader) loadExternal(ctx context.Context, p *Plugin) (*Module, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entry := filepath.Join(l.pluginsDir, p.Id, "dwc-plugin.js")
	script, err := os.ReadFile(entry)
	if err != nil {
		return nil, fmt.Errorf("failed to read plugin bundle: %w", err)
	}

	rt, err := jsruntime.NewBuilder().
		WithNodejs().
		WithMemoryKv(l.kv).
		WithInjector(l.injectDwcApi).
		Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build plugin runtime: %w", err)
	}

	if _, err := rt.RunScript(string(script)); err != nil {
		return nil, fmt.Errorf("failed to execute plugin bundle: %w", err)
	}

	// An onLoad export is the plugin's entry hook; it receives its own
	// manifest and may register UI injections from there.
	if rt.HasFunction("onLoad") {
		if _, err := rt.Call("onLoad", manifestArg(&p.Manifest)); err != nil {
			return nil, fmt.Errorf("plugin onLoad failed: %w", err)
		}
	}

	return &Module{Id: p.Id, Entry: entry, Runtime: rt}, nil
}

// injectDwcApi exposes the host API as the global `dwc` object.
func (l *Loader) injectDwcApi(r *jsruntime.JsRuntime) error {
	vm := r.GetVM()
	obj := vm.NewObject()

	// dwc.registerPluginContextMenuItem(name, path, icon, action, contextMenuType)
	obj.Set("registerPluginContextMenuItem", func(call goja.FunctionCall) goja.Value {
		item := store.ContextMenuItem{
			Name:            call.Argument(0).String(),
			Path:            optString(call.Argument(1)),
			Icon:            call.Argument(2).String(),
			Action:          call.Argument(3).String(),
			ContextMenuType: store.ContextMenuType(call.Argument(4).String()),
		}
		if optString(call.Argument(4)) == "" {
			item.ContextMenuType = store.ContextMenuJobFileList
		}
		l.store.RegisterPluginContextMenuItem(item)
		return goja.Undefined()
	})

	// dwc.injectComponent(name, component)
	obj.Set("injectComponent", func(call goja.FunctionCall) goja.Value {
		l.store.InjectComponent(store.InjectedComponent{
			Name:      call.Argument(0).String(),
			Component: call.Argument(1).Export(),
		})
		return goja.Undefined()
	})

	vm.Set("dwc", obj)
	return nil
}

// optString exports a JS argument as a string, treating undefined and null as
// empty.
func optString(v goja.Value) string {
	if v == nil || goja.IsUndefined(v) || goja.IsNull(v) {
		return ""
	}
	return v.String()
}

// manifestArg round-trips the manifest through JSON so the JS side sees the
// plugin.json field names rather than Go struct fields.
func manifestArg(m *Manifest) map[string]any {
	raw, err := json.Marshal(m)
	if err != nil {
		return map[string]any{"id": m.Id}
	}
	out := make(map[string]any)
	if err := json.Unmarshal(raw, &out); err != nil {
		return map[string]any{"id": m.Id}
	}
	return out
}
