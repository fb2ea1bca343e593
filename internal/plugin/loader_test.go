package plugin

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/printdeck/printdeck/internal/conf"
	"github.com/printdeck/printdeck/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLoader(t *testing.T) (*Loader, *store.Store) {
	t.Helper()
	s := store.NewStore(nil)
	cfg := &conf.Config{Plugins: conf.Plugins{Dir: t.TempDir()}}
	return NewLoader(cfg, s), s
}

func writeBundle(t *testing.T, l *Loader, id, script string) {
	t.Helper()
	dir := filepath.Join(l.pluginsDir, id)
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "dwc-plugin.js"), []byte(script), 0o644))
}

func TestLoadBuiltin(t *testing.T) {
	l, _ := newTestLoader(t)

	p := FindBuiltin("HeightMap")
	require.NotNil(t, p)
	require.True(t, p.IsBuiltin())

	mod, err := l.Load(context.Background(), p)
	require.NoError(t, err)
	assert.Equal(t, "HeightMap", mod.Id)
	assert.Equal(t, "plugins/HeightMap/index.js", mod.Entry)
	assert.Nil(t, mod.Runtime)
}

func TestLoadBuiltinWithoutLoader(t *testing.T) {
	l, _ := newTestLoader(t)

	p := builtin("Broken", "Broken", "nobody", nil)
	_, err := l.Load(context.Background(), p)
	assert.ErrorIs(t, err, ErrNotImplemented)
}

func TestLoadExternalInDevMode(t *testing.T) {
	l, _ := newTestLoader(t)
	l.dev = true
	writeBundle(t, l, "DemoPlugin", "function onLoad() {}")

	_, err := l.Load(context.Background(), &Plugin{Manifest: Manifest{Id: "DemoPlugin"}})
	assert.ErrorIs(t, err, ErrExternalInDevMode)
}

func TestLoadExternal(t *testing.T) {
	l, s := newTestLoader(t)
	l.dev = false
	writeBundle(t, l, "DemoPlugin", `
		let loadedId = null;
		function onLoad(manifest) {
			loadedId = manifest.id;
			dwc.registerPluginContextMenuItem("Preview", "/preview", "mdi-eye", "preview.open", "jobFileList");
			dwc.registerPluginContextMenuItem("Quick Action", null, "mdi-flash", "quick.run");
			dwc.injectComponent("demo-panel", { template: "<div/>" });
		}
	`)

	p := &Plugin{Manifest: Manifest{Id: "DemoPlugin", Name: "Demo Plugin", Author: "tester", Version: "1.0.0"}}
	mod, err := l.Load(context.Background(), p)
	require.NoError(t, err)
	require.NotNil(t, mod.Runtime)

	v, err := mod.Runtime.RunScript("loadedId")
	require.NoError(t, err)
	assert.Equal(t, "DemoPlugin", v.String())

	state := s.Snapshot()
	require.Len(t, state.ContextMenuItems, 2)
	assert.Equal(t, "Preview", state.ContextMenuItems[0].Name)
	assert.Equal(t, "/preview", state.ContextMenuItems[0].Path)
	assert.Equal(t, store.ContextMenuJobFileList, state.ContextMenuItems[0].ContextMenuType)
	// missing context menu type falls back to the job file list
	assert.Empty(t, state.ContextMenuItems[1].Path)
	assert.Equal(t, store.ContextMenuJobFileList, state.ContextMenuItems[1].ContextMenuType)
	require.Len(t, state.Components, 1)
	assert.Equal(t, "demo-panel", state.Components[0].Name)
}

func TestLoadExternalCached(t *testing.T) {
	l, _ := newTestLoader(t)
	l.dev = false
	writeBundle(t, l, "DemoPlugin", "function onLoad() {}")

	p := &Plugin{Manifest: Manifest{Id: "DemoPlugin"}}
	first, err := l.Load(context.Background(), p)
	require.NoError(t, err)
	second, err := l.Load(context.Background(), p)
	require.NoError(t, err)
	assert.Same(t, first, second)
}

func TestLoadExternalMissingBundle(t *testing.T) {
	l, _ := newTestLoader(t)
	l.dev = false

	_, err := l.Load(context.Background(), &Plugin{Manifest: Manifest{Id: "Ghost"}})
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestLoadExternalWithoutOnLoad(t *testing.T) {
	l, _ := newTestLoader(t)
	l.dev = false
	writeBundle(t, l, "Silent", "kv.set('touched', true);")

	mod, err := l.Load(context.Background(), &Plugin{Manifest: Manifest{Id: "Silent"}})
	require.NoError(t, err)
	assert.NotNil(t, mod.Runtime)
}

func TestLoadExternalOnLoadThrows(t *testing.T) {
	l, _ := newTestLoader(t)
	l.dev = false
	writeBundle(t, l, "Angry", `function onLoad() { throw new Error("boom"); }`)

	_, err := l.Load(context.Background(), &Plugin{Manifest: Manifest{Id: "Angry"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")
}
