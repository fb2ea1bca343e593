package plugin

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/printdeck/printdeck/internal/conf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDiscovery(t *testing.T) *Discovery {
	t.Helper()
	cfg := &conf.Config{Plugins: conf.Plugins{Dir: t.TempDir()}}
	return NewDiscovery(cfg, nil)
}

func writeManifest(t *testing.T, d *Discovery, m *Manifest) {
	t.Helper()
	dir := filepath.Join(d.dir, m.Id)
	require.NoError(t, os.MkdirAll(dir, 0o755))
	raw, err := json.Marshal(m)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "plugin.json"), raw, 0o644))
}

func TestScan(t *testing.T) {
	d := newTestDiscovery(t)
	writeManifest(t, d, &Manifest{Id: "GoodPlugin", Name: "Good Plugin", Author: "tester", Version: "1.0.0"})
	writeManifest(t, d, &Manifest{Id: "NoAuthor", Name: "No Author", Version: "1.0.0"})

	// broken JSON is skipped entirely
	brokenDir := filepath.Join(d.dir, "broken")
	require.NoError(t, os.MkdirAll(brokenDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(brokenDir, "plugin.json"), []byte("{"), 0o644))

	listings := d.Scan()
	require.Len(t, listings, 2)

	byId := make(map[string]Listing, len(listings))
	for _, l := range listings {
		assert.False(t, l.Builtin)
		byId[l.Id] = l
	}
	assert.True(t, byId["GoodPlugin"].Valid)
	assert.False(t, byId["NoAuthor"].Valid)
}

func TestScanVersionGate(t *testing.T) {
	d := newTestDiscovery(t)
	writeManifest(t, d, &Manifest{Id: "Future", Name: "Future", Author: "tester", Version: "1.0.0", DwcVersion: "99.0.0"})

	listings := d.Scan()
	require.Len(t, listings, 1)
	assert.False(t, listings[0].Valid)
}

func TestScanMissingDir(t *testing.T) {
	cfg := &conf.Config{Plugins: conf.Plugins{Dir: filepath.Join(t.TempDir(), "nope")}}
	d := NewDiscovery(cfg, nil)
	assert.Empty(t, d.Scan())
}

func TestFind(t *testing.T) {
	d := newTestDiscovery(t)
	writeManifest(t, d, &Manifest{Id: "GoodPlugin", Name: "Good Plugin", Author: "tester", Version: "1.0.0"})
	d.Scan()

	p, err := d.Find("GoodPlugin")
	require.NoError(t, err)
	assert.Equal(t, "Good Plugin", p.Name)
	assert.False(t, p.IsBuiltin())

	_, err = d.Find("Unknown")
	assert.Error(t, err)
}

func TestFindRereadsManifest(t *testing.T) {
	d := newTestDiscovery(t)
	m := &Manifest{Id: "GoodPlugin", Name: "Good Plugin", Author: "tester", Version: "1.0.0"}
	writeManifest(t, d, m)
	d.Scan()

	m.Version = "1.1.0"
	writeManifest(t, d, m)

	p, err := d.Find("GoodPlugin")
	require.NoError(t, err)
	assert.Equal(t, "1.1.0", p.Version)
}

func TestBuiltins(t *testing.T) {
	builtins := Builtins()
	require.Len(t, builtins, 5)

	want := []string{"Accelerometer", "HeightMap", "GCodeViewer", "ObjectModelBrowser", "OnScreenKeyboard"}
	for i, p := range builtins {
		assert.Equal(t, want[i], p.Id)
		assert.True(t, p.IsBuiltin())
		assert.True(t, CheckManifest(&p.Manifest))
	}

	assert.Nil(t, FindBuiltin("Unknown"))
}
