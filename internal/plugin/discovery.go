package plugin

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gookit/event"
	"github.com/patrickmn/go-cache"
	"github.com/printdeck/printdeck/internal/conf"
	"github.com/printdeck/printdeck/internal/database/models"
	"github.com/printdeck/printdeck/internal/eventType"
	"github.com/printdeck/printdeck/internal/version"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Listing is a manifest annotated with its origin and validation result, as
// served to the dashboard.
type Listing struct {
	Manifest
	Builtin bool `json:"builtin"`
	Valid   bool `json:"valid"`
}

// Discovery scans the external plugin directory for plugin.json manifests and
// keeps an id-to-path index of what it found.
type Discovery struct {
	dir   string
	db    *gorm.DB // nil when persistence is disabled
	index *cache.Cache
}

func NewDiscovery(cfg *conf.Config, db *gorm.DB) *Discovery {
	return &Discovery{
		dir:   cfg.Plugins.Dir,
		db:    db,
		index: cache.New(cache.NoExpiration, cache.NoExpiration),
	}
}

// Scan walks the plugin directory and returns one listing per manifest found.
// Broken manifests are skipped; invalid ones are listed but flagged.
func (d *Discovery) Scan() []Listing {
	entries, err := os.ReadDir(d.dir)
	if err != nil {
		if !os.IsNotExist(err) {
			slog.Warn("Failed to read plugin directory", slog.String("dir", d.dir), slog.Any("error", err))
		}
		return nil
	}

	var listings []Listing
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		path := filepath.Join(d.dir, entry.Name(), "plugin.json")
		m, err := readManifest(path)
		if err != nil {
			if !os.IsNotExist(err) {
				slog.Warn("Skipping broken plugin manifest", slog.String("path", path), slog.Any("error", err))
			}
			continue
		}

		valid := CheckManifest(m) && CheckVersion(version.CurrentVersion, m.DwcVersion)
		d.index.Set(m.Id, path, cache.NoExpiration)
		d.persist(m, path, valid)
		event.Async(eventType.PluginDiscovered, event.M{"id": m.Id, "valid": valid})

		listings = append(listings, Listing{Manifest: *m, Valid: valid})
	}
	return listings
}

// Find returns the external plugin with the given id, re-reading its manifest
// from disk. The returned plugin carries no loader.
func (d *Discovery) Find(id string) (*Plugin, error) {
	cached, ok := d.index.Get(id)
	if !ok {
		return nil, fmt.Errorf("unknown plugin %q", id)
	}

	m, err := readManifest(cached.(string))
	if err != nil {
		return nil, fmt.Errorf("failed to re-read plugin manifest: %w", err)
	}
	return &Plugin{Manifest: *m}, nil
}

func (d *Discovery) persist(m *Manifest, path string, valid bool) {
	if d.db == nil {
		return
	}

	record := models.PluginRecord{
		Id:             m.Id,
		Name:           m.Name,
		Author:         m.Author,
		Version:        m.Version,
		License:        m.License,
		Homepage:       m.Homepage,
		DwcVersion:     m.DwcVersion,
		SbcPermissions: m.SbcPermissions,
		Path:           path,
		Valid:          valid,
	}
	if err := d.db.Clauses(clause.OnConflict{UpdateAll: true}).Create(&record).Error; err != nil {
		slog.Warn("Failed to persist plugin record", slog.String("id", m.Id), slog.Any("error", err))
	}
}

func readManifest(path string) (*Manifest, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var m Manifest
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, err
	}
	return &m, nil
}
