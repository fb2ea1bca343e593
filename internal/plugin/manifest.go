package plugin

import (
	"context"
	"errors"

	"github.com/printdeck/printdeck/internal/jsruntime"
)

// Manifest describes a plugin's identity, metadata and required permissions.
// Field names mirror the plugin.json schema shipped with external plugins.
type Manifest struct {
	Id             string   `json:"id"`
	Name           string   `json:"name"`
	Author         string   `json:"author"`
	Version        string   `json:"version"`
	License        string   `json:"license,omitempty"`
	Homepage       string   `json:"homepage,omitempty"`
	DwcVersion     string   `json:"dwcVersion,omitempty"`
	SbcPermissions []string `json:"sbcPermissions,omitempty"`
}

// Module is the handle of a loaded code unit. Built-in plugins resolve to an
// asset path compiled into the dashboard bundle; external plugins keep the
// runtime their bundle was executed in.
type Module struct {
	Id      string
	Entry   string
	Runtime *jsruntime.JsRuntime // nil for built-in plugins
}

// LoaderFunc resolves a plugin's UI resources.
type LoaderFunc func(ctx context.Context) (*Module, error)

// Plugin is a manifest plus an optional embedded loader. A plugin carrying a
// loader is built in; one without is external and resolved from the plugin
// directory on demand.
type Plugin struct {
	Manifest
	LoadDwcResources LoaderFunc `json:"-"`
}

func (p *Plugin) IsBuiltin() bool {
	return p.LoadDwcResources != nil
}

// ErrNotImplemented signals a built-in descriptor that never received a
// concrete loader.
var ErrNotImplemented = errors.New("loadDwcResources is not implemented")

// NotImplementedLoader is the default loader assigned to misconfigured
// built-in descriptors.
func NotImplementedLoader(context.Context) (*Module, error) {
	return nil, ErrNotImplemented
}
