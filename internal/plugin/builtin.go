package plugin

import (
	"context"

	"github.com/printdeck/printdeck/internal/version"
)

// assetLoader returns a loader that resolves to an asset path compiled into
// the dashboard bundle. Built-in plugins never touch the plugin directory.
func assetLoader(id, entry string) LoaderFunc {
	return func(context.Context) (*Module, error) {
		return &Module{Id: id, Entry: entry}, nil
	}
}

func builtin(id, name, author string, loader LoaderFunc, permissions ...string) *Plugin {
	if loader == nil {
		loader = NotImplementedLoader
	}
	return &Plugin{
		Manifest: Manifest{
			Id:             id,
			Name:           name,
			Author:         author,
			Version:        version.CurrentVersion,
			License:        "GPL-3.0",
			DwcVersion:     version.CurrentVersion,
			SbcPermissions: permissions,
		},
		LoadDwcResources: loader,
	}
}

// Builtins returns the descriptors of the plugins shipped with the dashboard
// bundle, in display order. The slice is rebuilt on every call so callers may
// mutate their copy freely.
func Builtins() []*Plugin {
	return []*Plugin{
		builtin("Accelerometer", "Accelerometer", "Duet3D Ltd",
			assetLoader("Accelerometer", "plugins/Accelerometer/index.js")),
		builtin("HeightMap", "Height Map", "Duet3D Ltd",
			assetLoader("HeightMap", "plugins/HeightMap/index.js")),
		builtin("GCodeViewer", "G-Code Viewer", "Juan Rosario",
			assetLoader("GCodeViewer", "plugins/GCodeViewer/index.js")),
		builtin("ObjectModelBrowser", "Object Model Browser", "Duet3D Ltd",
			assetLoader("ObjectModelBrowser", "plugins/ObjectModelBrowser/index.js")),
		builtin("OnScreenKeyboard", "On-Screen Keyboard", "Duet3D Ltd",
			assetLoader("OnScreenKeyboard", "plugins/OnScreenKeyboard/index.js")),
	}
}

// FindBuiltin returns the built-in descriptor with the given id, or nil.
func FindBuiltin(id string) *Plugin {
	for _, p := range Builtins() {
		if p.Id == id {
			return p
		}
	}
	return nil
}
