package internal

import (
	// Import all internal packages to ensure their init() functions are executed
	_ "github.com/printdeck/printdeck/internal/api_v1"
	_ "github.com/printdeck/printdeck/internal/conf"
	_ "github.com/printdeck/printdeck/internal/eventType"
)

func All() {}
