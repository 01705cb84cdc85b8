// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/cscript/internal/adapters/cas"
	_ "go.trai.ch/cscript/internal/adapters/config"
	_ "go.trai.ch/cscript/internal/adapters/fingerprint"
	_ "go.trai.ch/cscript/internal/adapters/logger"
	_ "go.trai.ch/cscript/internal/adapters/sandbox"
	_ "go.trai.ch/cscript/internal/adapters/shell"
	_ "go.trai.ch/cscript/internal/adapters/source"
	_ "go.trai.ch/cscript/internal/adapters/telemetry"
	_ "go.trai.ch/cscript/internal/adapters/toolchain"
	// Register app and engine nodes.
	_ "go.trai.ch/cscript/internal/app"
	_ "go.trai.ch/cscript/internal/engine/pipeline"
)
