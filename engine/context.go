package engine

import (
	"github.com/spaghettifunk/evil/engine/config"
	"github.com/spaghettifunk/evil/engine/core"
	"github.com/spaghettifunk/evil/engine/math"
)

// Context carries the engine services to the game callbacks.
type Context struct {
	Config   *config.Config
	Log      *core.Logger
	ErrorLog *core.ErrorLog
	Clock    *core.Clock
	Metrics  *core.Metrics
	Camera   *math.Camera
	// Number of frames completed so far.
	Frame uint64
}
