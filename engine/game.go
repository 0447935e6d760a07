package engine

import "time"

// Game is the set of callbacks the engine drives. State is owned by the
// game and never touched by the engine.
type Game struct {
	Name         string
	State        interface{}
	FnInitialize Initialize
	FnUpdate     Update
	FnShutdown   Shutdown
}

type Initialize func(ctx *Context) error
type Update func(ctx *Context, deltaTime time.Duration) error
type Shutdown func(ctx *Context) error
