package engine

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spaghettifunk/evil/engine/config"
	"github.com/spaghettifunk/evil/engine/core"
)

type Stage uint8

const (
	// Engine is in an uninitialized state
	EngineStageUninitialized Stage = iota
	// Engine is currently booting up
	EngineStageBooting
	// Engine completed boot process and is ready to be initialized
	EngineStageBootComplete
	// Engine is currently initializing
	EngineStageInitializing
	// Engine initialization is complete
	EngineStageInitialized
	// Engine is currently running
	EngineStageRunning
	// Engine is in the process of shutting down
	EngineStageShuttingDown
)

func (s Stage) String() string {
	switch s {
	case EngineStageUninitialized:
		return "uninitialized"
	case EngineStageBooting:
		return "booting"
	case EngineStageBootComplete:
		return "boot complete"
	case EngineStageInitializing:
		return "initializing"
	case EngineStageInitialized:
		return "initialized"
	case EngineStageRunning:
		return "running"
	case EngineStageShuttingDown:
		return "shutting down"
	}
	return fmt.Sprintf("stage(%d)", uint8(s))
}

var (
	ErrInvalidStage = errors.New("engine is not in the right stage")
	ErrMissingGame  = errors.New("game is missing required callbacks")
)

// frame stats are logged once per window
const frameAverageWindow = 30

type Engine struct {
	currentStage Stage
	gameInstance *Game
	ctx          *Context
	logOutput    io.Writer
	now          func() time.Time
	reload       chan *config.Config
	lastTime     time.Duration
}

type Option func(*Engine)

// WithLogOutput sends the engine log to w instead of stderr.
func WithLogOutput(w io.Writer) Option {
	return func(e *Engine) {
		e.logOutput = w
	}
}

// WithTimeSource replaces the wall clock used by the engine clock.
func WithTimeSource(now func() time.Time) Option {
	return func(e *Engine) {
		e.now = now
	}
}

func New(g *Game, cfg *config.Config, opts ...Option) (*Engine, error) {
	if g == nil || g.FnInitialize == nil || g.FnUpdate == nil {
		return nil, ErrMissingGame
	}
	if cfg == nil {
		cfg = config.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	e := &Engine{
		currentStage: EngineStageBooting,
		gameInstance: g,
		logOutput:    os.Stderr,
		now:          time.Now,
		reload:       make(chan *config.Config, 1),
	}
	for _, opt := range opts {
		opt(e)
	}

	logger, err := newLogger(e.logOutput, cfg)
	if err != nil {
		return nil, err
	}

	e.ctx = &Context{
		Config:  cfg,
		Log:     logger,
		Clock:   core.NewClockWithSource(e.now),
		Metrics: core.NewMetrics(),
		Camera:  cfg.NewCamera(),
	}
	e.currentStage = EngineStageBootComplete
	return e, nil
}

func newLogger(w io.Writer, cfg *config.Config) (*core.Logger, error) {
	lvl, err := core.ParseLogLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	return core.NewLogger(w, core.LoggerOptions{
		Level:        lvl,
		Prefix:       cfg.Name,
		ReportCaller: true,
	}), nil
}

func (e *Engine) Stage() Stage {
	return e.currentStage
}

// Context returns the services handed to the game callbacks.
func (e *Engine) Context() *Context {
	return e.ctx
}

// Initialize opens the error log and runs the game initializer.
func (e *Engine) Initialize() error {
	if e.currentStage != EngineStageBootComplete {
		return fmt.Errorf("%w: initialize called while %s", ErrInvalidStage, e.currentStage)
	}
	e.currentStage = EngineStageInitializing

	errLog, err := core.OpenErrorLog(e.ctx.Config.ErrorLogDir, e.now(), e.ctx.Log)
	if err != nil {
		e.currentStage = EngineStageBootComplete
		return err
	}
	e.ctx.ErrorLog = errLog
	e.ctx.Log.Debug("error log opened", "path", errLog.Path(), "run", errLog.RunID())

	if err := e.gameInstance.FnInitialize(e.ctx); err != nil {
		errLog.LogError("game initialization failed", "err", err)
		_ = errLog.Close()
		e.ctx.ErrorLog = nil
		e.currentStage = EngineStageBootComplete
		return fmt.Errorf("failed to initialize %s: %w", e.gameInstance.Name, err)
	}

	e.currentStage = EngineStageInitialized
	e.ctx.Log.Info("engine initialized", "game", e.gameInstance.Name)
	return nil
}

// Reload queues cfg to be applied between frames. Only the latest queued
// config is kept.
func (e *Engine) Reload(cfg *config.Config) {
	for {
		select {
		case e.reload <- cfg:
			return
		default:
		}
		select {
		case <-e.reload:
		default:
		}
	}
}

// apply swaps in a reloaded config. The logger is reconfigured in place,
// other goroutines may be holding it.
func (e *Engine) apply(cfg *config.Config) {
	if err := cfg.Validate(); err != nil {
		e.ctx.Log.Warn("ignoring config reload", "err", err)
		return
	}
	lvl, err := core.ParseLogLevel(cfg.LogLevel)
	if err != nil {
		e.ctx.Log.Warn("ignoring config reload", "err", err)
		return
	}
	c := cfg.Camera
	e.ctx.Camera.SetPerspective(c.FOV, cfg.AspectRatio(), c.Near, c.Far)
	e.ctx.Config = cfg
	e.ctx.Log.SetLevel(lvl)
	e.ctx.Log.SetPrefix(cfg.Name)
	e.ctx.Log.Info("config reloaded", "fov", c.FOV, "aspect", cfg.AspectRatio())
}

// Run ticks the game at the configured rate until the frame budget is
// spent, ctx is cancelled or an update fails.
func (e *Engine) Run(ctx context.Context) error {
	if e.currentStage != EngineStageInitialized {
		return fmt.Errorf("%w: run called while %s", ErrInvalidStage, e.currentStage)
	}
	e.currentStage = EngineStageRunning
	defer func() {
		if e.currentStage == EngineStageRunning {
			e.currentStage = EngineStageInitialized
		}
	}()

	clock := e.ctx.Clock
	clock.Start()
	clock.Update()
	e.lastTime = clock.Elapsed()

	ticker := time.NewTicker(e.ctx.Config.TickInterval())
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			e.ctx.Log.Info("run cancelled", "frames", e.ctx.Frame)
			return nil
		case cfg := <-e.reload:
			interval := e.ctx.Config.TickInterval()
			e.apply(cfg)
			if next := e.ctx.Config.TickInterval(); next != interval {
				ticker.Reset(next)
			}
		case <-ticker.C:
			// Update clock and get delta time.
			clock.Update()
			currentTime := clock.Elapsed()
			delta := currentTime - e.lastTime

			if err := e.gameInstance.FnUpdate(e.ctx, delta); err != nil {
				e.ctx.ErrorLog.LogError("game update failed, shutting down", "frame", e.ctx.Frame, "err", err)
				return fmt.Errorf("update of frame %d failed: %w", e.ctx.Frame, err)
			}

			e.ctx.Metrics.Update(delta)
			e.ctx.Frame++
			e.lastTime = currentTime

			if e.ctx.Frame%uint64(frameAverageWindow) == 0 {
				fps, ms := e.ctx.Metrics.Frame()
				e.ctx.Log.Debug("frame stats", "frame", e.ctx.Frame, "fps", fps, "ms", ms)
			}
			if limit := e.ctx.Config.Frames; limit > 0 && e.ctx.Frame >= limit {
				e.ctx.Log.Info("frame budget reached", "frames", e.ctx.Frame)
				return nil
			}
		}
	}
}

// Shutdown runs the game shutdown callback and closes the error log.
func (e *Engine) Shutdown() error {
	switch e.currentStage {
	case EngineStageInitialized, EngineStageRunning:
	default:
		return fmt.Errorf("%w: shutdown called while %s", ErrInvalidStage, e.currentStage)
	}
	e.currentStage = EngineStageShuttingDown

	var errs []error
	if e.gameInstance.FnShutdown != nil {
		if err := e.gameInstance.FnShutdown(e.ctx); e.ctx.ErrorLog.Check(err) {
			errs = append(errs, err)
		}
	}
	e.ctx.Clock.Stop()
	if err := e.ctx.ErrorLog.Close(); err != nil {
		errs = append(errs, err)
	}

	e.currentStage = EngineStageUninitialized
	e.ctx.Log.Info("engine shut down", "frames", e.ctx.Frame)
	return errors.Join(errs...)
}
