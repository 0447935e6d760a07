package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/chewxy/math32"
	"github.com/pelletier/go-toml/v2"

	"github.com/spaghettifunk/evil/engine/core"
	"github.com/spaghettifunk/evil/engine/math"
)

var ErrInvalidConfig = errors.New("invalid config")

// Config is the engine configuration, usually loaded from a TOML file.
type Config struct {
	// The application name, used as the log prefix.
	Name string `toml:"name"`
	// Viewport width in pixels.
	Width uint32 `toml:"width"`
	// Viewport height in pixels.
	Height uint32 `toml:"height"`
	// One of debug, info, warn, error or fatal.
	LogLevel string `toml:"log_level"`
	// Directory receiving the dated error log files.
	ErrorLogDir string `toml:"error_log_dir"`
	// Number of frames to run. Zero runs until interrupted.
	Frames uint64 `toml:"frames"`
	// Target frames per second.
	TickRate float64      `toml:"tick_rate"`
	Camera   CameraConfig `toml:"camera"`
}

type CameraConfig struct {
	// Vertical field of view in degrees.
	FOV      float32    `toml:"fov"`
	Near     float32    `toml:"near"`
	Far      float32    `toml:"far"`
	Position [3]float32 `toml:"position"`
	Target   [3]float32 `toml:"target"`
}

func Default() *Config {
	return &Config{
		Name:        "Evil",
		Width:       1280,
		Height:      720,
		LogLevel:    "info",
		ErrorLogDir: "logs",
		Frames:      0,
		TickRate:    60,
		Camera: CameraConfig{
			FOV:      45,
			Near:     0.1,
			Far:      1000,
			Position: [3]float32{0, 0, 10},
			Target:   [3]float32{0, 0, 0},
		},
	}
}

// Load reads and validates the config file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes TOML on top of Default and validates the result. Unknown
// keys are rejected.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the values the projection and the logger depend on.
func (c *Config) Validate() error {
	var errs []error
	if c.Width == 0 || c.Height == 0 {
		errs = append(errs, fmt.Errorf("%w: width and height must be positive, got %dx%d", ErrInvalidConfig, c.Width, c.Height))
	}
	// also catches rates so high the interval truncates to zero, and inf
	if !(c.TickRate > 0 && c.TickInterval() > 0) {
		errs = append(errs, fmt.Errorf("%w: tick_rate must be positive and at most 1e9, got %v", ErrInvalidConfig, c.TickRate))
	}
	if _, err := core.ParseLogLevel(c.LogLevel); err != nil {
		errs = append(errs, fmt.Errorf("%w: %w", ErrInvalidConfig, err))
	}
	if !(c.Camera.FOV > 0 && c.Camera.FOV < 360) {
		errs = append(errs, fmt.Errorf("%w: camera fov must be in (0, 360), got %v", ErrInvalidConfig, c.Camera.FOV))
	}
	if !finite(c.Camera.Near) || !finite(c.Camera.Far) {
		errs = append(errs, fmt.Errorf("%w: camera near and far clip must be finite, got %v and %v", ErrInvalidConfig, c.Camera.Near, c.Camera.Far))
	} else if c.Camera.Near == c.Camera.Far {
		errs = append(errs, fmt.Errorf("%w: camera near and far clip must differ, both are %v", ErrInvalidConfig, c.Camera.Near))
	}
	for _, v := range append(c.Camera.Position[:], c.Camera.Target[:]...) {
		if !finite(v) {
			errs = append(errs, fmt.Errorf("%w: camera position and target must be finite", ErrInvalidConfig))
			break
		}
	}
	if c.Camera.Position == c.Camera.Target {
		errs = append(errs, fmt.Errorf("%w: camera position and target must differ", ErrInvalidConfig))
	}
	return errors.Join(errs...)
}

func finite(f float32) bool {
	return !math32.IsNaN(f) && !math32.IsInf(f, 0)
}

func (c *Config) AspectRatio() float32 {
	return float32(c.Width) / float32(c.Height)
}

// TickInterval is the target duration of one frame.
func (c *Config) TickInterval() time.Duration {
	return time.Duration(float64(time.Second) / c.TickRate)
}

// NewCamera builds a perspective camera from the [camera] table.
func (c *Config) NewCamera() *math.Camera {
	p, t := c.Camera.Position, c.Camera.Target
	return math.NewCamera(
		math.NewVec3(p[0], p[1], p[2]),
		math.NewVec3(t[0], t[1], t[2]),
		c.Camera.FOV,
		c.AspectRatio(),
		c.Camera.Near,
		c.Camera.Far,
	)
}
