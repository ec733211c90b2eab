package session

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/arloliu/mathviz/animation"
	"github.com/arloliu/mathviz/errs"
	"github.com/arloliu/mathviz/internal/options"
	"github.com/arloliu/mathviz/pca"
	"github.com/arloliu/mathviz/preset"
	"github.com/arloliu/mathviz/viewport"
)

// Default viewport dimensions in pixels.
const (
	DefaultWidth   = 600
	DefaultHeight  = 400
	DefaultPadding = 40
)

// DefaultSeed seeds the random sources of generated datasets and simulations.
const DefaultSeed = 1

// Config holds the settings shared by every session kind.
type Config struct {
	Width   float64
	Height  float64
	Padding float64

	Logger    *slog.Logger
	Scheduler animation.Scheduler
	Animation []animation.Option
	Seed      uint64
	Catalog   *preset.Catalog
	Dataset   []pca.GenerateOption
}

// DefaultConfig returns a 600×400 viewport with 40 px padding, a discarding logger, no
// scheduler and the built-in preset catalogue.
func DefaultConfig() *Config {
	return &Config{
		Width:   DefaultWidth,
		Height:  DefaultHeight,
		Padding: DefaultPadding,
		Logger:  slog.New(slog.DiscardHandler),
		Seed:    DefaultSeed,
	}
}

// Option configures a session.
type Option = options.Option[*Config]

// WithViewport sets the viewport size and padding in pixels.
func WithViewport(width, height, padding float64) Option {
	return options.New(func(cfg *Config) error {
		if _, err := viewport.New(width, height, padding, viewport.EmptyRange, viewport.EmptyRange); err != nil {
			return err
		}
		cfg.Width, cfg.Height, cfg.Padding = width, height, padding

		return nil
	})
}

// WithLogger sets the logger. Sessions log at debug level only. A nil logger is ignored.
func WithLogger(logger *slog.Logger) Option {
	return options.NoError(func(cfg *Config) {
		if logger != nil {
			cfg.Logger = logger
		}
	})
}

// WithScheduler sets the frame scheduler that drives animations and simulations.
func WithScheduler(s animation.Scheduler) Option {
	return options.NoError(func(cfg *Config) {
		cfg.Scheduler = s
	})
}

// WithAnimationSpeed sets the displacement per frame of the derivative animation.
func WithAnimationSpeed(speed float64) Option {
	return options.New(func(cfg *Config) error {
		if !(speed > 0) || math.IsInf(speed, 1) {
			return fmt.Errorf("%w: got %g", errs.ErrInvalidSpeed, speed)
		}
		cfg.Animation = append(cfg.Animation, animation.WithSpeed(speed))

		return nil
	})
}

// WithAnimation appends driver options for the derivative animation.
func WithAnimation(opts ...animation.Option) Option {
	return options.NoError(func(cfg *Config) {
		cfg.Animation = append(cfg.Animation, opts...)
	})
}

// WithSeed sets the random seed of generated datasets and simulations.
func WithSeed(seed uint64) Option {
	return options.NoError(func(cfg *Config) {
		cfg.Seed = seed
	})
}

// WithDataset sets the generator options of the PCA dataset.
func WithDataset(opts ...pca.GenerateOption) Option {
	return options.NoError(func(cfg *Config) {
		cfg.Dataset = append(cfg.Dataset, opts...)
	})
}

// WithCatalog replaces the built-in preset catalogue.
func WithCatalog(c *preset.Catalog) Option {
	return options.NoError(func(cfg *Config) {
		cfg.Catalog = c
	})
}

func newConfig(opts []Option) (*Config, error) {
	cfg, err := options.Build(DefaultConfig, opts...)
	if err != nil {
		return nil, err
	}
	if cfg.Catalog == nil {
		cfg.Catalog = preset.Builtin()
	}

	return cfg, nil
}

func (c *Config) viewport(x, y viewport.Range) (viewport.Viewport, error) {
	return viewport.New(c.Width, c.Height, c.Padding, x, y)
}
