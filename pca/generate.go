package pca

import (
	"fmt"
	"math"
	"math/rand/v2"
	"strings"

	"github.com/arloliu/mathviz/errs"
	"github.com/arloliu/mathviz/geom"
	"github.com/arloliu/mathviz/internal/options"
)

// Shape selects the kind of point cloud produced by Generate.
type Shape int

const (
	// Correlated points lie along y = 0.8x.
	Correlated Shape = iota
	// AntiCorrelated points lie along y = -0.8x.
	AntiCorrelated
	// Uncorrelated points lie in a ring with radius between 2 and 5.
	Uncorrelated
)

var shapeNames = map[Shape]string{
	Correlated:     "correlated",
	AntiCorrelated: "anticorrelated",
	Uncorrelated:   "uncorrelated",
}

// String returns the name of the shape.
func (s Shape) String() string {
	if name, ok := shapeNames[s]; ok {
		return name
	}

	return "unknown"
}

// ParseShape returns the Shape with the given case-insensitive name.
// "correlation" and "anticorrelation" are accepted as aliases.
func ParseShape(name string) (Shape, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "correlated", "correlation":
		return Correlated, nil
	case "anticorrelated", "anti-correlated", "anticorrelation":
		return AntiCorrelated, nil
	case "uncorrelated", "circular":
		return Uncorrelated, nil
	default:
		return 0, fmt.Errorf("%w: %q", errs.ErrUnknownShape, name)
	}
}

// Default generator parameters.
const (
	DefaultCount    = 50   // points
	DefaultNoise    = 20.0 // percent
	DefaultRotation = 45.0 // degrees
	DefaultSeed     = 1
)

// GenerateConfig holds the parameters of a synthetic dataset.
type GenerateConfig struct {
	Shape Shape
	// Count is the number of points, at least 2.
	Count int
	// Noise is the noise level in percent; 100 adds up to ±3 units on each axis.
	Noise float64
	// Rotation rotates the whole cloud counter-clockwise, in degrees.
	Rotation float64
	// Seed seeds the random source so that equal configs produce equal datasets.
	Seed uint64
}

// DefaultGenerateConfig returns the generator defaults: 50 correlated points,
// 20% noise, rotated by 45°.
func DefaultGenerateConfig() *GenerateConfig {
	return &GenerateConfig{
		Shape:    Correlated,
		Count:    DefaultCount,
		Noise:    DefaultNoise,
		Rotation: DefaultRotation,
		Seed:     DefaultSeed,
	}
}

// GenerateOption configures Generate.
type GenerateOption = options.Option[*GenerateConfig]

// WithShape sets the cloud shape.
func WithShape(shape Shape) GenerateOption {
	return options.New(func(cfg *GenerateConfig) error {
		if _, ok := shapeNames[shape]; !ok {
			return fmt.Errorf("%w: %d", errs.ErrUnknownShape, shape)
		}
		cfg.Shape = shape

		return nil
	})
}

// WithCount sets the number of points. It rejects counts below 2, since a covariance
// cannot be estimated from fewer points.
func WithCount(n int) GenerateOption {
	return options.New(func(cfg *GenerateConfig) error {
		if n < 2 {
			return fmt.Errorf("%w: got %d", errs.ErrInvalidPointCount, n)
		}
		cfg.Count = n

		return nil
	})
}

// WithNoise sets the noise level in percent.
func WithNoise(percent float64) GenerateOption {
	return options.NoError(func(cfg *GenerateConfig) {
		cfg.Noise = percent
	})
}

// WithRotation sets the rotation in degrees.
func WithRotation(degrees float64) GenerateOption {
	return options.NoError(func(cfg *GenerateConfig) {
		cfg.Rotation = degrees
	})
}

// WithSeed sets the random seed.
func WithSeed(seed uint64) GenerateOption {
	return options.NoError(func(cfg *GenerateConfig) {
		cfg.Seed = seed
	})
}

// Generate returns a synthetic dataset described by opts applied over DefaultGenerateConfig.
//
// Parameters:
//   - opts: Optional generator settings (shape, count, noise, rotation, seed)
//
// Returns:
//   - []geom.Point: Generated dataset; equal options always give an equal dataset
//   - error: ErrUnknownShape or ErrInvalidPointCount from the options
//
// Example:
//
//	points, err := pca.Generate(pca.WithShape(pca.Uncorrelated), pca.WithCount(100), pca.WithSeed(7))
func Generate(opts ...GenerateOption) ([]geom.Point, error) {
	cfg, err := options.Build(DefaultGenerateConfig, opts...)
	if err != nil {
		return nil, err
	}

	return GenerateFrom(*cfg), nil
}

// GenerateFrom returns the dataset described by cfg using a PCG source seeded with cfg.Seed.
// Counts below 2 produce an empty dataset.
func GenerateFrom(cfg GenerateConfig) []geom.Point {
	if cfg.Count < 2 {
		return nil
	}

	rng := rand.New(rand.NewPCG(cfg.Seed, uint64(cfg.Shape)))
	rad := cfg.Rotation * math.Pi / 180
	jitter := cfg.Noise / 100 * 3

	points := make([]geom.Point, cfg.Count)
	for i := range points {
		p := basePoint(cfg.Shape, rng)
		p.X += symmetric(rng) * jitter
		p.Y += symmetric(rng) * jitter
		points[i] = p.Rotate(rad)
	}

	return points
}

func basePoint(shape Shape, rng *rand.Rand) geom.Point {
	switch shape {
	case AntiCorrelated:
		t := symmetric(rng) * 5
		return geom.Point{X: t, Y: -0.8 * t}
	case Uncorrelated:
		angle := rng.Float64() * 2 * math.Pi
		radius := 2 + rng.Float64()*3
		sin, cos := math.Sincos(angle)

		return geom.Point{X: cos * radius, Y: sin * radius}
	default:
		t := symmetric(rng) * 5
		return geom.Point{X: t, Y: 0.8 * t}
	}
}

// symmetric returns a uniform value in [-1, 1).
func symmetric(rng *rand.Rand) float64 {
	return rng.Float64()*2 - 1
}
