package options

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type plotConfig struct {
	Width   float64
	Label   string
	Visible bool
	Last    string
}

var errNonPositive = errors.New("width must be positive")

func (c *plotConfig) setWidth(w float64) error {
	if w <= 0 {
		return errNonPositive
	}
	c.Width = w
	c.Last = "width"

	return nil
}

func defaultPlotConfig() *plotConfig {
	return &plotConfig{Width: 600, Label: "default"}
}

func TestOption_New(t *testing.T) {
	t.Run("applies a fallible option", func(t *testing.T) {
		cfg := &plotConfig{}
		err := New(func(c *plotConfig) error { return c.setWidth(320) }).apply(cfg)
		require.NoError(t, err)
		require.Equal(t, 320.0, cfg.Width)
		require.Equal(t, "width", cfg.Last)
	})

	t.Run("propagates the option error", func(t *testing.T) {
		cfg := &plotConfig{}
		err := New(func(c *plotConfig) error { return c.setWidth(-1) }).apply(cfg)
		require.ErrorIs(t, err, errNonPositive)
		require.Zero(t, cfg.Width)
	})
}

func TestOption_NoError(t *testing.T) {
	cfg := &plotConfig{}
	err := NoError(func(c *plotConfig) { c.Visible = true }).apply(cfg)
	require.NoError(t, err)
	require.True(t, cfg.Visible)
}

func TestOption_Apply(t *testing.T) {
	t.Run("applies options in order", func(t *testing.T) {
		cfg := &plotConfig{}
		err := Apply(cfg,
			NoError(func(c *plotConfig) { c.Label = "first" }),
			NoError(func(c *plotConfig) { c.Label = "second" }),
		)
		require.NoError(t, err)
		require.Equal(t, "second", cfg.Label)
	})

	t.Run("stops at first error", func(t *testing.T) {
		cfg := &plotConfig{}
		err := Apply(cfg,
			New(func(c *plotConfig) error { return c.setWidth(10) }),
			New(func(c *plotConfig) error { return c.setWidth(0) }),
			NoError(func(c *plotConfig) { c.Label = "unreachable" }),
		)
		require.ErrorIs(t, err, errNonPositive)
		require.Equal(t, 10.0, cfg.Width)
		require.Empty(t, cfg.Label)
	})

	t.Run("skips nil options", func(t *testing.T) {
		cfg := &plotConfig{}
		err := Apply(cfg, nil, NoError(func(c *plotConfig) { c.Visible = true }))
		require.NoError(t, err)
		require.True(t, cfg.Visible)
	})
}

func TestBuild(t *testing.T) {
	t.Run("returns defaults without options", func(t *testing.T) {
		cfg, err := Build(defaultPlotConfig)
		require.NoError(t, err)
		require.Equal(t, 600.0, cfg.Width)
		require.Equal(t, "default", cfg.Label)
	})

	t.Run("overrides defaults", func(t *testing.T) {
		cfg, err := Build(defaultPlotConfig, New(func(c *plotConfig) error { return c.setWidth(800) }))
		require.NoError(t, err)
		require.Equal(t, 800.0, cfg.Width)
		require.Equal(t, "default", cfg.Label)
	})

	t.Run("returns zero value on error", func(t *testing.T) {
		cfg, err := Build(defaultPlotConfig, New(func(c *plotConfig) error { return c.setWidth(-5) }))
		require.ErrorIs(t, err, errNonPositive)
		require.Nil(t, cfg)
	})
}
