package options

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type testConfig struct {
	depth   int
	name    string
	applied []string
}

func withDepth(depth int) Option[*testConfig] {
	return New(func(c *testConfig) error {
		if err := Positive("depth", depth); err != nil {
			return err
		}
		c.depth = depth
		c.applied = append(c.applied, "depth")

		return nil
	})
}

func withName(name string) Option[*testConfig] {
	return NoError(func(c *testConfig) {
		c.name = name
		c.applied = append(c.applied, "name")
	})
}

func TestApply(t *testing.T) {
	t.Run("applies options in order", func(t *testing.T) {
		cfg := &testConfig{}
		err := Apply(cfg, withName("region"), withDepth(16))

		require.NoError(t, err)
		require.Equal(t, 16, cfg.depth)
		require.Equal(t, "region", cfg.name)
		require.Equal(t, []string{"name", "depth"}, cfg.applied)
	})

	t.Run("stops at first error", func(t *testing.T) {
		cfg := &testConfig{}
		err := Apply(cfg, withDepth(0), withName("never"))

		require.Error(t, err)
		require.Contains(t, err.Error(), "invalid depth: 0")
		require.Empty(t, cfg.name)
	})

	t.Run("skips nil options", func(t *testing.T) {
		cfg := &testConfig{}
		err := Apply(cfg, nil, withName("chunk"))

		require.NoError(t, err)
		require.Equal(t, "chunk", cfg.name)
	})

	t.Run("no options", func(t *testing.T) {
		cfg := &testConfig{}
		require.NoError(t, Apply(cfg))
		require.Empty(t, cfg.applied)
	})
}

func TestNew_PropagatesError(t *testing.T) {
	sentinel := errors.New("rejected")
	opt := New(func(*testConfig) error { return sentinel })

	require.ErrorIs(t, Apply(&testConfig{}, opt), sentinel)
}

func TestPositive(t *testing.T) {
	require.NoError(t, Positive("workers", 1))
	require.Error(t, Positive("workers", 0))
	require.Error(t, Positive("workers", -3))
}
