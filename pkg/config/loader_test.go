package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gorantiwarrohan3-stack/prasadamConnect/pkg/config"
)

type loaderTestConfig struct {
	Port int    `env:"LOADER_TEST_PORT" envDefault:"8080"`
	Name string `env:"LOADER_TEST_NAME" envDefault:"default-name"`
}

type cachedTestConfig struct {
	Value string `env:"CACHED_TEST_VALUE" envDefault:"initial"`
}

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		var cfg loaderTestConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, 8080, cfg.Port)
		assert.Equal(t, "default-name", cfg.Name)
	})

	t.Run("nil pointer", func(t *testing.T) {
		var cfg *loaderTestConfig
		err := config.Load(cfg)
		assert.ErrorIs(t, err, config.ErrNilPointer)
	})

	t.Run("cached after first load", func(t *testing.T) {
		var first cachedTestConfig
		require.NoError(t, config.Load(&first))
		assert.Equal(t, "initial", first.Value)

		// Changing the environment after the first load has no effect;
		// the cached copy is returned.
		t.Setenv("CACHED_TEST_VALUE", "changed")
		var second cachedTestConfig
		require.NoError(t, config.Load(&second))
		assert.Equal(t, "initial", second.Value)
	})
}
