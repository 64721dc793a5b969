package conf_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wtsi-npg/npg-go-lib/conf"
)

func TestSecret(t *testing.T) {
	t.Run("Redacted In Output", func(t *testing.T) {
		s := conf.Secret("SECRET_VALUE")

		assert.Equal(t, "REDACTED", s.String())
		assert.Equal(t, "REDACTED", fmt.Sprintf("%v", s))
		assert.Equal(t, "REDACTED", fmt.Sprintf("%s", s))
		assert.Equal(t, "REDACTED", fmt.Sprintf("%#v", s))
		assert.Equal(t, "SECRET_VALUE", s.Reveal())
	})

	t.Run("Loads From File", func(t *testing.T) {
		type tokenConfig struct {
			Token conf.Secret `ini:"token,sensitive"`
		}
		path := writeINI(t, "[test]\ntoken=abc123\n")

		loader, err := conf.New[tokenConfig]()
		require.NoError(t, err)

		cfg, err := loader.Load(path, "test")
		require.NoError(t, err)
		assert.Equal(t, "abc123", cfg.Token.Reveal())
		assert.NotContains(t, fmt.Sprintf("%v", cfg), "abc123")
	})

	t.Run("Loads From Environment", func(t *testing.T) {
		type tokenConfig struct {
			Token conf.Secret `ini:"token,sensitive"`
		}
		path := writeINI(t, "[test]\nunrelated=1\n")
		t.Setenv("APP_TOKEN", "abc123")

		loader, err := conf.New[tokenConfig](conf.WithEnv("APP_"))
		require.NoError(t, err)

		cfg, err := loader.Load(path, "test")
		require.NoError(t, err)
		assert.Equal(t, "abc123", cfg.Token.Reveal())
	})
}

func TestPath(t *testing.T) {
	p := conf.Path("/usr/bin")
	assert.Equal(t, "/usr/bin", p.String())
	assert.Equal(t, "/usr/bin", fmt.Sprintf("%v", p))
}
