package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, EnvDevelopment, cfg.Env)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "templates", cfg.TemplatesDir)
	assert.Equal(t, "college_portal.db", cfg.Database.Path)
	assert.Equal(t, "portal_session", cfg.Session.CookieName)
	assert.Equal(t, 24*time.Hour, cfg.Session.TTL)
	assert.Equal(t, "uploads", cfg.Uploads.Dir)
	assert.False(t, cfg.Dashboard.CacheEnabled)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("TEMPLATES_DIR", "/srv/portal/templates")
	t.Setenv("PORT", "9090")
	t.Setenv("SESSION_TTL", "1h")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "/srv/portal/templates", cfg.TemplatesDir)
	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, time.Hour, cfg.Session.TTL)
}
