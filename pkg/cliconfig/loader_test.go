package cliconfig

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func useTempConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	t.Setenv(EnvConfig, path)
	t.Setenv(EnvAPIURL, "")
	t.Setenv(EnvToken, "")
	t.Setenv(EnvContext, "")
	return path
}

func TestLoadMissingFileYieldsEmptyConfig(t *testing.T) {
	useTempConfig(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Empty(t, cfg.CurrentContext)
	assert.Empty(t, cfg.Contexts)
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	path := useTempConfig(t)

	cfg := &Config{Contexts: map[string]*Context{}}
	require.NoError(t, cfg.AddContext("staging", &Context{
		APIURL:      "https://staging.fliits.com",
		Description: "staging cluster",
	}))
	require.NoError(t, cfg.SetCurrentContext("staging"))
	require.NoError(t, cfg.SetCredentials("tok-1", "admin", "Ada", "ada@fliits.com"))
	require.NoError(t, Save(cfg))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	loaded, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "staging", loaded.CurrentContext)
	ctx := loaded.Current()
	require.NotNil(t, ctx)
	assert.Equal(t, "https://staging.fliits.com", ctx.APIURL)
	assert.Equal(t, "tok-1", ctx.Token)
	assert.Equal(t, "admin", ctx.Role)
}

func TestResolveAPIURLPrecedence(t *testing.T) {
	useTempConfig(t)

	cfg := &Config{Contexts: map[string]*Context{}}
	require.NoError(t, cfg.AddContext("prod", &Context{APIURL: "https://api.fliits.com"}))
	require.NoError(t, cfg.SetCurrentContext("prod"))
	require.NoError(t, Save(cfg))

	// Context wins over the default.
	assert.Equal(t, "https://api.fliits.com", ResolveAPIURL(""))

	// Env wins over the context.
	t.Setenv(EnvAPIURL, "https://env.fliits.com")
	assert.Equal(t, "https://env.fliits.com", ResolveAPIURL(""))

	// Flag wins over everything.
	assert.Equal(t, "https://flag.fliits.com", ResolveAPIURL("https://flag.fliits.com"))
}

func TestResolveAPIURLDefault(t *testing.T) {
	useTempConfig(t)
	assert.Equal(t, DefaultAPIURL, ResolveAPIURL(""))
}

func TestResolveTokenPrefersEnv(t *testing.T) {
	useTempConfig(t)

	cfg := &Config{Contexts: map[string]*Context{}}
	require.NoError(t, cfg.AddContext("prod", &Context{APIURL: "x", Token: "from-context"}))
	require.NoError(t, cfg.SetCurrentContext("prod"))
	require.NoError(t, Save(cfg))

	assert.Equal(t, "from-context", ResolveToken())
	t.Setenv(EnvToken, "from-env")
	assert.Equal(t, "from-env", ResolveToken())
}

func TestContextEnvOverride(t *testing.T) {
	useTempConfig(t)

	cfg := &Config{Contexts: map[string]*Context{}}
	require.NoError(t, cfg.AddContext("prod", &Context{APIURL: "https://prod"}))
	require.NoError(t, cfg.AddContext("staging", &Context{APIURL: "https://staging"}))
	require.NoError(t, cfg.SetCurrentContext("prod"))

	t.Setenv(EnvContext, "staging")
	ctx := cfg.Current()
	require.NotNil(t, ctx)
	assert.Equal(t, "https://staging", ctx.APIURL)
}

func TestRemoveContextClearsCurrentPointer(t *testing.T) {
	cfg := &Config{Contexts: map[string]*Context{}}
	require.NoError(t, cfg.AddContext("only", &Context{APIURL: "x"}))
	require.NoError(t, cfg.SetCurrentContext("only"))

	require.NoError(t, cfg.RemoveContext("only"))
	assert.Empty(t, cfg.CurrentContext)
	assert.ErrorIs(t, cfg.RemoveContext("only"), ErrContextNotFound)
}

func TestClearCredentials(t *testing.T) {
	cfg := &Config{Contexts: map[string]*Context{}}
	require.NoError(t, cfg.AddContext("prod", &Context{APIURL: "x"}))
	require.NoError(t, cfg.SetCurrentContext("prod"))
	require.NoError(t, cfg.SetCredentials("tok", "admin", "Ada", "ada@fliits.com"))

	cfg.ClearCredentials()
	ctx := cfg.Current()
	assert.Empty(t, ctx.Token)
	assert.Empty(t, ctx.Role)
	assert.Empty(t, ctx.Email)
	// The endpoint itself survives a logout.
	assert.Equal(t, "x", ctx.APIURL)
}
