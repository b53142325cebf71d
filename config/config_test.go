package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validEnv() map[string]string {
	return map[string]string{
		"CLIENT_ID":     "client-123",
		"CLIENT_SECRET": "s3cret",
		"AUTHORITY":     "https://login.microsoftonline.com/contoso.onmicrosoft.com",
		"SCOPE":         "User.Read, Mail.Read ,",
		"REDIRECT_URI":  "http://localhost:8000/get_access_token",
	}
}

func TestLoadFrom_Defaults(t *testing.T) {
	cfg, err := LoadFrom(validEnv())
	require.NoError(t, err)

	assert.Equal(t, "client-123", cfg.ClientID)
	assert.Equal(t, "s3cret", cfg.ClientSecret)
	assert.Equal(t, []string{"User.Read", "Mail.Read"}, cfg.Scopes)
	assert.Equal(t, "msal", cfg.Provider)
	assert.Equal(t, "8000", cfg.Port)
	assert.Equal(t, "token_gate.db", cfg.DBPath)
	assert.False(t, cfg.UseHTTPS)
	assert.Equal(t, 10*time.Second, cfg.TokenTimeout)
	assert.Equal(t, 10*time.Minute, cfg.StateTTL)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadFrom_Overrides(t *testing.T) {
	environ := validEnv()
	environ["PROVIDER"] = "OIDC"
	environ["PORT"] = "9090"
	environ["USE_HTTPS"] = "true"
	environ["TOKEN_TIMEOUT"] = "3s"
	environ["STATE_TTL"] = "2m"

	cfg, err := LoadFrom(environ)
	require.NoError(t, err)

	assert.Equal(t, "oidc", cfg.Provider)
	assert.Equal(t, "9090", cfg.Port)
	assert.True(t, cfg.UseHTTPS)
	assert.Equal(t, 3*time.Second, cfg.TokenTimeout)
	assert.Equal(t, 2*time.Minute, cfg.StateTTL)

	auth := cfg.Authenticator()
	assert.Equal(t, "oidc", auth.Kind)
	assert.Equal(t, cfg.RedirectURI, auth.RedirectURL)
	assert.Equal(t, cfg.Scopes, auth.Scopes)
	assert.Equal(t, 3*time.Second, auth.Timeout)
}

func TestLoadFrom_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		value   string
		unset   bool
		wantVar string
	}{
		{name: "missing client id", key: "CLIENT_ID", unset: true, wantVar: "CLIENT_ID"},
		{name: "missing secret", key: "CLIENT_SECRET", unset: true, wantVar: "CLIENT_SECRET"},
		{name: "missing scope", key: "SCOPE", unset: true, wantVar: "SCOPE"},
		{name: "blank scope list", key: "SCOPE", value: " , ,", wantVar: "SCOPE"},
		{name: "relative authority", key: "AUTHORITY", value: "/common", wantVar: "AUTHORITY"},
		{name: "bad redirect", key: "REDIRECT_URI", value: "localhost:8000", wantVar: "REDIRECT_URI"},
		{name: "unknown provider", key: "PROVIDER", value: "saml", wantVar: "PROVIDER"},
		{name: "bad timeout", key: "TOKEN_TIMEOUT", value: "soon", wantVar: "TokenTimeout"},
		{name: "zero ttl", key: "STATE_TTL", value: "0s", wantVar: "STATE_TTL"},
		{name: "sub-second ttl", key: "STATE_TTL", value: "500ms", wantVar: "STATE_TTL"},
		{name: "blank client id", key: "CLIENT_ID", value: "   ", wantVar: "CLIENT_ID"},
		{name: "blank secret", key: "CLIENT_SECRET", value: "\t", wantVar: "CLIENT_SECRET"},
		{name: "blank authority", key: "AUTHORITY", value: "  ", wantVar: "AUTHORITY"},
		{name: "blank redirect", key: "REDIRECT_URI", value: " ", wantVar: "REDIRECT_URI"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			environ := validEnv()
			if tt.unset {
				delete(environ, tt.key)
			} else {
				environ[tt.key] = tt.value
			}

			_, err := LoadFrom(environ)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrConfiguration)
			assert.Contains(t, err.Error(), tt.wantVar)
		})
	}
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()

	loaded, err := LoadDotEnv(filepath.Join(dir, "missing.env"))
	require.NoError(t, err)
	assert.False(t, loaded)

	path := filepath.Join(dir, "test.env")
	require.NoError(t, os.WriteFile(path, []byte("TOKEN_GATE_TEST_VALUE=from-file\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("TOKEN_GATE_TEST_VALUE") })

	loaded, err = LoadDotEnv(path)
	require.NoError(t, err)
	assert.True(t, loaded)
	assert.Equal(t, "from-file", os.Getenv("TOKEN_GATE_TEST_VALUE"))
}
