package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/blogem/token-gate/authenticator"
)

// ErrConfiguration marks a missing or malformed startup setting
var ErrConfiguration = errors.New("configuration error")

// Config is the validated process configuration. It is built once at
// startup and never mutated.
type Config struct {
	ClientID     string
	ClientSecret string
	Authority    string
	Scopes       []string
	RedirectURI  string
	Provider     string

	Port         string
	DBPath       string
	UseHTTPS     bool
	TokenTimeout time.Duration
	StateTTL     time.Duration
	LogLevel     string
}

// rawEnv holds the environment values before validation
type rawEnv struct {
	ClientID     string        `env:"CLIENT_ID,required,notEmpty"`
	ClientSecret string        `env:"CLIENT_SECRET,required,notEmpty"`
	Authority    string        `env:"AUTHORITY,required,notEmpty"`
	Scope        []string      `env:"SCOPE,required,notEmpty" envSeparator:","`
	RedirectURI  string        `env:"REDIRECT_URI,required,notEmpty"`
	Provider     string        `env:"PROVIDER"      envDefault:"msal"`
	Port         string        `env:"PORT"          envDefault:"8000"`
	DBPath       string        `env:"DB_PATH"       envDefault:"token_gate.db"`
	UseHTTPS     bool          `env:"USE_HTTPS"     envDefault:"false"`
	TokenTimeout time.Duration `env:"TOKEN_TIMEOUT" envDefault:"10s"`
	StateTTL     time.Duration `env:"STATE_TTL"     envDefault:"10m"`
	LogLevel     string        `env:"LOG_LEVEL"     envDefault:"info"`
}

// LoadDotEnv loads the given .env files into the process environment.
// A missing file is not an error; variables may come from the real environment.
func LoadDotEnv(filenames ...string) (bool, error) {
	if len(filenames) == 0 {
		filenames = []string{".env"}
	}
	err := godotenv.Load(filenames...)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, fmt.Errorf("%w: load %s: %v", ErrConfiguration, strings.Join(filenames, ","), err)
}

// Load reads and validates configuration from the process environment
func Load() (Config, error) {
	return parse(env.Options{})
}

// LoadFrom reads and validates configuration from the given variables only
func LoadFrom(environ map[string]string) (Config, error) {
	return parse(env.Options{Environment: environ})
}

func parse(opts env.Options) (Config, error) {
	var raw rawEnv
	if err := env.ParseWithOptions(&raw, opts); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrConfiguration, err)
	}

	cfg := Config{
		ClientID:     strings.TrimSpace(raw.ClientID),
		ClientSecret: raw.ClientSecret,
		Authority:    strings.TrimSpace(raw.Authority),
		Scopes:       trimCSV(raw.Scope),
		RedirectURI:  strings.TrimSpace(raw.RedirectURI),
		Provider:     strings.ToLower(strings.TrimSpace(raw.Provider)),
		Port:         raw.Port,
		DBPath:       raw.DBPath,
		UseHTTPS:     raw.UseHTTPS,
		TokenTimeout: raw.TokenTimeout,
		StateTTL:     raw.StateTTL,
		LogLevel:     raw.LogLevel,
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the values that env tags cannot express
func (c Config) Validate() error {
	required := []struct{ name, value string }{
		{"CLIENT_ID", c.ClientID},
		{"CLIENT_SECRET", c.ClientSecret},
		{"AUTHORITY", c.Authority},
		{"REDIRECT_URI", c.RedirectURI},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return invalid(r.name, "must not be blank")
		}
	}
	if len(c.Scopes) == 0 {
		return invalid("SCOPE", "must list at least one scope")
	}
	if err := validateURL(c.Authority); err != nil {
		return invalid("AUTHORITY", err.Error())
	}
	if err := validateURL(c.RedirectURI); err != nil {
		return invalid("REDIRECT_URI", err.Error())
	}
	switch c.Provider {
	case authenticator.KindMSAL, authenticator.KindOpenID:
	default:
		return invalid("PROVIDER", fmt.Sprintf("must be %q or %q, got %q", authenticator.KindMSAL, authenticator.KindOpenID, c.Provider))
	}
	if c.TokenTimeout <= 0 {
		return invalid("TOKEN_TIMEOUT", "must be positive")
	}
	// Session lifetimes are whole seconds
	if c.StateTTL < time.Second {
		return invalid("STATE_TTL", fmt.Sprintf("must be at least 1s, got %s", c.StateTTL))
	}
	return nil
}

// Authenticator returns the provider settings derived from this configuration
func (c Config) Authenticator() authenticator.Config {
	return authenticator.Config{
		Kind:         c.Provider,
		Authority:    c.Authority,
		ClientID:     c.ClientID,
		ClientSecret: c.ClientSecret,
		RedirectURL:  c.RedirectURI,
		Scopes:       c.Scopes,
		Timeout:      c.TokenTimeout,
	}
}

func invalid(name, reason string) error {
	return fmt.Errorf("%w: %s %s", ErrConfiguration, name, reason)
}

func validateURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("is not a valid URL: %v", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("must be an absolute http(s) URL, got %q", raw)
	}
	if u.Host == "" {
		return fmt.Errorf("must include a host, got %q", raw)
	}
	return nil
}

// trimCSV removes empty entries from a string slice.
func trimCSV(values []string) []string {
	result := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v != "" {
			result = append(result, v)
		}
	}
	return result
}
