package authenticator

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"time"
)

// Provider kinds accepted by NewProvider
const (
	KindMSAL   = "msal"
	KindOpenID = "oidc"
)

var (
	// ErrTokenExchangeFailed is returned when the provider rejects the code
	// or its response carries no access token.
	ErrTokenExchangeFailed = errors.New("token exchange failed")

	// ErrProviderUnreachable is returned when the token endpoint cannot be
	// reached within the configured timeout.
	ErrProviderUnreachable = errors.New("identity provider unreachable")
)

// Config holds OAuth provider configuration
type Config struct {
	Kind         string
	Authority    string
	ClientID     string
	ClientSecret string
	RedirectURL  string
	Scopes       []string
	Timeout      time.Duration
}

// Token represents the result of a successful code exchange
type Token struct {
	AccessToken  string
	RefreshToken string
	IDToken      string
	Expiry       time.Time
}

// Provider abstracts the two provider calls of the authorization code flow.
// Implementations are read-only after construction and safe for concurrent use.
type Provider interface {
	AuthCodeURL(ctx context.Context, state string) (string, error)
	ExchangeCode(ctx context.Context, code string) (*Token, error)
}

// ExchangeError carries the provider's error detail for a rejected exchange.
type ExchangeError struct {
	Code        string
	Description string
	Err         error
}

func (e *ExchangeError) Error() string {
	switch {
	case e.Code != "" && e.Description != "":
		return fmt.Sprintf("%s: %s: %s", ErrTokenExchangeFailed, e.Code, e.Description)
	case e.Code != "":
		return fmt.Sprintf("%s: %s", ErrTokenExchangeFailed, e.Code)
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", ErrTokenExchangeFailed, e.Err)
	}
	return ErrTokenExchangeFailed.Error()
}

// Is lets errors.Is match ErrTokenExchangeFailed
func (e *ExchangeError) Is(target error) bool {
	return target == ErrTokenExchangeFailed
}

func (e *ExchangeError) Unwrap() error {
	return e.Err
}

// NewProvider creates the provider selected by cfg.Kind
func NewProvider(ctx context.Context, cfg Config) (Provider, error) {
	switch cfg.Kind {
	case KindMSAL, "":
		return NewMSALProvider(cfg)
	case KindOpenID:
		return NewOpenIDProvider(ctx, cfg)
	default:
		return nil, fmt.Errorf("unknown provider kind %q", cfg.Kind)
	}
}

func validateConfig(cfg Config) error {
	if cfg.Authority == "" {
		return errors.New("authority is required")
	}
	if cfg.ClientID == "" {
		return errors.New("client ID is required")
	}
	if cfg.ClientSecret == "" {
		return errors.New("client secret is required")
	}
	if cfg.RedirectURL == "" {
		return errors.New("redirect URL is required")
	}
	if len(cfg.Scopes) == 0 {
		return errors.New("at least one scope is required")
	}
	return nil
}

func newHTTPClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &http.Client{Timeout: timeout}
}

// classifyExchangeError maps a transport failure to ErrProviderUnreachable
// and anything else to an *ExchangeError.
func classifyExchangeError(err error) error {
	var urlErr *url.Error
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || errors.As(err, &urlErr) || errors.As(err, &netErr) {
		return fmt.Errorf("%w: %v", ErrProviderUnreachable, err)
	}
	return &ExchangeError{Err: err}
}
