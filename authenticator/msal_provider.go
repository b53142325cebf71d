package authenticator

import (
	"context"
	"fmt"
	"net/url"

	"github.com/AzureAD/microsoft-authentication-library-for-go/apps/confidential"
)

// MSALProvider implements the Provider interface on top of an MSAL confidential client
type MSALProvider struct {
	client      confidential.Client
	clientID    string
	redirectURL string
	scopes      []string
}

// NewMSALProvider creates a confidential client for the configured authority
func NewMSALProvider(cfg Config, opts ...confidential.Option) (*MSALProvider, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	cred, err := confidential.NewCredFromSecret(cfg.ClientSecret)
	if err != nil {
		return nil, fmt.Errorf("create client credential: %w", err)
	}

	opts = append([]confidential.Option{confidential.WithHTTPClient(newHTTPClient(cfg.Timeout))}, opts...)
	client, err := confidential.New(cfg.Authority, cfg.ClientID, cred, opts...)
	if err != nil {
		return nil, fmt.Errorf("create confidential client: %w", err)
	}

	return &MSALProvider{
		client:      client,
		clientID:    cfg.ClientID,
		redirectURL: cfg.RedirectURL,
		scopes:      cfg.Scopes,
	}, nil
}

// AuthCodeURL builds the authority's authorization URL and attaches the state.
// MSAL has no state option for this call, so it is added to the query here.
func (p *MSALProvider) AuthCodeURL(ctx context.Context, state string) (string, error) {
	raw, err := p.client.AuthCodeURL(ctx, p.clientID, p.redirectURL, p.scopes)
	if err != nil {
		return "", fmt.Errorf("build authorization URL: %w", err)
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("parse authorization URL: %w", err)
	}
	q := u.Query()
	q.Set("state", state)
	u.RawQuery = q.Encode()

	return u.String(), nil
}

// ExchangeCode redeems the authorization code at the authority's token endpoint
func (p *MSALProvider) ExchangeCode(ctx context.Context, code string) (*Token, error) {
	result, err := p.client.AcquireTokenByAuthCode(ctx, code, p.redirectURL, p.scopes)
	if err != nil {
		return nil, classifyExchangeError(err)
	}

	if result.AccessToken == "" {
		return nil, &ExchangeError{Description: "response contained no access token"}
	}

	return &Token{
		AccessToken: result.AccessToken,
		Expiry:      result.ExpiresOn,
	}, nil
}
