package authenticator

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/coreos/go-oidc/v3/oidc"
	"golang.org/x/oauth2"
)

// OpenIDProvider implements the Provider interface for a generic OpenID Connect issuer
type OpenIDProvider struct {
	config     oauth2.Config
	httpClient *http.Client
}

// NewOpenIDProvider discovers the issuer's endpoints and builds the OAuth2 client
func NewOpenIDProvider(ctx context.Context, cfg Config) (*OpenIDProvider, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	httpClient := newHTTPClient(cfg.Timeout)

	provider, err := oidc.NewProvider(
		oidc.ClientContext(ctx, httpClient),
		cfg.Authority,
	)
	if err != nil {
		return nil, fmt.Errorf("discover %s: %w", cfg.Authority, err)
	}

	conf := oauth2.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		RedirectURL:  cfg.RedirectURL,
		Endpoint:     provider.Endpoint(),
		Scopes:       cfg.Scopes,
	}

	return &OpenIDProvider{
		config:     conf,
		httpClient: httpClient,
	}, nil
}

// AuthCodeURL returns the authorization URL for the issuer
func (p *OpenIDProvider) AuthCodeURL(_ context.Context, state string) (string, error) {
	return p.config.AuthCodeURL(state), nil
}

// ExchangeCode exchanges an authorization code for tokens
func (p *OpenIDProvider) ExchangeCode(ctx context.Context, code string) (*Token, error) {
	ctx = context.WithValue(ctx, oauth2.HTTPClient, p.httpClient)

	oauth2Token, err := p.config.Exchange(ctx, code)
	if err != nil {
		var retrieveErr *oauth2.RetrieveError
		if errors.As(err, &retrieveErr) {
			return nil, &ExchangeError{
				Code:        retrieveErr.ErrorCode,
				Description: retrieveErr.ErrorDescription,
				Err:         err,
			}
		}
		return nil, classifyExchangeError(err)
	}

	if oauth2Token.AccessToken == "" {
		return nil, &ExchangeError{Description: "response contained no access token"}
	}

	token := &Token{
		AccessToken:  oauth2Token.AccessToken,
		RefreshToken: oauth2Token.RefreshToken,
		Expiry:       oauth2Token.Expiry,
	}

	// Extract ID token if present
	if idToken, ok := oauth2Token.Extra("id_token").(string); ok {
		token.IDToken = idToken
	}

	return token, nil
}
