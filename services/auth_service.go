package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/blogem/token-gate/authenticator"
	"github.com/blogem/token-gate/models"
	"github.com/blogem/token-gate/repositories"
)

var (
	// ErrMissingState means the callback carried no state parameter
	ErrMissingState = errors.New("state is required")

	// ErrInvalidState means the callback state does not match the one issued
	// to this browser, or it was already used or has expired
	ErrInvalidState = errors.New("invalid state")

	// ErrMissingCode means the callback carried no authorization code
	ErrMissingCode = errors.New("code is required")
)

// AuthOptions tunes the login flow
type AuthOptions struct {
	StateTTL        time.Duration
	ExchangeTimeout time.Duration
}

// RequestInfo identifies the caller for audit records
type RequestInfo struct {
	ClientIP  string
	UserAgent string
}

// LoginRequest is the outcome of BeginLogin
type LoginRequest struct {
	State string
	URL   string
}

// CallbackRequest holds everything the provider sent back plus the state
// remembered for this browser
type CallbackRequest struct {
	RequestInfo
	State                    string
	ExpectedState            string
	Code                     string
	ProviderError            string
	ProviderErrorDescription string
}

// AuthService drives the two steps of the authorization code flow
type AuthService interface {
	BeginLogin(ctx context.Context, info RequestInfo) (*LoginRequest, error)
	CompleteLogin(ctx context.Context, req CallbackRequest) (*authenticator.Token, error)
	PurgeExpiredStates() (int64, error)
}

type authService struct {
	provider authenticator.Provider
	states   repositories.StateRepository
	audit    repositories.AuditRepository
	opts     AuthOptions
	now      func() time.Time
}

// NewAuthService creates a new auth service
func NewAuthService(provider authenticator.Provider, states repositories.StateRepository, audit repositories.AuditRepository, opts AuthOptions) AuthService {
	if opts.StateTTL <= 0 {
		opts.StateTTL = 10 * time.Minute
	}
	if opts.ExchangeTimeout <= 0 {
		opts.ExchangeTimeout = 10 * time.Second
	}

	return &authService{
		provider: provider,
		states:   states,
		audit:    audit,
		opts:     opts,
		now:      time.Now,
	}
}

// BeginLogin issues a new state, stores it and builds the provider URL
func (s *authService) BeginLogin(ctx context.Context, info RequestInfo) (*LoginRequest, error) {
	state, err := GenerateState()
	if err != nil {
		s.record(info, models.EventKindLogin, models.OutcomeInternalError, "state generation failed")
		return nil, fmt.Errorf("generate state: %w", err)
	}

	now := s.now()
	if err := s.states.Save(&models.LoginState{
		State:     state,
		IssuedAt:  now,
		ExpiresAt: now.Add(s.opts.StateTTL),
	}); err != nil {
		s.record(info, models.EventKindLogin, models.OutcomeInternalError, "state persistence failed")
		return nil, fmt.Errorf("save state: %w", err)
	}

	authURL, err := s.provider.AuthCodeURL(ctx, state)
	if err != nil {
		s.record(info, models.EventKindLogin, models.OutcomeInternalError, err.Error())
		return nil, fmt.Errorf("build authorization URL: %w", err)
	}

	s.record(info, models.EventKindLogin, models.OutcomeRedirected, "")
	return &LoginRequest{State: state, URL: authURL}, nil
}

// CompleteLogin validates the callback and exchanges the code for a token
func (s *authService) CompleteLogin(ctx context.Context, req CallbackRequest) (*authenticator.Token, error) {
	if req.State == "" {
		s.record(req.RequestInfo, models.EventKindCallback, models.OutcomeMissingState, "")
		return nil, ErrMissingState
	}

	if !statesEqual(req.ExpectedState, req.State) {
		s.record(req.RequestInfo, models.EventKindCallback, models.OutcomeInvalidState, "state does not match session")
		return nil, ErrInvalidState
	}

	if err := s.states.Consume(req.State, s.now()); err != nil {
		if errors.Is(err, repositories.ErrStateNotRedeemable) {
			s.record(req.RequestInfo, models.EventKindCallback, models.OutcomeInvalidState, err.Error())
			return nil, ErrInvalidState
		}
		s.record(req.RequestInfo, models.EventKindCallback, models.OutcomeInternalError, "state lookup failed")
		return nil, fmt.Errorf("consume state: %w", err)
	}

	if req.ProviderError != "" {
		exchangeErr := &authenticator.ExchangeError{
			Code:        req.ProviderError,
			Description: req.ProviderErrorDescription,
		}
		s.record(req.RequestInfo, models.EventKindCallback, models.OutcomeProviderError, exchangeErr.Error())
		return nil, exchangeErr
	}

	if req.Code == "" {
		s.record(req.RequestInfo, models.EventKindCallback, models.OutcomeMissingCode, "")
		return nil, ErrMissingCode
	}

	exchangeCtx, cancel := context.WithTimeout(ctx, s.opts.ExchangeTimeout)
	defer cancel()

	token, err := s.provider.ExchangeCode(exchangeCtx, req.Code)
	switch {
	case errors.Is(err, authenticator.ErrProviderUnreachable):
		s.record(req.RequestInfo, models.EventKindCallback, models.OutcomeProviderUnreachable, err.Error())
		return nil, err
	case err != nil:
		s.record(req.RequestInfo, models.EventKindCallback, models.OutcomeExchangeFailed, err.Error())
		if !errors.Is(err, authenticator.ErrTokenExchangeFailed) {
			err = &authenticator.ExchangeError{Err: err}
		}
		return nil, err
	case token == nil || token.AccessToken == "":
		err := &authenticator.ExchangeError{Description: "response contained no access token"}
		s.record(req.RequestInfo, models.EventKindCallback, models.OutcomeExchangeFailed, err.Error())
		return nil, err
	}

	s.record(req.RequestInfo, models.EventKindCallback, models.OutcomeTokenIssued, "")
	return token, nil
}

// PurgeExpiredStates drops states that can no longer be redeemed
func (s *authService) PurgeExpiredStates() (int64, error) {
	return s.states.DeleteExpired(s.now())
}

// record writes an audit event; failures are logged and never fail the request
func (s *authService) record(info RequestInfo, kind, outcome, detail string) {
	event := &models.AuthEvent{
		Timestamp: s.now(),
		Kind:      kind,
		Outcome:   outcome,
		Detail:    detail,
		ClientIP:  info.ClientIP,
		UserAgent: info.UserAgent,
	}

	if err := s.audit.Create(event); err != nil {
		log.WithError(err).WithFields(log.Fields{
			"kind":    kind,
			"outcome": outcome,
		}).Warn("failed to write audit event")
	}
}
