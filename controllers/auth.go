package controllers

import (
	"errors"
	"net/http"

	"gitea.com/go-chi/session"
	log "github.com/sirupsen/logrus"

	"github.com/blogem/token-gate/authenticator"
	"github.com/blogem/token-gate/services"
	"github.com/blogem/token-gate/userctx"
)

// stateSessionKey is where the pending login's state lives in the session
const stateSessionKey = "oauth_state"

// Response details
const (
	detailStateRequired       = "State is required"
	detailInvalidState        = "Invalid state"
	detailCodeRequired        = "Code is required"
	detailTokenExchange       = "Error acquiring access token"
	detailProviderUnreachable = "Identity provider unreachable"
	detailLoginFailed         = "Unable to start login"
	detailInternal            = "Internal server error"
)

// tokenResponse is the success body of the callback
type tokenResponse struct {
	AccessToken string `json:"access_token"`
}

type AuthController struct {
	auth services.AuthService
}

func NewAuthController(auth services.AuthService) *AuthController {
	return &AuthController{auth: auth}
}

// Root sends visitors straight to the login flow
func (ac *AuthController) Root(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/login", http.StatusFound)
}

// Login initiates the authentication process
func (ac *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	login, err := ac.auth.BeginLogin(r.Context(), requestInfo(r))
	if err != nil {
		log.WithError(err).Error("failed to start login")
		writeError(w, http.StatusInternalServerError, detailLoginFailed)
		return
	}

	// Save the state in the session to validate in callback
	sess := session.GetSession(r)
	if err := sess.Set(stateSessionKey, login.State); err != nil {
		log.WithError(err).Error("failed to store state in session")
		writeError(w, http.StatusInternalServerError, detailLoginFailed)
		return
	}

	http.Redirect(w, r, login.URL, http.StatusFound)
}

// Callback handles the redirect back from the identity provider
func (ac *AuthController) Callback(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	sess := session.GetSession(r)

	var expected string
	if stored, ok := sess.Get(stateSessionKey).(string); ok {
		expected = stored
	}

	token, err := ac.auth.CompleteLogin(r.Context(), services.CallbackRequest{
		RequestInfo:              requestInfo(r),
		State:                    query.Get("state"),
		ExpectedState:            expected,
		Code:                     query.Get("code"),
		ProviderError:            query.Get("error"),
		ProviderErrorDescription: query.Get("error_description"),
	})

	// A state is good for one attempt, whatever the outcome
	if expected != "" && query.Get("state") != "" {
		if err := sess.Delete(stateSessionKey); err != nil {
			log.WithError(err).Warn("failed to clear state from session")
		}
	}

	if err != nil {
		status, detail := callbackError(err)
		log.WithError(err).WithField("status", status).Warn("callback rejected")
		writeError(w, status, detail)
		return
	}

	writeJSON(w, http.StatusOK, tokenResponse{AccessToken: token.AccessToken})
}

// callbackError maps a login flow error to a status code and response detail
func callbackError(err error) (int, string) {
	switch {
	case errors.Is(err, services.ErrMissingState):
		return http.StatusBadRequest, detailStateRequired
	case errors.Is(err, services.ErrInvalidState):
		return http.StatusBadRequest, detailInvalidState
	case errors.Is(err, services.ErrMissingCode):
		return http.StatusBadRequest, detailCodeRequired
	case errors.Is(err, authenticator.ErrProviderUnreachable):
		return http.StatusBadGateway, detailProviderUnreachable
	case errors.Is(err, authenticator.ErrTokenExchangeFailed):
		return http.StatusBadRequest, detailTokenExchange
	default:
		return http.StatusInternalServerError, detailInternal
	}
}

func requestInfo(r *http.Request) services.RequestInfo {
	return services.RequestInfo{
		ClientIP:  userctx.GetClientIP(r.Context()),
		UserAgent: r.UserAgent(),
	}
}
