package services

import (
	"github.com/blogem/token-gate/authenticator"
	"github.com/blogem/token-gate/repositories"
)

// Services holds all service instances
type Services struct {
	Auth AuthService
}

// NewServices creates and initializes all service instances
func NewServices(repos *repositories.Repositories, provider authenticator.Provider, opts AuthOptions) *Services {
	return &Services{
		Auth: NewAuthService(provider, repos.States, repos.Audit, opts),
	}
}
