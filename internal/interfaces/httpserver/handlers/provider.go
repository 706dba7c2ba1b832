package handlers

import (
	"github.com/rs/zerolog"

	"foodatlas-server/internal/domain/food"
	"foodatlas-server/internal/domain/user"
	authinfra "foodatlas-server/internal/infrastructure/auth"
)

// Provider bundles the route handlers for registration.
type Provider struct {
	Auth *AuthHandler
	Food *FoodHandler
}

// NewProvider constructs all handlers with their dependencies.
func NewProvider(users *user.Service, foods *food.Service, codec *authinfra.TokenCodec, cookies *authinfra.CookiePolicy, log zerolog.Logger) *Provider {
	return &Provider{
		Auth: NewAuthHandler(users, codec, cookies, log),
		Food: NewFoodHandler(foods, log),
	}
}
