package handler

import (
	"github.com/realcloud/internal/service"
	"github.com/realcloud/internal/store"
)

// API bundles shared dependencies for HTTP handlers. It is constructed
// once in cmd/server and injected into the router, so tests can spin up
// isolated instances with their own stores.
type API struct {
	store       store.Store
	guilds      *service.GuildService
	credentials service.CredentialVerifier
	adminToken  string
	guildID     string
}

// NewAPI constructs a handler set with shared services.
func NewAPI(s store.Store, guilds *service.GuildService, credentials service.CredentialVerifier, adminToken, guildID string) *API {
	return &API{
		store:       s,
		guilds:      guilds,
		credentials: credentials,
		adminToken:  adminToken,
		guildID:     guildID,
	}
}

// Store exposes the underlying store, mainly for test seeding.
func (a *API) Store() store.Store {
	return a.store
}
