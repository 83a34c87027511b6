// Package api exposes the workspace over HTTP.
//
//	GET    /api/v1/health       health (public)
//	POST   /auth/login          sign in (public)
//	POST   /auth/register       create an account (public)
//	POST   /auth/logout         sign out (public)
//	GET    /auth/session        session state (public)
//	GET    /api/dashboard       overview (auth)
//	GET    /api/{kind}          list documents, crypto, nominees or contacts (auth)
//	POST   /api/{kind}          add a record (auth)
//	GET    /api/{kind}/{id}     get a record (auth)
//	DELETE /api/{kind}/{id}     remove a record (auth)
package api

import (
	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"golang.org/x/exp/slog"

	dashboardAPI "digitalwill/internal/app/server/api/http/dashboard"
	healthAPI "digitalwill/internal/app/server/api/http/health"
	"digitalwill/internal/app/server/api/http/middleware"
	"digitalwill/internal/app/server/api/http/middleware/auth"
	"digitalwill/internal/app/server/api/http/middleware/bind"
	"digitalwill/internal/app/server/api/http/middleware/logger"
	resourceAPI "digitalwill/internal/app/server/api/http/resource"
	userAPI "digitalwill/internal/app/server/api/http/user"
	"digitalwill/internal/app/workspace"
	"digitalwill/internal/domain/estate"
)

type Router interface {
	SetupRoutes(api huma.API)
}

type Handlers struct {
	Health    *healthAPI.Handler
	User      *userAPI.Handler
	Dashboard *dashboardAPI.Handler
	Resources []Router
}

// New builds the router with every operation registered through huma.
func New(ws *workspace.Workspace, log *slog.Logger) *chi.Mux {
	mux := chi.NewMux()
	mux.Use(chimw.RequestID, chimw.Recoverer)

	config := huma.DefaultConfig("Digital Will API", "1.0.0")
	API := humachi.New(mux, config)

	h := handlers(API, ws, log)
	h.Health.SetupRoutes(API)
	h.User.SetupRoutes(API)
	h.Dashboard.SetupRoutes(API)
	for _, r := range h.Resources {
		r.SetupRoutes(API)
	}

	return mux
}

func handlers(API huma.API, ws *workspace.Workspace, log *slog.Logger) *Handlers {
	bindMW := bind.New(ws)
	loggerMW := logger.New(log, ws.Session())
	authMW := auth.New(API, ws.Session(), log)
	middlewares := middleware.NewContainer()

	middlewares.Add(loggerMW.Middleware())
	healthHandler := healthAPI.NewHandler(ws.Session(), log, middlewares.GetAllAndClear())

	middlewares.Add(bindMW.Middleware())
	middlewares.Add(loggerMW.Middleware())
	userHandler := userAPI.NewHandler(ws.Session(), log, middlewares.GetAllAndClear())

	protected := func() huma.Middlewares {
		middlewares.Add(bindMW.Middleware())
		middlewares.Add(loggerMW.Middleware())
		middlewares.Add(authMW.Middleware())
		return middlewares.GetAllAndClear()
	}

	lists := ws.Lists()
	tabs := func(tab string) (func(estate.Document) bool, error) {
		t, err := estate.ParseTab(tab)
		return t.Keep, err
	}

	return &Handlers{
		Health:    healthHandler,
		User:      userHandler,
		Dashboard: dashboardAPI.NewHandler(log, protected()),
		Resources: []Router{
			resourceAPI.NewHandler[estate.Document, resourceAPI.DocumentDraft]("documents", lists.Documents, log, protected(),
				resourceAPI.WithFilter[estate.Document, resourceAPI.DocumentDraft](tabs)),
			resourceAPI.NewHandler[estate.CryptoAsset, resourceAPI.CryptoDraft]("crypto", lists.Crypto, log, protected()),
			resourceAPI.NewHandler[estate.Nominee, resourceAPI.NomineeDraft]("nominees", lists.Nominees, log, protected()),
			resourceAPI.NewHandler[estate.Contact, resourceAPI.ContactDraft]("contacts", lists.Contacts, log, protected()),
		},
	}
}
