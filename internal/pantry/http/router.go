package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/pantry/internal/pantry/service"
	"github.com/aussiebroadwan/pantry/internal/pantry/store"
	"github.com/aussiebroadwan/pantry/pkg/httpx"
	"github.com/aussiebroadwan/pantry/pkg/jwtx"
	"github.com/aussiebroadwan/pantry/pkg/slogx"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	_ "github.com/aussiebroadwan/pantry/api/pantry" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	verifier     jwtx.Verifier
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger
	store        store.Store

	// Metrics instruments every request when set. Gatherer backs /metrics.
	Metrics  *httpx.Metrics
	Gatherer prometheus.Gatherer

	SignupService       *service.SignupService
	SessionService      *service.SessionService
	InviteService       *service.InviteService
	MembershipService   *service.MembershipService
	LocationService     *service.LocationService
	StoreService        *service.StoreService
	AisleService        *service.AisleService
	ItemService         *service.ItemService
	InventoryService    *service.InventoryService
	ShoppingListService *service.ShoppingListService
}

func NewRouter(
	verifier jwtx.Verifier,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		verifier:     verifier,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	// Innermost so the matched pattern is visible after the mux returns.
	if r.Metrics != nil {
		r.middlewares = append(r.middlewares, r.Metrics.Middleware)
	}

	r.registerAccounts()
	r.registerFamily()
	r.registerLocations()
	r.registerStores()
	r.registerAisles()
	r.registerItems()
	r.registerInventory()
	r.registerShoppingList()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Pantry API
//	@version		0.1.0
//	@description	Family-scoped grocery inventory. Every resource belongs to the caller's family; ids of other families read as not found.
//
//	@contact.name	AussieBroadWAN Team
//
//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT
//
//	@host			localhost:8080
//	@BasePath		/
//
//	@schemes		http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Access token from POST /v1/sessions. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

// authed wraps a family scoped handler: bearer token first, then a per-user
// limit.
func (r *Router) authed(h http.HandlerFunc, limit httpx.RateLimitConfig) http.Handler {
	return httpx.Chain(h,
		httpx.AuthnMiddleware(r.verifier),
		httpx.RateLimitByUser(limit),
	)
}

func (r *Router) registerAccounts() {
	// POST /signup - strict by IP, account creation is unauthenticated
	r.Mux.Handle("POST /v1/signup",
		httpx.Chain(&SignupHandler{SignupService: r.SignupService},
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	// POST /sessions - strict by IP to slow password guessing
	r.Mux.Handle("POST /v1/sessions",
		httpx.Chain(&SessionHandler{SessionService: r.SessionService},
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
}

func (r *Router) registerFamily() {
	inv := &InvitationsHandler{InviteService: r.InviteService}
	fam := &FamilyHandler{MembershipService: r.MembershipService}

	// Preview is public; the token is the credential.
	r.Mux.Handle("GET /v1/invitations/preview",
		httpx.Chain(http.HandlerFunc(inv.HandlePreview),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
	r.Mux.Handle("POST /v1/invitations", r.authed(inv.HandleCreate, httpx.ModerateLimit))
	r.Mux.Handle("GET /v1/invitations", r.authed(inv.HandleList, httpx.ModerateLimit))

	r.Mux.Handle("GET /v1/family", r.authed(fam.HandleGet, httpx.LenientLimit))
	r.Mux.Handle("PUT /v1/families/{familyID}/members/{userID}/role", r.authed(fam.HandleChangeRole, httpx.ModerateLimit))
}

func (r *Router) registerLocations() {
	h := &LocationsHandler{LocationService: r.LocationService}

	r.Mux.Handle("GET /v1/locations", r.authed(h.HandleList, httpx.LenientLimit))
	r.Mux.Handle("POST /v1/locations", r.authed(h.HandleCreate, httpx.ModerateLimit))
	r.Mux.Handle("PATCH /v1/locations/{id}", r.authed(h.HandleRename, httpx.ModerateLimit))
	r.Mux.Handle("DELETE /v1/locations/{id}", r.authed(h.HandleDelete, httpx.ModerateLimit))
}

func (r *Router) registerStores() {
	h := &StoresHandler{StoreService: r.StoreService}

	r.Mux.Handle("GET /v1/stores", r.authed(h.HandleList, httpx.LenientLimit))
	r.Mux.Handle("POST /v1/stores", r.authed(h.HandleCreate, httpx.ModerateLimit))
	r.Mux.Handle("PATCH /v1/stores/{id}", r.authed(h.HandleRename, httpx.ModerateLimit))
	r.Mux.Handle("DELETE /v1/stores/{id}", r.authed(h.HandleDelete, httpx.ModerateLimit))
}

func (r *Router) registerAisles() {
	h := &AislesHandler{AisleService: r.AisleService}

	r.Mux.Handle("GET /v1/aisles", r.authed(h.HandleList, httpx.LenientLimit))
	r.Mux.Handle("POST /v1/aisles", r.authed(h.HandleCreate, httpx.ModerateLimit))
	r.Mux.Handle("PATCH /v1/aisles/{id}", r.authed(h.HandleUpdate, httpx.ModerateLimit))
	r.Mux.Handle("DELETE /v1/aisles/{id}", r.authed(h.HandleDelete, httpx.ModerateLimit))
}

func (r *Router) registerItems() {
	h := &ItemsHandler{ItemService: r.ItemService}

	r.Mux.Handle("GET /v1/items", r.authed(h.HandleList, httpx.LenientLimit))
	r.Mux.Handle("POST /v1/items", r.authed(h.HandleCreate, httpx.ModerateLimit))
	r.Mux.Handle("PATCH /v1/items/{id}", r.authed(h.HandleUpdate, httpx.ModerateLimit))
	r.Mux.Handle("DELETE /v1/items/{id}", r.authed(h.HandleDelete, httpx.ModerateLimit))
}

func (r *Router) registerInventory() {
	h := &InventoryHandler{InventoryService: r.InventoryService}

	r.Mux.Handle("GET /v1/inventory", r.authed(h.HandleList, httpx.LenientLimit))
	r.Mux.Handle("POST /v1/inventory", r.authed(h.HandleCreate, httpx.LenientLimit))
	r.Mux.Handle("POST /v1/inventory/restock", r.authed(h.HandleRestock, httpx.LenientLimit))
	r.Mux.Handle("PATCH /v1/inventory/{id}", r.authed(h.HandleUpdate, httpx.LenientLimit))
	r.Mux.Handle("DELETE /v1/inventory/{id}", r.authed(h.HandleDelete, httpx.LenientLimit))
}

func (r *Router) registerShoppingList() {
	h := &ShoppingListHandler{ShoppingListService: r.ShoppingListService}

	// Ticking items off in a shop is bursty, hence lenient limits throughout.
	r.Mux.Handle("GET /v1/shopping-list", r.authed(h.HandleList, httpx.LenientLimit))
	r.Mux.Handle("POST /v1/shopping-list", r.authed(h.HandleAdd, httpx.LenientLimit))
	r.Mux.Handle("GET /v1/shopping-list/count", r.authed(h.HandleCount, httpx.LenientLimit))
	r.Mux.Handle("DELETE /v1/shopping-list/checked", r.authed(h.HandleClearChecked, httpx.LenientLimit))
	r.Mux.Handle("POST /v1/shopping-list/{id}/toggle", r.authed(h.HandleToggle, httpx.LenientLimit))
	r.Mux.Handle("DELETE /v1/shopping-list/{id}", r.authed(h.HandleDelete, httpx.LenientLimit))
}

func (r *Router) registerSystem() {
	// Health check endpoints - lenient rate limits (monitoring systems may poll frequently)
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)

	if r.Gatherer != nil {
		r.Mux.Handle("GET /metrics", promhttp.HandlerFor(r.Gatherer, promhttp.HandlerOpts{}))
	}
}
