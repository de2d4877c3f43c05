package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/angelmondragon/storefront-backend/api/controllers"
	"github.com/angelmondragon/storefront-backend/api/controllers/dto"
	"github.com/angelmondragon/storefront-backend/api/middleware"
	"github.com/angelmondragon/storefront-backend/internal/cart"
	"github.com/angelmondragon/storefront-backend/internal/catalog"
	"github.com/angelmondragon/storefront-backend/internal/checkout"
	"github.com/angelmondragon/storefront-backend/internal/newsletter"
	"github.com/angelmondragon/storefront-backend/internal/sessions"
	"github.com/angelmondragon/storefront-backend/internal/storeinfo"
	"github.com/angelmondragon/storefront-backend/internal/wishlist"
	"github.com/angelmondragon/storefront-backend/pkg/config"
	"github.com/angelmondragon/storefront-backend/pkg/db"
	"github.com/angelmondragon/storefront-backend/pkg/logger"
	"github.com/angelmondragon/storefront-backend/pkg/redis"
)

// Deps are the services and clients served by the HTTP API. Redis is
// optional; without it idempotency and rate limiting are disabled.
type Deps struct {
	Config  *config.Config
	Logger  *logger.Logger
	DB      db.Pinger
	Redis   *redis.Client
	Metrics http.Handler

	Sessions   *sessions.Registry
	Catalog    catalog.Service
	Cart       cart.Service
	Wishlist   wishlist.Service
	Checkout   checkout.Service
	Newsletter newsletter.Service
	StoreInfo  *storeinfo.Service
}

func NewRouter(deps Deps) http.Handler {
	cfg := deps.Config
	logg := deps.Logger

	var (
		idempotencyStore redis.IdempotencyStore
		limiter          redis.RateLimiter
		redisPinger      redis.Pinger
	)
	if deps.Redis != nil {
		idempotencyStore = deps.Redis
		limiter = deps.Redis
		redisPinger = deps.Redis
	}

	presenter := dto.Presenter{
		CurrencySymbol:   cfg.Catalog.CurrencySymbol,
		PlaceholderImage: cfg.Catalog.PlaceholderImage,
	}
	newsletterPolicy := middleware.NewRateLimitPolicy(
		"newsletter",
		cfg.Newsletter.Window,
		cfg.Newsletter.IPLimit,
		cfg.Newsletter.EmailLimit,
	)

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(cfg.CORS),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, deps.DB, redisPinger))
	})
	if deps.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", deps.Metrics)
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Session(cfg.Session, deps.Sessions, logg))
		r.Use(middleware.Idempotency(idempotencyStore, logg))

		r.Get("/home", controllers.Home(deps.Catalog, deps.Cart, presenter, logg))
		r.Get("/contact", controllers.ContactInfo(deps.StoreInfo))

		r.Route("/products", func(r chi.Router) {
			r.Get("/", controllers.ProductList(deps.Catalog, deps.Sessions, presenter, logg))
			r.Get("/categories", controllers.ProductCategories(deps.Catalog))
			r.Get("/best-sellers", controllers.ProductBestSellers(deps.Catalog, presenter, logg))
			r.Get("/showcase", controllers.ProductShowcase(deps.Catalog, presenter, logg))
			r.Get("/{productId}", controllers.ProductDetail(deps.Catalog, presenter, logg))
		})

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", controllers.CartFetch(deps.Cart, presenter, logg))
			r.Delete("/", controllers.CartClear(deps.Cart, presenter, logg))
			r.Get("/count", controllers.CartCount(deps.Cart, logg))
			r.Post("/items", controllers.CartAddItem(deps.Cart, presenter, logg))
			r.Delete("/items/{productId}", controllers.CartRemoveItem(deps.Cart, presenter, logg))
		})

		r.Post("/checkout", controllers.Checkout(deps.Checkout, presenter, logg))

		r.Get("/search", controllers.SearchFetch(deps.Sessions, logg))
		r.Put("/search", controllers.SearchUpdate(deps.Sessions, logg))

		r.Route("/wishlist", func(r chi.Router) {
			r.Get("/", controllers.WishlistList(deps.Wishlist, presenter, logg))
			r.Post("/", controllers.WishlistAdd(deps.Wishlist, presenter, logg))
			r.Delete("/{productId}", controllers.WishlistRemove(deps.Wishlist, logg))
		})

		r.With(middleware.RateLimit(newsletterPolicy, limiter, logg)).
			Post("/newsletter", controllers.NewsletterSubscribe(deps.Newsletter, logg))
	})

	return r
}
