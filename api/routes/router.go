package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/kwojtas/vanstock-backend/api/controllers"
	"github.com/kwojtas/vanstock-backend/api/middleware"
	"github.com/kwojtas/vanstock-backend/internal/auth"
	"github.com/kwojtas/vanstock-backend/internal/ledger"
	"github.com/kwojtas/vanstock-backend/internal/products"
	"github.com/kwojtas/vanstock-backend/internal/receipts"
	"github.com/kwojtas/vanstock-backend/internal/reports"
	"github.com/kwojtas/vanstock-backend/internal/stock"
	"github.com/kwojtas/vanstock-backend/pkg/auth/session"
	"github.com/kwojtas/vanstock-backend/pkg/config"
	"github.com/kwojtas/vanstock-backend/pkg/enums"
	"github.com/kwojtas/vanstock-backend/pkg/logger"
	"github.com/kwojtas/vanstock-backend/pkg/redis"
)

// RouterParams bundles everything the HTTP surface needs.
type RouterParams struct {
	Config         *config.Config
	Logger         *logger.Logger
	DB             controllers.Pinger
	Redis          *redis.Client
	SessionChecker session.AccessSessionChecker

	AuthService     auth.Service
	RegisterService auth.RegisterService
	ProductService  products.Service
	StockService    stock.Service
	LedgerService   ledger.Service
	ReceiptService  receipts.Service
	ReportService   reports.Service
}

func NewRouter(params RouterParams) http.Handler {
	cfg := params.Config
	logg := params.Logger

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(cfg.CORS),
	)

	loginPolicy := middleware.NewAuthRateLimitPolicy(
		"login",
		cfg.AuthRateLimit.LoginWindow,
		cfg.AuthRateLimit.LoginIPLimit,
		cfg.AuthRateLimit.LoginEmailLimit,
	)
	registerPolicy := middleware.NewAuthRateLimitPolicy(
		"register",
		cfg.AuthRateLimit.RegisterWindow,
		cfg.AuthRateLimit.RegisterIPLimit,
		cfg.AuthRateLimit.RegisterEmailLimit,
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, params.DB, params.Redis, logg))
	})

	r.Route("/api/v1/auth", func(r chi.Router) {
		r.With(middleware.AuthRateLimit(loginPolicy, params.Redis, logg)).Post("/login", controllers.AuthLogin(params.AuthService, logg))
		r.With(middleware.AuthRateLimit(registerPolicy, params.Redis, logg)).Post("/register", controllers.AuthRegister(params.RegisterService, logg))

		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(cfg.JWT, params.SessionChecker, logg))
			r.Post("/logout", controllers.AuthLogout(params.AuthService, logg))
			r.Get("/me", controllers.AuthMe(params.AuthService, logg))
			r.With(middleware.RequireRole(string(enums.UserRoleAdmin), logg)).
				Patch("/users/{userID}/activate", controllers.AuthActivate(params.AuthService, logg))
		})
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWT, params.SessionChecker, logg))

		r.Route("/products", func(r chi.Router) {
			r.Get("/", controllers.ProductsList(params.ProductService, logg))
			r.Get("/{productID}", controllers.ProductsGet(params.ProductService, logg))

			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireRole(string(enums.UserRoleAdmin), logg))
				r.Post("/", controllers.ProductsCreate(params.ProductService, logg))
				r.Patch("/{productID}", controllers.ProductsUpdate(params.ProductService, logg))
				r.Delete("/{productID}", controllers.ProductsDelete(params.ProductService, logg))
			})
		})

		r.Get("/vehicle/stock", controllers.VehicleStock(params.StockService, logg))

		r.Route("/warehouse", func(r chi.Router) {
			r.Post("/receive", controllers.WarehouseReceive(params.StockService, logg))
			r.Post("/issue", controllers.WarehouseIssue(params.StockService, logg))
			r.Put("/stock", controllers.WarehouseReset(params.StockService, logg))
			r.Get("/history", controllers.WarehouseHistory(params.LedgerService, logg))
		})

		r.Route("/receipts", func(r chi.Router) {
			r.Post("/", controllers.ReceiptsCreate(params.ReceiptService, logg))
			r.Get("/", controllers.ReceiptsList(params.ReceiptService, logg))
			r.Get("/{receiptID}", controllers.ReceiptsGet(params.ReceiptService, logg))
			r.With(middleware.RequireRole(string(enums.UserRoleAdmin), logg)).
				Delete("/{receiptID}", controllers.ReceiptsDelete(params.ReceiptService, logg))
		})

		r.Post("/reports/settlement", controllers.ReportsSettlement(params.ReportService, logg))
	})

	return r
}
