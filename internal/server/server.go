package server

import (
	"context"
	"net/http"
	"time"

	"arena/internal/auth"
	"arena/internal/booking"
	"arena/internal/calendar"
	"arena/internal/config"
	"arena/internal/email"
	"arena/internal/invoice"
	"arena/internal/resource"
	"arena/internal/user"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
)

type Server struct {
	router      *gin.Engine
	http        *http.Server
	config      *config.Config
	userService user.Service
}

func New(db *sqlx.DB, cfg *config.Config, emailService *email.Service) *Server {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(
		gin.Recovery(),
		RequestLoggingMiddleware(),
		MetricsMiddleware(),
		RateLimitMiddleware(cfg.RateLimitRPS, cfg.RateLimitBurst),
	)

	loc := cfg.Location()

	userRepo := user.NewRepository(db)
	userService := user.NewService(userRepo, emailService, cfg.JWTSecret)
	resourceService := resource.NewService(resource.NewRepository(db))
	invoiceService := invoice.NewService(invoice.NewRepository(db))
	bookingService := booking.NewService(
		booking.NewRepository(db),
		resourceService,
		userRepo,
		emailService,
		invoiceService,
		booking.Options{MaxOccurrences: cfg.MaxRecurringOccurrences, Location: loc},
	)
	calendarService := calendar.NewService(resourceService, bookingService, loc)

	userHandler := user.NewHandler(userService)
	resourceHandler := resource.NewHandler(resourceService)
	bookingHandler := booking.NewHandler(bookingService)
	calendarHandler := calendar.NewHandler(calendarService, loc)
	invoiceHandler := invoice.NewHandler(invoiceService)

	public := router.Group("/auth")
	{
		public.POST("/register", userHandler.Register)
		public.POST("/login", userHandler.Login)
		public.POST("/refresh", userHandler.RefreshToken)
	}

	authMiddleware := auth.AuthMiddleware(cfg.JWTSecret)
	protected := router.Group("/")
	protected.Use(authMiddleware)
	{
		protected.GET("/me", userHandler.GetMe)

		protected.GET("/resources", resourceHandler.ListResources)
		protected.GET("/resources/:resourceID", resourceHandler.GetResource)
		protected.GET("/resources/:resourceID/parts", resourceHandler.ListParts)
		protected.GET("/resources/:resourceID/calendar", calendarHandler.Day)
		protected.GET("/resources/:resourceID/blocked", calendarHandler.Blocked)
		protected.GET("/resources/:resourceID/availability", calendarHandler.Availability)

		protected.POST("/bookings", bookingHandler.Create)
		protected.GET("/bookings", bookingHandler.ListMine)
		protected.GET("/bookings/:bookingID", bookingHandler.Get)
		protected.POST("/bookings/:bookingID/cancel", bookingHandler.Cancel)

		protected.GET("/invoices", invoiceHandler.ListMine)
		protected.GET("/invoices/:invoiceID", invoiceHandler.Get)
	}

	admin := router.Group("/admin")
	admin.Use(authMiddleware, auth.RequireRole(auth.RoleAdmin))
	{
		admin.GET("/users/pending", userHandler.ListPending)
		admin.POST("/users/:userID/approve", userHandler.Approve)
		admin.POST("/users/:userID/reject", userHandler.Reject)

		admin.POST("/resources", resourceHandler.CreateResource)
		admin.PATCH("/resources/:resourceID/rules", resourceHandler.UpdateRules)
		admin.POST("/resources/:resourceID/parts", resourceHandler.CreatePart)
		admin.DELETE("/resources/:resourceID/parts/:partID", resourceHandler.DeletePart)

		admin.GET("/bookings", bookingHandler.List)
		admin.GET("/bookings/stats", bookingHandler.Stats)
		admin.POST("/bookings/:bookingID/approve", bookingHandler.Approve)
		admin.POST("/bookings/:bookingID/reject", bookingHandler.Reject)

		admin.GET("/invoices", invoiceHandler.List)
		admin.PATCH("/invoices/:invoiceID", invoiceHandler.UpdateStatus)

		admin.GET("/test-email", TestEmail(emailService))
	}

	router.GET("/health", Health(db.PingContext, emailService.Ping))
	router.GET("/metrics", Metrics())
	SetupSwagger(router)

	return &Server{
		router: router,
		http: &http.Server{
			Addr:              ":" + cfg.Port,
			Handler:           CORS(cfg.AllowedOrigins, router),
			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       15 * time.Second,
			WriteTimeout:      30 * time.Second,
			IdleTimeout:       120 * time.Second,
		},
		config:      cfg,
		userService: userService,
	}
}

// EnsureAdmin creates the configured admin account when both credentials are set.
func (s *Server) EnsureAdmin(ctx context.Context) error {
	if s.config.AdminEmail == "" || s.config.AdminPassword == "" {
		return nil
	}
	return s.userService.EnsureAdmin(ctx, s.config.AdminEmail, s.config.AdminPassword)
}

func (s *Server) Handler() http.Handler {
	return s.http.Handler
}

func (s *Server) Start() error {
	return s.http.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}
