package routes

import (
	"context"
	"net"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/booking-api/internal/audit"
	"github.com/BruksfildServices01/booking-api/internal/config"
	dbpkg "github.com/BruksfildServices01/booking-api/internal/db"
	domainBooking "github.com/BruksfildServices01/booking-api/internal/domain/booking"
	domain "github.com/BruksfildServices01/booking-api/internal/domain/resource"
	"github.com/BruksfildServices01/booking-api/internal/handlers"
	infraRepo "github.com/BruksfildServices01/booking-api/internal/infra/repository"
	"github.com/BruksfildServices01/booking-api/internal/middleware"
	"github.com/BruksfildServices01/booking-api/internal/models"
	"github.com/BruksfildServices01/booking-api/internal/query"
	ucBooking "github.com/BruksfildServices01/booking-api/internal/usecase/booking"
	ucResource "github.com/BruksfildServices01/booking-api/internal/usecase/resource"
)

// Deps are the process-wide singletons built in main. Cache, Uploader and
// Payments are optional.
type Deps struct {
	DB       *gorm.DB
	Config   *config.Config
	Log      zerolog.Logger
	Audit    *audit.Dispatcher
	Cache    domain.Cache
	Uploader handlers.Uploader
	Payments domainBooking.PaymentGateway
}

// resource wires the generic handler endpoints of one resource.
type resource interface {
	List(*gin.Context)
	Get(*gin.Context)
	Create(*gin.Context)
	Update(*gin.Context)
	Delete(*gin.Context)
	BulkDelete(*gin.Context)
}

func newService[T domain.Entity](
	d Deps,
	relations infraRepo.Relations,
	def ucResource.Definition,
) *ucResource.Service[T] {
	return ucResource.NewService[T](
		infraRepo.NewResourceGormRepository[T](d.DB, relations),
		def,
		query.NewPaginator(d.Config.PaginationDefaultLimit),
		d.Log,
	)
}

func RegisterRoutes(r *gin.Engine, d Deps) {

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware(d.Config.AllowedOrigins()))

	auth := middleware.AuthMiddleware(d.Config)
	admin := middleware.RequireRole(models.RoleAdmin)

	// ======================================================
	// SERVICES
	// ======================================================
	categories := newService[models.Category](d, infraRepo.CategoryRelations, ucResource.CategoryDefinition)
	services := newService[models.Service](d, infraRepo.ServiceRelations, ucResource.ServiceDefinition)
	availability := newService[models.Availability](d, infraRepo.AvailabilityRelations, ucResource.AvailabilityDefinition)
	bookings := ucResource.NewService[models.Booking](
		infraRepo.NewBookingResourceRepository(d.DB),
		ucResource.BookingDefinition,
		query.NewPaginator(d.Config.PaginationDefaultLimit),
		d.Log,
	)
	cart := newService[models.CartItem](d, infraRepo.CartItemRelations, ucResource.CartItemDefinition)
	reviews := newService[models.Review](d, infraRepo.ReviewRelations, ucResource.ReviewDefinition)
	blog := newService[models.Blog](d, infraRepo.BlogRelations, ucResource.BlogDefinition)
	feedback := newService[models.Feedback](d, infraRepo.FeedbackRelations, ucResource.FeedbackDefinition)

	if d.Cache != nil {
		categories.WithCache(d.Cache)
		services.WithCache(d.Cache)
		evictParents(d.DB, d.Log, categories, services, availability, bookings, reviews)
	}

	userRepo := infraRepo.NewUserGormRepository(d.DB)
	profiles := ucResource.NewService[models.User](
		userRepo,
		ucResource.ProfileDefinition,
		query.NewPaginator(d.Config.PaginationDefaultLimit),
		d.Log,
	)

	// ======================================================
	// USE CASES: BOOKINGS
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(d.DB)

	createBookingUC := ucBooking.NewCreateBooking(bookingRepo, d.Audit, d.Config.Timezone)
	transitionUC := ucBooking.NewTransition(bookingRepo, d.Audit, d.Config.Timezone)
	if d.Cache != nil {
		createBookingUC.WithServiceCache(services)
		transitionUC.WithServiceCache(services)
	}
	checkoutUC := ucBooking.NewCheckout(bookingRepo, d.Payments, d.Audit)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(userRepo, d.Config, net.DefaultResolver, d.Audit, d.Log)
	profileHandler := handlers.NewProfileHandler(profiles, d.Audit)
	bookingHandler := handlers.NewBookingHandler(createBookingUC, transitionUC, checkoutUC)
	imageHandler := handlers.NewServiceImageHandler(
		services,
		infraRepo.NewResourceGormRepository[models.Image](d.DB, infraRepo.Relations{}),
		d.Uploader,
		d.Audit,
		d.Log,
	)
	auditLogsHandler := handlers.NewAuditLogsHandler(
		infraRepo.NewAuditLogGormRepository(d.DB),
		query.NewPaginator(d.Config.PaginationDefaultLimit),
	)
	healthHandler := handlers.NewHealthHandler(func(ctx context.Context) error {
		return dbpkg.Ping(ctx, d.DB)
	})

	r.GET("/health", healthHandler.Check)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api/v1")

	// ------------------------------
	// AUTH
	// ------------------------------
	api.POST("/auth/signup", authHandler.Signup)
	api.POST("/auth/signin", authHandler.Signin)

	api.GET("/profiles/me", auth, profileHandler.GetMe)
	api.PATCH("/profiles/me", auth, profileHandler.UpdateMe)

	// ------------------------------
	// CATALOG: public reads, admin writes
	// ------------------------------
	catalog(api.Group("/category"), handlers.NewResourceHandler(categories, d.Audit), auth, admin)
	catalog(api.Group("/services"), handlers.NewResourceHandler(services, d.Audit), auth, admin)
	catalog(api.Group("/availability"), handlers.NewResourceHandler(availability, d.Audit), auth, admin)
	catalog(api.Group("/blog"), handlers.NewResourceHandler(blog, d.Audit), auth, admin)

	api.POST("/services/:id/images", auth, admin, imageHandler.Upload)

	// ------------------------------
	// OWNED: any authenticated user, scoped to own rows
	// ------------------------------
	bookingGroup := api.Group("/booking", auth)
	bookingRes := handlers.NewResourceHandler(bookings, d.Audit).ScopedTo("user_id")
	{
		bookingGroup.GET("", bookingRes.List)
		bookingGroup.GET("/:id", bookingRes.Get)
		bookingGroup.POST("", bookingHandler.Create)
		bookingGroup.PATCH("/:id", bookingRes.Update)
		bookingGroup.DELETE("/:id", bookingRes.Delete)
		bookingGroup.POST("/bulk-delete", bookingRes.BulkDelete)

		bookingGroup.POST("/:id/confirm", bookingHandler.Confirm)
		bookingGroup.POST("/:id/cancel", bookingHandler.Cancel)
		bookingGroup.POST("/:id/complete", bookingHandler.Complete)
		bookingGroup.POST("/:id/checkout", bookingHandler.Checkout)
	}

	owned(api.Group("/cart", auth), handlers.NewResourceHandler(cart, d.Audit).ScopedTo("user_id"))
	owned(api.Group("/reviews", auth), handlers.NewResourceHandler(reviews, d.Audit).ScopedTo("user_id"))
	owned(api.Group("/feedback", auth), handlers.NewResourceHandler(feedback, d.Audit).ScopedTo("user_id"))

	// ------------------------------
	// ADMIN
	// ------------------------------
	api.GET("/audit-logs", auth, admin, auditLogsHandler.List)
}

func catalog(g *gin.RouterGroup, h resource, auth, admin gin.HandlerFunc) {
	g.GET("", h.List)
	g.GET("/:id", h.Get)
	g.POST("", auth, admin, h.Create)
	g.PATCH("/:id", auth, admin, h.Update)
	g.DELETE("/:id", auth, admin, h.Delete)
	g.POST("/bulk-delete", auth, admin, h.BulkDelete)
}

func owned(g *gin.RouterGroup, h resource) {
	g.GET("", h.List)
	g.GET("/:id", h.Get)
	g.POST("", h.Create)
	g.PATCH("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
	g.POST("/bulk-delete", h.BulkDelete)
}
