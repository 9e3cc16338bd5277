package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barbershop-api/internal/audit"
	"github.com/BruksfildServices01/barbershop-api/internal/config"
	"github.com/BruksfildServices01/barbershop-api/internal/domain/document"
	"github.com/BruksfildServices01/barbershop-api/internal/handlers"
	"github.com/BruksfildServices01/barbershop-api/internal/httperr"
	"github.com/BruksfildServices01/barbershop-api/internal/middleware"
	ucAppointment "github.com/BruksfildServices01/barbershop-api/internal/usecase/appointment"
	ucSeed "github.com/BruksfildServices01/barbershop-api/internal/usecase/seed"
)

// RegisterRoutes wires every route onto r. store may be nil when the
// database is not configured.
func RegisterRoutes(r *gin.Engine, store document.Store, cfg *config.Config) {

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.CORSMiddleware(cfg.CORSOrigins),
	)

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	auditDispatcher := audit.NewDispatcher(audit.New(store))

	// ======================================================
	// 🧠 USE CASES
	// ======================================================
	createAppointmentUC := ucAppointment.NewCreateAppointment(store, auditDispatcher)
	seedUC := ucSeed.NewSeed(store, auditDispatcher)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	systemHandler := handlers.NewSystemHandler(store, cfg)
	contentHandler := handlers.NewContentHandler(store)
	seedHandler := handlers.NewSeedHandler(seedUC)
	appointmentHandler := handlers.NewAppointmentHandler(createAppointmentUC)

	// ======================================================
	// 🩺 SYSTEM
	// ======================================================
	r.GET("/", systemHandler.Root)
	r.GET("/health", systemHandler.Health)
	r.GET("/test", systemHandler.Diagnostics)

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		api.GET("/schema", systemHandler.Schema)
		api.POST("/seed", seedHandler.Seed)

		api.POST("/appointments", appointmentHandler.Create)

		api.GET("/barbers", contentHandler.ListBarbers)
		api.GET("/services", contentHandler.ListServices)
		api.GET("/testimonials", contentHandler.ListTestimonials)
		api.GET("/shop", contentHandler.GetShop)
	}

	r.NoRoute(httperr.RouteNotFound)
}
