package router

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Pleasure08/gplsmarthubb/config"
	"github.com/Pleasure08/gplsmarthubb/internal/handler"
	"github.com/Pleasure08/gplsmarthubb/internal/middleware"
	"github.com/Pleasure08/gplsmarthubb/internal/store"
	"github.com/Pleasure08/gplsmarthubb/pkg/cloudinary"
	"github.com/Pleasure08/gplsmarthubb/pkg/paystack"
)

func Setup(cfg *config.Config, st store.Store, cloud cloudinary.Client, pay *paystack.Client) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.RateLimit(100, time.Minute))

	hostelHandler := handler.NewHostelHandler(st.Hostels(), cloud)
	marketHandler := handler.NewMarketplaceHandler(st.Marketplace(), st.Settings(), cloud, pay, cfg.Paystack.ListingFeeKobo)
	settingsHandler := handler.NewSettingsHandler(st.Settings())
	paymentHandler := handler.NewPaymentHandler(pay, cfg.Paystack.ListingFeeKobo, cfg.Server.BaseURL)

	adminMw := middleware.AdminRequired(cfg.Admin.Password)

	api := r.Group("/api")
	{
		api.GET("/hostels", hostelHandler.List)
		api.GET("/hostels/:id", hostelHandler.Get)

		api.GET("/marketplace", marketHandler.List)
		api.GET("/marketplace/:id", marketHandler.Get)
		api.POST("/marketplace/upload", marketHandler.Upload)
		api.POST("/marketplace/update-status", marketHandler.UpdateStatus)

		api.GET("/settings", settingsHandler.Get)
		api.POST("/settings", adminMw, settingsHandler.Update)

		api.POST("/payments/initialize", paymentHandler.Initialize)
		api.POST("/payments/verify", paymentHandler.Verify)

		admin := api.Group("/admin")
		admin.Use(adminMw)
		{
			admin.POST("/hostels", hostelHandler.Create)
			// DELETE /admin/hostels/clear-all is routed through the
			// same wildcard and handled as a sentinel id.
			admin.DELETE("/hostels/:id", hostelHandler.Delete)

			admin.GET("/marketplace", marketHandler.ListAll)
			admin.PUT("/marketplace/:id/approval", marketHandler.SetApproval)
			admin.DELETE("/marketplace/:id", marketHandler.Delete)
		}
	}

	return r
}
