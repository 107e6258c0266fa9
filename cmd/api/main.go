package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"leadcrm/internal/config"
	"leadcrm/internal/database"
	"leadcrm/internal/domain/campaign"
	"leadcrm/internal/domain/invoice"
	"leadcrm/internal/domain/lead"
	"leadcrm/internal/domain/user"
	"leadcrm/internal/importer"
	"leadcrm/internal/middleware"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger, err := newLogger(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}

	if err := db.AutoMigrate(
		&user.User{},
		&lead.Lead{},
		&campaign.Campaign{},
		&invoice.Invoice{},
	); err != nil {
		log.Fatal(err)
	}

	sqlxDB, err := database.SQLX(db)
	if err != nil {
		log.Fatal(err)
	}

	leadRepo := lead.NewRepository(db)
	userRepo := user.NewRepository(db)
	campaignRepo := campaign.NewRepository(sqlxDB)
	invoiceRepo := invoice.NewRepository(db)

	leadService := lead.NewService(leadRepo, userRepo, cfg.PlaceholderEmailDomain)
	campaignService := campaign.NewService(campaignRepo)
	invoiceService := invoice.NewService(invoiceRepo, leadRepo)

	imp := importer.New(leadRepo, userRepo, logger, importer.Options{
		PlaceholderEmailDomain: cfg.PlaceholderEmailDomain,
		MaxRows:                cfg.ImportMaxRows,
	})

	leadHandler := lead.NewHandler(leadService)
	userHandler := user.NewHandler(userRepo)
	campaignHandler := campaign.NewHandler(campaignService)
	invoiceHandler := invoice.NewHandler(invoiceService)
	importHandler := importer.NewHandler(imp)

	if cfg.IsProd() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.CORS(cfg.CORSAllowedOrigins))

	v1 := r.Group("/api/v1")
	{
		lead.RegisterRoutes(v1, leadHandler)
		user.RegisterRoutes(v1, userHandler)
		campaign.RegisterRoutes(v1, campaignHandler)
		invoice.RegisterRoutes(v1, invoiceHandler)

		internal := v1.Group("/")
		internal.Use(middleware.InternalTokenAuth(cfg.InternalToken, logger))
		{
			importer.RegisterRoutes(internal, importHandler)
		}
	}

	logger.Info("server starting", zap.String("addr", cfg.Addr))
	if err := r.Run(cfg.Addr); err != nil {
		log.Fatal(err)
	}
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.IsProd() {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
