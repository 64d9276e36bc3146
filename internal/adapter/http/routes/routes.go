package routes

import (
	"context"
	"log"
	"strconv"

	_ "nct_portal/docs" // This will be auto-generated
	"nct_portal/internal/adapter/http/handlers"
	repository2 "nct_portal/internal/adapter/persistence/repository"
	"nct_portal/internal/config"
	"nct_portal/internal/domain/pricing"
	"nct_portal/internal/infrastructure/ai"
	"nct_portal/internal/infrastructure/database"
	"nct_portal/internal/infrastructure/drive"
	"nct_portal/internal/infrastructure/phoneauth"
	"nct_portal/internal/usecase"
	"nct_portal/pkg/logger"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

var router = gin.Default()

// Run will start the server
func Run() {
	cfg := config.New()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	zlog := logger.New(cfg.Env != "production")
	defer zlog.Sync()

	setMiddlewares(zlog)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes(cfg, zlog)

	err := router.Run(":" + strconv.Itoa(cfg.Port))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes(cfg config.Config, zlog *zap.Logger) {
	ddb, err := database.ConnectDynamoDB(context.Background(), cfg.Dynamo)
	if err != nil {
		log.Fatalf("Failed to connect to DynamoDB: %v", err)
	}

	orderRepo := repository2.NewOrderDynamoRepository(ddb, cfg.Dynamo.OrdersTable)
	profileRepo := repository2.NewProfileDynamoRepository(ddb, cfg.Dynamo.ProfilesTable)

	driveClient := mustDrive(cfg, zlog)
	geminiClient := mustGemini(cfg, zlog)
	verifier := mustVerifier(cfg, zlog)

	engine := pricing.NewEngine(pricing.DefaultRates())

	orderUseCase := usecase.NewOrderUseCase(orderRepo, driveClient, engine, cfg.Pricing.StrictVocabulary, zlog)
	authUseCase := usecase.NewAuthUseCase(profileRepo, verifier, cfg.JWT.Secret, cfg.JWT.AccessTTL, cfg.JWT.RefreshTTL, cfg.IsAdminPhone, zlog)
	documentUseCase := usecase.NewDocumentUseCase(orderRepo, driveClient, geminiClient, zlog)
	statsUseCase := usecase.NewStatsUseCase(orderRepo, zlog)

	orderHandler := handlers.NewOrderHandler(orderUseCase)
	authHandler := handlers.NewAuthHandler(authUseCase, orderUseCase)
	documentHandler := handlers.NewDocumentHandler(documentUseCase)
	pricingHandler := handlers.NewPricingHandler(engine)
	catalogHandler := handlers.NewCatalogHandler()
	adminHandler := handlers.NewAdminHandler(orderUseCase, statsUseCase)
	webhookHandler := handlers.NewWebhookHandler(orderUseCase, cfg.Webhook.ZainCashSecret, cfg.Webhook.QiCardSecret, zlog)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addAuthRoutes(v1, authHandler, authUseCase)
	addPricingRoutes(v1, pricingHandler, orderHandler)
	addOrderRoutes(v1, orderHandler, documentHandler, authUseCase)
	addCatalogRoutes(v1, catalogHandler, authUseCase)
	addAdminRoutes(v1, adminHandler, documentHandler, authUseCase)
	addWebhookRoutes(v1, webhookHandler)
}

// mustDrive degrades to mock mode when the document store is not configured,
// so the rest of the portal keeps working without it.
func mustDrive(cfg config.Config, zlog *zap.Logger) *drive.Client {
	client, err := drive.NewClient(cfg.Drive, zlog)
	if err == nil {
		return client
	}
	zlog.Warn("document store not configured, using mock mode", zap.Error(err))
	mockCfg := cfg.Drive
	mockCfg.Mock = true
	client, _ = drive.NewClient(mockCfg, zlog)
	return client
}

func mustGemini(cfg config.Config, zlog *zap.Logger) *ai.Client {
	client, err := ai.NewClient(cfg.Gemini, zlog)
	if err == nil {
		return client
	}
	zlog.Warn("AI collaborator not configured, using mock mode", zap.Error(err))
	mockCfg := cfg.Gemini
	mockCfg.Mock = true
	client, _ = ai.NewClient(mockCfg, zlog)
	return client
}

func mustVerifier(cfg config.Config, zlog *zap.Logger) *phoneauth.Verifier {
	verifier, err := phoneauth.NewVerifier(cfg.PhoneAuth, zlog)
	if err == nil {
		return verifier
	}
	zlog.Warn("phone auth provider not configured, using mock mode", zap.Error(err))
	mockCfg := cfg.PhoneAuth
	mockCfg.Mock = true
	verifier, _ = phoneauth.NewVerifier(mockCfg, zlog)
	return verifier
}

func setMiddlewares(zlog *zap.Logger) {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		zlog.Error("recovered from panic", zap.Any("panic", recovered))
		c.AbortWithStatus(500)
	}))
}
