package routes

import (
	"context"
	"os"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/eromsubebe/poc-auto-quote-response/docs" // generated swagger docs
	"github.com/eromsubebe/poc-auto-quote-response/internal/adapter/http/handlers"
	"github.com/eromsubebe/poc-auto-quote-response/internal/adapter/persistence/repository"
	"github.com/eromsubebe/poc-auto-quote-response/internal/infrastructure/database"
	"github.com/eromsubebe/poc-auto-quote-response/internal/infrastructure/erp"
	"github.com/eromsubebe/poc-auto-quote-response/internal/infrastructure/logger"
	"github.com/eromsubebe/poc-auto-quote-response/internal/infrastructure/parsing"
	"github.com/eromsubebe/poc-auto-quote-response/internal/infrastructure/storage"
	"github.com/eromsubebe/poc-auto-quote-response/internal/usecase"
)

var router = gin.Default()

const defaultPort = 8080

// Run wires the full service and starts the HTTP listener.
func Run() {
	log := logger.Must(os.Getenv("LOG_LEVEL"))
	defer func() { _ = log.Sync() }()

	setMiddlewares(log)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	slaUseCase := getRoutes(log)
	startSLASweeper(slaUseCase, log)

	port := envInt("PORT", defaultPort)
	if err := router.Run(":" + strconv.Itoa(port)); err != nil {
		log.Fatal("failed to start the application", zap.Error(err))
	}
}

func getRoutes(log *zap.Logger) usecase.ISLAUseCase {
	ddb := database.ConnectDynamoDB(log)

	rateRepo := repository.NewRateDynamoRepository(ddb)
	rfqRepo := repository.NewRFQDynamoRepository(ddb)
	auditRepo := repository.NewAuditLogDynamoRepository(ddb)

	parser := parsing.NewEmailParser()
	emailStore := storage.NewLocalEmailStore()
	erpGateway, err := erp.NewOdooGateway(log)
	if err != nil {
		log.Warn("odoo gateway unavailable, quote drafting will fail", zap.Error(err))
	}

	storeTimeout := time.Duration(envInt("STORE_TIMEOUT_MS", 0)) * time.Millisecond
	workflowCfg := usecase.DefaultWorkflowConfig()
	workflowCfg.SLAStandardHours = envInt("SLA_TARGET_HOURS_STANDARD", workflowCfg.SLAStandardHours)
	workflowCfg.SLAUrgentHours = envInt("SLA_TARGET_HOURS_URGENT", workflowCfg.SLAUrgentHours)
	workflowCfg.AcceptConfidence = envFloat("RATE_MATCH_ACCEPT_CONFIDENCE", workflowCfg.AcceptConfidence)
	if storeTimeout > 0 {
		workflowCfg.StoreTimeout = storeTimeout
	}

	rateCatalog := usecase.NewRateCatalogUseCase(rateRepo, nil, workflowCfg.StoreTimeout)
	workflow := usecase.NewRFQWorkflowUseCase(rfqRepo, rateRepo, auditRepo, parser, emailStore, erpGateway, nil, workflowCfg, log)
	slaUseCase := usecase.NewSLAUseCase(rfqRepo, nil, workflowCfg.StoreTimeout, log)
	dashboard := usecase.NewDashboardUseCase(rfqRepo, workflowCfg.StoreTimeout)
	export := usecase.NewExportUseCase(rfqRepo, rateRepo, auditRepo, nil, workflowCfg.StoreTimeout)

	rateHandler := handlers.NewRateHandler(rateCatalog, nil)
	rfqHandler := handlers.NewRFQHandler(workflow, export)
	dashboardHandler := handlers.NewDashboardHandler(dashboard, slaUseCase)
	internalHandler := handlers.NewInternalHandler(slaUseCase, os.Getenv("INTERNAL_CRON_TOKEN"))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := router.Group("/api")
	addRateRoutes(api, rateHandler)
	addRFQRoutes(api, rfqHandler)
	addDashboardRoutes(api, dashboardHandler)
	addInternalRoutes(api, internalHandler)

	return slaUseCase
}

func setMiddlewares(log *zap.Logger) {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Error("recovered from panic", zap.Any("panic", recovered))
		c.AbortWithStatus(500)
	}))
}

// startSLASweeper runs the breach check on a fixed interval so deadlines
// are flagged even when nobody polls the dashboard.
func startSLASweeper(sla usecase.ISLAUseCase, log *zap.Logger) {
	interval := envInt("SLA_CHECK_INTERVAL_MINUTES", 5)
	if interval <= 0 {
		log.Info("sla sweeper disabled")
		return
	}

	go func() {
		ticker := time.NewTicker(time.Duration(interval) * time.Minute)
		defer ticker.Stop()
		for range ticker.C {
			if _, err := sla.RunCheck(context.Background()); err != nil {
				log.Error("sla sweep failed", zap.Error(err))
			}
		}
	}()
}

func envInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func envFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}
