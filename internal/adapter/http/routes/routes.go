package routes

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	_ "polymesh/docs" // generated by swag init
	"polymesh/internal/adapter/http/handlers"
	"polymesh/internal/adapter/http/middleware"
	"polymesh/internal/adapter/persistence/repository"
	"polymesh/internal/config"
	"polymesh/internal/infrastructure/auth"
	"polymesh/internal/infrastructure/database"
	"polymesh/internal/infrastructure/logger"
	"polymesh/internal/infrastructure/notifications"
	"polymesh/internal/infrastructure/payments"
	"polymesh/internal/usecase"
	"polymesh/internal/usecase/interfaces"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

const (
	Version = "1.0.0"

	limiterCleanupEvery = 5 * time.Minute
	shutdownTimeout     = 15 * time.Second
)

var router = gin.New()

// Run loads configuration, wires every dependency and serves until SIGINT
// or SIGTERM.
func Run() {
	cfg, err := config.Load()
	if err != nil {
		logger.Init("development")
		logger.L().Fatal("[app] failed to load configuration", zap.Error(err))
	}
	logger.Init(cfg.Server.Env)
	defer logger.Sync()

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	limiter := middleware.NewRateLimiter(cfg.RateLimit.Requests, cfg.RateWindow(), cfg.RateLimit.Burst)
	limiter.StartCleanup(limiterCleanupEvery, ctx.Done())

	setMiddlewares(cfg)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	if err := getRoutes(ctx, cfg, limiter); err != nil {
		logger.L().Fatal("[app] failed to wire dependencies", zap.Error(err))
	}

	srv := &http.Server{
		Addr:              ":" + strconv.Itoa(cfg.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.L().Info("[app] listening", zap.String("addr", srv.Addr), zap.String("env", cfg.Server.Env))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.L().Fatal("[app] failed to startup the application", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.L().Info("[app] shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.L().Error("[app] forced shutdown", zap.Error(err))
	}
}

func getRoutes(ctx context.Context, cfg *config.Config, limiter *middleware.RateLimiter) error {
	ddb, err := database.ConnectDynamoDB(ctx)
	if err != nil {
		return err
	}

	quoteRepo, err := newQuoteRepository(ctx, cfg, ddb)
	if err != nil {
		return err
	}
	userRepo := repository.NewUserDynamoRepository(ddb)
	attemptRepo := repository.NewPaymentAttemptDynamoRepository(ddb)
	orderRepo := repository.NewOrderDynamoRepository(ddb)
	reviewRepo := repository.NewReviewDynamoRepository(ddb)
	inquiryRepo := repository.NewInquiryDynamoRepository(ddb)
	installationRepo := repository.NewInstallationDynamoRepository(ddb)

	var paymentGateway interfaces.IPaymentGateway
	mpesa, err := payments.NewMpesaGateway(cfg.Mpesa, cfg.MpesaTimeout())
	if err != nil {
		logger.L().Warn("[app] M-Pesa gateway not configured", zap.Error(err))
	} else {
		paymentGateway = mpesa
	}

	var smsNotifier interfaces.ISMSNotifier
	at, err := notifications.NewAfricasTalkingSMS(cfg.SMS, cfg.SMSTimeout())
	if err != nil {
		logger.L().Warn("[app] SMS gateway not configured", zap.Error(err))
	} else {
		smsNotifier = at
	}

	tokens := auth.NewTokenManager(cfg.JWT.Secret, cfg.JWTExpiry())

	quoteUseCase := usecase.NewQuoteUseCase(quoteRepo, userRepo, smsNotifier)
	paymentUseCase := usecase.NewMpesaPaymentUseCase(quoteUseCase, attemptRepo, paymentGateway, smsNotifier)
	callbackUseCase := usecase.NewPaymentCallbackUseCase(quoteUseCase, attemptRepo, smsNotifier)
	userUseCase := usecase.NewUserUseCase(userRepo, tokens)
	orderUseCase := usecase.NewOrderUseCase(orderRepo, quoteUseCase)
	reviewUseCase := usecase.NewReviewUseCase(reviewRepo, userRepo)
	inquiryUseCase := usecase.NewInquiryUseCase(inquiryRepo, smsNotifier)
	installationUseCase := usecase.NewInstallationUseCase(installationRepo, quoteUseCase)
	coverageUseCase := usecase.NewCoverageUseCase()
	smsUseCase := usecase.NewSMSUseCase(smsNotifier)

	h := routeHandlers{
		health:       handlers.NewHealthHandler(Version),
		user:         handlers.NewUserHandler(userUseCase),
		quote:        handlers.NewQuoteHandler(quoteUseCase, paymentUseCase),
		payment:      handlers.NewPaymentHandler(paymentUseCase, callbackUseCase, cfg.Mpesa.CallbackToken),
		order:        handlers.NewOrderHandler(orderUseCase),
		review:       handlers.NewReviewHandler(reviewUseCase),
		inquiry:      handlers.NewInquiryHandler(inquiryUseCase),
		installation: handlers.NewInstallationHandler(installationUseCase),
		coverage:     handlers.NewCoverageHandler(coverageUseCase),
		sms:          handlers.NewSMSHandler(smsUseCase),
	}

	api := router.Group("/api")
	addPublicRoutes(api, h, tokens, limiter)
	addPaymentRoutes(api, h, tokens, limiter)
	addCustomerRoutes(api, h, tokens, limiter)
	addAdminRoutes(api, h, tokens, limiter)
	return nil
}

// newQuoteRepository keeps quotes in DynamoDB unless the deployment still
// runs on the legacy Mongo collection.
func newQuoteRepository(ctx context.Context, cfg *config.Config, ddb repository.DynamoAPI) (interfaces.IQuoteRepository, error) {
	if cfg.Store.Driver != "mongo" {
		return repository.NewQuoteDynamoRepository(ddb), nil
	}

	_, db, err := database.ConnectMongo(ctx, cfg.Store.MongoURI, cfg.Store.MongoDB)
	if err != nil {
		return nil, err
	}
	repo := repository.NewQuoteMongoRepository(db)
	if err := repo.EnsureIndexes(ctx); err != nil {
		logger.L().Warn("[app] could not ensure quote indexes", zap.Error(err))
	}
	return repo, nil
}

func setMiddlewares(cfg *config.Config) {
	router.Use(middleware.RequestID())
	router.Use(middleware.AccessLog())
	router.Use(middleware.Recovery())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.Server.CORSOrigins
	corsConfig.AllowCredentials = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization", middleware.HeaderRequestID}
	corsConfig.AllowMethods = []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodOptions}
	corsConfig.ExposeHeaders = []string{"Content-Length", middleware.HeaderRequestID}
	router.Use(cors.New(corsConfig))
}
