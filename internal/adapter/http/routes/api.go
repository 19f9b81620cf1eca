package routes

import (
	"polymesh/internal/adapter/http/handlers"
	"polymesh/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
)

const (
	PathUsers         = "/users"
	PathQuotes        = "/quotes"
	PathUser          = "/user"
	PathAdmin         = "/admin"
	PathInstallations = "/installations"
)

type routeHandlers struct {
	health       *handlers.HealthHandler
	user         *handlers.UserHandler
	quote        *handlers.QuoteHandler
	payment      *handlers.PaymentHandler
	order        *handlers.OrderHandler
	review       *handlers.ReviewHandler
	inquiry      *handlers.InquiryHandler
	installation *handlers.InstallationHandler
	coverage     *handlers.CoverageHandler
	sms          *handlers.SMSHandler
}

func addPublicRoutes(rg *gin.RouterGroup, h routeHandlers, tokens middleware.TokenParser, limiter *middleware.RateLimiter) {
	rg.GET("/health", h.health.Health)

	general := limiter.Middleware(middleware.TierGeneral)
	strict := limiter.Middleware(middleware.TierStrict)

	users := rg.Group(PathUsers)
	{
		users.POST("/register", strict, h.user.Register)
		users.POST("/login", strict, h.user.Login)
	}

	rg.GET("/reviews", general, h.review.ListApprovedReviews)
	rg.POST("/coverage", general, h.coverage.CheckCoverage)
	rg.GET("/service-areas", general, h.coverage.ServiceAreas)
	rg.POST("/inquiries", middleware.OptionalAuth(tokens), general, h.inquiry.SubmitInquiry)
}

func addPaymentRoutes(rg *gin.RouterGroup, h routeHandlers, tokens middleware.TokenParser, limiter *middleware.RateLimiter) {
	rg.POST("/mpesa-pay", middleware.Auth(tokens), limiter.Middleware(middleware.TierStrict), h.payment.MpesaPay)
	rg.POST("/mpesa-callback", limiter.Middleware(middleware.TierWebhook), h.payment.MpesaCallback)
}

func addCustomerRoutes(rg *gin.RouterGroup, h routeHandlers, tokens middleware.TokenParser, limiter *middleware.RateLimiter) {
	authed := rg.Group("", middleware.Auth(tokens), limiter.Middleware(middleware.TierGeneral))

	quotes := authed.Group(PathQuotes)
	{
		quotes.POST("", h.quote.CreateQuote)
		quotes.GET("/:id", h.quote.GetQuote)
		quotes.GET("/:id/payments", h.quote.ListQuotePayments)
	}

	user := authed.Group(PathUser)
	{
		user.GET("/quotes", h.quote.ListMyQuotes)
		user.GET("/orders", h.order.ListMyOrders)
	}

	authed.POST("/orders", h.order.CreateOrder)
	authed.POST("/reviews", h.review.SubmitReview)
	authed.GET(PathInstallations+"/:id", h.installation.GetInstallation)
}

func addAdminRoutes(rg *gin.RouterGroup, h routeHandlers, tokens middleware.TokenParser, limiter *middleware.RateLimiter) {
	admin := rg.Group(PathAdmin, middleware.Auth(tokens), middleware.RequireAdmin(), limiter.Middleware(middleware.TierGeneral))
	{
		admin.GET("/quotes", h.quote.ListAllQuotes)
		admin.GET("/reviews", h.review.ListAllReviews)
		admin.PATCH("/reviews/:id", h.review.ModerateReview)
		admin.POST(PathInstallations, h.installation.ScheduleInstallation)
		admin.PATCH(PathInstallations+"/:id", h.installation.UpdateInstallationStatus)
		admin.POST("/send-sms", h.sms.SendSMS)
	}
}
