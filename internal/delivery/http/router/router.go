// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"nexprev/internal/delivery/http/middleware"
	"nexprev/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	CustomerHandler   *handler.CustomerHandler
	MerchantHandler   *handler.MerchantHandler
	AdminHandler      *handler.AdminHandler
	SessionMiddleware *middleware.SessionMiddleware
	GuardMiddleware   *middleware.GuardMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	customerHandler   *handler.CustomerHandler
	merchantHandler   *handler.MerchantHandler
	adminHandler      *handler.AdminHandler
	sessionMiddleware *middleware.SessionMiddleware
	guardMiddleware   *middleware.GuardMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		customerHandler:   params.CustomerHandler,
		merchantHandler:   params.MerchantHandler,
		adminHandler:      params.AdminHandler,
		sessionMiddleware: params.SessionMiddleware,
		guardMiddleware:   params.GuardMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application. Sessions
// attach to every route; guards wrap only the protected areas.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	e.Use(r.sessionMiddleware.Attach)

	// Public customer routes
	e.GET("/login", r.customerHandler.LoginPage)
	e.POST("/login", r.customerHandler.Login)
	e.GET("/register", r.customerHandler.RegisterPage)
	e.POST("/register", r.customerHandler.Register)
	e.POST("/logout", r.customerHandler.Logout)

	// Customer routes that require an authenticated customer session
	customer := e.Group("", r.guardMiddleware.RequireCustomer)
	{
		customer.GET("/", r.customerHandler.Dashboard)
		customer.GET("/payment", r.customerHandler.Payment)
		customer.GET("/transactions", r.customerHandler.Transactions)
		customer.GET("/partners", r.customerHandler.Partners)
		customer.GET("/partners/:id", r.customerHandler.PartnerDetail)
		customer.GET("/offers/:id", r.customerHandler.OfferDetail)
		customer.GET("/profile", r.customerHandler.Profile)
		customer.GET("/referral", r.customerHandler.Referral)
		customer.GET("/referral/qr", r.customerHandler.ReferralQR)
	}

	// Public merchant routes
	e.GET("/merchant/login", r.merchantHandler.LoginPage)
	e.POST("/merchant/login", r.merchantHandler.Login)
	e.GET("/merchant/register", r.merchantHandler.RegisterPage)
	e.POST("/merchant/register", r.merchantHandler.Register)
	e.POST("/merchant/logout", r.merchantHandler.Logout)

	// Merchant routes that require an authenticated merchant session
	merchant := e.Group("/merchant", r.guardMiddleware.RequireMerchant)
	{
		merchant.GET("/dashboard", r.merchantHandler.Dashboard)
		merchant.GET("/products", r.merchantHandler.Products)
		merchant.GET("/products/new", r.merchantHandler.NewProductPage)
		merchant.POST("/products", r.merchantHandler.CreateProduct)
		merchant.GET("/offers", r.merchantHandler.Offers)
		merchant.GET("/offers/new", r.merchantHandler.NewOfferPage)
		merchant.POST("/offers", r.merchantHandler.CreateOffer)
		merchant.GET("/customers", r.merchantHandler.Customers)
		merchant.GET("/search-users", r.merchantHandler.SearchUsers)
		merchant.GET("/profile", r.merchantHandler.Profile)
		merchant.PUT("/profile", r.merchantHandler.UpdateProfile)
	}

	// Public admin routes
	e.GET("/admin/login", r.adminHandler.LoginPage)
	e.POST("/admin/login", r.adminHandler.Login)
	e.POST("/admin/register", r.adminHandler.Register)
	e.POST("/admin/logout", r.adminHandler.Logout)

	// Admin routes that require an authenticated admin session
	admin := e.Group("/admin", r.guardMiddleware.RequireAdmin)
	{
		admin.GET("/dashboard", r.adminHandler.Dashboard)
	}
}
