// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"verdeluxe/internal/delivery/http/middleware"
	"verdeluxe/internal/delivery/http/router/handler"
	"verdeluxe/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	HealthHandler       *handler.HealthHandler
	CatalogHandler      *handler.CatalogHandler
	CatalogAdminHandler *handler.CatalogAdminHandler
	CartHandler         *handler.CartHandler
	OrderHandler        *handler.OrderHandler
	UserHandler         *handler.UserHandler
	AdminHandler        *handler.AdminHandler
	StorefrontHandler   *handler.StorefrontHandler

	AuthMiddleware         *middleware.AuthMiddleware
	CustomerAuthMiddleware *middleware.CustomerAuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	RouterParams
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{RouterParams: params}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", r.HealthHandler.HealthCheck)
	e.GET("/uploads/*", r.CatalogHandler.ServeUpload)

	api := e.Group("/api")

	// Public storefront
	api.GET("/plants", r.CatalogHandler.ListPlants)
	api.GET("/plants/slug/:slug", r.CatalogHandler.GetPlantBySlug)
	api.GET("/plants/:id", r.CatalogHandler.GetPlant)
	api.GET("/plants/:id/photos", r.CatalogHandler.ListPlantPhotos)
	api.GET("/plants/:id/qrcode", r.CatalogHandler.PlantQRCode)
	api.GET("/categories", r.CatalogHandler.ListCategories)
	api.GET("/content/:key", r.StorefrontHandler.GetContent)
	api.POST("/newsletter", r.StorefrontHandler.Subscribe)

	// Signed-in customers
	customer := api.Group("", r.CustomerAuthMiddleware.Authenticate)
	{
		customer.GET("/me", r.UserHandler.GetProfile)
		customer.PUT("/me", r.UserHandler.UpdateProfile)

		customer.GET("/cart", r.CartHandler.GetCart)
		customer.DELETE("/cart", r.CartHandler.ClearCart)
		customer.POST("/cart/items", r.CartHandler.AddItem)
		customer.PUT("/cart/items/:id", r.CartHandler.UpdateItem)
		customer.DELETE("/cart/items/:id", r.CartHandler.RemoveItem)
		customer.POST("/checkout", r.CartHandler.Checkout)

		customer.GET("/orders", r.OrderHandler.ListMyOrders)
		customer.GET("/orders/:id", r.OrderHandler.GetMyOrder)

		customer.GET("/wishlist", r.StorefrontHandler.ListWishlist)
		customer.POST("/wishlist", r.StorefrontHandler.AddWishlist)
		customer.DELETE("/wishlist/:plantId", r.StorefrontHandler.RemoveWishlist)

		customer.POST("/devices", r.StorefrontHandler.RegisterDevice)
	}

	// Admin session endpoints
	adminAuth := api.Group("/admin")
	{
		adminAuth.GET("/check-exists", r.AdminHandler.CheckExists)
		adminAuth.POST("/create", r.AdminHandler.CreateAdmin)
		adminAuth.POST("/login", r.AdminHandler.Login)
		adminAuth.POST("/authenticate", r.AdminHandler.Authenticate)
		adminAuth.POST("/refresh", r.AdminHandler.Refresh)
	}

	// Admin console, JWT and admin role required
	admin := api.Group("/admin", r.AuthMiddleware.Authenticate, r.AuthMiddleware.RequireRole(entity.RoleAdmin))
	{
		admin.GET("/users", r.UserHandler.ListUsers)
		admin.GET("/users/:id", r.UserHandler.GetUser)
		admin.PUT("/users/:id", r.UserHandler.UpdateUser)
		admin.DELETE("/users/:id", r.UserHandler.DeleteUser)

		admin.GET("/plants", r.CatalogAdminHandler.ListPlants)
		admin.POST("/plants", r.CatalogAdminHandler.CreatePlant)
		admin.PUT("/plants/:id", r.CatalogAdminHandler.UpdatePlant)
		admin.DELETE("/plants/:id", r.CatalogAdminHandler.DeletePlant)
		admin.POST("/plants/:id/photos", r.CatalogAdminHandler.UploadPhoto)
		admin.DELETE("/photos/:id", r.CatalogAdminHandler.DeletePhoto)

		admin.POST("/categories", r.CatalogAdminHandler.CreateCategory)
		admin.PUT("/categories/:id", r.CatalogAdminHandler.UpdateCategory)
		admin.DELETE("/categories/:id", r.CatalogAdminHandler.DeleteCategory)

		admin.GET("/orders", r.OrderHandler.ListOrders)
		admin.PUT("/orders/:id/status", r.OrderHandler.UpdateStatus)

		admin.GET("/newsletters", r.StorefrontHandler.ListSubscribers)
		admin.DELETE("/newsletters/:id", r.StorefrontHandler.DeleteSubscriber)

		admin.GET("/content", r.StorefrontHandler.ListContent)
		admin.PUT("/content/:key", r.StorefrontHandler.UpsertContent)
		admin.DELETE("/content/:key", r.StorefrontHandler.DeleteContent)
	}
}
