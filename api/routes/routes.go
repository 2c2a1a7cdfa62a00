package routes

import (
	"time"

	"bozor/api/handler"
	"bozor/api/middleware"
	"bozor/internal/entity"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

type Router struct {
	Echo           *echo.Echo
	Auth           *handler.AuthHandler
	Users          *handler.UserHandler
	Catalog        *handler.CatalogHandler
	Products       *handler.ProductHandler
	Orders         *handler.OrderHandler
	Comments       *handler.CommentHandler
	AuthMiddleware middleware.AuthMiddleware
	AuthRate       *middleware.RateLimiter
	LoginRate      *middleware.RateLimiter
}

func NewRouter(
	e *echo.Echo,
	auth *handler.AuthHandler,
	users *handler.UserHandler,
	catalog *handler.CatalogHandler,
	products *handler.ProductHandler,
	orders *handler.OrderHandler,
	comments *handler.CommentHandler,
	authMiddleware middleware.AuthMiddleware,
) *Router {
	return &Router{
		Echo:           e,
		Auth:           auth,
		Users:          users,
		Catalog:        catalog,
		Products:       products,
		Orders:         orders,
		Comments:       comments,
		AuthMiddleware: authMiddleware,
		AuthRate:       middleware.NewRateLimiter(rate.Limit(5), 10, 5*time.Minute),
		LoginRate:      middleware.NewRateLimiter(rate.Limit(2), 4, 10*time.Minute),
	}
}

func (r *Router) RegisterRoutes() {
	e := r.Echo
	auth := r.AuthMiddleware.RequireAuth
	admins := middleware.RequireRole(entity.UserRoleAdmin, entity.UserRoleSuperAdmin)
	sellers := middleware.RequireRole(entity.UserRoleShop, entity.UserRoleAdmin, entity.UserRoleSuperAdmin)

	e.POST("/auth/register", r.Auth.Register, r.AuthRate.Middleware())
	e.POST("/auth/verify-otp", r.Auth.VerifyOTP, r.AuthRate.Middleware())
	e.POST("/auth/resend-otp", r.Auth.ResendOTP, r.AuthRate.Middleware())
	e.POST("/auth/login", r.Auth.Login, r.LoginRate.Middleware())
	e.POST("/auth/refresh", r.Auth.Refresh, r.AuthRate.Middleware())

	e.GET("/auth/users", r.Users.List, auth, admins)
	e.GET("/auth/users/:id", r.Users.Get, auth)
	e.PATCH("/auth/users/:id", r.Users.Update, auth, admins)
	e.DELETE("/auth/users/:id", r.Users.Delete, auth, middleware.RequireRole(entity.UserRoleAdmin))

	e.GET("/regions", r.Catalog.ListRegions)
	e.GET("/regions/:id", r.Catalog.GetRegion)
	e.POST("/regions", r.Catalog.CreateRegion, auth, admins)
	e.PUT("/regions/:id", r.Catalog.UpdateRegion, auth, admins)
	e.DELETE("/regions/:id", r.Catalog.DeleteRegion, auth, admins)

	e.GET("/categories", r.Catalog.ListCategories)
	e.GET("/categories/:id", r.Catalog.GetCategory)
	e.POST("/categories", r.Catalog.CreateCategory, auth, admins)
	e.PUT("/categories/:id", r.Catalog.UpdateCategory, auth, admins)
	e.DELETE("/categories/:id", r.Catalog.DeleteCategory, auth, admins)

	e.GET("/products", r.Products.List)
	e.GET("/products/:id", r.Products.Get)
	e.POST("/products", r.Products.Create, auth, sellers)
	e.PUT("/products/:id", r.Products.Update, auth, sellers)
	e.DELETE("/products/:id", r.Products.Delete, auth, sellers)

	e.POST("/orders", r.Orders.Create, auth)
	e.POST("/order-items", r.Orders.AddItem, auth)
	e.GET("/my-orders", r.Orders.MyOrders, auth)
	e.GET("/orders", r.Orders.List, auth, admins)

	e.GET("/comments", r.Comments.List)
	e.GET("/comments/:id", r.Comments.Get)
	e.GET("/my-comments", r.Comments.MyComments, auth)
	e.POST("/comments", r.Comments.Create, auth)
	e.PATCH("/comments/:id", r.Comments.Update, auth)
	e.DELETE("/comments/:id", r.Comments.Delete, auth)
}
