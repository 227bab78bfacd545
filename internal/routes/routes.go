package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"bazario-backend/internal/handlers"
	"bazario-backend/internal/metrics"
	"bazario-backend/internal/middleware"
	"bazario-backend/internal/repository"
	"bazario-backend/internal/services"
	"bazario-backend/internal/token"
)

// Deps carries everything the route table wires into handlers.
type Deps struct {
	Tokens     *token.Service
	Users      repository.Users
	Products   repository.Products
	Categories repository.Categories
	Sliders    repository.Sliders
	Carts      repository.Carts
	Orders     repository.Orders
	Payments   repository.Payments
	Reviews    repository.Reviews
	Checkout   *services.CheckoutService
	Dashboard  *services.DashboardService
	Metrics    *metrics.AppMetrics

	AllowOrigins []string
}

func Register(r *gin.Engine, d Deps) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     d.AllowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))
	r.Use(middleware.Metrics(d.Metrics))

	users := &handlers.UserHandler{Tokens: d.Tokens, Users: d.Users}
	products := &handlers.ProductHandler{Products: d.Products}
	categories := &handlers.CategoryHandler{Categories: d.Categories, Products: d.Products}
	sliders := &handlers.SliderHandler{Sliders: d.Sliders}
	carts := &handlers.CartHandler{Carts: d.Carts}
	orders := &handlers.OrderHandler{Orders: d.Orders, Checkout: d.Checkout}
	payments := &handlers.PaymentHandler{Checkout: d.Checkout, Payments: d.Payments}
	dashboard := &handlers.DashboardHandler{Dashboard: d.Dashboard}
	reviews := &handlers.ReviewHandler{Reviews: d.Reviews}

	// Public
	r.GET("/jwt", users.GetJWT)
	r.PUT("/user/:uid", users.RegisterUser)
	r.GET("/products", products.List)
	r.GET("/product/:id", products.Get)
	r.GET("/categories", categories.List)
	r.GET("/categories/top", categories.Top)
	r.GET("/category/:slug", categories.BySlug)
	r.GET("/sliders", sliders.List)
	r.GET("/reviews/:productId", reviews.ListByProduct)

	// Token-bearing
	authed := r.Group("", middleware.RequireAuth(d.Tokens))
	authed.GET("/user/admin/:uid", users.IsAdmin)

	// Token + ownership of the uid the route addresses
	owner := authed.Group("", middleware.RequireOwner())
	{
		owner.GET("/user/:uid", users.GetUser)
		owner.GET("/products/seller/:uid", products.ListBySeller)
		owner.POST("/add-to-cart/:uid", carts.Add)
		owner.GET("/get-cart/:uid", carts.Get)
		owner.DELETE("/cart-item/:uid", carts.DeleteItem)
		owner.POST("/confirm-order/:uid", orders.Confirm)
		owner.GET("/orders/:uid", orders.ListMine)
		owner.POST("/create-payment-intent/:uid", payments.CreateIntent)
		owner.POST("/payments/:uid", payments.Record)
		owner.POST("/review/:uid", reviews.Create)
	}

	// Admin routes keep the uid-equality check on top of the role check:
	// the authenticated uid must match the route uid AND hold the admin role.
	admin := authed.Group("", middleware.RequireAdmin(d.Users), middleware.RequireOwner())
	{
		admin.POST("/product", products.Create)
		admin.PATCH("/product/:uid", products.Update)
		admin.DELETE("/product/:uid", products.Delete)
		admin.PATCH("/product-visibility/:uid", products.SetVisibility)
		admin.POST("/category/:uid", categories.Create)
		admin.POST("/slider/:uid", sliders.Create)
		admin.DELETE("/slider/:uid", sliders.Delete)
		admin.GET("/orders/all/:uid", orders.ListAll)
		admin.PATCH("/order-status/:uid", orders.UpdateStatus)
		admin.GET("/dashboard-data/:uid", dashboard.Get)
		admin.GET("/sales-report/:uid", payments.SalesReport)
	}
}
