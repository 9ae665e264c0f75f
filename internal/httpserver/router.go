package httpserver

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// buildRouter wires the full route table: public auth/catalog, user-scoped
// cart/wishlist/order/address routes behind the token check, and admin
// routes behind the additional server-side admin re-check.
func buildRouter(corsOrigins []string, deps Deps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     corsOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "x-auth-token", "Authorization", "Accept"},
		AllowCredentials: true,
	}))

	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "API is running...")
	})
	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Public
	router.POST("/register", registerHandler(deps.Customers))
	router.POST("/login", loginHandler(deps.Customers))
	router.POST("/admin/login", adminLoginHandler(deps.Customers))
	router.GET("/products", listProductsHandler(deps.Products))

	// User-authenticated
	auth := router.Group("/", authRequired(deps.Tokens))
	{
		auth.GET("/profile", profileHandler(deps.Customers))

		auth.GET("/addresses", listAddressesHandler(deps.Addresses))
		auth.POST("/addresses", createAddressHandler(deps.Addresses))
		auth.PUT("/addresses/:id", updateAddressHandler(deps.Addresses))
		auth.DELETE("/addresses/:id", deleteAddressHandler(deps.Addresses))

		auth.GET("/cart", getCartHandler(deps.Carts))
		auth.POST("/cart/add", addToCartHandler(deps.Carts))
		auth.PUT("/cart/update/:productId", updateCartHandler(deps.Carts))
		auth.DELETE("/cart/remove/:productId", removeCartItemHandler(deps.Carts))

		auth.GET("/api/wishlist", getWishlistHandler(deps.Wishlists))
		auth.POST("/api/wishlist/add", addToWishlistHandler(deps.Wishlists))
		auth.DELETE("/api/wishlist/remove/:productId", removeFromWishlistHandler(deps.Wishlists))

		auth.POST("/create-razorpay-order", createRazorpayOrderHandler(deps.Payments))

		auth.POST("/orders", placeOrderHandler(deps.Orders))
		auth.GET("/orders/user", listUserOrdersHandler(deps.Orders))
		auth.GET("/orders/:orderId", getOrderHandler(deps.Orders))
	}

	// Admin: token plus a fresh isAdmin check against the users collection.
	admin := router.Group("/admin", authRequired(deps.Tokens), adminRequired(deps.Customers))
	{
		admin.GET("/products", listProductsHandler(deps.Products))
		admin.POST("/products", adminCreateProductHandler(deps.Products))
		admin.PUT("/products/:id", adminUpdateProductHandler(deps.Products))
		admin.DELETE("/products/:id", adminDeleteProductHandler(deps.Products))

		admin.GET("/orders", adminListOrdersHandler(deps.Orders))
		admin.PUT("/orders/:orderId/status", adminUpdateOrderStatusHandler(deps.Orders))

		admin.GET("/users", adminListUsersHandler(deps.Customers))
		admin.DELETE("/users/:userId", adminDeleteUserHandler(deps.Customers))
	}

	return router
}
