package routes

import (
	"github.com/gin-gonic/gin"

	"rjgems-backend/internal/handlers"
)

func RegisterRoutes(router *gin.Engine, products *handlers.ProductHandler, carts *handlers.CartHandler, chat *handlers.ChatHandler) {
	api := router.Group("/api")

	p := api.Group("/products")
	{
		p.GET("", products.ListProducts)
		p.GET("/categories/all", products.GetCategoryFacets)
		p.GET("/:id", products.GetProduct)
		p.GET("/:id/recommendations", products.GetRecommendations)
		p.POST("", products.CreateProduct)
		p.PATCH("/:id", products.UpdateProduct)
		p.DELETE("/:id", products.DeleteProduct)
	}

	cart := api.Group("/cart")
	{
		cart.GET("/:sessionId", carts.GetCart)
		cart.POST("/:sessionId/add", carts.AddItem)
		cart.PUT("/:sessionId/update/:itemId", carts.UpdateItem)
		cart.DELETE("/:sessionId/remove/:itemId", carts.RemoveItem)
		cart.DELETE("/:sessionId/clear", carts.ClearCart)
	}

	bot := api.Group("/chatbot")
	{
		bot.POST("/chat", chat.Chat)
		bot.GET("/search", chat.SearchProducts)
		bot.POST("/recommendations", chat.Recommendations)
	}
}
