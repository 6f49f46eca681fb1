package router

import (
	"net/http"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/DominusMortem/foodgram-project-react/configs"
	"github.com/DominusMortem/foodgram-project-react/pkg/auth"
	"github.com/DominusMortem/foodgram-project-react/pkg/server"
)

const MetricsPath = "/metrics"

type Services struct {
	Recipes *server.RecipeServer
	Carts   *server.CartServer
	Users   *server.UserServer
	Catalog *server.CatalogServer
	Auth    *auth.Manager
}

type Router struct {
	services Services
	config   *configs.Config
	logger   *zap.Logger
}

// New builds the HTTP API. Every route below the base path passes through the
// optional authentication middleware; write routes additionally require a user.
func New(conf *configs.Config, services Services, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	registerJSONFieldNames()

	r := &Router{services: services, config: conf, logger: logger}

	engine := gin.New()
	engine.Use(gin.Recovery(), RequestLogger(logger), PrometheusMetrics())
	engine.GET(MetricsPath, gin.WrapH(promhttp.Handler()))

	api := engine.Group(conf.Server.BasePath, services.Auth.Middleware())
	requireUser := auth.RequireUser()

	tags := api.Group("/tags")
	{
		tags.GET("/", r.listTags)
		tags.GET("/:id/", r.getTag)
	}

	ingredients := api.Group("/ingredients")
	{
		ingredients.GET("/", r.listIngredients)
		ingredients.GET("/:id/", r.getIngredient)
	}

	recipes := api.Group("/recipes")
	{
		recipes.GET("/", r.recipeResource)
		recipes.POST("/", requireUser, r.recipeResource)
		recipes.GET("/download_shopping_cart/", requireUser, r.downloadShoppingCart)
		recipes.GET("/import/", requireUser, r.importRecipe)
		recipes.GET("/:id/", r.recipeResource)
		recipes.PUT("/:id/", requireUser, r.recipeResource)
		recipes.PATCH("/:id/", requireUser, r.recipeResource)
		recipes.DELETE("/:id/", requireUser, r.deleteRecipe)
		recipes.POST("/:id/favorite/", requireUser, r.addFavorite)
		recipes.DELETE("/:id/favorite/", requireUser, r.deleteFavorite)
		recipes.POST("/:id/shopping_cart/", requireUser, r.addToCart)
		recipes.DELETE("/:id/shopping_cart/", requireUser, r.removeFromCart)
	}

	users := api.Group("/users")
	{
		users.GET("/", r.listUsers)
		users.POST("/", r.register)
		users.GET("/me/", requireUser, r.me)
		users.POST("/set_password/", requireUser, r.setPassword)
		users.GET("/subscriptions/", requireUser, r.subscriptions)
		users.GET("/:id/", r.getUser)
		users.POST("/:id/subscribe/", requireUser, r.subscribe)
		users.DELETE("/:id/subscribe/", requireUser, r.unsubscribe)
	}

	token := api.Group("/auth/token")
	{
		token.POST("/login/", r.login)
		token.POST("/logout/", requireUser, r.logout)
	}

	engine.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	})

	return engine
}

// registerJSONFieldNames makes validation errors report JSON field names.
func registerJSONFieldNames() {
	validate, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}

	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}

		return name
	})
}
