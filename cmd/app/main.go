package main

import (
	"context"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"autoescuelas/cmd/fx/blog_fx"
	"autoescuelas/cmd/fx/city_fx"
	"autoescuelas/cmd/fx/config_fx"
	"autoescuelas/cmd/fx/controllers_fx"
	"autoescuelas/cmd/fx/db_fx"
	"autoescuelas/cmd/fx/province_fx"
	"autoescuelas/cmd/fx/school_fx"
	"autoescuelas/cmd/fx/search_fx"
	"autoescuelas/cmd/fx/stats_fx"
	"autoescuelas/cmd/fx/upload_fx"
	"autoescuelas/cmd/fx/user_fx"
	"autoescuelas/internal/api/controllers"
	"autoescuelas/internal/infra/config"
	"autoescuelas/internal/infra/logger"
	"autoescuelas/pkg/middleware"
)

func main() {
	app := fx.New(
		config_fx.Module,
		db_fx.Module,
		province_fx.Module,
		city_fx.Module,
		school_fx.Module,
		blog_fx.Module,
		user_fx.Module,
		stats_fx.Module,
		search_fx.Module,
		upload_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, cfg *config.AppConfig) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				logger.Log.Infof("Starting HTTP server on :%s", cfg.Port)
				if err := engine.Run(":" + cfg.Port); err != nil {
					logger.Log.WithError(err).Fatal("Failed to start server")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Log.Info("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	cfg *config.AppConfig,
	provincesController *controllers.ProvincesController,
	citiesController *controllers.CitiesController,
	schoolsController *controllers.SchoolsController,
	blogController *controllers.BlogController,
	statsController *controllers.StatsController,
	usersController *controllers.UsersController,
	searchController *controllers.SearchController,
	uploadController *controllers.UploadController,
	adminController *controllers.AdminController,
	healthController *controllers.HealthController) *gin.Engine {

	r := gin.Default()
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.AdminAuthMiddleware(cfg))

	RegisterRoutes(r,
		provincesController,
		citiesController,
		schoolsController,
		blogController,
		statsController,
		usersController,
		searchController,
		uploadController,
		adminController,
		healthController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	provincesController *controllers.ProvincesController,
	citiesController *controllers.CitiesController,
	schoolsController *controllers.SchoolsController,
	blogController *controllers.BlogController,
	statsController *controllers.StatsController,
	usersController *controllers.UsersController,
	searchController *controllers.SearchController,
	uploadController *controllers.UploadController,
	adminController *controllers.AdminController,
	healthController *controllers.HealthController) {

	r.GET("/healthz", healthController.Healthz)

	api := r.Group("/api")
	api.GET("/provinces", provincesController.GetProvinces)
	api.GET("/cities", citiesController.GetCities)
	api.GET("/schools/:slug", schoolsController.GetSchoolBySlug)
	api.GET("/blog", blogController.ListArticles)
	api.GET("/blog/:slug", blogController.GetArticleBySlug)
	api.GET("/stats", statsController.GetStats)
	api.POST("/register", usersController.Register)
	api.POST("/upload", uploadController.Upload)
	api.POST("/admin/auth", adminController.Login)
	api.POST("/admin/logout", adminController.Logout)

	searchGroup := api.Group("/search")
	searchGroup.GET("/schools", searchController.SearchSchools)
	searchGroup.GET("/cities", searchController.SearchCities)
	searchGroup.GET("/provinces", searchController.SearchProvinces)

	adminAPI := r.Group("/admin/api")
	adminAPI.GET("/schools", schoolsController.ListSchools)
	adminAPI.POST("/schools", schoolsController.CreateSchool)
	adminAPI.PUT("/schools/:id", schoolsController.UpdateSchool)
	adminAPI.DELETE("/schools/:id", schoolsController.DeleteSchool)
	adminAPI.GET("/users", usersController.ListUsers)
}
