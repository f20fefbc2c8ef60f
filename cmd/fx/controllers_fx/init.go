package controllers_fx

import (
	"go.uber.org/fx"

	"autoescuelas/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewProvincesController),
	fx.Provide(controllers.NewCitiesController),
	fx.Provide(controllers.NewSchoolsController),
	fx.Provide(controllers.NewBlogController),
	fx.Provide(controllers.NewStatsController),
	fx.Provide(controllers.NewUsersController),
	fx.Provide(controllers.NewSearchController),
	fx.Provide(controllers.NewUploadController),
	fx.Provide(controllers.NewAdminController),
	fx.Provide(controllers.NewHealthController))
