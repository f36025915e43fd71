package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/yigit/conexao/internal/app/controllers"
	"github.com/yigit/conexao/internal/middleware"
)

// Controllers groups the handlers mounted by SetupRouter
type Controllers struct {
	Auth         *controllers.AuthController
	Page         *controllers.PageController
	Favor        *controllers.FavorController
	Community    *controllers.CommunityController
	User         *controllers.UserController
	Notification *controllers.NotificationController
	Mission      *controllers.MissionController
	Admin        *controllers.AdminController
}

// SetupRouter configures all application routes
func SetupRouter(router *gin.Engine, ctrl *Controllers, authMiddleware *middleware.AuthMiddleware) {
	// --- Public routes ---
	router.GET("/health", ctrl.Page.Health)
	router.GET("/static/app.css", ctrl.Page.Stylesheet)
	router.POST("/theme", ctrl.Page.ToggleTheme)

	router.GET("/login", ctrl.Auth.ShowLogin)
	router.POST("/login", ctrl.Auth.Login)
	router.GET("/register", ctrl.Auth.ShowRegister)
	router.POST("/register", ctrl.Auth.Register)
	router.POST("/logout", ctrl.Auth.Logout)

	// --- Signed-in routes ---
	authenticated := router.Group("")
	authenticated.Use(authMiddleware.LoginRequired())
	{
		authenticated.GET("/", ctrl.Page.Dashboard)
		authenticated.GET("/chat", ctrl.Page.Chat)

		favors := authenticated.Group("/favors")
		{
			favors.GET("", ctrl.Favor.List)
			favors.GET("/new", ctrl.Favor.New)
			favors.POST("", ctrl.Favor.Create)
			favors.GET("/:id", ctrl.Favor.Show)
			favors.POST("/:id/accept", ctrl.Favor.Accept)
			favors.POST("/:id/complete", ctrl.Favor.Complete)
			favors.POST("/:id/cancel", ctrl.Favor.Cancel)
			favors.POST("/:id/rate", ctrl.Favor.Rate)
			favors.POST("/:id/report", ctrl.Favor.Report)
		}

		communities := authenticated.Group("/communities")
		{
			communities.GET("", ctrl.Community.GetAllCommunities)
			communities.GET("/new", ctrl.Community.NewCommunity)
			communities.POST("", ctrl.Community.CreateCommunity)
			communities.GET("/:id", ctrl.Community.GetCommunityByID)
			communities.POST("/:id/join", ctrl.Community.JoinCommunity)
			communities.POST("/:id/leave", ctrl.Community.LeaveCommunity)
		}

		authenticated.GET("/users/:id", ctrl.User.GetProfile)
		authenticated.POST("/users/:id/report", ctrl.User.Report)
		authenticated.GET("/profile", ctrl.User.MyProfile)
		authenticated.GET("/profile/edit", ctrl.User.EditProfile)
		authenticated.POST("/profile/edit", ctrl.User.UpdateProfile)

		notifications := authenticated.Group("/notifications")
		{
			notifications.GET("", ctrl.Notification.List)
			notifications.POST("/read-all", ctrl.Notification.MarkAllRead)
			notifications.POST("/:id/read", ctrl.Notification.MarkRead)
		}

		authenticated.GET("/missions", ctrl.Mission.List)
		authenticated.GET("/missions/:id", ctrl.Mission.Show)
	}

	// --- Admin routes ---
	admin := router.Group("/admin")
	admin.Use(authMiddleware.LoginRequired(), authMiddleware.AdminRequired())
	{
		admin.GET("", ctrl.Admin.Dashboard)
		admin.POST("/reset", ctrl.Admin.Reset)
		admin.GET("/users", ctrl.Admin.Users)
		admin.GET("/favors", ctrl.Admin.Favors)
		admin.POST("/favors/:id/cancel", ctrl.Admin.CancelFavor)
		admin.GET("/communities", ctrl.Admin.Communities)
		admin.GET("/reports", ctrl.Admin.Reports)
		admin.POST("/reports/:id/resolve", ctrl.Admin.ResolveReport)
		admin.POST("/reports/:id/ignore", ctrl.Admin.IgnoreReport)
		admin.GET("/missions", ctrl.Admin.Missions)
		admin.POST("/missions/:id/goals/:goal/toggle", ctrl.Admin.ToggleGoal)
	}

	router.NoRoute(middleware.NotFound)
}
