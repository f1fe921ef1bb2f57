// Package routes assembles the gin engine: repositories, services, handlers
// and the access policy of both surfaces.
package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"estate-cms/config"
	"estate-cms/handlers"
	"estate-cms/helper"
	"estate-cms/middleware"
	"estate-cms/repositories"
	"estate-cms/services"
	"estate-cms/storage"
	"estate-cms/web"
)

// Setup builds the router for cfg on top of an opened database.
func Setup(cfg *config.Config, db *gorm.DB, log zerolog.Logger) (*gin.Engine, error) {
	templates, err := web.Templates()
	if err != nil {
		return nil, err
	}

	httpHelper := helper.NewHTTPHelper(log)
	uploader := storage.NewUploader(cfg.UploadDir, cfg.MaxUploadBytes, cfg.AllowedUploadTypes)
	cookie := middleware.SessionCookie{Name: "token", Secure: cfg.CookieSecure}

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	projectRepo := repositories.NewProjectRepository(db)
	blogRepo := repositories.NewBlogRepository(db)
	pageRepo := repositories.NewPageRepository(db)
	mediaRepo := repositories.NewMediaRepository(db)
	settingRepo := repositories.NewSettingRepository(db)

	// Initialize services
	tokens := services.NewTokenService(cfg.JWTKey(), cfg.JWTExpiration)
	authService := services.NewAuthService(userRepo, tokens)
	userService := services.NewUserService(userRepo)
	projectService := services.NewProjectService(projectRepo, uploader)
	blogService := services.NewBlogService(blogRepo, uploader)
	pageService := services.NewPageService(pageRepo)
	mediaService := services.NewMediaService(mediaRepo, uploader, log)
	settingService := services.NewSettingService(settingRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService, tokens, cookie, httpHelper)
	projectHandler := handlers.NewProjectHandler(projectService, httpHelper)
	blogHandler := handlers.NewBlogHandler(blogService, httpHelper)
	pageHandler := handlers.NewPageHandler(pageService, httpHelper)
	mediaHandler := handlers.NewMediaHandler(mediaService, httpHelper)
	settingHandler := handlers.NewSettingHandler(settingService, httpHelper)
	userHandler := handlers.NewUserHandler(userService, httpHelper)
	contactHandler := handlers.NewContactHandler(log, httpHelper)
	siteHandler := handlers.NewSiteHandler(projectService, blogService, pageService, settingService, cfg.PublicDir, httpHelper)
	adminHandler := handlers.NewAdminHandler(handlers.AdminDeps{
		AuthService:    authService,
		Tokens:         tokens,
		Cookie:         cookie,
		ProjectService: projectService,
		BlogService:    blogService,
		MediaService:   mediaService,
		UserService:    userService,
		SettingService: settingService,
	}, siteHandler, httpHelper)

	// The API reads the bearer header first and falls back to the cookie the
	// login sets; the rendered admin pages only see the cookie.
	apiGuard := middleware.NewGuard(tokens, cookie, middleware.APIResponder{Helper: httpHelper},
		middleware.HeaderCarrier{}, middleware.CookieCarrier{Cookie: cookie})
	siteGuard := middleware.NewGuard(tokens, cookie, middleware.SiteResponder{LoginPath: "/admin/login", Helper: httpHelper},
		middleware.CookieCarrier{Cookie: cookie})
	api := middleware.NewPolicy(middleware.APIAccess, apiGuard)
	site := middleware.NewPolicy(middleware.SiteAccess, siteGuard)

	router := gin.New()
	router.SetHTMLTemplate(templates)
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.Error().Interface("panic", recovered).Str("path", c.Request.URL.Path).Msg("recovered from panic")
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
	router.Use(middleware.RequestLogger(log))
	router.Use(middleware.CORS(cfg.CORSOrigins))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})
	router.Static(storage.URLPrefix, uploader.Root())

	// API routes
	apiGroup := router.Group("/api")
	{
		auth := apiGroup.Group("/auth", api.Authorize("auth"))
		{
			auth.POST("/login", authHandler.Login)
			auth.POST("/register-admin", authHandler.RegisterAdmin)
			auth.POST("/logout", authHandler.Logout)
			auth.GET("/me", authHandler.GetProfile)
		}

		projects := apiGroup.Group("/projects", api.Authorize("projects"))
		{
			projects.GET("", projectHandler.GetProjects)
			projects.GET("/:id", projectHandler.GetProject)
			projects.POST("", projectHandler.CreateProject)
			projects.PATCH("/:id", projectHandler.UpdateProject)
			projects.PUT("/:id", projectHandler.UpdateProject)
			projects.DELETE("/:id", projectHandler.DeleteProject)
		}

		blogs := apiGroup.Group("/blogs", api.Authorize("blogs"))
		{
			blogs.GET("", blogHandler.GetBlogs)
			blogs.GET("/:id", blogHandler.GetBlog)
			blogs.POST("", blogHandler.CreateBlog)
			blogs.PATCH("/:id", blogHandler.UpdateBlog)
			blogs.PUT("/:id", blogHandler.UpdateBlog)
			blogs.DELETE("/:id", blogHandler.DeleteBlog)
		}

		media := apiGroup.Group("/media", api.Authorize("media"))
		{
			media.GET("", mediaHandler.GetMediaList)
			media.GET("/:id", mediaHandler.GetMedia)
			media.POST("", mediaHandler.UploadMedia)
			media.POST("/upload", mediaHandler.UploadMedia)
			media.DELETE("/:id", mediaHandler.DeleteMedia)
		}

		pages := apiGroup.Group("/pages", api.Authorize("pages"))
		{
			pages.GET("", pageHandler.GetPages)
			pages.GET("/:name", pageHandler.GetPage)
			pages.POST("/:name", pageHandler.UpsertPage)
			pages.PUT("/:name", pageHandler.UpsertPage)
		}

		settings := apiGroup.Group("/settings", api.Authorize("settings"))
		{
			settings.GET("", settingHandler.GetSettings)
			settings.PUT("", settingHandler.UpdateSettings)
		}

		users := apiGroup.Group("/users", api.Authorize("users"))
		{
			users.GET("", userHandler.GetUsers)
			users.GET("/:id", userHandler.GetUser)
			users.POST("", userHandler.CreateUser)
			users.PUT("/:id", userHandler.UpdateUser)
			users.PATCH("/:id", userHandler.UpdateUser)
			users.DELETE("/:id", userHandler.DeleteUser)
		}

		apiGroup.POST("/contact", api.Authorize("contact"), contactHandler.Submit)
	}

	// Site routes
	router.GET("/", siteHandler.Home)
	router.GET("/home", siteHandler.Home)
	router.GET("/about", siteHandler.About)
	router.GET("/about-us", siteHandler.About)
	router.GET("/contact", siteHandler.Contact)
	router.GET("/projects", siteHandler.Projects)
	router.GET("/all-projects", siteHandler.Projects)
	router.GET("/projects/:id", siteHandler.Property)
	router.GET("/single-property/:id", siteHandler.Property)
	router.GET("/blog", siteHandler.Blog)
	router.GET("/blog/:id", siteHandler.BlogPost)

	adminAuth := router.Group("/admin", site.Authorize("admin-auth"))
	{
		adminAuth.GET("/login", adminHandler.LoginForm)
		adminAuth.POST("/login", adminHandler.Login)
		adminAuth.GET("/logout", adminHandler.Logout)
		adminAuth.POST("/logout", adminHandler.Logout)
	}

	admin := router.Group("/admin", site.Authorize("admin"))
	{
		admin.GET("", adminHandler.Dashboard)
		admin.GET("/projects", adminHandler.Projects)
		admin.GET("/projects/new", adminHandler.NewProject)
		admin.GET("/projects/:id/edit", adminHandler.EditProject)
		admin.GET("/blogs", adminHandler.Blogs)
		admin.GET("/blogs/new", adminHandler.NewBlog)
		admin.GET("/blogs/:id/edit", adminHandler.EditBlog)
		admin.GET("/media", adminHandler.Media)
		admin.GET("/users", adminHandler.Users)
		admin.GET("/settings", adminHandler.Settings)
		admin.GET("/pages/:name", adminHandler.EditPage)
	}

	router.NoRoute(siteHandler.NotFound)

	return router, nil
}
