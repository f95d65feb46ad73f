package main

import (
	"log"
	"net/http"
	"os"

	"newsapp-api/config"
	"newsapp-api/handlers"
	"newsapp-api/helper"
	"newsapp-api/middleware"
	"newsapp-api/repositories"
	"newsapp-api/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	// Initialize database
	db := config.InitDB()

	httpHelper, err := helper.NewHTTPHelper()
	if err != nil {
		log.Fatal("Failed to initialize validator: ", err)
	}

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	categoryRepo := repositories.NewCategoryRepository(db)
	tagRepo := repositories.NewTagRepository(db)
	articleRepo := repositories.NewArticleRepository(db)
	bookmarkRepo := repositories.NewBookmarkRepository(db)
	readHistoryRepo := repositories.NewReadHistoryRepository(db)

	// Initialize services
	userService := services.NewUserService(userRepo)
	categoryService := services.NewCategoryService(categoryRepo)
	tagService := services.NewTagService(tagRepo)
	articleService := services.NewArticleService(articleRepo)
	bookmarkService := services.NewBookmarkService(bookmarkRepo)
	readHistoryService := services.NewReadHistoryService(readHistoryRepo)
	reportService := services.NewReportService(userRepo, categoryRepo, tagRepo, articleRepo, bookmarkRepo, readHistoryRepo)

	// Initialize handlers
	userHandler := handlers.NewUserHandler(userService, httpHelper)
	categoryHandler := handlers.NewCategoryHandler(categoryService, httpHelper)
	tagHandler := handlers.NewTagHandler(tagService, httpHelper)
	articleHandler := handlers.NewArticleHandler(articleService, httpHelper)
	bookmarkHandler := handlers.NewBookmarkHandler(bookmarkService, httpHelper)
	readHistoryHandler := handlers.NewReadHistoryHandler(readHistoryService, httpHelper)
	reportHandler := handlers.NewReportHandler(
		reportService,
		userService,
		categoryService,
		tagService,
		articleService,
		bookmarkService,
		readHistoryService,
		httpHelper,
	)

	// Setup router
	router := gin.Default()

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	// API routes
	api := router.Group("/api")
	{
		users := api.Group("/Users")
		{
			users.GET("", userHandler.GetPaged)
			users.GET("/export", userHandler.Export)
			users.GET("/:id", userHandler.GetByID)
			users.POST("", userHandler.Create)
			users.POST("/login", userHandler.Login)
			users.PUT("/:id", userHandler.Update)
			users.DELETE("/:id", userHandler.Delete)
			users.GET("/profile", middleware.AuthMiddleware(), userHandler.Profile)
		}

		categories := api.Group("/Categories")
		{
			categories.GET("", categoryHandler.GetPaged)
			categories.GET("/export", categoryHandler.Export)
			categories.GET("/:id", categoryHandler.GetByID)
			categories.POST("", categoryHandler.Create)
			categories.PUT("/:id", categoryHandler.Update)
			categories.DELETE("/:id", categoryHandler.Delete)
		}

		tags := api.Group("/Tags")
		{
			tags.GET("", tagHandler.GetPaged)
			tags.GET("/export", tagHandler.Export)
			tags.GET("/:id", tagHandler.GetByID)
			tags.POST("", tagHandler.Create)
			tags.PUT("/:id", tagHandler.Update)
			tags.DELETE("/:id", tagHandler.Delete)
		}

		articles := api.Group("/Articles")
		{
			articles.GET("", articleHandler.GetPaged)
			articles.GET("/export", articleHandler.Export)
			articles.GET("/:id", articleHandler.GetByID)
			articles.POST("", articleHandler.Create)
			articles.PUT("/:id", articleHandler.Update)
			articles.DELETE("/:id", articleHandler.Delete)
			articles.POST("/:id/tags", articleHandler.AttachTags)
			articles.DELETE("/:id/tags/:tagId", articleHandler.DetachTag)
		}

		bookmarks := api.Group("/Bookmarks")
		{
			bookmarks.GET("/user/:userId", bookmarkHandler.GetByUser)
			bookmarks.GET("/export", bookmarkHandler.Export)
			bookmarks.POST("", bookmarkHandler.Create)
			bookmarks.DELETE("/:id", bookmarkHandler.Delete)
		}

		readHistory := api.Group("/ReadHistory")
		{
			readHistory.GET("/user/:userId", readHistoryHandler.GetByUser)
			readHistory.GET("/export", readHistoryHandler.Export)
			readHistory.POST("", readHistoryHandler.Create)
		}

		reports := api.Group("/Reports")
		{
			reports.GET("/export", reportHandler.Export)
			reports.GET("/export-excel", reportHandler.ExportExcel)
			reports.GET("/export-zip", reportHandler.ExportZip)
		}
	}

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s", port)
	log.Fatal(http.ListenAndServe(":"+port, router))
}
