package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"newsapp-api/config"
	"newsapp-api/helper"
	"newsapp-api/repositories"
	"newsapp-api/services"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:?_pragma=foreign_keys(1)"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db))

	httpHelper, err := helper.NewHTTPHelper()
	require.NoError(t, err)

	userRepo := repositories.NewUserRepository(db)
	categoryRepo := repositories.NewCategoryRepository(db)
	tagRepo := repositories.NewTagRepository(db)
	articleRepo := repositories.NewArticleRepository(db)
	bookmarkRepo := repositories.NewBookmarkRepository(db)
	readHistoryRepo := repositories.NewReadHistoryRepository(db)

	userService := services.NewUserService(userRepo)
	categoryService := services.NewCategoryService(categoryRepo)
	tagService := services.NewTagService(tagRepo)
	articleService := services.NewArticleService(articleRepo)
	bookmarkService := services.NewBookmarkService(bookmarkRepo)
	readHistoryService := services.NewReadHistoryService(readHistoryRepo)
	reportService := services.NewReportService(userRepo, categoryRepo, tagRepo, articleRepo, bookmarkRepo, readHistoryRepo)

	userHandler := NewUserHandler(userService, httpHelper)
	categoryHandler := NewCategoryHandler(categoryService, httpHelper)
	tagHandler := NewTagHandler(tagService, httpHelper)
	articleHandler := NewArticleHandler(articleService, httpHelper)
	bookmarkHandler := NewBookmarkHandler(bookmarkService, httpHelper)
	readHistoryHandler := NewReadHistoryHandler(readHistoryService, httpHelper)
	reportHandler := NewReportHandler(
		reportService,
		userService,
		categoryService,
		tagService,
		articleService,
		bookmarkService,
		readHistoryService,
		httpHelper,
	)

	router := gin.New()
	api := router.Group("/api")

	users := api.Group("/Users")
	users.GET("", userHandler.GetPaged)
	users.GET("/export", userHandler.Export)
	users.GET("/:id", userHandler.GetByID)
	users.POST("", userHandler.Create)
	users.POST("/login", userHandler.Login)
	users.PUT("/:id", userHandler.Update)
	users.DELETE("/:id", userHandler.Delete)

	tags := api.Group("/Tags")
	tags.GET("", tagHandler.GetPaged)
	tags.POST("", tagHandler.Create)

	categories := api.Group("/Categories")
	categories.POST("", categoryHandler.Create)
	categories.GET("/export", categoryHandler.Export)

	articles := api.Group("/Articles")
	articles.GET("", articleHandler.GetPaged)
	articles.GET("/:id", articleHandler.GetByID)
	articles.POST("", articleHandler.Create)
	articles.PUT("/:id", articleHandler.Update)
	articles.DELETE("/:id", articleHandler.Delete)
	articles.POST("/:id/tags", articleHandler.AttachTags)
	articles.DELETE("/:id/tags/:tagId", articleHandler.DetachTag)

	bookmarks := api.Group("/Bookmarks")
	bookmarks.GET("/user/:userId", bookmarkHandler.GetByUser)
	bookmarks.POST("", bookmarkHandler.Create)
	bookmarks.DELETE("/:id", bookmarkHandler.Delete)

	readHistory := api.Group("/ReadHistory")
	readHistory.GET("/user/:userId", readHistoryHandler.GetByUser)
	readHistory.POST("", readHistoryHandler.Create)

	reports := api.Group("/Reports")
	reports.GET("/export", reportHandler.Export)
	reports.GET("/export-excel", reportHandler.ExportExcel)
	reports.GET("/export-zip", reportHandler.ExportZip)

	return router, db
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func doGet(t *testing.T, router *gin.Engine, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}
