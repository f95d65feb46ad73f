package handlers

import (
	"net/http"
	"time"

	"newsapp-api/helper"
	"newsapp-api/services"

	"github.com/gin-gonic/gin"
)

type ReportHandler struct {
	reportService      services.ReportService
	userService        services.UserService
	categoryService    services.CategoryService
	tagService         services.TagService
	articleService     services.ArticleService
	bookmarkService    services.BookmarkService
	readHistoryService services.ReadHistoryService
	helper             *helper.HTTPHelper
}

func NewReportHandler(
	reportService services.ReportService,
	userService services.UserService,
	categoryService services.CategoryService,
	tagService services.TagService,
	articleService services.ArticleService,
	bookmarkService services.BookmarkService,
	readHistoryService services.ReadHistoryService,
	helper *helper.HTTPHelper,
) *ReportHandler {
	return &ReportHandler{
		reportService:      reportService,
		userService:        userService,
		categoryService:    categoryService,
		tagService:         tagService,
		articleService:     articleService,
		bookmarkService:    bookmarkService,
		readHistoryService: readHistoryService,
		helper:             helper,
	}
}

func rangeValid(from, to *time.Time) bool {
	if from != nil && to != nil && from.After(*to) {
		return false
	}
	return true
}

// buildSelection binds one filter per report type from the shared query
// params. Every type sees the same createdFrom/createdTo (readFrom/readTo for
// read history) values.
func (h *ReportHandler) buildSelection(c *gin.Context) (services.ReportSelection, bool) {
	sel := services.ReportSelection{Types: parseReportTypes(c.Query("types"))}

	var err error
	if sel.Users, err = buildUserFilter(c); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return sel, false
	}
	if sel.Categories, err = buildCategoryFilter(c); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return sel, false
	}
	if sel.Tags, err = buildTagFilter(c); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return sel, false
	}
	if sel.Articles, err = buildArticleFilter(c); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return sel, false
	}
	if sel.Bookmarks, err = buildBookmarkFilter(c); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return sel, false
	}
	if sel.ReadHistory, err = buildReadHistoryFilter(c); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return sel, false
	}

	if !rangeValid(sel.Users.CreatedFrom, sel.Users.CreatedTo) ||
		!rangeValid(sel.Articles.CreatedFrom, sel.Articles.CreatedTo) ||
		!rangeValid(sel.Bookmarks.CreatedFrom, sel.Bookmarks.CreatedTo) ||
		!rangeValid(sel.ReadHistory.ReadFrom, sel.ReadHistory.ReadTo) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "'from' must not be after 'to'."})
		return sel, false
	}

	return sel, true
}

// Export streams a single-type CSV selected by the type query param.
func (h *ReportHandler) Export(c *gin.Context) {
	sel, ok := h.buildSelection(c)
	if !ok {
		return
	}

	reportType := c.Query("type")
	if reportType == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required 'type' parameter."})
		return
	}

	var (
		csv  string
		err  error
		base string
	)

	switch reportType {
	case "users":
		base = "users"
		csv, err = h.userService.ExportCSV(sel.Users)
	case "categories":
		base = "categories"
		csv, err = h.categoryService.ExportCSV(sel.Categories)
	case "tags":
		base = "tags"
		csv, err = h.tagService.ExportCSV(sel.Tags)
	case "articles":
		base = "articles"
		csv, err = h.articleService.ExportCSV(sel.Articles)
	case "bookmarks":
		base = "bookmarks"
		csv, err = h.bookmarkService.ExportCSV(sel.Bookmarks)
	case "readhistory":
		base = "readhistory"
		csv, err = h.readHistoryService.ExportCSV(sel.ReadHistory)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unsupported 'type'. Use one of: users, categories, tags, articles, bookmarks, readhistory."})
		return
	}

	if err != nil {
		h.helper.SendError(c, err)
		return
	}

	filename := base + "_" + exportStamp() + ".csv"
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "text/csv", []byte(csv))
}

func (h *ReportHandler) ExportExcel(c *gin.Context) {
	sel, ok := h.buildSelection(c)
	if !ok {
		return
	}

	f, err := h.reportService.ExportExcel(sel)
	if err != nil {
		h.helper.SendError(c, err)
		return
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		h.helper.SendError(c, err)
		return
	}

	filename := "report_" + exportStamp() + ".xlsx"
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}

func (h *ReportHandler) ExportZip(c *gin.Context) {
	sel, ok := h.buildSelection(c)
	if !ok {
		return
	}

	data, err := h.reportService.ExportZip(sel)
	if err != nil {
		h.helper.SendError(c, err)
		return
	}

	filename := "report_" + exportStamp() + ".zip"
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/zip", data)
}
