package handlers

import (
	"net/http"

	"newsapp-api/helper"
	"newsapp-api/models"
	"newsapp-api/services"

	"github.com/gin-gonic/gin"
)

type BookmarkHandler struct {
	bookmarkService services.BookmarkService
	helper          *helper.HTTPHelper
}

func NewBookmarkHandler(bookmarkService services.BookmarkService, helper *helper.HTTPHelper) *BookmarkHandler {
	return &BookmarkHandler{bookmarkService: bookmarkService, helper: helper}
}

func (h *BookmarkHandler) GetByUser(c *gin.Context) {
	userID, err := paramID(c, "userId")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
		return
	}

	bookmarks, err := h.bookmarkService.GetByUser(userID)
	if err != nil {
		h.helper.SendError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": bookmarks})
}

func (h *BookmarkHandler) Create(c *gin.Context) {
	var req models.CreateBookmarkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !h.helper.ValidateStruct(c, req) {
		return
	}

	bookmark, err := h.bookmarkService.Create(req)
	if err != nil {
		h.helper.SendError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": bookmark})
}

func (h *BookmarkHandler) Delete(c *gin.Context) {
	id, err := paramID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return
	}

	if err := h.bookmarkService.Delete(id); err != nil {
		h.helper.SendError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *BookmarkHandler) Export(c *gin.Context) {
	f, err := buildBookmarkFilter(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	csv, err := h.bookmarkService.ExportCSV(f)
	if err != nil {
		h.helper.SendError(c, err)
		return
	}

	filename := "bookmarks_" + exportStamp() + ".csv"
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "text/csv", []byte(csv))
}
