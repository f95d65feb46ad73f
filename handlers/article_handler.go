package handlers

import (
	"fmt"
	"net/http"

	"newsapp-api/helper"
	"newsapp-api/models"
	"newsapp-api/services"

	"github.com/gin-gonic/gin"
)

type ArticleHandler struct {
	articleService services.ArticleService
	helper         *helper.HTTPHelper
}

func NewArticleHandler(articleService services.ArticleService, helper *helper.HTTPHelper) *ArticleHandler {
	return &ArticleHandler{articleService: articleService, helper: helper}
}

func (h *ArticleHandler) GetPaged(c *gin.Context) {
	f, err := buildArticleFilter(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	articles, total, err := h.articleService.GetList(f)
	if err != nil {
		h.helper.SendError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":      articles,
		"total":     total,
		"page":      f.Page,
		"page_size": f.PageSize,
	})
}

func (h *ArticleHandler) GetByID(c *gin.Context) {
	id, err := paramID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return
	}

	article, err := h.articleService.GetByID(id)
	if err != nil {
		h.helper.SendError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": article})
}

func (h *ArticleHandler) Create(c *gin.Context) {
	var req models.CreateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !h.helper.ValidateStruct(c, req) {
		return
	}

	article, err := h.articleService.Create(req)
	if err != nil {
		h.helper.SendError(c, err)
		return
	}

	c.Header("Location", fmt.Sprintf("/api/Articles/%d", article.ID))
	c.JSON(http.StatusCreated, gin.H{"data": article})
}

func (h *ArticleHandler) Update(c *gin.Context) {
	id, err := paramID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return
	}

	var req models.UpdateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !h.helper.ValidateStruct(c, req) {
		return
	}

	article, err := h.articleService.Update(id, req)
	if err != nil {
		h.helper.SendError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": article})
}

func (h *ArticleHandler) Delete(c *gin.Context) {
	id, err := paramID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return
	}

	if err := h.articleService.Delete(id); err != nil {
		h.helper.SendError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

type attachTagsRequest struct {
	TagIDs []uint `json:"tag_ids"`
}

// AttachTags adds tags to an article. Ids already attached or unknown are
// skipped, not errors; an empty list is rejected.
func (h *ArticleHandler) AttachTags(c *gin.Context) {
	id, err := paramID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return
	}

	var req attachTagsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if len(req.TagIDs) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "tagIds is required."})
		return
	}

	article, err := h.articleService.AttachTags(id, req.TagIDs)
	if err != nil {
		h.helper.SendError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": article})
}

func (h *ArticleHandler) DetachTag(c *gin.Context) {
	id, err := paramID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return
	}
	tagID, err := paramID(c, "tagId")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid tag id"})
		return
	}

	if err := h.articleService.DetachTag(id, tagID); err != nil {
		h.helper.SendError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *ArticleHandler) Export(c *gin.Context) {
	f, err := buildArticleFilter(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	csv, err := h.articleService.ExportCSV(f)
	if err != nil {
		h.helper.SendError(c, err)
		return
	}

	filename := "articles_" + exportStamp() + ".csv"
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "text/csv", []byte(csv))
}
