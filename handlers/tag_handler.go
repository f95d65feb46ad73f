package handlers

import (
	"fmt"
	"net/http"

	"newsapp-api/helper"
	"newsapp-api/models"
	"newsapp-api/services"

	"github.com/gin-gonic/gin"
)

type TagHandler struct {
	tagService services.TagService
	helper     *helper.HTTPHelper
}

func NewTagHandler(tagService services.TagService, helper *helper.HTTPHelper) *TagHandler {
	return &TagHandler{tagService: tagService, helper: helper}
}

func (h *TagHandler) GetPaged(c *gin.Context) {
	f, err := buildTagFilter(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tags, total, err := h.tagService.GetList(f)
	if err != nil {
		h.helper.SendError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":      tags,
		"total":     total,
		"page":      f.Page,
		"page_size": f.PageSize,
	})
}

func (h *TagHandler) GetByID(c *gin.Context) {
	id, err := paramID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return
	}

	tag, err := h.tagService.GetByID(id)
	if err != nil {
		h.helper.SendError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": tag})
}

func (h *TagHandler) Create(c *gin.Context) {
	var req models.CreateTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !h.helper.ValidateStruct(c, req) {
		return
	}

	tag, err := h.tagService.Create(req)
	if err != nil {
		h.helper.SendError(c, err)
		return
	}

	c.Header("Location", fmt.Sprintf("/api/Tags/%d", tag.ID))
	c.JSON(http.StatusCreated, gin.H{"data": tag})
}

func (h *TagHandler) Update(c *gin.Context) {
	id, err := paramID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return
	}

	var req models.UpdateTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !h.helper.ValidateStruct(c, req) {
		return
	}

	tag, err := h.tagService.Update(id, req)
	if err != nil {
		h.helper.SendError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": tag})
}

func (h *TagHandler) Delete(c *gin.Context) {
	id, err := paramID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return
	}

	if err := h.tagService.Delete(id); err != nil {
		h.helper.SendError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *TagHandler) Export(c *gin.Context) {
	f, err := buildTagFilter(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	csv, err := h.tagService.ExportCSV(f)
	if err != nil {
		h.helper.SendError(c, err)
		return
	}

	filename := "tags_" + exportStamp() + ".csv"
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "text/csv", []byte(csv))
}
