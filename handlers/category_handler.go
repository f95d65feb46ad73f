package handlers

import (
	"fmt"
	"net/http"

	"newsapp-api/helper"
	"newsapp-api/models"
	"newsapp-api/services"

	"github.com/gin-gonic/gin"
)

type CategoryHandler struct {
	categoryService services.CategoryService
	helper          *helper.HTTPHelper
}

func NewCategoryHandler(categoryService services.CategoryService, helper *helper.HTTPHelper) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService, helper: helper}
}

func (h *CategoryHandler) GetPaged(c *gin.Context) {
	f, err := buildCategoryFilter(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	categories, total, err := h.categoryService.GetList(f)
	if err != nil {
		h.helper.SendError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":      categories,
		"total":     total,
		"page":      f.Page,
		"page_size": f.PageSize,
	})
}

func (h *CategoryHandler) GetByID(c *gin.Context) {
	id, err := paramID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return
	}

	category, err := h.categoryService.GetByID(id)
	if err != nil {
		h.helper.SendError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": category})
}

func (h *CategoryHandler) Create(c *gin.Context) {
	var req models.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !h.helper.ValidateStruct(c, req) {
		return
	}

	category, err := h.categoryService.Create(req)
	if err != nil {
		h.helper.SendError(c, err)
		return
	}

	c.Header("Location", fmt.Sprintf("/api/Categories/%d", category.ID))
	c.JSON(http.StatusCreated, gin.H{"data": category})
}

func (h *CategoryHandler) Update(c *gin.Context) {
	id, err := paramID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return
	}

	var req models.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !h.helper.ValidateStruct(c, req) {
		return
	}

	category, err := h.categoryService.Update(id, req)
	if err != nil {
		h.helper.SendError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": category})
}

func (h *CategoryHandler) Delete(c *gin.Context) {
	id, err := paramID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return
	}

	if err := h.categoryService.Delete(id); err != nil {
		h.helper.SendError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *CategoryHandler) Export(c *gin.Context) {
	f, err := buildCategoryFilter(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	csv, err := h.categoryService.ExportCSV(f)
	if err != nil {
		h.helper.SendError(c, err)
		return
	}

	filename := "categories_" + exportStamp() + ".csv"
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "text/csv", []byte(csv))
}
