package handlers

import (
	"net/http"

	"newsapp-api/helper"
	"newsapp-api/models"
	"newsapp-api/services"

	"github.com/gin-gonic/gin"
)

type ReadHistoryHandler struct {
	readService services.ReadHistoryService
	helper      *helper.HTTPHelper
}

func NewReadHistoryHandler(readService services.ReadHistoryService, helper *helper.HTTPHelper) *ReadHistoryHandler {
	return &ReadHistoryHandler{readService: readService, helper: helper}
}

func (h *ReadHistoryHandler) GetByUser(c *gin.Context) {
	userID, err := paramID(c, "userId")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
		return
	}

	entries, err := h.readService.GetByUser(userID)
	if err != nil {
		h.helper.SendError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": entries})
}

// Create records a read event. Repeat reads of the same article are distinct
// rows, unlike bookmarks.
func (h *ReadHistoryHandler) Create(c *gin.Context) {
	var req models.CreateReadHistoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !h.helper.ValidateStruct(c, req) {
		return
	}

	entry, err := h.readService.Create(req)
	if err != nil {
		h.helper.SendError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": entry})
}

func (h *ReadHistoryHandler) Export(c *gin.Context) {
	f, err := buildReadHistoryFilter(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	csv, err := h.readService.ExportCSV(f)
	if err != nil {
		h.helper.SendError(c, err)
		return
	}

	filename := "readhistory_" + exportStamp() + ".csv"
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "text/csv", []byte(csv))
}
