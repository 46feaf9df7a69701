package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/poruwalabs/poruwa-backend/internal/services"
)

var errMissingSuggestFields = errors.New("wedding_type and bride_colour are required")

type WeddingHandler struct {
	weddingService    services.WeddingService
	suggestionService services.SuggestionService
}

func NewWeddingHandler(weddingService services.WeddingService, suggestionService services.SuggestionService) *WeddingHandler {
	return &WeddingHandler{weddingService: weddingService, suggestionService: suggestionService}
}

// Suggest runs the full prediction pipeline for a wedding type and bride
// colour. The inputs are free-form; normalization happens inside the engine.
func (wh *WeddingHandler) Suggest(c *gin.Context) {
	var req struct {
		WeddingType string     `json:"wedding_type"`
		BrideColour string     `json:"bride_colour"`
		ProjectID   *uuid.UUID `json:"project_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if req.WeddingType == "" || req.BrideColour == "" {
		RespondError(c, http.StatusBadRequest, "missing_fields", errMissingSuggestFields)
		return
	}
	suggestion, err := wh.suggestionService.Suggest(c.Request.Context(), req.WeddingType, req.BrideColour, req.ProjectID)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, suggestion)
}

func (wh *WeddingHandler) WeddingTypes(c *gin.Context) {
	weddingTypes, err := wh.weddingService.AvailableWeddingTypes(c.Request.Context())
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"wedding_types": weddingTypes})
}

func (wh *WeddingHandler) Colors(c *gin.Context) {
	weddingType := c.Param("type")
	canonical, colors, restricted, err := wh.weddingService.ColorsForType(c.Request.Context(), weddingType)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{
		"wedding_type":       canonical,
		"colors":             colors,
		"restricted_colours": restricted,
	})
}

// SuggestForProject runs the same pipeline as Suggest but records the
// result against the project.
func (wh *WeddingHandler) SuggestForProject(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return
	}
	var req struct {
		WeddingType string `json:"wedding_type"`
		BrideColour string `json:"bride_colour"`
	}
	if bErr := c.ShouldBindJSON(&req); bErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if req.WeddingType == "" || req.BrideColour == "" {
		RespondError(c, http.StatusBadRequest, "missing_fields", errMissingSuggestFields)
		return
	}
	suggestion, sErr := wh.suggestionService.Suggest(c.Request.Context(), req.WeddingType, req.BrideColour, &projectID)
	if sErr != nil {
		RespondServiceError(c, sErr)
		return
	}
	RespondOK(c, suggestion)
}

func (wh *WeddingHandler) SuggestionHistory(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return
	}
	history, hErr := wh.suggestionService.History(c.Request.Context(), projectID)
	if hErr != nil {
		RespondServiceError(c, hErr)
		return
	}
	RespondOK(c, gin.H{"suggestions": history})
}

func (wh *WeddingHandler) AllSuggestionHistory(c *gin.Context) {
	history, err := wh.suggestionService.AllHistory(c.Request.Context())
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"suggestions": history})
}

func (wh *WeddingHandler) TreeInfo(c *gin.Context) {
	RespondOK(c, wh.suggestionService.TreeInfo(c.Request.Context()))
}

func (wh *WeddingHandler) RebuildTree(c *gin.Context) {
	info, err := wh.suggestionService.Rebuild(c.Request.Context())
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, info)
}
