package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/poruwalabs/poruwa-backend/internal/services"
	"github.com/poruwalabs/poruwa-backend/internal/types"
)

type ProjectHandler struct {
	projectService services.ProjectService
}

func NewProjectHandler(projectService services.ProjectService) *ProjectHandler {
	return &ProjectHandler{projectService: projectService}
}

func (ph *ProjectHandler) Create(c *gin.Context) {
	var req struct {
		BrideName     string     `json:"bride_name"`
		GroomName     string     `json:"groom_name"`
		ContactNumber string     `json:"contact_number"`
		ContactEmail  string     `json:"contact_email"`
		WeddingDate   time.Time  `json:"wedding_date"`
		WeddingType   string     `json:"wedding_type"`
		BrideColor    string     `json:"bride_color"`
		Status        string     `json:"status"`
		Budget        float64    `json:"budget"`
		Notes         string     `json:"notes"`
		AssignedTo    *uuid.UUID `json:"assigned_to"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	project := types.Project{
		BrideName:     req.BrideName,
		GroomName:     req.GroomName,
		ContactNumber: req.ContactNumber,
		ContactEmail:  req.ContactEmail,
		WeddingDate:   req.WeddingDate,
		WeddingType:   req.WeddingType,
		BrideColor:    req.BrideColor,
		Status:        req.Status,
		Budget:        req.Budget,
		Notes:         req.Notes,
		AssignedTo:    req.AssignedTo,
	}
	created, err := ph.projectService.Create(c.Request.Context(), &project)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, created)
}

func (ph *ProjectHandler) Get(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return
	}
	project, gErr := ph.projectService.Get(c.Request.Context(), projectID)
	if gErr != nil {
		RespondServiceError(c, gErr)
		return
	}
	RespondOK(c, project)
}

func (ph *ProjectHandler) List(c *gin.Context) {
	projects, err := ph.projectService.List(c.Request.Context())
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"projects": projects})
}

func (ph *ProjectHandler) Update(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return
	}
	var req struct {
		BrideName     *string    `json:"bride_name"`
		GroomName     *string    `json:"groom_name"`
		ContactNumber *string    `json:"contact_number"`
		ContactEmail  *string    `json:"contact_email"`
		WeddingDate   *time.Time `json:"wedding_date"`
		WeddingType   *string    `json:"wedding_type"`
		BrideColor    *string    `json:"bride_color"`
		Status        *string    `json:"status"`
		Budget        *float64   `json:"budget"`
		Notes         *string    `json:"notes"`
		AssignedTo    *uuid.UUID `json:"assigned_to"`
	}
	if bErr := c.ShouldBindJSON(&req); bErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	updated, uErr := ph.projectService.Update(c.Request.Context(), projectID, services.ProjectUpdate{
		BrideName:     req.BrideName,
		GroomName:     req.GroomName,
		ContactNumber: req.ContactNumber,
		ContactEmail:  req.ContactEmail,
		WeddingDate:   req.WeddingDate,
		WeddingType:   req.WeddingType,
		BrideColor:    req.BrideColor,
		Status:        req.Status,
		Budget:        req.Budget,
		Notes:         req.Notes,
		AssignedTo:    req.AssignedTo,
	})
	if uErr != nil {
		RespondServiceError(c, uErr)
		return
	}
	RespondOK(c, updated)
}

func (ph *ProjectHandler) Delete(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return
	}
	if dErr := ph.projectService.Delete(c.Request.Context(), projectID); dErr != nil {
		RespondServiceError(c, dErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "project deleted"})
}
