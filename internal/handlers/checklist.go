package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/poruwalabs/poruwa-backend/internal/services"
	"github.com/poruwalabs/poruwa-backend/internal/types"
)

type ChecklistHandler struct {
	checklistService services.ChecklistService
}

func NewChecklistHandler(checklistService services.ChecklistService) *ChecklistHandler {
	return &ChecklistHandler{checklistService: checklistService}
}

func (ch *ChecklistHandler) AddTask(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return
	}
	var req struct {
		Title       string     `json:"title"`
		Description string     `json:"description"`
		Status      string     `json:"status"`
		DueDate     *time.Time `json:"due_date"`
		AssignedTo  *uuid.UUID `json:"assigned_to"`
	}
	if bErr := c.ShouldBindJSON(&req); bErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	task := types.ChecklistTask{
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		DueDate:     req.DueDate,
		AssignedTo:  req.AssignedTo,
	}
	created, cErr := ch.checklistService.AddTask(c.Request.Context(), projectID, &task)
	if cErr != nil {
		RespondServiceError(c, cErr)
		return
	}
	RespondOK(c, created)
}

func (ch *ChecklistHandler) ListTasks(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return
	}
	tasks, lErr := ch.checklistService.ListTasks(c.Request.Context(), projectID)
	if lErr != nil {
		RespondServiceError(c, lErr)
		return
	}
	RespondOK(c, gin.H{"tasks": tasks})
}

func (ch *ChecklistHandler) MyTasks(c *gin.Context) {
	tasks, err := ch.checklistService.MyTasks(c.Request.Context())
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"tasks": tasks})
}

func (ch *ChecklistHandler) UpdateTask(c *gin.Context) {
	taskID, err := uuid.Parse(c.Param("taskId"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return
	}
	var req struct {
		Title       *string    `json:"title"`
		Description *string    `json:"description"`
		Status      *string    `json:"status"`
		DueDate     *time.Time `json:"due_date"`
		AssignedTo  *uuid.UUID `json:"assigned_to"`
	}
	if bErr := c.ShouldBindJSON(&req); bErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	updated, uErr := ch.checklistService.UpdateTask(c.Request.Context(), taskID, services.TaskUpdate{
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		DueDate:     req.DueDate,
		AssignedTo:  req.AssignedTo,
	})
	if uErr != nil {
		RespondServiceError(c, uErr)
		return
	}
	RespondOK(c, updated)
}

func (ch *ChecklistHandler) DeleteTask(c *gin.Context) {
	taskID, err := uuid.Parse(c.Param("taskId"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return
	}
	if dErr := ch.checklistService.DeleteTask(c.Request.Context(), taskID); dErr != nil {
		RespondServiceError(c, dErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "task deleted"})
}
