package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/poruwalabs/poruwa-backend/internal/services"
	"github.com/poruwalabs/poruwa-backend/internal/types"
)

type BudgetHandler struct {
	budgetService services.BudgetService
}

func NewBudgetHandler(budgetService services.BudgetService) *BudgetHandler {
	return &BudgetHandler{budgetService: budgetService}
}

func (bh *BudgetHandler) AddItem(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return
	}
	var req struct {
		Category      string     `json:"category"`
		PlannedAmount float64    `json:"planned_amount"`
		ActualAmount  float64    `json:"actual_amount"`
		ExpenseDate   *time.Time `json:"expense_date"`
		Vendor        string     `json:"vendor"`
		Notes         string     `json:"notes"`
	}
	if bErr := c.ShouldBindJSON(&req); bErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	item := types.BudgetItem{
		Category:      req.Category,
		PlannedAmount: req.PlannedAmount,
		ActualAmount:  req.ActualAmount,
		ExpenseDate:   req.ExpenseDate,
		Vendor:        req.Vendor,
		Notes:         req.Notes,
	}
	created, cErr := bh.budgetService.AddItem(c.Request.Context(), projectID, &item)
	if cErr != nil {
		RespondServiceError(c, cErr)
		return
	}
	RespondOK(c, created)
}

func (bh *BudgetHandler) ListItems(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return
	}
	items, lErr := bh.budgetService.ListItems(c.Request.Context(), projectID)
	if lErr != nil {
		RespondServiceError(c, lErr)
		return
	}
	RespondOK(c, gin.H{"items": items})
}

func (bh *BudgetHandler) UpdateItem(c *gin.Context) {
	itemID, err := uuid.Parse(c.Param("itemId"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return
	}
	var req struct {
		Category      *string    `json:"category"`
		PlannedAmount *float64   `json:"planned_amount"`
		ActualAmount  *float64   `json:"actual_amount"`
		ExpenseDate   *time.Time `json:"expense_date"`
		Vendor        *string    `json:"vendor"`
		Notes         *string    `json:"notes"`
	}
	if bErr := c.ShouldBindJSON(&req); bErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	updated, uErr := bh.budgetService.UpdateItem(c.Request.Context(), itemID, services.BudgetItemUpdate{
		Category:      req.Category,
		PlannedAmount: req.PlannedAmount,
		ActualAmount:  req.ActualAmount,
		ExpenseDate:   req.ExpenseDate,
		Vendor:        req.Vendor,
		Notes:         req.Notes,
	})
	if uErr != nil {
		RespondServiceError(c, uErr)
		return
	}
	RespondOK(c, updated)
}

func (bh *BudgetHandler) DeleteItem(c *gin.Context) {
	itemID, err := uuid.Parse(c.Param("itemId"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return
	}
	if dErr := bh.budgetService.DeleteItem(c.Request.Context(), itemID); dErr != nil {
		RespondServiceError(c, dErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "budget item deleted"})
}

func (bh *BudgetHandler) Summary(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return
	}
	summary, sErr := bh.budgetService.Summary(c.Request.Context(), projectID)
	if sErr != nil {
		RespondServiceError(c, sErr)
		return
	}
	RespondOK(c, summary)
}
