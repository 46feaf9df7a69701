package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/poruwalabs/poruwa-backend/internal/services"
	"github.com/poruwalabs/poruwa-backend/internal/types"
)

// AdminDataHandler exposes CRUD over the rule tables that feed the
// suggestion engine. Writes trigger a tree rebuild inside the service.
type AdminDataHandler struct {
	adminDataService services.AdminDataService
}

func NewAdminDataHandler(adminDataService services.AdminDataService) *AdminDataHandler {
	return &AdminDataHandler{adminDataService: adminDataService}
}

func (adh *AdminDataHandler) ListWeddingTypes(c *gin.Context) {
	weddingTypes, err := adh.adminDataService.ListWeddingTypes(c.Request.Context())
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"wedding_types": weddingTypes})
}

func (adh *AdminDataHandler) CreateWeddingType(c *gin.Context) {
	var req struct {
		Name        string `json:"name"`
		Description string `json:"description"`
		IsActive    *bool  `json:"is_active"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	weddingType := types.WeddingType{Name: req.Name, Description: req.Description, IsActive: true}
	if req.IsActive != nil {
		weddingType.IsActive = *req.IsActive
	}
	created, err := adh.adminDataService.CreateWeddingType(c.Request.Context(), &weddingType)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, created)
}

func (adh *AdminDataHandler) UpdateWeddingType(c *gin.Context) {
	var req struct {
		Description *string `json:"description"`
		IsActive    *bool   `json:"is_active"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	updated, err := adh.adminDataService.UpdateWeddingType(c.Request.Context(), c.Param("name"), req.Description, req.IsActive)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, updated)
}

func (adh *AdminDataHandler) DeleteWeddingType(c *gin.Context) {
	if err := adh.adminDataService.DeleteWeddingType(c.Request.Context(), c.Param("name")); err != nil {
		RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "wedding type deleted"})
}

func (adh *AdminDataHandler) ListCulturalColors(c *gin.Context) {
	colors, err := adh.adminDataService.ListCulturalColors(c.Request.Context(), c.Query("wedding_type"))
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"cultural_colors": colors})
}

func (adh *AdminDataHandler) UpsertCulturalColor(c *gin.Context) {
	var req struct {
		WeddingType          string `json:"wedding_type"`
		ColourName           string `json:"colour_name"`
		RGB                  string `json:"rgb"`
		CulturalSignificance string `json:"cultural_significance"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	color := types.CulturalColor{
		WeddingType:          req.WeddingType,
		ColourName:           req.ColourName,
		RGB:                  req.RGB,
		CulturalSignificance: req.CulturalSignificance,
	}
	saved, err := adh.adminDataService.UpsertCulturalColor(c.Request.Context(), &color)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, saved)
}

func (adh *AdminDataHandler) DeleteCulturalColor(c *gin.Context) {
	if err := adh.adminDataService.DeleteCulturalColor(c.Request.Context(), c.Param("type"), c.Param("colour")); err != nil {
		RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "cultural color deleted"})
}

func (adh *AdminDataHandler) ListColorRules(c *gin.Context) {
	rules, err := adh.adminDataService.ListColorRules(c.Request.Context(), c.Query("wedding_type"))
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"color_rules": rules})
}

func (adh *AdminDataHandler) UpsertColorRule(c *gin.Context) {
	var req struct {
		WeddingType       string `json:"wedding_type"`
		BrideColour       string `json:"bride_colour"`
		GroomColour       string `json:"groom_colour"`
		BridesmaidsColour string `json:"bridesmaids_colour"`
		BestMenColour     string `json:"best_men_colour"`
		FlowerDecoColour  string `json:"flower_deco_colour"`
		HallDecorColour   string `json:"hall_decor_colour"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	rule := types.ColorRule{
		WeddingType:       req.WeddingType,
		BrideColour:       req.BrideColour,
		GroomColour:       req.GroomColour,
		BridesmaidsColour: req.BridesmaidsColour,
		BestMenColour:     req.BestMenColour,
		FlowerDecoColour:  req.FlowerDecoColour,
		HallDecorColour:   req.HallDecorColour,
	}
	saved, err := adh.adminDataService.UpsertColorRule(c.Request.Context(), &rule)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, saved)
}

func (adh *AdminDataHandler) DeleteColorRule(c *gin.Context) {
	if err := adh.adminDataService.DeleteColorRule(c.Request.Context(), c.Param("type"), c.Param("colour")); err != nil {
		RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "color rule deleted"})
}

func (adh *AdminDataHandler) ListFoodLocations(c *gin.Context) {
	foodLocations, err := adh.adminDataService.ListFoodLocations(c.Request.Context())
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"food_locations": foodLocations})
}

func (adh *AdminDataHandler) UpsertFoodLocation(c *gin.Context) {
	var req struct {
		WeddingType       string `json:"wedding_type"`
		FoodMenu          string `json:"food_menu"`
		Drinks            string `json:"drinks"`
		PreShootLocations string `json:"pre_shoot_locations"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	foodLocation := types.FoodLocation{
		WeddingType:       req.WeddingType,
		FoodMenu:          req.FoodMenu,
		Drinks:            req.Drinks,
		PreShootLocations: req.PreShootLocations,
	}
	saved, err := adh.adminDataService.UpsertFoodLocation(c.Request.Context(), &foodLocation)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, saved)
}

func (adh *AdminDataHandler) DeleteFoodLocation(c *gin.Context) {
	if err := adh.adminDataService.DeleteFoodLocation(c.Request.Context(), c.Param("type")); err != nil {
		RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "food location deleted"})
}

func (adh *AdminDataHandler) ListColorMappings(c *gin.Context) {
	mappings, err := adh.adminDataService.ListColorMappings(c.Request.Context())
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"color_mappings": mappings})
}

func (adh *AdminDataHandler) UpsertColorMapping(c *gin.Context) {
	var req struct {
		ColorName   string `json:"color_name"`
		RGB         string `json:"rgb"`
		Description string `json:"description"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	mapping := types.ColorMapping{ColorName: req.ColorName, RGB: req.RGB, Description: req.Description}
	saved, err := adh.adminDataService.UpsertColorMapping(c.Request.Context(), &mapping)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, saved)
}

func (adh *AdminDataHandler) DeleteColorMapping(c *gin.Context) {
	if err := adh.adminDataService.DeleteColorMapping(c.Request.Context(), c.Param("name")); err != nil {
		RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "color mapping deleted"})
}

func (adh *AdminDataHandler) ListRestrictedColours(c *gin.Context) {
	restricted, err := adh.adminDataService.ListRestrictedColours(c.Request.Context(), c.Query("wedding_type"))
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"restricted_colours": restricted})
}

func (adh *AdminDataHandler) CreateRestrictedColour(c *gin.Context) {
	var req struct {
		WeddingType      string `json:"wedding_type"`
		RestrictedColour string `json:"restricted_colour"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	restricted := types.RestrictedColour{WeddingType: req.WeddingType, RestrictedColour: req.RestrictedColour}
	created, err := adh.adminDataService.CreateRestrictedColour(c.Request.Context(), &restricted)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, created)
}

func (adh *AdminDataHandler) DeleteRestrictedColour(c *gin.Context) {
	if err := adh.adminDataService.DeleteRestrictedColour(c.Request.Context(), c.Param("type"), c.Param("colour")); err != nil {
		RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "restricted colour deleted"})
}

func (adh *AdminDataHandler) ImportSeed(c *gin.Context) {
	var req struct {
		Path string `json:"path"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if req.Path == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "a seed file path is required"})
		return
	}
	report, err := adh.adminDataService.ImportSeedFile(c.Request.Context(), req.Path)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, report)
}
