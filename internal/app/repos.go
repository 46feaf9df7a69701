package app

import (
	"gorm.io/gorm"

	"github.com/poruwalabs/poruwa-backend/internal/logger"
	"github.com/poruwalabs/poruwa-backend/internal/repos"
)

type Repos struct {
	User             repos.UserRepo
	UserToken        repos.UserTokenRepo
	WeddingType      repos.WeddingTypeRepo
	CulturalColor    repos.CulturalColorRepo
	ColorRule        repos.ColorRuleRepo
	FoodLocation     repos.FoodLocationRepo
	ColorMapping     repos.ColorMappingRepo
	RestrictedColour repos.RestrictedColourRepo
	Project          repos.ProjectRepo
	BudgetItem       repos.BudgetItemRepo
	ChecklistTask    repos.ChecklistTaskRepo
	ThemeSuggestion  repos.ThemeSuggestionRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		User:             repos.NewUserRepo(db, log),
		UserToken:        repos.NewUserTokenRepo(db, log),
		WeddingType:      repos.NewWeddingTypeRepo(db, log),
		CulturalColor:    repos.NewCulturalColorRepo(db, log),
		ColorRule:        repos.NewColorRuleRepo(db, log),
		FoodLocation:     repos.NewFoodLocationRepo(db, log),
		ColorMapping:     repos.NewColorMappingRepo(db, log),
		RestrictedColour: repos.NewRestrictedColourRepo(db, log),
		Project:          repos.NewProjectRepo(db, log),
		BudgetItem:       repos.NewBudgetItemRepo(db, log),
		ChecklistTask:    repos.NewChecklistTaskRepo(db, log),
		ThemeSuggestion:  repos.NewThemeSuggestionRepo(db, log),
	}
}
