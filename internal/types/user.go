package types

import (
	"time"

	"github.com/google/uuid"
)

const (
	RoleAdmin       = "admin"
	RolePlanner     = "planner"
	RoleCoordinator = "coordinator"
)

type User struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Email       string    `gorm:"uniqueIndex;not null;column:email" json:"email"`
	Username    string    `gorm:"uniqueIndex;not null;column:username" json:"username"`
	Password    string    `gorm:"not null;column:password" json:"-"`
	Name        string    `gorm:"column:name" json:"name"`
	PhoneNumber string    `gorm:"column:phone_number" json:"phone_number"`
	Address     string    `gorm:"column:address" json:"address"`
	Role        string    `gorm:"type:varchar(20);not null;default:'planner'" json:"role"`
	CreatedAt   time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time `gorm:"not null" json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

func (u *User) IsPlanner() bool {
	return u.Role == RolePlanner
}

func (u *User) IsCoordinator() bool {
	return u.Role == RoleCoordinator
}

func ValidRole(role string) bool {
	switch role {
	case RoleAdmin, RolePlanner, RoleCoordinator:
		return true
	}
	return false
}
