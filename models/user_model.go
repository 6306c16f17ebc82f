package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	RoleStudent           = "student"
	RoleLecturer          = "lecturer"
	RolePrincipalLecturer = "prl"
	RoleProgramLeader     = "pl"
)

type User struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Username    string    `gorm:"size:255;not null;unique" json:"username"`
	Password    string    `gorm:"not null" json:"-"`
	Role        string    `gorm:"size:20;not null" json:"role"`
	FacultyName *string   `gorm:"size:255" json:"faculty_name"`

	Name  *string `gorm:"size:100" json:"name"`
	Email *string `gorm:"size:100" json:"email"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
