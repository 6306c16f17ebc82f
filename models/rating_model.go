package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Rating holds one user's 1-5 score for one report. The unique index keeps
// re-rating an upsert instead of a second row.
type Rating struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	ReportID uuid.UUID `gorm:"not null;uniqueIndex:idx_ratings_report_user" json:"report_id"`
	Rating   int       `gorm:"not null" json:"rating"`
	UserID   uuid.UUID `gorm:"not null;uniqueIndex:idx_ratings_report_user" json:"user_id"`

	Report Report `gorm:"foreignkey:ReportID" json:"-"`
	User   User   `gorm:"foreignkey:UserID" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (r *Rating) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
