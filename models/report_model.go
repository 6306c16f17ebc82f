package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Report is one lecturer's record of a single lecture session. Field order
// is the export order, so new fields belong at the end of their group.
type Report struct {
	ID                      uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	FacultyName             string    `gorm:"size:255;not null" json:"faculty_name"`
	ClassName               string    `gorm:"size:255;not null" json:"class_name"`
	WeekOfReporting         string    `gorm:"size:50;not null" json:"week_of_reporting"`
	DateOfLecture           string    `gorm:"size:50;not null" json:"date_of_lecture"`
	CourseName              string    `gorm:"size:255;not null" json:"course_name"`
	CourseCode              *string   `gorm:"size:255" json:"course_code"`
	LecturerName            *string   `gorm:"size:255" json:"lecturer_name"`
	ActualStudents          int       `json:"actual_students"`
	TotalRegisteredStudents int       `json:"total_registered_students"`
	Venue                   *string   `gorm:"size:255" json:"venue"`
	ScheduledTime           *string   `gorm:"size:50" json:"scheduled_time"`
	TopicTaught             *string   `gorm:"type:text" json:"topic_taught"`
	LearningOutcomes        *string   `gorm:"type:text" json:"learning_outcomes"`
	Recommendations         *string   `gorm:"type:text" json:"recommendations"`
	LecturerID              uuid.UUID `gorm:"not null" json:"lecturer_id"`
	Feedback                *string   `gorm:"type:text" json:"feedback"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (r *Report) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
