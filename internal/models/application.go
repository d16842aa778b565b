package models

import "time"

// ApplicationStatus is the lifecycle state of a role application.
// Applications are always created Pending; Accepted/Rejected transitions
// are modeled in the schema but have no handler yet.
type ApplicationStatus string

const (
	StatusPending  ApplicationStatus = "Pending"
	StatusAccepted ApplicationStatus = "Accepted"
	StatusRejected ApplicationStatus = "Rejected"
)

// Application represents a user applying for a role on an idea.
type Application struct {
	ID          uint              `gorm:"primaryKey" json:"id"`
	RoleID      uint              `gorm:"not null;index" json:"role_id"`
	Role        *Role             `gorm:"foreignKey:RoleID" json:"role,omitempty"`
	ApplicantID uint              `gorm:"not null;index" json:"applicant_id"`
	Applicant   *User             `gorm:"foreignKey:ApplicantID" json:"applicant,omitempty"`
	Motivation  string            `gorm:"type:text;not null" json:"motivation"`
	Status      ApplicationStatus `gorm:"not null;default:'Pending'" json:"status"`
	CreatedAt   time.Time         `json:"created_at"`
}
