package models

import "time"

// CompensationType describes how a role is rewarded.
type CompensationType string

const (
	CompensationVolunteer   CompensationType = "Volunteer"
	CompensationCompensated CompensationType = "Compensated"
)

// Valid reports whether t is one of the known compensation types.
func (t CompensationType) Valid() bool {
	return t == CompensationVolunteer || t == CompensationCompensated
}

// Role represents a collaboration opening on an idea.
type Role struct {
	ID               uint             `gorm:"primaryKey" json:"id"`
	IdeaID           uint             `gorm:"not null;index" json:"idea_id"`
	Idea             *Idea            `gorm:"foreignKey:IdeaID" json:"idea,omitempty"`
	Title            string           `gorm:"not null" json:"title"`
	Description      string           `gorm:"type:text;not null" json:"description"`
	CompensationType CompensationType `gorm:"not null" json:"compensation_type"`
	CreatedAt        time.Time        `json:"created_at"`
	Applications     []Application    `gorm:"foreignKey:RoleID" json:"applications,omitempty"`
}
