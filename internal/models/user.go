// Package models contains data structures for the application's domain models.
package models

import (
	"time"

	"gorm.io/datatypes"
)

// User represents a member of the idea board. Users are created out of
// band (seed tooling); the API only reads and partially updates them.
// Email is immutable through the profile update operation.
type User struct {
	ID           uint                        `gorm:"primaryKey" json:"id"`
	Name         string                      `gorm:"not null" json:"name"`
	Email        string                      `gorm:"unique;not null" json:"email"`
	Bio          *string                     `json:"bio"`
	Skills       datatypes.JSONSlice[string] `json:"skills"`
	CreatedAt    time.Time                   `json:"created_at"`
	Ideas        []Idea                      `gorm:"foreignKey:OwnerID" json:"ideas,omitempty"`
	Applications []Application               `gorm:"foreignKey:ApplicantID" json:"applications,omitempty"`
}
