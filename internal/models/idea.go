package models

import "time"

// DevelopmentStage describes how far along an idea is.
type DevelopmentStage string

const (
	StageConcept   DevelopmentStage = "Concept"
	StagePrototype DevelopmentStage = "Prototype"
	StageMVP       DevelopmentStage = "MVP"
	StageLaunched  DevelopmentStage = "Launched"
)

// Valid reports whether s is one of the known development stages.
func (s DevelopmentStage) Valid() bool {
	switch s {
	case StageConcept, StagePrototype, StageMVP, StageLaunched:
		return true
	}
	return false
}

// Idea represents a posted idea looking for collaborators or a buyer.
// Price is meaningful only when IsForSale is true; the schema does not
// enforce that pairing.
type Idea struct {
	ID               uint             `gorm:"primaryKey" json:"id"`
	Title            string           `gorm:"not null" json:"title"`
	Description      string           `gorm:"type:text;not null" json:"description"`
	OwnerID          uint             `gorm:"not null;index" json:"owner_id"`
	Owner            *User            `gorm:"foreignKey:OwnerID" json:"owner,omitempty"`
	DevelopmentStage DevelopmentStage `gorm:"not null" json:"development_stage"`
	IsForSale        *bool            `json:"is_for_sale"`
	Price            *Price           `gorm:"type:numeric(10,2)" json:"price"`
	PriceReasoning   *string          `gorm:"type:text" json:"price_reasoning"`
	CreatedAt        time.Time        `json:"created_at"`
	Roles            []Role           `gorm:"foreignKey:IdeaID" json:"roles,omitempty"`
}
