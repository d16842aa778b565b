// Package seed populates a development database with realistic demo data.
package seed

import (
	"fmt"
	"log"

	"ideaboard/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var stages = []models.DevelopmentStage{
	models.StageConcept,
	models.StagePrototype,
	models.StageMVP,
	models.StageLaunched,
}

var compensationTypes = []models.CompensationType{
	models.CompensationVolunteer,
	models.CompensationCompensated,
}

var roleTitles = []string{
	"Backend Engineer",
	"Frontend Engineer",
	"Product Designer",
	"Growth Marketer",
	"Data Scientist",
	"Mobile Developer",
}

var skillPool = []string{
	"Go", "TypeScript", "React", "PostgreSQL", "Redis", "Kubernetes",
	"Figma", "Product Strategy", "SEO", "Machine Learning", "Swift",
}

// FakeUser builds a user with a unique email and a small random skill set.
func FakeUser() *models.User {
	bio := gofakeit.Sentence(12)
	picks := indexes(len(skillPool))
	gofakeit.ShuffleInts(picks)
	skills := make([]string, 0, 3)
	for _, i := range picks[:gofakeit.Number(1, 3)] {
		skills = append(skills, skillPool[i])
	}
	return &models.User{
		Name:   gofakeit.Name(),
		Email:  fmt.Sprintf("%s-%s@%s", gofakeit.Username(), uuid.NewString()[:8], gofakeit.DomainName()),
		Bio:    &bio,
		Skills: datatypes.JSONSlice[string](skills),
	}
}

// FakeIdea builds an idea owned by the given user. Roughly half the
// ideas are for sale with a price and reasoning attached.
func FakeIdea(ownerID uint) *models.Idea {
	idea := &models.Idea{
		Title:            gofakeit.AppName() + " for " + gofakeit.NounAbstract(),
		Description:      gofakeit.Paragraph(1, 3, 14, " "),
		OwnerID:          ownerID,
		DevelopmentStage: stages[gofakeit.Number(0, len(stages)-1)],
	}
	if gofakeit.Bool() {
		forSale := true
		reasoning := gofakeit.Sentence(10)
		idea.IsForSale = &forSale
		idea.Price = models.NewPricePtr(ptr(gofakeit.Price(100, 50000)))
		idea.PriceReasoning = &reasoning
	}
	return idea
}

// FakeRole builds a role attached to the given idea.
func FakeRole(ideaID uint) *models.Role {
	return &models.Role{
		IdeaID:           ideaID,
		Title:            roleTitles[gofakeit.Number(0, len(roleTitles)-1)],
		Description:      gofakeit.Sentence(15),
		CompensationType: compensationTypes[gofakeit.Number(0, len(compensationTypes)-1)],
	}
}

// Options controls how much demo data Seed generates.
type Options struct {
	Users int // total users; roughly two thirds post ideas, the rest apply
}

// Seed fills the database with demo users, ideas, roles and applications.
// It is idempotent in the cheap way: if any user already exists it does
// nothing, so restarting a dev server never duplicates data.
func Seed(db *gorm.DB, opts Options) error {
	if opts.Users <= 0 {
		opts.Users = 12
	}

	var count int64
	if err := db.Model(&models.User{}).Count(&count).Error; err != nil {
		return fmt.Errorf("seed precheck failed: %w", err)
	}
	if count > 0 {
		log.Println("Database already seeded, skipping")
		return nil
	}

	gofakeit.Seed(0)

	users := make([]*models.User, 0, opts.Users)
	for i := 0; i < opts.Users; i++ {
		u := FakeUser()
		if err := db.Create(u).Error; err != nil {
			return fmt.Errorf("seeding user: %w", err)
		}
		users = append(users, u)
	}

	posters := len(users) * 2 / 3
	if posters == 0 {
		posters = len(users)
	}

	roles := make([]*models.Role, 0, 2*posters)
	for _, u := range users[:posters] {
		for i := 0; i < gofakeit.Number(1, 3); i++ {
			idea := FakeIdea(u.ID)
			if err := db.Create(idea).Error; err != nil {
				return fmt.Errorf("seeding idea: %w", err)
			}
			for j := 0; j < gofakeit.Number(0, 2); j++ {
				role := FakeRole(idea.ID)
				if err := db.Create(role).Error; err != nil {
					return fmt.Errorf("seeding role: %w", err)
				}
				roles = append(roles, role)
			}
		}
	}

	// The remaining users apply to random roles.
	for _, u := range users[posters:] {
		for i := 0; i < gofakeit.Number(1, 4) && len(roles) > 0; i++ {
			role := roles[gofakeit.Number(0, len(roles)-1)]
			application := &models.Application{
				RoleID:      role.ID,
				ApplicantID: u.ID,
				Motivation:  gofakeit.Paragraph(1, 2, 12, " "),
				Status:      models.StatusPending,
			}
			if err := db.Create(application).Error; err != nil {
				return fmt.Errorf("seeding application: %w", err)
			}
		}
	}

	log.Printf("Seeded %d users with ideas, roles and applications", len(users))
	return nil
}

// SeedDemo creates a fixed, recognizable walkthrough record set: one
// founder with one idea carrying one open role. Safe to run alongside
// Seed; the demo email is stable so reruns hit the unique constraint
// and are skipped.
func SeedDemo(db *gorm.DB) error {
	var existing models.User
	err := db.Where("email = ?", "demo@ideaboard.local").First(&existing).Error
	if err == nil {
		log.Println("Demo data already present, skipping")
		return nil
	}

	bio := "Serial tinkerer looking for collaborators."
	founder := &models.User{
		Name:   "Demo Founder",
		Email:  "demo@ideaboard.local",
		Bio:    &bio,
		Skills: datatypes.JSONSlice[string]{"Product Strategy", "Go"},
	}
	if err := db.Create(founder).Error; err != nil {
		return fmt.Errorf("seeding demo user: %w", err)
	}

	forSale := true
	reasoning := "Domain, waitlist and a clickable prototype included."
	price := models.NewPrice(2500)
	idea := &models.Idea{
		Title:            "Neighborhood tool library",
		Description:      "Borrow and lend power tools with deposit handling built in.",
		OwnerID:          founder.ID,
		DevelopmentStage: models.StagePrototype,
		IsForSale:        &forSale,
		Price:            &price,
		PriceReasoning:   &reasoning,
	}
	if err := db.Create(idea).Error; err != nil {
		return fmt.Errorf("seeding demo idea: %w", err)
	}

	role := &models.Role{
		IdeaID:           idea.ID,
		Title:            "Mobile Developer",
		Description:      "Build the borrower app for iOS and Android.",
		CompensationType: models.CompensationCompensated,
	}
	if err := db.Create(role).Error; err != nil {
		return fmt.Errorf("seeding demo role: %w", err)
	}

	log.Printf("Demo data created: user %d, idea %d, role %d", founder.ID, idea.ID, role.ID)
	return nil
}

func indexes(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

func ptr[T any](v T) *T { return &v }
