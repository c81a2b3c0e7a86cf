package services

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"strike-master-api/models"
)

type PlayerService struct {
	DB *gorm.DB
}

func NewPlayerService(db *gorm.DB) *PlayerService {
	return &PlayerService{DB: db}
}

// GetPlayers lists a coach's active roster, optionally filtered by gender.
func (s *PlayerService) GetPlayers(c *fiber.Ctx) error {
	coachID := c.Query("coachId")
	if coachID == "" {
		return c.Status(400).JSON(fiber.Map{"error": "coachId is required"})
	}

	query := s.DB.Where("coach_id = ? AND is_active = ?", coachID, true).Order("last_name")
	if gender := c.Query("gender"); gender != "" {
		query = query.Where("gender = ?", gender)
	}

	players := []models.Player{}
	if err := query.Find(&players).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(players)
}

func (s *PlayerService) GetPlayer(c *fiber.Ctx) error {
	var player models.Player
	if err := s.DB.Where("id = ?", c.Params("id")).Take(&player).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Player not found"})
	}
	return c.JSON(player)
}

func (s *PlayerService) CreatePlayer(c *fiber.Ctx) error {
	var body struct {
		CoachID   string `json:"coachId"`
		FirstName string `json:"firstName"`
		LastName  string `json:"lastName"`
		Gender    string `json:"gender"`
		GradYear  *int   `json:"gradYear"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid request body"})
	}
	if body.CoachID == "" || body.FirstName == "" || body.LastName == "" || body.Gender == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Required: coachId, firstName, lastName, gender"})
	}

	player := &models.Player{
		ID:        uuid.NewString(),
		CoachID:   body.CoachID,
		FirstName: body.FirstName,
		LastName:  body.LastName,
		Gender:    body.Gender,
		GradYear:  body.GradYear,
		IsActive:  true,
	}
	if err := s.DB.Create(player).Error; err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(player)
}

// UpdatePlayer applies a partial update; only fields present in the body
// are touched.
func (s *PlayerService) UpdatePlayer(c *fiber.Ctx) error {
	var body struct {
		FirstName *string `json:"firstName"`
		LastName  *string `json:"lastName"`
		Gender    *string `json:"gender"`
		GradYear  *int    `json:"gradYear"`
		IsActive  *bool   `json:"isActive"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid request body"})
	}

	updates := map[string]interface{}{}
	if body.FirstName != nil {
		updates["first_name"] = *body.FirstName
	}
	if body.LastName != nil {
		updates["last_name"] = *body.LastName
	}
	if body.Gender != nil {
		updates["gender"] = *body.Gender
	}
	if body.GradYear != nil {
		updates["grad_year"] = *body.GradYear
	}
	if body.IsActive != nil {
		updates["is_active"] = *body.IsActive
	}

	var player models.Player
	if err := s.DB.Where("id = ?", c.Params("id")).Take(&player).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Player not found"})
	}
	if len(updates) > 0 {
		if err := s.DB.Model(&player).Updates(updates).Error; err != nil {
			return c.Status(400).JSON(fiber.Map{"error": err.Error()})
		}
	}
	return c.JSON(player)
}

// DeletePlayer soft-deletes: the player drops off the active roster but
// their historical records stay.
func (s *PlayerService) DeletePlayer(c *fiber.Ctx) error {
	result := s.DB.Model(&models.Player{}).Where("id = ?", c.Params("id")).Update("is_active", false)
	if result.Error != nil {
		return c.Status(400).JSON(fiber.Map{"error": result.Error.Error()})
	}
	if result.RowsAffected == 0 {
		return c.Status(404).JSON(fiber.Map{"error": "Player not found"})
	}
	return c.JSON(fiber.Map{"success": true, "message": "Player removed"})
}
