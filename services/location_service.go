package services

import (
	"github.com/gofiber/fiber/v2"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"strike-master-api/models"
)

type LocationService struct {
	DB *gorm.DB
}

func NewLocationService(db *gorm.DB) *LocationService {
	return &LocationService{DB: db}
}

// defaultLocations is served, in this order, to any coach who has not
// saved a list of their own.
var defaultLocations = []string{
	"Montvale Lanes",
	"Bowler City",
	"Lodi Lanes",
	"Parkway Lanes",
	"Holiday Bowl",
}

// DefaultLocations returns a copy of the fixed default lane list.
func DefaultLocations() []string {
	out := make([]string, len(defaultLocations))
	copy(out, defaultLocations)
	return out
}

// appendLocation adds a location to the list unless it is already present.
func appendLocation(locations []string, location string) []string {
	for _, l := range locations {
		if l == location {
			return locations
		}
	}
	return append(locations, location)
}

// GetLocations returns the coach's saved lane list, or the defaults.
func (s *LocationService) GetLocations(c *fiber.Ctx) error {
	coachID := c.Query("coachId")
	if coachID == "" {
		return c.Status(400).JSON(fiber.Map{"error": "coachId is required"})
	}

	var coach models.Coach
	if err := s.DB.Select("id, saved_locations").Where("id = ?", coachID).Take(&coach).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Coach not found"})
	}

	if len(coach.SavedLocations) == 0 {
		return c.JSON(DefaultLocations())
	}
	return c.JSON([]string(coach.SavedLocations))
}

// SaveLocations replaces the coach's saved lane list.
func (s *LocationService) SaveLocations(c *fiber.Ctx) error {
	var body struct {
		CoachID   string    `json:"coachId"`
		Locations *[]string `json:"locations"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid request body"})
	}
	if body.CoachID == "" || body.Locations == nil {
		return c.Status(400).JSON(fiber.Map{"error": "coachId and locations are required"})
	}

	result := s.DB.Model(&models.Coach{}).Where("id = ?", body.CoachID).
		Update("saved_locations", pq.StringArray(*body.Locations))
	if result.Error != nil {
		return c.Status(500).JSON(fiber.Map{"error": result.Error.Error()})
	}
	if result.RowsAffected == 0 {
		return c.Status(404).JSON(fiber.Map{"error": "Coach not found"})
	}

	return c.JSON(*body.Locations)
}

// AddLocation appends one lane name, starting from the defaults when the
// coach has nothing saved yet.
func (s *LocationService) AddLocation(c *fiber.Ctx) error {
	var body struct {
		CoachID  string `json:"coachId"`
		Location string `json:"location"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid request body"})
	}
	if body.CoachID == "" || body.Location == "" {
		return c.Status(400).JSON(fiber.Map{"error": "coachId and location are required"})
	}

	var coach models.Coach
	if err := s.DB.Select("id, saved_locations").Where("id = ?", body.CoachID).Take(&coach).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Coach not found"})
	}

	locations := []string(coach.SavedLocations)
	if len(locations) == 0 {
		locations = DefaultLocations()
	}
	locations = appendLocation(locations, body.Location)

	err := s.DB.Model(&models.Coach{}).Where("id = ?", body.CoachID).
		Update("saved_locations", pq.StringArray(locations)).Error
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(locations)
}
