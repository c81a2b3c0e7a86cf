package services

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"strike-master-api/models"
)

type StatsService struct {
	DB *gorm.DB
}

func NewStatsService(db *gorm.DB) *StatsService {
	return &StatsService{DB: db}
}

// GetPlayerStats aggregates one player's records into career numbers,
// returning the raw records alongside for drill-down views.
func (s *StatsService) GetPlayerStats(c *fiber.Ctx) error {
	records := []models.Record{}
	err := s.DB.Preload("Match").
		Where("player_id = ?", c.Params("playerId")).
		Find(&records).Error
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}

	stats := AggregateRecords(records)
	return c.JSON(fiber.Map{
		"matches_played": stats.MatchesPlayed,
		"total_pins":     stats.TotalPins,
		"average":        stats.Average,
		"high_game":      stats.HighGame,
		"high_series":    stats.HighSeries,
		"records":        records,
	})
}

// GetTeamStats ranks a coach's active roster by average. Players with no
// games bowled rank last with a zero average; ties keep roster order.
func (s *StatsService) GetTeamStats(c *fiber.Ctx) error {
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
	if len(players) == 0 {
		return c.JSON([]TeamPlayerStats{})
	}

	playerIDs := make([]string, len(players))
	for i, p := range players {
		playerIDs[i] = p.ID
	}

	records := []models.Record{}
	if err := s.DB.Where("player_id IN ?", playerIDs).Find(&records).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}

	byPlayer := make(map[string][]models.Record, len(players))
	for _, r := range records {
		byPlayer[r.PlayerID] = append(byPlayer[r.PlayerID], r)
	}

	rows := make([]TeamPlayerStats, len(players))
	for i, p := range players {
		stats := AggregateRecords(byPlayer[p.ID])
		rows[i] = TeamPlayerStats{
			PlayerID:      p.ID,
			FirstName:     p.FirstName,
			LastName:      p.LastName,
			Gender:        p.Gender,
			MatchesPlayed: stats.MatchesPlayed,
			TotalPins:     stats.TotalPins,
			Average:       stats.Average,
			HighGame:      stats.HighGame,
		}
	}

	RankTeamStats(rows)
	return c.JSON(rows)
}
