package services

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"strike-master-api/models"
)

type RecordService struct {
	DB *gorm.DB
}

func NewRecordService(db *gorm.DB) *RecordService {
	return &RecordService{DB: db}
}

// UpsertRecord creates or updates the score row for (matchId, playerId).
// The composite unique index gives last-writer-wins under concurrent
// submissions for the same pair.
func (s *RecordService) UpsertRecord(c *fiber.Ctx) error {
	var body struct {
		MatchID   string `json:"matchId"`
		PlayerID  string `json:"playerId"`
		Game1     *int   `json:"game1"`
		Game2     *int   `json:"game2"`
		Game3     *int   `json:"game3"`
		IsVarsity *bool  `json:"isVarsity"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid request body"})
	}
	if body.MatchID == "" || body.PlayerID == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Required: matchId, playerId"})
	}

	isVarsity := true
	if body.IsVarsity != nil {
		isVarsity = *body.IsVarsity
	}

	record := models.Record{
		ID:        uuid.NewString(),
		MatchID:   body.MatchID,
		PlayerID:  body.PlayerID,
		Game1:     body.Game1,
		Game2:     body.Game2,
		Game3:     body.Game3,
		IsVarsity: isVarsity,
	}

	err := s.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "match_id"}, {Name: "player_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"game1", "game2", "game3", "is_varsity", "updated_at"}),
	}).Create(&record).Error
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	// Fetch by key: on conflict the existing row keeps its original id.
	var stored models.Record
	if err := s.DB.Where("match_id = ? AND player_id = ?", body.MatchID, body.PlayerID).Take(&stored).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(stored)
}

// UpdateRecord applies partial game-score updates to one record.
func (s *RecordService) UpdateRecord(c *fiber.Ctx) error {
	var body struct {
		Game1 *int `json:"game1"`
		Game2 *int `json:"game2"`
		Game3 *int `json:"game3"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid request body"})
	}

	updates := map[string]interface{}{}
	if body.Game1 != nil {
		updates["game1"] = *body.Game1
	}
	if body.Game2 != nil {
		updates["game2"] = *body.Game2
	}
	if body.Game3 != nil {
		updates["game3"] = *body.Game3
	}

	var record models.Record
	if err := s.DB.Where("id = ?", c.Params("id")).Take(&record).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Record not found"})
	}
	if len(updates) > 0 {
		if err := s.DB.Model(&record).Updates(updates).Error; err != nil {
			return c.Status(400).JSON(fiber.Map{"error": err.Error()})
		}
		if err := s.DB.Where("id = ?", record.ID).Take(&record).Error; err != nil {
			return c.Status(500).JSON(fiber.Map{"error": err.Error()})
		}
	}
	return c.JSON(record)
}

func (s *RecordService) DeleteRecord(c *fiber.Ctx) error {
	result := s.DB.Where("id = ?", c.Params("id")).Delete(&models.Record{})
	if result.Error != nil {
		return c.Status(400).JSON(fiber.Map{"error": result.Error.Error()})
	}
	if result.RowsAffected == 0 {
		return c.Status(404).JSON(fiber.Map{"error": "Record not found"})
	}
	return c.JSON(fiber.Map{"success": true, "message": "Record deleted"})
}

// DeleteMatchRecords clears every score row for one match.
func (s *RecordService) DeleteMatchRecords(c *fiber.Ctx) error {
	err := s.DB.Where("match_id = ?", c.Params("matchId")).Delete(&models.Record{}).Error
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"success": true, "message": "All records for match deleted"})
}

// GetMatchRecords lists a match's score rows with player details.
func (s *RecordService) GetMatchRecords(c *fiber.Ctx) error {
	return s.matchRecords(c, c.Params("matchId"), false)
}

// GetRecords is the query-parameter variant; it additionally flattens a
// player_name field into each row.
func (s *RecordService) GetRecords(c *fiber.Ctx) error {
	matchID := c.Query("matchId")
	if matchID == "" {
		return c.Status(400).JSON(fiber.Map{"error": "matchId is required"})
	}
	return s.matchRecords(c, matchID, true)
}

func (s *RecordService) matchRecords(c *fiber.Ctx, matchID string, withName bool) error {
	records := []models.Record{}
	err := s.DB.Preload("Player").
		Where("match_id = ?", matchID).
		Order("created_at").
		Find(&records).Error
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}

	if !withName {
		return c.JSON(records)
	}

	type namedRecord struct {
		models.Record
		PlayerName string `json:"player_name"`
	}
	named := make([]namedRecord, len(records))
	for i, r := range records {
		name := "Unknown Player"
		if r.Player != nil {
			name = r.Player.FirstName + " " + r.Player.LastName
		}
		named[i] = namedRecord{Record: r, PlayerName: name}
	}
	return c.JSON(named)
}

// GetPlayerRecords lists a player's score history, newest first.
func (s *RecordService) GetPlayerRecords(c *fiber.Ctx) error {
	records := []models.Record{}
	err := s.DB.Preload("Match").
		Where("player_id = ?", c.Params("playerId")).
		Order("created_at DESC").
		Find(&records).Error
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(records)
}
