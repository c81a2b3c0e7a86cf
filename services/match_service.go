package services

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"strike-master-api/models"
)

type MatchService struct {
	DB        *gorm.DB
	Directory CoachDirectory
}

func NewMatchService(db *gorm.DB) *MatchService {
	return &MatchService{DB: db, Directory: NewCoachDirectory(db)}
}

const matchDateLayout = "2006-01-02"

// GetMatches lists every match visible to the coach: their own plus
// matches shared with them, annotated and sorted per MergeMatchVisibility.
func (s *MatchService) GetMatches(c *fiber.Ctx) error {
	coachID := c.Query("coachId")
	if coachID == "" {
		return c.Status(400).JSON(fiber.Map{"error": "coachId is required"})
	}
	gender := c.Query("gender")

	owned := []models.Match{}
	query := s.DB.Where("coach_id = ?", coachID)
	if gender != "" {
		query = query.Where("gender = ?", gender)
	}
	if err := query.Find(&owned).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}

	perms := []models.MatchPermission{}
	if err := s.DB.Where("coach_id = ?", coachID).Find(&perms).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}

	shared := []models.Match{}
	sharedEdit := make(map[string]bool, len(perms))
	if len(perms) > 0 {
		sharedIDs := make([]string, len(perms))
		for i, p := range perms {
			sharedIDs[i] = p.MatchID
			sharedEdit[p.MatchID] = p.CanEdit
		}
		query := s.DB.Where("id IN ?", sharedIDs)
		if gender != "" {
			query = query.Where("gender = ?", gender)
		}
		if err := query.Find(&shared).Error; err != nil {
			return c.Status(500).JSON(fiber.Map{"error": err.Error()})
		}
	}

	return c.JSON(MergeMatchVisibility(owned, shared, sharedEdit))
}

// GetMatch fetches one match. Non-owners need a permission row or the
// request is denied. The response carries the requester's rights plus the
// full share list for the owner's management view.
func (s *MatchService) GetMatch(c *fiber.Ctx) error {
	coachID := c.Query("coachId")
	if coachID == "" {
		return c.Status(400).JSON(fiber.Map{"error": "coachId is required"})
	}

	var match models.Match
	if err := s.DB.Where("id = ?", c.Params("id")).Take(&match).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Match not found"})
	}

	view := MatchView{Match: match, CanEdit: true, IsOwner: true}
	if match.CoachID != coachID {
		var perm models.MatchPermission
		err := s.DB.Where("match_id = ? AND coach_id = ?", match.ID, coachID).Take(&perm).Error
		if err != nil {
			return c.Status(403).JSON(fiber.Map{"error": "You do not have access to this match"})
		}
		view.CanEdit = perm.CanEdit
		view.IsOwner = false
	}

	sharedCoaches, err := s.listSharedCoaches(match.ID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(struct {
		MatchView
		SharedCoaches []SharedCoachInfo `json:"shared_coaches"`
	}{view, sharedCoaches})
}

func (s *MatchService) listSharedCoaches(matchID string) ([]SharedCoachInfo, error) {
	shared := []SharedCoachInfo{}
	err := s.DB.Model(&models.MatchPermission{}).
		Select("match_permissions.coach_id, match_permissions.can_edit, users.email, users.team_code").
		Joins("JOIN users ON users.id = match_permissions.coach_id").
		Where("match_permissions.match_id = ?", matchID).
		Scan(&shared).Error
	if err != nil {
		return nil, err
	}
	return shared, nil
}

type matchPayload struct {
	CoachID       string  `json:"coachId"`
	Gender        *string `json:"gender"`
	Opponent      *string `json:"opponent"`
	MatchDate     *string `json:"matchDate"`
	Location      *string `json:"location"`
	OurScore      *int    `json:"ourScore"`
	OpponentScore *int    `json:"opponentScore"`
	Result        *string `json:"result"`
	IsComplete    *bool   `json:"isComplete"`
	Comments      *string `json:"comments"`

	// nil = leave existing shares untouched; empty list = clear them all.
	SharedCoaches *[]ShareRequest `json:"sharedCoaches"`
}

// CreateMatch creates a match owned by the coach and, when a share list
// is supplied, its permission rows, in one transaction so a failed
// share never leaves a half-created match.
func (s *MatchService) CreateMatch(c *fiber.Ctx) error {
	var body matchPayload
	if err := c.BodyParser(&body); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid request body"})
	}
	if body.CoachID == "" || body.Gender == nil || body.Opponent == nil || body.MatchDate == nil {
		return c.Status(400).JSON(fiber.Map{"error": "Required: coachId, gender, opponent, matchDate"})
	}

	matchDate, err := time.Parse(matchDateLayout, *body.MatchDate)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid matchDate (use YYYY-MM-DD)"})
	}

	match := &models.Match{
		ID:        uuid.NewString(),
		CoachID:   body.CoachID,
		Gender:    *body.Gender,
		Opponent:  *body.Opponent,
		MatchDate: &matchDate,
	}
	if body.Location != nil {
		match.Location = *body.Location
	}
	if body.OurScore != nil {
		match.OurScore = *body.OurScore
	}
	if body.OpponentScore != nil {
		match.OpponentScore = *body.OpponentScore
	}
	if body.Result != nil {
		match.Result = *body.Result
	}
	if body.Comments != nil {
		match.Comments = *body.Comments
	}

	var shares []ResolvedShare
	if body.SharedCoaches != nil {
		shares, err = ResolveShareList(s.Directory, match.CoachID, *body.SharedCoaches)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": err.Error()})
		}
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(match).Error; err != nil {
			return err
		}
		return insertShares(tx, match.ID, shares)
	})
	if err != nil {
		log.Printf("[MATCH] Create failed for coach %s: %v", body.CoachID, err)
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(201).JSON(MatchView{Match: *match, CanEdit: true, IsOwner: true})
}

// UpdateMatch applies partial field updates. Non-owners must hold a
// can_edit permission. A supplied share list replaces the previous share
// rows atomically; owner exclusion is always computed against the match's
// owner, not the requester.
func (s *MatchService) UpdateMatch(c *fiber.Ctx) error {
	var body matchPayload
	if err := c.BodyParser(&body); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid request body"})
	}
	if body.CoachID == "" {
		return c.Status(400).JSON(fiber.Map{"error": "coachId is required"})
	}

	var match models.Match
	if err := s.DB.Where("id = ?", c.Params("id")).Take(&match).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Match not found"})
	}

	isOwner := match.CoachID == body.CoachID
	var perm *models.MatchPermission
	if !isOwner {
		var p models.MatchPermission
		if err := s.DB.Where("match_id = ? AND coach_id = ?", match.ID, body.CoachID).Take(&p).Error; err == nil {
			perm = &p
		}
	}
	if !editAuthorized(match, body.CoachID, perm) {
		return c.Status(403).JSON(fiber.Map{"error": "You do not have permission to edit this match"})
	}

	updates := map[string]interface{}{}
	if body.Opponent != nil {
		updates["opponent"] = *body.Opponent
	}
	if body.Gender != nil {
		updates["gender"] = *body.Gender
	}
	if body.MatchDate != nil {
		matchDate, err := time.Parse(matchDateLayout, *body.MatchDate)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "invalid matchDate (use YYYY-MM-DD)"})
		}
		updates["match_date"] = matchDate
	}
	if body.Location != nil {
		updates["location"] = *body.Location
	}
	if body.OurScore != nil {
		updates["our_score"] = *body.OurScore
	}
	if body.OpponentScore != nil {
		updates["opponent_score"] = *body.OpponentScore
	}
	if body.Result != nil {
		updates["result"] = *body.Result
	}
	if body.IsComplete != nil {
		updates["is_complete"] = *body.IsComplete
	}
	if body.Comments != nil {
		updates["comments"] = *body.Comments
	}

	var shares []ResolvedShare
	replaceShares := body.SharedCoaches != nil
	if replaceShares {
		var err error
		shares, err = ResolveShareList(s.Directory, match.CoachID, *body.SharedCoaches)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": err.Error()})
		}
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if len(updates) > 0 {
			if err := tx.Model(&match).Updates(updates).Error; err != nil {
				return err
			}
		}
		if replaceShares {
			if err := tx.Where("match_id = ?", match.ID).Delete(&models.MatchPermission{}).Error; err != nil {
				return err
			}
			return insertShares(tx, match.ID, shares)
		}
		return nil
	})
	if err != nil {
		log.Printf("[MATCH] Update failed for match %s: %v", match.ID, err)
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	// Re-read so the response reflects what was stored.
	if err := s.DB.Where("id = ?", match.ID).Take(&match).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(MatchView{Match: match, CanEdit: true, IsOwner: isOwner})
}

// DeleteMatch removes a match and its permission rows. Owner only.
func (s *MatchService) DeleteMatch(c *fiber.Ctx) error {
	coachID := c.Query("coachId")
	if coachID == "" {
		return c.Status(400).JSON(fiber.Map{"error": "coachId is required"})
	}

	var match models.Match
	if err := s.DB.Where("id = ?", c.Params("id")).Take(&match).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Match not found"})
	}
	if match.CoachID != coachID {
		return c.Status(403).JSON(fiber.Map{"error": "Only the match owner can delete it"})
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("match_id = ?", match.ID).Delete(&models.MatchPermission{}).Error; err != nil {
			return err
		}
		return tx.Delete(&match).Error
	})
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"success": true, "message": "Match deleted"})
}

func insertShares(tx *gorm.DB, matchID string, shares []ResolvedShare) error {
	for _, share := range shares {
		perm := models.MatchPermission{
			ID:      uuid.NewString(),
			MatchID: matchID,
			CoachID: share.CoachID,
			CanEdit: share.CanEdit,
		}
		if err := tx.Create(&perm).Error; err != nil {
			return err
		}
	}
	return nil
}
