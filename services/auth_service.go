package services

import (
	"crypto/rand"
	"errors"
	"log"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"strike-master-api/models"
	"strike-master-api/utils"
)

type AuthService struct {
	DB *gorm.DB
}

func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{DB: db}
}

const teamCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// randomTeamCode returns a 6-character uppercase alphanumeric code.
// Bytes at or above the largest multiple of the alphabet size are
// rejected so every character is drawn uniformly.
func randomTeamCode() string {
	limit := byte(256 - 256%len(teamCodeAlphabet))
	code := make([]byte, 0, 6)
	buf := make([]byte, 16)
	for len(code) < 6 {
		if _, err := rand.Read(buf); err != nil {
			// crypto/rand never fails on supported platforms; uuid as fallback
			return strings.ToUpper(uuid.NewString()[:6])
		}
		for _, b := range buf {
			if b >= limit || len(code) == 6 {
				continue
			}
			code = append(code, teamCodeAlphabet[int(b)%len(teamCodeAlphabet)])
		}
	}
	return string(code)
}

// uniqueTeamCode generates a code not yet taken by any coach.
func (s *AuthService) uniqueTeamCode() (string, error) {
	for i := 0; i < 10; i++ {
		code := randomTeamCode()
		var count int64
		if err := s.DB.Model(&models.Coach{}).Where("team_code = ?", code).Count(&count).Error; err != nil {
			return "", err
		}
		if count == 0 {
			return code, nil
		}
	}
	return "", errors.New("could not generate a unique team code")
}

func (s *AuthService) issueSession(userID, role string) (string, error) {
	session := &models.Session{
		ID:     uuid.NewString(),
		Token:  uuid.NewString(),
		UserID: userID,
		Role:   role,
	}
	if err := s.DB.Create(session).Error; err != nil {
		return "", err
	}
	return session.Token, nil
}

// Signup registers a coach account and hands back a session token.
func (s *AuthService) Signup(c *fiber.Ctx) error {
	var body struct {
		Email     string `json:"email"`
		Password  string `json:"password"`
		FirstName string `json:"firstName"`
		LastName  string `json:"lastName"`
		TeamName  string `json:"teamName"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid request body"})
	}
	if body.Email == "" || body.Password == "" || body.FirstName == "" || body.LastName == "" || body.TeamName == "" {
		return c.Status(400).JSON(fiber.Map{"error": "All fields required: email, password, firstName, lastName, teamName"})
	}

	email := strings.ToLower(strings.TrimSpace(body.Email))

	var count int64
	if err := s.DB.Model(&models.Coach{}).Where("LOWER(email) = ?", email).Count(&count).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}
	if count > 0 {
		return c.Status(400).JSON(fiber.Map{"error": "Email already registered"})
	}

	hash, err := HashPassword(body.Password)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "failed to hash password"})
	}

	teamCode, err := s.uniqueTeamCode()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}

	coach := &models.Coach{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: hash,
		FirstName:    body.FirstName,
		LastName:     body.LastName,
		TeamName:     body.TeamName,
		TeamCode:     teamCode,
	}
	if err := s.DB.Create(coach).Error; err != nil {
		log.Printf("[AUTH] Signup insert failed for %s: %v", email, err)
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	token, err := s.issueSession(coach.ID, "coach")
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"success": true, "user": coach, "token": token})
}

// Login authenticates a coach by email and password.
func (s *AuthService) Login(c *fiber.Ctx) error {
	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid request body"})
	}
	if body.Email == "" || body.Password == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Email and password required"})
	}

	var coach models.Coach
	err := s.DB.Where("LOWER(email) = ?", strings.ToLower(strings.TrimSpace(body.Email))).Take(&coach).Error
	if err != nil || !VerifyPassword(coach.PasswordHash, body.Password) {
		return c.Status(401).JSON(fiber.Map{"error": "Invalid email or password"})
	}

	token, err := s.issueSession(coach.ID, "coach")
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"success": true, "user": coach, "token": token})
}

// StudentSignup creates a team-scoped student login bound to one coach
// via team code.
func (s *AuthService) StudentSignup(c *fiber.Ctx) error {
	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
		TeamCode string `json:"teamCode"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid request body"})
	}
	if body.Email == "" || body.Password == "" || body.TeamCode == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Email, password, and team code required"})
	}

	teamCode := strings.ToUpper(strings.TrimSpace(body.TeamCode))

	var coach models.Coach
	if err := s.DB.Where("team_code = ?", teamCode).Take(&coach).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Invalid team code"})
	}

	email := strings.ToLower(strings.TrimSpace(body.Email))
	var count int64
	if err := s.DB.Model(&models.Student{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}
	if count > 0 {
		return c.Status(400).JSON(fiber.Map{"error": "Email already registered"})
	}

	hash, err := HashPassword(body.Password)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "failed to hash password"})
	}

	student := &models.Student{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: hash,
		CoachID:      coach.ID,
		TeamCode:     teamCode,
	}
	if err := s.DB.Create(student).Error; err != nil {
		log.Printf("[AUTH] Student signup insert failed for %s: %v", email, err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create account"})
	}

	return c.JSON(fiber.Map{"success": true, "user": studentUser(student, &coach)})
}

// StudentLogin authenticates a student and answers with the coach-scoped
// user shape the clients expect.
func (s *AuthService) StudentLogin(c *fiber.Ctx) error {
	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid request body"})
	}
	if body.Email == "" || body.Password == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Email and password required"})
	}

	var student models.Student
	err := s.DB.Where("email = ?", strings.ToLower(strings.TrimSpace(body.Email))).Take(&student).Error
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Invalid email or password"})
	}
	if !VerifyPassword(student.PasswordHash, body.Password) {
		return c.Status(401).JSON(fiber.Map{"error": "Invalid email or password"})
	}

	var coach models.Coach
	if err := s.DB.Where("id = ?", student.CoachID).Take(&coach).Error; err != nil {
		log.Printf("[AUTH] Student %s has dangling coach %s: %v", student.ID, student.CoachID, err)
	}

	return c.JSON(fiber.Map{"success": true, "user": studentUser(&student, &coach)})
}

// studentUser builds the user payload for student sessions: the id is the
// owning coach's so data routes work unchanged for team members.
func studentUser(student *models.Student, coach *models.Coach) fiber.Map {
	return fiber.Map{
		"id":        coach.ID,
		"email":     student.Email,
		"coach_id":  student.CoachID,
		"team_name": coach.TeamName,
		"team_code": coach.TeamCode,
		"role":      "student",
	}
}

// GetProfile returns a coach profile by id.
func (s *AuthService) GetProfile(c *fiber.Ctx) error {
	var coach models.Coach
	if err := s.DB.Where("id = ?", c.Params("userId")).Take(&coach).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "User not found"})
	}
	return c.JSON(coach)
}

// UploadAvatar stores a profile picture in object storage and records
// its public URL on the coach row.
func (s *AuthService) UploadAvatar(c *fiber.Ctx) error {
	var coach models.Coach
	if err := s.DB.Where("id = ?", c.Params("userId")).Take(&coach).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "User not found"})
	}

	avatar, err := c.FormFile("avatar")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "avatar file is required"})
	}
	if !utils.StorageConfigured() {
		return c.Status(500).JSON(fiber.Map{"error": "Storage not configured"})
	}

	key := utils.AvatarKey(coach.TeamName, filepath.Ext(avatar.Filename))
	url, err := utils.UploadFileToR2(avatar, key)
	if err != nil {
		log.Printf("[AUTH] Avatar upload failed for %s: %v", coach.ID, err)
		return c.Status(500).JSON(fiber.Map{"error": "failed to upload avatar"})
	}

	if err := s.DB.Model(&coach).Update("avatar_url", url).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}
	coach.AvatarURL = url
	return c.JSON(coach)
}
