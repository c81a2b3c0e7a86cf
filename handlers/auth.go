// handlers/auth.go
package handlers

import (
	"strike-master-api/services"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(api fiber.Router, authService *services.AuthService) {
	auth := api.Group("/auth")

	auth.Post("/signup", authService.Signup)
	auth.Post("/login", authService.Login)
	auth.Post("/student-signup", authService.StudentSignup)
	auth.Post("/student-login", authService.StudentLogin)

	auth.Get("/profile/:userId", authService.GetProfile)
	auth.Post("/profile/:userId/avatar", authService.UploadAvatar)
}
