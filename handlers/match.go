// handlers/match.go
package handlers

import (
	"strike-master-api/services"

	"github.com/gofiber/fiber/v2"
)

func SetupMatchRoutes(api fiber.Router, matchService *services.MatchService) {
	api.Get("/matches", matchService.GetMatches)
	api.Get("/matches/:id", matchService.GetMatch)
	api.Post("/matches", matchService.CreateMatch)
	api.Put("/matches/:id", matchService.UpdateMatch)
	api.Delete("/matches/:id", matchService.DeleteMatch)
}
