// handlers/roster.go: players and saved locations
package handlers

import (
	"strike-master-api/services"

	"github.com/gofiber/fiber/v2"
)

func SetupPlayerRoutes(api fiber.Router, playerService *services.PlayerService) {
	api.Get("/players", playerService.GetPlayers)
	api.Get("/players/:id", playerService.GetPlayer)
	api.Post("/players", playerService.CreatePlayer)
	api.Put("/players/:id", playerService.UpdatePlayer)
	api.Delete("/players/:id", playerService.DeletePlayer)
}

func SetupLocationRoutes(api fiber.Router, locationService *services.LocationService) {
	api.Get("/locations", locationService.GetLocations)
	api.Put("/locations", locationService.SaveLocations)
	api.Post("/locations", locationService.AddLocation)
}
