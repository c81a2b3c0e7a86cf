// handlers/record.go: score records and aggregate stats
package handlers

import (
	"strike-master-api/services"

	"github.com/gofiber/fiber/v2"
)

func SetupRecordRoutes(api fiber.Router, recordService *services.RecordService) {
	api.Get("/records", recordService.GetRecords)
	api.Post("/records", recordService.UpsertRecord)
	api.Put("/records/:id", recordService.UpdateRecord)
	api.Delete("/records/match/:matchId", recordService.DeleteMatchRecords)
	api.Delete("/records/:id", recordService.DeleteRecord)

	api.Get("/matches/:matchId/records", recordService.GetMatchRecords)
	api.Get("/players/:playerId/records", recordService.GetPlayerRecords)
}

func SetupStatsRoutes(api fiber.Router, statsService *services.StatsService) {
	api.Get("/players/:playerId/stats", statsService.GetPlayerStats)
	api.Get("/stats/team", statsService.GetTeamStats)
}
