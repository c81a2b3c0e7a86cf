package services

import (
	"math"
	"sort"

	"strike-master-api/models"
)

// PlayerStats is the aggregate of one player's records. TotalGames counts
// games actually bowled (non-nil entries); the series total treats a
// missing game as zero, so a partial record still contributes its pins.
type PlayerStats struct {
	MatchesPlayed int     `json:"matches_played"`
	TotalPins     int     `json:"total_pins"`
	TotalGames    int     `json:"-"`
	Average       float64 `json:"average"`
	HighGame      int     `json:"high_game"`
	HighSeries    int     `json:"high_series"`
}

// TeamPlayerStats is one row of the team ranking.
type TeamPlayerStats struct {
	PlayerID      string  `json:"player_id"`
	FirstName     string  `json:"first_name"`
	LastName      string  `json:"last_name"`
	Gender        string  `json:"gender"`
	MatchesPlayed int     `json:"matches_played"`
	TotalPins     int     `json:"total_pins"`
	Average       float64 `json:"average"`
	HighGame      int     `json:"high_game"`
}

// AggregateRecords folds a player's records into summary stats.
// Average = total pins / games bowled, rounded to one decimal; zero
// when no games were bowled.
func AggregateRecords(records []models.Record) PlayerStats {
	var stats PlayerStats
	stats.MatchesPlayed = len(records)

	for _, r := range records {
		series := 0
		for _, game := range []*int{r.Game1, r.Game2, r.Game3} {
			if game == nil {
				continue
			}
			series += *game
			stats.TotalGames++
			if *game > stats.HighGame {
				stats.HighGame = *game
			}
		}
		stats.TotalPins += series
		if series > stats.HighSeries {
			stats.HighSeries = series
		}
	}

	if stats.TotalGames > 0 {
		stats.Average = roundAverage(float64(stats.TotalPins) / float64(stats.TotalGames))
	}
	return stats
}

// RankTeamStats sorts the ranking by average descending. The sort is
// stable so players with equal averages keep their roster order.
func RankTeamStats(rows []TeamPlayerStats) {
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Average > rows[j].Average
	})
}

func roundAverage(avg float64) float64 {
	return math.Round(avg*10) / 10
}
