package services

import (
	"log"
	"time"

	"github.com/go-co-op/gocron/v2"

	"strike-master-api/models"
)

// startOfDayUTC returns midnight of now's UTC calendar day. Match dates
// are stored as plain dates, so the cutoff must not depend on the
// server's timezone.
func startOfDayUTC(now time.Time) time.Time {
	y, m, d := now.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// StartCompletionScheduler marks matches whose date has passed as
// complete, so coaches don't have to close them out by hand.
func (s *MatchService) StartCompletionScheduler() {
	sched, _ := gocron.NewScheduler()
	sched.Start()

	_, _ = sched.NewJob(
		gocron.DurationJob(1*time.Hour),
		gocron.NewTask(func() {
			today := startOfDayUTC(time.Now())
			result := s.DB.Model(&models.Match{}).
				Where("is_complete = ? AND match_date IS NOT NULL AND match_date < ?", false, today).
				Update("is_complete", true)
			if result.Error != nil {
				log.Printf("[Scheduler] DB error: %v", result.Error)
				return
			}
			if result.RowsAffected > 0 {
				log.Printf("[Scheduler] Marked %d past matches complete", result.RowsAffected)
			}
		}),
	)
}
