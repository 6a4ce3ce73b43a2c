package internal

import (
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

const CRON_SCHEDULE_PRUNE = "30 3 * * *" // Daily, off-peak

// StartCron schedules the nightly search-history prune.
func StartCron(repo SearchHistoryRepository, retention time.Duration) (*cron.Cron, error) {

	c := cron.New()

	log.Print("Starting CRON job to prune old search history")

	if _, err := c.AddFunc(CRON_SCHEDULE_PRUNE, func() {
		cutoff := time.Now().UTC().Add(-retention)
		deleted, err := repo.PruneOlderThan(cutoff)
		if err != nil {
			log.Printf("Error pruning search history: %v\n", err)
			return
		}
		log.Printf("Pruned %d search history records older than %s", deleted, cutoff.Format(time.RFC3339))
	}); err != nil {
		return nil, err
	}

	c.Start()
	return c, nil
}
