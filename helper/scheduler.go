package helper

import (
	"context"
	"log"
	"time"

	"github.com/go-co-op/gocron/v2"
)

var engineScheduler gocron.Scheduler

// StartEngineRefreshScheduler reconciles the engine generations every few
// minutes. Writes through the API already rebuild synchronously; this job
// only covers out-of-band database edits.
func StartEngineRefreshScheduler() {
	s, err := gocron.NewScheduler()
	if err != nil {
		log.Fatal(err)
	}

	engineScheduler = s

	_, err = s.NewJob(
		gocron.DurationJob(5*time.Minute),
		gocron.NewTask(func() {
			RebuildEngine(context.Background())
		}),
	)
	if err != nil {
		log.Fatal(err)
	}

	s.Start()
	log.Println("engine refresh scheduler started (every 5m)")
}

func StopEngineRefreshScheduler() {
	if engineScheduler != nil {
		if err := engineScheduler.Shutdown(); err != nil {
			log.Printf("engine scheduler shutdown: %v", err)
		}
	}
}
