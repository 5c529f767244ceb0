package workers

import (
	"context"
	"log"
	"time"

	"house-competition-system/headlines"
	"house-competition-system/middleware"
	"house-competition-system/models"

	"github.com/go-co-op/gocron/v2"
	"gorm.io/gorm"
)

const (
	headlineInterval    = 30 * time.Second
	headlineBatchSize   = 10
	headlineMaxAttempts = 3
	headlineTimeout     = 20 * time.Second
)

// HeadlineWorker backfills AI headlines onto event results. Event
// creation never waits for a headline: results are written with a NULL
// headline and this worker fills them in, retrying each result up to
// headlineMaxAttempts before giving up on it.
type HeadlineWorker struct {
	DB        *gorm.DB
	Generator *headlines.Generator
	scheduler gocron.Scheduler
}

func NewHeadlineWorker(db *gorm.DB, generator *headlines.Generator) *HeadlineWorker {
	return &HeadlineWorker{DB: db, Generator: generator}
}

// Start schedules the backfill job. Stop with Shutdown.
func (w *HeadlineWorker) Start() {
	sched, _ := gocron.NewScheduler()
	w.scheduler = sched
	sched.Start()

	_, _ = sched.NewJob(
		gocron.DurationJob(headlineInterval),
		gocron.NewTask(w.runOnce),
	)
	log.Println("Headline worker started (every 30s)")
}

func (w *HeadlineWorker) Shutdown() {
	if w.scheduler != nil {
		_ = w.scheduler.Shutdown()
	}
}

func (w *HeadlineWorker) runOnce() {
	var results []models.EventResult
	err := w.DB.
		Preload("House").
		Where("headline IS NULL AND headline_attempts < ?", headlineMaxAttempts).
		Order("created_at ASC").
		Limit(headlineBatchSize).
		Find(&results).Error
	if err != nil {
		log.Printf("[Headlines] DB error: %v", err)
		return
	}
	if len(results) == 0 {
		return
	}

	for _, result := range results {
		w.fillHeadline(result)
	}
}

func (w *HeadlineWorker) fillHeadline(result models.EventResult) {
	var event models.Event
	if err := w.DB.First(&event, "id = ?", result.EventID).Error; err != nil {
		log.Printf("[Headlines] Missing parent event %s for result %s: %v", result.EventID, result.ID, err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), headlineTimeout)
	defer cancel()

	headline, err := w.Generator.ForResult(ctx, event.Name, result.House.Name, result.Position)
	if err != nil {
		log.Printf("❌ [Headlines] Generation failed for result %s (attempt %d): %v",
			result.ID, result.HeadlineAttempts+1, err)
		w.DB.Model(&models.EventResult{}).
			Where("id = ?", result.ID).
			Update("headline_attempts", gorm.Expr("headline_attempts + 1"))
		return
	}

	err = w.DB.Model(&models.EventResult{}).
		Where("id = ?", result.ID).
		Updates(map[string]any{
			"headline":          headline,
			"headline_attempts": gorm.Expr("headline_attempts + 1"),
		}).Error
	if err != nil {
		log.Printf("❌ [Headlines] Failed to save headline for result %s: %v", result.ID, err)
		return
	}

	middleware.HeadlinesGenerated.Inc()
	log.Printf("📰 Headline generated for %s / %s: %s", event.Name, result.House.Name, headline)
}
