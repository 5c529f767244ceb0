package services

import (
	"errors"
	"log"

	"house-competition-system/middleware"
	"house-competition-system/models"
	"house-competition-system/scoring"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

type EventService struct {
	DB *gorm.DB
}

func NewEventService(db *gorm.DB) *EventService {
	return &EventService{DB: db}
}

// User-facing messages per validation failure. The scoring package
// reports which check failed; the wording lives at the API edge.
var validationMessages = map[scoring.ErrorKind]string{
	scoring.ErrEmptyName:        "Please enter an event name.",
	scoring.ErrMissingPlacement: "Please select houses for all three positions.",
	scoring.ErrDuplicateHouse:   "Each position must have a different house.",
	scoring.ErrUnknownHouse:     "One of the selected houses does not exist.",
	scoring.ErrInvalidDate:      "Please enter a valid event date (YYYY-MM-DD).",
}

// GetAllEvents returns the full event history with results and their
// houses, newest first. Public.
func (s *EventService) GetAllEvents(c *fiber.Ctx) error {
	var events []models.Event
	err := s.DB.
		Preload("Results", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Preload("Results.House").
		Order("date DESC").
		Find(&events).Error
	if err != nil {
		log.Printf("ERROR fetching events with results: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "failed to fetch events"})
	}
	return c.JSON(events)
}

// CreateEvent records a new event (admin only). The submission is
// checked by the scoring validator against the current house set; on
// success the event and its three results are written in one
// transaction so nobody can observe a partial event. Points come from
// the validator, never from the request body. Headlines are filled in
// later by the worker — their absence never blocks this write.
func (s *EventService) CreateEvent(c *fiber.Ctx) error {
	var sub scoring.EventSubmission
	if err := c.BodyParser(&sub); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid request body"})
	}

	var houses []models.House
	if err := s.DB.Find(&houses).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "failed to fetch houses"})
	}

	validated, err := scoring.ValidateSubmission(sub, houses)
	if err != nil {
		var verr *scoring.ValidationError
		if errors.As(err, &verr) {
			msg, ok := validationMessages[verr.Kind]
			if !ok {
				msg = verr.Message
			}
			return c.Status(400).JSON(fiber.Map{"error": msg, "code": string(verr.Kind)})
		}
		log.Printf("ERROR validating event submission: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "failed to validate event"})
	}

	event := &models.Event{
		ID:   uuid.NewString(),
		Name: validated.Name,
		Slug: slug.Make(validated.Name),
		Date: validated.Date,
	}
	for _, r := range validated.Results {
		event.Results = append(event.Results, models.EventResult{
			ID:       uuid.NewString(),
			EventID:  event.ID,
			HouseID:  r.HouseID,
			Position: r.Position,
			Points:   r.Points,
		})
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Results").Create(event).Error; err != nil {
			return err
		}
		for i := range event.Results {
			if err := tx.Create(&event.Results[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		log.Printf("ERROR inserting event %q: %v", event.Name, err)
		return c.Status(500).JSON(fiber.Map{"error": "failed to create event"})
	}

	middleware.EventsCreated.Inc()
	log.Printf("✅ Event recorded: %s (%s)", event.Name, event.Date.Format("2006-01-02"))

	s.DB.Preload("Results", func(db *gorm.DB) *gorm.DB {
		return db.Order("position ASC")
	}).Preload("Results.House").First(event, "id = ?", event.ID)
	return c.Status(201).JSON(event)
}

// DeleteEvent removes an event and its results (admin only).
func (s *EventService) DeleteEvent(c *fiber.Ctx) error {
	id := c.Params("id")

	var event models.Event
	err := s.DB.First(&event, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return c.Status(404).JSON(fiber.Map{"error": "event not found"})
	}
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "failed to fetch event"})
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("event_id = ?", id).Delete(&models.EventResult{}).Error; err != nil {
			return err
		}
		return tx.Delete(&event).Error
	})
	if err != nil {
		log.Printf("ERROR deleting event %s: %v", id, err)
		return c.Status(500).JSON(fiber.Map{"error": "failed to delete event"})
	}

	log.Printf("🗑️  Event deleted: %s (%s)", event.Name, id)
	return c.JSON(fiber.Map{"message": "event deleted"})
}
