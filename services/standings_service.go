package services

import (
	"log"

	"house-competition-system/middleware"
	"house-competition-system/models"
	"house-competition-system/scoring"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type StandingsService struct {
	DB *gorm.DB
}

func NewStandingsService(db *gorm.DB) *StandingsService {
	return &StandingsService{DB: db}
}

// GetStandings returns the ranked medal table. Houses and the full
// event history are read in one consistent snapshot and folded by the
// scoring aggregator; rank is the position in the returned array.
// Recomputed on every call — see scoring.ComputeStandings.
func (s *StandingsService) GetStandings(c *fiber.Ctx) error {
	var standings []models.HouseStanding

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var houses []models.House
		if err := tx.Order("name ASC").Find(&houses).Error; err != nil {
			return err
		}
		var events []models.Event
		if err := tx.Preload("Results").Find(&events).Error; err != nil {
			return err
		}
		standings = scoring.ComputeStandings(houses, events)
		return nil
	})
	if err != nil {
		log.Printf("ERROR computing standings: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "failed to compute standings"})
	}

	middleware.StandingsServed.Inc()
	return c.JSON(standings)
}
