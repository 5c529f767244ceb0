package services

import (
	"errors"
	"log"
	"path/filepath"
	"strings"

	"house-competition-system/models"
	"house-competition-system/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gorm.io/gorm"
)

type HouseService struct {
	DB *gorm.DB
}

func NewHouseService(db *gorm.DB) *HouseService {
	return &HouseService{DB: db}
}

var houseTitleCaser = cases.Title(language.English)

// GetAllHouses returns every house, name ascending. Public — the
// standings page and the admin form both feed from it.
func (s *HouseService) GetAllHouses(c *fiber.Ctx) error {
	var houses []models.House
	if err := s.DB.Order("name ASC").Find(&houses).Error; err != nil {
		log.Printf("ERROR fetching houses: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "failed to fetch houses"})
	}
	return c.JSON(houses)
}

// CreateHouse seeds a new house (admin only). Multipart form: name,
// color, optional crest image which goes to R2.
func (s *HouseService) CreateHouse(c *fiber.Ctx) error {
	name := strings.TrimSpace(c.FormValue("name"))
	color := strings.TrimSpace(c.FormValue("color"))

	if name == "" {
		return c.Status(400).JSON(fiber.Map{"error": "name is required"})
	}
	name = houseTitleCaser.String(name)

	var crestURL string
	if crest, err := c.FormFile("crest"); err == nil && crest.Size > 0 {
		if !utils.CrestStorageEnabled() {
			return c.Status(400).JSON(fiber.Map{"error": "crest storage is not configured"})
		}
		ext := filepath.Ext(crest.Filename)
		key := "crests/" + slug.Make(name) + "-" + uuid.NewString() + ext
		url, err := utils.UploadCrestToR2(crest, key)
		if err != nil {
			log.Printf("❌ Crest upload failed for house %s: %v", name, err)
			return c.Status(500).JSON(fiber.Map{"error": "failed to upload crest"})
		}
		crestURL = url
	}

	house := &models.House{
		ID:       uuid.NewString(),
		Name:     name,
		Slug:     slug.Make(name),
		Color:    color,
		CrestURL: crestURL,
	}
	if err := s.DB.Create(house).Error; err != nil {
		// unique index on name
		return c.Status(400).JSON(fiber.Map{"error": "house already exists or invalid data"})
	}

	log.Printf("✅ House created: %s (%s)", house.Name, house.ID)
	return c.Status(201).JSON(house)
}

// UpdateHouse changes a house's color and/or crest. Name is immutable
// for the lifetime of the competition — results reference it on every
// public page and renames mid-season would confuse the table.
func (s *HouseService) UpdateHouse(c *fiber.Ctx) error {
	id := c.Params("id")

	var house models.House
	err := s.DB.First(&house, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return c.Status(404).JSON(fiber.Map{"error": "house not found"})
	}
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "failed to fetch house"})
	}

	if color := strings.TrimSpace(c.FormValue("color")); color != "" {
		house.Color = color
	}
	if crest, err := c.FormFile("crest"); err == nil && crest.Size > 0 {
		if !utils.CrestStorageEnabled() {
			return c.Status(400).JSON(fiber.Map{"error": "crest storage is not configured"})
		}
		ext := filepath.Ext(crest.Filename)
		key := "crests/" + house.Slug + "-" + uuid.NewString() + ext
		url, err := utils.UploadCrestToR2(crest, key)
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "failed to upload crest"})
		}
		house.CrestURL = url
	}

	if err := s.DB.Save(&house).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "failed to update house"})
	}
	return c.JSON(house)
}
