package services

import (
	"errors"
	"log"
	"strings"

	"house-competition-system/models"
	"house-competition-system/utils"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService struct {
	DB       *gorm.DB
	validate *validator.Validate
}

func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{
		DB:       db,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

type signupRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

type signinRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (s *AuthService) Signup(c *fiber.Ctx) error {
	var req signupRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid request body"})
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	if err := s.validate.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "email must be valid and password at least 8 characters"})
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "failed to hash password"})
	}

	user := &models.User{
		ID:       uuid.NewString(),
		Email:    req.Email,
		Password: string(hashed),
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		return tx.Create(&models.UserRole{
			ID:     uuid.NewString(),
			UserID: user.ID,
			Role:   "user",
		}).Error
	})
	if err != nil {
		// unique index on email makes duplicates surface here
		return c.Status(400).JSON(fiber.Map{"error": "user already exists or invalid data"})
	}

	log.Printf("✅ [AUTH] New user signed up: %s", user.Email)
	return c.Status(201).JSON(fiber.Map{"message": "user created"})
}

func (s *AuthService) Signin(c *fiber.Ctx) error {
	var req signinRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid request body"})
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	var user models.User
	err := s.DB.Preload("Roles").Where("email = ?", req.Email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return c.Status(401).JSON(fiber.Map{"error": "invalid credentials"})
	}
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "internal server error"})
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)) != nil {
		return c.Status(401).JSON(fiber.Map{"error": "invalid credentials"})
	}

	token, err := utils.GenerateToken(user.ID, user.Email)
	if err != nil {
		log.Printf("❌ [AUTH] Token generation failed for %s: %v", user.Email, err)
		return c.Status(500).JSON(fiber.Map{"error": "failed to issue token"})
	}

	return c.JSON(fiber.Map{
		"token":   token,
		"user":    fiber.Map{"id": user.ID, "email": user.Email},
		"isAdmin": user.HasRole("admin"),
	})
}

func (s *AuthService) Me(c *fiber.Ctx) error {
	userID, _ := c.Locals("user_id").(string)

	var user models.User
	err := s.DB.Preload("Roles").First(&user, "id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return c.Status(404).JSON(fiber.Map{"error": "user not found"})
	}
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "internal server error"})
	}

	return c.JSON(fiber.Map{
		"user":    fiber.Map{"id": user.ID, "email": user.Email},
		"isAdmin": user.HasRole("admin"),
	})
}
