package middleware

import (
	"io"
	"net/http/httptest"
	"testing"

	"house-competition-system/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthTestApp(t *testing.T) *fiber.App {
	t.Setenv("JWT_SECRET", "middleware-test-secret")
	require.NoError(t, utils.InitJWT())

	app := fiber.New()
	app.Get("/protected", AuthRequired(), func(c *fiber.Ctx) error {
		userID, _ := c.Locals("user_id").(string)
		return c.SendString(userID)
	})
	return app
}

func TestAuthRequiredMissingHeader(t *testing.T) {
	app := newAuthTestApp(t)

	req := httptest.NewRequest("GET", "/protected", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthRequiredBadToken(t *testing.T) {
	app := newAuthTestApp(t)

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer not-a-real-token")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestAuthRequiredValidToken(t *testing.T) {
	app := newAuthTestApp(t)

	token, err := utils.GenerateToken("user-42", "head@girton.example")
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "user-42", string(body), "user_id must land in locals")
}

func TestAuthRequiredRawTokenWithoutBearerPrefix(t *testing.T) {
	app := newAuthTestApp(t)

	token, err := utils.GenerateToken("user-42", "head@girton.example")
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
