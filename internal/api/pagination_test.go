package api

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

func newPaginationApp() *fiber.App {
	app := fiber.New()
	app.Get("/items", func(c *fiber.Ctx) error {
		skip, limit := parsePagination(c, 20)
		return c.JSON(fiber.Map{"skip": skip, "limit": limit})
	})
	return app
}

func requestPagination(t *testing.T, app *fiber.App, query string) (skip, limit int) {
	t.Helper()

	resp, err := app.Test(httptest.NewRequest("GET", "/items"+query, nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	var body struct {
		Skip  int `json:"skip"`
		Limit int `json:"limit"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body.Skip, body.Limit
}

func TestParsePagination(t *testing.T) {
	app := newPaginationApp()

	skip, limit := requestPagination(t, app, "")
	require.Equal(t, 0, skip)
	require.Equal(t, 20, limit)

	skip, limit = requestPagination(t, app, "?skip=40&limit=10")
	require.Equal(t, 40, skip)
	require.Equal(t, 10, limit)

	_, limit = requestPagination(t, app, "?limit=101")
	require.Equal(t, maxPageSize, limit)

	skip, limit = requestPagination(t, app, "?skip=-5&limit=0")
	require.Equal(t, 0, skip)
	require.Equal(t, 20, limit)
}
