package requestlogger

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevelOf(t *testing.T) {
	testCases := []struct {
		status   int
		err      error
		expected slog.Level
	}{
		{http.StatusOK, nil, slog.LevelInfo},
		{http.StatusCreated, nil, slog.LevelInfo},
		{http.StatusNotFound, nil, slog.LevelWarn},
		{http.StatusUnprocessableEntity, errors.New("insufficient funds"), slog.LevelWarn},
		{http.StatusOK, errors.New("handled later"), slog.LevelWarn},
		{http.StatusInternalServerError, nil, slog.LevelError},
		{http.StatusServiceUnavailable, errors.New("down"), slog.LevelError},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, levelOf(tc.status, tc.err), "status %d", tc.status)
	}
}

func TestHandlesErrorOnce(t *testing.T) {
	calls := 0
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			calls++
			return c.Status(http.StatusTeapot).SendString(err.Error())
		},
	})
	app.Use(New(Config{}))
	app.Get("/fail", func(c *fiber.Ctx) error {
		return errors.New("boom")
	})
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendStatus(http.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/fail", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusTeapot, resp.StatusCode)
	assert.Equal(t, 1, calls)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 1, calls)
}
