package auth

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupApp(cfg Config) *fiber.App {
	app := fiber.New()
	app.Use(New(cfg))
	app.Get("/files/packages/a.nupkg", func(c *fiber.Ctx) error { return c.SendString("ok") })
	app.Get("/health", func(c *fiber.Ctx) error { return c.SendString("ok") })
	return app
}

func TestNew(t *testing.T) {
	tests := []struct {
		name   string
		cfg    Config
		path   string
		key    string
		status int
	}{
		{"Disabled", Config{}, "/files/packages/a.nupkg", "", 200},
		{"Missing", Config{ApiKey: "secret"}, "/files/packages/a.nupkg", "", 401},
		{"Wrong", Config{ApiKey: "secret"}, "/files/packages/a.nupkg", "nope", 401},
		{"Valid", Config{ApiKey: "secret"}, "/files/packages/a.nupkg", "secret", 200},
		{"Skipped", Config{ApiKey: "secret", Skip: []string{"/health"}}, "/health", "", 200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", tt.path, nil)
			if tt.key != "" {
				req.Header.Set(Header, tt.key)
			}
			resp, err := setupApp(tt.cfg).Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.status, resp.StatusCode)
		})
	}
}
