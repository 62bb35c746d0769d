package auth_test

import (
	"net/http/httptest"
	"testing"

	"inventory-manager/core/middleware/auth"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupApp(cfg auth.Config) *fiber.App {
	app := fiber.New()
	app.Use(auth.New(cfg))
	app.Get("/*", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	return app
}

func TestAuth(t *testing.T) {
	tests := []struct {
		name   string
		cfg    auth.Config
		path   string
		header string
		value  string
		want   int
	}{
		{"Disabled", auth.Config{}, "/inventory", "", "", 200},
		{"MissingKey", auth.Config{ApiKey: "secret"}, "/inventory", "", "", 401},
		{"WrongKey", auth.Config{ApiKey: "secret"}, "/inventory", auth.HeaderName, "nope", 401},
		{"HeaderKey", auth.Config{ApiKey: "secret"}, "/inventory", auth.HeaderName, "secret", 200},
		{"BearerKey", auth.Config{ApiKey: "secret"}, "/inventory", "Authorization", "Bearer secret", 200},
		{"SkippedPath", auth.Config{ApiKey: "secret", SkipPaths: []string{"/swagger"}}, "/swagger/index.html", "", "", 200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := setupApp(tt.cfg)
			req := httptest.NewRequest("GET", tt.path, nil)
			if tt.header != "" {
				req.Header.Set(tt.header, tt.value)
			}
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.want, resp.StatusCode)
		})
	}
}
