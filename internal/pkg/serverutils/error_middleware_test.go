package serverutils

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func TestErrorHandlerStatusCodes(t *testing.T) {
	app := fiber.New()
	app.Use(ErrorHandlerMiddleware())
	app.Get("/ok", func(c *fiber.Ctx) error { return c.SendString("ok") })
	app.Get("/teapot", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusTeapot, "teapot")
	})
	app.Get("/boom", func(c *fiber.Ctx) error { panic("boom") })
	app.Get("/oops", func(c *fiber.Ctx) error { return errors.New("oops") })

	tests := []struct {
		name string
		path string
		want int
	}{
		{name: "plain handler untouched", path: "/ok", want: http.StatusOK},
		{name: "unmatched route stays 404", path: "/nonexistent", want: http.StatusNotFound},
		{name: "fiber error keeps its code", path: "/teapot", want: http.StatusTeapot},
		{name: "panic converted to 500", path: "/boom", want: http.StatusInternalServerError},
		{name: "unexpected error converted to 500", path: "/oops", want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			resp, err := app.Test(req)
			if err != nil {
				t.Fatalf("app.Test(%q) error: %v", tt.path, err)
			}
			defer resp.Body.Close()
			if resp.StatusCode != tt.want {
				t.Errorf("GET %s status = %d, want %d", tt.path, resp.StatusCode, tt.want)
			}
		})
	}
}
