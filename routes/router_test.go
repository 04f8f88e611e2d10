package routes

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/template/html/v2"
)

func newNotFoundTestApp() *fiber.App {
	engine := html.New("../views", ".html")
	app := fiber.New(fiber.Config{Views: engine})
	app.Use(notFoundHandler)
	return app
}

func TestNotFoundDefaultsToHTML(t *testing.T) {
	app := newNotFoundTestApp()

	// Tarayıcılar ve curl gibi genel istemciler "*/*" gönderir; HTML sayfa almalılar.
	cases := []string{"*/*", "", "text/html"}
	for _, accept := range cases {
		req := httptest.NewRequest("GET", "/olmayan-sayfa", nil)
		if accept != "" {
			req.Header.Set("Accept", accept)
		}
		resp, err := app.Test(req)
		if err != nil {
			t.Fatalf("Accept=%q: istek başarısız: %v", accept, err)
		}
		if resp.StatusCode != fiber.StatusNotFound {
			t.Errorf("Accept=%q: durum kodu %d, beklenen 404", accept, resp.StatusCode)
		}
		if ct := resp.Header.Get("Content-Type"); !strings.Contains(ct, "text/html") {
			t.Errorf("Accept=%q: Content-Type %q, text/html beklenirdi", accept, ct)
		}
	}
}

func TestNotFoundJSONForAPIClients(t *testing.T) {
	app := newNotFoundTestApp()

	req := httptest.NewRequest("GET", "/api/olmayan", nil)
	req.Header.Set("Accept", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("istek başarısız: %v", err)
	}
	if resp.StatusCode != fiber.StatusNotFound {
		t.Errorf("durum kodu %d, beklenen 404", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); !strings.Contains(ct, "application/json") {
		t.Errorf("Content-Type %q, application/json beklenirdi", ct)
	}
}
