package join

import (
	"fmt"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/cherryclub/campus-api/model"
)

func TestSearchUniversitiesReturnsBareArray(t *testing.T) {
	db := openTestDB(t)

	marker := fmt.Sprintf("검색-%d", time.Now().UnixNano())
	university := model.University{Name: marker + "대학교", Location: "대한민국"}
	if err := db.Create(&university).Error; err != nil {
		t.Fatalf("failed to create university: %v", err)
	}
	defer db.Unscoped().Delete(&university)

	handler := NewJoinHandler(db)
	app := fiber.New()
	app.Get("/api/join/university", handler.SearchUniversities)

	get := func(query string) string {
		req := httptest.NewRequest("GET", "/api/join/university?query="+query, nil)
		resp, err := app.Test(req, 10000)
		if err != nil {
			t.Fatalf("request failed: %v", err)
		}
		defer resp.Body.Close()
		if resp.StatusCode != fiber.StatusOK {
			t.Fatalf("status = %d, want 200", resp.StatusCode)
		}
		raw, _ := io.ReadAll(resp.Body)
		return string(raw)
	}

	// The autocomplete destructures a bare array, not the envelope
	body := get(marker)
	if !strings.HasPrefix(body, "[") {
		t.Fatalf("response is not a bare array: %s", body)
	}
	if strings.Contains(body, `"success"`) || strings.Contains(body, `"data"`) {
		t.Errorf("response wrapped in envelope: %s", body)
	}
	if !strings.Contains(body, `"name"`) || !strings.Contains(body, `"country"`) {
		t.Errorf("match missing name/country fields: %s", body)
	}

	if body := get(""); body != "[]" {
		t.Errorf("blank query = %s, want []", body)
	}
}
