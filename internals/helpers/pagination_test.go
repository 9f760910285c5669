package helper

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func parseWithQuery(t *testing.T, query string, opt Options) Params {
	t.Helper()

	var got Params
	app := fiber.New()
	app.Get("/t", func(c *fiber.Ctx) error {
		got = ParseFiber(c, "submitted_at", "desc", opt)
		return c.SendStatus(fiber.StatusOK)
	})

	req := httptest.NewRequest("GET", "/t?"+query, nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()
	return got
}

func TestParseFiberDefaults(t *testing.T) {
	p := parseWithQuery(t, "", DefaultOpts)
	if p.Page != 1 || p.PerPage != DefaultOpts.DefaultPerPage {
		t.Errorf("defaults: page=%d per_page=%d", p.Page, p.PerPage)
	}
	if p.SortBy != "submitted_at" || p.SortOrder != "desc" {
		t.Errorf("defaults: sort_by=%q order=%q", p.SortBy, p.SortOrder)
	}
}

func TestParseFiberClampsPerPage(t *testing.T) {
	p := parseWithQuery(t, "per_page=9999", DefaultOpts)
	if p.PerPage != DefaultOpts.MaxPerPage {
		t.Errorf("per_page=%d, want clamped to %d", p.PerPage, DefaultOpts.MaxPerPage)
	}

	p = parseWithQuery(t, "page=-3&per_page=0", DefaultOpts)
	if p.Page != 1 {
		t.Errorf("negative page should fall back to 1, got %d", p.Page)
	}
	if p.PerPage != DefaultOpts.DefaultPerPage {
		t.Errorf("per_page=0 should fall back to default, got %d", p.PerPage)
	}
}

func TestParseFiberSortOrder(t *testing.T) {
	p := parseWithQuery(t, "order=ASC&sort_by=title", DefaultOpts)
	if p.SortOrder != "asc" || p.SortBy != "title" {
		t.Errorf("got order=%q sort_by=%q", p.SortOrder, p.SortBy)
	}

	p = parseWithQuery(t, "order=sideways", DefaultOpts)
	if p.SortOrder != "desc" {
		t.Errorf("invalid order should fall back to default, got %q", p.SortOrder)
	}
}

func TestLimitOffset(t *testing.T) {
	p := Params{Page: 3, PerPage: 25}
	if p.Limit() != 25 {
		t.Errorf("Limit() = %d", p.Limit())
	}
	if p.Offset() != 50 {
		t.Errorf("Offset() = %d, want 50", p.Offset())
	}
}

func TestSafeOrderClause(t *testing.T) {
	allowed := map[string]string{
		"submitted_at": "submission_submitted_at",
		"title":        "submission_title",
	}

	p := Params{SortBy: "title", SortOrder: "asc"}
	clause, err := p.SafeOrderClause(allowed, "submitted_at")
	if err != nil {
		t.Fatalf("SafeOrderClause: %v", err)
	}
	if clause != "ORDER BY submission_title ASC" {
		t.Errorf("clause = %q", clause)
	}

	// Kolom di luar whitelist jatuh ke default, bukan injeksi.
	p = Params{SortBy: "submission_title; DROP TABLE submissions", SortOrder: "desc"}
	clause, err = p.SafeOrderClause(allowed, "submitted_at")
	if err != nil {
		t.Fatalf("SafeOrderClause: %v", err)
	}
	if clause != "ORDER BY submission_submitted_at DESC" {
		t.Errorf("clause = %q", clause)
	}
}

func TestBuildMeta(t *testing.T) {
	meta := BuildMeta(101, Params{Page: 2, PerPage: 25})
	if meta.TotalPages != 5 {
		t.Errorf("TotalPages = %d, want 5", meta.TotalPages)
	}
	if !meta.HasNext || !meta.HasPrev {
		t.Errorf("HasNext=%v HasPrev=%v", meta.HasNext, meta.HasPrev)
	}
	if meta.NextPage == nil || *meta.NextPage != 3 {
		t.Error("NextPage should be 3")
	}
	if meta.PrevPage == nil || *meta.PrevPage != 1 {
		t.Error("PrevPage should be 1")
	}

	empty := BuildMeta(0, Params{Page: 1, PerPage: 25})
	if empty.TotalPages != 0 || empty.HasNext || empty.HasPrev {
		t.Errorf("empty meta = %+v", empty)
	}
}
