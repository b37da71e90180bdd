package content

import (
	"testing"
)

func TestDedupe_FirstWins(t *testing.T) {
	articles := []Article{
		{Id: "1", Title: "A"},
		{Id: "1", Title: "B"},
	}

	result := Dedupe(articles)

	if len(result) != 1 {
		t.Fatalf("expected 1 article, got %d", len(result))
	}
	if result[0].Title != "A" {
		t.Errorf("expected first occurrence to survive, got title %q", result[0].Title)
	}
}

func TestDedupe_PreservesOrder(t *testing.T) {
	articles := []Article{
		{Id: "3", Title: "C"},
		{Id: "1", Title: "A"},
		{Id: "3", Title: "C again"},
		{Id: "2", Title: "B"},
	}

	result := Dedupe(articles)

	if len(result) != 3 {
		t.Fatalf("expected 3 articles, got %d", len(result))
	}
	expected := []string{"3", "1", "2"}
	for i, id := range expected {
		if result[i].Id != id {
			t.Errorf("position %d: expected id %q, got %q", i, id, result[i].Id)
		}
	}
}

func TestDedupe_Idempotent(t *testing.T) {
	articles := []Article{
		{Id: "1", Title: "A"},
		{Id: "2", Title: "B"},
		{Id: "1", Title: "duplicate"},
	}

	once := Dedupe(articles)
	twice := Dedupe(once)

	if len(once) != len(twice) {
		t.Fatalf("dedupe not idempotent: %d vs %d items", len(once), len(twice))
	}
	for i := range once {
		if once[i].Id != twice[i].Id || once[i].Title != twice[i].Title {
			t.Errorf("position %d differs after second dedupe", i)
		}
	}
}

func TestDedupe_Empty(t *testing.T) {
	if result := Dedupe(nil); len(result) != 0 {
		t.Errorf("expected empty result for nil input, got %d items", len(result))
	}
}
