package console

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"food-truck-finder/internal/domain"
)

func TestNextTranslatesLinesToIntents(t *testing.T) {
	var out bytes.Buffer
	ui := NewUI(strings.NewReader("3\n\nq\n"), &out)

	intent, err := ui.Next(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if intent.Kind != domain.IntentPick || intent.Rank != 3 {
		t.Fatalf("first intent = %+v, want pick 3", intent)
	}

	intent, err = ui.Next(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if intent.Kind != domain.IntentNext {
		t.Fatalf("second intent = %+v, want next", intent)
	}

	intent, err = ui.Next(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if intent.Kind != domain.IntentQuit {
		t.Fatalf("third intent = %+v, want quit", intent)
	}
}

func TestNextTreatsEOFAsQuit(t *testing.T) {
	var out bytes.Buffer
	ui := NewUI(strings.NewReader(""), &out)

	intent, err := ui.Next(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if intent.Kind != domain.IntentQuit {
		t.Fatalf("EOF intent = %+v, want quit", intent)
	}
}

func TestRenderPageShowsGlobalRanks(t *testing.T) {
	var out bytes.Buffer
	ui := NewUI(strings.NewReader(""), &out)

	ui.RenderPage(domain.Page{
		Offset: 5,
		Total:  7,
		Entries: []domain.RankedEntry{
			{Truck: domain.Truck{Name: "Sixth Truck", Address: "6 SIXTH ST", FoodItems: "tacos"}, DistanceMiles: 1.23},
			{Truck: domain.Truck{Name: "Seventh Truck", Address: "7 SEVENTH ST"}, DistanceMiles: 2.5},
		},
	})

	text := out.String()
	if !strings.Contains(text, "6) Sixth Truck  6 SIXTH ST  1.2 mi.") {
		t.Fatalf("missing rank-6 line in:\n%s", text)
	}
	if !strings.Contains(text, "7) Seventh Truck") {
		t.Fatalf("missing rank-7 line in:\n%s", text)
	}
	if !strings.Contains(text, "tacos") {
		t.Fatalf("missing food items in:\n%s", text)
	}
}
