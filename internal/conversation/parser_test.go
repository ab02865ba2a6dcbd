package conversation

import (
	"context"
	"testing"

	"github.com/hammamikhairi/forkcook/internal/domain"
	"github.com/hammamikhairi/forkcook/internal/logger"
)

func TestKeywordParser(t *testing.T) {
	log := logger.New(logger.LevelOff, nil)
	parser := NewKeywordParser(log)
	ctx := context.Background()

	tests := []struct {
		input       string
		wantType    domain.IntentType
		wantPayload string
	}{
		// Search
		{"search pizza", domain.IntentSearch, "pizza"},
		{"s  deep   dish pizza", domain.IntentSearch, "deep dish pizza"},
		{"SEARCH Pasta", domain.IntentSearch, "Pasta"},

		// Paging
		{"next", domain.IntentNextPage, ""},
		{"n", domain.IntentNextPage, ""},
		{"prev", domain.IntentPrevPage, ""},
		{"previous", domain.IntentPrevPage, ""},
		{"page 3", domain.IntentGoToPage, "3"},

		// Open
		{"open 47746", domain.IntentOpenRecipe, "47746"},
		{"open #2", domain.IntentOpenRecipe, "#2"},
		{"#4", domain.IntentOpenRecipe, "#4"},
		{"show", domain.IntentShowRecipe, ""},

		// Servings
		{"+", domain.IntentIncrease, ""},
		{"more", domain.IntentIncrease, ""},
		{"-", domain.IntentDecrease, ""},
		{"less", domain.IntentDecrease, ""},

		// Shopping list
		{"add", domain.IntentAddToList, ""},
		{"list", domain.IntentShowList, ""},
		{"remove #1", domain.IntentRemoveItem, "#1"},
		{"rm 3f2a", domain.IntentRemoveItem, "3f2a"},
		{"count #2 1.5", domain.IntentSetCount, "#2 1.5"},

		// Likes
		{"like", domain.IntentToggleLike, ""},
		{"likes", domain.IntentShowLikes, ""},

		// Help / quit
		{"help", domain.IntentHelp, ""},
		{"?", domain.IntentHelp, ""},
		{"quit", domain.IntentQuit, ""},
		{"q", domain.IntentQuit, ""},

		// Unknown
		{"page two", domain.IntentUnknown, "page two"},
		{"search", domain.IntentUnknown, "search"},
		{"flambé the cat", domain.IntentUnknown, "flambé the cat"},
		{"", domain.IntentUnknown, ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			intent, err := parser.Parse(ctx, tt.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if intent.Type != tt.wantType {
				t.Errorf("input=%q: got type %s, want %s", tt.input, intent.Type, tt.wantType)
			}
			if intent.Payload != tt.wantPayload {
				t.Errorf("input=%q: got payload %q, want %q", tt.input, intent.Payload, tt.wantPayload)
			}
		})
	}
}

func TestCLINotifier(t *testing.T) {
	var got []string
	n := NewCLINotifier(logger.New(logger.LevelOff, nil), func(format string, a ...interface{}) {
		got = append(got, format)
	})

	if err := n.Notify(context.Background(), "hello"); err != nil {
		t.Fatalf("notify: %v", err)
	}
	if err := n.NotifyUrgent(context.Background(), "Error processing recipe!"); err != nil {
		t.Fatalf("notify urgent: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 prints, got %d", len(got))
	}
}
