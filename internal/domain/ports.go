package domain

import "context"

// RecipeSource provides recipes. Implementations can be in-memory (built-in)
// or API-backed.
type RecipeSource interface {
	Search(ctx context.Context, query string) ([]RecipeSummary, error)
	Get(ctx context.Context, id string) (*RawRecipe, error)
}

// BlobStore persists opaque values by key. Put overwrites the whole value.
// Get returns ErrNotFound for a key that was never written.
type BlobStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
}

// IntentParser converts raw user input into structured intents.
type IntentParser interface {
	Parse(ctx context.Context, input string) (*Intent, error)
}

// Notifier delivers messages to the user.
type Notifier interface {
	Notify(ctx context.Context, message string) error
	NotifyUrgent(ctx context.Context, message string) error
}
