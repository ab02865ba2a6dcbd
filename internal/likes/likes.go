// Package likes keeps the set of liked recipes and persists it as one blob.
package likes

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/hammamikhairi/forkcook/internal/domain"
	"github.com/hammamikhairi/forkcook/internal/logger"
)

// StorageKey is the blob key the like list is written under.
const StorageKey = "likes"

// Book is the ordered list of liked recipes. Every mutation rewrites the
// whole list to the store. Not safe for concurrent use.
type Book struct {
	likes []domain.Like
	store domain.BlobStore
	log   *logger.Logger
}

// NewBook creates an empty book backed by store. Call Restore to load
// previously saved likes.
func NewBook(store domain.BlobStore, log *logger.Logger) *Book {
	return &Book{store: store, log: log}
}

// Restore replaces the in-memory list with the persisted one. A store with
// nothing saved yet yields an empty book.
func (b *Book) Restore(ctx context.Context) error {
	data, err := b.store.Get(ctx, StorageKey)
	if errors.Is(err, domain.ErrNotFound) {
		b.likes = nil
		return nil
	}
	if err != nil {
		return fmt.Errorf("likes: load: %w", err)
	}

	var stored []domain.Like
	if err := json.Unmarshal(data, &stored); err != nil {
		return fmt.Errorf("likes: decode: %w", err)
	}
	b.likes = stored
	b.log.Debug("restored %d likes", len(stored))
	return nil
}

// Add appends a like and persists the list. Liking an already liked recipe
// is a no-op.
func (b *Book) Add(ctx context.Context, like domain.Like) (domain.Like, error) {
	if b.IsLiked(like.ID) {
		return like, nil
	}
	b.likes = append(b.likes, like)
	if err := b.persist(ctx); err != nil {
		b.likes = b.likes[:len(b.likes)-1]
		return domain.Like{}, err
	}
	b.log.Info("liked recipe %s (%s)", like.ID, like.Title)
	return like, nil
}

// Delete removes the like for id and persists the list.
func (b *Book) Delete(ctx context.Context, id string) error {
	idx := b.index(id)
	if idx < 0 {
		return domain.ErrNotFound
	}
	prev := b.likes
	b.likes = append(append([]domain.Like(nil), prev[:idx]...), prev[idx+1:]...)
	if err := b.persist(ctx); err != nil {
		b.likes = prev
		return err
	}
	b.log.Info("unliked recipe %s", id)
	return nil
}

// IsLiked reports whether id is in the book.
func (b *Book) IsLiked(id string) bool {
	return b.index(id) >= 0
}

// Count returns the number of likes.
func (b *Book) Count() int {
	return len(b.likes)
}

// All returns a copy of the likes in the order they were added.
func (b *Book) All() []domain.Like {
	return append([]domain.Like(nil), b.likes...)
}

func (b *Book) index(id string) int {
	for i, l := range b.likes {
		if l.ID == id {
			return i
		}
	}
	return -1
}

func (b *Book) persist(ctx context.Context) error {
	list := b.likes
	if list == nil {
		list = []domain.Like{}
	}
	data, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("likes: encode: %w", err)
	}
	if err := b.store.Put(ctx, StorageKey, data); err != nil {
		return fmt.Errorf("likes: save: %w", err)
	}
	return nil
}
