// Package history is the client-local list of saved drafts. It has no link
// to the server-side entry store.
package history

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/abhishek622/careerOS/pkg/model"
	"github.com/google/uuid"
	"github.com/tidwall/gjson"
)

const (
	StorageKey = "career-os:saved"
	MaxItems   = 50
)

type Store struct {
	kv  KV
	now func() time.Time
}

func NewStore(kv KV) *Store {
	return &Store{kv: kv, now: time.Now}
}

// Load returns the saved drafts, newest first. Absent data or a value that
// is not a JSON array reads as an empty list. Records that do not decode are
// skipped and the rest are kept.
func (s *Store) Load(ctx context.Context) []model.SavedDraft {
	items := []model.SavedDraft{}
	raw, ok, err := s.kv.Get(ctx, StorageKey)
	if err != nil || !ok || !gjson.Valid(raw) {
		return items
	}
	list := gjson.Parse(raw)
	if !list.IsArray() {
		return items
	}
	list.ForEach(func(_, rec gjson.Result) bool {
		if !rec.IsObject() {
			return true
		}
		var it model.SavedDraft
		if err := json.Unmarshal([]byte(rec.Raw), &it); err == nil {
			items = append(items, it)
		}
		return true
	})
	return items
}

// Save prepends a new record and keeps the MaxItems most recent.
func (s *Store) Save(ctx context.Context, text string, d model.Draft) (model.SavedDraft, error) {
	item := model.SavedDraft{
		ID:        uuid.NewString(),
		Text:      text,
		Draft:     d,
		CreatedAt: s.now().UTC(),
	}
	next := append([]model.SavedDraft{item}, s.Load(ctx)...)
	if len(next) > MaxItems {
		next = next[:MaxItems]
	}
	if err := s.persist(ctx, next); err != nil {
		return model.SavedDraft{}, err
	}
	return item, nil
}

// Delete removes the record with id; unknown ids are a no-op.
func (s *Store) Delete(ctx context.Context, id string) error {
	items := s.Load(ctx)
	rest := make([]model.SavedDraft, 0, len(items))
	for _, it := range items {
		if it.ID != id {
			rest = append(rest, it)
		}
	}
	if len(rest) == len(items) {
		return nil
	}
	return s.persist(ctx, rest)
}

func (s *Store) Get(ctx context.Context, id string) (model.SavedDraft, bool) {
	for _, it := range s.Load(ctx) {
		if it.ID == id {
			return it, true
		}
	}
	return model.SavedDraft{}, false
}

func (s *Store) persist(ctx context.Context, items []model.SavedDraft) error {
	b, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("marshal history: %w", err)
	}
	if err := s.kv.Set(ctx, StorageKey, string(b)); err != nil {
		return fmt.Errorf("persist history: %w", err)
	}
	return nil
}
