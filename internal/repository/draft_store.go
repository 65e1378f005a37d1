package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/Eursukkul/aquaagro-admin/internal/models"
	"github.com/Eursukkul/aquaagro-admin/pkg/redis"
)

// DraftStore holds booking forms in progress, keyed by a client-chosen id.
// Drafts expire after the store's TTL.
type DraftStore interface {
	Save(ctx context.Context, id string, draft models.BookingDraft) error
	Get(ctx context.Context, id string) (*models.BookingDraft, error)
	Delete(ctx context.Context, id string) error
}

type redisDraftStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisDraftStore(client *redis.Client, ttl time.Duration) DraftStore {
	return &redisDraftStore{client: client, ttl: ttl}
}

func draftKey(id string) string {
	return "draft:" + id
}

func (s *redisDraftStore) Save(ctx context.Context, id string, draft models.BookingDraft) error {
	data, err := json.Marshal(draft)
	if err != nil {
		return fmt.Errorf("marshal draft: %w", err)
	}
	return s.client.Set(ctx, draftKey(id), data, s.ttl)
}

func (s *redisDraftStore) Get(ctx context.Context, id string) (*models.BookingDraft, error) {
	data, err := s.client.Get(ctx, draftKey(id))
	if errors.Is(err, redis.ErrMissing) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get draft: %w", err)
	}

	var draft models.BookingDraft
	if err := json.Unmarshal(data, &draft); err != nil {
		return nil, fmt.Errorf("unmarshal draft: %w", err)
	}
	return &draft, nil
}

func (s *redisDraftStore) Delete(ctx context.Context, id string) error {
	return s.client.Del(ctx, draftKey(id))
}

type memoryDraft struct {
	draft     models.BookingDraft
	expiresAt time.Time
}

type memoryDraftStore struct {
	mu     sync.Mutex
	ttl    time.Duration
	now    func() time.Time
	drafts map[string]memoryDraft
}

// NewMemoryDraftStore is used when no Redis is configured. now defaults to time.Now.
func NewMemoryDraftStore(ttl time.Duration, now func() time.Time) DraftStore {
	if now == nil {
		now = time.Now
	}
	return &memoryDraftStore{ttl: ttl, now: now, drafts: make(map[string]memoryDraft)}
}

func (s *memoryDraftStore) Save(ctx context.Context, id string, draft models.BookingDraft) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.evictLocked()
	s.drafts[id] = memoryDraft{draft: draft, expiresAt: s.now().Add(s.ttl)}
	return nil
}

func (s *memoryDraftStore) Get(ctx context.Context, id string) (*models.BookingDraft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, ok := s.drafts[id]
	if !ok || !s.now().Before(d.expiresAt) {
		delete(s.drafts, id)
		return nil, ErrNotFound
	}
	draft := d.draft
	return &draft, nil
}

func (s *memoryDraftStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.drafts, id)
	return nil
}

func (s *memoryDraftStore) evictLocked() {
	now := s.now()
	for id, d := range s.drafts {
		if !now.Before(d.expiresAt) {
			delete(s.drafts, id)
		}
	}
}
