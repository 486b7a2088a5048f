package memory

import (
	"errors"
	"testing"
	"time"

	"github.com/vladislavdragonenkov/commerce/internal/domain"
)

func TestIdempotencyRepository_CreateProcessing(t *testing.T) {
	repo := NewIdempotencyRepository()

	record, err := repo.CreateProcessing("key-1", "hash-1", time.Now().UTC().Add(time.Hour))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if record.Status != domain.IdempotencyStatusProcessing {
		t.Fatalf("expected processing status, got %s", record.Status)
	}
}

func TestIdempotencyRepository_DuplicateKey(t *testing.T) {
	repo := NewIdempotencyRepository()
	ttl := time.Now().UTC().Add(time.Hour)

	if _, err := repo.CreateProcessing("key-1", "hash-1", ttl); err != nil {
		t.Fatalf("create: %v", err)
	}

	_, err := repo.CreateProcessing("key-1", "hash-1", ttl)
	if !errors.Is(err, domain.ErrIdempotencyKeyAlreadyExists) {
		t.Fatalf("expected ErrIdempotencyKeyAlreadyExists, got %v", err)
	}

	_, err = repo.CreateProcessing("key-1", "hash-2", ttl)
	if !errors.Is(err, domain.ErrIdempotencyHashMismatch) {
		t.Fatalf("expected ErrIdempotencyHashMismatch, got %v", err)
	}
}

func TestIdempotencyRepository_MarkDoneAndGet(t *testing.T) {
	repo := NewIdempotencyRepository()

	if _, err := repo.CreateProcessing("key-1", "hash-1", time.Now().UTC().Add(time.Hour)); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := repo.MarkDone("key-1", []byte(`{"ok":true}`), 0); err != nil {
		t.Fatalf("mark done: %v", err)
	}

	record, err := repo.Get("key-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if record.Status != domain.IdempotencyStatusDone {
		t.Fatalf("expected done, got %s", record.Status)
	}
	if string(record.ResponseBody) != `{"ok":true}` {
		t.Fatalf("unexpected body: %s", record.ResponseBody)
	}
}

func TestIdempotencyRepository_DeleteExpired(t *testing.T) {
	repo := NewIdempotencyRepository()
	now := time.Now().UTC()

	if _, err := repo.CreateProcessing("old", "hash-1", now.Add(-time.Minute)); err != nil {
		t.Fatalf("create old: %v", err)
	}
	if _, err := repo.CreateProcessing("fresh", "hash-2", now.Add(time.Hour)); err != nil {
		t.Fatalf("create fresh: %v", err)
	}

	removed, err := repo.DeleteExpired(now, 0)
	if err != nil {
		t.Fatalf("delete expired: %v", err)
	}
	if removed != 1 {
		t.Fatalf("expected 1 removed, got %d", removed)
	}

	if _, err := repo.Get("old"); !errors.Is(err, domain.ErrIdempotencyKeyNotFound) {
		t.Fatalf("expected old key gone, got %v", err)
	}
	if _, err := repo.Get("fresh"); err != nil {
		t.Fatalf("fresh key must survive: %v", err)
	}
}
