package entitlement

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/abhisek/mindmorph/internal/store"
)

// memUsageRepo is an in-memory UsageRepo with the same atomicity contract
// as the SQL-backed one.
type memUsageRepo struct {
	mu      sync.Mutex
	records map[string]*store.UsageRecord
}

func newMemUsageRepo() *memUsageRepo {
	return &memUsageRepo{records: make(map[string]*store.UsageRecord)}
}

func (m *memUsageRepo) Ensure(_ context.Context, identity, kind string, quota int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.records[identity]; ok {
		return nil
	}
	m.records[identity] = &store.UsageRecord{
		Identity:     identity,
		IdentityKind: kind,
		Quota:        quota,
		CreatedAt:    time.Now(),
	}
	return nil
}

func (m *memUsageRepo) Consume(_ context.Context, identity string) (int, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	rec, ok := m.records[identity]
	if !ok {
		return 0, false, fmt.Errorf("usage record %s: %w", identity, store.ErrNotFound)
	}
	if rec.Quota >= 0 && rec.UsedCount >= rec.Quota {
		return rec.UsedCount, false, nil
	}
	rec.UsedCount++
	return rec.UsedCount, true, nil
}

func (m *memUsageRepo) Get(_ context.Context, identity string) (*store.UsageRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	rec, ok := m.records[identity]
	if !ok {
		return nil, fmt.Errorf("usage record %s: %w", identity, store.ErrNotFound)
	}
	cp := *rec
	return &cp, nil
}

func (m *memUsageRepo) Migrate(_ context.Context, from, to string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	src, ok := m.records[from]
	if !ok {
		return nil
	}
	if dst, ok := m.records[to]; ok {
		dst.UsedCount += src.UsedCount
	} else {
		m.records[to] = &store.UsageRecord{
			Identity:     to,
			IdentityKind: "authenticated",
			UsedCount:    src.UsedCount,
			Quota:        UnlimitedQuota,
			CreatedAt:    time.Now(),
		}
	}
	delete(m.records, from)
	return nil
}

func TestQuotaScenario(t *testing.T) {
	gate := NewGate(newMemUsageRepo(), 3)
	ctx := context.Background()
	id := Anonymous("session-a")

	for i := 1; i <= 3; i++ {
		if err := gate.CheckAndConsume(ctx, id); err != nil {
			t.Fatalf("call %d: %v", i, err)
		}
	}

	// Fourth call and every call after it is denied.
	for i := 0; i < 3; i++ {
		err := gate.CheckAndConsume(ctx, id)
		if !errors.Is(err, ErrQuotaExceeded) {
			t.Fatalf("expected ErrQuotaExceeded, got %v", err)
		}
	}

	left, err := gate.Remaining(ctx, id)
	if err != nil {
		t.Fatalf("remaining: %v", err)
	}
	if left != 0 {
		t.Errorf("remaining = %d, want 0", left)
	}
}

func TestAuthenticatedNeverDenied(t *testing.T) {
	repo := newMemUsageRepo()
	gate := NewGate(repo, 3)
	ctx := context.Background()
	id := Authenticated("user-1")

	for i := 0; i < 20; i++ {
		if err := gate.CheckAndConsume(ctx, id); err != nil {
			t.Fatalf("call %d: %v", i, err)
		}
	}

	rec, err := repo.Get(ctx, id.Key())
	if err != nil {
		t.Fatalf("get record: %v", err)
	}
	if rec.UsedCount != 0 {
		t.Errorf("authenticated usedCount = %d, want 0 (never incremented)", rec.UsedCount)
	}

	left, err := gate.Remaining(ctx, id)
	if err != nil {
		t.Fatalf("remaining: %v", err)
	}
	if left != UnlimitedQuota {
		t.Errorf("remaining = %d, want unlimited sentinel", left)
	}
}

func TestRemainingBeforeFirstUse(t *testing.T) {
	gate := NewGate(newMemUsageRepo(), 3)
	left, err := gate.Remaining(context.Background(), Anonymous("fresh"))
	if err != nil {
		t.Fatalf("remaining: %v", err)
	}
	if left != 3 {
		t.Errorf("remaining = %d, want 3", left)
	}
}

func TestConcurrentConsumptionNeverOversells(t *testing.T) {
	repo := newMemUsageRepo()
	gate := NewGate(repo, 3)
	ctx := context.Background()
	id := Anonymous("session-a")

	const callers = 12
	results := make(chan error, callers)
	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results <- gate.CheckAndConsume(ctx, id)
		}()
	}
	wg.Wait()
	close(results)

	allowed, denied := 0, 0
	for err := range results {
		switch {
		case err == nil:
			allowed++
		case errors.Is(err, ErrQuotaExceeded):
			denied++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if allowed != 3 {
		t.Errorf("allowed = %d, want exactly 3", allowed)
	}
	if denied != callers-3 {
		t.Errorf("denied = %d, want %d", denied, callers-3)
	}

	rec, err := repo.Get(ctx, id.Key())
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if rec.UsedCount != 3 {
		t.Errorf("usedCount = %d, want 3", rec.UsedCount)
	}
}

func TestMigrateValidatesKinds(t *testing.T) {
	gate := NewGate(newMemUsageRepo(), 3)
	ctx := context.Background()

	if err := gate.Migrate(ctx, Authenticated("u"), Authenticated("v")); err == nil {
		t.Error("expected error for authenticated source")
	}
	if err := gate.Migrate(ctx, Anonymous("s"), Anonymous("t")); err == nil {
		t.Error("expected error for anonymous target")
	}
}

func TestMigrateCarriesCounterOver(t *testing.T) {
	repo := newMemUsageRepo()
	gate := NewGate(repo, 3)
	ctx := context.Background()
	anon := Anonymous("session-a")
	user := Authenticated("user-1")

	for i := 0; i < 2; i++ {
		if err := gate.CheckAndConsume(ctx, anon); err != nil {
			t.Fatalf("consume: %v", err)
		}
	}
	if err := gate.Migrate(ctx, anon, user); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	rec, err := repo.Get(ctx, user.Key())
	if err != nil {
		t.Fatalf("get user record: %v", err)
	}
	if rec.UsedCount != 2 {
		t.Errorf("carried count = %d, want 2", rec.UsedCount)
	}

	// The old counter never gates the authenticated identity.
	for i := 0; i < 5; i++ {
		if err := gate.CheckAndConsume(ctx, user); err != nil {
			t.Fatalf("post-migration consume: %v", err)
		}
	}
}
