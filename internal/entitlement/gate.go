package entitlement

import (
	"context"
	"errors"
	"fmt"

	"github.com/abhisek/mindmorph/internal/store"
)

// DefaultQuota is the number of free pipeline runs per anonymous session.
const DefaultQuota = 3

// UnlimitedQuota is the sentinel stored for authenticated identities.
const UnlimitedQuota = -1

// ErrQuotaExceeded is returned when an anonymous identity has spent its free
// runs. Recoverable by signing up.
var ErrQuotaExceeded = errors.New("free usage quota exceeded")

// Gate enforces the free-tier quota. Consumption is a single atomic
// check-and-increment in the store, so concurrent calls on the same identity
// can never oversell the quota.
type Gate struct {
	usage store.UsageRepo
	quota int
}

// NewGate creates a gate with the given anonymous quota.
func NewGate(usage store.UsageRepo, quota int) *Gate {
	if quota <= 0 {
		quota = DefaultQuota
	}
	return &Gate{usage: usage, quota: quota}
}

// CheckAndConsume records one pipeline invocation for the identity.
// Authenticated identities are always allowed and their counter is never
// incremented. Anonymous identities are denied with ErrQuotaExceeded once
// the quota is spent; denied calls mutate nothing and stay denied on repeat.
func (g *Gate) CheckAndConsume(ctx context.Context, id Identity) error {
	if id.IsAuthenticated() {
		return g.usage.Ensure(ctx, id.Key(), string(id.Kind()), UnlimitedQuota)
	}

	if err := g.usage.Ensure(ctx, id.Key(), string(id.Kind()), g.quota); err != nil {
		return fmt.Errorf("ensure usage record: %w", err)
	}

	_, allowed, err := g.usage.Consume(ctx, id.Key())
	if err != nil {
		return fmt.Errorf("consume usage: %w", err)
	}
	if !allowed {
		return ErrQuotaExceeded
	}
	return nil
}

// Remaining returns how many free runs the identity has left. Unlimited
// identities report -1. An identity with no record yet has the full quota.
func (g *Gate) Remaining(ctx context.Context, id Identity) (int, error) {
	if id.IsAuthenticated() {
		return UnlimitedQuota, nil
	}

	rec, err := g.usage.Get(ctx, id.Key())
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return g.quota, nil
		}
		return 0, err
	}

	left := rec.Quota - rec.UsedCount
	if left < 0 {
		left = 0
	}
	return left, nil
}

// Migrate moves an anonymous session's usage to an authenticated user on
// sign-up. The counter is carried over for audit; the authenticated record
// is unlimited, so past usage never gates again.
func (g *Gate) Migrate(ctx context.Context, anon, user Identity) error {
	if anon.IsAuthenticated() {
		return fmt.Errorf("migrate: source identity %s is not anonymous", anon)
	}
	if !user.IsAuthenticated() {
		return fmt.Errorf("migrate: target identity %s is not authenticated", user)
	}
	return g.usage.Migrate(ctx, anon.Key(), user.Key())
}
