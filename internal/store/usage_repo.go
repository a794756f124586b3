package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/abhisek/mindmorph/ent"
	entusage "github.com/abhisek/mindmorph/ent/usagerecord"
)

// usageRepo implements UsageRepo. Reads and record creation go through ent;
// consumption is a single guarded UPDATE in raw SQL so the check and the
// increment are one atomic statement (ent has no conditional-increment
// primitive, same reason the sequence counter is raw SQL).
type usageRepo struct {
	client *ent.Client
	db     *sql.DB
}

func (r *usageRepo) Ensure(ctx context.Context, identity, kind string, quota int) error {
	exists, err := r.client.UsageRecord.Query().
		Where(entusage.Identity(identity)).
		Exist(ctx)
	if err != nil {
		return fmt.Errorf("check usage record: %w", err)
	}
	if exists {
		return nil
	}

	_, err = r.client.UsageRecord.Create().
		SetIdentity(identity).
		SetIdentityKind(kind).
		SetQuota(quota).
		Save(ctx)
	if err != nil {
		// A concurrent caller created the row first; that is fine.
		if ent.IsConstraintError(err) {
			return nil
		}
		return fmt.Errorf("create usage record: %w", err)
	}
	return nil
}

func (r *usageRepo) Consume(ctx context.Context, identity string) (int, bool, error) {
	var used int
	err := r.db.QueryRowContext(ctx,
		`UPDATE usage_records
		 SET used_count = used_count + 1
		 WHERE identity = ? AND (quota < 0 OR used_count < quota)
		 RETURNING used_count`,
		identity,
	).Scan(&used)
	if err == nil {
		return used, true, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return 0, false, fmt.Errorf("consume usage: %w", err)
	}

	// Denied or missing; read the current count without mutating.
	rec, getErr := r.Get(ctx, identity)
	if getErr != nil {
		return 0, false, getErr
	}
	return rec.UsedCount, false, nil
}

func (r *usageRepo) Get(ctx context.Context, identity string) (*UsageRecord, error) {
	row, err := r.client.UsageRecord.Query().
		Where(entusage.Identity(identity)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("usage record %s: %w", identity, ErrNotFound)
		}
		return nil, fmt.Errorf("query usage record: %w", err)
	}
	return &UsageRecord{
		Identity:     row.Identity,
		IdentityKind: row.IdentityKind,
		UsedCount:    row.UsedCount,
		Quota:        row.Quota,
		CreatedAt:    row.CreatedAt,
	}, nil
}

func (r *usageRepo) Migrate(ctx context.Context, fromIdentity, toIdentity string) error {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin migrate tx: %w", err)
	}

	src, err := tx.UsageRecord.Query().
		Where(entusage.Identity(fromIdentity)).
		Only(ctx)
	if err != nil {
		_ = tx.Rollback()
		if ent.IsNotFound(err) {
			// Nothing to migrate; the identity never used the pipeline.
			return nil
		}
		return fmt.Errorf("query source record: %w", err)
	}

	dst, err := tx.UsageRecord.Query().
		Where(entusage.Identity(toIdentity)).
		Only(ctx)
	switch {
	case err == nil:
		_, err = tx.UsageRecord.UpdateOne(dst).
			AddUsedCount(src.UsedCount).
			Save(ctx)
		if err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("merge usage counter: %w", err)
		}
	case ent.IsNotFound(err):
		// Carry the counter over for audit; unlimited quota means it
		// never gates again.
		_, err = tx.UsageRecord.Create().
			SetIdentity(toIdentity).
			SetIdentityKind("authenticated").
			SetUsedCount(src.UsedCount).
			SetQuota(-1).
			Save(ctx)
		if err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("create authenticated record: %w", err)
		}
	default:
		_ = tx.Rollback()
		return fmt.Errorf("query target record: %w", err)
	}

	if err := tx.UsageRecord.DeleteOne(src).Exec(ctx); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("remove anonymous record: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit migrate: %w", err)
	}
	return nil
}
