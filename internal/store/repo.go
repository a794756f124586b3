package store

import (
	"context"
	"time"

	"github.com/abhisek/mindmorph/internal/artifact"
)

// ArtifactRepo is the persistence contract for generated artifacts and
// their embedded review state.
type ArtifactRepo interface {
	// SaveBatch commits a full batch of artifacts in a single transaction.
	// Either every artifact lands or none do.
	SaveBatch(ctx context.Context, batch []*artifact.Artifact) error

	// Get returns the artifact with the given ID, or ErrNotFound.
	Get(ctx context.Context, artifactID string) (*artifact.Artifact, error)

	// UpdateReview replaces an artifact's review state, guarded by the
	// version read with the prior state. Returns ErrConflict if a
	// concurrent update committed first, ErrNotFound if the artifact
	// no longer exists.
	UpdateReview(ctx context.Context, artifactID string, prevVersion int64, rs artifact.ReviewState) error

	// Due returns artifacts with dueAt <= now, ordered by dueAt ascending
	// with artifact ID as tie-break. limit <= 0 means no limit.
	Due(ctx context.Context, now time.Time, limit int) ([]*artifact.Artifact, error)

	// Counts derives the dashboard counters in one pass.
	Counts(ctx context.Context, now time.Time) (DashboardCounts, error)

	// Purge deletes every artifact and returns how many were removed.
	Purge(ctx context.Context) (int, error)
}

// DashboardCounts are the artifact-side dashboard numbers.
type DashboardCounts struct {
	Total       int
	Mastered    int // repetitions >= 2 and no lapses
	New         int // never reviewed
	DueToday    int // dueAt <= now
	DueTomorrow int // now < dueAt <= now+24h
}

// UsageRecord is one identity's consumption against the free quota.
type UsageRecord struct {
	Identity     string
	IdentityKind string // "anonymous" or "authenticated"
	UsedCount    int
	Quota        int // -1 means unlimited
	CreatedAt    time.Time
}

// UsageRepo is the persistence contract for per-identity usage records.
type UsageRepo interface {
	// Ensure creates the record if it does not exist yet. Safe to call
	// concurrently; losing the creation race is not an error.
	Ensure(ctx context.Context, identity, kind string, quota int) error

	// Consume atomically increments used_count if the record is under
	// quota (or unlimited). Returns the count after the call and whether
	// the consumption was allowed. A denied call mutates nothing.
	Consume(ctx context.Context, identity string) (used int, allowed bool, err error)

	// Get returns the record for an identity, or ErrNotFound.
	Get(ctx context.Context, identity string) (*UsageRecord, error)

	// Migrate moves an anonymous record's counter into an authenticated
	// record (created with unlimited quota if absent) and removes the
	// anonymous row. Missing source is not an error.
	Migrate(ctx context.Context, fromIdentity, toIdentity string) error
}

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// ReviewEventData captures one answer for the append-only review log.
type ReviewEventData struct {
	Identity     string
	ArtifactID   string
	Kind         string
	Correct      bool
	Day          string // YYYY-MM-DD, UTC
	IntervalDays float64
	EaseFactor   float64
	Repetitions  int
}

// ReviewTotals aggregates the review log for badge evaluation.
type ReviewTotals struct {
	Total   int
	Correct int
	ByKind  map[string]int
}

// PipelineRunEventData captures the terminal outcome of one pipeline run.
type PipelineRunEventData struct {
	RunID         string
	ContentUnitID string
	Identity      string
	SourceKind    string
	Status        string // "succeeded", "failed", "cancelled"
	FailedStage   string
	ErrorMessage  string
	ArtifactCount int
	DurationMs    int64
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMEventRecord is a stored LLM request event.
type LLMEventRecord struct {
	ID           int
	Sequence     int64
	Timestamp    time.Time
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMPurposeUsage aggregates token usage for one purpose label.
type LLMPurposeUsage struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// LLMModelUsage aggregates token usage for one model.
type LLMModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendReview records an answer in the review log.
	AppendReview(ctx context.Context, data ReviewEventData) error

	// ReviewDays returns the distinct calendar days (YYYY-MM-DD, UTC) on
	// which the identity reviewed at least one artifact, newest first.
	ReviewDays(ctx context.Context, identity string) ([]string, error)

	// ReviewTotals aggregates the identity's review log.
	ReviewTotals(ctx context.Context, identity string) (ReviewTotals, error)

	// AppendPipelineRun records a terminal pipeline run outcome.
	AppendPipelineRun(ctx context.Context, data PipelineRunEventData) error

	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns stored LLM events, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEventRecord, error)

	// GetLLMEvent returns one LLM event by row ID, or nil if absent.
	GetLLMEvent(ctx context.Context, id int) (*LLMEventRecord, error)

	// LLMUsageByPurpose aggregates LLM usage grouped by purpose label.
	LLMUsageByPurpose(ctx context.Context) ([]LLMPurposeUsage, error)

	// LLMUsageByModel aggregates LLM usage grouped by model.
	LLMUsageByModel(ctx context.Context) ([]LLMModelUsage, error)
}
