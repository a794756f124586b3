package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/abhisek/mindmorph/internal/entitlement"
	"github.com/abhisek/mindmorph/internal/llm"
	"github.com/abhisek/mindmorph/internal/pipeline"
	"github.com/abhisek/mindmorph/internal/progress"
	"github.com/abhisek/mindmorph/internal/spacedrep"
	"github.com/abhisek/mindmorph/internal/store"
	"github.com/abhisek/mindmorph/internal/study"
	"github.com/abhisek/mindmorph/internal/studygen"
)

// identityFromFlags resolves the acting identity: --user wins, then an
// explicit --session, then a session ID persisted next to the database so
// repeat invocations share one anonymous identity.
func identityFromFlags(cmd *cobra.Command) entitlement.Identity {
	if user, _ := cmd.Flags().GetString("user"); user != "" {
		return entitlement.Authenticated(user)
	}
	if cmd.Flags().Changed("session") {
		session, _ := cmd.Flags().GetString("session")
		return entitlement.Anonymous(session)
	}
	return entitlement.Anonymous(persistentSessionID(cmd))
}

// persistentSessionID loads or creates the session file beside the database.
// Falls back to the flag default if the data dir is unusable.
func persistentSessionID(cmd *cobra.Command) string {
	fallback, _ := cmd.Flags().GetString("session")

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fallback
	}
	sessionFile := filepath.Join(filepath.Dir(dbPath), "session")

	if data, err := os.ReadFile(sessionFile); err == nil {
		if id := strings.TrimSpace(string(data)); id != "" {
			return id
		}
	}

	id := uuid.NewString()
	if err := os.WriteFile(sessionFile, []byte(id+"\n"), 0o644); err != nil {
		return fallback
	}
	return id
}

// openStore opens the database selected by flags/env.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return st, nil
}

// newService wires a study.Service over the store. withLLM controls whether
// a real provider is built from the environment; commands that never
// generate pass false and work offline.
func newService(ctx context.Context, st *store.Store, withLLM bool) (*study.Service, error) {
	var provider llm.Provider
	if withLLM {
		p, err := llm.NewProviderFromEnv(ctx, st.EventRepo())
		if err != nil {
			return nil, fmt.Errorf("LLM provider not configured: %w", err)
		}
		provider = p
	} else {
		provider = llm.NewMockProvider()
	}

	gen := studygen.New(provider, studygen.DefaultConfig())
	gate := entitlement.NewGate(st.UsageRepo(), entitlement.DefaultQuota)
	runner := pipeline.NewRunner(gen, st.ArtifactRepo(), st.EventRepo())
	scheduler := spacedrep.NewScheduler(st.ArtifactRepo(), st.EventRepo())
	aggregator := progress.NewAggregator(st.ArtifactRepo(), st.EventRepo())

	return study.New(gate, runner, scheduler, aggregator, st.ArtifactRepo()), nil
}
