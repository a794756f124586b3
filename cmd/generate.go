package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/mindmorph/internal/content"
	"github.com/abhisek/mindmorph/internal/entitlement"
	"github.com/abhisek/mindmorph/internal/pipeline"
	"github.com/abhisek/mindmorph/internal/study"
)

var generateCmd = &cobra.Command{
	Use:   "generate [file]",
	Short: "Generate study items from text",
	Long: `Generate flashcards, multiple-choice questions, and fill-in-the-blank items
from study material. Reads the given file, or stdin when no file is given.
Paragraphs separated by blank lines become separate segments.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sourceVal, _ := cmd.Flags().GetString("source")
		source := content.SourceKind(sourceVal)
		if !source.Valid() {
			return fmt.Errorf("unknown source kind %q (text, document, or audio)", sourceVal)
		}

		blob, err := readInput(args)
		if err != nil {
			return err
		}

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		ctx := cmd.Context()
		svc, err := newService(ctx, st, true)
		if err != nil {
			return err
		}

		id := identityFromFlags(cmd)
		run, err := svc.SubmitContent(ctx, id, content.Split(blob), source)
		switch {
		case errors.Is(err, entitlement.ErrQuotaExceeded):
			return fmt.Errorf("free quota exhausted; sign up with 'mindmorph signup' to continue")
		case errors.Is(err, pipeline.ErrEmptyContent):
			return fmt.Errorf("input contains no text to study")
		case err != nil:
			return err
		}

		if err := watchRun(svc, run); err != nil {
			return err
		}

		snap := run.Snapshot()
		fmt.Printf("Generated %d study items.\n", snap.ArtifactCount)
		return nil
	},
}

func init() {
	generateCmd.Flags().String("source", string(content.SourceText), "Source kind: text, document, or audio")
}

// readInput loads the material from the named file or stdin.
func readInput(args []string) (string, error) {
	if len(args) == 1 && args[0] != "-" {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		return string(data), nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return string(data), nil
}

// watchRun polls the run and prints stage transitions until it finishes.
func watchRun(svc *study.Service, run *pipeline.Run) error {
	lastStage := ""
	ticker := time.NewTicker(200 * time.Millisecond)
	defer ticker.Stop()

	for {
		snap, err := svc.PollProgress(run.ID())
		if err != nil {
			return err
		}
		if snap.Stage != "" && snap.Stage != lastStage {
			fmt.Printf("[%3d%%] %s\n", snap.Percent, snap.Stage)
			lastStage = snap.Stage
		}
		if snap.Status.Terminal() {
			if snap.Err != nil {
				return snap.Err
			}
			fmt.Printf("[100%%] done\n")
			return nil
		}
		select {
		case <-run.Done():
		case <-ticker.C:
		}
	}
}
