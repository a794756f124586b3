package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/mindmorph/internal/artifact"
	"github.com/abhisek/mindmorph/internal/study"
)

var reviewCmd = &cobra.Command{
	Use:   "review [artifact-id]",
	Short: "Review due artifacts interactively, or record one answer directly",
	Long: `Without arguments, walks through the due queue interactively.
With an artifact ID and --correct or --wrong, records a single answer
non-interactively (for scripting).`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		ctx := cmd.Context()
		svc, err := newService(ctx, st, false)
		if err != nil {
			return err
		}

		if len(args) == 1 {
			return answerDirect(cmd, svc, args[0])
		}

		due, err := svc.DueNow(ctx, time.Now(), limit)
		if err != nil {
			return err
		}
		if len(due) == 0 {
			fmt.Println("Nothing due. Come back later.")
			return nil
		}

		id := identityFromFlags(cmd)
		reader := bufio.NewReader(os.Stdin)
		correctCount := 0

		for i, a := range due {
			fmt.Printf("\n(%d/%d) [%s] %s\n", i+1, len(due), a.Category, a.Question)
			if a.Kind == artifact.KindMultipleChoice {
				for j, opt := range a.Options {
					fmt.Printf("  %d. %s\n", j+1, opt)
				}
			}

			fmt.Print("Press enter to reveal the answer (q to quit): ")
			line, _ := reader.ReadString('\n')
			if strings.TrimSpace(line) == "q" {
				break
			}
			fmt.Println("Answer:", a.Answer)

			correct, quit := askCorrect(reader)
			if quit {
				break
			}

			rs, err := svc.Answer(ctx, id, a.ID, correct, time.Now())
			if err != nil {
				return err
			}
			if correct {
				correctCount++
				fmt.Printf("Next review in %.3g day(s).\n", rs.IntervalDays)
			} else {
				fmt.Println("Back tomorrow.")
			}
		}

		fmt.Printf("\nSession done: %d correct.\n", correctCount)
		return nil
	},
}

func init() {
	reviewCmd.Flags().Int("limit", 20, "Maximum artifacts per session (0 = all)")
	reviewCmd.Flags().Bool("correct", false, "Record the answer as correct (with an artifact ID)")
	reviewCmd.Flags().Bool("wrong", false, "Record the answer as incorrect (with an artifact ID)")
}

// answerDirect records one answer for the named artifact without prompting.
func answerDirect(cmd *cobra.Command, svc *study.Service, artifactID string) error {
	correct, _ := cmd.Flags().GetBool("correct")
	wrong, _ := cmd.Flags().GetBool("wrong")
	if correct == wrong {
		return fmt.Errorf("pass exactly one of --correct or --wrong with an artifact ID")
	}

	rs, err := svc.Answer(cmd.Context(), identityFromFlags(cmd), artifactID, correct, time.Now())
	if err != nil {
		return err
	}
	fmt.Printf("Recorded. Repetitions %d, next review in %.3g day(s).\n", rs.Repetitions, rs.IntervalDays)
	return nil
}

// askCorrect prompts for the self-graded result.
func askCorrect(reader *bufio.Reader) (correct, quit bool) {
	for {
		fmt.Print("Did you get it right? [y/n/q]: ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return false, true
		}
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "y", "yes":
			return true, false
		case "n", "no":
			return false, false
		case "q":
			return false, true
		}
	}
}
