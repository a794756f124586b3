package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show the study dashboard",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		svc, err := newService(cmd.Context(), st, false)
		if err != nil {
			return err
		}

		stats, err := svc.Dashboard(cmd.Context(), identityFromFlags(cmd), time.Now())
		if err != nil {
			return err
		}

		fmt.Printf("Artifacts:     %d (%d new)\n", stats.TotalArtifacts, stats.NewCount)
		fmt.Printf("Mastery:       %d%%\n", stats.MasteryPercentage)
		fmt.Printf("Streak:        %d day(s)\n", stats.StreakDays)
		fmt.Printf("Due today:     %d\n", stats.DueToday)
		fmt.Printf("Due tomorrow:  %d\n", stats.DueTomorrow)
		fmt.Printf("Answered:      %d\n", stats.TotalAnswered)
		if len(stats.Badges) > 0 {
			fmt.Printf("Badges:        %s\n", strings.Join(stats.Badges, ", "))
		}
		return nil
	},
}
