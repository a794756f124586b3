package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

var dueCmd = &cobra.Command{
	Use:   "due",
	Short: "List artifacts due for review",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		svc, err := newService(cmd.Context(), st, false)
		if err != nil {
			return err
		}

		due, err := svc.DueNow(cmd.Context(), time.Now(), limit)
		if err != nil {
			return err
		}
		if len(due) == 0 {
			fmt.Println("Nothing due. Come back later.")
			return nil
		}

		fmt.Printf("%-36s  %-15s  %-20s  %s\n", "ID", "Kind", "Category", "Question")
		fmt.Println(strings.Repeat("─", 110))
		for _, a := range due {
			q := a.Question
			if len(q) > 50 {
				q = q[:47] + "..."
			}
			fmt.Printf("%-36s  %-15s  %-20s  %s\n", a.ID, a.Kind, a.Category, q)
		}
		fmt.Printf("\n%d due.\n", len(due))
		return nil
	},
}

func init() {
	dueCmd.Flags().Int("limit", 20, "Maximum artifacts to list (0 = all)")
}
