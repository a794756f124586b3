package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var purgeCmd = &cobra.Command{
	Use:   "purge",
	Short: "Delete all generated artifacts",
	RunE: func(cmd *cobra.Command, args []string) error {
		force, _ := cmd.Flags().GetBool("force")
		if !force {
			fmt.Print("Delete every artifact and its review history? [y/N]: ")
			line, _ := bufio.NewReader(os.Stdin).ReadString('\n')
			if strings.ToLower(strings.TrimSpace(line)) != "y" {
				fmt.Println("Aborted.")
				return nil
			}
		}

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		svc, err := newService(cmd.Context(), st, false)
		if err != nil {
			return err
		}

		n, err := svc.Purge(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Printf("Deleted %d artifact(s).\n", n)
		return nil
	},
}

func init() {
	purgeCmd.Flags().Bool("force", false, "Skip the confirmation prompt")
}
