package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var signupCmd = &cobra.Command{
	Use:   "signup <user-id>",
	Short: "Convert the anonymous session into an authenticated identity",
	Long: `Migrates the current anonymous session's usage record to an authenticated
user. Authenticated identities have no generation quota.`,
	Args: cobra.ExactArgs(1),
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

		session, _ := cmd.Flags().GetString("session")
		if !cmd.Flags().Changed("session") {
			session = persistentSessionID(cmd)
		}
		user, err := svc.SignUp(cmd.Context(), session, args[0])
		if err != nil {
			return err
		}

		fmt.Printf("Signed up as %s. Generation is now unlimited.\n", user)
		return nil
	},
}
