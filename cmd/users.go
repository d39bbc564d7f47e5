package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/eugeneyalansky/slackshare/lib/config"
	"github.com/eugeneyalansky/slackshare/lib/directory"
	"github.com/spf13/cobra"
)

var usersRefresh bool

func init() {
	usersCmd.Flags().BoolVarP(&usersRefresh, "refresh", "r", false, "Refetch the directory instead of using the cache")
	rootCmd.AddCommand(usersCmd)
}

var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "List workspace members available as share targets",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		client, err := directory.New(cfg)
		if err != nil {
			return err
		}

		dir, err := client.GetDirectory(usersRefresh)
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tTEAM\tNAME")
		for _, entry := range dir {
			fmt.Fprintf(w, "%s\t%s\t%s\n", entry.ID, entry.Team, entry.Name)
		}
		return w.Flush()
	},
}
