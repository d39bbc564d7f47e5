package cmd

import (
	"fmt"

	"github.com/eugeneyalansky/slackshare/lib/config"
	"github.com/eugeneyalansky/slackshare/lib/directory"
	"github.com/spf13/cobra"
)

func init() {
	cacheCmd.AddCommand(cacheClearCmd)
	cacheCmd.AddCommand(cachePathCmd)
	rootCmd.AddCommand(cacheCmd)
}

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Manage the local user directory cache",
}

var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove the cached user directory",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		return directory.NewCache(cfg.CachePath).Clear()
	},
}

var cachePathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the location of the cache file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), cfg.CachePath)
		return nil
	},
}
