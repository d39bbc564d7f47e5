package cmd

import (
	"fmt"
	"os"

	"github.com/eugeneyalansky/slackshare/lib/config"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "slackshare",
	Short: "Share text snippets to Slack from the terminal",
}

func init() {
	cobra.OnInitialize(func() {
		_ = godotenv.Load()
		config.SetLogLevel()
	})

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")
	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
