package cmd

import (
	"errors"
	"io"
	"os"

	"github.com/eugeneyalansky/slackshare/lib/config"
	"github.com/eugeneyalansky/slackshare/lib/directory"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(sendCmd)
}

// readSnippet collects the text to share. With no file argument, or with
// "-", it reads stdin to EOF.
func readSnippet(cmd *cobra.Command, args []string) (string, error) {
	if len(args) < 2 || args[1] == "-" {
		stdin, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", err
		}
		return string(stdin), nil
	}

	data, err := os.ReadFile(args[1])
	if err != nil {
		return "", err
	}
	return string(data), nil
}

var sendCmd = &cobra.Command{
	Use:   "send <to> [file]",
	Short: "Share a snippet with a channel or user",
	Long: `Share a snippet of text with a channel or user, wrapped in a monospace
block. The text comes from the given file, or from stdin when the file is
omitted or given as "-". The target is a raw channel or user ID, or @name
to look a user up by display name in the workspace directory.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		client, err := directory.New(cfg)
		if err != nil {
			return err
		}

		content, err := readSnippet(cmd, args)
		if err != nil {
			return err
		}
		if len(content) == 0 {
			return errors.New("nothing to share, input is empty")
		}

		to, err := client.ResolveRecipient(args[0])
		if err != nil {
			return err
		}

		return client.PostMessage(content, to)
	},
}
