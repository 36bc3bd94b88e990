package cli

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

// client is built from the base-url argument before cobra dispatches.
var client *Client

var rootCmd = &cobra.Command{
	Use:   "todoctl <base-url> <command>",
	Short: "Command-line client for the todolite API",
	Long: `todoctl issues requests against a running todolite server.

The first argument is the base URL of the API service, for example
http://127.0.0.1:3000; the command's fixed route path is appended to it.
Response bodies go to stdout (pretty-printed when JSON), status and
content-type go to stderr.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		switch cmd.Name() {
		case "help", "completion":
			return nil
		}
		if client == nil {
			return fmt.Errorf("base URL is required: todoctl <base-url> %s", cmd.Name())
		}
		return nil
	},
}

// Execute pulls the leading base-url argument off the command line, then
// hands the rest to cobra. Exits non-zero on any failure.
func Execute(args []string) {
	if len(args) > 0 && !strings.HasPrefix(args[0], "-") && args[0] != "help" && args[0] != "completion" {
		c, err := NewClient(args[0], os.Stdout, os.Stderr)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		client = c
		args = args[1:]
	}

	rootCmd.SetArgs(args)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(createCmd)
	rootCmd.AddCommand(readCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(deleteCmd)
}

func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid todo id %q", arg)
	}
	return id, nil
}
