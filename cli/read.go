package cli

import (
	"fmt"
	"net/http"

	"github.com/spf13/cobra"
)

var readCmd = &cobra.Command{
	Use:   "read <id>",
	Short: "Read a todo",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		return client.Do(http.MethodGet, fmt.Sprintf("/v1/todos/%d", id), nil)
	},
}
