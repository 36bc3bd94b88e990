package cli

import (
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/todolite/backend/api/transport"
)

var updateCompleted bool

var updateCmd = &cobra.Command{
	Use:   "update <id> <body>",
	Short: "Update a todo",
	Long:  `Update replaces both body and completed on the todo; there are no partial updates.`,
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		body := args[1]
		completed := updateCompleted
		payload := transport.UpdateTodoRequest{Body: &body, Completed: &completed}
		return client.Do(http.MethodPut, fmt.Sprintf("/v1/todos/%d", id), payload)
	},
}

func init() {
	updateCmd.Flags().BoolVarP(&updateCompleted, "completed", "c", false, "Mark todo as completed")
}
