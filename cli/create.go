package cli

import (
	"net/http"

	"github.com/spf13/cobra"

	"github.com/todolite/backend/api/transport"
)

var createCmd = &cobra.Command{
	Use:   "create <body>",
	Short: "Create a new todo",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		body := args[0]
		return client.Do(http.MethodPost, "/v1/todos", transport.CreateTodoRequest{Body: &body})
	},
}
