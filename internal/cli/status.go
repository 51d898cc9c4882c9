package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show server status",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			status, err := apiClient.Health(ctx)
			if err != nil {
				return fmt.Errorf("server unreachable: %w", err)
			}

			format := getOutputFormat()
			if format != "table" {
				return printOutput(status)
			}

			fmt.Println("Suraksha Server")
			fmt.Println(strings.Repeat("=", 40))
			fmt.Printf("  Status:    %s\n", status["status"])
			fmt.Printf("  Database:  %s\n", status["database"])
			return nil
		},
	}
}
