package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/suraksha-net/suraksha/pkg/client"
)

func newAlertCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "alert",
		Short: "Manage stored alerts",
	}

	cmd.AddCommand(newAlertListCmd())
	cmd.AddCommand(newAlertGetCmd())
	cmd.AddCommand(newAlertVerifyCmd())
	cmd.AddCommand(newAlertDeleteCmd())

	return cmd
}

func newAlertListCmd() *cobra.Command {
	var category, severity, sourceID string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List alerts",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			page, err := apiClient.Alerts().List(ctx, &client.AlertListOptions{
				Category: category,
				Severity: severity,
				SourceID: sourceID,
			})
			if err != nil {
				return fmt.Errorf("failed to list alerts: %w", err)
			}

			format := getOutputFormat()
			if format != "table" {
				return printOutput(page)
			}

			t := NewTable("ID", "CATEGORY", "SEVERITY", "SOURCE", "CONTENT")
			for _, a := range page.Data {
				t.AddRow(
					a.ID,
					a.Category,
					formatSeverity(a.Severity),
					a.Source.Name,
					truncate(a.Content, 50),
				)
			}
			t.Render()
			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "filter by category")
	cmd.Flags().StringVar(&severity, "severity", "", "filter by severity")
	cmd.Flags().StringVar(&sourceID, "source", "", "filter by source ID")

	return cmd
}

func newAlertGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Get alert details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			a, err := apiClient.Alerts().Get(ctx, args[0])
			if err != nil {
				return fmt.Errorf("failed to get alert: %w", err)
			}

			format := getOutputFormat()
			if format != "table" {
				return printOutput(a)
			}

			fmt.Printf("ID:       %s\n", a.ID)
			fmt.Printf("Category: %s\n", a.Category)
			fmt.Printf("Severity: %s\n", formatSeverity(a.Severity))
			fmt.Printf("Source:   %s (%s)\n", a.Source.Name, a.Source.Kind)
			fmt.Printf("Location: %.4f, %.4f %s\n", a.Location.Lat, a.Location.Lng, a.Location.Address)
			if len(a.Tags) > 0 {
				fmt.Printf("Tags:     %s\n", strings.Join(a.Tags, ", "))
			}
			fmt.Printf("Content:  %s\n", a.Content)
			return nil
		},
	}
}

func newAlertVerifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify <id>",
		Short: "Verify a stored alert",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			result, err := apiClient.Verifications().VerifyAlert(ctx, args[0])
			if err != nil {
				return fmt.Errorf("failed to verify alert: %w", err)
			}

			return printResult(result)
		},
	}
}

func newAlertDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an alert",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			if err := apiClient.Alerts().Delete(ctx, args[0]); err != nil {
				return fmt.Errorf("failed to delete alert: %w", err)
			}

			fmt.Printf("Alert %s deleted\n", args[0])
			return nil
		},
	}
}
