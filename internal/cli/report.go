package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/suraksha-net/suraksha/pkg/client"
)

func newReportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Manage misinformation reports",
	}

	cmd.AddCommand(newReportSubmitCmd())
	cmd.AddCommand(newReportListCmd())

	return cmd
}

func newReportSubmitCmd() *cobra.Command {
	var reason, description, reporterID string

	cmd := &cobra.Command{
		Use:   "submit <alert-id>",
		Short: "Report an alert as misinformation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			result, err := apiClient.Reports().Submit(ctx, args[0], client.SubmitReportRequest{
				Reason:      reason,
				Description: description,
				ReporterID:  reporterID,
			})
			if err != nil {
				return fmt.Errorf("failed to submit report: %w", err)
			}

			fmt.Printf("Report %s submitted\n", result.ID)
			if result.NeedsReview {
				fmt.Println("Alert has crossed the report threshold and needs manual review")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&reason, "reason", "false_information", "reason: false_information, misleading, spam, outdated, other")
	cmd.Flags().StringVar(&description, "description", "", "free-text description")
	cmd.Flags().StringVar(&reporterID, "reporter", "", "reporter identifier")

	return cmd
}

func newReportListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List reports",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			page, err := apiClient.Reports().List(ctx, nil)
			if err != nil {
				return fmt.Errorf("failed to list reports: %w", err)
			}

			format := getOutputFormat()
			if format != "table" {
				return printOutput(page)
			}

			t := NewTable("ID", "ALERT", "REASON", "CREATED")
			for _, r := range page.Data {
				t.AddRow(
					r.ID,
					r.AlertID,
					r.Reason,
					r.CreatedAt.Format("2006-01-02 15:04:05"),
				)
			}
			t.Render()
			return nil
		},
	}
}
