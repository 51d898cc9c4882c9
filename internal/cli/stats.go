package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func newStatsCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show verification statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			stats, err := apiClient.Verifications().Stats(ctx, limit)
			if err != nil {
				return fmt.Errorf("failed to get verification stats: %w", err)
			}

			format := getOutputFormat()
			if format != "table" {
				return printOutput(stats)
			}

			fmt.Printf("Total verifications:  %d\n", stats.Total)
			fmt.Printf("Verified:             %d\n", stats.Verified)
			fmt.Printf("Flagged:              %d\n", stats.Flagged)
			fmt.Printf("Verification rate:    %.1f%%\n", stats.VerificationRate*100)
			fmt.Printf("Avg trust score:      %.2f\n", stats.AvgTrustScore)
			fmt.Printf("Avg processing time:  %.1fms\n", stats.AvgProcessingTime)

			if len(stats.CommonFlags) > 0 {
				fmt.Println()
				t := NewTable("FLAG", "COUNT")
				for _, f := range stats.CommonFlags {
					t.AddRow(f.Flag, fmt.Sprintf("%d", f.Count))
				}
				t.Render()
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "number of recent results to summarize")

	return cmd
}
