package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/suraksha-net/suraksha/pkg/client"
)

func newVerifyCmd() *cobra.Command {
	var (
		content    string
		sourceID   string
		sourceName string
		sourceKind string
		verified   bool
		lat        float64
		lng        float64
		category   string
		severity   string
		fromFile   string
	)

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Verify an ad-hoc alert",
		Long: `Verify scores an alert without storing it. The alert is given either
inline via flags or as a JSON file with --file (an array in the file
triggers batch verification).`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			if fromFile != "" {
				return verifyFromFile(ctx, fromFile)
			}

			if content == "" {
				return fmt.Errorf("either --content or --file is required")
			}

			a := client.Alert{
				Content: content,
				Source: client.Source{
					ID:       sourceID,
					Name:     sourceName,
					Kind:     sourceKind,
					Verified: verified,
				},
				Location: client.Location{Lat: lat, Lng: lng},
				Category: category,
				Severity: severity,
			}

			result, err := apiClient.Verifications().Verify(ctx, a)
			if err != nil {
				return fmt.Errorf("failed to verify alert: %w", err)
			}

			return printResult(result)
		},
	}

	cmd.Flags().StringVar(&content, "content", "", "alert text to score")
	cmd.Flags().StringVar(&sourceID, "source-id", "cli", "source identifier")
	cmd.Flags().StringVar(&sourceName, "source-name", "cli", "source display name")
	cmd.Flags().StringVar(&sourceKind, "source-kind", "unknown", "source kind: official, user, media, unknown")
	cmd.Flags().BoolVar(&verified, "source-verified", false, "source carries a verification badge")
	cmd.Flags().Float64Var(&lat, "lat", 0, "event latitude")
	cmd.Flags().Float64Var(&lng, "lng", 0, "event longitude")
	cmd.Flags().StringVar(&category, "category", "other", "alert category")
	cmd.Flags().StringVar(&severity, "severity", "medium", "alert severity")
	cmd.Flags().StringVarP(&fromFile, "file", "f", "", "JSON file with one alert or an array of alerts")

	return cmd
}

func verifyFromFile(ctx context.Context, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	trimmed := strings.TrimSpace(string(data))
	if strings.HasPrefix(trimmed, "[") {
		var alerts []client.Alert
		if err := json.Unmarshal(data, &alerts); err != nil {
			return fmt.Errorf("failed to parse alerts: %w", err)
		}

		results, err := apiClient.Verifications().VerifyBatch(ctx, alerts)
		if err != nil {
			return fmt.Errorf("failed to verify batch: %w", err)
		}

		format := getOutputFormat()
		if format != "table" {
			return printOutput(results)
		}

		t := NewTable("ALERT", "VERDICT", "SCORE", "FLAGS")
		for _, r := range results {
			t.AddRow(
				r.AlertID,
				formatVerdict(r.IsVerified),
				fmt.Sprintf("%.2f", r.TrustScore.Overall),
				strings.Join(r.Flags, ","),
			)
		}
		t.Render()
		return nil
	}

	var a client.Alert
	if err := json.Unmarshal(data, &a); err != nil {
		return fmt.Errorf("failed to parse alert: %w", err)
	}

	result, err := apiClient.Verifications().Verify(ctx, a)
	if err != nil {
		return fmt.Errorf("failed to verify alert: %w", err)
	}

	return printResult(result)
}

func printResult(r *client.VerificationResult) error {
	format := getOutputFormat()
	if format != "table" {
		return printOutput(r)
	}

	fmt.Printf("Verdict:         %s\n", formatVerdict(r.IsVerified))
	fmt.Printf("Trust score:     %.2f\n", r.TrustScore.Overall)
	fmt.Printf("  Content:       %.2f\n", r.TrustScore.Content)
	fmt.Printf("  Source:        %.2f\n", r.TrustScore.Source)
	fmt.Printf("  Location:      %.2f\n", r.TrustScore.Location)
	fmt.Printf("  Temporal:      %.2f\n", r.TrustScore.Temporal)
	fmt.Printf("  Cross-ref:     %.2f\n", r.TrustScore.CrossReference)
	if len(r.Flags) > 0 {
		fmt.Printf("Flags:           %s\n", strings.Join(r.Flags, ", "))
	}
	fmt.Printf("Reasoning:       %s\n", r.Reasoning)
	for i, rec := range r.Recommendations {
		if i == 0 {
			fmt.Printf("Recommendations: %s\n", rec)
		} else {
			fmt.Printf("                 %s\n", rec)
		}
	}
	fmt.Printf("Processing:      %dms\n", r.ProcessingTime)
	return nil
}
