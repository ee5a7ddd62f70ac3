package cmd

import (
	"context"
	"fmt"
	"os"

	"member-reconcile/core/config"
	"member-reconcile/core/logger"
	"member-reconcile/feature/payments"
	"member-reconcile/feature/payments/report"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Flags for the run command; empty values fall back to configuration
	membersPath  string
	paymentsPath string
	outputPath   string
	reportFormat string
)

// runCmd executes the reconciliation pipeline once.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Reconcile member payments and print the report",
	Long: `Loads the member and payment sources, keeps payments whose member exists and
whose name agrees with the member register, writes the cleaned dataset and prints
the total paid amount and the highest paid member.

Examples:
  # Use configured paths (defaults under ./data)
  member-reconcile run

  # Explicit sources and JSON report
  member-reconcile run --members members.xlsx --payments paid.csv --format json`,
	RunE: runPipeline,
}

func init() {
	runCmd.Flags().StringVar(&membersPath, "members", "", "Member source file (.csv or .xlsx)")
	runCmd.Flags().StringVar(&paymentsPath, "payments", "", "Payment source file (.csv or .xlsx)")
	runCmd.Flags().StringVar(&outputPath, "output", "", "Cleaned dataset output path")
	runCmd.Flags().StringVar(&reportFormat, "format", "", "Report format: text, json or yaml")

	RootCmd.AddCommand(runCmd)
}

func runPipeline(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyRunFlags(&cfg.Pipeline)

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer l.Sync()

	svc, err := buildService(cfg, l)
	if err != nil {
		return err
	}

	l.Info("Starting reconciliation",
		zap.String("members", cfg.Pipeline.MembersPath),
		zap.String("payments", cfg.Pipeline.PaymentsPath),
	)

	run, err := svc.Run(ctx, payments.InputFromConfig(cfg.Pipeline))
	if err != nil {
		return err
	}

	return report.Render(os.Stdout, run.Summary, cfg.Pipeline.ReportFormat)
}

// applyRunFlags overrides pipeline configuration with explicitly set flags.
func applyRunFlags(p *payments.Config) {
	if membersPath != "" {
		p.MembersPath = membersPath
	}
	if paymentsPath != "" {
		p.PaymentsPath = paymentsPath
	}
	if outputPath != "" {
		p.OutputPath = outputPath
	}
	if reportFormat != "" {
		p.ReportFormat = reportFormat
	}
}
