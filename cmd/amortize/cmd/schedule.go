package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/iwvelando/amortize/internal/calculator"
	"github.com/iwvelando/amortize/internal/config"
	"github.com/iwvelando/amortize/pkg/constants"
	"github.com/iwvelando/amortize/pkg/frequency"
	"github.com/iwvelando/amortize/pkg/output"
	"github.com/iwvelando/amortize/pkg/validation"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

// frequencyValue lets flags take a frequency by name or number.
type frequencyValue struct {
	target *frequency.Frequency
}

var _ pflag.Value = frequencyValue{}

func (f frequencyValue) String() string {
	if f.target == nil || *f.target == 0 {
		return ""
	}
	return f.target.String()
}

func (f frequencyValue) Set(s string) error {
	parsed, err := frequency.Parse(s)
	if err != nil {
		return err
	}
	*f.target = parsed
	return nil
}

func (f frequencyValue) Type() string {
	return "frequency"
}

var (
	outputFormatFlag string
	loanFlags        = flagDefaults()
)

// flagDefaults leaves compounding unset so it follows --frequency.
func flagDefaults() config.Loan {
	loan := config.DefaultLoan()
	loan.CompoundingFrequency = 0
	return loan
}

var scheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Print amortization schedules",
	Long: `Print the amortization schedule of every loan in the configuration file.

When any loan flag is given, a single loan built from the flags (on top of
the defaults) is printed instead.`,
	Example: `  amortize schedule --config config.yaml
  amortize schedule --principal 25000 --rate 6.5 --years 5 --frequency bi-weekly
  amortize schedule --principal 10000 --output-format csv`,
	Args: cobra.NoArgs,
	RunE: runSchedule,
}

func init() {
	rootCmd.AddCommand(scheduleCmd)
	addOutputFormatFlag(scheduleCmd)

	flags := scheduleCmd.Flags()
	flags.StringVar(&loanFlags.Name, "name", constants.DefaultLoanName, "loan name")
	flags.Float64Var(&loanFlags.Principal, "principal", loanFlags.Principal, "loan amount")
	flags.Float64Var(&loanFlags.AnnualRate, "rate", loanFlags.AnnualRate, "nominal annual interest rate in percent")
	flags.Float64Var(&loanFlags.TermYears, "years", loanFlags.TermYears, "loan term in years")
	flags.Var(frequencyValue{&loanFlags.PaymentFrequency}, "frequency", "payments per year, by name or number")
	flags.Var(frequencyValue{&loanFlags.CompoundingFrequency}, "compounding", "compounding periods per year (default: payment frequency, at most monthly)")
}

func addOutputFormatFlag(cmd *cobra.Command) {
	cmd.Flags().StringVar(&outputFormatFlag, "output-format", "", "output format override: pretty, csv, json, yaml")
}

var loanFlagNames = []string{"name", "principal", "rate", "years", "frequency", "compounding"}

func runSchedule(cmd *cobra.Command, _ []string) error {
	conf, err := loadConfig(cmd)
	if err != nil {
		printError(cmd, "configuration", err)
		return err
	}

	for _, name := range loanFlagNames {
		if cmd.Flags().Changed(name) {
			conf.Loans = []config.Loan{loanFlags}
			conf.ApplyDefaults()
			break
		}
	}

	logger, err := initializeLogger(conf.Logging, logLevel)
	if err != nil {
		printError(cmd, "logger", err)
		return err
	}
	defer func() {
		_ = logger.Sync()
	}()

	outputFormat, err := resolveOutputFormat(conf)
	if err != nil {
		logger.Error(err.Error(), zap.String("op", "cmd.schedule"))
		return err
	}

	return renderLoans(cmd.Context(), logger, calculator.New(logger, nil), conf, outputFormat, cmd.OutOrStdout())
}

// resolveOutputFormat prefers the CLI override over the configuration.
func resolveOutputFormat(conf *config.Configuration) (string, error) {
	outputFormat := conf.Output.Format
	if outputFormatFlag != "" {
		outputFormat = outputFormatFlag
	}
	if outputFormat == "" {
		outputFormat = constants.OutputFormatPretty
	}
	if err := validation.ValidateOutputFormat(outputFormat); err != nil {
		return "", err
	}
	return outputFormat, nil
}

// renderLoans calculates every configured loan and writes the reports.
func renderLoans(ctx context.Context, logger *zap.Logger, calc *calculator.Calculator, conf *config.Configuration, outputFormat string, w io.Writer) error {
	const op = "cmd.renderLoans"

	for _, warning := range conf.ValidateConfiguration() {
		logger.Warn("Configuration warning: "+warning, zap.String("op", op))
	}

	if ctx == nil {
		ctx = context.Background()
	}
	calculations, err := calc.CalculateAll(ctx, conf)
	if err != nil {
		logger.Error("failed to calculate loans", zap.String("op", op), zap.Error(err))
		return fmt.Errorf("failed to calculate loans: %w", err)
	}

	if err := output.Write(w, outputFormat, calculator.Reports(calculations)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
