package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/iwvelando/amortize/pkg/constants"
	"github.com/iwvelando/amortize/pkg/frequency"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var paymentFrequency frequency.Frequency

var frequenciesCmd = &cobra.Command{
	Use:   "frequencies",
	Short: "List payment and compounding frequencies",
	Long: `List the recognized payment frequencies.

With --payment, list the compounding frequencies offered for that payment
frequency and the one used when none is given.`,
	Args: cobra.NoArgs,
	RunE: runFrequencies,
}

func init() {
	rootCmd.AddCommand(frequenciesCmd)
	addOutputFormatFlag(frequenciesCmd)
	frequenciesCmd.Flags().Var(frequencyValue{&paymentFrequency}, "payment", "payment frequency to list compounding options for")
}

type frequencyListing struct {
	Options            []frequency.Option `json:"options" yaml:"options"`
	DefaultCompounding *frequency.Option  `json:"defaultCompounding,omitempty" yaml:"defaultCompounding,omitempty"`
}

func listFrequencies(payment frequency.Frequency) frequencyListing {
	if payment == 0 {
		return frequencyListing{Options: frequency.Options()}
	}
	def := frequency.DefaultCompounding(payment)
	return frequencyListing{
		Options:            frequency.CompoundingOptions(payment),
		DefaultCompounding: &frequency.Option{Text: def.String(), Value: def},
	}
}

func runFrequencies(cmd *cobra.Command, _ []string) error {
	return writeFrequencies(cmd.OutOrStdout(), outputFormatFlag, listFrequencies(paymentFrequency))
}

func writeFrequencies(w io.Writer, outputFormat string, listing frequencyListing) error {
	switch outputFormat {
	case constants.OutputFormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(listing)
	case constants.OutputFormatYAML:
		return yaml.NewEncoder(w).Encode(listing)
	case constants.OutputFormatCSV:
		if _, err := fmt.Fprintln(w, "value,text"); err != nil {
			return err
		}
		for _, option := range listing.Options {
			if _, err := fmt.Fprintf(w, "%d,%s\n", option.Value, option.Text); err != nil {
				return err
			}
		}
		return nil
	case "", constants.OutputFormatPretty:
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		_, _ = fmt.Fprintln(tw, "PER YEAR\tNAME")
		for _, option := range listing.Options {
			_, _ = fmt.Fprintf(tw, "%d\t%s\n", option.Value, option.Text)
		}
		if err := tw.Flush(); err != nil {
			return err
		}
		if listing.DefaultCompounding != nil {
			_, err := fmt.Fprintf(w, "\nDefault compounding: %s\n", listing.DefaultCompounding.Text)
			return err
		}
		return nil
	default:
		return fmt.Errorf("invalid output format: %s", outputFormat)
	}
}
