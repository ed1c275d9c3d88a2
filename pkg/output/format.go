// Package output provides utilities for formatting and displaying amortization results.
package output

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/iwvelando/amortize/pkg/constants"
	"github.com/iwvelando/amortize/pkg/format"
	"github.com/iwvelando/amortize/pkg/validation"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"
)

// Write renders reports in the named output format.
func Write(w io.Writer, outputFormat string, reports []Report) error {
	if err := validation.ValidateOutputFormat(outputFormat); err != nil {
		return err
	}

	switch outputFormat {
	case constants.OutputFormatCSV:
		return CsvFormat(w, reports)
	case constants.OutputFormatJSON:
		return JSONFormat(w, reports)
	case constants.OutputFormatYAML:
		return YAMLFormat(w, reports)
	default:
		return PrettyFormat(w, reports)
	}
}

// PrettyFormat outputs a human-readable rather than machine-readable table.
func PrettyFormat(w io.Writer, reports []Report) error {
	p := message.NewPrinter(language.English)
	for i, report := range reports {
		terms := report.Terms
		if _, err := p.Fprintf(w, "--- Amortization schedule for %s ---\n", report.Name); err != nil {
			return err
		}
		_, _ = p.Fprintf(w, "Loan amount:          $%.2f\n", terms.Principal)
		_, _ = p.Fprintf(w, "Annual rate:          %.2f%% compounded %s\n", terms.AnnualRatePercent, terms.CompoundingFrequency)
		_, _ = p.Fprintf(w, "Payments:             %d %s over %v years\n", report.NumPeriods, report.FrequencyText, terms.TermYears)
		_, _ = p.Fprintf(w, "Payment amount:       $%.2f\n", report.PaymentAmount)
		_, _ = p.Fprintf(w, "Total payment:        $%.2f\n", report.Summary.TotalPayment)
		_, _ = p.Fprintf(w, "Total interest:       $%.2f (%.2f%%)\n", report.Summary.TotalInterest, report.Summary.TotalInterestPercent)
		_, _ = p.Fprintf(w, "Monthly equivalent:   $%.2f vs $%.2f paying monthly\n",
			report.Comparison.MonthlyEquivalent, report.Comparison.MonthlyAmount)
		_, _ = p.Fprintf(w, "Savings per year:     $%.2f\n", report.Comparison.SavingsPerYear)
		for _, warning := range report.Warnings {
			_, _ = fmt.Fprintf(w, "Warning: %s\n", warning)
		}

		_, _ = fmt.Fprintf(w, "\n%-5s | %14s | %12s | %14s | %14s\n", "#", "Payment", "Interest", "Principal", "Balance")
		_, _ = fmt.Fprintf(w, "%-5s | %14s | %12s | %14s | %14s\n", "_", "_______", "________", "_________", "_______")
		for _, row := range report.cents {
			if row.IsInitial() {
				_, _ = fmt.Fprintf(w, "%-5s | %14s | %12s | %14s | %14s\n", "", "", "", "", format.Currency(row.Balance))
				continue
			}
			_, _ = fmt.Fprintf(w, "%-5d | %14s | %12s | %14s | %14s\n", row.Index,
				format.Currency(row.Amount), format.Currency(row.Interest),
				format.Currency(row.Principal), format.Currency(row.Balance))
		}
		if i < len(reports)-1 {
			_, _ = fmt.Fprintf(w, "\n")
		}
	}
	return nil
}

// CsvFormat outputs in comma-separated value format, one line per row of
// every report.
func CsvFormat(w io.Writer, reports []Report) error {
	writer := csv.NewWriter(w)
	if err := writer.Write([]string{"loan", "payment", "amount", "interest", "principal", "balance"}); err != nil {
		return err
	}
	for _, report := range reports {
		for _, row := range report.cents {
			record := []string{report.Name, "", "", "", "", row.Balance.StringFixed(constants.CurrencyPlaces)}
			if !row.IsInitial() {
				record[1] = strconv.Itoa(row.Index)
				record[2] = row.Amount.StringFixed(constants.CurrencyPlaces)
				record[3] = row.Interest.StringFixed(constants.CurrencyPlaces)
				record[4] = row.Principal.StringFixed(constants.CurrencyPlaces)
			}
			if err := writer.Write(record); err != nil {
				return err
			}
		}
	}
	writer.Flush()
	return writer.Error()
}

// CsvString returns the CSV rendering of reports.
func CsvString(reports []Report) string {
	var buf bytes.Buffer
	if err := CsvFormat(&buf, reports); err != nil {
		return ""
	}
	return buf.String()
}

// JSONFormat outputs the reports as an indented JSON array.
func JSONFormat(w io.Writer, reports []Report) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(reports)
}

// YAMLFormat outputs the reports as a YAML sequence.
func YAMLFormat(w io.Writer, reports []Report) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(reports); err != nil {
		return err
	}
	return encoder.Close()
}
