// Package calculator runs the amortization engine for configured loans,
// logging each calculation and serving repeated terms from a cache.
package calculator

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/iwvelando/amortize/internal/cache"
	"github.com/iwvelando/amortize/internal/config"
	"github.com/iwvelando/amortize/pkg/amortization"
	"github.com/iwvelando/amortize/pkg/output"
	"go.uber.org/zap"
)

// Calculation is the result for one named loan.
type Calculation struct {
	Name     string
	Result   amortization.Result
	Warnings []string
	Cached   bool
}

// Calculator wraps amortization.Calculate with logging and caching.
type Calculator struct {
	logger *zap.Logger
	cache  cache.Cache
}

// New returns a Calculator. A nil logger discards logs and a nil cache
// disables caching.
func New(logger *zap.Logger, c cache.Cache) *Calculator {
	if logger == nil {
		logger = zap.NewNop()
	}
	if c == nil {
		c = cache.Nop{}
	}
	return &Calculator{logger: logger, cache: c}
}

// Calculate derives the schedule for terms. Cache failures are logged and
// the engine is run instead.
func (c *Calculator) Calculate(ctx context.Context, name string, terms amortization.LoanTerms) (Calculation, error) {
	const op = "calculator.Calculate"
	start := time.Now()

	calc := Calculation{Name: name, Warnings: terms.Warnings()}
	key := Key(terms)

	if data, ok, err := c.cache.Get(ctx, key); err != nil {
		c.logger.Warn("cache lookup failed",
			zap.String("op", op),
			zap.String("loan", name),
			zap.Error(err),
		)
	} else if ok {
		if err := json.Unmarshal(data, &calc.Result); err == nil {
			calc.Cached = true
			c.logger.Debug("calculation served from cache",
				zap.String("op", op),
				zap.String("loan", name),
				zap.String("key", key),
			)
			return calc, nil
		}
		c.logger.Warn("discarding unreadable cache entry",
			zap.String("op", op),
			zap.String("loan", name),
			zap.String("key", key),
		)
	}

	result, err := amortization.Calculate(terms)
	if err != nil {
		c.logger.Debug("calculation rejected",
			zap.String("op", op),
			zap.String("loan", name),
			zap.Error(err),
		)
		return Calculation{}, fmt.Errorf("loan %s: %w", name, err)
	}
	calc.Result = result

	if data, err := json.Marshal(result); err == nil {
		if err := c.cache.Set(ctx, key, data); err != nil {
			c.logger.Warn("cache store failed",
				zap.String("op", op),
				zap.String("loan", name),
				zap.Error(err),
			)
		}
	}

	c.logger.Debug("calculation complete",
		zap.String("op", op),
		zap.String("loan", name),
		zap.Int("payments", result.NumPeriods),
		zap.Float64("paymentAmount", result.PaymentAmount),
		zap.Duration("duration", time.Since(start)),
	)
	return calc, nil
}

// CalculateAll calculates every loan in the configuration in order and stops
// at the first loan that cannot be calculated.
func (c *Calculator) CalculateAll(ctx context.Context, conf *config.Configuration) ([]Calculation, error) {
	calculations := make([]Calculation, 0, len(conf.Loans))
	for _, loan := range conf.Loans {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		calc, err := c.Calculate(ctx, loan.Name, loan.Terms())
		if err != nil {
			return nil, err
		}
		calculations = append(calculations, calc)
	}

	c.logger.Info("loans calculated",
		zap.String("op", "calculator.CalculateAll"),
		zap.Int("loans", len(calculations)),
	)
	return calculations, nil
}

// Reports converts calculations into their presentation form.
func Reports(calculations []Calculation) []output.Report {
	reports := make([]output.Report, 0, len(calculations))
	for _, calc := range calculations {
		reports = append(reports, output.NewReport(calc.Name, calc.Result, calc.Warnings))
	}
	return reports
}

// Key identifies terms after defaults are applied, so terms that calculate
// identically share an entry.
func Key(terms amortization.LoanTerms) string {
	terms = terms.WithDefaults()
	parts := []string{
		"v1",
		strconv.FormatFloat(terms.Principal, 'g', -1, 64),
		strconv.FormatFloat(terms.AnnualRatePercent, 'g', -1, 64),
		strconv.Itoa(int(terms.CompoundingFrequency)),
		strconv.Itoa(int(terms.PaymentFrequency)),
		strconv.FormatFloat(terms.TermYears, 'g', -1, 64),
	}
	return strings.Join(parts, "|")
}
