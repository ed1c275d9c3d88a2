// Package constants provides shared constants for the amortize application.
package constants

import "time"

// Financial constants
const (
	// MonthsPerYear is the number of months in a year
	MonthsPerYear = 12

	// DecimalPrecision is the precision for currency rounding (2 decimal places)
	DecimalPrecision = 100

	// CurrencyPlaces is the number of decimal places kept for currency values
	CurrencyPlaces = 2

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0

	// CurrencyTolerance is the tolerance for currency comparisons (1 cent)
	CurrencyTolerance = 0.01

	// PeriodTolerance is how far termYears*paymentFrequency may sit from a whole
	// number of periods
	PeriodTolerance = 1e-9

	// MaxScheduleRows bounds the number of payment rows a schedule may hold.
	// 100 years of weekly payments fit comfortably.
	MaxScheduleRows = 10000
)

// Default loan inputs
const (
	// DefaultPrincipal is the default loan amount
	DefaultPrincipal = 10000.0

	// DefaultAnnualRatePercent is the default nominal annual interest rate
	DefaultAnnualRatePercent = 5.00

	// DefaultTermYears is the default length of the loan
	DefaultTermYears = 1.0

	// DefaultPaymentFrequency is the default number of payments per year
	DefaultPaymentFrequency = 12

	// DefaultCompoundingCap is the most frequent compounding period chosen by
	// default when none is configured
	DefaultCompoundingCap = 12

	// DefaultLoanName is used for loans that are not given a name
	DefaultLoanName = "default"
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"

	// OutputFormatJSON is the JSON output format
	OutputFormatJSON = "json"

	// OutputFormatYAML is the YAML output format
	OutputFormatYAML = "yaml"
)

// OutputFormats lists every supported output format.
var OutputFormats = []string{OutputFormatPretty, OutputFormatCSV, OutputFormatJSON, OutputFormatYAML}

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"

	// DefaultServerConfigFile is the default server configuration file name
	DefaultServerConfigFile = "server-config.yaml"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address for the API
	DefaultServerAddress = ":8080"

	// DefaultMaxUploadSizeBytes is the default maximum upload size for YAML configs (256 KB)
	DefaultMaxUploadSizeBytes int64 = 256 * 1024

	// DefaultShutdownTimeout is how long in-flight requests get to finish on shutdown
	DefaultShutdownTimeout = 30 * time.Second
)

// Cache defaults
const (
	// CacheBackendMemory keeps results in process memory
	CacheBackendMemory = "memory"

	// CacheBackendRedis keeps results in Redis
	CacheBackendRedis = "redis"

	// CacheBackendNone disables caching
	CacheBackendNone = "none"

	// DefaultCacheTTL is how long a cached result stays valid
	DefaultCacheTTL = 10 * time.Minute

	// DefaultCachePrefix namespaces cache keys
	DefaultCachePrefix = "amortize:"
)

// DefaultDebounce is the quiet period after an input change before recomputing.
const DefaultDebounce = 500 * time.Millisecond
