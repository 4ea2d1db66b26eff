// Package constants provides shared constants for the finhealth application.
package constants

// Financial constants
const (
	// MonthsPerYear is the number of months in a year
	MonthsPerYear = 12

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0

	// CurrencyTolerance is the tolerance for currency comparisons
	CurrencyTolerance = 0.01

	// DecimalPrecision is the precision for currency rounding (2 decimal places)
	DecimalPrecision = 100
)

// Profile defaults
const (
	// DefaultAge is assumed when no age is supplied
	DefaultAge = 30

	// DefaultCityTier is assumed when no city tier is supplied
	DefaultCityTier = "metro"
)

// Health index pillar ceilings. The five ceilings sum to 100.
const (
	SavingsPillarMax       = 30.0
	EMIPillarMax           = 20.0
	EmergencyFundPillarMax = 20.0
	ProtectionPillarMax    = 20.0
	InvestmentPillarMax    = 10.0
)

// Health index band cut points on the composite score.
const (
	BandVulnerableFloor = 30
	BandStableFloor     = 55
	BandSecureFloor     = 70
	BandStrongFloor     = 85
)

// Protection benchmarks. Health cover benchmarks are city-tier bases plus a
// per-dependent supplement; the life cover benchmark is a multiple of annual
// income.
const (
	HealthCoverBaseMetro    = 500000.0
	HealthCoverBaseTier2    = 400000.0
	HealthCoverBaseTier3    = 300000.0
	HealthCoverPerDependent = 200000.0

	LifeCoverIncomeMultiple = 10.0

	// AdequacyCap caps adequacy ratios before scoring (200%)
	AdequacyCap = 2.0
)

// InvestmentTargetExpenseMultiple sizes the long-term investment target as a
// multiple of annual expenses.
const InvestmentTargetExpenseMultiple = 10.0

// FIRE corpus multiples of annual expenses.
const (
	FireMultipleLean   = 20.0
	FireMultipleNormal = 25.0
	FireMultipleFat    = 30.0
)

// FIRE assumption defaults.
const (
	DefaultTargetAge          = 60
	DefaultAnnualReturnPct    = 12.0
	DefaultAnnualInflationPct = 6.0
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"

	// OutputFormatJSON is the machine-readable JSON output format
	OutputFormatJSON = "json"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"

	// DefaultServerConfigFile is the default server configuration file name
	DefaultServerConfigFile = "server-config.yaml"

	// DefaultDatabaseFile is the default SQLite database location
	DefaultDatabaseFile = "finhealth.db"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address for the API
	DefaultServerAddress = ":8080"

	// DefaultMaxBodySizeBytes is the default maximum request body size (256 KB)
	DefaultMaxBodySizeBytes int64 = 256 * 1024
)
