// Package config defines the data structures related to configuration and
// includes functions for loading and validating the config.
package config

import (
	"fmt"

	"github.com/KatyGHub/finhealth-app/pkg/constants"
	"github.com/KatyGHub/finhealth-app/pkg/fire"
	"github.com/KatyGHub/finhealth-app/pkg/profile"
	"github.com/KatyGHub/finhealth-app/pkg/validation"
	"github.com/spf13/viper"
)

// Configuration holds all configuration for finhealth.
type Configuration struct {
	Profile     profile.Household `yaml:"profile"`
	Assumptions fire.Assumptions  `yaml:"assumptions,omitempty"`
	Logging     LoggingConfig     `yaml:"logging,omitempty"`
	Output      OutputConfig      `yaml:"output,omitempty"`
	Storage     StorageConfig     `yaml:"storage,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, csv, json
}

// StorageConfig holds checkpoint/action storage options.
type StorageConfig struct {
	DatabasePath string `yaml:"databasePath,omitempty"`
	UserID       string `yaml:"userId,omitempty"`
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there.
func LoadConfiguration(configPath string) (*Configuration, error) {
	viper.SetConfigFile(configPath)
	viper.AutomaticEnv()

	viper.SetConfigType("yml")

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	var configuration Configuration
	err := viper.Unmarshal(&configuration)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	configuration.applyDefaults()

	// A 0 rate written in the file is a deliberate assumption, not an unset
	// field; restore it after the defaults pass.
	if viper.IsSet("assumptions.annualReturnPct") && viper.GetFloat64("assumptions.annualReturnPct") == 0 {
		configuration.Assumptions.AnnualReturnPct = 0
	}
	if viper.IsSet("assumptions.annualInflationPct") && viper.GetFloat64("assumptions.annualInflationPct") == 0 {
		configuration.Assumptions.AnnualInflationPct = 0
	}

	return &configuration, nil
}

// applyDefaults normalizes the profile and fills in unset assumptions and
// storage options.
func (c *Configuration) applyDefaults() {
	c.Profile = c.Profile.Normalize()

	defaults := fire.DefaultAssumptions(c.Profile.Age)
	if c.Assumptions.CurrentAge <= 0 {
		c.Assumptions.CurrentAge = c.Profile.Age
	}
	if c.Assumptions.FireMultiple <= 0 {
		c.Assumptions.FireMultiple = defaults.FireMultiple
	}
	if c.Assumptions.TargetAge <= 0 {
		c.Assumptions.TargetAge = defaults.TargetAge
	}
	if c.Assumptions.AnnualReturnPct == 0 {
		c.Assumptions.AnnualReturnPct = defaults.AnnualReturnPct
	}
	if c.Assumptions.AnnualInflationPct == 0 {
		c.Assumptions.AnnualInflationPct = defaults.AnnualInflationPct
	}
	c.Assumptions = c.Assumptions.Normalize()

	if c.Storage.DatabasePath == "" {
		c.Storage.DatabasePath = constants.DefaultDatabaseFile
	}
	if c.Storage.UserID == "" {
		c.Storage.UserID = "default"
	}
}

// ValidateConfiguration performs general validation of the configuration and
// returns warnings.
func (c *Configuration) ValidateConfiguration() []string {
	warnings := validation.WarnProfile(c.Profile)

	a := c.Assumptions
	if a.TargetAge <= a.CurrentAge {
		warnings = append(warnings, fmt.Sprintf("Target age %d is not beyond current age %d; projection horizon is zero", a.TargetAge, a.CurrentAge))
	}
	if a.AnnualReturnPct > 15 {
		warnings = append(warnings, fmt.Sprintf("Expected return of %.1f%% is above the typical 8-15%% range", a.AnnualReturnPct))
	}
	if a.AnnualInflationPct > 8 {
		warnings = append(warnings, fmt.Sprintf("Inflation assumption of %.1f%% is above the typical 3-8%% range", a.AnnualInflationPct))
	}
	if a.AnnualReturnPct > 0 && a.AnnualInflationPct >= a.AnnualReturnPct {
		warnings = append(warnings, "Inflation assumption meets or exceeds expected return; real growth is non-positive")
	}

	return warnings
}
