package markets

import (
	"dario.cat/mergo"
	"github.com/go-playground/validator/v10"

	"github.com/joefazee/marketview/models"
)

// Config represents the display configuration for the markets module
type Config struct {
	// FeePercentDecimals is the fraction width used for fee-rate
	// percentages.
	FeePercentDecimals int `env:"MARKET_FEE_PERCENT_DECIMALS" env-default:"4" validate:"min=0,max=8"`

	// SummaryPercentRounded is the rounded fraction width used in the
	// positions summary percentages.
	SummaryPercentRounded int `env:"MARKET_SUMMARY_PERCENT_ROUNDED" env-default:"2" validate:"min=0,max=2"`

	// ScalarDisplayDecimals is the fraction width of the scalar price gauge.
	ScalarDisplayDecimals int `env:"MARKET_SCALAR_DISPLAY_DECIMALS" env-default:"2" validate:"min=0,max=8"`

	// ScalarDisplayRounded is the rounded fraction width of the scalar
	// price gauge. Must not exceed ScalarDisplayDecimals.
	ScalarDisplayRounded int `env:"MARKET_SCALAR_DISPLAY_ROUNDED" env-default:"1" validate:"min=0,max=8"`
}

// GetDefaultConfig returns the default display configuration
func GetDefaultConfig() *Config {
	return &Config{
		FeePercentDecimals:    4,
		SummaryPercentRounded: 2,
		ScalarDisplayDecimals: 2,
		ScalarDisplayRounded:  1,
	}
}

// WithDefaults fills unset fields from the default configuration.
func (c *Config) WithDefaults() (*Config, error) {
	if err := mergo.Merge(c, GetDefaultConfig()); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate validates the display configuration
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return err
	}
	if c.ScalarDisplayRounded > c.ScalarDisplayDecimals {
		return models.ErrInvalidDisplayDecimals
	}
	return nil
}
