package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/krisrowe/pay-calc-sub001/internal/gaps"
	"github.com/krisrowe/pay-calc-sub001/internal/model"
)

// TaxYear holds the external tax parameters for one filing status and year.
// The engine never hardcodes these; other years and jurisdictions are a
// config file away.
type TaxYear struct {
	Brackets          model.TaxBracketSchedule
	Year              int
	StandardDeduction float64
	SSWageBase        float64
	SSRate            float64
}

// SetDefaults registers the shipped defaults: the MFJ 2021 bracket table and
// the biweekly-cycle gap thresholds.
func SetDefaults() {
	viper.SetDefault("tax.year", 2021)
	viper.SetDefault("tax.standard_deduction", 25100.0)
	viper.SetDefault("tax.ss_wage_base", 142800.0)
	viper.SetDefault("tax.ss_rate", 0.062)
	viper.SetDefault("tax.brackets", []map[string]float64{
		{"threshold": 0, "rate": 0.10},
		{"threshold": 19900, "rate": 0.12},
		{"threshold": 81050, "rate": 0.22},
		{"threshold": 172750, "rate": 0.24},
		{"threshold": 329850, "rate": 0.32},
		{"threshold": 418850, "rate": 0.35},
		{"threshold": 628300, "rate": 0.37},
	})

	defaults := gaps.DefaultConfig()
	viper.SetDefault("gaps.max_interval_days", defaults.MaxIntervalDays)
	viper.SetDefault("gaps.transition_materiality", defaults.TransitionMateriality)
	viper.SetDefault("gaps.transition_drop_ratio", defaults.TransitionDropRatio)

	viper.SetDefault("database.path", "~/.local/share/paycalc/paycalc.db")
}

// LoadTaxYear reads the tax-year parameters from viper and validates the
// bracket schedule.
func LoadTaxYear() (TaxYear, error) {
	var brackets []struct {
		Threshold float64 `mapstructure:"threshold"`
		Rate      float64 `mapstructure:"rate"`
	}
	if err := viper.UnmarshalKey("tax.brackets", &brackets); err != nil {
		return TaxYear{}, fmt.Errorf("failed to parse tax.brackets: %w", err)
	}

	schedule := make(model.TaxBracketSchedule, 0, len(brackets))
	for _, b := range brackets {
		schedule = append(schedule, model.TaxBracket{Threshold: b.Threshold, Rate: b.Rate})
	}
	if err := schedule.Validate(); err != nil {
		return TaxYear{}, fmt.Errorf("invalid tax.brackets: %w", err)
	}

	return TaxYear{
		Brackets:          schedule,
		Year:              viper.GetInt("tax.year"),
		StandardDeduction: viper.GetFloat64("tax.standard_deduction"),
		SSWageBase:        viper.GetFloat64("tax.ss_wage_base"),
		SSRate:            viper.GetFloat64("tax.ss_rate"),
	}, nil
}

// LoadGapConfig reads the gap-detection thresholds from viper.
func LoadGapConfig() gaps.Config {
	return gaps.Config{
		MaxIntervalDays:       viper.GetInt("gaps.max_interval_days"),
		TransitionMateriality: viper.GetFloat64("gaps.transition_materiality"),
		TransitionDropRatio:   viper.GetFloat64("gaps.transition_drop_ratio"),
	}
}

// DatabasePath resolves the configured SQLite path, expanding ~ and env vars.
func DatabasePath() string {
	return ExpandPath(viper.GetString("database.path"))
}
