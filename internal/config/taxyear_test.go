package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadTaxYear_Defaults(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	SetDefaults()

	year, err := LoadTaxYear()
	require.NoError(t, err)

	assert.Equal(t, 2021, year.Year)
	assert.Equal(t, 25100.0, year.StandardDeduction)
	assert.Equal(t, 142800.0, year.SSWageBase)
	assert.Equal(t, 0.062, year.SSRate)

	require.Len(t, year.Brackets, 7)
	assert.Equal(t, 0.0, year.Brackets[0].Threshold)
	assert.Equal(t, 0.10, year.Brackets[0].Rate)
	assert.Equal(t, 628300.0, year.Brackets[6].Threshold)
	assert.Equal(t, 0.37, year.Brackets[6].Rate)
	assert.NoError(t, year.Brackets.Validate())
}

func TestLoadTaxYear_RejectsInvalidBrackets(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	SetDefaults()
	viper.Set("tax.brackets", []map[string]float64{
		{"threshold": 100, "rate": 0.10},
	})

	_, err := LoadTaxYear()
	assert.Error(t, err)
}

func TestLoadGapConfig_Defaults(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	SetDefaults()

	cfg := LoadGapConfig()
	assert.Equal(t, 20, cfg.MaxIntervalDays)
	assert.Equal(t, 10000.0, cfg.TransitionMateriality)
	assert.Equal(t, 0.5, cfg.TransitionDropRatio)
}

func TestExpandPath(t *testing.T) {
	t.Setenv("PAYCALC_TEST_DIR", "/tmp/paycalc")

	assert.Equal(t, "/tmp/paycalc/db", ExpandPath("$PAYCALC_TEST_DIR/db"))
	assert.Equal(t, "", ExpandPath(""))
	assert.NotContains(t, ExpandPath("~/data"), "~")
}
