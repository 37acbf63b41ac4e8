package reference

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountries_PanelShape(t *testing.T) {
	profiles := Countries()
	assert.Len(t, profiles, 65)

	regions := make(map[string]bool)
	for _, p := range profiles {
		regions[p.Region] = true
	}
	assert.Len(t, regions, 12)
}

func TestValidate_BuiltinPanel(t *testing.T) {
	require.NoError(t, Validate(Countries()))
}

func TestValidate_Rejections(t *testing.T) {
	base := CountryProfile{
		Name:         "Atlantis",
		Region:       "Europe",
		Population:   1000000,
		GDPPerCapita: 30000,
		Maturity:     MaturityMature,
	}

	tests := []struct {
		name    string
		mutate  func(p *CountryProfile)
		wantErr string
	}{
		{
			name:    "non-positive population",
			mutate:  func(p *CountryProfile) { p.Population = 0 },
			wantErr: "non-positive population",
		},
		{
			name:    "negative gdp",
			mutate:  func(p *CountryProfile) { p.GDPPerCapita = -1 },
			wantErr: "non-positive GDP",
		},
		{
			name:    "unknown region",
			mutate:  func(p *CountryProfile) { p.Region = "Atlantic" },
			wantErr: "unknown region",
		},
		{
			name:    "unknown maturity",
			mutate:  func(p *CountryProfile) { p.Maturity = "booming" },
			wantErr: "unknown maturity",
		},
		{
			name:    "empty name",
			mutate:  func(p *CountryProfile) { p.Name = "" },
			wantErr: "empty name",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := base
			tt.mutate(&p)
			err := Validate([]CountryProfile{p})
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidate_DuplicateCountry(t *testing.T) {
	p := Countries()[0]
	err := Validate([]CountryProfile{p, p})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate country")
}

func TestValidate_Empty(t *testing.T) {
	require.Error(t, Validate(nil))
}

func TestRegionalTables_CoverEveryRegion(t *testing.T) {
	for _, region := range Regions() {
		_, ok := RegionalMultiplier(region)
		assert.True(t, ok, "regional multiplier missing for %s", region)

		curve, ok := SeasonalCurve(region)
		require.True(t, ok, "seasonal curve missing for %s", region)
		for month, m := range curve {
			assert.Greater(t, m, 0.0, "%s month %d", region, month+1)
		}
	}
}

func TestYearFactor_CoversPanelYears(t *testing.T) {
	require.NoError(t, ValidateYears(Years))

	f, ok := YearFactor(2018)
	require.True(t, ok)
	assert.Equal(t, 1.0, f)

	f, ok = YearFactor(2020)
	require.True(t, ok)
	assert.Equal(t, 0.3, f)

	_, ok = YearFactor(2017)
	assert.False(t, ok)
}

func TestValidateYears_Rejections(t *testing.T) {
	assert.Error(t, ValidateYears(nil))
	assert.Error(t, ValidateYears([]int{2017}))
	assert.Error(t, ValidateYears([]int{2018, 2020}))
}
