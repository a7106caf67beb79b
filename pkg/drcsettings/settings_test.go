package drcsettings

import (
	"testing"

	"github.com/spf13/viper"
)

func TestDefaultsDisablesNothingByAccident(t *testing.T) {
	d := Defaults()
	if d.MinCopperWidth.IsZero() {
		t.Error("MinCopperWidth default should not be zero (would disable the check)")
	}
	if d.AllowedNpthSlots != SlotsAny || d.AllowedPthSlots != SlotsAny {
		t.Error("default slot policy should be permissive")
	}
}

func TestLoadViperRoundTripsDefaults(t *testing.T) {
	v := viper.New()
	SetDefaults(v)

	got := LoadViper(v)
	want := Defaults()
	if got.MinCopperWidth.Length() != want.MinCopperWidth.Length() {
		t.Errorf("MinCopperWidth = %v, want %v", got.MinCopperWidth.Length(), want.MinCopperWidth.Length())
	}
	if got.AllowedNpthSlots != want.AllowedNpthSlots {
		t.Errorf("AllowedNpthSlots = %v, want %v", got.AllowedNpthSlots, want.AllowedNpthSlots)
	}
}

func TestLoadViperHonorsOverride(t *testing.T) {
	v := viper.New()
	SetDefaults(v)
	v.Set(CfgMinCopperWidth, 0.2)
	v.Set(CfgAllowedPthSlots, "none")

	got := LoadViper(v)
	if got.MinCopperWidth.Length().Millimeters() != 0.2 {
		t.Errorf("MinCopperWidth = %v mm, want 0.2", got.MinCopperWidth.Length().Millimeters())
	}
	if got.AllowedPthSlots != SlotsNone {
		t.Errorf("AllowedPthSlots = %v, want SlotsNone", got.AllowedPthSlots)
	}
}
