package outfit

import (
	"math"
	"testing"
)

// almostEqual absorbs float rounding from the table multipliers
// (100*1.1 is not exactly 110 in binary).
func almostEqual(a, b float64) bool {
	return math.Abs(a-b) <= 1e-9
}

func TestCalcDamage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		dtype     DamageType
		dmg       float64
		shield    float64
		armour    float64
		knockback float64
	}{
		{name: "energy", dtype: DamageEnergy, dmg: 100, shield: 110, armour: 70, knockback: 0.1},
		{name: "kinetic", dtype: DamageKinetic, dmg: 100, shield: 80, armour: 120, knockback: 1.0},
		{name: "ion", dtype: DamageIon, dmg: 100, shield: 100, armour: 100, knockback: 0.4},
		// Radiation shield damage is a flat constant; it does not scale
		// with the raw value. Do not "fix" this without reading DESIGN.md.
		{name: "radiation", dtype: DamageRadiation, dmg: 100, shield: 0.15, armour: 100, knockback: 0.8},
		{name: "radiation large hit keeps constant shield term", dtype: DamageRadiation, dmg: 5000, shield: 0.15, armour: 5000, knockback: 0.8},
		{name: "unknown type yields zeros", dtype: DamageNull, dmg: 100},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			shield, armour, knockback := CalcDamage(tt.dtype, tt.dmg)
			if !almostEqual(shield, tt.shield) {
				t.Errorf("shield = %v; want %v", shield, tt.shield)
			}
			if !almostEqual(armour, tt.armour) {
				t.Errorf("armour = %v; want %v", armour, tt.armour)
			}
			if !almostEqual(knockback, tt.knockback) {
				t.Errorf("knockback = %v; want %v", knockback, tt.knockback)
			}
		})
	}
}

func TestParseDamageType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		token string
		want  DamageType
	}{
		{"energy", DamageEnergy},
		{"kinetic", DamageKinetic},
		{"ion", DamageIon},
		{"radiation", DamageRadiation},
		{"plasma", DamageNull},
		{"", DamageNull},
	}

	for _, tt := range tests {
		if got := ParseDamageType(tt.token); got != tt.want {
			t.Errorf("ParseDamageType(%q) = %v; want %v", tt.token, got, tt.want)
		}
	}
}
