package outfit

import "log/slog"

// DamageType classifies weapon damage for the shield/armour split.
type DamageType int

const (
	DamageNull DamageType = iota
	DamageEnergy
	DamageKinetic
	DamageIon
	DamageRadiation
)

// damageTypeFromString maps data-file tokens to damage types.
var damageTypeFromString = map[string]DamageType{
	"energy":    DamageEnergy,
	"kinetic":   DamageKinetic,
	"ion":       DamageIon,
	"radiation": DamageRadiation,
}

var damageTypeNames = map[DamageType]string{
	DamageNull:      "NULL",
	DamageEnergy:    "energy",
	DamageKinetic:   "kinetic",
	DamageIon:       "ion",
	DamageRadiation: "radiation",
}

// ParseDamageType resolves a data-file token to a damage type.
// Unknown tokens log a warning and yield DamageNull.
func ParseDamageType(s string) DamageType {
	if t, ok := damageTypeFromString[s]; ok {
		return t
	}
	slog.Warn("invalid damage type", "type", s)
	return DamageNull
}

func (d DamageType) String() string {
	if s, ok := damageTypeNames[d]; ok {
		return s
	}
	return "NULL"
}

// CalcDamage resolves raw weapon damage into effective shield damage,
// armour damage and a knockback modifier.
//
// Radiation shield damage is a flat 0.15 regardless of the raw value;
// shields soak almost all of it. See DESIGN.md before touching the table.
func CalcDamage(dtype DamageType, dmg float64) (shield, armour, knockback float64) {
	switch dtype {
	case DamageEnergy:
		return dmg * 1.1, dmg * 0.7, 0.1
	case DamageKinetic:
		return dmg * 0.8, dmg * 1.2, 1.0
	case DamageIon:
		return dmg, dmg, 0.4
	case DamageRadiation:
		return 0.15, dmg, 0.8
	default:
		slog.Warn("unknown damage type", "type", int(dtype))
		return 0, 0, 0
	}
}
