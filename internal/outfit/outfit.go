// Package outfit holds the ship equipment catalog: weapons, launchers,
// ammunition, ship modifications, afterburners, jammers and star maps.
// The catalog is loaded once at startup from the outfit data file and
// is read-only for the rest of the session.
package outfit

import (
	"fmt"

	"github.com/stardrifter/naevgo/internal/gfx"
)

// OutfitType is the classification tag of an outfit record. It selects
// which variant payload is valid; accessors always check the tag before
// touching a payload.
type OutfitType int

const (
	TypeNull OutfitType = iota
	TypeBolt
	TypeBeam
	TypeTurretBolt
	TypeTurretBeam
	TypeMissileDumb
	TypeMissileDumbAmmo
	TypeMissileSeek
	TypeMissileSeekAmmo
	TypeMissileSeekSmart
	TypeMissileSeekSmartAmmo
	TypeMissileSwarm
	TypeMissileSwarmAmmo
	TypeMissileSwarmSmart
	TypeMissileSwarmSmartAmmo
	TypeModification
	TypeAfterburner
	TypeJammer
	TypeMap

	typeSentinel
)

// Property bit flags.
const (
	// PropWeapSecondary marks an outfit that mounts in a secondary
	// weapon slot.
	PropWeapSecondary uint32 = 1 << 0
)

// outfitTypeFromString maps the `type` attribute of the data file to
// the classification tag. Checked for completeness at package init.
var outfitTypeFromString = map[string]OutfitType{
	"bolt":                     TypeBolt,
	"beam":                     TypeBeam,
	"turret bolt":              TypeTurretBolt,
	"turret beam":              TypeTurretBeam,
	"missile dumb":             TypeMissileDumb,
	"missile dumb ammo":        TypeMissileDumbAmmo,
	"missile seek":             TypeMissileSeek,
	"missile seek ammo":        TypeMissileSeekAmmo,
	"missile smart":            TypeMissileSeekSmart,
	"missile smart ammo":       TypeMissileSeekSmartAmmo,
	"missile swarm":            TypeMissileSwarm,
	"missile swarm ammo":       TypeMissileSwarmAmmo,
	"missile swarm smart":      TypeMissileSwarmSmart,
	"missile swarm smart ammo": TypeMissileSwarmSmartAmmo,
	"modification":             TypeModification,
	"afterburner":              TypeAfterburner,
	"jammer":                   TypeJammer,
	"map":                      TypeMap,
}

var outfitTypeNames = [typeSentinel]string{
	TypeNull:                  "NULL",
	TypeBolt:                  "Bolt Cannon",
	TypeBeam:                  "Beam Cannon",
	TypeTurretBolt:            "Bolt Turret",
	TypeTurretBeam:            "Beam Turret",
	TypeMissileDumb:           "Dumb Missile",
	TypeMissileDumbAmmo:       "Dumb Missile Ammunition",
	TypeMissileSeek:           "Seeker Missile",
	TypeMissileSeekAmmo:       "Seeker Missile Ammunition",
	TypeMissileSeekSmart:      "Smart Seeker Missile",
	TypeMissileSeekSmartAmmo:  "Smart Seeker Missile Ammunition",
	TypeMissileSwarm:          "Swarm Missile",
	TypeMissileSwarmAmmo:      "Swarm Missile Ammunition Pack",
	TypeMissileSwarmSmart:     "Smart Swarm Missile",
	TypeMissileSwarmSmartAmmo: "Smart Swarm Missile Ammunition Pack",
	TypeModification:          "Ship Modification",
	TypeAfterburner:           "Afterburner",
	TypeJammer:                "Jammer",
	TypeMap:                   "Map",
}

func init() {
	// A classification without a parse token would silently turn every
	// record of that type into TypeNull; catch it at startup instead.
	seen := make(map[OutfitType]bool, int(typeSentinel))
	for _, t := range outfitTypeFromString {
		seen[t] = true
	}
	for t := TypeNull + 1; t < typeSentinel; t++ {
		if !seen[t] {
			panic(fmt.Sprintf("outfit: type %q has no parse token", outfitTypeNames[t]))
		}
	}
}

// Variant payloads. Exactly one is non-nil per record, matching the
// classification tag.

type boltPayload struct {
	speed    float64
	delay    float64
	rng      float64
	accuracy float64
	energy   float64
	damage   float64
	dtype    DamageType
	gfxSpace *gfx.Texture
	spfx     int
	sound    int
}

type beamPayload struct {
	rng    float64
	turn   float64
	energy float64
	delay  float64
	damage float64
	dtype  DamageType
	colour string
}

type launcherPayload struct {
	delay int
	ammo  string // ammo outfit name, resolved by catalog lookup
}

type ammoPayload struct {
	duration float64
	lockon   float64
	resist   float64 // fraction, loaded as percent
	thrust   float64
	turn     float64
	speed    float64
	energy   float64
	damage   float64
	dtype    DamageType
	gfxSpace *gfx.Texture
	spfx     int
	sound    int
}

type modPayload struct {
	thrust float64
	turn   float64
	speed  float64

	armour float64
	shield float64
	energy float64
	fuel   float64

	// Regens are stored per second; the data file carries per minute.
	armourRegen float64
	shieldRegen float64
	energyRegen float64

	cargo int
}

type afterburnerPayload struct {
	rumble     float64
	sound      int
	thrustPerc float64 // stored as multiplier, 1 + pct/100
	thrustAbs  float64
	speedPerc  float64 // stored as multiplier, 1 + pct/100
	speedAbs   float64
	energy     float64
}

type mapPayload struct {
	radius int
}

type jammerPayload struct {
	rng    float64
	chance float64 // fraction, loaded as percent
	energy float64 // per second, loaded as per minute
}

// Outfit is a single catalog record.
type Outfit struct {
	name        string
	typ         OutfitType
	max         int
	tech        int
	mass        int
	price       int
	description string
	gfxStore    *gfx.Texture
	properties  uint32

	blt *boltPayload
	bem *beamPayload
	lau *launcherPayload
	amm *ammoPayload
	mod *modPayload
	afb *afterburnerPayload
	jam *jammerPayload
	mp  *mapPayload
}

func (o *Outfit) Name() string           { return o.name }
func (o *Outfit) Type() OutfitType       { return o.typ }
func (o *Outfit) Max() int               { return o.max }
func (o *Outfit) Tech() int              { return o.tech }
func (o *Outfit) Mass() int              { return o.mass }
func (o *Outfit) Price() int             { return o.price }
func (o *Outfit) Description() string    { return o.description }
func (o *Outfit) GfxStore() *gfx.Texture { return o.gfxStore }

// HasProp reports whether a property flag is set.
func (o *Outfit) HasProp(p uint32) bool { return o.properties&p != 0 }

// IsSecondary reports whether the outfit mounts in a secondary slot.
func (o *Outfit) IsSecondary() bool { return o.HasProp(PropWeapSecondary) }

// Category predicates. Pure tag-membership tests.

// IsWeapon reports a fixed-mount weapon (bolt or beam cannon).
func (o *Outfit) IsWeapon() bool {
	return o.typ == TypeBolt || o.typ == TypeBeam
}

// IsBolt reports a bolt weapon, fixed or turreted.
func (o *Outfit) IsBolt() bool {
	return o.typ == TypeBolt || o.typ == TypeTurretBolt
}

// IsBeam reports a beam weapon, fixed or turreted.
func (o *Outfit) IsBeam() bool {
	return o.typ == TypeBeam || o.typ == TypeTurretBeam
}

// IsLauncher reports a missile launcher of any kind.
func (o *Outfit) IsLauncher() bool {
	switch o.typ {
	case TypeMissileDumb, TypeMissileSeek, TypeMissileSeekSmart,
		TypeMissileSwarm, TypeMissileSwarmSmart:
		return true
	}
	return false
}

// IsAmmo reports launcher ammunition of any kind.
func (o *Outfit) IsAmmo() bool {
	switch o.typ {
	case TypeMissileDumbAmmo, TypeMissileSeekAmmo, TypeMissileSeekSmartAmmo,
		TypeMissileSwarmAmmo, TypeMissileSwarmSmartAmmo:
		return true
	}
	return false
}

// IsSeeker reports ammunition that homes on its target.
func (o *Outfit) IsSeeker() bool {
	switch o.typ {
	case TypeMissileSeekAmmo, TypeMissileSeekSmartAmmo,
		TypeMissileSwarmAmmo, TypeMissileSwarmSmartAmmo:
		return true
	}
	return false
}

// IsTurret reports a turreted weapon.
func (o *Outfit) IsTurret() bool {
	return o.typ == TypeTurretBolt || o.typ == TypeTurretBeam
}

// IsMod reports a ship modification.
func (o *Outfit) IsMod() bool { return o.typ == TypeModification }

// IsAfterburner reports an afterburner.
func (o *Outfit) IsAfterburner() bool { return o.typ == TypeAfterburner }

// IsJammer reports a missile jammer.
func (o *Outfit) IsJammer() bool { return o.typ == TypeJammer }

// IsMap reports a star map.
func (o *Outfit) IsMap() bool { return o.typ == TypeMap }

// Variant accessors. Each dispatches on the classification tag and
// returns a sentinel (nil, -1, DamageNull) for categories the value
// does not apply to. Callers must not confuse sentinels with valid
// zero values.

// Gfx returns the in-space sprite, or nil when the category has none.
func (o *Outfit) Gfx() *gfx.Texture {
	switch {
	case o.IsBolt():
		return o.blt.gfxSpace
	case o.IsAmmo():
		return o.amm.gfxSpace
	}
	return nil
}

// Spfx returns the impact effect id, or -1.
func (o *Outfit) Spfx() int {
	switch {
	case o.IsBolt():
		return o.blt.spfx
	case o.IsAmmo():
		return o.amm.spfx
	}
	return -1
}

// Damage returns the raw damage value, or -1.
func (o *Outfit) Damage() float64 {
	switch {
	case o.IsBolt():
		return o.blt.damage
	case o.IsBeam():
		return o.bem.damage
	case o.IsAmmo():
		return o.amm.damage
	}
	return -1
}

// DamageKind returns the damage type, or DamageNull.
func (o *Outfit) DamageKind() DamageType {
	switch {
	case o.IsBolt():
		return o.blt.dtype
	case o.IsBeam():
		return o.bem.dtype
	case o.IsAmmo():
		return o.amm.dtype
	}
	return DamageNull
}

// Delay returns the firing delay, or -1.
func (o *Outfit) Delay() float64 {
	switch {
	case o.IsBolt():
		return o.blt.delay
	case o.IsBeam():
		return o.bem.delay
	case o.IsLauncher():
		return float64(o.lau.delay)
	}
	return -1
}

// Energy returns the energy drain per shot, or -1.
func (o *Outfit) Energy() float64 {
	switch {
	case o.IsBolt():
		return o.blt.energy
	case o.IsBeam():
		return o.bem.energy
	case o.IsAmmo():
		return o.amm.energy
	}
	return -1
}

// Range returns the effective range, or -1. Ammunition range derives
// from how far it can fly before burning out.
func (o *Outfit) Range() float64 {
	switch {
	case o.IsBolt():
		return o.blt.rng
	case o.IsBeam():
		return o.bem.rng
	case o.IsAmmo():
		return 0.8 * o.amm.speed * o.amm.duration
	}
	return -1
}

// Speed returns the projectile speed, or -1.
func (o *Outfit) Speed() float64 {
	switch {
	case o.IsBolt():
		return o.blt.speed
	case o.IsAmmo():
		return o.amm.speed
	}
	return -1
}

// AmmoName returns the name of the ammunition a launcher fires, or ""
// for non-launchers. The link is by name; resolve it via Catalog.Get.
func (o *Outfit) AmmoName() string {
	if o.IsLauncher() {
		return o.lau.ammo
	}
	return ""
}

// TypeName returns the specific type label in human readable form.
func (o *Outfit) TypeName() string {
	if o.typ < 0 || o.typ >= typeSentinel {
		return outfitTypeNames[TypeNull]
	}
	return outfitTypeNames[o.typ]
}

// BroadTypeName returns the broad category label in human readable form.
func (o *Outfit) BroadTypeName() string {
	switch {
	case o.IsBolt():
		return "Bolt Weapon"
	case o.IsBeam():
		return "Beam Weapon"
	case o.IsLauncher():
		return "Launcher"
	case o.IsAmmo():
		return "Ammo"
	case o.IsTurret():
		return "Turret"
	case o.IsMod():
		return "Modification"
	case o.IsAfterburner():
		return "Afterburner"
	case o.IsJammer():
		return "Jammer"
	case o.IsMap():
		return "Map"
	}
	return "NULL"
}
