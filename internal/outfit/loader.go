package outfit

import (
	"encoding/xml"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/stardrifter/naevgo/internal/gfx"
	"github.com/stardrifter/naevgo/internal/sfx"
)

const (
	gfxStoreDir = "gfx/outfit/store/"
	gfxSpaceDir = "gfx/outfit/space/"
)

// XML document structures. One struct carries the union of every
// variant's children; the per-type build routines read only the fields
// valid for the resolved classification. Pointer fields distinguish
// "absent" from "zero" where the distinction matters.

type xmlOutfits struct {
	XMLName xml.Name    `xml:"Outfits"`
	Outfits []xmlOutfit `xml:"outfit"`
}

type xmlOutfit struct {
	Name     string       `xml:"name,attr"`
	General  *xmlGeneral  `xml:"general"`
	Specific *xmlSpecific `xml:"specific"`
}

type xmlGeneral struct {
	Max         int    `xml:"max"`
	Tech        int    `xml:"tech"`
	Mass        int    `xml:"mass"`
	Price       int    `xml:"price"`
	Description string `xml:"description"`
	GfxStore    string `xml:"gfx_store"`
}

type xmlDamage struct {
	Type  string  `xml:"type,attr"`
	Value float64 `xml:",chardata"`
}

type xmlSpecific struct {
	Type      string `xml:"type,attr"`
	Secondary string `xml:"secondary,attr"`

	Speed    *float64 `xml:"speed"`
	Delay    *float64 `xml:"delay"`
	Range    *float64 `xml:"range"`
	Accuracy *float64 `xml:"accuracy"`
	Energy   *float64 `xml:"energy"`
	Turn     *float64 `xml:"turn"`

	Duration *float64 `xml:"duration"`
	Lockon   *float64 `xml:"lockon"`
	Resist   *float64 `xml:"resist"`
	Thrust   *float64 `xml:"thrust"`

	Armour      *float64 `xml:"armour"`
	Shield      *float64 `xml:"shield"`
	Fuel        *float64 `xml:"fuel"`
	ArmourRegen *float64 `xml:"armour_regen"`
	ShieldRegen *float64 `xml:"shield_regen"`
	EnergyRegen *float64 `xml:"energy_regen"`
	Cargo       *int     `xml:"cargo"`

	Rumble     *float64 `xml:"rumble"`
	ThrustPerc *float64 `xml:"thrust_perc"`
	ThrustAbs  *float64 `xml:"thrust_abs"`
	SpeedPerc  *float64 `xml:"speed_perc"`
	SpeedAbs   *float64 `xml:"speed_abs"`

	Radius *int     `xml:"radius"`
	Chance *float64 `xml:"chance"`

	Gfx    string     `xml:"gfx"`
	Spfx   string     `xml:"spfx"`
	Sound  string     `xml:"sound"`
	Ammo   string     `xml:"ammo"`
	Damage *xmlDamage `xml:"damage"`
}

// Load reads the outfit data file and builds the catalog. Structural
// problems (unreadable file, wrong root element, empty body) are fatal;
// per-record field problems only warn.
func Load(path string, gm *gfx.Manager, sr *sfx.Registry) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading outfit data %s: %w", path, err)
	}
	return Parse(data, gm, sr)
}

// Parse builds the catalog from raw outfit document bytes.
func Parse(data []byte, gm *gfx.Manager, sr *sfx.Registry) (*Catalog, error) {
	var doc xmlOutfits
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("malformed outfit data: %w", err)
	}
	if len(doc.Outfits) == 0 {
		return nil, fmt.Errorf("malformed outfit data: document contains no outfit elements")
	}

	c := &Catalog{
		byName: make(map[string]*Outfit, len(doc.Outfits)),
		gfx:    gm,
	}
	for i := range doc.Outfits {
		o := parseOutfit(&doc.Outfits[i], gm, sr)
		// Nameless records are kept but never indexed; Get cannot
		// address them.
		if o.name != "" {
			if _, dup := c.byName[o.name]; dup {
				slog.Warn("duplicate outfit name", "name", o.name)
			} else {
				c.byName[o.name] = o
			}
		}
		c.outfits = append(c.outfits, o)
	}

	slog.Info("loaded outfits", "count", len(c.outfits))
	return c, nil
}

// warnMissing logs the standard missing/invalid element warning.
func warnMissing(cond bool, name, elem string) {
	if cond {
		slog.Warn("outfit missing/invalid element", "outfit", name, "element", elem)
	}
}

func parseOutfit(x *xmlOutfit, gm *gfx.Manager, sr *sfx.Registry) *Outfit {
	o := &Outfit{name: x.Name}
	if o.name == "" {
		slog.Warn("outfit has invalid or no name")
	}

	if g := x.General; g != nil {
		o.max = g.Max
		o.tech = g.Tech
		o.mass = g.Mass
		o.price = g.Price
		o.description = g.Description
		if g.GfxStore != "" {
			o.gfxStore = gm.NewImage(gfxStoreDir + g.GfxStore + ".png")
		}
	}

	if s := x.Specific; s != nil {
		if s.Type == "" {
			slog.Warn("outfit specific block missing type", "outfit", o.name)
		} else if t, ok := outfitTypeFromString[s.Type]; ok {
			o.typ = t
		} else {
			slog.Warn("invalid outfit type", "outfit", o.name, "type", s.Type)
		}

		if s.Secondary != "" {
			if n, _ := strconv.Atoi(s.Secondary); n != 0 {
				o.properties |= PropWeapSecondary
			}
		}

		switch {
		case o.typ == TypeNull:
			slog.Warn("outfit is of type NONE", "outfit", o.name)
		case o.IsBolt():
			parseBolt(o, s, gm, sr)
		case o.IsBeam():
			parseBeam(o, s)
		case o.IsLauncher():
			parseLauncher(o, s)
		case o.IsAmmo():
			parseAmmo(o, s, gm, sr)
		case o.IsMod():
			parseMod(o, s)
		case o.IsAfterburner():
			parseAfterburner(o, s, sr)
		case o.IsMap():
			parseMap(o, s)
		case o.IsJammer():
			parseJammer(o, s)
		}
	}

	warnMissing(o.max == 0, o.name, "max")
	warnMissing(o.tech == 0, o.name, "tech")
	warnMissing(o.gfxStore == nil, o.name, "gfx_store")
	warnMissing(o.typ == TypeNull, o.name, "type")
	warnMissing(o.price == 0, o.name, "price")
	warnMissing(o.description == "", o.name, "description")

	return o
}

func fval(p *float64) float64 {
	if p == nil {
		return 0
	}
	return *p
}

func ival(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}

func parseDamage(x *xmlDamage) (DamageType, float64) {
	if x == nil {
		return DamageNull, 0
	}
	return ParseDamageType(x.Type), x.Value
}

func parseBolt(o *Outfit, s *xmlSpecific, gm *gfx.Manager, sr *sfx.Registry) {
	b := &boltPayload{spfx: -1, sound: -1}
	b.speed = fval(s.Speed)
	b.delay = fval(s.Delay)
	b.rng = fval(s.Range)
	b.accuracy = fval(s.Accuracy)
	b.energy = fval(s.Energy)
	if s.Gfx != "" {
		b.gfxSpace = gm.NewSprite(gfxSpaceDir+s.Gfx+".png", 6, 6)
	}
	if s.Spfx != "" {
		b.spfx = sr.Spfx(s.Spfx)
	}
	if s.Sound != "" {
		b.sound = sr.Sound(s.Sound)
	}
	b.dtype, b.damage = parseDamage(s.Damage)
	o.blt = b

	warnMissing(b.gfxSpace == nil, o.name, "gfx")
	warnMissing(b.sound < 0, o.name, "sound")
	warnMissing(b.delay == 0, o.name, "delay")
	warnMissing(b.speed == 0, o.name, "speed")
	warnMissing(b.rng == 0, o.name, "range")
	warnMissing(b.accuracy == 0, o.name, "accuracy")
	warnMissing(b.damage == 0, o.name, "damage")
}

func parseBeam(o *Outfit, s *xmlSpecific) {
	b := &beamPayload{colour: "white"}
	b.rng = fval(s.Range)
	b.turn = fval(s.Turn)
	b.energy = fval(s.Energy)
	b.delay = fval(s.Delay)
	b.dtype, b.damage = parseDamage(s.Damage)
	o.bem = b

	warnMissing(b.rng == 0, o.name, "range")
	warnMissing(b.turn == 0, o.name, "turn")
	warnMissing(b.energy == 0, o.name, "energy")
	warnMissing(b.damage == 0, o.name, "damage")
}

func parseLauncher(o *Outfit, s *xmlSpecific) {
	l := &launcherPayload{}
	l.delay = int(fval(s.Delay))
	l.ammo = s.Ammo
	o.lau = l

	warnMissing(l.ammo == "", o.name, "ammo")
	warnMissing(l.delay == 0, o.name, "delay")
}

func parseAmmo(o *Outfit, s *xmlSpecific, gm *gfx.Manager, sr *sfx.Registry) {
	a := &ammoPayload{spfx: -1, sound: -1}
	a.duration = fval(s.Duration)
	a.lockon = fval(s.Lockon)
	a.resist = fval(s.Resist) / 100 // loaded as percent
	a.thrust = fval(s.Thrust)
	a.turn = fval(s.Turn)
	a.speed = fval(s.Speed)
	a.energy = fval(s.Energy)
	if s.Gfx != "" {
		a.gfxSpace = gm.NewSprite(gfxSpaceDir+s.Gfx+".png", 6, 6)
	}
	if s.Spfx != "" {
		a.spfx = sr.Spfx(s.Spfx)
	}
	if s.Sound != "" {
		a.sound = sr.Sound(s.Sound)
	}
	a.dtype, a.damage = parseDamage(s.Damage)
	o.amm = a

	warnMissing(a.gfxSpace == nil, o.name, "gfx")
	warnMissing(a.sound < 0, o.name, "sound")
	warnMissing(a.thrust == 0, o.name, "thrust")
	if o.typ != TypeMissileDumbAmmo { // dumb missiles fly straight, no lock
		warnMissing(a.turn == 0, o.name, "turn")
		warnMissing(a.lockon == 0, o.name, "lockon")
	}
	warnMissing(a.speed == 0, o.name, "speed")
	warnMissing(a.duration == 0, o.name, "duration")
	warnMissing(a.damage == 0, o.name, "damage")
}

func parseMod(o *Outfit, s *xmlSpecific) {
	m := &modPayload{}
	m.thrust = fval(s.Thrust)
	m.turn = fval(s.Turn)
	m.speed = fval(s.Speed)
	m.armour = fval(s.Armour)
	m.shield = fval(s.Shield)
	m.energy = fval(s.Energy)
	m.fuel = fval(s.Fuel)
	// Regens come per minute, stored per second.
	m.armourRegen = fval(s.ArmourRegen) / 60
	m.shieldRegen = fval(s.ShieldRegen) / 60
	m.energyRegen = fval(s.EnergyRegen) / 60
	m.cargo = ival(s.Cargo)
	o.mod = m
}

func parseAfterburner(o *Outfit, s *xmlSpecific, sr *sfx.Registry) {
	a := &afterburnerPayload{sound: -1, thrustPerc: 1, speedPerc: 1}
	a.rumble = fval(s.Rumble)
	if s.Sound != "" {
		a.sound = sr.Sound(s.Sound)
	}
	if s.ThrustPerc != nil {
		a.thrustPerc = 1 + *s.ThrustPerc/100
	}
	a.thrustAbs = fval(s.ThrustAbs)
	if s.SpeedPerc != nil {
		a.speedPerc = 1 + *s.SpeedPerc/100
	}
	a.speedAbs = fval(s.SpeedAbs)
	a.energy = fval(s.Energy)
	o.afb = a
}

func parseMap(o *Outfit, s *xmlSpecific) {
	m := &mapPayload{radius: ival(s.Radius)}
	o.mp = m

	warnMissing(m.radius == 0, o.name, "radius")
}

func parseJammer(o *Outfit, s *xmlSpecific) {
	j := &jammerPayload{}
	j.rng = fval(s.Range)
	j.chance = fval(s.Chance) / 100 // loaded as percent
	j.energy = fval(s.Energy) / 60  // loaded as per minute
	o.jam = j

	warnMissing(j.rng == 0, o.name, "range")
	warnMissing(j.chance == 0, o.name, "chance")
}
