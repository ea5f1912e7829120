package script

import (
	"log/slog"

	"github.com/Masterminds/semver/v3"
	lua "github.com/yuin/gopher-lua"

	"github.com/stardrifter/naevgo/internal/claim"
)

// openNaev registers the generic engine bindings under the `naev`
// global.
func (r *Runtime) openNaev() {
	mod := r.l.NewTable()
	r.l.SetFuncs(mod, map[string]lua.LGFunction{
		"version":       r.naevVersion,
		"versionTest":   r.naevVersionTest,
		"language":      r.naevLanguage,
		"lastplayed":    r.naevLastplayed,
		"ticks":         r.naevTicks,
		"ticksGame":     r.naevTicksGame,
		"clock":         r.naevClock,
		"keyGet":        r.naevKeyGet,
		"keyEnable":     r.naevKeyEnable,
		"keyEnableAll":  r.naevKeyEnableAll,
		"keyDisableAll": r.naevKeyDisableAll,
		"eventStart":    r.naevEventStart,
		"eventReload":   r.naevEventReload,
		"missionStart":  r.naevMissionStart,
		"missionReload": r.naevMissionReload,
		"shadersReload": r.naevShadersReload,
		"isSimulation":  r.naevIsSimulation,
		"conf":          r.naevConf,
		"confSet":       r.naevConfSet,
		"cache":         r.naevCache,
		"trigger":       r.naevTrigger,
		"claimTest":     r.naevClaimTest,
		"plugins":       r.naevPlugins,
	})
	r.l.SetGlobal("naev", mod)
}

// naevVersion returns the engine version and the loaded save's
// version, or nil when no save is loaded.
func (r *Runtime) naevVersion(L *lua.LState) int {
	L.Push(lua.LString(r.deps.Version))
	if v := r.deps.Player.LoadedVersion(); v == "" {
		L.Push(lua.LNil)
	} else {
		L.Push(lua.LString(v))
	}
	return 2
}

// parseVersion parses a semantic version leniently: a bad string warns
// and compares as 0.0.0, which can make the comparison misleading but
// never aborts the caller.
func parseVersion(s string) *semver.Version {
	v, err := semver.NewVersion(s)
	if err != nil {
		slog.Warn("failed to parse version string", "version", s, "err", err)
		return semver.New(0, 0, 0, "", "")
	}
	return v
}

// naevVersionTest compares two version strings; positive when the
// first is newer, negative when the second is.
func (r *Runtime) naevVersionTest(L *lua.LState) int {
	v1 := parseVersion(L.CheckString(1))
	v2 := parseVersion(L.CheckString(2))
	L.Push(lua.LNumber(v1.Compare(v2)))
	return 1
}

func (r *Runtime) naevLanguage(L *lua.LState) int {
	L.Push(lua.LString(r.deps.Config.Language))
	return 1
}

// naevLastplayed returns how many days it has been since the player
// last played.
func (r *Runtime) naevLastplayed(L *lua.LState) int {
	L.Push(lua.LNumber(r.deps.Player.DaysSinceLastPlayed()))
	return 1
}

// naevTicks returns real seconds since the engine started. Useful for
// timing script code.
func (r *Runtime) naevTicks(L *lua.LState) int {
	L.Push(lua.LNumber(r.deps.Clock.Ticks()))
	return 1
}

// naevTicksGame returns elapsed game seconds, affected by whatever
// speed modifier is active.
func (r *Runtime) naevTicksGame(L *lua.LState) int {
	L.Push(lua.LNumber(r.deps.Clock.GameTicks()))
	return 1
}

// naevClock reports seconds of processing time since startup,
// approximated by the wall clock. See the clock note in DESIGN.md.
func (r *Runtime) naevClock(L *lua.LState) int {
	L.Push(lua.LNumber(r.deps.Clock.Ticks()))
	return 1
}

// naevKeyGet returns the human readable key bound to a binding name.
func (r *Runtime) naevKeyGet(L *lua.LState) int {
	name := L.CheckString(1)
	display, _ := r.deps.Input.Display(name)
	L.Push(lua.LString(display))
	return 1
}

// naevKeyEnable toggles one binding. Use with caution; disabling the
// wrong key can strand the player.
func (r *Runtime) naevKeyEnable(L *lua.LState) int {
	name := L.CheckString(1)
	enable := lua.LVAsBool(L.Get(2))
	r.deps.Input.SetEnabled(name, enable)
	return 0
}

func (r *Runtime) naevKeyEnableAll(L *lua.LState) int {
	r.deps.Input.EnableAll()
	return 0
}

func (r *Runtime) naevKeyDisableAll(L *lua.LState) int {
	r.deps.Input.DisableAll()
	return 0
}

// naevEventStart starts an event by name, skipping its normal start
// conditions. Returns whether it ran without error.
func (r *Runtime) naevEventStart(L *lua.LState) int {
	name := L.CheckString(1)
	L.Push(lua.LBool(r.startEvent(name)))
	return 1
}

// naevMissionStart starts a mission by name, skipping its normal start
// conditions. Returns whether it started cleanly and whether the
// player accepted it.
func (r *Runtime) naevMissionStart(L *lua.LState) int {
	name := L.CheckString(1)
	ok, accepted := r.startMission(name)
	L.Push(lua.LBool(ok))
	L.Push(lua.LBool(accepted))
	return 2
}

// naevEventReload re-reads an event's script from disk. Development
// aid only; it bypasses the load-once discipline.
func (r *Runtime) naevEventReload(L *lua.LState) int {
	name := L.CheckString(1)
	err := r.deps.Events.Reload(name)
	if err != nil {
		slog.Warn("event reload failed", "event", name, "err", err)
	}
	L.Push(lua.LBool(err == nil))
	return 1
}

// naevMissionReload re-reads a mission's script from disk. Development
// aid only; it bypasses the load-once discipline.
func (r *Runtime) naevMissionReload(L *lua.LState) int {
	name := L.CheckString(1)
	err := r.deps.Missions.Reload(name)
	if err != nil {
		slog.Warn("mission reload failed", "mission", name, "err", err)
	}
	L.Push(lua.LBool(err == nil))
	return 1
}

// naevShadersReload recompiles every loaded shader.
func (r *Runtime) naevShadersReload(L *lua.LState) int {
	r.deps.Gfx.ReloadShaders()
	return 0
}

// naevIsSimulation reports whether the universe is being spun up.
func (r *Runtime) naevIsSimulation(L *lua.LState) int {
	L.Push(lua.LBool(r.deps.Clock.IsSimulating()))
	return 1
}

// naevConf returns a read-only snapshot of the configuration,
// recomputed on every call.
func (r *Runtime) naevConf(L *lua.LState) int {
	cfg := r.deps.Config
	t := L.NewTable()

	setStr := func(k, v string) { t.RawSetString(k, lua.LString(v)) }
	setNum := func(k string, v float64) { t.RawSetString(k, lua.LNumber(v)) }
	setInt := func(k string, v int) { t.RawSetString(k, lua.LNumber(v)) }
	setBool := func(k string, v bool) { t.RawSetString(k, lua.LBool(v)) }

	setStr("data", cfg.Data)
	setStr("language", cfg.Language)
	setStr("difficulty", cfg.Difficulty)
	setInt("fsaa", cfg.Fsaa)
	setBool("vsync", cfg.Vsync)
	setInt("width", cfg.Width)
	setInt("height", cfg.Height)
	setNum("scalefactor", cfg.ScaleFactor)
	setBool("fullscreen", cfg.Fullscreen)
	setBool("showfps", cfg.ShowFPS)
	setInt("maxfps", cfg.MaxFPS)
	setBool("showpause", cfg.ShowPause)
	setBool("nosound", cfg.NoSound)
	setNum("sound", cfg.Sound)
	setNum("music", cfg.Music)
	setNum("zoom_far", cfg.ZoomFar)
	setNum("zoom_near", cfg.ZoomNear)
	setNum("zoom_speed", cfg.ZoomSpeed)
	setInt("repeat_delay", cfg.RepeatDelay)
	setInt("repeat_freq", cfg.RepeatFreq)
	setBool("devmode", cfg.Devmode)
	setBool("devautosave", cfg.DevAutosave)
	setBool("conf_nosave", cfg.NoSave)
	setStr("last_version", cfg.LastVersion)
	setStr("log_level", cfg.LogLevel)

	L.Push(t)
	return 1
}

// naevConfSet would set configuration variables.
func (r *Runtime) naevConfSet(L *lua.LState) int {
	// TODO implement; needs per-key validation and live re-apply.
	L.RaiseError("unimplemented")
	return 0
}

// naevCache returns the session cache table. Shared by every script
// and cleared only when the runtime closes.
func (r *Runtime) naevCache(L *lua.LState) int {
	L.Push(r.cache)
	return 1
}

// naevTrigger schedules a named hook stack to run on the next tick,
// optionally carrying one argument. The argument may hold live
// references because deferred runs from this path are never persisted
// into saves.
func (r *Runtime) naevTrigger(L *lua.LState) int {
	name := L.CheckString(1)
	var arg any
	if v := L.Get(2); v != lua.LNil {
		arg = v
	}
	r.deps.Hooks.Trigger(name, arg)
	return 0
}

// naevClaimTest builds a claim over the given systems/strings, tests
// whether it would succeed and discards it. The registry is never
// mutated from this path.
func (r *Runtime) naevClaimTest(L *lua.LState) int {
	inclusive := lua.LVAsBool(L.Get(2))
	cl := claim.New(r.deps.Claims, !inclusive)

	add := func(v lua.LValue) {
		s, isStr := v.(lua.LString)
		if !isStr {
			return
		}
		name := string(s)
		if r.deps.Claims.IsSystem(name) {
			cl.AddSystem(name)
		} else {
			cl.AddString(name)
		}
	}

	switch v := L.Get(1).(type) {
	case *lua.LTable:
		v.ForEach(func(_, item lua.LValue) { add(item) })
	case lua.LString:
		add(v)
	default:
		L.ArgError(1, "system name, string, or table expected")
	}

	L.Push(lua.LBool(cl.Test()))
	return 1
}

// naevPlugins lists the mounted plugins, recomputed on every call.
func (r *Runtime) naevPlugins(L *lua.LState) int {
	list := L.NewTable()
	for i, p := range r.deps.Plugins.List() {
		t := L.NewTable()
		t.RawSetString("name", lua.LString(p.Name))
		t.RawSetString("author", lua.LString(p.Author))
		t.RawSetString("version", lua.LString(p.Version))
		t.RawSetString("description", lua.LString(p.Description))
		t.RawSetString("compatibility", lua.LString(p.Compatibility))
		t.RawSetString("mountpoint", lua.LString(p.Mountpoint))
		t.RawSetString("priority", lua.LNumber(p.Priority))
		t.RawSetString("compatible", lua.LBool(p.Compatible))
		t.RawSetString("total_conversion", lua.LBool(p.TotalConversion))
		list.RawSetInt(i+1, t)
	}
	L.Push(list)
	return 1
}
