// Package script embeds the Lua runtime content authors write against
// and exposes engine facilities to it. The runtime is single threaded;
// every entry point from Go serializes on the runtime lock.
package script

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"

	lua "github.com/yuin/gopher-lua"

	"github.com/stardrifter/naevgo/internal/claim"
	"github.com/stardrifter/naevgo/internal/clock"
	"github.com/stardrifter/naevgo/internal/config"
	"github.com/stardrifter/naevgo/internal/content"
	"github.com/stardrifter/naevgo/internal/gfx"
	"github.com/stardrifter/naevgo/internal/hook"
	"github.com/stardrifter/naevgo/internal/input"
	"github.com/stardrifter/naevgo/internal/player"
	"github.com/stardrifter/naevgo/internal/plugin"
)

// Deps are the engine facilities the scripting facade exposes.
type Deps struct {
	Version  string
	Config   *config.Config
	Clock    *clock.Clock
	Input    *input.Bindings
	Hooks    *hook.Manager
	Claims   *claim.Registry
	Plugins  *plugin.Registry
	Missions *content.Registry
	Events   *content.Registry
	Player   *player.Record
	Gfx      *gfx.Manager
}

// Runtime owns the Lua state, the script-visible cache table and the
// facade registrations. Create with New, tear down with Close.
type Runtime struct {
	mu   sync.Mutex
	l    *lua.LState
	deps Deps

	// cache is shared by every script for the whole session and is
	// dropped only on Close. Last writer wins; scripts coordinate
	// among themselves.
	cache *lua.LTable

	// Per-start flags set by the misn bindings.
	accepted bool
	finished bool
}

// New creates the runtime and registers the engine modules.
func New(deps Deps) *Runtime {
	L := lua.NewState()
	rt := &Runtime{l: L, deps: deps}
	rt.cache = L.NewTable()
	rt.openNaev()
	rt.openMisn()
	return rt
}

// Close tears down the Lua state, discarding the cache table and every
// script-held reference.
func (r *Runtime) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.l.Close()
}

// Do runs a chunk of Lua source.
func (r *Runtime) Do(src string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.l.DoString(src)
}

// Eval runs one console line and returns its results rendered as text.
// Expressions are evaluated and their values printed; statements run
// as-is.
func (r *Runtime) Eval(line string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	L := r.l
	fn, err := L.LoadString("return " + line)
	if err != nil {
		fn, err = L.LoadString(line)
		if err != nil {
			return "", err
		}
	}

	base := L.GetTop()
	L.Push(fn)
	if err := L.PCall(0, lua.MultRet, nil); err != nil {
		L.SetTop(base)
		return "", err
	}

	var parts []string
	for i := base + 1; i <= L.GetTop(); i++ {
		parts = append(parts, L.Get(i).String())
	}
	L.SetTop(base)
	return strings.Join(parts, "\t"), nil
}

// StartEvent runs an event's create step. Reports whether the script
// ran without error.
func (r *Runtime) StartEvent(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.startEvent(name)
}

// StartMission runs a mission's create step. The first result reports
// whether the mission started cleanly (or was accepted); the second
// whether the player accepted it.
func (r *Runtime) StartMission(name string) (ok, accepted bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.startMission(name)
}

func (r *Runtime) startEvent(name string) bool {
	e := r.deps.Events.Get(name)
	if e == nil {
		return false
	}
	if err := r.runCreate(e); err != nil {
		slog.Warn("event start failed", "event", name, "err", err)
		return false
	}
	return true
}

func (r *Runtime) startMission(name string) (ok, accepted bool) {
	e := r.deps.Missions.Get(name)
	if e == nil {
		return false, false
	}

	r.accepted = false
	r.finished = false
	err := r.runCreate(e)
	if err != nil {
		slog.Warn("mission start failed", "mission", name, "err", err)
	}

	ok = (err == nil && !r.finished) || r.accepted
	return ok, r.accepted
}

// runCreate runs a content chunk, then its create() function when the
// chunk defines one. The create global is cleared afterwards so stale
// definitions never leak into the next start.
func (r *Runtime) runCreate(e *content.Entry) error {
	L := r.l

	fn, err := L.LoadString(string(e.Source))
	if err != nil {
		return fmt.Errorf("compiling %s: %w", e.Name, err)
	}
	if err := L.CallByParam(lua.P{Fn: fn, NRet: 0, Protect: true}); err != nil {
		return err
	}

	create := L.GetGlobal("create")
	L.SetGlobal("create", lua.LNil)
	if cf, isFn := create.(*lua.LFunction); isFn {
		return L.CallByParam(lua.P{Fn: cf, NRet: 0, Protect: true})
	}
	return nil
}

// openMisn registers the minimal mission-side API the create step can
// call back into.
func (r *Runtime) openMisn() {
	mod := r.l.NewTable()
	r.l.SetFuncs(mod, map[string]lua.LGFunction{
		"accept": func(L *lua.LState) int {
			r.accepted = true
			L.Push(lua.LTrue)
			return 1
		},
		"finish": func(L *lua.LState) int {
			r.finished = true
			return 0
		},
	})
	r.l.SetGlobal("misn", mod)
}
