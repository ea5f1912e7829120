package script

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
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

func newTestRuntime(t *testing.T) (*Runtime, Deps) {
	t.Helper()

	cfg := config.Default()
	plugins := plugin.NewRegistry()
	plugins.Register(plugin.Plugin{
		Name:       "Starfield Pack",
		Author:     "dev",
		Version:    "1.2.0",
		Mountpoint: "plugins/starfield",
		Priority:   5,
		Compatible: true,
	})

	missions := content.NewRegistry("mission", map[string]string{
		"cargo_run": `
			function create()
				misn.accept()
			end
		`,
		"bad_deal": `
			function create()
				misn.finish()
			end
		`,
		"quiet": `
			function create()
			end
		`,
		"broken": `
			function create()
				error("no pilot")
			end
		`,
	})
	events := content.NewRegistry("event", map[string]string{
		"distress": `
			function create()
				naev.cache().distress_seen = true
			end
		`,
		"broken": `
			function create()
				error("hull breach")
			end
		`,
	})

	deps := Deps{
		Version:  "0.6.1",
		Config:   &cfg,
		Clock:    clock.New(),
		Input:    input.Defaults(),
		Hooks:    hook.NewManager(),
		Claims:   claim.NewRegistry([]string{"Alteris", "Apez", "Gamma Polaris"}),
		Plugins:  plugins,
		Missions: missions,
		Events:   events,
		Player:   player.NewRecord(time.Now().Add(-48 * time.Hour)),
		Gfx:      gfx.NewManager(),
	}
	rt := New(deps)
	t.Cleanup(rt.Close)
	return rt, deps
}

func TestVersion(t *testing.T) {
	rt, deps := newTestRuntime(t)

	out, err := rt.Eval(`naev.version()`)
	require.NoError(t, err)
	assert.Equal(t, "0.6.1\tnil", out)

	deps.Player.SetLoadedVersion("0.5.0")
	out, err = rt.Eval(`naev.version()`)
	require.NoError(t, err)
	assert.Equal(t, "0.6.1\t0.5.0", out)
}

func TestVersionTest(t *testing.T) {
	rt, _ := newTestRuntime(t)

	for _, tc := range []struct {
		v1, v2 string
		want   string
	}{
		{"1.2.0", "1.1.9", "1"},
		{"1.1.9", "1.2.0", "-1"},
		{"1.2.0", "1.2.0", "0"},
		// Unparseable strings compare as 0.0.0.
		{"garbage", "0.1.0", "-1"},
		{"garbage", "also-garbage", "0"},
	} {
		out, err := rt.Eval(`naev.versionTest("` + tc.v1 + `", "` + tc.v2 + `")`)
		require.NoError(t, err)
		assert.Equal(t, tc.want, out, "versionTest(%q, %q)", tc.v1, tc.v2)
	}
}

func TestLanguageAndLastplayed(t *testing.T) {
	rt, _ := newTestRuntime(t)

	out, err := rt.Eval(`naev.language()`)
	require.NoError(t, err)
	assert.Equal(t, "en", out)

	out, err = rt.Eval(`naev.lastplayed() >= 1.9 and naev.lastplayed() < 3`)
	require.NoError(t, err)
	assert.Equal(t, "true", out)
}

func TestTicksAndSimulation(t *testing.T) {
	rt, deps := newTestRuntime(t)

	out, err := rt.Eval(`naev.ticks() >= 0`)
	require.NoError(t, err)
	assert.Equal(t, "true", out)

	out, err = rt.Eval(`naev.isSimulation()`)
	require.NoError(t, err)
	assert.Equal(t, "false", out)

	deps.Clock.SetSimulating(true)
	out, err = rt.Eval(`naev.isSimulation()`)
	require.NoError(t, err)
	assert.Equal(t, "true", out)

	deps.Clock.Advance(2 * time.Second)
	out, err = rt.Eval(`naev.ticksGame()`)
	require.NoError(t, err)
	assert.Equal(t, "2", out)

	// clock tracks the same monotonic source as ticks.
	out, err = rt.Eval(`math.abs(naev.clock() - naev.ticks()) < 0.5`)
	require.NoError(t, err)
	assert.Equal(t, "true", out)
}

func TestKeyBindings(t *testing.T) {
	rt, deps := newTestRuntime(t)

	out, err := rt.Eval(`naev.keyGet("accel")`)
	require.NoError(t, err)
	assert.Equal(t, "W", out)

	out, err = rt.Eval(`naev.keyGet("warp_drive")`)
	require.NoError(t, err)
	assert.Equal(t, "", out)

	require.NoError(t, rt.Do(`naev.keyEnable("accel", false)`))
	assert.False(t, deps.Input.Enabled("accel"))
	assert.True(t, deps.Input.Enabled("left"))

	require.NoError(t, rt.Do(`naev.keyDisableAll()`))
	assert.False(t, deps.Input.Enabled("left"))

	require.NoError(t, rt.Do(`naev.keyEnableAll()`))
	assert.True(t, deps.Input.Enabled("accel"))
	assert.True(t, deps.Input.Enabled("left"))
}

func TestConfSnapshot(t *testing.T) {
	rt, _ := newTestRuntime(t)

	for _, tc := range []struct {
		expr, want string
	}{
		{`naev.conf().language`, "en"},
		{`naev.conf().maxfps`, "60"},
		{`naev.conf().width`, "1280"},
		{`naev.conf().vsync`, "true"},
		{`naev.conf().conf_nosave`, "false"},
		{`naev.conf().zoom_speed`, "0.25"},
	} {
		out, err := rt.Eval(tc.expr)
		require.NoError(t, err)
		assert.Equal(t, tc.want, out, tc.expr)
	}
}

func TestConfSetUnimplemented(t *testing.T) {
	rt, _ := newTestRuntime(t)

	err := rt.Do(`naev.confSet("sound", 0.5)`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unimplemented")
}

func TestCacheSharedAcrossCalls(t *testing.T) {
	rt, _ := newTestRuntime(t)

	require.NoError(t, rt.Do(`naev.cache().fleet_strength = 42`))
	out, err := rt.Eval(`naev.cache().fleet_strength`)
	require.NoError(t, err)
	assert.Equal(t, "42", out)

	// Same table every time.
	out, err = rt.Eval(`naev.cache() == naev.cache()`)
	require.NoError(t, err)
	assert.Equal(t, "true", out)
}

func TestTriggerDefers(t *testing.T) {
	rt, deps := newTestRuntime(t)

	var got []any
	deps.Hooks.Register("discovery", func(arg any) { got = append(got, arg) })

	require.NoError(t, rt.Do(`naev.trigger("discovery", "Mizar")`))
	assert.Empty(t, got, "hook must not run inline")
	assert.Equal(t, 1, deps.Hooks.Pending())

	deps.Hooks.RunDeferred()
	require.Len(t, got, 1)
	assert.Equal(t, lua.LString("Mizar"), got[0])

	// No argument means nil.
	require.NoError(t, rt.Do(`naev.trigger("discovery")`))
	deps.Hooks.RunDeferred()
	require.Len(t, got, 2)
	assert.Nil(t, got[1])
}

func TestClaimTest(t *testing.T) {
	rt, deps := newTestRuntime(t)

	out, err := rt.Eval(`naev.claimTest("Alteris")`)
	require.NoError(t, err)
	assert.Equal(t, "true", out)
	assert.Equal(t, 0, deps.Claims.ActiveKeys(), "test must never commit")

	// Commit an inclusive claim, then probe against it.
	held := claim.New(deps.Claims, false)
	held.AddSystem("Alteris")
	require.NoError(t, held.Commit())

	out, err = rt.Eval(`naev.claimTest("Alteris")`)
	require.NoError(t, err)
	assert.Equal(t, "false", out, "exclusive probe vs committed inclusive claim")

	out, err = rt.Eval(`naev.claimTest("Alteris", true)`)
	require.NoError(t, err)
	assert.Equal(t, "true", out, "inclusive probe coexists")

	out, err = rt.Eval(`naev.claimTest({"Apez", "Gamma Polaris", "trade-lane"})`)
	require.NoError(t, err)
	assert.Equal(t, "true", out)

	assert.Equal(t, 1, deps.Claims.ActiveKeys(), "probes must leave the registry alone")
}

func TestEventStart(t *testing.T) {
	rt, _ := newTestRuntime(t)

	out, err := rt.Eval(`naev.eventStart("distress")`)
	require.NoError(t, err)
	assert.Equal(t, "true", out)

	out, err = rt.Eval(`naev.cache().distress_seen`)
	require.NoError(t, err)
	assert.Equal(t, "true", out)

	out, err = rt.Eval(`naev.eventStart("no_such_event")`)
	require.NoError(t, err)
	assert.Equal(t, "false", out)

	out, err = rt.Eval(`naev.eventStart("broken")`)
	require.NoError(t, err)
	assert.Equal(t, "false", out)
}

func TestMissionStart(t *testing.T) {
	rt, _ := newTestRuntime(t)

	for _, tc := range []struct {
		name               string
		wantOK, wantAccept string
	}{
		{"cargo_run", "true", "true"},
		{"quiet", "true", "false"},
		{"bad_deal", "false", "false"},
		{"broken", "false", "false"},
		{"no_such_mission", "false", "false"},
	} {
		out, err := rt.Eval(`naev.missionStart("` + tc.name + `")`)
		require.NoError(t, err)
		assert.Equal(t, tc.wantOK+"\t"+tc.wantAccept, out, "missionStart(%q)", tc.name)
	}
}

func TestReloadWithoutBackingFile(t *testing.T) {
	rt, _ := newTestRuntime(t)

	// In-memory registries have nothing to re-read.
	out, err := rt.Eval(`naev.missionReload("cargo_run")`)
	require.NoError(t, err)
	assert.Equal(t, "false", out)

	out, err = rt.Eval(`naev.eventReload("nope")`)
	require.NoError(t, err)
	assert.Equal(t, "false", out)
}

func TestPlugins(t *testing.T) {
	rt, _ := newTestRuntime(t)

	out, err := rt.Eval(`#naev.plugins()`)
	require.NoError(t, err)
	assert.Equal(t, "1", out)

	out, err = rt.Eval(`naev.plugins()[1].name`)
	require.NoError(t, err)
	assert.Equal(t, "Starfield Pack", out)

	out, err = rt.Eval(`naev.plugins()[1].priority`)
	require.NoError(t, err)
	assert.Equal(t, "5", out)
}

func TestShadersReload(t *testing.T) {
	rt, deps := newTestRuntime(t)

	sh := deps.Gfx.LoadShader("nebula")
	gen := sh.Generation()
	require.NoError(t, rt.Do(`naev.shadersReload()`))
	assert.Equal(t, gen+1, sh.Generation())
}
