package scripting

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"

	"github.com/maksprotsyk/rendering-api-comparer/internal/component"
	"github.com/maksprotsyk/rendering-api-comparer/internal/core/ecs"
)

func writeScript(t *testing.T, dir, name, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
}

func newTestEngine(t *testing.T, world *ecs.World, scripts map[string]string) *Engine {
	t.Helper()
	dir := t.TempDir()
	for name, body := range scripts {
		writeScript(t, dir, name, body)
	}
	e, err := NewEngine(dir, world, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(e.Close)
	return e
}

func TestEngineLoadsSystemTables(t *testing.T) {
	e := newTestEngine(t, ecs.NewWorld(), map[string]string{
		"alpha.lua": `alpha = { priority = 7 }`,
		"beta.lua":  `beta = { on_update = function(dt) end }`,
		"notes.txt": `ignored`,
	})

	assert.ElementsMatch(t, []string{"alpha", "beta"}, e.SystemNames())
	assert.Equal(t, 7, e.Priority("alpha"))
	assert.Equal(t, 0, e.Priority("beta"))
	assert.Equal(t, 0, e.Priority("missing"))
}

func TestEngineCallHook(t *testing.T) {
	e := newTestEngine(t, ecs.NewWorld(), map[string]string{
		"counter.lua": `
counter = {
    total = 0,
    on_update = function(dt)
        counter.total = counter.total + dt
    end,
}`,
	})

	require.NoError(t, e.CallHook("counter", "on_update", lua.LNumber(0.25)))
	require.NoError(t, e.CallHook("counter", "on_update", lua.LNumber(0.25)))
	require.NoError(t, e.CallHook("counter", "missing_hook"))
	require.NoError(t, e.CallHook("no_such_system", "on_update"))

	tbl := e.vm.GetGlobal("counter").(*lua.LTable)
	assert.Equal(t, lua.LNumber(0.5), e.vm.GetField(tbl, "total"))
}

func TestEngineHookErrorSurfaces(t *testing.T) {
	e := newTestEngine(t, ecs.NewWorld(), map[string]string{
		"bad.lua": `bad = { on_update = function(dt) error("boom") end }`,
	})

	err := e.CallHook("bad", "on_update", lua.LNumber(0))
	assert.ErrorContains(t, err, "boom")
}

func TestEngineHostAPI(t *testing.T) {
	world := ecs.NewWorld()
	for i := 0; i < 3; i++ {
		id := world.CreateEntity()
		require.True(t, ecs.Add(world.Registry(), id, component.Tag{Name: "spark"}))
	}
	keeper := world.CreateEntity()
	require.True(t, ecs.Add(world.Registry(), keeper, component.Tag{Name: "keeper"}))

	e := newTestEngine(t, world, map[string]string{
		"cull.lua": `
cull = {
    seen = 0,
    removed = 0,
    on_start = function()
        cull.seen = engine.entity_count()
        cull.removed = engine.destroy_tagged("spark")
    end,
}`,
	})

	require.NoError(t, e.CallHook("cull", "on_start"))

	tbl := e.vm.GetGlobal("cull").(*lua.LTable)
	assert.Equal(t, lua.LNumber(4), e.vm.GetField(tbl, "seen"))
	assert.Equal(t, lua.LNumber(3), e.vm.GetField(tbl, "removed"))

	// Scripts only mark; the destroy queue still needs its flush.
	assert.Equal(t, 4, world.Pool().Len())
	world.FlushDestroyQueue()
	assert.Equal(t, 1, world.Pool().Len())
	assert.True(t, world.Alive(keeper))
}

func TestEngineMissingScriptsDir(t *testing.T) {
	e, err := NewEngine(filepath.Join(t.TempDir(), "nope"), ecs.NewWorld(), zap.NewNop())
	require.NoError(t, err)
	defer e.Close()
	assert.Empty(t, e.SystemNames())
}
