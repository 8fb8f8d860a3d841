package scripting

import (
	"fmt"
	"os"
	"path/filepath"

	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"

	"github.com/maksprotsyk/rendering-api-comparer/internal/component"
	"github.com/maksprotsyk/rendering-api-comparer/internal/core/ecs"
)

// Engine wraps a single gopher-lua VM that hosts scripted systems.
// Single-goroutine access only (simulation loop).
//
// Each script file declares one global table named after the system it
// implements:
//
//	pulse = {
//	    priority = 50,
//	    on_start = function() end,
//	    on_update = function(dt) end,
//	    on_stop = function() end,
//	}
//
// Hooks are optional; a missing hook is a no-op. The table may also carry a
// numeric "priority" field (default 0, lower runs first).
type Engine struct {
	vm    *lua.LState
	world *ecs.World
	log   *zap.Logger
	names []string
}

// NewEngine creates a Lua engine, installs the host API, and loads every
// .lua file in the given directory.
func NewEngine(scriptsDir string, world *ecs.World, log *zap.Logger) (*Engine, error) {
	vm := lua.NewState(lua.Options{
		SkipOpenLibs: false,
	})

	vm.SetGlobal("API_VERSION", lua.LNumber(1))

	e := &Engine{vm: vm, world: world, log: log}
	e.installAPI()

	if err := e.loadDir(scriptsDir); err != nil {
		vm.Close()
		return nil, err
	}
	return e, nil
}

func (e *Engine) Close() {
	e.vm.Close()
}

// SystemNames lists the system tables declared by loaded scripts, in load
// order.
func (e *Engine) SystemNames() []string {
	return e.names
}

// loadDir loads all .lua files in a directory and records which global
// system tables each one declared.
func (e *Engine) loadDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read scripts dir: %w", err)
	}
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".lua" {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		if err := e.vm.DoFile(path); err != nil {
			return fmt.Errorf("load %s: %w", path, err)
		}
		name := entry.Name()[:len(entry.Name())-len(".lua")]
		if _, ok := e.vm.GetGlobal(name).(*lua.LTable); ok {
			e.names = append(e.names, name)
		}
		e.log.Debug("loaded lua script", zap.String("file", path))
	}
	return nil
}

// Priority reads the system table's priority field, defaulting to 0.
func (e *Engine) Priority(system string) int {
	tbl, ok := e.vm.GetGlobal(system).(*lua.LTable)
	if !ok {
		return 0
	}
	if n, ok := e.vm.GetField(tbl, "priority").(lua.LNumber); ok {
		return int(n)
	}
	return 0
}

// CallHook invokes a lifecycle hook on the named system table. Missing
// tables and missing hooks are no-ops; script errors are returned.
func (e *Engine) CallHook(system, hook string, args ...lua.LValue) error {
	tbl, ok := e.vm.GetGlobal(system).(*lua.LTable)
	if !ok {
		return nil
	}
	fn := e.vm.GetField(tbl, hook)
	if fn == lua.LNil {
		return nil
	}
	if err := e.vm.CallByParam(lua.P{Fn: fn, NRet: 0, Protect: true}, args...); err != nil {
		return fmt.Errorf("%s.%s: %w", system, hook, err)
	}
	return nil
}

// installAPI exposes the host functions scripts may call, under the global
// "engine" table.
func (e *Engine) installAPI() {
	api := e.vm.NewTable()

	e.vm.SetField(api, "log", e.vm.NewFunction(func(L *lua.LState) int {
		e.log.Info("lua: " + L.CheckString(1))
		return 0
	}))

	e.vm.SetField(api, "entity_count", e.vm.NewFunction(func(L *lua.LState) int {
		L.Push(lua.LNumber(e.world.Pool().Len()))
		return 1
	}))

	e.vm.SetField(api, "destroy_tagged", e.vm.NewFunction(func(L *lua.LState) int {
		name := L.CheckString(1)
		tags := ecs.StoreFor[component.Tag](e.world.Registry())
		destroyed := 0
		for _, id := range tags.IDs() {
			if tags.Get(id).Name == name {
				e.world.MarkForDestruction(id)
				destroyed++
			}
		}
		L.Push(lua.LNumber(destroyed))
		return 1
	}))

	e.vm.SetGlobal("engine", api)
}
