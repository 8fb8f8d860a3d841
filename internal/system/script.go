package system

import (
	"time"

	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"

	"github.com/maksprotsyk/rendering-api-comparer/internal/scripting"
)

// ScriptSystem adapts one Lua system table to the scheduler's System
// interface. Script errors are logged, not fatal: a broken script must not
// take the whole tick down.
type ScriptSystem struct {
	engine   *scripting.Engine
	name     string
	priority int
	log      *zap.Logger
}

func NewScriptSystem(engine *scripting.Engine, name string, log *zap.Logger) *ScriptSystem {
	return &ScriptSystem{
		engine:   engine,
		name:     name,
		priority: engine.Priority(name),
		log:      log,
	}
}

// ScriptSystems builds one ScriptSystem per system table the engine loaded.
func ScriptSystems(engine *scripting.Engine, log *zap.Logger) []*ScriptSystem {
	var out []*ScriptSystem
	for _, name := range engine.SystemNames() {
		out = append(out, NewScriptSystem(engine, name, log))
	}
	return out
}

func (s *ScriptSystem) Priority() int { return s.priority }

func (s *ScriptSystem) OnStart() {
	s.callHook("on_start")
}

func (s *ScriptSystem) OnUpdate(dt time.Duration) {
	if err := s.engine.CallHook(s.name, "on_update", lua.LNumber(dt.Seconds())); err != nil {
		s.log.Error("script update failed", zap.String("system", s.name), zap.Error(err))
	}
}

func (s *ScriptSystem) OnStop() {
	s.callHook("on_stop")
}

func (s *ScriptSystem) callHook(hook string) {
	if err := s.engine.CallHook(s.name, hook); err != nil {
		s.log.Error("script hook failed",
			zap.String("system", s.name),
			zap.String("hook", hook),
			zap.Error(err))
	}
}
