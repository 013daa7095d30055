package lua

import (
	"fmt"
	"sync"

	"github.com/cespare/xxhash/v2"
	lua "github.com/yuin/gopher-lua"

	"github.com/raniellyferreira/marble-replay/curve"
	"github.com/raniellyferreira/marble-replay/replay"
)

// Engine executes Lua scripts against one decoded replay buffer
type Engine struct {
	buf     *replay.Buffer
	scripts sync.Map // map[string]string - script id -> script content
}

// NewEngine creates a new Lua execution engine
func NewEngine(buf *replay.Buffer) *Engine {
	return &Engine{
		buf: buf,
	}
}

// Eval executes a Lua script with the given arguments
func (e *Engine) Eval(script string, args []string) (interface{}, error) {
	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	defer L.Close()

	if err := e.setupReplayAPI(L, args); err != nil {
		return nil, err
	}

	if err := L.DoString(script); err != nil {
		return nil, fmt.Errorf("script execution error: %w", err)
	}

	return e.convertLuaValue(L.Get(-1)), nil
}

// EvalID executes a previously loaded script by its id
func (e *Engine) EvalID(id string, args []string) (interface{}, error) {
	script, exists := e.scripts.Load(id)
	if !exists {
		return nil, fmt.Errorf("no script with id %s, load it first", id)
	}

	return e.Eval(script.(string), args)
}

// LoadScript caches a script and returns its id, the hex xxhash64 of its source
func (e *Engine) LoadScript(script string) string {
	id := ScriptID(script)
	e.scripts.Store(id, script)
	return id
}

// ScriptID returns the id LoadScript assigns to script
func ScriptID(script string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(script))
}

// ScriptExists checks if scripts with the given ids are loaded
func (e *Engine) ScriptExists(ids []string) []bool {
	results := make([]bool, len(ids))
	for i, id := range ids {
		_, exists := e.scripts.Load(id)
		results[i] = exists
	}
	return results
}

// ScriptFlush removes all cached scripts
func (e *Engine) ScriptFlush() {
	e.scripts.Range(func(key, value interface{}) bool {
		e.scripts.Delete(key)
		return true
	})
}

func openLibs(L *lua.LState) {
	for _, lib := range []struct {
		name string
		fn   lua.LGFunction
	}{
		{lua.BaseLibName, lua.OpenBase},
		{lua.TabLibName, lua.OpenTable},
		{lua.StringLibName, lua.OpenString},
		{lua.MathLibName, lua.OpenMath},
	} {
		L.Push(L.NewFunction(lib.fn))
		L.Push(lua.LString(lib.name))
		L.Call(1, 0)
	}
}

// setupReplayAPI configures the Lua state with ARGV and the replay table
func (e *Engine) setupReplayAPI(L *lua.LState, args []string) error {
	if e.buf == nil {
		return fmt.Errorf("lua engine has no replay buffer")
	}
	openLibs(L)

	argvTable := L.NewTable()
	for i, arg := range args {
		argvTable.RawSetInt(i+1, lua.LString(arg)) // Lua arrays are 1-indexed
	}
	L.SetGlobal("ARGV", argvTable)

	replayTable := L.NewTable()
	replayTable.RawSetString("session", lua.LNumber(e.buf.Header.Session))
	replayTable.RawSetString("version", lua.LNumber(e.buf.Header.Version))
	replayTable.RawSetString("count", lua.LNumber(len(e.buf.Rewindables)))
	L.SetFuncs(replayTable, map[string]lua.LGFunction{
		"rewindables": e.rewindables,
		"samples":     e.samples,
	})
	L.SetGlobal("replay", replayTable)

	return nil
}

// rewindables implements replay.rewindables()
func (e *Engine) rewindables(L *lua.LState) int {
	list := L.NewTable()
	for i, rw := range e.buf.Rewindables {
		t := L.NewTable()
		t.RawSetString("name", lua.LString(rw.GameObjectName))
		t.RawSetString("type", lua.LString(rw.TypeName))
		t.RawSetString("x", lua.LNumber(rw.RefPos.X))
		t.RawSetString("y", lua.LNumber(rw.RefPos.Y))
		t.RawSetString("z", lua.LNumber(rw.RefPos.Z))

		fields := L.NewTable()
		for j, f := range rw.Fields {
			ft := L.NewTable()
			ft.RawSetString("name", lua.LString(f.Name))
			ft.RawSetString("type", lua.LString(f.Type.String()))
			ft.RawSetString("samples", lua.LNumber(f.Curve.SampleCount()))
			fields.RawSetInt(j+1, ft)
		}
		t.RawSetString("fields", fields)

		list.RawSetInt(i+1, t)
	}
	L.Push(list)
	return 1
}

// samples implements replay.samples(i, field [, element])
func (e *Engine) samples(L *lua.LState) int {
	i := L.CheckInt(1)
	name := L.CheckString(2)
	element := L.OptInt(3, 0)

	if i < 1 || i > len(e.buf.Rewindables) {
		L.ArgError(1, fmt.Sprintf("rewindable index out of range [1, %d]", len(e.buf.Rewindables)))
		return 0
	}

	f, err := e.buf.Rewindables[i-1].Field(name)
	if err != nil {
		L.RaiseError("%s", err.Error())
		return 0
	}

	table, err := e.curveTable(L, f.Curve, element)
	if err != nil {
		L.RaiseError("%s: %s", name, err.Error())
		return 0
	}
	L.Push(table)
	return 1
}

// curveTable converts a decoded field to a list of {t, v} tables. Array
// fields need a 1-based element index.
func (e *Engine) curveTable(L *lua.LState, v curve.Variant, element int) (*lua.LTable, error) {
	switch c := v.(type) {
	case *curve.Fitter[float32]:
		return pushCurve(L, &c.Curve, numberValue[float32]), nil
	case *curve.Fitter[int32]:
		return pushCurve(L, &c.Curve, numberValue[int32]), nil
	case *curve.Fitter[uint16]:
		return pushCurve(L, &c.Curve, numberValue[uint16]), nil
	case *curve.Fitter[uint32]:
		return pushCurve(L, &c.Curve, numberValue[uint32]), nil
	case *curve.Fitter[bool]:
		return pushCurve(L, &c.Curve, boolValue), nil
	case *curve.Fitter[curve.Vector2]:
		return pushCurve(L, &c.Curve, vector2Value), nil
	case *curve.Fitter[curve.Vector3]:
		return pushCurve(L, &c.Curve, vector3Value), nil
	case *curve.Fitter[curve.Quaternion]:
		return pushCurve(L, &c.Curve, quaternionValue), nil
	case *curve.FitterArray[uint32]:
		el, err := arrayElement(c, element)
		if err != nil {
			return nil, err
		}
		return pushCurve(L, &el.Curve, numberValue[uint32]), nil
	case *curve.FitterArray[int32]:
		el, err := arrayElement(c, element)
		if err != nil {
			return nil, err
		}
		return pushCurve(L, &el.Curve, numberValue[int32]), nil
	default:
		return nil, fmt.Errorf("unsupported curve payload %T", v)
	}
}

func arrayElement[T any](a *curve.FitterArray[T], element int) (*curve.Fitter[T], error) {
	if element < 1 || element > len(a.Curves) {
		return nil, fmt.Errorf("array element %d out of range [1, %d]", element, len(a.Curves))
	}
	return a.Curves[element-1], nil
}

func pushCurve[T any](L *lua.LState, c *curve.Curve[T], conv func(*lua.LState, T) lua.LValue) *lua.LTable {
	list := L.CreateTable(c.Len(), 0)
	for i := 0; i < c.Len(); i++ {
		t, v, err := c.Sample(i)
		if err != nil {
			break
		}
		s := L.CreateTable(0, 2)
		s.RawSetString("t", lua.LNumber(t))
		s.RawSetString("v", conv(L, v))
		list.RawSetInt(i+1, s)
	}
	return list
}

func numberValue[T float32 | int32 | uint16 | uint32](_ *lua.LState, v T) lua.LValue {
	return lua.LNumber(v)
}

func boolValue(_ *lua.LState, v bool) lua.LValue {
	return lua.LBool(v)
}

func vector2Value(L *lua.LState, v curve.Vector2) lua.LValue {
	t := L.CreateTable(0, 2)
	t.RawSetString("x", lua.LNumber(v.X))
	t.RawSetString("y", lua.LNumber(v.Y))
	return t
}

func vector3Value(L *lua.LState, v curve.Vector3) lua.LValue {
	t := L.CreateTable(0, 3)
	t.RawSetString("x", lua.LNumber(v.X))
	t.RawSetString("y", lua.LNumber(v.Y))
	t.RawSetString("z", lua.LNumber(v.Z))
	return t
}

func quaternionValue(L *lua.LState, v curve.Quaternion) lua.LValue {
	t := L.CreateTable(0, 4)
	t.RawSetString("x", lua.LNumber(v.X))
	t.RawSetString("y", lua.LNumber(v.Y))
	t.RawSetString("z", lua.LNumber(v.Z))
	t.RawSetString("w", lua.LNumber(v.W))
	return t
}

// convertLuaValue converts a Lua value to a Go value
func (e *Engine) convertLuaValue(lv lua.LValue) interface{} {
	switch v := lv.(type) {
	case lua.LBool:
		return bool(v)
	case lua.LString:
		return string(v)
	case lua.LNumber:
		f := float64(v)
		if f == float64(int64(f)) {
			return int64(f)
		}
		return f
	case *lua.LNilType:
		return nil
	case *lua.LTable:
		if e.isArrayLikeTable(v) {
			result := make([]interface{}, 0, v.Len())
			for i := 1; i <= v.Len(); i++ {
				result = append(result, e.convertLuaValue(v.RawGetInt(i)))
			}
			return result
		}
		result := make(map[string]interface{})
		v.ForEach(func(k, val lua.LValue) {
			result[k.String()] = e.convertLuaValue(val)
		})
		return result
	default:
		return lv.String()
	}
}

// isArrayLikeTable checks if a Lua table has only the keys 1..n
func (e *Engine) isArrayLikeTable(table *lua.LTable) bool {
	length := table.Len()
	if length == 0 {
		// an empty table or a pure map
		k, _ := table.Next(lua.LNil)
		return k == lua.LNil
	}

	arrayLike := true
	table.ForEach(func(k, v lua.LValue) {
		num, ok := k.(lua.LNumber)
		if !ok {
			arrayLike = false
			return
		}
		idx := int(num)
		if float64(idx) != float64(num) || idx < 1 || idx > length {
			arrayLike = false
		}
	})
	return arrayLike
}
