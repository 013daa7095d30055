package lua

import (
	"reflect"
	"strings"
	"testing"

	"github.com/raniellyferreira/marble-replay/internal/fixture"
	"github.com/raniellyferreira/marble-replay/protocol"
	"github.com/raniellyferreira/marble-replay/replay"
)

// newLevelEngine returns an engine over the fixture level:
// 1 Gem_1, 2 Marble, 3 Bumper_1, 4 Gem_2, 5 Elevator_1
func newLevelEngine(t testing.TB) *Engine {
	t.Helper()
	buf, err := replay.Decode(fixture.BufferBytes(1, 2, fixture.Payload(protocol.StringFixed32, fixture.Level()...)))
	if err != nil {
		t.Fatalf("failed to decode fixture: %v", err)
	}
	return NewEngine(buf)
}

func TestLuaEngine_BasicExecution(t *testing.T) {
	engine := newLevelEngine(t)

	tests := []struct {
		name     string
		script   string
		args     []string
		expected interface{}
	}{
		{
			name:     "simple return",
			script:   "return 'hello'",
			expected: "hello",
		},
		{
			name:     "return number",
			script:   "return 42",
			expected: int64(42),
		},
		{
			name:     "access ARGV",
			script:   "return ARGV[1] .. ':' .. ARGV[2]",
			args:     []string{"Marble", "Position"},
			expected: "Marble:Position",
		},
		{
			name:     "header",
			script:   "return replay.session * 10 + replay.version",
			expected: int64(12),
		},
		{
			name:     "rewindable count",
			script:   "return replay.count",
			expected: int64(5),
		},
		{
			name:     "string library",
			script:   "return string.upper(replay.rewindables()[1].name)",
			expected: "GEM_1",
		},
		{
			name:     "no os library",
			script:   "return os == nil and io == nil",
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := engine.Eval(tt.script, tt.args)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if result != tt.expected {
				t.Errorf("expected %v (%T), got %v (%T)", tt.expected, tt.expected, result, result)
			}
		})
	}
}

func TestLuaEngine_Rewindables(t *testing.T) {
	engine := newLevelEngine(t)

	tests := []struct {
		name     string
		script   string
		expected interface{}
	}{
		{"type name", "return replay.rewindables()[2].type", replay.TypeMarbleController},
		{"field count", "return #replay.rewindables()[2].fields", int64(21)},
		{"field type", "return replay.rewindables()[2].fields[9].type", "Vector3"},
		{"field samples", "return replay.rewindables()[2].fields[9].samples", int64(2)},
		{"reference position", "local p = replay.rewindables()[1]; return p.x + p.z", int64(7)},
		{
			"count by type",
			`local n = 0
			for _, rw in ipairs(replay.rewindables()) do
				if rw.type == ARGV[1] then n = n + 1 end
			end
			return n`,
			int64(2),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := engine.Eval(tt.script, []string{replay.TypePowerup})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if result != tt.expected {
				t.Errorf("expected %v (%T), got %v (%T)", tt.expected, tt.expected, result, result)
			}
		})
	}
}

func TestLuaEngine_Samples(t *testing.T) {
	engine := newLevelEngine(t)

	tests := []struct {
		name     string
		script   string
		expected interface{}
	}{
		{"sample count", `return #replay.samples(2, "Position")`, int64(2)},
		{"vector3 component", `return replay.samples(2, "Position")[2].v.x`, 0.5},
		{"quaternion component", `return replay.samples(2, "qW")[1].v.w`, int64(1)},
		{"bool value", `return replay.samples(2, "DoneFirstBounce")[2].v`, true},
		{"ushort value", `return replay.samples(1, "PointValue")[1].v`, int64(100)},
		{"int value", `return replay.samples(5, "GlobalTime")[2].v`, int64(101)},
		{"timestamp", `return replay.samples(3, "StrikeTimeLeft")[2].t`, float64(fixture.Time(1))},
		{"array element", `return replay.samples(2, "EffectState", 2)[1].v`, int64(2)},
		{"int array element", `return replay.samples(2, "EffectTicks", 1)[2].v`, int64(9)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := engine.Eval(tt.script, nil)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if result != tt.expected {
				t.Errorf("expected %v (%T), got %v (%T)", tt.expected, tt.expected, result, result)
			}
		})
	}
}

func TestLuaEngine_ScriptCaching(t *testing.T) {
	engine := newLevelEngine(t)

	script := "return replay.count"
	id := engine.LoadScript(script)

	if id != ScriptID(script) {
		t.Fatalf("expected id %s, got %s", ScriptID(script), id)
	}
	if len(id) != 16 {
		t.Errorf("expected a 16 character id, got %q", id)
	}

	result, err := engine.EvalID(id, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result != int64(5) {
		t.Errorf("expected 5, got %v", result)
	}

	if _, err := engine.EvalID("0000000000000000", nil); err == nil {
		t.Error("expected an error for an unknown script id")
	}
}

func TestLuaEngine_ScriptExists(t *testing.T) {
	engine := newLevelEngine(t)

	id := engine.LoadScript("return 1")
	exists := engine.ScriptExists([]string{id, "missing"})

	if !reflect.DeepEqual(exists, []bool{true, false}) {
		t.Errorf("expected [true false], got %v", exists)
	}
}

func TestLuaEngine_ScriptFlush(t *testing.T) {
	engine := newLevelEngine(t)

	id1 := engine.LoadScript("return 1")
	id2 := engine.LoadScript("return 2")
	engine.ScriptFlush()

	for _, exists := range engine.ScriptExists([]string{id1, id2}) {
		if exists {
			t.Error("expected scripts to be flushed")
		}
	}
}

func TestLuaEngine_DataTypeConversion(t *testing.T) {
	engine := newLevelEngine(t)

	tests := []struct {
		name     string
		script   string
		expected interface{}
	}{
		{"nil", "return nil", nil},
		{"float", "return 1.5", 1.5},
		{"array", "return {1, 2, 3}", []interface{}{int64(1), int64(2), int64(3)}},
		{"empty table", "return {}", []interface{}{}},
		{"map", "return {x = 1}", map[string]interface{}{"x": int64(1)}},
		{"vector", `return replay.samples(2, "Velocity")[2].v`, map[string]interface{}{
			"x": int64(30), "y": int64(0), "z": int64(0),
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := engine.Eval(tt.script, nil)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !reflect.DeepEqual(result, tt.expected) {
				t.Errorf("expected %#v, got %#v", tt.expected, result)
			}
		})
	}
}

func TestLuaEngine_ErrorHandling(t *testing.T) {
	engine := newLevelEngine(t)

	tests := []struct {
		name    string
		script  string
		wantErr string
	}{
		{"syntax error", "return (", "script execution error"},
		{"index out of range", `return replay.samples(9, "T")`, "out of range"},
		{"missing field", `return replay.samples(2, "Nope")`, "Nope field is missing"},
		{"array without element", `return replay.samples(2, "EffectState")`, "array element 0"},
		{"runtime error", "error('boom')", "boom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := engine.Eval(tt.script, nil)
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}

	if _, err := NewEngine(nil).Eval("return 1", nil); err == nil {
		t.Error("expected an error without a replay buffer")
	}
}
