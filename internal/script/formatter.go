package script

import (
	"errors"
	"fmt"
	"time"

	lua "github.com/yuin/gopher-lua"
)

// Sentinel errors for formatter registration.
var (
	// ErrNotAFunction is returned when a formatter chunk does not return
	// a Lua function.
	ErrNotAFunction = errors.New("formatter chunk must return a function")
)

// Formatters maps column fields to Lua formatter functions. A chunk is
// Lua source that returns a one-argument function producing the
// display string, for example:
//
//	return function(v) return string.format("%.1f kg", v) end
//
// Formatters is not safe for concurrent use; it belongs to the
// renderer, which is single-threaded like the engine.
type Formatters struct {
	state *lua.LState
	funcs map[string]*lua.LFunction
}

// NewFormatters creates an empty formatter registry with a restricted
// Lua state.
func NewFormatters() *Formatters {
	L := lua.NewState()
	// Remove chunk and file loading so a formatter stays a pure
	// value-to-string function.
	for _, name := range []string{"dofile", "loadfile", "load", "loadstring"} {
		L.SetGlobal(name, lua.LNil)
	}
	return &Formatters{
		state: L,
		funcs: make(map[string]*lua.LFunction),
	}
}

// Close releases the Lua state.
func (f *Formatters) Close() {
	f.state.Close()
}

// Register compiles a formatter chunk for a column field. The chunk
// must return a function.
func (f *Formatters) Register(field, chunk string) error {
	top := f.state.GetTop()
	if err := f.state.DoString(chunk); err != nil {
		return fmt.Errorf("compiling formatter for %q: %w", field, err)
	}
	var ret lua.LValue = lua.LNil
	if f.state.GetTop() > top {
		ret = f.state.Get(-1)
		f.state.SetTop(top)
	}
	fn, ok := ret.(*lua.LFunction)
	if !ok {
		return fmt.Errorf("formatter for %q: %w", field, ErrNotAFunction)
	}
	f.funcs[field] = fn
	return nil
}

// Has reports whether a formatter is registered for the field.
func (f *Formatters) Has(field string) bool {
	_, ok := f.funcs[field]
	return ok
}

// Format renders a cell value through the field's formatter. Without a
// registered formatter, or when the script errors or returns a
// non-string, it falls back to the default string form.
func (f *Formatters) Format(field string, value any) string {
	fn, ok := f.funcs[field]
	if !ok {
		return defaultForm(value)
	}
	if err := f.state.CallByParam(lua.P{Fn: fn, NRet: 1, Protect: true}, toLua(value)); err != nil {
		return defaultForm(value)
	}
	ret := f.state.Get(-1)
	f.state.Pop(1)
	if s, ok := ret.(lua.LString); ok {
		return string(s)
	}
	return defaultForm(value)
}

// toLua bridges a raw cell value into the Lua state.
func toLua(v any) lua.LValue {
	switch x := v.(type) {
	case nil:
		return lua.LNil
	case bool:
		return lua.LBool(x)
	case string:
		return lua.LString(x)
	case int:
		return lua.LNumber(x)
	case int64:
		return lua.LNumber(x)
	case float64:
		return lua.LNumber(x)
	case float32:
		return lua.LNumber(x)
	case time.Time:
		return lua.LString(x.Format(time.RFC3339))
	default:
		return lua.LString(fmt.Sprint(x))
	}
}

// defaultForm is the fallback rendering used when no formatter applies.
func defaultForm(v any) string {
	if v == nil {
		return ""
	}
	return fmt.Sprint(v)
}
