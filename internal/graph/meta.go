package graph

import (
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
)

// Meta is the free-form per-node metadata map. It carries parser-extracted
// hints such as slider bounds or panel text; values are restricted to
// numbers, integers and text.
type Meta map[string]cty.Value

// Number reads key as a float, converting if necessary.
func (m Meta) Number(key string) (float64, bool) {
	v, ok := m[key]
	if !ok || v.IsNull() {
		return 0, false
	}
	conv, err := convert.Convert(v, cty.Number)
	if err != nil {
		return 0, false
	}
	f, _ := conv.AsBigFloat().Float64()
	return f, true
}

// Int reads key as an integer, truncating a fractional payload.
func (m Meta) Int(key string) (int64, bool) {
	f, ok := m.Number(key)
	if !ok {
		return 0, false
	}
	return int64(f), true
}

// Text reads key as a string, converting if necessary.
func (m Meta) Text(key string) (string, bool) {
	v, ok := m[key]
	if !ok || v.IsNull() {
		return "", false
	}
	conv, err := convert.Convert(v, cty.String)
	if err != nil {
		return "", false
	}
	return conv.AsString(), true
}

// SetNumber stores a float under key.
func (m Meta) SetNumber(key string, f float64) {
	m[key] = cty.NumberFloatVal(f)
}

// SetInt stores an integer under key.
func (m Meta) SetInt(key string, i int64) {
	m[key] = cty.NumberIntVal(i)
}

// SetText stores a string under key.
func (m Meta) SetText(key, s string) {
	m[key] = cty.StringVal(s)
}
