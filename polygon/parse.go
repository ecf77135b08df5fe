package polygon

import (
	"encoding/json"
	"fmt"
	"io"
	"math"

	"github.com/guregu/null/v6"
	"github.com/shopspring/decimal"
)

// Object is a decoded JSON object. Numbers are kept as json.Number so that
// nanosecond timestamps survive decoding.
//
// Every getter takes a list of candidate keys, tried in order, and returns
// the first value with the expected JSON type. A missing key or a value of
// another type is reported as an absent value, never as an error.
type Object map[string]interface{}

func decodeObject(r io.Reader) (Object, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	var v interface{}
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFormat, err)
	}
	o, ok := v.(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("%w: expected an object, got %T", ErrFormat, v)
	}
	return Object(o), nil
}

func (o Object) String(keys ...string) null.String {
	for _, k := range keys {
		if s, ok := o[k].(string); ok {
			return null.StringFrom(s)
		}
	}
	return null.String{}
}

func (o Object) Int(keys ...string) null.Int {
	for _, k := range keys {
		if i, ok := toInt(o[k]); ok {
			return null.IntFrom(i)
		}
	}
	return null.Int{}
}

func (o Object) Float(keys ...string) null.Float {
	for _, k := range keys {
		if f, ok := toFloat(o[k]); ok {
			return null.FloatFrom(f)
		}
	}
	return null.Float{}
}

func (o Object) Bool(keys ...string) null.Bool {
	for _, k := range keys {
		if b, ok := o[k].(bool); ok {
			return null.BoolFrom(b)
		}
	}
	return null.Bool{}
}

// Decimal accepts both JSON numbers and numeric strings.
func (o Object) Decimal(keys ...string) decimal.NullDecimal {
	for _, k := range keys {
		var (
			d   decimal.Decimal
			err error
		)
		switch v := o[k].(type) {
		case json.Number:
			d, err = decimal.NewFromString(v.String())
		case string:
			d, err = decimal.NewFromString(v)
		case float64:
			d = decimal.NewFromFloat(v)
		default:
			continue
		}
		if err == nil {
			return decimal.NewNullDecimal(d)
		}
	}
	return decimal.NullDecimal{}
}

// FloatMap returns the numeric members of a nested object; other members are dropped.
func (o Object) FloatMap(keys ...string) map[string]float64 {
	for _, k := range keys {
		m, ok := o[k].(map[string]interface{})
		if !ok {
			continue
		}
		res := make(map[string]float64, len(m))
		for mk, mv := range m {
			if f, ok := toFloat(mv); ok {
				res[mk] = f
			}
		}
		return res
	}
	return nil
}

// Ints returns the integer elements of an array; other elements are skipped.
func (o Object) Ints(keys ...string) []int64 {
	arr := o.array(keys)
	if arr == nil {
		return nil
	}
	res := make([]int64, 0, len(arr))
	for _, v := range arr {
		if i, ok := toInt(v); ok {
			res = append(res, i)
		}
	}
	return res
}

// Strings returns the string elements of an array; other elements are skipped.
func (o Object) Strings(keys ...string) []string {
	arr := o.array(keys)
	if arr == nil {
		return nil
	}
	res := make([]string, 0, len(arr))
	for _, v := range arr {
		if s, ok := v.(string); ok {
			res = append(res, s)
		}
	}
	return res
}

// Nested returns the first candidate that holds an object, or nil.
func (o Object) Nested(keys ...string) Object {
	for _, k := range keys {
		if m, ok := o[k].(map[string]interface{}); ok {
			return Object(m)
		}
	}
	return nil
}

func (o Object) array(keys []string) []interface{} {
	for _, k := range keys {
		if arr, ok := o[k].([]interface{}); ok {
			return arr
		}
	}
	return nil
}

// Records decodes every object element of the first array found under keys.
// Elements that are not objects are skipped. It returns nil when no array is
// present.
func Records[T any](o Object, decode func(Object) T, keys ...string) []T {
	arr := o.array(keys)
	if arr == nil {
		return nil
	}
	res := make([]T, 0, len(arr))
	for _, v := range arr {
		if m, ok := v.(map[string]interface{}); ok {
			res = append(res, decode(Object(m)))
		}
	}
	return res
}

// Record decodes the first nested object found under keys, or returns nil.
func Record[T any](o Object, decode func(Object) T, keys ...string) *T {
	n := o.Nested(keys...)
	if n == nil {
		return nil
	}
	r := decode(n)
	return &r
}

func toInt(v interface{}) (int64, bool) {
	switch n := v.(type) {
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return i, true
		}
		f, err := n.Float64()
		if err != nil {
			return 0, false
		}
		return floatToInt(f)
	case float64:
		return floatToInt(n)
	}
	return 0, false
}

func floatToInt(f float64) (int64, bool) {
	if f != math.Trunc(f) || math.Abs(f) >= math.MaxInt64 {
		return 0, false
	}
	return int64(f), true
}

func toFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case float64:
		return n, true
	}
	return 0, false
}
