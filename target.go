package motion

import (
	"fmt"
	"reflect"
)

// Target is the object a tween animates. The tween holds a non-owning
// reference and reads/writes numeric properties by name.
//
// Prop returns false when the named property does not exist on the target
// (or is not numeric); starting a tween against such a property is a fatal
// configuration error.
type Target interface {
	Prop(name string) (float64, bool)
	SetProp(name string, value float64)
}

// Object is the simplest Target: a plain map of named numeric properties.
type Object map[string]float64

// Prop returns the named property and whether it exists.
func (o Object) Prop(name string) (float64, bool) {
	v, ok := o[name]
	return v, ok
}

// SetProp stores the named property.
func (o Object) SetProp(name string, value float64) {
	o[name] = value
}

// Struct wraps a pointer to a struct as a Target, exposing its exported
// float64 fields as properties keyed by field name. Fields of other types
// are reported as missing.
func Struct(ptr any) (Target, error) {
	v := reflect.ValueOf(ptr)
	if v.Kind() != reflect.Pointer || v.IsNil() || v.Elem().Kind() != reflect.Struct {
		return nil, fmt.Errorf("motion: Struct requires a non-nil pointer to a struct, got %T", ptr)
	}
	return structTarget{v: v.Elem()}, nil
}

type structTarget struct {
	v reflect.Value
}

func (t structTarget) Prop(name string) (float64, bool) {
	f := t.v.FieldByName(name)
	if !f.IsValid() || f.Kind() != reflect.Float64 {
		return 0, false
	}
	return f.Float(), true
}

func (t structTarget) SetProp(name string, value float64) {
	f := t.v.FieldByName(name)
	if f.IsValid() && f.Kind() == reflect.Float64 && f.CanSet() {
		f.SetFloat(value)
	}
}
