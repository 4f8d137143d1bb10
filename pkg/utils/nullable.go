package utils

import (
	"bytes"
	"encoding/json"
	"reflect"
	"time"

	"github.com/go-playground/validator/v10"
)

// Nullable is a JSON field that tells an absent key apart from an explicit
// null. Set is true whenever the key was present; Value is nil for null.
type Nullable[T any] struct {
	Set   bool
	Value *T
}

// NullableOf returns a present, non-null field.
func NullableOf[T any](v T) Nullable[T] {
	return Nullable[T]{Set: true, Value: &v}
}

// Null returns a present field holding null.
func Null[T any]() Nullable[T] {
	return Nullable[T]{Set: true}
}

func (n *Nullable[T]) UnmarshalJSON(data []byte) error {
	n.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		n.Value = nil
		return nil
	}

	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	n.Value = &v
	return nil
}

func (n Nullable[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(n.Value)
}

// Apply overwrites dst when the field was sent, including with null.
func (n Nullable[T]) Apply(dst **T) {
	if n.Set {
		*dst = n.Value
	}
}

// registerNullable lets validate tags on a Nullable field check the inner
// value, so omitnil skips both absent and null fields.
func registerNullable(v *validator.Validate) {
	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		return field.Interface().(Nullable[float64]).Value
	}, Nullable[float64]{})
	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		return field.Interface().(Nullable[time.Time]).Value
	}, Nullable[time.Time]{})
}
