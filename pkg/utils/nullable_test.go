package utils

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type samplePoint struct {
	Latitude Nullable[float64] `json:"latitude" validate:"omitnil,latitude"`
}

func TestNullable_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantSet bool
		want    *float64
	}{
		{"absent", `{}`, false, nil},
		{"null", `{"latitude": null}`, true, nil},
		{"value", `{"latitude": 52.5}`, true, ptr(52.5)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p samplePoint
			require.NoError(t, json.Unmarshal([]byte(tt.body), &p))
			assert.Equal(t, tt.wantSet, p.Latitude.Set)
			assert.Equal(t, tt.want, p.Latitude.Value)
		})
	}
}

func TestNullable_WrongType(t *testing.T) {
	var p samplePoint
	err := json.Unmarshal([]byte(`{"latitude": "north"}`), &p)

	var typeErr *json.UnmarshalTypeError
	require.ErrorAs(t, err, &typeErr)
	assert.Equal(t, "latitude", typeErr.Field)
}

func TestNullable_Apply(t *testing.T) {
	stored := ptr(10.0)

	Nullable[float64]{}.Apply(&stored)
	assert.Equal(t, 10.0, *stored)

	NullableOf(20.0).Apply(&stored)
	assert.Equal(t, 20.0, *stored)

	Null[float64]().Apply(&stored)
	assert.Nil(t, stored)
}

func TestNullable_Validation(t *testing.T) {
	assert.Empty(t, ValidateStruct(samplePoint{}))
	assert.Empty(t, ValidateStruct(samplePoint{Latitude: Null[float64]()}))
	assert.Empty(t, ValidateStruct(samplePoint{Latitude: NullableOf(45.0)}))
	assert.Equal(t,
		map[string]string{"latitude": "Enter a valid latitude."},
		ValidateStruct(samplePoint{Latitude: NullableOf(95.0)}))
}

func ptr[T any](v T) *T { return &v }
