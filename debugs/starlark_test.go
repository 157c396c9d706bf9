package debugs

import (
	"testing"

	"go.starlark.net/starlark"
)

type namedInt int

type cellInfo struct {
	Slot  int
	Value uint8
	note  string
}

func dict(pairs ...any) *starlark.Dict {
	d := starlark.NewDict(len(pairs) / 2)
	for i := 0; i < len(pairs); i += 2 {
		d.SetKey(pairs[i].(starlark.Value), pairs[i+1].(starlark.Value))
	}
	return d
}

func TestToStarlarkValue(t *testing.T) {
	info := &cellInfo{
		Slot:  3,
		Value: 255,
		note:  "hidden",
	}
	infoDict := dict(
		starlark.String("Slot"), starlark.MakeInt(3),
		starlark.String("Value"), starlark.MakeInt(255),
	)

	testCases := []struct {
		name     string
		input    any
		expected starlark.Value
	}{
		{"nil", nil, starlark.None},
		{"bool", true, starlark.True},
		{"bytes", []byte{0, 0xff}, starlark.Bytes("\x00\xff")},
		{"string", "tape", starlark.String("tape")},
		{"int", 42, starlark.MakeInt(42)},
		{"int64", int64(-1), starlark.MakeInt(-1)},
		{"uint8", uint8(200), starlark.MakeInt(200)},
		{"uint64", uint64(1 << 40), starlark.MakeUint64(1 << 40)},
		{"named int", namedInt(7), starlark.MakeInt(7)},
		{"float64", 0.5, starlark.Float(0.5)},
		{"starlark value", starlark.String("x"), starlark.String("x")},
		{"ints", []int{1, 2}, starlark.NewList([]starlark.Value{starlark.MakeInt(1), starlark.MakeInt(2)})},
		{"array", [2]string{"a", "b"}, starlark.NewList([]starlark.Value{starlark.String("a"), starlark.String("b")})},
		{"map", map[string]int{"index": 3}, dict(starlark.String("index"), starlark.MakeInt(3))},
		{"struct", *info, infoDict},
		{"pointer", info, infoDict},
		{"pointer to pointer", &info, infoDict},
		{"nested", map[string]any{
			"cells": []any{info, nil},
		}, dict(
			starlark.String("cells"), starlark.NewList([]starlark.Value{infoDict, starlark.None}),
		)},
		{"nil pointer", (*cellInfo)(nil), starlark.None},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			actual := toStarlarkValue(tc.input)
			equal, err := starlark.Equal(actual, tc.expected)
			if err != nil {
				t.Fatalf("comparison failed: %v", err)
			}
			if !equal {
				t.Fatalf("got %v, expected %v", actual, tc.expected)
			}
		})
	}

	t.Run("func", func(t *testing.T) {
		v := toStarlarkValue(func(i int) int {
			return i + 1
		})
		if _, ok := v.(starlark.Callable); !ok {
			t.Fatalf("got %T", v)
		}
	})

	t.Run("unsupported", func(t *testing.T) {
		defer func() {
			if p := recover(); p == nil {
				t.Fatal("should panic")
			}
		}()
		toStarlarkValue(make(chan int))
	})
}
