package mathstuff

import (
	"errors"
	"math"
	"testing"
)

func TestMin(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want any
	}{
		{"ints", []any{3, 1, 2}, 1},
		{"floats", []any{2.5, -1.5, 0.0}, -1.5},
		{"mixed numerics", []any{2, 1.5, 3}, 1.5},
		{"single element", []any{7}, 7},
		{"strings", []any{"pear", "apple", "plum"}, "apple"},
		{"typed slice", []int{9, 4, 6}, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Min(tt.in)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Min(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestMax(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want any
	}{
		{"ints", []any{3, 1, 2}, 3},
		{"floats", []any{2.5, -1.5, 0.0}, 2.5},
		{"strings", []any{"pear", "apple", "plum"}, "plum"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Max(tt.in)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Max(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestMinMaxInvalid(t *testing.T) {
	tests := []struct {
		name string
		in   any
	}{
		{"empty", []any{}},
		{"mixed number and string", []any{1, "a"}},
		{"mixed string and number", []any{"a", 1}},
		{"unorderable elements", []any{true, false}},
		{"not a collection", 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Min(tt.in); !errors.Is(err, ErrInvalidArgument) {
				t.Errorf("Min(%v) error = %v, want ErrInvalidArgument", tt.in, err)
			}
			if _, err := Max(tt.in); !errors.Is(err, ErrInvalidArgument) {
				t.Errorf("Max(%v) error = %v, want ErrInvalidArgument", tt.in, err)
			}
		})
	}
}

func TestLogarithm(t *testing.T) {
	tests := []struct {
		name string
		x    any
		base []any
		want float64
	}{
		{"base 10 exact", 100, []any{10}, 2.0},
		{"natural default", math.E, nil, 1.0},
		{"binary", 8, []any{2}, 3.0},
		{"fractional result", 10, []any{100}, 0.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Logarithm(tt.x, tt.base...)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Logarithm(%v, %v) = %v, want %v", tt.x, tt.base, got, tt.want)
			}
		})
	}
}

func TestLogarithmInvalid(t *testing.T) {
	tests := []struct {
		name string
		x    any
		base []any
	}{
		{"non-numeric x", "ten", nil},
		{"nil x", nil, nil},
		{"non-numeric base", 10, []any{"two"}},
		{"zero x", 0, nil},
		{"negative x", -1, nil},
		{"base one", 10, []any{1}},
		{"negative base", 10, []any{-2}},
		{"too many arguments", 10, []any{2, 3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Logarithm(tt.x, tt.base...); !errors.Is(err, ErrInvalidArgument) {
				t.Errorf("Logarithm(%v, %v) error = %v, want ErrInvalidArgument", tt.x, tt.base, err)
			}
		})
	}
}

func TestPower(t *testing.T) {
	tests := []struct {
		name string
		x, y any
		want float64
	}{
		{"2^10", 2, 10, 1024},
		{"negative exponent", 2, -1, 0.5},
		{"zero exponent", 5, 0, 1},
		{"float base", 1.5, 2, 2.25},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Power(tt.x, tt.y)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Power(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestPowerInvalid(t *testing.T) {
	if _, err := Power("2", 10); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("Power with string base: error = %v, want ErrInvalidArgument", err)
	}
	if _, err := Power(2, nil); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("Power with nil exponent: error = %v, want ErrInvalidArgument", err)
	}
	// A fractional power of a negative number has no real result and must
	// not leak NaN into a template.
	if _, err := Power(-1, 0.5); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("Power(-1, 0.5): error = %v, want ErrInvalidArgument", err)
	}
}

func TestInversePower(t *testing.T) {
	tests := []struct {
		name string
		x    any
		base []any
		want float64
	}{
		{"square root default", 16, nil, 4.0},
		{"square root explicit", 16, []any{2}, 4.0},
		{"cube root", 27, []any{3}, 3.0},
		{"fourth root", 81, []any{4}, 3.0},
		{"root of zero", 0, nil, 0.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := InversePower(tt.x, tt.base...)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("InversePower(%v, %v) = %v, want %v", tt.x, tt.base, got, tt.want)
			}
		})
	}
}

func TestInversePowerInvalid(t *testing.T) {
	tests := []struct {
		name string
		x    any
		base []any
	}{
		{"non-numeric x", "x", nil},
		{"non-numeric base", 16, []any{"2"}},
		{"negative x", -16, nil},
		{"negative x odd root", -27, []any{3}},
		{"zero base", 16, []any{0}},
		{"too many arguments", 16, []any{2, 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := InversePower(tt.x, tt.base...); !errors.Is(err, ErrInvalidArgument) {
				t.Errorf("InversePower(%v, %v) error = %v, want ErrInvalidArgument", tt.x, tt.base, err)
			}
		})
	}
}
