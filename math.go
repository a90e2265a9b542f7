package mathstuff

import "math"

// Min returns the smallest element of collection a under natural ordering.
// Elements must be mutually orderable: all numeric, or all strings.
func Min(a any) (any, error) {
	return extremum("min", a, true)
}

// Max returns the largest element of collection a under natural ordering.
// Elements must be mutually orderable: all numeric, or all strings.
func Max(a any) (any, error) {
	return extremum("max", a, false)
}

func extremum(op string, a any, wantMin bool) (any, error) {
	items, err := toSlice(op, a)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, invalidArgf("%s: empty collection", op)
	}
	if f0, ok := toFloat(items[0]); ok {
		best, bestVal := items[0], f0
		for _, x := range items[1:] {
			f, ok := toFloat(x)
			if !ok {
				return nil, invalidArgf("%s: %T is not orderable against numbers", op, x)
			}
			if (wantMin && f < bestVal) || (!wantMin && f > bestVal) {
				best, bestVal = x, f
			}
		}
		return best, nil
	}
	if s0, ok := items[0].(string); ok {
		best := s0
		for _, x := range items[1:] {
			s, ok := x.(string)
			if !ok {
				return nil, invalidArgf("%s: %T is not orderable against strings", op, x)
			}
			if (wantMin && s < best) || (!wantMin && s > best) {
				best = s
			}
		}
		return best, nil
	}
	return nil, invalidArgf("%s: %T is not orderable", op, items[0])
}

// Logarithm returns the logarithm of x. With no base argument the natural
// logarithm is returned; base 10 routes through the dedicated decimal
// routine for precision; any other base computes log(x)/log(base).
func Logarithm(x any, base ...any) (float64, error) {
	xf, ok := toFloat(x)
	if !ok {
		return 0, invalidArgf("log: can only be used on numbers, got %T", x)
	}
	b := math.E
	switch len(base) {
	case 0:
	case 1:
		bf, ok := toFloat(base[0])
		if !ok {
			return 0, invalidArgf("log: base must be a number, got %T", base[0])
		}
		b = bf
	default:
		return 0, invalidArgf("log: expected at most one base argument, got %d", len(base)+1)
	}
	if xf <= 0 {
		return 0, invalidArgf("log: value must be positive, got %v", xf)
	}
	switch {
	case b == 10:
		return math.Log10(xf), nil
	case b == math.E:
		return math.Log(xf), nil
	case b <= 0 || b == 1:
		return 0, invalidArgf("log: invalid base %v", b)
	default:
		return math.Log(xf) / math.Log(b), nil
	}
}

// Power returns x raised to y. Exponentiations with no real result, such
// as a fractional power of a negative number, are rejected.
func Power(x, y any) (float64, error) {
	xf, ok := toFloat(x)
	if !ok {
		return 0, invalidArgf("pow: can only be used on numbers, got %T", x)
	}
	yf, ok := toFloat(y)
	if !ok {
		return 0, invalidArgf("pow: can only be used on numbers, got %T", y)
	}
	res := math.Pow(xf, yf)
	if math.IsNaN(res) {
		return 0, invalidArgf("pow: no real result for %v raised to %v", xf, yf)
	}
	return res, nil
}

// InversePower returns the base-th root of x. With no base argument the
// square root is taken, through the dedicated math.Sqrt routine. Negative
// x is rejected: a fractional power of a negative number has no real
// result.
func InversePower(x any, base ...any) (float64, error) {
	xf, ok := toFloat(x)
	if !ok {
		return 0, invalidArgf("root: can only be used on numbers, got %T", x)
	}
	b := 2.0
	switch len(base) {
	case 0:
	case 1:
		bf, ok := toFloat(base[0])
		if !ok {
			return 0, invalidArgf("root: base must be a number, got %T", base[0])
		}
		b = bf
	default:
		return 0, invalidArgf("root: expected at most one base argument, got %d", len(base)+1)
	}
	if xf < 0 {
		return 0, invalidArgf("root: value must not be negative, got %v", xf)
	}
	if b == 0 {
		return 0, invalidArgf("root: base must not be zero")
	}
	if b == 2 {
		return math.Sqrt(xf), nil
	}
	return math.Pow(xf, 1/b), nil
}
