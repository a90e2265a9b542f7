package mathstuff

import (
	"math"
	"reflect"
)

// earthDiameter holds the Earth mean diameter per output unit. The "m"
// unit yields statute miles.
var earthDiameter = map[string]float64{
	"km": 12742,
	"m":  7917.5,
}

// Haversine computes the great-circle distance between two points.
//
// coordinates is either an ordered list [lat1, lon1, lat2, lon2], the same
// list with a trailing unit element, or a mapping with keys lat1, lon1,
// lat2, lon2 and an optional unit key. Coordinates may be numbers or
// numeric strings, in degrees. unit must be "m" or "km" when present.
//
// With a unit the result is a single float64 rounded to 2 decimal places.
// Without one it is a map[string]float64 with both "km" and "m" distances,
// each rounded independently.
func Haversine(coordinates any) (any, error) {
	lat1, lon1, lat2, lon2, unit, err := parseCoordinates(coordinates)
	if err != nil {
		return nil, err
	}

	dlat := radians(lat2 - lat1)
	dlon := radians(lon2 - lon1)
	rlat1 := radians(lat1)
	rlat2 := radians(lat2)

	h := math.Pow(math.Sin(dlat/2), 2) + math.Cos(rlat1)*math.Cos(rlat2)*math.Pow(math.Sin(dlon/2), 2)
	c := 2 * math.Asin(math.Sqrt(h))

	if unit != "" {
		return round2(earthDiameter[unit] / 2 * c), nil
	}
	return map[string]float64{
		"km": round2(earthDiameter["km"] / 2 * c),
		"m":  round2(earthDiameter["m"] / 2 * c),
	}, nil
}

func parseCoordinates(v any) (lat1, lon1, lat2, lon2 float64, unit string, err error) {
	var raw [4]any
	var unitVal any

	if m, ok := stringKeyedMap(v); ok {
		for _, k := range []string{"lat1", "lon1", "lat2", "lon2"} {
			if _, present := m[k]; !present {
				err = invalidArgf("haversine: mapping must contain keys lat1, lon1, lat2 and lon2 (unit optional)")
				return
			}
		}
		raw = [4]any{m["lat1"], m["lon1"], m["lat2"], m["lon2"]}
		unitVal = m["unit"]
	} else if items, serr := toSlice("haversine", v); serr == nil {
		switch len(items) {
		case 4:
			copy(raw[:], items)
		case 5:
			copy(raw[:], items[:4])
			unitVal = items[4]
		default:
			err = invalidArgf("haversine: list must contain 4 elements [lat1, lon1, lat2, lon2], got %d", len(items))
			return
		}
	} else {
		err = invalidArgf("haversine: only accepts a list or mapping of coordinates, got %T", v)
		return
	}

	coords := [4]float64{}
	for i, rv := range raw {
		f, ok := parseFloat(rv)
		if !ok {
			err = invalidArgf("haversine: coordinate %v is not a number", rv)
			return
		}
		coords[i] = f
	}
	lat1, lon1, lat2, lon2 = coords[0], coords[1], coords[2], coords[3]

	if unitVal != nil {
		s, ok := unitVal.(string)
		if !ok {
			err = invalidArgf("haversine: unit must be m or km, got %T", unitVal)
			return
		}
		if _, known := earthDiameter[s]; !known {
			err = invalidArgf("haversine: unit must be m or km, got %q", s)
			return
		}
		unit = s
	}
	return
}

// stringKeyedMap normalizes any map kind with string keys to
// map[string]any.
func stringKeyedMap(v any) (map[string]any, bool) {
	if m, ok := v.(map[string]any); ok {
		return m, true
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		return nil, false
	}
	m := make(map[string]any, rv.Len())
	for it := rv.MapRange(); it.Next(); {
		m[it.Key().String()] = it.Value().Interface()
	}
	return m, true
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// round2 rounds to 2 decimal places, halves away from zero.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
