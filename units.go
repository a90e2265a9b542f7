package mathstuff

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
)

// ByteFormatter converts between byte (or bit) counts and human-readable
// strings. The default implementation delegates to
// github.com/dustin/go-humanize; a host with its own conventions can
// install a replacement through WithByteFormatter.
//
// Implementations report plain errors; the filter layer re-signals every
// failure as [ErrConversion] carrying the offending input.
type ByteFormatter interface {
	// BytesToHuman renders size as a human-readable quantity. A non-empty
	// unit fixes the output multiple ("K", "M", ...); isBits labels the
	// quantity as bits instead of bytes.
	BytesToHuman(size float64, isBits bool, unit string) (string, error)

	// HumanToBytes parses a human-readable quantity into a count of bytes
	// (or bits when isBits). defaultUnit applies only when s carries no
	// unit of its own.
	HumanToBytes(s, defaultUnit string, isBits bool) (int64, error)
}

var defaultByteFormatter ByteFormatter = humanizeFormatter{}

// HumanReadable renders size (a byte count) as a human-readable string.
//
// Optional arguments, in order: isbits (bool, default false) and unit
// (string, default automatic multiple selection). Formatter failures are
// reported as [ErrConversion]; malformed optional arguments as
// [ErrInvalidArgument].
func HumanReadable(size any, args ...any) (string, error) {
	return humanReadableWith(defaultByteFormatter, size, args...)
}

func humanReadableWith(f ByteFormatter, size any, args ...any) (string, error) {
	if len(args) > 2 {
		return "", invalidArgf("human_readable: expected at most 3 arguments, got %d", len(args)+1)
	}
	isBits := false
	unit := ""
	if len(args) >= 1 {
		b, ok := args[0].(bool)
		if !ok {
			return "", invalidArgf("human_readable: isbits must be a bool, got %T", args[0])
		}
		isBits = b
	}
	if len(args) == 2 {
		s, ok := args[1].(string)
		if !ok {
			return "", invalidArgf("human_readable: unit must be a string, got %T", args[1])
		}
		unit = s
	}
	v, ok := toFloat(size)
	if !ok {
		return "", conversionf("human_readable: can't interpret following value: %v", size)
	}
	out, err := f.BytesToHuman(v, isBits, unit)
	if err != nil {
		return "", conversionf("human_readable: can't interpret following value: %v", size)
	}
	return out, nil
}

// HumanToBytes parses a human-readable size into a count of bytes.
//
// Optional arguments, in order: default_unit (string, applied when size
// carries no unit) and isbits (bool: size denotes bits and the result is a
// count of bits). Parse failures are reported as [ErrConversion];
// malformed optional arguments as [ErrInvalidArgument].
func HumanToBytes(size any, args ...any) (int64, error) {
	return humanToBytesWith(defaultByteFormatter, size, args...)
}

func humanToBytesWith(f ByteFormatter, size any, args ...any) (int64, error) {
	if len(args) > 2 {
		return 0, invalidArgf("human_to_bytes: expected at most 3 arguments, got %d", len(args)+1)
	}
	defaultUnit := ""
	isBits := false
	if len(args) >= 1 {
		s, ok := args[0].(string)
		if !ok {
			return 0, invalidArgf("human_to_bytes: default_unit must be a string, got %T", args[0])
		}
		defaultUnit = s
	}
	if len(args) == 2 {
		b, ok := args[1].(bool)
		if !ok {
			return 0, invalidArgf("human_to_bytes: isbits must be a bool, got %T", args[1])
		}
		isBits = b
	}

	var s string
	switch v := size.(type) {
	case string:
		s = v
	default:
		fv, ok := toFloat(size)
		if !ok {
			return 0, conversionf("human_to_bytes: can't interpret following string: %v", size)
		}
		s = strconv.FormatFloat(fv, 'f', -1, 64)
	}

	n, err := f.HumanToBytes(s, defaultUnit, isBits)
	if err != nil {
		return 0, conversionf("human_to_bytes: can't interpret following string: %v", size)
	}
	return n, nil
}

// humanizeFormatter is the default ByteFormatter, backed by
// github.com/dustin/go-humanize. Fixed-unit and bit rendering are handled
// locally since humanize exposes byte formatting only; all magnitude
// parsing goes through humanize.ParseBytes.
type humanizeFormatter struct{}

// sizeExponent maps a unit letter to its power of 1024.
var sizeExponent = map[string]int{
	"B": 0, "K": 1, "M": 2, "G": 3, "T": 4, "P": 5, "E": 6, "Z": 7, "Y": 8,
}

func (humanizeFormatter) BytesToHuman(size float64, isBits bool, unit string) (string, error) {
	if math.IsNaN(size) || math.IsInf(size, 0) || size < 0 {
		return "", fmt.Errorf("size %v out of range", size)
	}
	if unit != "" {
		letter := strings.ToUpper(strings.TrimSuffix(strings.TrimSuffix(unit, "B"), "b"))
		if letter == "" {
			letter = "B"
		}
		exp, ok := sizeExponent[letter]
		if !ok {
			return "", fmt.Errorf("unknown unit %q", unit)
		}
		suffix := "B"
		if isBits {
			suffix = "b"
		}
		if letter != "B" {
			suffix = letter + suffix
		}
		return fmt.Sprintf("%.2f %s", size/math.Pow(1024, float64(exp)), suffix), nil
	}
	if isBits {
		return formatBits(size), nil
	}
	return humanize.IBytes(uint64(size)), nil
}

// formatBits mirrors humanize.IBytes for bit quantities.
func formatBits(size float64) string {
	labels := []string{"b", "Kib", "Mib", "Gib", "Tib", "Pib", "Eib", "Zib", "Yib"}
	i := 0
	for size >= 1024 && i < len(labels)-1 {
		size /= 1024
		i++
	}
	if i == 0 {
		return fmt.Sprintf("%d b", int64(size))
	}
	return fmt.Sprintf("%.1f %s", size, labels[i])
}

var humanSizeRe = regexp.MustCompile(`^\s*([0-9][0-9.,]*(?:[eE][+-]?[0-9]+)?)\s*([A-Za-z]*)\s*$`)

func (humanizeFormatter) HumanToBytes(s, defaultUnit string, isBits bool) (int64, error) {
	m := humanSizeRe.FindStringSubmatch(s)
	if m == nil {
		return 0, fmt.Errorf("no byte quantity in %q", s)
	}
	num, unit := m[1], m[2]
	if unit == "" && defaultUnit != "" {
		Logger().Debug("mathstuff: applying default unit", "filter", "human_to_bytes", "unit", defaultUnit)
		unit = defaultUnit
	}
	if isBits {
		if strings.HasSuffix(unit, "B") {
			return 0, fmt.Errorf("expected a bit quantity, got byte unit %q", unit)
		}
		unit = strings.TrimSuffix(unit, "bits")
		unit = strings.TrimSuffix(unit, "bit")
		unit = strings.TrimSuffix(unit, "b")
	} else {
		unit = strings.TrimSuffix(unit, "bytes")
		unit = strings.TrimSuffix(unit, "byte")
		unit = strings.TrimSuffix(unit, "B")
		unit = strings.TrimSuffix(unit, "b")
	}
	// Bare multiples ("K") are decimal in humanize terms, "Ki" is binary.
	unit += "B"

	n, err := humanize.ParseBytes(num + unit)
	if err != nil {
		return 0, err
	}
	if n > math.MaxInt64 {
		return 0, fmt.Errorf("quantity %q overflows int64", s)
	}
	return int64(n), nil
}
