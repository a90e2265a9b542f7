package mathstuff

import "text/template"

// FuncMap returns the filter functions keyed by their registration names,
// ready to hand to text/template or html/template Funcs.
//
// Each call builds a fresh map, so a caller may add, remove, or shadow
// entries without affecting other hosts.
func FuncMap(opts ...Option) template.FuncMap {
	o := defaultFuncMapOptions()
	for _, opt := range opts {
		opt(&o)
	}

	m := template.FuncMap{
		// general math
		"min": Min,
		"max": Max,

		// exponents and logarithms
		"log":  Logarithm,
		"pow":  Power,
		"root": InversePower,

		// set theory
		"unique":               Unique,
		"intersect":            Intersect,
		"difference":           Difference,
		"symmetric_difference": SymmetricDifference,
		"union":                Union,

		// combinatorics
		"product":      Product,
		"permutations": Permutations,
		"combinations": Combinations,

		// computer theory
		"human_readable": func(size any, args ...any) (string, error) {
			return humanReadableWith(o.bytes, size, args...)
		},
		"human_to_bytes": func(size any, args ...any) (int64, error) {
			return humanToBytesWith(o.bytes, size, args...)
		},
		"rekey_on_member": RekeyOnMember,

		// zip
		"zip":         Zip,
		"zip_longest": ZipLongest,

		// geodesy
		"haversine": Haversine,
	}

	if o.prefix == "" {
		return m
	}
	prefixed := make(template.FuncMap, len(m))
	for name, fn := range m {
		prefixed[o.prefix+name] = fn
	}
	return prefixed
}
