// Package mathstuff provides math, set-theory, and data-reshaping filter
// functions for Go template engines.
//
// # Overview
//
// mathstuff is a flat library of stateless filter functions intended to be
// registered with a template host via [FuncMap]:
//
//	import (
//	    "text/template"
//
//	    "github.com/tmplkit/mathstuff"
//	)
//
//	tmpl := template.New("report").Funcs(mathstuff.FuncMap())
//	tmpl = template.Must(tmpl.Parse(`{{haversine .Coordinates}}`))
//
// Every function is pure: identical inputs produce identical outputs, no
// input is mutated, and no shared state is touched. All functions are safe
// to call concurrently.
//
// # Filters
//
// General math: min, max, log, pow, root.
// Set theory: unique, intersect, difference, symmetric_difference, union.
// Combinatorics: product, permutations, combinations, zip, zip_longest.
// Data reshaping: rekey_on_member.
// Units: human_readable, human_to_bytes.
// Geodesy: haversine.
//
// Filters operate on dynamically typed template values: collections arrive
// as []any or any other slice kind, records as map[string]any, and numbers
// in whatever Go kind the host's decoder produced. A string passed where a
// collection is expected iterates as one-character strings; only
// rekey_on_member refuses strings, since characters are not records.
//
// # Errors
//
// Failures are reported fail-fast as wrapped sentinel errors:
// [ErrInvalidArgument], [ErrMissingKey], [ErrDuplicateKey], and
// [ErrConversion]. Use errors.Is to classify:
//
//	if _, err := mathstuff.Haversine(coords); errors.Is(err, mathstuff.ErrInvalidArgument) {
//	    // bad coordinate input
//	}
//
// No filter returns a partial result alongside an error.
//
// # Logging
//
// mathstuff produces no log output by default. Call [SetLogger] with a
// *slog.Logger to observe debug-level events such as a set operation
// falling back to its order-preserving scan path.
package mathstuff
