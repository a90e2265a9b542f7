package mathstuff

import (
	"fmt"
	"reflect"
	"sort"
)

// RekeyOnMember converts a collection of records into a mapping keyed by
// the value of a chosen field.
//
// data is either a mapping of records (its values are iterated) or a
// sequence of records; each record must itself be a mapping from field
// name to value. The optional duplicates argument is "error" (the
// default: a repeated derived key fails with [ErrDuplicateKey]) or
// "overwrite" (the last record wins, in iteration order). Mapping inputs
// are iterated in ascending rendered-key order so results and error
// reporting are deterministic.
func RekeyOnMember(data any, key string, duplicates ...string) (map[any]any, error) {
	policy := "error"
	switch len(duplicates) {
	case 0:
	case 1:
		policy = duplicates[0]
	default:
		return nil, invalidArgf("rekey_on_member: expected at most one duplicates argument, got %d", len(duplicates))
	}
	if policy != "error" && policy != "overwrite" {
		return nil, invalidArgf("rekey_on_member: duplicates parameter has unknown value %q", policy)
	}

	records, err := recordsOf(data)
	if err != nil {
		return nil, err
	}

	out := make(map[any]any, len(records))
	for _, item := range records {
		rec, ok := stringKeyedMap(item)
		if !ok {
			return nil, invalidArgf("rekey_on_member: element %v is not a record", item)
		}
		keyElem, present := rec[key]
		if !present {
			return nil, missingKeyf("rekey_on_member: key %q was not found", key)
		}
		if !hashable(keyElem) {
			return nil, invalidArgf("rekey_on_member: value %v of key %q cannot be used as a map key", keyElem, key)
		}
		if _, exists := out[keyElem]; exists && policy == "error" {
			return nil, duplicateKeyf("rekey_on_member: key %v is not unique, cannot correctly turn into a mapping", keyElem)
		}
		out[keyElem] = item
	}
	return out, nil
}

// recordsOf resolves the mapping/sequence polymorphism once, returning the
// records to iterate. Strings and byte slices are not record collections.
func recordsOf(data any) ([]any, error) {
	switch data.(type) {
	case nil, string, []byte:
		return nil, invalidArgf("rekey_on_member: %T is not a valid mapping or sequence of records", data)
	}
	rv := reflect.ValueOf(data)
	switch rv.Kind() {
	case reflect.Map:
		keys := rv.MapKeys()
		sort.Slice(keys, func(i, j int) bool {
			return fmt.Sprint(keys[i].Interface()) < fmt.Sprint(keys[j].Interface())
		})
		items := make([]any, 0, len(keys))
		for _, k := range keys {
			items = append(items, rv.MapIndex(k).Interface())
		}
		return items, nil
	case reflect.Slice, reflect.Array:
		return toSlice("rekey_on_member", data)
	}
	return nil, invalidArgf("rekey_on_member: %T is not a valid mapping or sequence of records", data)
}
