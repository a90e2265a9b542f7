package mathstuff

import "gonum.org/v1/gonum/stat/combin"

// Combinatorial filters. Index enumeration is delegated to
// gonum/stat/combin; this file only maps index tuples back to the caller's
// elements.

// Product returns the Cartesian product of the given collections, one row
// per combination. With no arguments it returns a single empty row; any
// empty input collection makes the product empty.
func Product(lists ...any) ([][]any, error) {
	if len(lists) == 0 {
		return [][]any{{}}, nil
	}
	cols := make([][]any, len(lists))
	lens := make([]int, len(lists))
	for i, l := range lists {
		items, err := toSlice("product", l)
		if err != nil {
			return nil, err
		}
		if len(items) == 0 {
			return [][]any{}, nil
		}
		cols[i] = items
		lens[i] = len(items)
	}
	rows := combin.Cartesian(lens)
	out := make([][]any, len(rows))
	for r, row := range rows {
		vals := make([]any, len(row))
		for c, i := range row {
			vals[c] = cols[c][i]
		}
		out[r] = vals
	}
	return out, nil
}

// Permutations returns the setSize-length orderings of a's elements.
// setSize defaults to the full collection length; a setSize larger than
// the collection yields no permutations.
func Permutations(a any, setSize ...any) ([][]any, error) {
	items, k, err := selectionArgs("permutations", a, setSize)
	if err != nil {
		return nil, err
	}
	if k > len(items) {
		return [][]any{}, nil
	}
	if k == 0 {
		return [][]any{{}}, nil
	}
	return pickRows(items, combin.Permutations(len(items), k)), nil
}

// Combinations returns the setSize-length element subsets of a, in index
// order. setSize defaults to the full collection length; a setSize larger
// than the collection yields no combinations.
func Combinations(a any, setSize ...any) ([][]any, error) {
	items, k, err := selectionArgs("combinations", a, setSize)
	if err != nil {
		return nil, err
	}
	if k > len(items) {
		return [][]any{}, nil
	}
	if k == 0 {
		return [][]any{{}}, nil
	}
	return pickRows(items, combin.Combinations(len(items), k)), nil
}

func selectionArgs(op string, a any, setSize []any) ([]any, int, error) {
	items, err := toSlice(op, a)
	if err != nil {
		return nil, 0, err
	}
	k := len(items)
	switch len(setSize) {
	case 0:
	case 1:
		n, ok := toInt(setSize[0])
		if !ok || n < 0 {
			return nil, 0, invalidArgf("%s: set size must be a non-negative integer, got %v", op, setSize[0])
		}
		k = n
	default:
		return nil, 0, invalidArgf("%s: expected at most one set size argument, got %d", op, len(setSize))
	}
	return items, k, nil
}

func pickRows(items []any, rows [][]int) [][]any {
	out := make([][]any, len(rows))
	for r, row := range rows {
		vals := make([]any, len(row))
		for c, i := range row {
			vals[c] = items[i]
		}
		out[r] = vals
	}
	return out
}

// Zip aggregates the i-th elements of each collection into rows, stopping
// at the shortest input.
func Zip(lists ...any) ([][]any, error) {
	cols, _, shortest, err := zipColumns("zip", lists)
	if err != nil {
		return nil, err
	}
	out := make([][]any, 0, shortest)
	for i := 0; i < shortest; i++ {
		row := make([]any, len(cols))
		for c := range cols {
			row[c] = cols[c][i]
		}
		out = append(out, row)
	}
	return out, nil
}

// ZipLongest aggregates the i-th elements of each collection into rows,
// continuing to the longest input and padding exhausted collections with
// nil.
func ZipLongest(lists ...any) ([][]any, error) {
	cols, longest, _, err := zipColumns("zip_longest", lists)
	if err != nil {
		return nil, err
	}
	out := make([][]any, 0, longest)
	for i := 0; i < longest; i++ {
		row := make([]any, len(cols))
		for c := range cols {
			if i < len(cols[c]) {
				row[c] = cols[c][i]
			}
		}
		out = append(out, row)
	}
	return out, nil
}

func zipColumns(op string, lists []any) (cols [][]any, longest, shortest int, err error) {
	cols = make([][]any, len(lists))
	for i, l := range lists {
		items, serr := toSlice(op, l)
		if serr != nil {
			return nil, 0, 0, serr
		}
		cols[i] = items
		if len(items) > longest {
			longest = len(items)
		}
		if i == 0 || len(items) < shortest {
			shortest = len(items)
		}
	}
	return cols, longest, shortest, nil
}
