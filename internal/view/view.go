// Package view holds the display computations of the inspector: grouping
// element kinds for the filter control, interleaving elements from several
// reports, pagination windows, and the tree outline shown by the browser
// pane.
package view

import (
	"fmt"
	"sort"

	"github.com/edgarlab/secviz/internal/filing"
	"github.com/edgarlab/secviz/internal/semantic"
)

// KindCount is one entry of the element-type filter control.
type KindCount struct {
	Kind  semantic.Kind
	Count int
}

// Label renders the filter option text, e.g. "12x Title".
func (kc KindCount) Label() string {
	return fmt.Sprintf("%dx %s", kc.Count, kc.Kind.DisplayName())
}

// CountKinds tallies element occurrences by kind across all reports, most
// frequent first.
func CountKinds(reports []*filing.Report) []KindCount {
	counts := make(map[semantic.Kind]int)
	for _, r := range reports {
		for _, e := range r.Elements {
			counts[e.Kind]++
		}
	}
	out := make([]KindCount, 0, len(counts))
	for k, c := range counts {
		out = append(out, KindCount{Kind: k, Count: c})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Kind < out[j].Kind
	})
	return out
}

// DefaultKinds pre-selects every kind that isn't irrelevant.
func DefaultKinds(counts []KindCount) []semantic.Kind {
	var out []semantic.Kind
	for _, kc := range counts {
		if !kc.Kind.Irrelevant() {
			out = append(out, kc.Kind)
		}
	}
	return out
}

// FilterElements keeps only elements of the selected kinds, preserving
// order.
func FilterElements(elements []*semantic.Element, kinds []semantic.Kind) []*semantic.Element {
	selected := make(map[semantic.Kind]bool, len(kinds))
	for _, k := range kinds {
		selected[k] = true
	}
	out := make([]*semantic.Element, 0, len(elements))
	for _, e := range elements {
		if selected[e.Kind] {
			out = append(out, e)
		}
	}
	return out
}

// Interleave merges the lists round-robin: the first item of each list,
// then the second of each, and so on. Relative order within a list is
// preserved.
func Interleave[T any](lists [][]T) []T {
	total := 0
	longest := 0
	for _, l := range lists {
		total += len(l)
		if len(l) > longest {
			longest = len(l)
		}
	}
	out := make([]T, 0, total)
	for i := 0; i < longest; i++ {
		for _, l := range lists {
			if i < len(l) {
				out = append(out, l[i])
			}
		}
	}
	return out
}

// Page is one pagination window over a list.
type Page[T any] struct {
	Items []T
	Page  int // 1-based current page
	Pages int // total page count
	Total int // total item count
	Size  int
}

// Paginate slices items into the requested fixed-size window. Size 0
// disables pagination; an out-of-range page clamps to the valid range.
func Paginate[T any](items []T, page, size int) Page[T] {
	if size <= 0 {
		return Page[T]{Items: items, Page: 1, Pages: 1, Total: len(items)}
	}
	pages := (len(items) + size - 1) / size
	if pages == 0 {
		pages = 1
	}
	if page < 1 {
		page = 1
	}
	if page > pages {
		page = pages
	}
	start := (page - 1) * size
	end := start + size
	if start > len(items) {
		start = len(items)
	}
	if end > len(items) {
		end = len(items)
	}
	return Page[T]{
		Items: items[start:end],
		Page:  page,
		Pages: pages,
		Total: len(items),
		Size:  size,
	}
}

// SplitColumns distributes items across n display columns by stride:
// column i holds items i, i+n, i+2n, ...
func SplitColumns[T any](items []T, n int) [][]T {
	if n < 1 {
		n = 1
	}
	cols := make([][]T, n)
	for i := range cols {
		for j := i; j < len(items); j += n {
			cols[i] = append(cols[i], items[j])
		}
	}
	return cols
}
