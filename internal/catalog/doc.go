// Package catalog holds the seasonal catalog domain types and the pure
// filter and sort pipeline that turns the accumulated item list into the
// displayed view.
//
// # Derivation
//
// Derive is a pure function of (items, Criteria, IDSet, SortOption):
//
//	items ──> source ──> genre ──> search ──> favorites ──> stable sort ──> view
//
// Every predicate is optional and predicates combine with AND. Sorting is
// applied to a fresh slice with sort.SliceStable, so equal keys keep their
// arrival order and the accumulated list is never reordered in place.
//
// # Facets
//
// Source labels are free-form strings supplied by the remote API. BuildFacets
// discovers them (and genres) from the current dataset together with their
// frequencies instead of relying on a fixed enumeration.
package catalog
