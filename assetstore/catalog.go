package assetstore

import (
	"github.com/sgostarter/libsketch/collections"
)

// GetVersion resolves a (name, version) pair with an explicit miss result;
// a dangling reference is not an error condition.
func GetVersion(catalog Catalog, name string, key VersionKey) (VersionRecord, bool) {
	asset, ok := catalog[name]
	if !ok {
		return nil, false
	}

	rec, ok := asset.Versions[key]

	return rec, ok
}

// GetCurrentRef builds a reference to the asset's current version. An
// absent asset yields an unresolved reference rather than an error.
func GetCurrentRef(catalog Catalog, name string) Ref {
	asset, ok := catalog[name]
	if !ok {
		return Ref{
			Name: name,
		}
	}

	return Ref{
		Name:     name,
		Version:  asset.Current,
		Resolved: true,
	}
}

func ResolveRef(catalog Catalog, ref Ref) (VersionRecord, bool) {
	if !ref.Resolved {
		return nil, false
	}

	return GetVersion(catalog, ref.Name, ref.Version)
}

// FindElementWithRefName finds the element whose reference points at the
// named asset, matching on the name component only: callers holding "the
// current version of asset X" do not care which version number that is.
func FindElementWithRefName[T any](items []T, refOf func(T) Ref, name string) (item T, ok bool) {
	idx, ok := collections.FindIndexWhere(items, func(candidate T) bool {
		return refOf(candidate).Name == name
	})
	if !ok {
		return
	}

	return items[idx], true
}

// ReplaceElementWithRefName swaps the first element referencing the named
// asset for newItem, returning a new slice. Without a match the input slice
// is returned unchanged.
func ReplaceElementWithRefName[T any](items []T, refOf func(T) Ref, name string, newItem T) []T {
	idx, ok := collections.FindIndexWhere(items, func(candidate T) bool {
		return refOf(candidate).Name == name
	})
	if !ok {
		return items
	}

	newItems := append(make([]T, 0, len(items)), items...)
	newItems[idx] = newItem

	return newItems
}
