package assetstore

import (
	"github.com/sgostarter/libsketch/collections"
)

// The operations below are pure: each returns a new Asset value and leaves
// its input untouched, so callers can swap whole snapshots atomically.

// NewAsset creates an asset from its first version. stamp is used when the
// payload carries no modified_time of its own.
func NewAsset(name string, payload VersionRecord, stamp VersionKey) Asset {
	asset := Asset{
		Name:     name,
		Versions: map[VersionKey]VersionRecord{},
	}

	return AddVersion(asset, payload, stamp)
}

// AddVersion appends a snapshot under its modified_time key and moves
// Current to it. An unstamped payload gets stamped with stamp. Adding a key
// that already exists is a no-op, which makes replays by timestamp
// idempotent.
func AddVersion(asset Asset, payload VersionRecord, stamp VersionKey) Asset {
	key := payload.ModifiedTime()
	if key == 0 {
		key = stamp
	}

	if _, exists := asset.Versions[key]; exists {
		return asset
	}

	rec := payload.Clone()
	rec[FieldModifiedTime] = int64(key)
	rec[FieldStarred] = false

	if rec.Name() == "" {
		rec[FieldName] = asset.Name
	}

	newAsset := asset.Clone()
	newAsset.Versions[key] = rec
	newAsset.Current = key

	return newAsset
}

// ReplaceCurrent overwrites the record at the existing Current key without
// creating history: edit without a new version. The payload's own
// modified_time, if any, is overridden to equal Current.
func ReplaceCurrent(asset Asset, payload VersionRecord) Asset {
	newAsset := asset.Clone()

	rec := payload.Clone()
	rec[FieldModifiedTime] = int64(asset.Current)

	if rec.Name() == "" {
		rec[FieldName] = asset.Name
	}

	newAsset.Versions[asset.Current] = rec

	return newAsset
}

// SetVersion moves Current to the payload's modified_time without touching
// Versions. The caller is responsible for having verified the key exists.
func SetVersion(asset Asset, payload VersionRecord) Asset {
	newAsset := asset.Clone()
	newAsset.Current = payload.ModifiedTime()

	return newAsset
}

// MutateVersion coalesces a rapid burst of same-cause edits: when tag
// matches the current record's mutation tag the payload replaces the
// current version in place, otherwise it starts a new history point.
func MutateVersion(tag string, asset Asset, payload VersionRecord, stamp VersionKey) Asset {
	rec := payload.Clone()
	rec[FieldMutation] = tag

	if cur, ok := asset.CurrentRecord(); ok && cur.MutationTag() == tag {
		return ReplaceCurrent(asset, rec)
	}

	return AddVersion(asset, rec, stamp)
}

// DeleteVersion removes one snapshot. Removing the last remaining version
// is a silent no-op; deleting the asset entirely is a catalog-level
// operation. When the deleted key was Current, Current moves to the highest
// remaining key.
func DeleteVersion(asset Asset, key VersionKey) Asset {
	if len(asset.Versions) <= 1 {
		return asset
	}

	if _, exists := asset.Versions[key]; !exists {
		return asset
	}

	newAsset := asset.Clone()
	delete(newAsset.Versions, key)

	if newAsset.Current == key {
		var highest VersionKey

		first := true

		for remaining := range newAsset.Versions {
			if first || remaining > highest {
				highest = remaining
				first = false
			}
		}

		newAsset.Current = highest
	}

	return newAsset
}

// RemoveUnusedVersions sweeps every version that is not current, not
// starred and not claimed by isUsed. A nil predicate keeps only current and
// starred versions. This is the one O(versions) operation of the store.
func RemoveUnusedVersions(asset Asset, isUsed func(VersionRecord) bool) Asset {
	if isUsed == nil {
		isUsed = func(VersionRecord) bool {
			return false
		}
	}

	newAsset := asset.Clone()

	newAsset.Versions = collections.FilterRemoveByValue(newAsset.Versions, func(rec VersionRecord) bool {
		return rec.ModifiedTime() != asset.Current && !rec.Starred() && !isUsed(rec)
	})

	return newAsset
}

// Rename propagates the new name to the asset root and every version record
// as one logical update.
func Rename(asset Asset, name string) Asset {
	newAsset := asset.Clone()
	newAsset.Name = name

	for _, rec := range newAsset.Versions {
		rec[FieldName] = name
	}

	return newAsset
}

func SetStarred(asset Asset, key VersionKey, starred bool) Asset {
	if _, exists := asset.Versions[key]; !exists {
		return asset
	}

	newAsset := asset.Clone()
	newAsset.Versions[key][FieldStarred] = starred

	return newAsset
}
