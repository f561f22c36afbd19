package assetstore

import (
	"github.com/spf13/cast"
)

// VersionKey identifies one snapshot of an asset. It is usually a
// wall-clock or snowflake timestamp but the store only needs it to be
// unique and orderable.
type VersionKey int64

const (
	FieldName         = "name"
	FieldModifiedTime = "modified_time"
	FieldStarred      = "starred"
	FieldMutation     = "mutation"
)

// VersionRecord is an application-defined payload. The store maintains the
// name, modified_time and starred fields; everything else passes through
// untouched.
type VersionRecord map[string]any

func (rec VersionRecord) Name() string {
	return cast.ToString(rec[FieldName])
}

func (rec VersionRecord) ModifiedTime() VersionKey {
	return VersionKey(cast.ToInt64(rec[FieldModifiedTime]))
}

func (rec VersionRecord) Starred() bool {
	return cast.ToBool(rec[FieldStarred])
}

func (rec VersionRecord) MutationTag() string {
	return cast.ToString(rec[FieldMutation])
}

func (rec VersionRecord) Clone() VersionRecord {
	newRec := make(VersionRecord, len(rec))

	for k, v := range rec {
		newRec[k] = v
	}

	return newRec
}

// Asset is a named entity with a history of payload snapshots and a pointer
// to the current one. Versions is never empty and Current always indexes an
// existing entry; every operation in this package preserves both.
type Asset struct {
	Name     string                       `json:"name" yaml:"name"`
	Current  VersionKey                   `json:"current" yaml:"current"`
	Versions map[VersionKey]VersionRecord `json:"versions" yaml:"versions"`
}

func (asset Asset) Clone() Asset {
	versions := make(map[VersionKey]VersionRecord, len(asset.Versions))

	for key, rec := range asset.Versions {
		versions[key] = rec.Clone()
	}

	return Asset{
		Name:     asset.Name,
		Current:  asset.Current,
		Versions: versions,
	}
}

func (asset Asset) CurrentRecord() (VersionRecord, bool) {
	rec, ok := asset.Versions[asset.Current]

	return rec, ok
}

// Catalog maps asset keys to their versioned assets. The plain nested
// key-value shape keeps it directly serializable.
type Catalog map[string]Asset

func (catalog Catalog) Clone() Catalog {
	newCatalog := make(Catalog, len(catalog))

	for key, asset := range catalog {
		newCatalog[key] = asset.Clone()
	}

	return newCatalog
}

// Ref is an indirect pointer to one asset version. Resolved is false when
// the asset was absent at build time, so "no such asset" and "no versions"
// read the same to callers.
type Ref struct {
	Name     string     `json:"name" yaml:"name"`
	Version  VersionKey `json:"version" yaml:"version"`
	Resolved bool       `json:"resolved" yaml:"resolved"`
}
