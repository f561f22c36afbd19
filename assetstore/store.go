package assetstore

import (
	"sync"

	"github.com/sgostarter/i/commerr"
	"github.com/sgostarter/i/l"
)

// Store serializes writers over one in-memory catalog and persists a
// snapshot after every mutation. The catalog operations themselves are
// pure, so each logical operation is a single swap of the held value.
func NewStore(storage Storage, keys KeyAllocator, logger l.Wrapper) *Store {
	if logger == nil {
		logger = l.NewNopLoggerWrapper()
	}

	logger = logger.WithFields(l.StringField(l.ClsKey, "assetStore"))

	if keys == nil {
		keys = ClockKeys()
	}

	store := &Store{
		logger:  logger,
		storage: storage,
		keys:    keys,
		catalog: Catalog{},
	}

	if storage != nil {
		catalog, err := storage.Load()
		if err != nil {
			logger.WithFields(l.ErrorField(err)).Error("load catalog failed")
		} else if catalog != nil {
			store.catalog = catalog
		}
	}

	return store
}

type Store struct {
	logger  l.Wrapper
	storage Storage
	keys    KeyAllocator

	lock    sync.RWMutex
	catalog Catalog
}

func (impl *Store) change(fn func(catalog Catalog) (Catalog, error)) error {
	impl.lock.Lock()
	defer impl.lock.Unlock()

	newCatalog, err := fn(impl.catalog)
	if err != nil {
		return err
	}

	if impl.storage != nil {
		if err = impl.storage.Save(newCatalog); err != nil {
			impl.logger.WithFields(l.ErrorField(err)).Error("save catalog failed")

			return err
		}
	}

	impl.catalog = newCatalog

	return nil
}

func (impl *Store) CreateAsset(name string, payload VersionRecord) error {
	return impl.change(func(catalog Catalog) (Catalog, error) {
		if _, exists := catalog[name]; exists {
			return nil, commerr.ErrAlreadyExists
		}

		newCatalog := catalog.Clone()
		newCatalog[name] = NewAsset(name, payload, impl.keys())

		return newCatalog, nil
	})
}

func (impl *Store) changeAsset(name string, fn func(asset Asset) Asset) error {
	return impl.change(func(catalog Catalog) (Catalog, error) {
		asset, exists := catalog[name]
		if !exists {
			return nil, commerr.ErrNotFound
		}

		newCatalog := catalog.Clone()
		newCatalog[name] = fn(asset)

		return newCatalog, nil
	})
}

func (impl *Store) AddVersion(name string, payload VersionRecord) error {
	return impl.changeAsset(name, func(asset Asset) Asset {
		return AddVersion(asset, payload, impl.keys())
	})
}

func (impl *Store) ReplaceCurrent(name string, payload VersionRecord) error {
	return impl.changeAsset(name, func(asset Asset) Asset {
		return ReplaceCurrent(asset, payload)
	})
}

func (impl *Store) MutateVersion(tag, name string, payload VersionRecord) error {
	return impl.changeAsset(name, func(asset Asset) Asset {
		return MutateVersion(tag, asset, payload, impl.keys())
	})
}

func (impl *Store) DeleteVersion(name string, key VersionKey) error {
	return impl.changeAsset(name, func(asset Asset) Asset {
		return DeleteVersion(asset, key)
	})
}

func (impl *Store) RemoveUnusedVersions(name string, isUsed func(VersionRecord) bool) error {
	return impl.changeAsset(name, func(asset Asset) Asset {
		return RemoveUnusedVersions(asset, isUsed)
	})
}

func (impl *Store) SetStarred(name string, key VersionKey, starred bool) error {
	return impl.changeAsset(name, func(asset Asset) Asset {
		return SetStarred(asset, key, starred)
	})
}

// RenameAsset moves the asset under the new catalog key and rewrites the
// name on the root and every version record in one update.
func (impl *Store) RenameAsset(name, newName string) error {
	return impl.change(func(catalog Catalog) (Catalog, error) {
		asset, exists := catalog[name]
		if !exists {
			return nil, commerr.ErrNotFound
		}

		if _, exists = catalog[newName]; exists {
			return nil, commerr.ErrAlreadyExists
		}

		newCatalog := catalog.Clone()
		delete(newCatalog, name)
		newCatalog[newName] = Rename(asset, newName)

		return newCatalog, nil
	})
}

// DeleteAsset removes the whole catalog entry; this, not DeleteVersion, is
// how an asset disappears entirely.
func (impl *Store) DeleteAsset(name string) error {
	return impl.change(func(catalog Catalog) (Catalog, error) {
		if _, exists := catalog[name]; !exists {
			return nil, commerr.ErrNotFound
		}

		newCatalog := catalog.Clone()
		delete(newCatalog, name)

		return newCatalog, nil
	})
}

func (impl *Store) GetAsset(name string) (Asset, bool) {
	impl.lock.RLock()
	defer impl.lock.RUnlock()

	asset, ok := impl.catalog[name]
	if !ok {
		return Asset{}, false
	}

	return asset.Clone(), true
}

func (impl *Store) GetVersion(name string, key VersionKey) (VersionRecord, bool) {
	impl.lock.RLock()
	defer impl.lock.RUnlock()

	rec, ok := GetVersion(impl.catalog, name, key)
	if !ok {
		return nil, false
	}

	return rec.Clone(), true
}

func (impl *Store) GetCurrentRef(name string) Ref {
	impl.lock.RLock()
	defer impl.lock.RUnlock()

	return GetCurrentRef(impl.catalog, name)
}

func (impl *Store) Snapshot() Catalog {
	impl.lock.RLock()
	defer impl.lock.RUnlock()

	return impl.catalog.Clone()
}
