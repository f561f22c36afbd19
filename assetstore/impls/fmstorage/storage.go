package fmstorage

import (
	"path/filepath"
	"sync"

	"github.com/sgostarter/i/stg"
	"github.com/sgostarter/libeasygo/stg/fs/rawfs"
	"github.com/sgostarter/libeasygo/stg/mwf"
	"github.com/sgostarter/libsketch/assetstore"
)

func NewFMStorage(root string, storage stg.FileStorage) assetstore.Storage {
	return NewFMStorageEx(root, storage, "catalog.json", false)
}

func NewFMStorageEx(root string, storage stg.FileStorage, fileName string, prettySerial bool) assetstore.Storage {
	if storage == nil {
		storage = rawfs.NewFSStorage("")
	}

	return &fmStorageImpl{
		catalogStorage: mwf.NewMemWithFile[assetstore.Catalog, mwf.Serial, mwf.Lock](
			assetstore.Catalog{}, &mwf.JSONSerial{
				MarshalIndent: prettySerial,
			}, &sync.RWMutex{}, filepath.Join(root, fileName), storage),
	}
}

type fmStorageImpl struct {
	catalogStorage *mwf.MemWithFile[assetstore.Catalog, mwf.Serial, mwf.Lock]
}

func (impl *fmStorageImpl) Load() (catalog assetstore.Catalog, err error) {
	impl.catalogStorage.Read(func(d assetstore.Catalog) {
		catalog = d.Clone()
	})

	return
}

func (impl *fmStorageImpl) Save(catalog assetstore.Catalog) error {
	return impl.catalogStorage.Change(func(_ assetstore.Catalog) (assetstore.Catalog, error) {
		return catalog.Clone(), nil
	})
}
