package assetstore_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sgostarter/libsketch/assetstore"
	"github.com/sgostarter/libsketch/assetstore/impls/fmstorage"
)

func TestStore(t *testing.T) {
	store := assetstore.NewStore(nil, nil, nil)

	err := store.CreateAsset("shape", assetstore.VersionRecord{"w": 10})
	assert.Nil(t, err)

	err = store.CreateAsset("shape", assetstore.VersionRecord{"w": 11})
	assert.NotNil(t, err)

	err = store.AddVersion("shape", assetstore.VersionRecord{"w": 20})
	assert.Nil(t, err)

	asset, ok := store.GetAsset("shape")
	assert.True(t, ok)
	assert.Len(t, asset.Versions, 2)

	ref := store.GetCurrentRef("shape")
	assert.True(t, ref.Resolved)

	rec, ok := store.GetVersion("shape", ref.Version)
	assert.True(t, ok)
	assert.EqualValues(t, 20, rec["w"])

	err = store.RenameAsset("shape", "shape2")
	assert.Nil(t, err)

	_, ok = store.GetAsset("shape")
	assert.False(t, ok)

	asset, ok = store.GetAsset("shape2")
	assert.True(t, ok)

	for _, v := range asset.Versions {
		assert.EqualValues(t, "shape2", v.Name())
	}

	err = store.AddVersion("missing", assetstore.VersionRecord{})
	assert.NotNil(t, err)

	err = store.DeleteAsset("shape2")
	assert.Nil(t, err)

	ref = store.GetCurrentRef("shape2")
	assert.False(t, ref.Resolved)
}

func TestStoreMutateAndSweep(t *testing.T) {
	store := assetstore.NewStore(nil, assetstore.SnowflakeKeys(), nil)

	err := store.CreateAsset("doc", assetstore.VersionRecord{"rev": 0})
	assert.Nil(t, err)

	for rev := 1; rev <= 5; rev++ {
		err = store.MutateVersion("resize-1", "doc", assetstore.VersionRecord{"rev": rev})
		assert.Nil(t, err)
	}

	asset, ok := store.GetAsset("doc")
	assert.True(t, ok)
	assert.Len(t, asset.Versions, 2)

	cur, ok := asset.CurrentRecord()
	assert.True(t, ok)
	assert.EqualValues(t, 5, cur["rev"])

	err = store.MutateVersion("move-2", "doc", assetstore.VersionRecord{"rev": 6})
	assert.Nil(t, err)

	asset, _ = store.GetAsset("doc")
	assert.Len(t, asset.Versions, 3)

	err = store.RemoveUnusedVersions("doc", nil)
	assert.Nil(t, err)

	asset, _ = store.GetAsset("doc")
	assert.Len(t, asset.Versions, 1)
}

func TestStorePersistence(t *testing.T) {
	root := t.TempDir()

	storage := fmstorage.NewFMStorage(root, nil)

	store := assetstore.NewStore(storage, nil, nil)

	err := store.CreateAsset("shape", assetstore.VersionRecord{"w": 10})
	assert.Nil(t, err)

	err = store.AddVersion("shape", assetstore.VersionRecord{
		"w":                          20,
		assetstore.FieldModifiedTime: int64(9999999999),
	})
	assert.Nil(t, err)

	err = store.SetStarred("shape", 9999999999, true)
	assert.Nil(t, err)

	// a second store over the same backing file sees everything
	reloaded := assetstore.NewStore(fmstorage.NewFMStorage(root, nil), nil, nil)

	asset, ok := reloaded.GetAsset("shape")
	assert.True(t, ok)
	assert.Len(t, asset.Versions, 2)
	assert.EqualValues(t, 9999999999, asset.Current)
	assert.True(t, asset.Versions[9999999999].Starred())
}
