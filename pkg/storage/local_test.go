package storage_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/forno/pkg/storage"
)

func TestLocalPutGetDelete(t *testing.T) {
	d := storage.NewLocal(t.TempDir())

	require.True(t, d.Missing("a/orders.csv"))
	require.NoError(t, d.Put("a/orders.csv", []byte("hello")))
	require.True(t, d.Exists("a/orders.csv"))

	data, err := d.Get("a/orders.csv")
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))

	size, err := d.Size("a/orders.csv")
	require.NoError(t, err)
	assert.EqualValues(t, 5, size)

	require.NoError(t, d.Delete("a/orders.csv"))
	assert.True(t, d.Missing("a/orders.csv"))

	// Deleting a file that is already gone is not an error.
	assert.NoError(t, d.Delete("a/orders.csv"))
}

func TestLocalAppendCreatesAndExtends(t *testing.T) {
	d := storage.NewLocal(t.TempDir())

	require.NoError(t, d.Append("log.csv", []byte("one\n")))
	require.NoError(t, d.Append("log.csv", []byte("two\n")))

	data, err := d.Get("log.csv")
	require.NoError(t, err)
	assert.Equal(t, "one\ntwo\n", string(data))
}

func TestLocalCopyAndMove(t *testing.T) {
	d := storage.NewLocal(t.TempDir())
	require.NoError(t, d.Put("orders.csv", []byte("rows")))

	require.NoError(t, d.Copy("orders.csv", "orders.csv.bak"))
	assert.True(t, d.Exists("orders.csv"))
	assert.True(t, d.Exists("orders.csv.bak"))

	require.NoError(t, d.Move("orders.csv.bak", "archive/orders.csv.bak"))
	assert.True(t, d.Missing("orders.csv.bak"))

	data, err := d.Get("archive/orders.csv.bak")
	require.NoError(t, err)
	assert.Equal(t, "rows", string(data))
}

func TestLocalFilesListsOnlyFiles(t *testing.T) {
	d := storage.NewLocal(t.TempDir())
	require.NoError(t, d.Put("accounts.csv", []byte("a")))
	require.NoError(t, d.Put("orders.csv", []byte("b")))
	require.NoError(t, d.Put("nested/ignore.csv", []byte("c")))

	files, err := d.Files("")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"accounts.csv", "orders.csv"}, files)

	// A directory that does not exist lists as empty, not as an error.
	none, err := d.Files("no-such-dir")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestRegisterAndUseDisk(t *testing.T) {
	d := storage.NewLocal(t.TempDir())
	storage.RegisterDisk("test-disk", d)

	assert.Same(t, d, storage.Use("test-disk"))
	assert.Panics(t, func() { storage.Use("no-such-disk") })
}
