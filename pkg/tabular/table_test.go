package tabular_test

import (
	"errors"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/forno/pkg/storage"
	"github.com/shashiranjanraj/forno/pkg/tabular"
)

var fields = []string{"customer", "size", "order_time"}

func TestLoadMissingFileIsEmptyTable(t *testing.T) {
	d := storage.NewLocal(t.TempDir())

	records, err := tabular.Load(d, "never-written.csv", fields)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	d := storage.NewLocal(t.TempDir())

	in := []tabular.Record{
		{"customer": "mario", "size": "large", "order_time": "12:01"},
		{"customer": "luigi", "size": "small", "order_time": "12:02"},
		{"customer": "mario", "size": "medium", "order_time": "12:03"},
	}
	require.NoError(t, tabular.Save(d, "orders.csv", fields, in))

	out, err := tabular.Load(d, "orders.csv", fields)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestSaveEmptyTableKeepsHeader(t *testing.T) {
	d := storage.NewLocal(t.TempDir())

	require.NoError(t, tabular.Save(d, "orders.csv", fields, nil))

	data, err := d.Get("orders.csv")
	require.NoError(t, err)
	assert.Equal(t, "customer,size,order_time\n", string(data))

	records, err := tabular.Load(d, "orders.csv", fields)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestLoadTrimsWhitespaceIdempotently(t *testing.T) {
	d := storage.NewLocal(t.TempDir())
	raw := "customer , size , order_time\nmario ,  large,12:01 \n"
	require.NoError(t, d.Put("orders.csv", []byte(raw)))

	records, err := tabular.Load(d, "orders.csv", fields)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, tabular.Record{
		"customer": "mario", "size": "large", "order_time": "12:01",
	}, records[0])

	// Re-saving and re-loading already-trimmed values changes nothing.
	require.NoError(t, tabular.Save(d, "orders.csv", fields, records))
	again, err := tabular.Load(d, "orders.csv", fields)
	require.NoError(t, err)
	assert.Equal(t, records, again)
}

func TestLoadIgnoresUnknownColumnsAndShortRows(t *testing.T) {
	d := storage.NewLocal(t.TempDir())
	raw := "customer,flavour,size,order_time\nmario,extra,large,12:01\nluigi,cheese\n"
	require.NoError(t, d.Put("orders.csv", []byte(raw)))

	records, err := tabular.Load(d, "orders.csv", fields)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "large", records[0]["size"])
	assert.NotContains(t, records[0], "flavour")
	assert.Equal(t, tabular.Record{
		"customer": "luigi", "size": "", "order_time": "",
	}, records[1])
}

func TestAppendWritesHeaderExactlyOnce(t *testing.T) {
	d := storage.NewLocal(t.TempDir())

	require.NoError(t, tabular.Append(d, "orders.csv", fields,
		tabular.Record{"customer": "mario", "size": "large", "order_time": "12:01"}))
	require.NoError(t, tabular.Append(d, "orders.csv", fields,
		tabular.Record{"customer": "luigi", "size": "small", "order_time": "12:02"}))

	data, err := d.Get("orders.csv")
	require.NoError(t, err)
	assert.Equal(t,
		"customer,size,order_time\nmario,large,12:01\nluigi,small,12:02\n",
		string(data))
}

func TestLoadUnreadableFileIsStorageUnavailable(t *testing.T) {
	records, err := tabular.Load(brokenDisk{}, "orders.csv", fields)
	assert.Nil(t, records)
	require.Error(t, err)
	assert.ErrorIs(t, err, tabular.ErrStorageUnavailable)
}

// brokenDisk exists but cannot be read.
type brokenDisk struct{}

func (brokenDisk) Put(string, []byte) error            { return nil }
func (brokenDisk) Append(string, []byte) error         { return nil }
func (brokenDisk) Get(string) ([]byte, error)          { return nil, errors.New("disk on fire") }
func (brokenDisk) GetStream(string) (io.ReadCloser, error) {
	return nil, errors.New("disk on fire")
}
func (brokenDisk) Exists(string) bool                      { return true }
func (brokenDisk) Missing(string) bool                     { return false }
func (brokenDisk) Size(string) (int64, error)              { return 0, nil }
func (brokenDisk) LastModified(string) (time.Time, error)  { return time.Time{}, nil }
func (brokenDisk) Delete(string) error                     { return nil }
func (brokenDisk) Copy(string, string) error               { return nil }
func (brokenDisk) Move(string, string) error               { return nil }
func (brokenDisk) Files(string) ([]string, error)          { return nil, nil }
