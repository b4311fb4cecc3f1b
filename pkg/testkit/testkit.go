// Package testkit provides table-file fixtures for forno's tests: a disk
// rooted in a temp directory, raw CSV seeding, and row-level assertions.
package testkit

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/forno/pkg/storage"
	"github.com/shashiranjanraj/forno/pkg/tabular"
)

// TempDisk returns a local disk rooted in a fresh temp directory that is
// cleaned up with the test.
func TempDisk(t *testing.T) storage.Disk {
	t.Helper()
	return storage.NewLocal(t.TempDir())
}

// SeedTable writes raw CSV content to path on d. Leading whitespace per line
// is stripped so fixtures can be indented in test source.
func SeedTable(t *testing.T, d storage.Disk, path, raw string) {
	t.Helper()

	lines := strings.Split(strings.TrimSpace(raw), "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSpace(l)
	}
	require.NoError(t, d.Put(path, []byte(strings.Join(lines, "\n")+"\n")))
}

// ReadRaw returns the raw bytes of the file at path as a string.
func ReadRaw(t *testing.T, d storage.Disk, path string) string {
	t.Helper()
	data, err := d.Get(path)
	require.NoError(t, err)
	return string(data)
}

// LoadRecords loads the table at path, failing the test on any error.
func LoadRecords(t *testing.T, d storage.Disk, path string, fields []string) []tabular.Record {
	t.Helper()
	records, err := tabular.Load(d, path, fields)
	require.NoError(t, err)
	return records
}

// RequireRowCount asserts that the table at path holds exactly n data rows.
func RequireRowCount(t *testing.T, d storage.Disk, path string, fields []string, n int) {
	t.Helper()
	require.Len(t, LoadRecords(t, d, path, fields), n)
}
