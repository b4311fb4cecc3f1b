// Package storage provides the filesystem abstraction behind forno's tables.
//
// Two drivers are available out of the box:
//   - "local"  — local filesystem (default)
//   - "s3"     — S3-compatible object storage (AWS S3, MinIO, R2, Spaces)
//
// Quick start:
//
//	// boot once (in the CLI's PersistentPreRun):
//	storage.Connect()
//
//	// default disk
//	storage.Put("orders.csv", data)
//	data, _ := storage.Get("orders.csv")
//
//	// named disk
//	storage.Use("s3").Put("backups/orders.csv.bak", data)
package storage

import (
	"io"
	"time"
)

// Disk is the storage driver interface. Every driver must implement this.
type Disk interface {
	// ── Write ──────────────────────────────────────────────────────────────────

	// Put writes content to path, creating parent directories as needed.
	Put(path string, content []byte) error

	// Append appends content to the file at path, creating it when absent.
	Append(path string, content []byte) error

	// ── Read ───────────────────────────────────────────────────────────────────

	// Get returns the full content of the file at path.
	Get(path string) ([]byte, error)

	// GetStream returns a ReadCloser for the file. Caller must close it.
	GetStream(path string) (io.ReadCloser, error)

	// ── Metadata ───────────────────────────────────────────────────────────────

	// Exists reports whether a file exists at path.
	Exists(path string) bool

	// Missing is the inverse of Exists.
	Missing(path string) bool

	// Size returns the byte size of the file.
	Size(path string) (int64, error)

	// LastModified returns the file's last-modified time.
	LastModified(path string) (time.Time, error)

	// ── Delete ─────────────────────────────────────────────────────────────────

	// Delete removes a file. Returns nil if the file did not exist.
	Delete(path string) error

	// ── Copy / Move ────────────────────────────────────────────────────────────

	// Copy creates a copy of src at dst.
	Copy(src, dst string) error

	// Move moves (renames) src to dst.
	Move(src, dst string) error

	// ── Listing ────────────────────────────────────────────────────────────────

	// Files lists non-recursive file paths directly inside directory.
	Files(directory string) ([]string, error)
}
