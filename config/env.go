package config

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"sync"
)

const (
	defaultAppEnv           = "local"
	defaultStorageDisk      = "local"
	defaultStorageLocalRoot = "data"
	defaultAccountsFile     = "accounts.csv"
	defaultOrdersFile       = "orders.csv"
	defaultLegacyFile       = "legacy_orders.csv"
)

var (
	loadOnce sync.Once
	loadErr  error

	mu     sync.RWMutex
	values = defaultValues()
)

func Load() error {
	loadOnce.Do(func() {
		loadErr = loadFromFiles("config/app.json", ".env")
	})
	return loadErr
}

func defaultValues() map[string]string {
	return map[string]string{
		"APP_ENV":               defaultAppEnv,
		"STORAGE_DISK":          defaultStorageDisk,
		"STORAGE_LOCAL_ROOT":    defaultStorageLocalRoot,
		"ACCOUNTS_FILE":         defaultAccountsFile,
		"ORDERS_FILE":           defaultOrdersFile,
		"LEGACY_ORDERS_FILE":    defaultLegacyFile,
		"ADMIN_OVERRIDE":        "",
		"ADMIN_OVERRIDE_HASH":   "",
		"ADMIN_CANCEL_OVERRIDE": "false",
	}
}

func AppEnv() string {
	_ = Load()
	return get("APP_ENV", defaultAppEnv)
}

// ── Tables ───────────────────────────────────────────────────────────────────

// AccountsFile is the path of the accounts table on the active storage disk.
func AccountsFile() string {
	_ = Load()
	return get("ACCOUNTS_FILE", defaultAccountsFile)
}

// OrdersFile is the path of the account-backed orders table.
func OrdersFile() string {
	_ = Load()
	return get("ORDERS_FILE", defaultOrdersFile)
}

// LegacyOrdersFile is the path of the password-per-order legacy table.
func LegacyOrdersFile() string {
	_ = Load()
	return get("LEGACY_ORDERS_FILE", defaultLegacyFile)
}

// ── Storage ──────────────────────────────────────────────────────────────────

func StorageDisk() string {
	_ = Load()
	return get("STORAGE_DISK", defaultStorageDisk)
}

func StorageLocalRoot() string {
	_ = Load()
	return get("STORAGE_LOCAL_ROOT", defaultStorageLocalRoot)
}

func StorageS3Bucket() string   { _ = Load(); return get("S3_BUCKET", "") }
func StorageS3Region() string   { _ = Load(); return get("S3_REGION", "us-east-1") }
func StorageS3Key() string      { _ = Load(); return get("S3_KEY", "") }
func StorageS3Secret() string   { _ = Load(); return get("S3_SECRET", "") }
func StorageS3Endpoint() string { _ = Load(); return get("S3_ENDPOINT", "") }

// ── Admin override ───────────────────────────────────────────────────────────

// AdminOverride is the plain-text skeleton-key credential used by the legacy
// password-per-order commands. Empty means no plain-text override is configured.
func AdminOverride() string {
	_ = Load()
	return get("ADMIN_OVERRIDE", "")
}

// AdminOverrideHash is the bcrypt-hash alternative to ADMIN_OVERRIDE.
func AdminOverrideHash() string {
	_ = Load()
	return get("ADMIN_OVERRIDE_HASH", "")
}

// AdminCancelOverride reports whether an ADMIN account may cancel orders
// belonging to another user. Off by default.
func AdminCancelOverride() bool {
	_ = Load()
	switch strings.ToLower(get("ADMIN_CANCEL_OVERRIDE", "false")) {
	case "1", "true", "yes", "on":
		return true
	default:
		return false
	}
}

func loadFromFiles(configPath, envPath string) error {
	loaded := defaultValues()

	if err := mergeJSONConfig(configPath, loaded); err != nil {
		if !os.IsNotExist(err) {
			return err
		}
	}

	if err := mergeDotEnv(envPath, loaded); err != nil {
		if !os.IsNotExist(err) {
			return err
		}
	}

	mu.Lock()
	values = loaded
	mu.Unlock()

	return nil
}

func mergeJSONConfig(path string, out map[string]string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	var raw map[string]interface{}
	if err := json.NewDecoder(file).Decode(&raw); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}

	for key, val := range raw {
		s, ok := val.(string)
		if !ok {
			continue
		}

		k := strings.ToUpper(strings.TrimSpace(key))
		if k == "" {
			continue
		}
		out[k] = strings.TrimSpace(s)
	}

	return nil
}

func mergeDotEnv(path string, out map[string]string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		idx := strings.IndexByte(line, '=')
		if idx <= 0 {
			continue
		}

		key := strings.ToUpper(strings.TrimSpace(line[:idx]))
		value := strings.TrimSpace(line[idx+1:])
		value = strings.Trim(value, `"'`)
		if key == "" {
			continue
		}
		out[key] = value
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	return nil
}

// get resolves key with process-environment precedence over .env/app.json,
// so credentials like ADMIN_OVERRIDE can be injected per invocation.
func get(key, fallback string) string {
	if env := strings.TrimSpace(os.Getenv(key)); env != "" {
		return env
	}

	mu.RLock()
	defer mu.RUnlock()

	if value := strings.TrimSpace(values[key]); value != "" {
		return value
	}

	return fallback
}

// Get reads any config key by name with an optional fallback.
// Keys from .env and app.json are available after config.Load().
func Get(key, fallback string) string {
	_ = Load()
	return get(key, fallback)
}
