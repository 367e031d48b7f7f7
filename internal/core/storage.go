package core

import (
	"fmt"
	"os"

	"proteinlab/internal/infra/persistence/memory"
	"proteinlab/internal/infra/persistence/sqlite"
	"proteinlab/pkg/domain"
)

// StorageDriver identifies a concrete record store implementation.
type StorageDriver string

const (
	StorageMemory StorageDriver = "memory" // in-memory (default)
	StorageSQLite StorageDriver = "sqlite" // embedded sqlite snapshots
)

// OpenRecordStore selects a record store backend using environment
// variables. Defaults to the in-memory store when unset.
//
//	PROTEINLAB_STORAGE_DRIVER: memory|sqlite (default memory)
//	PROTEINLAB_SQLITE_DSN: sqlite source name (default :memory:)
func OpenRecordStore() (domain.RecordStore, error) {
	driver := os.Getenv("PROTEINLAB_STORAGE_DRIVER")
	if driver == "" {
		driver = string(StorageMemory)
	}
	switch StorageDriver(driver) {
	case StorageMemory:
		return memory.NewStore(), nil
	case StorageSQLite:
		return sqlite.NewStore(os.Getenv("PROTEINLAB_SQLITE_DSN"))
	default:
		return nil, fmt.Errorf("unknown storage driver %s", driver)
	}
}
