// Package blob selects a blob store backend from process environment.
package blob

import (
	"context"
	"fmt"
	"os"

	"proteinlab/internal/blob/core"
	"proteinlab/internal/infra/blob/memory"
	"proteinlab/internal/infra/blob/s3"
)

// OpenFromEnv constructs the configured blob store.
//
//	PROTEINLAB_BLOB_DRIVER: memory|s3 (default memory)
func OpenFromEnv(ctx context.Context) (core.Store, error) {
	driver := os.Getenv("PROTEINLAB_BLOB_DRIVER")
	if driver == "" {
		driver = string(core.DriverMemory)
	}
	switch core.Driver(driver) {
	case core.DriverMemory:
		return memory.New(), nil
	case core.DriverS3:
		return s3.OpenFromEnv(ctx)
	default:
		return nil, fmt.Errorf("unknown blob driver %s", driver)
	}
}
