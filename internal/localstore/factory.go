package localstore

import (
	"fmt"
	"os"
)

type FactoryResult struct {
	Driver string
	Store  Store
}

// FromEnv picks the cart storage driver. CARTSTORE_DRIVER=file persists
// under CARTSTORE_DIR; mem keeps the cart for the process lifetime only.
func FromEnv() (FactoryResult, error) {
	driver := os.Getenv("CARTSTORE_DRIVER")
	if driver == "" {
		driver = "file"
	}

	switch driver {
	case "file":
		baseDir := envOr("CARTSTORE_DIR", "./storage/cart")
		secret := envOr("CARTSTORE_SECRET", "promosur-dev-secret")
		return FactoryResult{Driver: "file", Store: NewFile(baseDir, []byte(secret))}, nil

	case "mem":
		return FactoryResult{Driver: "mem", Store: NewMem()}, nil

	default:
		return FactoryResult{}, fmt.Errorf("unknown CARTSTORE_DRIVER: %s", driver)
	}
}

func envOr(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
