package catalog

import (
	"fmt"
	"os"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

type FactoryResult struct {
	Driver string
	Source Source
}

// FromEnv picks the catalog source. CATALOG_DRIVER=json reads the seed
// file at CATALOG_PATH; CATALOG_DRIVER=mysql loads from DB_DSN.
func FromEnv() (FactoryResult, error) {
	driver := os.Getenv("CATALOG_DRIVER")
	if driver == "" {
		driver = "json"
	}

	switch driver {
	case "json":
		path := envOr("CATALOG_PATH", "./data/products.json")
		return FactoryResult{Driver: "json", Source: NewJSONSource(path)}, nil

	case "mysql":
		dsn := os.Getenv("DB_DSN")
		if dsn == "" {
			return FactoryResult{}, fmt.Errorf("catalog: DB_DSN required for mysql driver")
		}
		db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
		if err != nil {
			return FactoryResult{}, fmt.Errorf("catalog: connect mysql: %w", err)
		}
		return FactoryResult{Driver: "mysql", Source: NewDBSource(db)}, nil

	default:
		return FactoryResult{}, fmt.Errorf("unknown CATALOG_DRIVER: %s", driver)
	}
}

func envOr(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
