package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

// Source supplies the full immutable product list at startup.
type Source interface {
	Load(ctx context.Context) ([]Product, error)
}

// JSONSource reads the catalog from a seed file on disk.
type JSONSource struct {
	Path string
}

func NewJSONSource(path string) *JSONSource { return &JSONSource{Path: path} }

func (s *JSONSource) Load(_ context.Context) ([]Product, error) {
	b, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("catalog: read %s: %w", s.Path, err)
	}
	var products []Product
	if err := json.Unmarshal(b, &products); err != nil {
		return nil, fmt.Errorf("catalog: parse %s: %w", s.Path, err)
	}
	return products, nil
}

func (s *JSONSource) String() string { return fmt.Sprintf("json(%s)", s.Path) }

// DBSource loads the catalog from the products and price_breaks tables.
// Runtime access stays read-only; writes happen through cmd/tools/seedcatalog.
type DBSource struct {
	db *gorm.DB
}

func NewDBSource(db *gorm.DB) *DBSource { return &DBSource{db: db} }

func (s *DBSource) Load(ctx context.Context) ([]Product, error) {
	var products []Product
	err := s.db.WithContext(ctx).
		Preload("PriceBreaks", func(db *gorm.DB) *gorm.DB { return db.Order("min_qty ASC") }).
		Order("id ASC").
		Find(&products).Error
	if err != nil {
		return nil, fmt.Errorf("catalog: load from db: %w", err)
	}
	return products, nil
}

func (s *DBSource) String() string { return "mysql" }

func IsDuplicateKey(err error) bool {
	var me *mysql.MySQLError
	if errors.As(err, &me) {
		return me.Number == 1062
	}
	return false
}
