// seedcatalog creates the catalog tables and loads the JSON seed into
// MySQL, for running the app with CATALOG_DRIVER=mysql.
package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"promosur.cl/app/internal/modules/catalog"
)

func main() {
	_ = godotenv.Load()

	seedPath := flag.String("seed", "./data/products.json", "path to the catalog seed file")
	flag.Parse()

	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		log.Fatal("DB_DSN environment variable is required")
	}

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	sql := `
	CREATE TABLE IF NOT EXISTS products (
	  id INT NOT NULL,
	  name VARCHAR(255) NOT NULL,
	  sku VARCHAR(64) NOT NULL,
	  category VARCHAR(64) NOT NULL,
	  supplier VARCHAR(64) NOT NULL,
	  description TEXT,
	  image_url VARCHAR(512),
	  base_price INT NOT NULL,
	  stock INT NOT NULL DEFAULT 0,
	  colors_json JSON,
	  sizes_json JSON,
	  PRIMARY KEY (id),
	  KEY ix_products_category (category),
	  KEY ix_products_supplier (supplier)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;

	CREATE TABLE IF NOT EXISTS price_breaks (
	  id INT NOT NULL AUTO_INCREMENT,
	  product_id INT NOT NULL,
	  min_qty INT NOT NULL,
	  price INT NOT NULL,
	  discount DOUBLE,
	  PRIMARY KEY (id),
	  KEY ix_price_breaks_product_id (product_id),
	  CONSTRAINT fk_price_breaks_product FOREIGN KEY (product_id) REFERENCES products(id) ON DELETE CASCADE
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;
	`
	if err := db.Exec(sql).Error; err != nil {
		log.Fatalf("Failed to create tables: %v", err)
	}

	products, err := catalog.NewJSONSource(*seedPath).Load(context.Background())
	if err != nil {
		log.Fatalf("Failed to read seed: %v", err)
	}

	for _, p := range products {
		err := db.Create(&p).Error
		if err != nil && catalog.IsDuplicateKey(err) {
			// Re-seed: replace the row and its breaks.
			if err := db.Exec("DELETE FROM products WHERE id = ?", p.ID).Error; err != nil {
				log.Fatalf("Failed to replace product %d: %v", p.ID, err)
			}
			err = db.Create(&p).Error
		}
		if err != nil {
			log.Fatalf("Failed to insert product %d: %v", p.ID, err)
		}
	}

	log.Printf("Seeded %d products", len(products))
}
