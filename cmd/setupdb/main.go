// cmd/setupdb/main.go
//
// One-shot database bootstrap: executes database/schema.sql against the
// configured Postgres instance. Useful for environments where the server's
// auto-migration is not wanted.
package main

import (
	"database/sql"
	"flag"
	"log"
	"os"

	_ "github.com/lib/pq"

	"github.com/storefront/ecommerce-backend/internal/config"
)

func main() {
	schemaPath := flag.String("schema", "database/schema.sql", "path to the schema file")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration: ", err)
	}

	schema, err := os.ReadFile(*schemaPath)
	if err != nil {
		log.Fatal("Failed to read schema file: ", err)
	}

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to open database: ", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}

	if _, err := db.Exec(string(schema)); err != nil {
		log.Fatal("Failed to execute schema: ", err)
	}

	rows, err := db.Query(`
		SELECT table_name
		FROM information_schema.tables
		WHERE table_schema = 'public'
		ORDER BY table_name`)
	if err != nil {
		log.Fatal("Failed to list tables: ", err)
	}
	defer rows.Close()

	log.Println("Schema applied. Tables:")
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			log.Fatal("Failed to scan table name: ", err)
		}
		log.Printf("  - %s", name)
	}
	if err := rows.Err(); err != nil {
		log.Fatal("Failed to iterate tables: ", err)
	}
}
