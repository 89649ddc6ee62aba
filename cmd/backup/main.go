// Command backup exports, restores or clears the shop's persisted state
// from the command line, against the same storage the server uses.
package main

import (
	"database/sql"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/malokastory/elegance-backend/internal/backup"
	"github.com/malokastory/elegance-backend/internal/config"
	"github.com/malokastory/elegance-backend/internal/order"
	"github.com/malokastory/elegance-backend/internal/product"
	"github.com/malokastory/elegance-backend/internal/settings"
	"github.com/malokastory/elegance-backend/internal/storage"
)

func main() {
	exportPath := flag.String("export", "", "write a backup bundle to this file")
	importPath := flag.String("import", "", "restore a backup bundle from this file")
	clear := flag.Bool("clear", false, "remove all persisted shop data")
	flag.Parse()

	_ = godotenv.Load()
	cfg := config.Load()

	store, err := openStore(cfg)
	if err != nil {
		log.Fatalf("open storage: %v", err)
	}
	defer store.Close()

	svc := backup.NewService(
		product.NewService(product.NewKVRepository(store)),
		order.NewService(order.NewKVRepository(store)),
		settings.NewService(settings.NewKVRepository(store)),
		store,
	)

	switch {
	case *exportPath != "":
		bundle, err := svc.ExportAll()
		if err != nil {
			log.Fatalf("export: %v", err)
		}
		raw, err := json.MarshalIndent(bundle, "", "  ")
		if err != nil {
			log.Fatalf("encode bundle: %v", err)
		}
		if err := os.WriteFile(*exportPath, raw, 0o644); err != nil {
			log.Fatalf("write %s: %v", *exportPath, err)
		}
		fmt.Printf("exported to %s\n", *exportPath)
	case *importPath != "":
		raw, err := os.ReadFile(*importPath)
		if err != nil {
			log.Fatalf("read %s: %v", *importPath, err)
		}
		var bundle backup.Bundle
		if err := json.Unmarshal(raw, &bundle); err != nil {
			log.Fatalf("decode bundle: %v", err)
		}
		if err := svc.ImportAll(bundle); err != nil {
			log.Fatalf("import: %v", err)
		}
		fmt.Printf("imported from %s\n", *importPath)
	case *clear:
		if err := svc.ClearAll(); err != nil {
			log.Fatalf("clear: %v", err)
		}
		fmt.Println("persisted shop data removed")
	default:
		flag.Usage()
		os.Exit(2)
	}
}

func openStore(cfg config.Config) (storage.Store, error) {
	switch cfg.StorageBackend {
	case "memory":
		return storage.NewMemoryStore(), nil
	case "redis":
		return storage.NewRedisStore(cfg.RedisAddr), nil
	case "postgres":
		db, err := sql.Open("pgx", cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		if err := db.Ping(); err != nil {
			return nil, err
		}
		return storage.NewPostgresStore(db)
	default:
		return storage.NewSQLiteStore(cfg.SQLitePath)
	}
}
