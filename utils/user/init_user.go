// Command init_user creates a login for the Quanti backend.
//
//	go run ./utils/user -login alice -password secret -swipecard 12345
package main

import (
	"flag"
	"log"

	"github.com/ARQAP/quanti-backend/src/config"
	"github.com/ARQAP/quanti-backend/src/db"
	"github.com/ARQAP/quanti-backend/src/seed"
)

func main() {
	configPath := flag.String("config", "", "optional YAML configuration file")
	login := flag.String("login", "quanti", "login of the user")
	password := flag.String("password", "quanti", "password of the user")
	swipecard := flag.String("swipecard", "QUANTI-ADMIN", "swipecard code of the user")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	conn, err := db.Connect(cfg.Database.DSN)
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}
	if err := db.Migrate(conn); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	if err := seed.EnsureUser(conn, *login, *password, *swipecard); err != nil {
		log.Fatalf("failed to create user: %v", err)
	}
}
