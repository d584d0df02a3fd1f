// Command migrate applies or rolls back the database schema.
//
//	migrate up
//	migrate down -steps 1
//	migrate version
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/social-insights-api/infrastructure/database/migrations"
	"github.com/vfg2006/social-insights-api/infrastructure/database/postgres"
	"github.com/vfg2006/social-insights-api/internal/config"
)

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	command := os.Args[1]
	flags := flag.NewFlagSet(command, flag.ExitOnError)
	steps := flags.Int("steps", 1, "number of migrations to roll back")
	if err := flags.Parse(os.Args[2:]); err != nil {
		logrus.Fatal(err)
	}

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("Error connecting to PostgreSQL")
	}
	defer conn.Close()

	switch command {
	case "up":
		err = migrations.Up(conn.DB)
	case "down":
		err = migrations.Down(conn.DB, *steps)
	case "version":
		var (
			version uint
			dirty   bool
		)
		version, dirty, err = migrations.Version(conn.DB)
		if err == nil {
			fmt.Printf("version=%d dirty=%t\n", version, dirty)
		}
	default:
		usage()
		os.Exit(2)
	}

	if err != nil {
		logrus.WithError(err).Fatalf("migrate %s failed", command)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: migrate <up|down|version> [-steps n]")
}
