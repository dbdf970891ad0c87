// Command gamehall serves the game API over HTTP.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/lmeyer/gamehall/internal/server"
	"github.com/lmeyer/gamehall/internal/trophy"
)

func main() {
	var (
		addr    = flag.String("addr", ":8080", "listen address")
		dbPath  = flag.String("db", "gamehall.db", "path to the trophy database (empty disables persistence)")
		workers = flag.Int("workers", runtime.NumCPU(), "search workers for hard difficulty")
	)
	flag.Parse()

	if err := run(*addr, *dbPath, *workers); err != nil {
		fmt.Fprintf(os.Stderr, "gamehall: %v\n", err)
		os.Exit(1)
	}
}

func run(addr, dbPath string, workers int) error {
	if dbPath == "" {
		// Ephemeral store; trophies last until the process exits.
		dbPath = ":memory:"
		log.Println("no trophy database path, running without persistence")
	}
	store, err := trophy.NewStore(dbPath)
	if err != nil {
		return err
	}
	defer store.Close()

	svc := server.NewService(trophy.NewHall(store), workers)
	app := server.NewApp(svc)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sig
		log.Println("shutting down")
		if err := app.Shutdown(); err != nil {
			log.Printf("shutdown: %v", err)
		}
	}()

	log.Printf("listening on %s", addr)
	return app.Listen(addr)
}
