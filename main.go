// emoji-inventory opens the inventory console on the local terminal.
//
//	emoji-inventory [--name alice] [--db inventories.db] [--slots 6]
//	emoji-inventory --db inventories.db --print
//	emoji-inventory --db inventories.db --name alice --reset
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"emoji-inventory/internal/actor"
	"emoji-inventory/internal/console"
	"emoji-inventory/internal/inventory"
	"emoji-inventory/internal/item"
	"emoji-inventory/internal/render"
	"emoji-inventory/internal/store"

	"github.com/gdamore/tcell/v2"
)

func main() {
	name := flag.String("name", os.Getenv("USER"), "Inventory owner")
	dbFile := flag.String("db", "", "Inventory database; empty keeps the inventory in memory")
	catalogFile := flag.String("catalog", "", "Optional JSON item catalog")
	slots := flag.Int("slots", inventory.DefaultSize, "Slots in a new inventory")
	printOnly := flag.Bool("print", false, "Print every stored inventory and exit")
	reset := flag.Bool("reset", false, "Delete the stored inventory of --name and exit")
	flag.Parse()

	if err := run(*name, *dbFile, *catalogFile, *slots, mode{print: *printOnly, reset: *reset}); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// mode selects a one-shot database command instead of the console.
type mode struct {
	print bool
	reset bool
}

func run(name, dbFile, catalogFile string, slots int, m mode) error {
	catalog := item.Default()
	if catalogFile != "" {
		var err error
		if catalog, err = item.LoadFile(catalogFile); err != nil {
			return err
		}
	}
	if name == "" {
		name = "player"
	}

	var db *store.Store
	if dbFile != "" {
		var err error
		if db, err = store.Open(dbFile); err != nil {
			return err
		}
		defer db.Close()
	}
	if (m.print || m.reset) && db == nil {
		return errors.New("--print and --reset need --db")
	}
	switch {
	case m.print:
		return printStored(os.Stdout, db, catalog)
	case m.reset:
		return resetStored(os.Stdout, db, name)
	}

	a, err := openActor(db, catalog, name, slots)
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	// The console owns the terminal, so log lines would garble it.
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	con, err := console.New(a, screen, catalog.Definitions(), logger)
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	con.Run()
	screen.Fini()

	fmt.Println(render.Text(a.Inventory(), render.TextOptions{Glyphs: true}))
	if db != nil {
		return db.Save(a, a.Inventory().Snapshot())
	}
	return nil
}

func openActor(db *store.Store, catalog item.Catalog, name string, slots int) (*actor.Actor, error) {
	if db == nil {
		return actor.New(name, catalog, slots)
	}
	rec, err := db.Load(actor.IDFor(name))
	if errors.Is(err, store.ErrNotFound) {
		return actor.New(name, catalog, slots)
	}
	if err != nil {
		return nil, err
	}
	return actor.FromSnapshot(name, catalog, rec.Snapshot)
}

// printStored writes one colored line per stored inventory.
func printStored(w io.Writer, db *store.Store, catalog item.Catalog) error {
	recs, err := db.All()
	if err != nil {
		return err
	}
	for _, rec := range recs {
		a, err := actor.FromSnapshot(rec.Name, catalog, rec.Snapshot)
		if err != nil {
			fmt.Fprintf(w, "%-16s <unreadable: %v>\n", rec.Name, err)
			continue
		}
		line := render.Text(a.Inventory(), render.TextOptions{Glyphs: true, Color: true})
		fmt.Fprintf(w, "%-16s %s  (saved %s)\n", rec.Name, line, rec.SavedAt.Format("2006-01-02 15:04"))
	}
	return nil
}

// resetStored deletes name's stored inventory so the next session starts
// empty. It is the way out when a stored record no longer fits the catalog.
func resetStored(w io.Writer, db *store.Store, name string) error {
	id := actor.IDFor(name)
	if _, err := db.Load(id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			fmt.Fprintf(w, "%s has no stored inventory.\n", name)
			return nil
		}
		// An undecodable record is exactly what a reset should clear.
		fmt.Fprintf(w, "%s: %v\n", name, err)
	}
	if err := db.Delete(id); err != nil {
		return err
	}
	fmt.Fprintf(w, "Deleted %s's inventory.\n", name)
	return nil
}
