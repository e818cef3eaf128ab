// inventory-server serves one persistent inventory per SSH login. Build:
//
//	go build -o inventory-server ./cmd/server
//
// Usage:
//
//	./inventory-server [--port 2222] [--key server_host_key] [--db inventories.db]
//	                   [--catalog items.json] [--slots 6]
//
// Connect with:
//
//	ssh -t -p 2222 alice@localhost
package main

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/pem"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"sync"
	"unicode"

	"emoji-inventory/internal/actor"
	"emoji-inventory/internal/console"
	"emoji-inventory/internal/inventory"
	"emoji-inventory/internal/item"
	internalssh "emoji-inventory/internal/ssh"
	"emoji-inventory/internal/store"

	"github.com/gdamore/tcell/v2"
	gossh "github.com/gliderlabs/ssh"
	xssh "golang.org/x/crypto/ssh"
)

func main() {
	port := flag.Int("port", 2222, "SSH server port")
	keyFile := flag.String("key", "server_host_key", "Path to the PEM-encoded host key (auto-generated if absent)")
	dbFile := flag.String("db", "inventories.db", "Path to the inventory database")
	catalogFile := flag.String("catalog", "", "Optional JSON item catalog (built-in items if empty)")
	slots := flag.Int("slots", inventory.DefaultSize, "Slots in a new inventory")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	fail := func(msg string, err error) {
		logger.Error(msg, "error", err)
		os.Exit(1)
	}

	if *slots < inventory.MinSize || *slots > inventory.MaxSize {
		fail("bad --slots", fmt.Errorf("%w: %d", inventory.ErrInvalidSize, *slots))
	}
	catalog := item.Default()
	if *catalogFile != "" {
		var err error
		if catalog, err = item.LoadFile(*catalogFile); err != nil {
			fail("load catalog", err)
		}
	}
	db, err := store.Open(*dbFile)
	if err != nil {
		fail("open database", err)
	}
	defer db.Close()

	signer, err := loadOrCreateHostKey(*keyFile, logger)
	if err != nil {
		fail("host key", err)
	}

	srv := newServer(db, catalog, *slots, logger)
	sshSrv := &gossh.Server{
		Addr:    fmt.Sprintf(":%d", *port),
		Handler: srv.handleSession,
		// Accept PTY requests from any client.
		PtyCallback: func(_ gossh.Context, _ gossh.Pty) bool { return true },
		// Any login name is accepted; the name selects the inventory.
		HostSigners: []gossh.Signer{signer},
	}

	logger.Info("inventory server listening", "port", *port, "db", *dbFile, "items", catalog.Len())
	if err := sshSrv.ListenAndServe(); err != nil {
		fail("serve", err)
	}
}

// ─── sessions ───────────────────────────────────────────────────────────────

// server holds what every session shares.
type server struct {
	db      *store.Store
	roster  *actor.Roster
	catalog *item.Registry
	slots   int
	logger  *slog.Logger
}

func newServer(db *store.Store, catalog *item.Registry, slots int, logger *slog.Logger) *server {
	return &server{
		db:      db,
		roster:  actor.NewRoster(),
		catalog: catalog,
		slots:   slots,
		logger:  logger,
	}
}

// allowedTerms lists the TERM values we hand to tcell's terminfo lookup.
var allowedTerms = map[string]bool{
	"xterm":                 true,
	"xterm-256color":        true,
	"screen":                true,
	"screen-256color":       true,
	"tmux":                  true,
	"tmux-256color":         true,
	"linux":                 true,
	"vt100":                 true,
	"vt220":                 true,
	"rxvt-unicode":          true,
	"rxvt-unicode-256color": true,
}

// maxNameBytes caps login names; longer names are cut on a rune boundary.
const maxNameBytes = 16

// sanitizeName drops non-printable runes and truncates to maxNameBytes.
func sanitizeName(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if !unicode.IsPrint(r) || unicode.IsSpace(r) {
			continue
		}
		if b.Len()+len(string(r)) > maxNameBytes {
			break
		}
		b.WriteRune(r)
	}
	return b.String()
}

// handleSession is the gliderlabs SSH handler for one connection. It blocks
// for the whole session so the connection stays open.
func (srv *server) handleSession(s gossh.Session) {
	pty, winCh, hasPTY := s.Pty()
	if !hasPTY {
		fmt.Fprintln(s, "This program needs a PTY. Connect with: ssh -t -p 2222 <host>")
		return
	}
	if !allowedTerms[pty.Term] {
		fmt.Fprintf(s, "Unsupported terminal %q. Try TERM=xterm-256color.\n", pty.Term)
		return
	}
	name := sanitizeName(s.User())
	if name == "" {
		fmt.Fprintln(s, "Please log in with a printable user name.")
		return
	}
	logger := srv.logger.With("actor", name, "remote", s.RemoteAddr().String())
	if srv.roster.Alive(actor.IDFor(name)) {
		fmt.Fprintf(s, "%s is already connected.\n", name)
		return
	}

	a, err := srv.loadActor(name)
	if err != nil {
		logger.Error("load inventory", "error", err)
		fmt.Fprintf(s, "Could not load your inventory: %v\n", err)
		return
	}
	if err := srv.roster.Spawn(a); err != nil {
		fmt.Fprintf(s, "%s is already connected.\n", name)
		return
	}
	defer srv.roster.Despawn(a.ID())
	logger.Info("session started", "online", len(srv.roster.Online()))

	tty := internalssh.NewTty(s, pty, winCh)
	termMu.Lock()
	_ = os.Setenv("TERM", pty.Term)
	screen, err := tcell.NewTerminfoScreenFromTty(tty)
	termMu.Unlock()
	if err != nil {
		fmt.Fprintf(s, "Terminal setup failed: %v\n", err)
		return
	}
	con, err := console.New(a, screen, srv.catalog.Definitions(), logger)
	if err != nil {
		logger.Error("console setup", "error", err)
		fmt.Fprintf(s, "Console setup failed: %v\n", err)
		return
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(s, "Screen init failed: %v\n", err)
		return
	}

	con.Run()
	screen.Fini()

	if err := srv.db.Save(a, a.Inventory().Snapshot()); err != nil {
		logger.Error("save inventory", "error", err)
		return
	}
	logger.Info("session ended")
}

// loadActor restores name's stored inventory, or creates an empty one for a
// first login.
func (srv *server) loadActor(name string) (*actor.Actor, error) {
	rec, err := srv.db.Load(actor.IDFor(name))
	switch {
	case errors.Is(err, store.ErrNotFound):
		return actor.New(name, srv.catalog, srv.slots)
	case err != nil:
		return nil, err
	}
	return actor.FromSnapshot(name, srv.catalog, rec.Snapshot)
}

// termMu serializes os.Setenv("TERM") around screen creation.
var termMu sync.Mutex

// ─── host key ───────────────────────────────────────────────────────────────

// loadOrCreateHostKey loads a PEM private key from path, or generates and
// persists a new ed25519 key if the file is absent or unreadable.
func loadOrCreateHostKey(path string, logger *slog.Logger) (gossh.Signer, error) {
	if data, err := os.ReadFile(path); err == nil {
		if signer, err := xssh.ParsePrivateKey(data); err == nil {
			logger.Info("loaded host key", "path", path)
			return signer, nil
		}
	}

	logger.Info("generating ed25519 host key", "path", path)
	_, key, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("generate host key: %w", err)
	}
	signer, err := xssh.NewSignerFromKey(key)
	if err != nil {
		return nil, fmt.Errorf("create signer: %w", err)
	}
	// Persist for next run (non-fatal if it fails).
	if pemBlock, err := xssh.MarshalPrivateKey(key, "emoji-inventory server"); err == nil {
		if err := os.WriteFile(path, pem.EncodeToMemory(pemBlock), 0o600); err != nil {
			logger.Warn("cannot persist host key", "path", path, "error", err)
		}
	}
	return signer, nil
}
