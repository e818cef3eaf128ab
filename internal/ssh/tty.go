// Package ssh adapts gliderlabs SSH sessions for tcell.
package ssh

import (
	"sync"

	"github.com/gdamore/tcell/v2"
	gossh "github.com/gliderlabs/ssh"
)

// Tty implements tcell.Tty on top of an SSH session, so each connection
// gets its own tcell.Screen.
type Tty struct {
	gossh.Session

	mu       sync.Mutex
	size     gossh.Window
	resizes  <-chan gossh.Window
	onResize func()
	watching sync.Once
}

// NewTty wraps s. pty carries the initial window; resizes delivers later
// window-change requests.
func NewTty(s gossh.Session, pty gossh.Pty, resizes <-chan gossh.Window) *Tty {
	return &Tty{Session: s, size: pty.Window, resizes: resizes}
}

// Start is a no-op: the channel is open for as long as the session is.
func (t *Tty) Start() error { return nil }

// Stop is a no-op; the session handler owns the channel's lifetime.
func (t *Tty) Stop() error { return nil }

// Drain is a no-op because session writes are not buffered.
func (t *Tty) Drain() error { return nil }

// WindowSize returns the most recent terminal size.
func (t *Tty) WindowSize() (tcell.WindowSize, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return tcell.WindowSize{Width: t.size.Width, Height: t.size.Height}, nil
}

// NotifyResize sets the callback run after every window change. The
// goroutine consuming window changes starts on the first call and ends
// when the session closes the channel.
func (t *Tty) NotifyResize(cb func()) {
	t.mu.Lock()
	t.onResize = cb
	t.mu.Unlock()
	t.watching.Do(func() { go t.watch() })
}

func (t *Tty) watch() {
	for win := range t.resizes {
		t.mu.Lock()
		t.size = win
		cb := t.onResize
		t.mu.Unlock()
		if cb != nil {
			cb()
		}
	}
}
