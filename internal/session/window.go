package session

import (
	"errors"
	"sync"
	"time"

	"github.com/Antoinelebgdu87/Windows-XP/winxp-go/internal/model"
	"github.com/Antoinelebgdu87/Windows-XP/winxp-go/pkg/ident"
)

var ErrWindowNotFound = errors.New("window not found")

// WindowManager owns one session's open windows, their stacking order
// and focus. Windows are never persisted; closing the session loses
// them all.
type WindowManager struct {
	mu        sync.Mutex
	windows   []model.OpenWindow
	focusedID string
}

func NewWindowManager() *WindowManager {
	return &WindowManager{}
}

// Open appends a window and makes it the focused one. Windows are never
// deduplicated by title: opening "Contact" twice yields two independent
// windows with distinct ids.
func (m *WindowManager) Open(spec model.WindowSpec) model.OpenWindow {
	win := model.OpenWindow{
		ID:       spec.ID,
		Title:    spec.Title,
		Content:  spec.Content,
		X:        spec.X,
		Y:        spec.Y,
		Width:    spec.Width,
		Height:   spec.Height,
		OpenedAt: time.Now().UTC(),
	}
	if win.ID == "" {
		win.ID = ident.NewID()
	}

	m.mu.Lock()
	m.windows = append(m.windows, win)
	m.focusedID = win.ID
	m.mu.Unlock()

	win.Focused = true
	return win
}

// Close removes the window. Closing the focused window leaves no window
// focused; focus is not handed off to another window.
func (m *WindowManager) Close(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, w := range m.windows {
		if w.ID == id {
			m.windows = append(m.windows[:i], m.windows[i+1:]...)
			if m.focusedID == id {
				m.focusedID = ""
			}
			return nil
		}
	}
	return ErrWindowNotFound
}

// Focus marks a window as the topmost/active one. The collection order
// is untouched: z-order is derived purely from the focused flag.
func (m *WindowManager) Focus(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, w := range m.windows {
		if w.ID == id {
			m.focusedID = id
			return nil
		}
	}
	return ErrWindowNotFound
}

// Move updates a window's position only. It does not change focus; a
// drag start triggers an explicit Focus call from the caller.
func (m *WindowManager) Move(id string, x, y int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, w := range m.windows {
		if w.ID == id {
			m.windows[i].X = x
			m.windows[i].Y = y
			return nil
		}
	}
	return ErrWindowNotFound
}

// Windows returns the open windows in insertion order with the focused
// flag set, plus the focused id ("" when none).
func (m *WindowManager) Windows() ([]model.OpenWindow, string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]model.OpenWindow, len(m.windows))
	copy(out, m.windows)
	for i := range out {
		out[i].Focused = out[i].ID == m.focusedID
	}
	return out, m.focusedID
}

// Count returns the number of open windows.
func (m *WindowManager) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.windows)
}
