package session

import (
	"sync"
	"time"

	"github.com/Antoinelebgdu87/Windows-XP/winxp-go/pkg/ident"
)

// DefaultTTL is how long an idle session keeps its windows before the
// sweep drops it.
const DefaultTTL = 30 * time.Minute

type entry struct {
	wm       *WindowManager
	lastSeen time.Time
}

// Manager hands out one WindowManager per desktop session (one browser
// tab of the shell). Idle sessions expire; their windows are gone for
// good, matching the "closing the tab loses all open windows" rule.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*entry
	ttl      time.Duration
}

func NewManager(ttl time.Duration) *Manager {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	m := &Manager{
		sessions: make(map[string]*entry),
		ttl:      ttl,
	}
	// Background sweep every 5 minutes
	go m.cleanup()
	return m
}

// Create starts a new session and returns its id.
func (m *Manager) Create() string {
	id := ident.NewID()
	m.mu.Lock()
	m.sessions[id] = &entry{
		wm:       NewWindowManager(),
		lastSeen: time.Now(),
	}
	m.mu.Unlock()
	return id
}

// Get returns the session's window manager and refreshes its idle
// timer. Unknown or expired ids return false.
func (m *Manager) Get(id string) (*WindowManager, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.sessions[id]
	if !ok {
		return nil, false
	}
	e.lastSeen = time.Now()
	return e.wm, true
}

// OpenWindows returns the total open-window count across all sessions
// (for the metrics gauge).
func (m *Manager) OpenWindows() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	total := 0
	for _, e := range m.sessions {
		total += e.wm.Count()
	}
	return total
}

func (m *Manager) cleanup() {
	ticker := time.NewTicker(5 * time.Minute)
	for range ticker.C {
		m.expireBefore(time.Now().Add(-m.ttl))
	}
}

// expireBefore drops sessions idle since before the cutoff.
func (m *Manager) expireBefore(cutoff time.Time) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	removed := 0
	for id, e := range m.sessions {
		if e.lastSeen.Before(cutoff) {
			delete(m.sessions, id)
			removed++
		}
	}
	return removed
}
