package chat

import "sync"

// ConnManager tracks which user ids currently have a live connection. At
// most one entry per user id: registering a new connection for an id that
// already has one closes and replaces the old one (last-connected-wins).
type ConnManager struct {
	mu     sync.RWMutex
	byUser map[string]*Client
	gwID   string
}

func NewConnManager(gwID string) *ConnManager {
	return &ConnManager{byUser: make(map[string]*Client), gwID: gwID}
}

func (m *ConnManager) GwID() string { return m.gwID }

// Register maps the client's user id to it, evicting any previous client
// for the same id.
func (m *ConnManager) Register(c *Client) {
	if c == nil || c.UserID == "" {
		return
	}
	m.mu.Lock()
	old := m.byUser[c.UserID]
	m.byUser[c.UserID] = c
	m.mu.Unlock()

	if old != nil && old != c {
		old.Close()
	}
}

// Unregister removes the entry only if c still owns it. A client that was
// replaced by a newer connection must not evict its replacement when its
// own close event finally fires.
func (m *ConnManager) Unregister(c *Client) {
	if c == nil || c.UserID == "" {
		return
	}
	m.mu.Lock()
	if cur, ok := m.byUser[c.UserID]; ok && cur == c {
		delete(m.byUser, c.UserID)
	}
	m.mu.Unlock()

	c.Close()
}

// Lookup returns the current client for a user id, if any.
func (m *ConnManager) Lookup(userID string) (*Client, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	c, ok := m.byUser[userID]
	return c, ok
}

func (m *ConnManager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.byUser)
}

// Close tears down every connection; used at shutdown.
func (m *ConnManager) Close() {
	m.mu.Lock()
	clients := make([]*Client, 0, len(m.byUser))
	for _, c := range m.byUser {
		clients = append(clients, c)
	}
	m.byUser = make(map[string]*Client)
	m.mu.Unlock()

	for _, c := range clients {
		c.Close()
	}
}
