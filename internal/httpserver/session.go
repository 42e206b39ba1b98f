package httpserver

import (
	"context"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"babyheaven-storefront/internal/cart"
	"babyheaven-storefront/internal/checkout"
)

const (
	sessionCookie = "cart_session"
	sessionMaxAge = 7 * 24 * 60 * 60
	sessionCtxKey = "storefront.session"

	// sessionIdleTTL matches the cookie lifetime and the storage TTL; a
	// session idle past it is dropped from the cache.
	sessionIdleTTL = 7 * 24 * time.Hour
	// maxLiveSessions caps the cache so cookie churn cannot grow it without
	// bound.
	maxLiveSessions = 10000
)

// session bundles one shopper's cart store and checkout flow.
type session struct {
	store *cart.Store
	flow  *checkout.Flow
}

type sessionEntry struct {
	*session
	lastSeen time.Time
}

// sessionManager lazily builds sessions keyed by cookie id. Durable state
// lives in the storage backend; the in-process map only caches live
// sessions and evicts idle or surplus ones, which rebuild from storage on
// their next request.
type sessionManager struct {
	mu      sync.Mutex
	open    map[string]*sessionEntry
	backend func(sessionID string) cart.Storage
	logger  *log.Logger
	idleTTL time.Duration
	maxOpen int
}

func newSessionManager(backend func(string) cart.Storage, logger *log.Logger) *sessionManager {
	if backend == nil {
		// No Redis configured: each session gets its own in-memory store.
		backend = func(string) cart.Storage { return cart.NewMemoryStorage() }
	}
	return &sessionManager{
		open:    make(map[string]*sessionEntry),
		backend: backend,
		logger:  logger,
		idleTTL: sessionIdleTTL,
		maxOpen: maxLiveSessions,
	}
}

// middleware resolves the cart_session cookie, minting one on first visit,
// and attaches the session to the request context.
func (m *sessionManager) middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := c.Cookie(sessionCookie)
		if err != nil || id == "" {
			id = uuid.NewString()
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(sessionCookie, id, sessionMaxAge, "/", "", false, true)
		}
		c.Set(sessionCtxKey, m.get(c.Request.Context(), id))
		c.Next()
	}
}

func (m *sessionManager) get(ctx context.Context, id string) *session {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	if e, ok := m.open[id]; ok {
		e.lastSeen = now
		return e.session
	}

	m.evict(now)
	store := cart.New(ctx, m.backend(id), m.logger)
	e := &sessionEntry{
		session:  &session{store: store, flow: checkout.NewFlow(store)},
		lastSeen: now,
	}
	m.open[id] = e
	return e.session
}

// evict drops idle sessions and, when the cache is still full, the least
// recently seen ones. Callers hold the mutex.
func (m *sessionManager) evict(now time.Time) {
	for id, e := range m.open {
		if now.Sub(e.lastSeen) > m.idleTTL {
			delete(m.open, id)
		}
	}
	for len(m.open) >= m.maxOpen {
		oldestID := ""
		var oldest time.Time
		for id, e := range m.open {
			if oldestID == "" || e.lastSeen.Before(oldest) {
				oldestID, oldest = id, e.lastSeen
			}
		}
		delete(m.open, oldestID)
	}
}

func currentSession(c *gin.Context) *session {
	return c.MustGet(sessionCtxKey).(*session)
}
