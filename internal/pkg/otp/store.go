package otp

import (
	"crypto/rand"
	"crypto/subtle"
	"fmt"
	"math/big"
	"strings"
	"sync"
	"time"
)

// DefaultTTL is how long an issued code stays valid
const DefaultTTL = 10 * time.Minute

// DefaultLength is the number of digits in a code
const DefaultLength = 6

// Store issues and verifies one-time codes keyed by email
type Store interface {
	// Issue creates a fresh code for key, replacing any pending one
	Issue(key string) (string, error)
	// Verify reports whether code matches the pending code for key and
	// consumes it on success
	Verify(key, code string) bool
	// TTL returns the lifetime of issued codes
	TTL() time.Duration
}

type entry struct {
	code      string
	expiresAt time.Time
}

// MemoryStore keeps codes in process memory. Pending codes are lost on
// restart.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]entry
	ttl     time.Duration
	length  int
	now     func() time.Time

	stop chan struct{}
	done chan struct{}
	once sync.Once
}

// NewMemoryStore creates a store and starts a janitor that drops expired
// codes every sweep interval. Call Close to stop it.
func NewMemoryStore(ttl time.Duration, length int, sweep time.Duration) *MemoryStore {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if length <= 0 {
		length = DefaultLength
	}
	s := &MemoryStore{
		entries: make(map[string]entry),
		ttl:     ttl,
		length:  length,
		now:     time.Now,
		stop:    make(chan struct{}),
		done:    make(chan struct{}),
	}
	if sweep > 0 {
		go s.janitor(sweep)
	} else {
		close(s.done)
	}
	return s
}

// TTL returns the lifetime of issued codes
func (s *MemoryStore) TTL() time.Duration {
	return s.ttl
}

// Issue creates a fresh code for key
func (s *MemoryStore) Issue(key string) (string, error) {
	code, err := generateCode(s.length)
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	s.entries[normalizeKey(key)] = entry{code: code, expiresAt: s.now().Add(s.ttl)}
	s.mu.Unlock()

	return code, nil
}

// Verify checks and consumes the code for key
func (s *MemoryStore) Verify(key, code string) bool {
	key = normalizeKey(key)

	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[key]
	if !ok {
		return false
	}
	if !s.now().Before(e.expiresAt) {
		delete(s.entries, key)
		return false
	}
	if subtle.ConstantTimeCompare([]byte(e.code), []byte(strings.TrimSpace(code))) != 1 {
		return false
	}
	delete(s.entries, key)
	return true
}

// Len returns the number of pending codes
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// Close stops the janitor
func (s *MemoryStore) Close() {
	s.once.Do(func() { close(s.stop) })
	<-s.done
}

func (s *MemoryStore) janitor(every time.Duration) {
	defer close(s.done)
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.sweep()
		case <-s.stop:
			return
		}
	}
}

func (s *MemoryStore) sweep() {
	now := s.now()
	s.mu.Lock()
	defer s.mu.Unlock()
	for k, e := range s.entries {
		if !now.Before(e.expiresAt) {
			delete(s.entries, k)
		}
	}
}

func normalizeKey(key string) string {
	return strings.ToLower(strings.TrimSpace(key))
}

func generateCode(length int) (string, error) {
	limit := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(length)), nil)
	n, err := rand.Int(rand.Reader, limit)
	if err != nil {
		return "", fmt.Errorf("failed to generate otp: %w", err)
	}
	return fmt.Sprintf("%0*d", length, n.Int64()), nil
}
