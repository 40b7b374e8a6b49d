// Package session keeps authenticated editor sessions in Valkey. A session
// is a random hex ID handed to the browser in an HttpOnly cookie; the JSON
// payload behind it carries everything the request pipeline needs per hit
// (identity, plan for premium gating, whether the TOTP step has been
// passed) so the middleware never touches the users table.
package session

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"boostkit/internal/models"
)

const (
	// CookieName identifies the editor session cookie.
	CookieName = "bk_session"

	// DefaultTTL bounds how long an idle session survives. Valkey evicts
	// the key on its own; Update pushes the deadline out on activity.
	DefaultTTL = 24 * time.Hour

	keyPrefix = "session:"

	// 32 random bytes, 64 hex characters on the wire.
	idBytes = 32
)

// Data is the per-session payload. Plan and TwoFADone are denormalized
// from the user row so the plan gate and the 2FA gate run without a
// database read; the auth handlers rewrite the session when either
// changes.
type Data struct {
	UserID      uuid.UUID `json:"user_id"`
	Email       string    `json:"email"`
	DisplayName string    `json:"display_name"`
	Plan        string    `json:"plan"`
	TwoFADone   bool      `json:"two_fa_done"`
	CreatedAt   time.Time `json:"created_at"`
}

// IsPro reports whether the session belongs to a paid-plan user. Safe on a
// nil receiver, so callers holding a possibly-absent session need no nil
// check of their own.
func (d *Data) IsPro() bool {
	return d != nil && d.Plan == string(models.PlanPro)
}

// Store manages session lifecycle against a Valkey client.
type Store struct {
	client *redis.Client
	ttl    time.Duration
}

// NewStore creates a session store backed by the given Valkey client.
func NewStore(client *redis.Client) *Store {
	return &Store{
		client: client,
		ttl:    DefaultTTL,
	}
}

// Create mints a session ID, writes the payload to Valkey, and sets the
// cookie on the response. The returned ID is the bare hex string.
func (s *Store) Create(ctx context.Context, w http.ResponseWriter, data *Data) (string, error) {
	id, err := newID()
	if err != nil {
		return "", fmt.Errorf("mint session id: %w", err)
	}

	data.CreatedAt = time.Now()
	if err := s.put(ctx, id, data); err != nil {
		return "", err
	}

	s.writeCookie(w, id, int(s.ttl.Seconds()))
	return id, nil
}

// Get resolves the request's session cookie to its payload. A missing
// cookie or an expired key both come back as (nil, nil); only Valkey
// trouble is an error.
func (s *Store) Get(ctx context.Context, r *http.Request) (*Data, error) {
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return nil, nil
	}

	payload, err := s.client.Get(ctx, keyPrefix+cookie.Value).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}

	var data Data
	if err := json.Unmarshal(payload, &data); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	return &data, nil
}

// Update rewrites the payload under the request's existing session ID and
// restarts the TTL. The cookie is left alone.
func (s *Store) Update(ctx context.Context, r *http.Request, data *Data) error {
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return fmt.Errorf("update session: no cookie")
	}
	return s.put(ctx, cookie.Value, data)
}

// Destroy drops the session key and expires the cookie. A request without
// a cookie is a no-op.
func (s *Store) Destroy(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return nil
	}

	s.client.Del(ctx, keyPrefix+cookie.Value)
	s.writeCookie(w, "", -1)
	return nil
}

// put marshals and stores a payload under the given session ID with the
// store's TTL.
func (s *Store) put(ctx context.Context, id string, data *Data) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err := s.client.Set(ctx, keyPrefix+id, payload, s.ttl).Err(); err != nil {
		return fmt.Errorf("store session: %w", err)
	}
	return nil
}

func (s *Store) writeCookie(w http.ResponseWriter, id string, maxAge int) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		Secure:   false, // terminate TLS at the proxy; flip when serving TLS directly
		SameSite: http.SameSiteLaxMode,
		MaxAge:   maxAge,
	})
}

func newID() (string, error) {
	b := make([]byte, idBytes)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
