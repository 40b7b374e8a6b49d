package session

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// testValkeyClient connects to the test Valkey on DB 15 and skips the test
// when it is unreachable. Session keys written during the test are swept
// away on cleanup.
func testValkeyClient(t *testing.T) *redis.Client {
	t.Helper()

	host := envOr("VALKEY_HOST", "localhost")
	port := envOr("VALKEY_PORT", "6379")
	password := os.Getenv("VALKEY_PASSWORD")

	client := redis.NewClient(&redis.Options{
		Addr:     host + ":" + port,
		Password: password,
		DB:       15, // isolated from dev data
	})

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		t.Skipf("skipping integration test: Valkey not reachable: %v", err)
	}

	t.Cleanup(func() {
		keys, _ := client.Keys(ctx, "session:*").Result()
		if len(keys) > 0 {
			client.Del(ctx, keys...)
		}
		client.Close()
	})

	return client
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func sessionCookie(t *testing.T, w *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range w.Result().Cookies() {
		if c.Name == CookieName {
			return c
		}
	}
	t.Fatal("session cookie not set")
	return nil
}

func TestSessionCreateAndGet(t *testing.T) {
	store := NewStore(testValkeyClient(t))
	ctx := context.Background()

	data := &Data{
		UserID:      uuid.New(),
		Email:       "create@boostkit.local",
		DisplayName: "Create",
		Plan:        "pro",
		TwoFADone:   false,
	}

	w := httptest.NewRecorder()
	id, err := store.Create(ctx, w, data)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if id == "" {
		t.Error("expected non-empty session ID")
	}

	cookie := sessionCookie(t, w)
	if cookie.Value != id {
		t.Error("cookie value should carry the session ID")
	}
	if !cookie.HttpOnly {
		t.Error("session cookie must be HttpOnly")
	}

	req := httptest.NewRequest("GET", "/", nil)
	req.AddCookie(cookie)

	got, err := store.Get(ctx, req)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got == nil {
		t.Fatal("expected session data, got nil")
	}
	if got.UserID != data.UserID {
		t.Errorf("user id: got %s, want %s", got.UserID, data.UserID)
	}
	if got.Email != "create@boostkit.local" {
		t.Errorf("email: got %q", got.Email)
	}
	if got.Plan != "pro" {
		t.Errorf("plan: got %q, want pro", got.Plan)
	}
	if got.CreatedAt.IsZero() {
		t.Error("Create should stamp CreatedAt")
	}
}

func TestSessionGetWithoutCookie(t *testing.T) {
	store := NewStore(testValkeyClient(t))

	req := httptest.NewRequest("GET", "/", nil)
	data, err := store.Get(context.Background(), req)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if data != nil {
		t.Error("no cookie should mean no session, not an error")
	}
}

func TestSessionGetUnknownID(t *testing.T) {
	store := NewStore(testValkeyClient(t))

	req := httptest.NewRequest("GET", "/", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: "deadbeef"})

	data, err := store.Get(context.Background(), req)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if data != nil {
		t.Error("expired or forged IDs should resolve to nil")
	}
}

func TestSessionUpdate(t *testing.T) {
	store := NewStore(testValkeyClient(t))
	ctx := context.Background()

	data := &Data{
		UserID:      uuid.New(),
		Email:       "update@boostkit.local",
		DisplayName: "Update",
		Plan:        "free",
	}

	w := httptest.NewRecorder()
	if _, err := store.Create(ctx, w, data); err != nil {
		t.Fatalf("Create: %v", err)
	}

	req := httptest.NewRequest("GET", "/", nil)
	req.AddCookie(sessionCookie(t, w))

	// The 2FA verify handler flips this flag in place.
	data.TwoFADone = true
	if err := store.Update(ctx, req, data); err != nil {
		t.Fatalf("Update: %v", err)
	}

	got, err := store.Get(ctx, req)
	if err != nil {
		t.Fatalf("Get after update: %v", err)
	}
	if got == nil || !got.TwoFADone {
		t.Error("updated payload should have TwoFADone set")
	}
}

func TestSessionUpdateWithoutCookie(t *testing.T) {
	store := NewStore(testValkeyClient(t))

	req := httptest.NewRequest("GET", "/", nil)
	if err := store.Update(context.Background(), req, &Data{}); err == nil {
		t.Error("updating without a session cookie should fail")
	}
}

func TestSessionDestroy(t *testing.T) {
	store := NewStore(testValkeyClient(t))
	ctx := context.Background()

	w := httptest.NewRecorder()
	if _, err := store.Create(ctx, w, &Data{
		UserID:      uuid.New(),
		Email:       "destroy@boostkit.local",
		DisplayName: "Destroy",
		Plan:        "free",
	}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	cookie := sessionCookie(t, w)

	req := httptest.NewRequest("GET", "/", nil)
	req.AddCookie(cookie)

	w2 := httptest.NewRecorder()
	if err := store.Destroy(ctx, w2, req); err != nil {
		t.Fatalf("Destroy: %v", err)
	}

	cleared := sessionCookie(t, w2)
	if cleared.MaxAge != -1 {
		t.Errorf("destroyed cookie MaxAge: got %d, want -1", cleared.MaxAge)
	}

	got, _ := store.Get(ctx, req)
	if got != nil {
		t.Error("session should be gone after destroy")
	}
}

func TestSessionDestroyWithoutCookie(t *testing.T) {
	store := NewStore(testValkeyClient(t))

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/", nil)
	if err := store.Destroy(context.Background(), w, req); err != nil {
		t.Errorf("Destroy without cookie: %v", err)
	}
}

func TestDataIsPro(t *testing.T) {
	var none *Data
	if none.IsPro() {
		t.Error("nil session must not pass the plan gate")
	}
	if (&Data{Plan: "free"}).IsPro() {
		t.Error("free plan must not pass the plan gate")
	}
	if !(&Data{Plan: "pro"}).IsPro() {
		t.Error("pro plan should pass the plan gate")
	}
}
