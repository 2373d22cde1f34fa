package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/DevanshuTiwaskar/portfolio/internal/mailer"
	"github.com/DevanshuTiwaskar/portfolio/internal/model"
	"github.com/DevanshuTiwaskar/portfolio/internal/repository"
	"github.com/DevanshuTiwaskar/portfolio/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSender struct {
	mu   sync.Mutex
	to   []string
	fail bool
}

func (s *recordingSender) Send(ctx context.Context, msg mailer.Message) (mailer.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.to = append(s.to, msg.To)
	if s.fail {
		return mailer.Result{}, errors.New("provider unreachable")
	}
	return mailer.Result{ID: "id"}, nil
}

func newTestRouter(t *testing.T, store repository.Store, sender mailer.Sender) http.Handler {
	t.Helper()
	svc := service.NewContactService(store, sender, service.ContactOptions{AdminEmail: "me@example.com"})
	return NewRouter(
		New(store, testOrigins),
		NewContactHandler(svc),
		NewMailHandler(sender, "me@example.com", mailer.FromAddress("", "me@example.com")),
	)
}

func newSQLiteStore(t *testing.T) repository.Store {
	t.Helper()
	ctx := context.Background()
	store, err := repository.Open(ctx, "sqlite:"+filepath.Join(t.TempDir(), "contact.db"))
	require.NoError(t, err)
	t.Cleanup(store.Close)
	_, err = store.Migrate(ctx)
	require.NoError(t, err)
	return store
}

func listAll(t *testing.T, store repository.Store) []*model.ContactMessage {
	t.Helper()
	msgs, err := store.List(context.Background(), model.ContactListOptions{Limit: 100})
	require.NoError(t, err)
	return msgs
}

func TestRouter_ContactScenario(t *testing.T) {
	store := newSQLiteStore(t)
	sender := &recordingSender{}
	router := newTestRouter(t, store, sender)

	req := httptest.NewRequest(http.MethodPost, "/api/contact",
		strings.NewReader(`{"name":"Ada","email":"ada@example.com","message":"Hello"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Origin", "http://localhost:5173")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Message sent successfully!"}`, rec.Body.String())
	assert.Equal(t, "http://localhost:5173", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))

	msgs := listAll(t, store)
	require.Len(t, msgs, 1)
	assert.Equal(t, "Ada", msgs[0].Name)
	assert.Equal(t, "General Inquiry", msgs[0].Type)
	assert.False(t, msgs[0].Read)

	assert.ElementsMatch(t, []string{"me@example.com", "ada@example.com"}, sender.to)
}

func TestRouter_MissingFieldStoresNothing(t *testing.T) {
	store := newSQLiteStore(t)
	sender := &recordingSender{}
	router := newTestRouter(t, store, sender)

	for _, body := range []string{
		`{"email":"ada@example.com","message":"Hello"}`,
		`{"name":"Ada","message":"Hello"}`,
		`{"name":"Ada","email":"ada@example.com","message":""}`,
	} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(body)))
		assert.Equal(t, http.StatusBadRequest, rec.Code, body)
		assert.JSONEq(t, `{"message":"All fields are required"}`, rec.Body.String())
	}

	assert.Empty(t, listAll(t, store))
	assert.Empty(t, sender.to)
}

func TestRouter_EmailProviderDownStillStores(t *testing.T) {
	store := newSQLiteStore(t)
	router := newTestRouter(t, store, &recordingSender{fail: true})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/contact",
		strings.NewReader(`{"name":"Ada","email":"ada@example.com","message":"Hello"}`)))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Message received")
	assert.Len(t, listAll(t, store), 1)
}

func TestRouter_NoopSenderStillStores(t *testing.T) {
	store := newSQLiteStore(t)
	router := newTestRouter(t, store, mailer.NoopSender{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/contact",
		strings.NewReader(`{"name":"Ada","email":"ada@example.com","message":"Hello"}`)))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Message sent successfully!"}`, rec.Body.String())
	assert.Len(t, listAll(t, store), 1)
}

func TestRouter_UnconfiguredStoreFailsWithoutEmail(t *testing.T) {
	sender := &recordingSender{}
	router := newTestRouter(t, repository.UnconfiguredStore{}, sender)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/contact",
		strings.NewReader(`{"name":"Ada","email":"ada@example.com","message":"Hello"}`)))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Empty(t, sender.to, "no email may be attempted when persistence fails")

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/health", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestRouter_RejectsUnknownOrigin(t *testing.T) {
	store := newSQLiteStore(t)
	router := newTestRouter(t, store, &recordingSender{})

	req := httptest.NewRequest(http.MethodPost, "/api/contact",
		strings.NewReader(`{"name":"Ada","email":"ada@example.com","message":"Hello"}`))
	req.Header.Set("Origin", "https://attacker.example")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Empty(t, listAll(t, store))
}

func TestRouter_Liveness(t *testing.T) {
	router := newTestRouter(t, newSQLiteStore(t), &recordingSender{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Backend is running!", rec.Body.String())

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/contact", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
