package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/dreamroute/travel-catalog/internal/core/domain"
	"github.com/dreamroute/travel-catalog/internal/core/service"
)

type stubUserRepo struct {
	users map[string]*domain.User
}

func newStubUserRepo(users ...*domain.User) *stubUserRepo {
	r := &stubUserRepo{users: make(map[string]*domain.User)}
	for _, u := range users {
		r.users[strings.ToLower(u.Username)] = u
	}
	return r
}

func (r *stubUserRepo) FindByID(_ context.Context, id int64) (*domain.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, domain.NewNotFoundByID("User", id)
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	if u, ok := r.users[strings.ToLower(username)]; ok {
		return u, nil
	}
	return nil, domain.NewNotFoundByName("User", username)
}

func (r *stubUserRepo) FindAll(_ context.Context) ([]domain.User, error) { return nil, nil }

func (r *stubUserRepo) ExistsByUsername(_ context.Context, _ string) (bool, error) {
	return false, nil
}

func (r *stubUserRepo) ExistsByEmail(_ context.Context, _ string) (bool, error) { return false, nil }

func (r *stubUserRepo) Create(_ context.Context, u *domain.User) (*domain.User, error) {
	return u, nil
}

func (r *stubUserRepo) Update(_ context.Context, u *domain.User) (*domain.User, error) {
	return u, nil
}

func (r *stubUserRepo) Delete(_ context.Context, _ *domain.User) error { return nil }

func laura() *domain.User {
	return &domain.User{
		ID:       2,
		Username: "Laura",
		Email:    "laura@example.com",
		Roles:    []domain.Role{{ID: 1, Name: domain.RoleUser}},
	}
}

func runAuthenticate(t *testing.T, authHeader string, users *stubUserRepo, tokens *service.TokenService) (echo.Context, *httptest.ResponseRecorder, error) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := Authenticate(tokens, users)
	err := mw(func(c echo.Context) error { return c.NoContent(http.StatusOK) })(c)
	return c, rec, err
}

func TestAuthenticate_ValidToken(t *testing.T) {
	tokens := service.NewTokenService("secret", time.Hour)
	user := laura()
	token, err := tokens.Issue(user)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	c, _, err := runAuthenticate(t, "Bearer "+token, newStubUserRepo(user), tokens)
	if err != nil {
		t.Fatalf("middleware error: %v", err)
	}

	caller, ok := c.Get(CallerContextKey).(domain.Caller)
	if !ok || !caller.Valid() {
		t.Fatalf("expected caller attached, got %v", c.Get(CallerContextKey))
	}
	if caller.ID != 2 || caller.Username != "Laura" {
		t.Fatalf("unexpected caller: %+v", caller)
	}
	if !caller.HasRole(domain.RoleUser) {
		t.Fatalf("expected ROLE_USER, got %v", caller.Roles)
	}
}

func TestAuthenticate_NoHeaderIsAnonymous(t *testing.T) {
	tokens := service.NewTokenService("secret", time.Hour)

	c, rec, err := runAuthenticate(t, "", newStubUserRepo(), tokens)
	if err != nil {
		t.Fatalf("middleware error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected request to proceed, got %d", rec.Code)
	}
	if c.Get(CallerContextKey) != nil {
		t.Fatalf("expected no caller for anonymous request")
	}
}

func TestAuthenticate_BadTokenIsAnonymous(t *testing.T) {
	tokens := service.NewTokenService("secret", time.Hour)

	for _, header := range []string{"Bearer garbage", "NotBearer abc", "Bearer"} {
		c, rec, err := runAuthenticate(t, header, newStubUserRepo(), tokens)
		if err != nil {
			t.Fatalf("middleware error for %q: %v", header, err)
		}
		if rec.Code != http.StatusOK {
			t.Fatalf("expected request to proceed for %q, got %d", header, rec.Code)
		}
		if c.Get(CallerContextKey) != nil {
			t.Fatalf("expected no caller for %q", header)
		}
	}
}

func TestAuthenticate_ExpiredTokenIsAnonymous(t *testing.T) {
	issuer := service.NewTokenService("secret", 1*time.Nanosecond)
	token, err := issuer.Issue(laura())
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}
	time.Sleep(10 * time.Millisecond)

	verifier := service.NewTokenService("secret", time.Hour)
	c, rec, err := runAuthenticate(t, "Bearer "+token, newStubUserRepo(laura()), verifier)
	if err != nil {
		t.Fatalf("middleware error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected request to proceed, got %d", rec.Code)
	}
	if c.Get(CallerContextKey) != nil {
		t.Fatalf("expected no caller for expired token")
	}
}

func TestAuthenticate_DeletedSubjectRejected(t *testing.T) {
	tokens := service.NewTokenService("secret", time.Hour)
	token, err := tokens.Issue(laura())
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	// Valid token, but the account is gone.
	_, _, err = runAuthenticate(t, "Bearer "+token, newStubUserRepo(), tokens)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestRequireAuth(t *testing.T) {
	e := echo.New()

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := RequireAuth()
	err := mw(func(c echo.Context) error { return c.NoContent(http.StatusOK) })(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for anonymous request, got %v", err)
	}

	c = e.NewContext(httptest.NewRequest(http.MethodPost, "/", nil), httptest.NewRecorder())
	c.Set(CallerContextKey, domain.Caller{ID: 2, Username: "Laura", Roles: []string{domain.RoleUser}})
	if err := mw(func(c echo.Context) error { return c.NoContent(http.StatusOK) })(c); err != nil {
		t.Fatalf("expected authenticated request to pass, got %v", err)
	}
}
