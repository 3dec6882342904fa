package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/dreamroute/travel-catalog/internal/core/domain"
	"github.com/dreamroute/travel-catalog/internal/core/ports"
)

type stubAuthService struct {
	registerFn func(ctx context.Context, input ports.RegisterInput) (*ports.UserView, error)
	loginFn    func(ctx context.Context, username, password string) (string, *ports.UserView, error)
}

func (s *stubAuthService) Register(ctx context.Context, input ports.RegisterInput) (*ports.UserView, error) {
	return s.registerFn(ctx, input)
}

func (s *stubAuthService) Login(ctx context.Context, username, password string) (string, *ports.UserView, error) {
	return s.loginFn(ctx, username, password)
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

func jsonRequest(e *echo.Echo, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Register_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		registerFn: func(_ context.Context, input ports.RegisterInput) (*ports.UserView, error) {
			if input.Username != "Laura" || input.Email != "laura@example.com" {
				t.Fatalf("unexpected input: %+v", input)
			}
			return &ports.UserView{ID: 1, Username: input.Username, Email: input.Email, Roles: []string{domain.RoleUser}}, nil
		},
	}
	h := NewAuthHandler(stub)

	c, rec := jsonRequest(e, http.MethodPost, "/register",
		`{"username":"Laura","email":"laura@example.com","password":"Str0ng!pass"}`)
	if err := h.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp ports.UserView
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Username != "Laura" || len(resp.Roles) != 1 || resp.Roles[0] != domain.RoleUser {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestAuthHandler_Register_WeakPasswordRejected(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		registerFn: func(_ context.Context, _ ports.RegisterInput) (*ports.UserView, error) {
			t.Fatalf("service should not be called")
			return nil, nil
		},
	}
	h := NewAuthHandler(stub)

	for _, password := range []string{"short1!", "alllowercase1!", "NOLOWER1!", "NoDigits!!", "NoSpecial11a"} {
		c, _ := jsonRequest(e, http.MethodPost, "/register",
			`{"username":"Laura","email":"laura@example.com","password":"`+password+`"}`)
		err := h.Register(c)
		if !errors.Is(err, domain.ErrValidationFailed) {
			t.Fatalf("expected validation failure for %q, got %v", password, err)
		}
	}
}

func TestAuthHandler_Register_InvalidPayload(t *testing.T) {
	e := newTestEcho()
	h := NewAuthHandler(&stubAuthService{})

	c, _ := jsonRequest(e, http.MethodPost, "/register", "not-json")
	err := h.Register(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestAuthHandler_Register_DuplicatePassedThrough(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		registerFn: func(_ context.Context, _ ports.RegisterInput) (*ports.UserView, error) {
			return nil, domain.NewDuplicateUsername()
		},
	}
	h := NewAuthHandler(stub)

	c, _ := jsonRequest(e, http.MethodPost, "/register",
		`{"username":"Laura","email":"laura@example.com","password":"Str0ng!pass"}`)
	err := h.Register(c)
	if !errors.Is(err, domain.ErrDuplicateValue) {
		t.Fatalf("expected duplicate error passed through, got %v", err)
	}
}

func TestAuthHandler_Login_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		loginFn: func(_ context.Context, username, password string) (string, *ports.UserView, error) {
			if username != "Laura" || password != "Str0ng!pass" {
				t.Fatalf("unexpected args: %s %s", username, password)
			}
			return "token123", &ports.UserView{ID: 1, Username: username}, nil
		},
	}
	h := NewAuthHandler(stub)

	c, rec := jsonRequest(e, http.MethodPost, "/login",
		`{"username":"Laura","password":"Str0ng!pass"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp struct {
		Token string          `json:"token"`
		User  *ports.UserView `json:"user"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Token != "token123" || resp.User == nil || resp.User.Username != "Laura" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestAuthHandler_Login_BadCredentials(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		loginFn: func(_ context.Context, _, _ string) (string, *ports.UserView, error) {
			return "", nil, domain.ErrInvalidCredentials
		},
	}
	h := NewAuthHandler(stub)

	c, _ := jsonRequest(e, http.MethodPost, "/login",
		`{"username":"Laura","password":"wrong"}`)
	err := h.Login(c)
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected credentials error passed through, got %v", err)
	}
}
