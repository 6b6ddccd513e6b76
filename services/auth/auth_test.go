package auth

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"pickuphoops/services/user"
	"pickuphoops/validator"
)

type fakeUserService struct {
	byID    map[string]*user.User
	byEmail map[string]*user.User
	nextID  int
}

var _ user.Service = (*fakeUserService)(nil)

func newFakeUserService() *fakeUserService {
	return &fakeUserService{
		byID:    make(map[string]*user.User),
		byEmail: make(map[string]*user.User),
	}
}

func (f *fakeUserService) GetUser(_ context.Context, id string) (*user.User, error) {
	u, ok := f.byID[id]
	if !ok {
		return nil, user.NotFound
	}
	return u, nil
}

func (f *fakeUserService) GetByEmail(_ context.Context, email string) (*user.User, error) {
	u, ok := f.byEmail[email]
	if !ok {
		return nil, user.NotFound
	}
	return u, nil
}

func (f *fakeUserService) CreateUser(_ context.Context, u *user.User) (*user.User, error) {
	f.nextID++
	u.ID = fmt.Sprintf("user-%d", f.nextID)
	f.byID[u.ID] = u
	f.byEmail[u.Email] = u
	return u, nil
}

func (f *fakeUserService) UpdateProfile(_ context.Context, id string, _ user.ProfileUpdate) (*user.User, error) {
	return f.GetUser(context.Background(), id)
}

const testSecret = "auth-test-secret"

func TestRegisterAndLogin(t *testing.T) {
	ctx := context.Background()
	svc := NewService(newFakeUserService(), testSecret)

	u, token, err := svc.Register(ctx, "Hooper@Example.com", "hunter2", "Hooper")
	if err != nil {
		t.Fatalf("Register() error: %v", err)
	}
	if u.Email != "hooper@example.com" {
		t.Errorf("email not normalized: %q", u.Email)
	}
	if u.PasswordHash == "hunter2" || u.PasswordHash == "" {
		t.Error("password was not hashed")
	}
	if got, err := validator.ParseToken(token, testSecret); err != nil || got != u.ID {
		t.Errorf("session token invalid: userID=%q err=%v", got, err)
	}

	logged, token2, err := svc.Login(ctx, "hooper@example.com", "hunter2")
	if err != nil {
		t.Fatalf("Login() error: %v", err)
	}
	if logged.ID != u.ID || token2 == "" {
		t.Errorf("Login() returned unexpected user %q", logged.ID)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	svc := NewService(newFakeUserService(), testSecret)

	if _, _, err := svc.Register(ctx, "a@b.com", "pw", "A"); err != nil {
		t.Fatalf("first Register() error: %v", err)
	}
	if _, _, err := svc.Register(ctx, "a@b.com", "pw2", "A2"); !errors.Is(err, EmailTaken) {
		t.Errorf("second Register() error = %v, want EmailTaken", err)
	}
}

func TestLoginFailures(t *testing.T) {
	ctx := context.Background()
	svc := NewService(newFakeUserService(), testSecret)
	if _, _, err := svc.Register(ctx, "a@b.com", "pw", "A"); err != nil {
		t.Fatalf("Register() error: %v", err)
	}

	t.Run("wrong password", func(t *testing.T) {
		if _, _, err := svc.Login(ctx, "a@b.com", "nope"); !errors.Is(err, InvalidCredentials) {
			t.Errorf("Login() error = %v, want InvalidCredentials", err)
		}
	})
	t.Run("unknown email", func(t *testing.T) {
		if _, _, err := svc.Login(ctx, "missing@b.com", "pw"); !errors.Is(err, InvalidCredentials) {
			t.Errorf("Login() error = %v, want InvalidCredentials", err)
		}
	})
}

func TestRegisterDefaultsDisplayName(t *testing.T) {
	svc := NewService(newFakeUserService(), testSecret)
	u, _, err := svc.Register(context.Background(), "cp3@example.com", "pw", "")
	if err != nil {
		t.Fatalf("Register() error: %v", err)
	}
	if u.DisplayName != "cp3" {
		t.Errorf("DisplayName = %q, want %q", u.DisplayName, "cp3")
	}
}
