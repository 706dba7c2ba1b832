package user_test

import (
	"context"
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"foodatlas-server/internal/domain"
	"foodatlas-server/internal/domain/user"
)

type memoryRepository struct {
	users map[string]*user.User
	err   error
}

func newMemoryRepository() *memoryRepository {
	return &memoryRepository{users: make(map[string]*user.User)}
}

func (m *memoryRepository) FindByID(ctx context.Context, id string) (*user.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.users[id], nil
}

func (m *memoryRepository) FindByUsername(ctx context.Context, username string) (*user.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	for _, usr := range m.users {
		if usr.Username == username {
			return usr, nil
		}
	}
	return nil, nil
}

func (m *memoryRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	for _, usr := range m.users {
		if usr.Email == email {
			return usr, nil
		}
	}
	return nil, nil
}

func (m *memoryRepository) Create(ctx context.Context, usr *user.User) (*user.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.users[usr.ID] = usr
	return usr, nil
}

func (m *memoryRepository) List(ctx context.Context) ([]*user.User, error) {
	out := make([]*user.User, 0, len(m.users))
	for _, usr := range m.users {
		out = append(out, usr)
	}
	return out, nil
}

func (m *memoryRepository) Delete(ctx context.Context, id string) error {
	delete(m.users, id)
	return nil
}

func TestRegister_Success(t *testing.T) {
	t.Parallel()

	svc := user.NewService(newMemoryRepository())
	usr, err := svc.Register(context.Background(), "alice", "a@x.com", "secret1")
	if err != nil {
		t.Fatalf("Register error: %v", err)
	}
	if usr.ID == "" {
		t.Fatalf("expected generated id")
	}
	if usr.Role != domain.RoleStandard {
		t.Fatalf("role mismatch: got %q want standard", usr.Role)
	}
	if usr.PasswordHash == "secret1" {
		t.Fatalf("password must be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(usr.PasswordHash), []byte("secret1")); err != nil {
		t.Fatalf("hash does not verify: %v", err)
	}
}

func TestRegister_EmailConflict(t *testing.T) {
	t.Parallel()

	repo := newMemoryRepository()
	svc := user.NewService(repo)
	if _, err := svc.Register(context.Background(), "alice", "a@x.com", "secret1"); err != nil {
		t.Fatalf("Register error: %v", err)
	}

	_, err := svc.Register(context.Background(), "other", "a@x.com", "secret1")
	if !errors.Is(err, user.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestRegister_UsernameConflict(t *testing.T) {
	t.Parallel()

	repo := newMemoryRepository()
	svc := user.NewService(repo)
	if _, err := svc.Register(context.Background(), "alice", "a@x.com", "secret1"); err != nil {
		t.Fatalf("Register error: %v", err)
	}

	_, err := svc.Register(context.Background(), "alice", "other@x.com", "secret1")
	if !errors.Is(err, user.ErrUsernameTaken) {
		t.Fatalf("expected ErrUsernameTaken, got %v", err)
	}
}

func TestLogin_UnknownEmailAndWrongPasswordAreIndistinguishable(t *testing.T) {
	t.Parallel()

	repo := newMemoryRepository()
	svc := user.NewService(repo)
	if _, err := svc.Register(context.Background(), "alice", "a@x.com", "secret1"); err != nil {
		t.Fatalf("Register error: %v", err)
	}

	_, unknownErr := svc.Login(context.Background(), "nobody@x.com", "secret1")
	_, wrongErr := svc.Login(context.Background(), "a@x.com", "wrong-password")

	if !errors.Is(unknownErr, user.ErrInvalidCredentials) {
		t.Fatalf("unknown email: expected ErrInvalidCredentials, got %v", unknownErr)
	}
	if !errors.Is(wrongErr, user.ErrInvalidCredentials) {
		t.Fatalf("wrong password: expected ErrInvalidCredentials, got %v", wrongErr)
	}
}

func TestLogin_Success(t *testing.T) {
	t.Parallel()

	repo := newMemoryRepository()
	svc := user.NewService(repo)
	registered, err := svc.Register(context.Background(), "alice", "a@x.com", "secret1")
	if err != nil {
		t.Fatalf("Register error: %v", err)
	}

	usr, err := svc.Login(context.Background(), "a@x.com", "secret1")
	if err != nil {
		t.Fatalf("Login error: %v", err)
	}
	if usr.ID != registered.ID {
		t.Fatalf("logged-in user mismatch: got %q want %q", usr.ID, registered.ID)
	}
}

func TestLogin_StoreFaultPropagates(t *testing.T) {
	t.Parallel()

	repo := newMemoryRepository()
	repo.err = errors.New("connection refused")
	svc := user.NewService(repo)

	_, err := svc.Login(context.Background(), "a@x.com", "secret1")
	if errors.Is(err, user.ErrInvalidCredentials) {
		t.Fatalf("store fault must not look like invalid credentials")
	}
	if err == nil {
		t.Fatalf("expected store fault to propagate")
	}
}

func TestDelete_NotFound(t *testing.T) {
	t.Parallel()

	svc := user.NewService(newMemoryRepository())
	err := svc.Delete(context.Background(), "missing-id")
	if !errors.Is(err, user.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
