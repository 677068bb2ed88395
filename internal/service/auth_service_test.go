package service

import (
	"errors"
	"testing"

	"github.com/nexori/backend/config"
	"github.com/nexori/backend/internal/dto"
	"github.com/nexori/backend/internal/model"
	"gorm.io/gorm"
)

type fakeUserRepo struct {
	users  map[string]*model.User
	nextID uint
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*model.User)}
}

func (r *fakeUserRepo) Create(user *model.User) error {
	r.nextID++
	user.ID = r.nextID
	stored := *user
	r.users[user.Username] = &stored
	return nil
}

func (r *fakeUserRepo) FindByID(id uint) (*model.User, error) {
	for _, user := range r.users {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) FindByUsername(username string) (*model.User, error) {
	user, ok := r.users[username]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return user, nil
}

func (r *fakeUserRepo) FindAll() ([]model.User, error) {
	users := make([]model.User, 0, len(r.users))
	for _, user := range r.users {
		users = append(users, *user)
	}
	return users, nil
}

func (r *fakeUserRepo) Update(user *model.User) error {
	stored := *user
	r.users[user.Username] = &stored
	return nil
}

func newAuthFixture(secret string) (AuthService, *fakeUserRepo) {
	cfg := &config.Config{}
	cfg.Auth.JWTSecret = secret
	cfg.Auth.TokenExpiryMinutes = 5
	repo := newFakeUserRepo()
	return NewAuthService(repo, cfg), repo
}

func TestRegisterLoginParseRoundTrip(t *testing.T) {
	svc, _ := newAuthFixture("test-secret")

	registered, err := svc.Register(dto.RegisterDTO{Username: "ada", Password: "correct-horse"})
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if registered.ID == 0 {
		t.Error("Register() returned zero user id")
	}
	if registered.Role != model.RoleUser {
		t.Errorf("new user role = %q, want %q", registered.Role, model.RoleUser)
	}
	if !registered.IsActive {
		t.Error("new user is not active")
	}

	token, err := svc.Login(dto.LoginDTO{Username: "ada", Password: "correct-horse"})
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if token.TokenType != "bearer" {
		t.Errorf("TokenType = %q, want bearer", token.TokenType)
	}
	if token.Role != model.RoleUser {
		t.Errorf("token role = %q, want %q", token.Role, model.RoleUser)
	}

	user, err := svc.ParseToken(token.AccessToken)
	if err != nil {
		t.Fatalf("ParseToken() error = %v", err)
	}
	if user.Username != "ada" {
		t.Errorf("ParseToken() resolved %q, want ada", user.Username)
	}
}

func TestRegisterDuplicateUsername(t *testing.T) {
	svc, _ := newAuthFixture("test-secret")

	if _, err := svc.Register(dto.RegisterDTO{Username: "ada", Password: "correct-horse"}); err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	_, err := svc.Register(dto.RegisterDTO{Username: "ada", Password: "other-password"})
	if !errors.Is(err, ErrUsernameTaken) {
		t.Errorf("Register() duplicate error = %v, want ErrUsernameTaken", err)
	}
}

func TestLoginRejections(t *testing.T) {
	svc, repo := newAuthFixture("test-secret")
	if _, err := svc.Register(dto.RegisterDTO{Username: "ada", Password: "correct-horse"}); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(dto.LoginDTO{Username: "ada", Password: "wrong"})
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Errorf("Login() error = %v, want ErrInvalidCredentials", err)
		}
	})

	t.Run("unknown user", func(t *testing.T) {
		_, err := svc.Login(dto.LoginDTO{Username: "nobody", Password: "whatever"})
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Errorf("Login() error = %v, want ErrInvalidCredentials", err)
		}
	})

	t.Run("deactivated user", func(t *testing.T) {
		repo.users["ada"].IsActive = false
		defer func() { repo.users["ada"].IsActive = true }()

		_, err := svc.Login(dto.LoginDTO{Username: "ada", Password: "correct-horse"})
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Errorf("Login() error = %v, want ErrInvalidCredentials", err)
		}
	})
}

func TestParseTokenRejections(t *testing.T) {
	svc, repo := newAuthFixture("test-secret")
	if _, err := svc.Register(dto.RegisterDTO{Username: "ada", Password: "correct-horse"}); err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	token, err := svc.Login(dto.LoginDTO{Username: "ada", Password: "correct-horse"})
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}

	t.Run("garbage token", func(t *testing.T) {
		if _, err := svc.ParseToken("not.a.token"); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("ParseToken() error = %v, want ErrInvalidToken", err)
		}
	})

	t.Run("token signed with another secret", func(t *testing.T) {
		other, _ := newAuthFixture("different-secret")
		if _, err := other.Register(dto.RegisterDTO{Username: "ada", Password: "correct-horse"}); err != nil {
			t.Fatalf("Register() error = %v", err)
		}
		if _, err := svc.ParseToken(mustLoginToken(t, other)); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("ParseToken() error = %v, want ErrInvalidToken", err)
		}
	})

	t.Run("subject no longer active", func(t *testing.T) {
		repo.users["ada"].IsActive = false
		defer func() { repo.users["ada"].IsActive = true }()

		if _, err := svc.ParseToken(token.AccessToken); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("ParseToken() error = %v, want ErrInvalidToken", err)
		}
	})
}

func mustLoginToken(t *testing.T, svc AuthService) string {
	t.Helper()
	token, err := svc.Login(dto.LoginDTO{Username: "ada", Password: "correct-horse"})
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	return token.AccessToken
}
