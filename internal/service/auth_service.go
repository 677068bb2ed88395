package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/jinzhu/copier"
	"github.com/nexori/backend/config"
	"github.com/nexori/backend/internal/dto"
	"github.com/nexori/backend/internal/model"
	"github.com/nexori/backend/internal/repository"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrUsernameTaken      = errors.New("username already registered")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
)

// AuthService issues and validates the bearer credentials carrying the
// subject and role claims.
type AuthService interface {
	Register(req dto.RegisterDTO) (*dto.UserDTO, error)
	Login(req dto.LoginDTO) (*dto.TokenDTO, error)
	ParseToken(tokenString string) (*model.User, error)
}

type authService struct {
	userRepo repository.UserRepository
	cfg      *config.Config
}

func NewAuthService(userRepo repository.UserRepository, cfg *config.Config) AuthService {
	return &authService{userRepo: userRepo, cfg: cfg}
}

func (s *authService) Register(req dto.RegisterDTO) (*dto.UserDTO, error) {
	if _, err := s.userRepo.FindByUsername(req.Username); err == nil {
		return nil, ErrUsernameTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("checking username availability: %w", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Error().Err(err).Msg("Register: failed to hash password")
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	user := model.User{
		Username:       req.Username,
		Email:          req.Email,
		FullName:       req.FullName,
		HashedPassword: string(hashed),
		Role:           model.RoleUser,
		IsActive:       true,
	}
	if err := s.userRepo.Create(&user); err != nil {
		log.Error().Err(err).Str("username", req.Username).Msg("Register: failed to create user")
		return nil, fmt.Errorf("creating user: %w", err)
	}

	log.Info().Uint("userID", user.ID).Str("username", user.Username).Msg("User registered")
	return toUserDTO(&user)
}

func (s *authService) Login(req dto.LoginDTO) (*dto.TokenDTO, error) {
	user, err := s.userRepo.FindByUsername(req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("fetching user: %w", err)
	}
	if !user.IsActive {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	expiry := time.Duration(s.cfg.Auth.TokenExpiryMinutes) * time.Minute
	claims := jwt.RegisteredClaims{
		Subject:   user.Username,
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiry)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.Auth.JWTSecret))
	if err != nil {
		log.Error().Err(err).Msg("Login: failed to sign token")
		return nil, fmt.Errorf("signing token: %w", err)
	}

	return &dto.TokenDTO{AccessToken: signed, TokenType: "bearer", Role: user.Role}, nil
}

// ParseToken validates the signature and expiry, then resolves the subject to
// an active user. Everything that goes wrong maps to ErrInvalidToken; callers
// only need "authenticated or not".
func (s *authService) ParseToken(tokenString string) (*model.User, error) {
	claims := jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(s.cfg.Auth.JWTSecret), nil
	})
	if err != nil || !token.Valid || claims.Subject == "" {
		return nil, ErrInvalidToken
	}

	user, err := s.userRepo.FindByUsername(claims.Subject)
	if err != nil || !user.IsActive {
		return nil, ErrInvalidToken
	}
	return user, nil
}

func toUserDTO(user *model.User) (*dto.UserDTO, error) {
	var resp dto.UserDTO
	if err := copier.Copy(&resp, user); err != nil {
		return nil, fmt.Errorf("error preparing user response: %w", err)
	}
	return &resp, nil
}
