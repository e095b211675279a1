package service

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/pypath/pypath/config"
	"github.com/pypath/pypath/internal/dto"
	"github.com/pypath/pypath/internal/model"
	"github.com/pypath/pypath/internal/repository"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

// Claims is the JWT payload carried by every authenticated request.
type Claims struct {
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
	IsAdmin  bool   `json:"is_admin"`
	jwt.RegisteredClaims
}

type AuthService interface {
	Register(req dto.RegisterRequestDTO) (*dto.UserProfileDTO, error)
	Login(req dto.LoginRequestDTO) (*dto.AuthResponseDTO, error)
	ValidateToken(tokenStr string) (*Claims, error)
	GetProfile(userID uint) (*dto.UserProfileDTO, error)
}

type authService struct {
	userRepo repository.UserRepository
	cfg      *config.Config
}

func NewAuthService(userRepo repository.UserRepository, cfg *config.Config) AuthService {
	return &authService{userRepo: userRepo, cfg: cfg}
}

func (s *authService) Register(req dto.RegisterRequestDTO) (*dto.UserProfileDTO, error) {
	existing, err := s.userRepo.FindByUsername(req.Username)
	if err != nil {
		log.Error().Err(err).Str("username", req.Username).Msg("Register: username lookup failed")
		return nil, fmt.Errorf("error checking username: %w", err)
	}
	if existing != nil {
		return nil, ErrUsernameTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := model.User{
		Username:  req.Username,
		Password:  string(hash),
		FirstName: req.FirstName,
		LastName:  req.LastName,
	}
	if err := s.userRepo.Create(&user); err != nil {
		log.Error().Err(err).Str("username", req.Username).Msg("Register: failed to create user")
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	log.Info().Uint("userID", user.ID).Str("username", user.Username).Msg("User registered")
	profile := profileFromUser(&user)
	return &profile, nil
}

func (s *authService) Login(req dto.LoginRequestDTO) (*dto.AuthResponseDTO, error) {
	user, err := s.userRepo.FindByUsername(req.Username)
	if err != nil {
		log.Error().Err(err).Str("username", req.Username).Msg("Login: user lookup failed")
		return nil, fmt.Errorf("error fetching user: %w", err)
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.generateToken(user)
	if err != nil {
		log.Error().Err(err).Uint("userID", user.ID).Msg("Login: failed to sign token")
		return nil, fmt.Errorf("error generating token: %w", err)
	}

	return &dto.AuthResponseDTO{Token: token, User: profileFromUser(user)}, nil
}

func (s *authService) generateToken(user *model.User) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID:   user.ID,
		Username: user.Username,
		IsAdmin:  user.IsAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(s.cfg.Auth.TokenTTLHours) * time.Hour)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.Auth.JWTSecret))
}

func (s *authService) ValidateToken(tokenStr string) (*Claims, error) {
	var claims Claims
	token, err := jwt.ParseWithClaims(tokenStr, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(s.cfg.Auth.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	return &claims, nil
}

func (s *authService) GetProfile(userID uint) (*dto.UserProfileDTO, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		log.Error().Err(err).Uint("userID", userID).Msg("GetProfile: user lookup failed")
		return nil, fmt.Errorf("error fetching user %d: %w", userID, err)
	}
	profile := profileFromUser(user)
	return &profile, nil
}

func profileFromUser(user *model.User) dto.UserProfileDTO {
	var profile dto.UserProfileDTO
	if err := copier.Copy(&profile, user); err != nil {
		log.Error().Err(err).Uint("userID", user.ID).Msg("Failed to copy user model to profile DTO")
	}
	return profile
}
