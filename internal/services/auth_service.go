package services

import (
	"errors"
	"fmt"
	"strings"

	"sales_reports_backend/internal/models"
	"sales_reports_backend/pkg/utils"

	"golang.org/x/crypto/bcrypt"
)

// --- Custom Service Errors ---
var (
	ErrUserNotFound        = errors.New("user not found")
	ErrInvalidCredentials  = errors.New("invalid username or password")
	ErrTokenGeneration     = errors.New("failed to generate token")
	ErrInvalidRefreshToken = errors.New("invalid or expired refresh token")
)

// --- Data Transfer Objects (DTOs) ---

// LoginRequest DTO
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RefreshRequest DTO
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// AuthResponse DTO
type AuthResponse struct {
	User         *models.Operator `json:"user"`
	AccessToken  string           `json:"access_token"`
	RefreshToken string           `json:"refresh_token,omitempty"`
}

// OperatorAccount is one configured login. PasswordHash is a bcrypt hash.
type OperatorAccount struct {
	ID           int64
	Username     string
	PasswordHash string
	Role         string
}

// AccountsFromEnv builds the operator directory from the environment. An
// Admin account always exists; a Staff account is added when
// STAFF_USERNAME/STAFF_PASSWORD_HASH are set. When no ADMIN_PASSWORD_HASH is
// provided a development default password ("admin123") is hashed at startup.
func AccountsFromEnv() ([]OperatorAccount, error) {
	adminHash := utils.Getenv("ADMIN_PASSWORD_HASH", "")
	if adminHash == "" {
		generated, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("hash default admin password: %w", err)
		}
		adminHash = string(generated)
	}
	accounts := []OperatorAccount{
		{
			ID:           1,
			Username:     utils.Getenv("ADMIN_USERNAME", "admin"),
			PasswordHash: adminHash,
			Role:         "Admin",
		},
	}

	staffUser := utils.Getenv("STAFF_USERNAME", "")
	staffHash := utils.Getenv("STAFF_PASSWORD_HASH", "")
	if staffUser != "" && staffHash != "" {
		accounts = append(accounts, OperatorAccount{
			ID:           2,
			Username:     staffUser,
			PasswordHash: staffHash,
			Role:         "Staff",
		})
	}
	return accounts, nil
}

// --- AuthService Interface ---
type AuthService interface {
	Login(req LoginRequest) (*AuthResponse, error)
	Refresh(refreshToken string) (*AuthResponse, error)
	GetOperator(userID int64) (*models.Operator, error)
}

// --- authService Implementation ---
type authService struct {
	accounts  []OperatorAccount
	dummyHash []byte
}

// NewAuthService creates a new instance of AuthService over a fixed set of
// operator accounts.
func NewAuthService(accounts []OperatorAccount) AuthService {
	// Hash for a password nobody has, compared against when the username is
	// unknown so both failure paths cost a bcrypt verification.
	dummyHash, _ := bcrypt.GenerateFromPassword([]byte("not-a-real-password"), bcrypt.DefaultCost)
	return &authService{accounts: accounts, dummyHash: dummyHash}
}

func (s *authService) Login(req LoginRequest) (*AuthResponse, error) {
	account := s.findByUsername(req.Username)
	if account == nil {
		_ = bcrypt.CompareHashAndPassword(s.dummyHash, []byte(req.Password))
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return s.issueTokens(account)
}

func (s *authService) Refresh(refreshToken string) (*AuthResponse, error) {
	claims, err := utils.ValidateToken(refreshToken)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRefreshToken, err)
	}
	account := s.findByID(claims.UserID)
	if account == nil {
		return nil, ErrUserNotFound
	}
	return s.issueTokens(account)
}

func (s *authService) GetOperator(userID int64) (*models.Operator, error) {
	account := s.findByID(userID)
	if account == nil {
		return nil, ErrUserNotFound
	}
	return &models.Operator{ID: account.ID, Username: account.Username, Role: account.Role}, nil
}

func (s *authService) issueTokens(account *OperatorAccount) (*AuthResponse, error) {
	accessToken, err := utils.GenerateAccessToken(account.ID, account.Username, account.Role)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTokenGeneration, err)
	}
	refreshToken, err := utils.GenerateRefreshToken(account.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTokenGeneration, err)
	}
	return &AuthResponse{
		User:         &models.Operator{ID: account.ID, Username: account.Username, Role: account.Role},
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

func (s *authService) findByUsername(username string) *OperatorAccount {
	for i := range s.accounts {
		if strings.EqualFold(s.accounts[i].Username, username) {
			return &s.accounts[i]
		}
	}
	return nil
}

func (s *authService) findByID(id int64) *OperatorAccount {
	for i := range s.accounts {
		if s.accounts[i].ID == id {
			return &s.accounts[i]
		}
	}
	return nil
}
