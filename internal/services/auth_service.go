package services

import (
	"errors"
	"strings"

	"jobboard_backend/internal/auth"
	"jobboard_backend/internal/logger"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/services/dto"
	"jobboard_backend/pkg/apperrors"
)

type AuthService interface {
	Register(req dto.RegisterRequest) (*dto.TokenResponse, error)
	Login(req dto.LoginRequest) (*dto.TokenResponse, error)
	Refresh(refreshToken string) (*dto.TokenResponse, error)
}

type AuthServiceImpl struct {
	users     repositories.UserRepository
	workers   repositories.WorkerRepository
	employers repositories.EmployerRepository
	admins    repositories.AdminRepository
	tokens    *auth.TokenManager
}

func NewAuthService(
	users repositories.UserRepository,
	workers repositories.WorkerRepository,
	employers repositories.EmployerRepository,
	admins repositories.AdminRepository,
	tokens *auth.TokenManager,
) AuthService {
	return &AuthServiceImpl{
		users:     users,
		workers:   workers,
		employers: employers,
		admins:    admins,
		tokens:    tokens,
	}
}

// Register creates the account and its role profile, then signs the user
// in. Workers get a partitioned profile immediately so that matching
// works before they ever edit it.
func (s *AuthServiceImpl) Register(req dto.RegisterRequest) (*dto.TokenResponse, error) {
	role := models.UserRole(req.Role)
	if !models.ValidRole(role) {
		return nil, apperrors.InvalidStatus("user", "Unknown role: "+req.Role)
	}

	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, apperrors.NewBadRequestError(err.Error())
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash: hash,
		Role:         role,
	}
	if err := s.users.Create(user); err != nil {
		if errors.Is(err, repositories.ErrDuplicateEmail) {
			return nil, apperrors.Conflict("user", "Email already registered")
		}
		return nil, apperrors.StorageError(err)
	}

	if err := s.createRoleProfile(user, req); err != nil {
		return nil, err
	}

	logger.Info("user registered", "user_id", user.ID, "role", user.Role)
	return s.issueTokens(user.ID, string(user.Role))
}

func (s *AuthServiceImpl) createRoleProfile(user *models.User, req dto.RegisterRequest) error {
	switch user.Role {
	case models.UserRoleWorker:
		if _, err := s.workers.EnsureExists(user.ID, req.FullName, req.Skills); err != nil {
			return apperrors.StorageError(err)
		}
	case models.UserRoleEmployer:
		employer := &models.Employer{
			UserID:       user.ID,
			CompanyName:  req.CompanyName,
			EmployerName: req.EmployerName,
		}
		if err := s.employers.Create(employer); err != nil {
			return apperrors.StorageError(err)
		}
	case models.UserRoleAdmin:
		admin := &models.Admin{
			UserID:     user.ID,
			AdminName:  req.AdminName,
			Department: req.Department,
		}
		if err := s.admins.Create(admin); err != nil {
			return apperrors.StorageError(err)
		}
	}
	return nil
}

// Login checks the credentials and issues a token pair. Both an unknown
// email and a wrong password produce the same error.
func (s *AuthServiceImpl) Login(req dto.LoginRequest) (*dto.TokenResponse, error) {
	user, err := s.users.FindByEmail(req.Email)
	if errors.Is(err, repositories.ErrUserNotFound) {
		return nil, apperrors.ErrInvalidCredentials
	}
	if err != nil {
		return nil, apperrors.StorageError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	return s.issueTokens(user.ID, string(user.Role))
}

// Refresh exchanges a valid refresh token for a new pair. The user is
// re-read so a role change or deletion takes effect on the next refresh.
func (s *AuthServiceImpl) Refresh(refreshToken string) (*dto.TokenResponse, error) {
	claims, err := s.tokens.ParseRefreshToken(refreshToken)
	if err != nil {
		return nil, apperrors.New(apperrors.CodeInvalidToken, "auth", "Invalid refresh token", 401)
	}

	user, err := s.users.FindByID(claims.UserID)
	if errors.Is(err, repositories.ErrUserNotFound) {
		return nil, apperrors.NewUnauthorizedError("Account no longer exists")
	}
	if err != nil {
		return nil, apperrors.StorageError(err)
	}

	return s.issueTokens(user.ID, string(user.Role))
}

func (s *AuthServiceImpl) issueTokens(userID, role string) (*dto.TokenResponse, error) {
	access, err := s.tokens.GenerateToken(userID, role)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	refresh, err := s.tokens.GenerateRefreshToken(userID, role)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return &dto.TokenResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		TokenType:    "Bearer",
		Role:         role,
		UserID:       userID,
	}, nil
}
