package services

import (
	"context"
	"errors"

	"jobportal_backend/internal/apperrors"
	"jobportal_backend/internal/auth"
	"jobportal_backend/internal/email"
	"jobportal_backend/internal/logger"
	"jobportal_backend/internal/models"
	"jobportal_backend/internal/repositories"
	"jobportal_backend/internal/services/dto"
)

type AuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, *apperrors.AppError)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, *apperrors.AppError)
}

type AuthServiceImpl struct {
	userRepo    repositories.UserRepository
	profileRepo repositories.ProfileRepository
	issuer      *auth.TokenIssuer
	mailer      email.Provider
}

func NewAuthService(
	userRepo repositories.UserRepository,
	profileRepo repositories.ProfileRepository,
	issuer *auth.TokenIssuer,
	mailer email.Provider,
) AuthService {
	return &AuthServiceImpl{
		userRepo:    userRepo,
		profileRepo: profileRepo,
		issuer:      issuer,
		mailer:      mailer,
	}
}

func (s *AuthServiceImpl) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, *apperrors.AppError) {
	role, err := models.ParseUserRole(req.Role)
	if err != nil {
		return nil, apperrors.ErrInvalidUserRole
	}
	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, apperrors.ErrWeakPassword
	}

	if taken, err := s.userRepo.UsernameExists(ctx, req.Username); err != nil {
		return nil, apperrors.StorageError(err)
	} else if taken {
		return nil, apperrors.ErrUsernameTaken
	}
	if taken, err := s.userRepo.EmailExists(ctx, req.Email); err != nil {
		return nil, apperrors.StorageError(err)
	} else if taken {
		return nil, apperrors.ErrEmailTaken
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         role,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		// The unique indexes are the source of truth; a concurrent
		// registration can still win between the pre-checks and here.
		if errors.Is(err, repositories.ErrDuplicate) {
			if taken, checkErr := s.userRepo.EmailExists(ctx, req.Email); checkErr == nil && taken {
				return nil, apperrors.ErrEmailTaken
			}
			return nil, apperrors.ErrUsernameTaken
		}
		return nil, apperrors.StorageError(err)
	}

	if appErr := s.createProfile(ctx, user, req); appErr != nil {
		return nil, appErr
	}

	token, err := s.issuer.Generate(user.ID, user.Role)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	s.sendWelcome(user, req)

	return &dto.AuthResponse{Token: token, User: dto.NewUserDTO(user)}, nil
}

func (s *AuthServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, *apperrors.AppError) {
	// The login field takes either the username or the email address.
	user, err := s.userRepo.FindByUsername(ctx, req.Username)
	if errors.Is(err, repositories.ErrNotFound) {
		user, err = s.userRepo.FindByEmail(ctx, req.Username)
	}
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.StorageError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := s.issuer.Generate(user.ID, user.Role)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.AuthResponse{Token: token, User: dto.NewUserDTO(user)}, nil
}

func (s *AuthServiceImpl) createProfile(ctx context.Context, user *models.User, req *dto.RegisterRequest) *apperrors.AppError {
	switch user.Role {
	case models.UserRoleStudent:
		profile := &models.StudentProfile{UserID: user.ID, FullName: req.FullName}
		if err := s.profileRepo.CreateStudent(ctx, profile); err != nil {
			return apperrors.StorageError(err)
		}
	case models.UserRoleRecruiter:
		profile := &models.CompanyProfile{UserID: user.ID, CompanyName: req.CompanyName}
		if err := s.profileRepo.CreateCompany(ctx, profile); err != nil {
			return apperrors.StorageError(err)
		}
	}
	return nil
}

// sendWelcome delivers off the request path; a mail failure never fails
// a registration.
func (s *AuthServiceImpl) sendWelcome(user *models.User, req *dto.RegisterRequest) {
	name := req.FullName
	if name == "" {
		name = req.CompanyName
	}
	go func() {
		body, err := email.RenderWelcome(name, string(user.Role))
		if err == nil {
			err = s.mailer.Send(user.Email, "Welcome to JobPortal", body)
		}
		if err != nil {
			logger.WithError(err).Warn("welcome email failed", "user_id", user.ID)
		}
	}()
}
