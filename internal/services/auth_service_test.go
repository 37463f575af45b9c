package services

import (
	"context"
	"testing"

	"jobportal_backend/internal/apperrors"
	"jobportal_backend/internal/auth"
	"jobportal_backend/internal/models"
	"jobportal_backend/internal/services/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthFixture() (AuthService, *fakeUserRepo, *fakeProfileRepo, *auth.TokenIssuer) {
	users := newFakeUserRepo()
	profiles := newFakeProfileRepo()
	issuer := auth.NewTokenIssuer("test-secret", 60)
	svc := NewAuthService(users, profiles, issuer, &fakeMailer{})
	return svc, users, profiles, issuer
}

func studentRegistration() *dto.RegisterRequest {
	return &dto.RegisterRequest{
		Username: "sam",
		Email:    "sam@example.com",
		Password: "hunter22",
		Role:     "student",
		FullName: "Sam Carter",
	}
}

func TestAuthService_RegisterStudentCreatesProfile(t *testing.T) {
	svc, _, profiles, issuer := newAuthFixture()

	resp, appErr := svc.Register(context.Background(), studentRegistration())
	require.Nil(t, appErr)
	assert.Equal(t, models.UserRoleStudent, resp.User.Role)
	assert.NotEmpty(t, resp.Token)

	profile, err := profiles.FindStudentByUserID(context.Background(), resp.User.ID)
	require.NoError(t, err)
	assert.Equal(t, "Sam Carter", profile.FullName)

	claims, err := issuer.Parse(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, claims.UserID)
	assert.Equal(t, models.UserRoleStudent, claims.Role)
}

func TestAuthService_RegisterRecruiterCreatesCompany(t *testing.T) {
	svc, _, profiles, _ := newAuthFixture()

	resp, appErr := svc.Register(context.Background(), &dto.RegisterRequest{
		Username:    "acme",
		Email:       "hr@acme.test",
		Password:    "hunter22",
		Role:        "recruiter",
		CompanyName: "Acme Corp",
	})
	require.Nil(t, appErr)

	profile, err := profiles.FindCompanyByUserID(context.Background(), resp.User.ID)
	require.NoError(t, err)
	assert.Equal(t, "Acme Corp", profile.CompanyName)
}

func TestAuthService_RegisterDuplicates(t *testing.T) {
	svc, _, _, _ := newAuthFixture()

	_, appErr := svc.Register(context.Background(), studentRegistration())
	require.Nil(t, appErr)

	dup := studentRegistration()
	dup.Email = "other@example.com"
	_, appErr = svc.Register(context.Background(), dup)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.CodeUsernameTaken, appErr.Code)

	dup = studentRegistration()
	dup.Username = "sam2"
	_, appErr = svc.Register(context.Background(), dup)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.CodeEmailTaken, appErr.Code)
}

func TestAuthService_RegisterRejectsBadInput(t *testing.T) {
	svc, _, _, _ := newAuthFixture()

	req := studentRegistration()
	req.Role = "admin"
	_, appErr := svc.Register(context.Background(), req)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.CodeInvalidUserRole, appErr.Code)

	req = studentRegistration()
	req.Password = "short"
	_, appErr = svc.Register(context.Background(), req)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.CodeWeakPassword, appErr.Code)
}

func TestAuthService_Login(t *testing.T) {
	svc, _, _, _ := newAuthFixture()

	_, appErr := svc.Register(context.Background(), studentRegistration())
	require.Nil(t, appErr)

	resp, appErr := svc.Login(context.Background(), &dto.LoginRequest{Username: "sam", Password: "hunter22"})
	require.Nil(t, appErr)
	assert.NotEmpty(t, resp.Token)

	// Wrong password and unknown user produce the same error.
	_, appErr = svc.Login(context.Background(), &dto.LoginRequest{Username: "sam", Password: "wrong"})
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.CodeInvalidCredentials, appErr.Code)

	_, appErr = svc.Login(context.Background(), &dto.LoginRequest{Username: "nobody", Password: "hunter22"})
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.CodeInvalidCredentials, appErr.Code)
}

func TestAuthService_LoginWithEmail(t *testing.T) {
	svc, _, _, _ := newAuthFixture()

	_, appErr := svc.Register(context.Background(), studentRegistration())
	require.Nil(t, appErr)

	// The login field accepts the email address in place of the username.
	resp, appErr := svc.Login(context.Background(), &dto.LoginRequest{Username: "sam@example.com", Password: "hunter22"})
	require.Nil(t, appErr)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "sam", resp.User.Username)

	_, appErr = svc.Login(context.Background(), &dto.LoginRequest{Username: "sam@example.com", Password: "wrong"})
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.CodeInvalidCredentials, appErr.Code)
}
