package usecases

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"go.uber.org/zap"
	"rewear.backend/internal/domain/entities"
	domainerrors "rewear.backend/internal/domain/errors"
	"rewear.backend/internal/domain/repositories"
	"rewear.backend/pkg/crypto"
	"rewear.backend/pkg/jwt"
	"rewear.backend/pkg/logger"
)

var errInvalidCredentials = domainerrors.NewAppError(
	http.StatusUnauthorized,
	domainerrors.CodeInvalidCredentials,
	"These credentials do not match our records.",
	domainerrors.ErrInvalidCredentials,
)

// AuthUsecase handles registration, login and token lifecycle.
type AuthUsecase struct {
	userRepo       repositories.UserRepository
	assets         repositories.AssetStore
	jwtService     *jwt.JWTService
	revoker        TokenRevoker
	maxUploadBytes int64
}

// NewAuthUsecase creates a new auth usecase
func NewAuthUsecase(
	userRepo repositories.UserRepository,
	assets repositories.AssetStore,
	jwtService *jwt.JWTService,
	revoker TokenRevoker,
	maxUploadBytes int64,
) *AuthUsecase {
	return &AuthUsecase{
		userRepo:       userRepo,
		assets:         assets,
		jwtService:     jwtService,
		revoker:        revoker,
		maxUploadBytes: maxUploadBytes,
	}
}

// Register creates a pending account. The optional photo is stored before the
// row and removed again if the insert fails.
func (u *AuthUsecase) Register(ctx context.Context, input *entities.RegisterInput, photo *entities.Upload) (*entities.User, error) {
	email := normalizeEmail(input.Email)

	_, err := u.userRepo.GetByEmail(ctx, email)
	if err == nil {
		return nil, domainerrors.Conflict("The email has already been taken.")
	}
	if !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}

	passwordHash, err := crypto.HashPassword(input.Password)
	if err != nil {
		return nil, domainerrors.InternalError(err)
	}

	user := &entities.User{
		FirstName:    strings.TrimSpace(input.FirstName),
		LastName:     strings.TrimSpace(input.LastName),
		Email:        email,
		PasswordHash: passwordHash,
		Role:         entities.UserRoleUser,
		Status:       entities.UserStatusPending,
	}

	if photo != nil {
		if err := inspectImage("profile photo", photo, u.maxUploadBytes); err != nil {
			return nil, err
		}
		key, err := u.assets.Put(ctx, profilePhotoDir, photo)
		if err != nil {
			return nil, domainerrors.InternalError(err)
		}
		user.ProfilePhoto = null.StringFrom(key)
	}

	if err := u.userRepo.Create(ctx, user); err != nil {
		if user.ProfilePhoto.Valid {
			if delErr := u.assets.Delete(ctx, user.ProfilePhoto.String); delErr != nil {
				logger.Warn(ctx, "Failed to delete orphaned profile photo", zap.String("path", user.ProfilePhoto.String), zap.Error(delErr))
			}
		}
		if errors.Is(err, domainerrors.ErrAlreadyExists) {
			return nil, domainerrors.Conflict("The email has already been taken.")
		}
		return nil, err
	}

	logger.Info(ctx, "User registered", zap.String("user_id", user.ID.String()))
	return user, nil
}

// Login authenticates a user and returns tokens
func (u *AuthUsecase) Login(ctx context.Context, input *entities.LoginInput) (*entities.AuthResponse, error) {
	user, err := u.userRepo.GetByEmail(ctx, normalizeEmail(input.Email))
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, errInvalidCredentials
		}
		return nil, err
	}

	if !crypto.CheckPassword(input.Password, user.PasswordHash) {
		return nil, errInvalidCredentials
	}
	if user.Status == entities.UserStatusSuspended {
		return nil, domainerrors.NewAppError(http.StatusForbidden, domainerrors.CodeForbidden, "Your account has been suspended.", domainerrors.ErrAccountSuspended)
	}

	if crypto.NeedsRehash(user.PasswordHash) {
		if hash, err := crypto.HashPassword(input.Password); err == nil {
			if err := u.userRepo.UpdatePasswordHash(ctx, user.ID, hash); err != nil {
				logger.Warn(ctx, "Failed to rehash password", zap.String("user_id", user.ID.String()), zap.Error(err))
			}
		}
	}

	return u.issue(user)
}

// Refresh rotates a refresh token: the presented one is revoked and a new pair is issued.
func (u *AuthUsecase) Refresh(ctx context.Context, refreshToken string) (*entities.AuthResponse, error) {
	claims, err := u.jwtService.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, domainerrors.NewAppError(http.StatusUnauthorized, domainerrors.CodeUnauthorized, "invalid refresh token", err)
	}

	revoked, err := u.revoker.IsRevoked(ctx, claims.ID)
	if err != nil {
		return nil, domainerrors.InternalError(err)
	}
	if revoked {
		return nil, domainerrors.Unauthorized("refresh token has been revoked")
	}

	user, err := u.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.Unauthorized("user no longer exists")
		}
		return nil, err
	}
	if user.Status == entities.UserStatusSuspended {
		return nil, domainerrors.NewAppError(http.StatusForbidden, domainerrors.CodeForbidden, "Your account has been suspended.", domainerrors.ErrAccountSuspended)
	}

	if err := u.revoke(ctx, claims); err != nil {
		return nil, err
	}
	return u.issue(user)
}

// Logout revokes the access token the request was authenticated with.
func (u *AuthUsecase) Logout(ctx context.Context, claims *jwt.Claims) error {
	if claims == nil {
		return domainerrors.Unauthorized("missing token")
	}
	return u.revoke(ctx, claims)
}

// Me returns the authenticated user.
func (u *AuthUsecase) Me(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	user, err := u.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, "user not found")
	}
	u.withPhotoURL(user)
	return user, nil
}

// CreateAdmin provisions an active admin account.
func (u *AuthUsecase) CreateAdmin(ctx context.Context, input *entities.CreateAdminInput) (*entities.User, error) {
	if len(input.Password) < crypto.MinPasswordLength {
		return nil, domainerrors.BadRequest("The password must be at least 8 characters.")
	}
	email := normalizeEmail(input.Email)
	if email == "" {
		return nil, domainerrors.BadRequest("The email field is required.")
	}

	passwordHash, err := crypto.HashPassword(input.Password)
	if err != nil {
		return nil, domainerrors.InternalError(err)
	}

	user := &entities.User{
		FirstName:    strings.TrimSpace(input.FirstName),
		LastName:     strings.TrimSpace(input.LastName),
		Email:        email,
		PasswordHash: passwordHash,
		Role:         entities.UserRoleAdmin,
		Status:       entities.UserStatusActive,
	}
	if err := u.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, domainerrors.ErrAlreadyExists) {
			return nil, domainerrors.Conflict("The email has already been taken.")
		}
		return nil, err
	}
	return user, nil
}

func (u *AuthUsecase) issue(user *entities.User) (*entities.AuthResponse, error) {
	tokenPair, err := u.jwtService.GenerateTokenPair(user.ID, user.Email, string(user.Role))
	if err != nil {
		return nil, domainerrors.InternalError(err)
	}
	u.withPhotoURL(user)
	return &entities.AuthResponse{
		AccessToken:  tokenPair.AccessToken,
		RefreshToken: tokenPair.RefreshToken,
		ExpiresIn:    tokenPair.ExpiresIn,
		User:         user,
	}, nil
}

func (u *AuthUsecase) revoke(ctx context.Context, claims *jwt.Claims) error {
	if claims.ID == "" || claims.ExpiresAt == nil {
		return domainerrors.Unauthorized("token cannot be revoked")
	}
	if err := u.revoker.Revoke(ctx, claims.ID, claims.ExpiresAt.Time); err != nil {
		return domainerrors.InternalError(err)
	}
	return nil
}

func (u *AuthUsecase) withPhotoURL(user *entities.User) {
	if user.ProfilePhoto.Valid {
		user.ProfilePhotoURL = u.assets.URL(user.ProfilePhoto.String)
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
