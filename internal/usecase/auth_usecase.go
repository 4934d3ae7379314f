package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"medichain-backend/config"
	"medichain-backend/internal/converter"
	"medichain-backend/internal/delivery/dto"
	"medichain-backend/internal/delivery/http/middleware"
	"medichain-backend/internal/domain/entity"
	"medichain-backend/internal/domain/repository"
	"medichain-backend/internal/service"
	"medichain-backend/pkg/jwt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrWalletAlreadyRegistered = errors.New("wallet address already registered")
	ErrChallengeExpired        = errors.New("login challenge expired or never issued")
	ErrInvalidSignature        = errors.New("signature verification failed")
	ErrInvalidToken            = errors.New("invalid or expired token")
	ErrTokenRevoked            = errors.New("token has been revoked")
	ErrUserNotFound            = errors.New("user not found")
)

const loginNonceKeyPrefix = "login_nonce:"

type AuthUsecase interface {
	RegisterPatient(ctx context.Context, req *dto.RegisterRequest) (*dto.UserResponse, error)
	RegisterDoctor(ctx context.Context, req *dto.RegisterRequest) (*dto.UserResponse, error)
	Challenge(ctx context.Context, req *dto.ChallengeRequest) (*dto.ChallengeResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error)
	Logout(ctx context.Context, accessTokenID string) error
	RefreshToken(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenResponse, error)
	GetCurrentUser(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, error)
}

type authUsecase struct {
	db          *gorm.DB
	log         *logrus.Logger
	userRepo    repository.UserRepository
	doctorRepo  repository.DoctorRepository
	patientRepo repository.PatientRepository
	jwtService  *jwt.JWTService
	redisClient *redis.Client
	chainCfg    config.ChainConfig
}

func NewAuthUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	doctorRepo repository.DoctorRepository,
	patientRepo repository.PatientRepository,
	jwtService *jwt.JWTService,
	redisClient *redis.Client,
	chainCfg config.ChainConfig,
) AuthUsecase {
	return &authUsecase{
		db:          db,
		log:         log,
		userRepo:    userRepo,
		doctorRepo:  doctorRepo,
		patientRepo: patientRepo,
		jwtService:  jwtService,
		redisClient: redisClient,
		chainCfg:    chainCfg,
	}
}

// RegisterPatient creates the user row plus an empty patient profile in one
// transaction. The profile is filled in later through the profile endpoint.
func (u *authUsecase) RegisterPatient(ctx context.Context, req *dto.RegisterRequest) (*dto.UserResponse, error) {
	return u.register(ctx, req, entity.UserTypePatient)
}

// RegisterDoctor mirrors RegisterPatient for the doctor role.
func (u *authUsecase) RegisterDoctor(ctx context.Context, req *dto.RegisterRequest) (*dto.UserResponse, error) {
	return u.register(ctx, req, entity.UserTypeDoctor)
}

func (u *authUsecase) register(ctx context.Context, req *dto.RegisterRequest, userType string) (*dto.UserResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	user := &entity.User{
		WalletAddress: normalizeWallet(req.WalletAddress),
		UserType:      userType,
		FullName:      req.FullName,
		Email:         req.Email,
		Phone:         req.Phone,
	}

	if err := u.userRepo.Create(tx, user); err != nil {
		// Registering twice fails regardless of the requested role.
		if isDuplicateKeyError(err, "wallet") {
			return nil, ErrWalletAlreadyRegistered
		}
		u.log.Warnf("Failed to create user: %+v", err)
		return nil, err
	}

	switch userType {
	case entity.UserTypeDoctor:
		if err := u.doctorRepo.Create(tx, &entity.Doctor{UserID: user.ID}); err != nil {
			u.log.Warnf("Failed to create doctor profile: %+v", err)
			return nil, err
		}
	case entity.UserTypePatient:
		if err := u.patientRepo.Create(tx, &entity.Patient{UserID: user.ID}); err != nil {
			u.log.Warnf("Failed to create patient profile: %+v", err)
			return nil, err
		}
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.UserToResponse(user), nil
}

// Challenge issues a one-time message the wallet must sign to log in. The
// nonce lives in Redis until the login consumes it or the TTL passes.
func (u *authUsecase) Challenge(ctx context.Context, req *dto.ChallengeRequest) (*dto.ChallengeResponse, error) {
	wallet := normalizeWallet(req.WalletAddress)
	message := fmt.Sprintf("Login to MediChain at %s nonce:%s",
		time.Now().UTC().Format(time.RFC3339), uuid.New().String())

	key := loginNonceKeyPrefix + wallet
	if err := u.redisClient.Set(ctx, key, message, u.chainCfg.ChallengeTTL).Err(); err != nil {
		u.log.Warnf("Failed to store login nonce: %+v", err)
		return nil, err
	}

	return &dto.ChallengeResponse{
		WalletAddress: wallet,
		Message:       message,
		ExpiresIn:     int64(u.chainCfg.ChallengeTTL.Seconds()),
	}, nil
}

// Login verifies the signed challenge, consumes the nonce and issues a
// session token pair.
func (u *authUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	wallet := normalizeWallet(req.WalletAddress)

	key := loginNonceKeyPrefix + wallet
	message, err := u.redisClient.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrChallengeExpired
		}
		u.log.Warnf("Failed to load login nonce: %+v", err)
		return nil, err
	}

	if err := service.VerifyPersonalSign(message, req.Signature, wallet); err != nil {
		return nil, ErrInvalidSignature
	}

	// Nonce is single-use whether or not the rest of the login succeeds.
	if err := u.redisClient.Del(ctx, key).Err(); err != nil {
		u.log.Warnf("Failed to delete login nonce: %+v", err)
	}

	user, err := u.userRepo.FindByWalletAddress(u.db.WithContext(ctx), wallet)
	if err != nil {
		u.log.Warnf("Failed to find user by wallet: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	return u.issueTokens(ctx, user)
}

func (u *authUsecase) issueTokens(ctx context.Context, user *entity.User) (*dto.TokenResponse, error) {
	accessToken, accessTokenID, err := u.jwtService.GenerateAccessToken(user.ID, user.WalletAddress, user.UserType)
	if err != nil {
		u.log.Warnf("Failed to generate access token: %+v", err)
		return nil, err
	}

	refreshToken, refreshTokenID, err := u.jwtService.GenerateRefreshToken(user.ID, user.WalletAddress, user.UserType)
	if err != nil {
		u.log.Warnf("Failed to generate refresh token: %+v", err)
		return nil, err
	}

	accessKey := fmt.Sprintf("access_token:%s:%s", user.ID.String(), accessTokenID)
	refreshKey := fmt.Sprintf("refresh_token:%s:%s", user.ID.String(), refreshTokenID)

	if err := u.redisClient.Set(ctx, accessKey, "valid", u.jwtService.GetAccessExpiry()).Err(); err != nil {
		u.log.Warnf("Failed to store access token in Redis: %+v", err)
		return nil, err
	}

	if err := u.redisClient.Set(ctx, refreshKey, "valid", u.jwtService.GetRefreshExpiry()).Err(); err != nil {
		u.log.Warnf("Failed to store refresh token in Redis: %+v", err)
		return nil, err
	}

	return &dto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(u.jwtService.GetAccessExpiry().Seconds()),
	}, nil
}

func (u *authUsecase) Logout(ctx context.Context, accessTokenID string) error {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return errors.New("user not found in context")
	}

	accessKey := fmt.Sprintf("access_token:%s:%s", userID.String(), accessTokenID)
	if err := u.redisClient.Del(ctx, accessKey).Err(); err != nil {
		u.log.Warnf("Failed to delete access token: %+v", err)
		return err
	}

	// Revoke all refresh tokens for the user so a stolen refresh token
	// cannot outlive the logout.
	refreshPattern := fmt.Sprintf("refresh_token:%s:*", userID.String())
	refreshKeys, err := u.redisClient.Keys(ctx, refreshPattern).Result()
	if err != nil {
		u.log.Warnf("Failed to list refresh token keys: %+v", err)
		return err
	}
	if len(refreshKeys) > 0 {
		if err := u.redisClient.Del(ctx, refreshKeys...).Err(); err != nil {
			u.log.Warnf("Failed to delete refresh tokens: %+v", err)
			return err
		}
	}

	return nil
}

func (u *authUsecase) RefreshToken(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenResponse, error) {
	claims, err := u.jwtService.ValidateToken(req.RefreshToken)
	if err != nil {
		return nil, ErrInvalidToken
	}

	if claims.TokenType != jwt.RefreshToken {
		return nil, ErrInvalidToken
	}

	refreshKey := fmt.Sprintf("refresh_token:%s:%s", claims.UserID.String(), claims.TokenID)
	exists, err := u.redisClient.Exists(ctx, refreshKey).Result()
	if err != nil {
		u.log.Warnf("Failed to check refresh token in Redis: %+v", err)
		return nil, err
	}
	if exists == 0 {
		return nil, ErrTokenRevoked
	}

	if err := u.redisClient.Del(ctx, refreshKey).Err(); err != nil {
		u.log.Warnf("Failed to delete old refresh token: %+v", err)
		return nil, err
	}

	user, err := u.userRepo.FindByID(u.db.WithContext(ctx), claims.UserID)
	if err != nil {
		u.log.Warnf("Failed to find user by ID: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	return u.issueTokens(ctx, user)
}

func (u *authUsecase) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, error) {
	user, err := u.userRepo.FindByID(u.db.WithContext(ctx), userID)
	if err != nil {
		u.log.Warnf("Failed to find user by ID: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	return converter.UserToResponse(user), nil
}

// normalizeWallet canonicalizes wallet addresses so lookups never miss on
// hex casing.
func normalizeWallet(address string) string {
	return strings.ToLower(address)
}

// isDuplicateKeyError checks if the error is a PostgreSQL unique constraint
// violation containing the specified constraint name
func isDuplicateKeyError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// PostgreSQL error code 23505 = unique_violation
		if pgErr.Code == "23505" && strings.Contains(strings.ToLower(pgErr.ConstraintName), strings.ToLower(constraintName)) {
			return true
		}
	}
	return false
}
