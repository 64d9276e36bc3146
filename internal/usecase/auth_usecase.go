package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"nct_portal/internal/domain/entities"
	"nct_portal/internal/domain/lifecycle"
	"nct_portal/internal/usecase/interfaces"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrProfileNotFound = errors.New("profile not found")
	ErrWrongPassword   = errors.New("wrong password")
	ErrInvalidToken    = errors.New("invalid token")
	ErrTokenExpired    = errors.New("token expired")
)

// Claims is the portal's JWT payload. Typ distinguishes access tokens from
// refresh tokens so a refresh token can never be replayed as a bearer token.
type Claims struct {
	Phone     string `json:"phone"`
	ProfileID string `json:"profileId,omitempty"`
	Name      string `json:"name,omitempty"`
	IsAdmin   bool   `json:"isAdmin"`
	Typ       string `json:"typ"`
	jwt.RegisteredClaims
}

const (
	tokenTypeAccess  = "access"
	tokenTypeRefresh = "refresh"
)

// Session is a successful authentication result.
type Session struct {
	AccessToken  string              `json:"accessToken"`
	RefreshToken string              `json:"refreshToken"`
	ExpiresIn    int64               `json:"expiresIn"`
	Profile      entities.VIPProfile `json:"profile"`
	IsAdmin      bool                `json:"isAdmin"`
}

// IAuthUseCase handles both authentication paths: the VIP membership-id
// login against the profiles database, and external phone-auth token
// verification. Both end in the same portal-issued JWT pair.
type IAuthUseCase interface {
	LoginVIP(ctx context.Context, profileID, password string) (Session, error)
	VerifyExternal(ctx context.Context, idToken, name string) (Session, error)
	Refresh(ctx context.Context, refreshToken string) (Session, error)
	VerifyAccess(tokenString string) (lifecycle.Actor, Claims, error)
	Me(ctx context.Context, actor lifecycle.Actor) (entities.VIPProfile, error)
}

type AuthUseCase struct {
	profiles   interfaces.IProfileRepository
	verifier   interfaces.ITokenVerifier
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
	isAdmin    func(phone string) bool
	logger     *zap.Logger
}

var _ IAuthUseCase = (*AuthUseCase)(nil)

func NewAuthUseCase(profiles interfaces.IProfileRepository, verifier interfaces.ITokenVerifier, secret string, accessTTL, refreshTTL time.Duration, isAdmin func(phone string) bool, logger *zap.Logger) *AuthUseCase {
	return &AuthUseCase{
		profiles:   profiles,
		verifier:   verifier,
		secret:     []byte(secret),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
		isAdmin:    isAdmin,
		logger:     logger.With(zap.String("usecase", "auth")),
	}
}

// LoginVIP authenticates against the VIP profiles database. The membership id
// is tolerant of formatting ("NCTV-10", "nctv10"); the password comparison is
// case-insensitive to match how the ids were originally handed out.
func (u *AuthUseCase) LoginVIP(ctx context.Context, profileID, password string) (Session, error) {
	number, ok := entities.ParseProfileNumber(strings.TrimSpace(profileID))
	if !ok {
		return Session{}, ErrProfileNotFound
	}

	profile, err := u.profiles.GetByProfileNumber(ctx, number)
	if err != nil {
		return Session{}, err
	}
	if profile.ID == "" {
		return Session{}, ErrProfileNotFound
	}

	if !strings.EqualFold(strings.TrimSpace(password), profile.Password) {
		return Session{}, ErrWrongPassword
	}

	return u.issue(profile)
}

// VerifyExternal validates an external phone-auth id token and resolves it to
// a profile, creating one on first sight. Profile creation is best effort: a
// failed write still yields a session keyed on the verified phone.
func (u *AuthUseCase) VerifyExternal(ctx context.Context, idToken, name string) (Session, error) {
	phone, err := u.verifier.VerifyIDToken(ctx, idToken)
	if err != nil {
		return Session{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	profile, err := u.profiles.GetByPhone(ctx, phone)
	if err != nil {
		return Session{}, err
	}
	if profile.ID == "" {
		profile = entities.VIPProfile{
			ID:        uuid.NewString(),
			Name:      strings.TrimSpace(name),
			Phone:     phone,
			CreatedAt: time.Now().UTC(),
		}
		created, err := u.profiles.Create(ctx, profile)
		if err != nil {
			u.logger.Warn("profile creation failed", zap.String("phone", phone), zap.Error(err))
		} else {
			profile = created
		}
	}

	return u.issue(profile)
}

// Refresh exchanges a valid refresh token for a new token pair.
func (u *AuthUseCase) Refresh(ctx context.Context, refreshToken string) (Session, error) {
	claims, err := u.parse(refreshToken)
	if err != nil {
		return Session{}, err
	}
	if claims.Typ != tokenTypeRefresh {
		return Session{}, ErrInvalidToken
	}

	profile, err := u.profiles.GetByPhone(ctx, claims.Phone)
	if err != nil {
		return Session{}, err
	}
	if profile.ID == "" {
		// External-auth users may have no stored profile; carry the claims.
		profile = entities.VIPProfile{
			Phone:     claims.Phone,
			ProfileID: claims.ProfileID,
			Name:      claims.Name,
		}
	}

	return u.issue(profile)
}

// VerifyAccess validates a bearer token and returns the acting identity.
// Used by the HTTP auth middleware.
func (u *AuthUseCase) VerifyAccess(tokenString string) (lifecycle.Actor, Claims, error) {
	claims, err := u.parse(tokenString)
	if err != nil {
		return lifecycle.Actor{}, Claims{}, err
	}
	if claims.Typ != tokenTypeAccess {
		return lifecycle.Actor{}, Claims{}, ErrInvalidToken
	}
	return lifecycle.Actor{Phone: claims.Phone, IsAdmin: claims.IsAdmin}, claims, nil
}

func (u *AuthUseCase) Me(ctx context.Context, actor lifecycle.Actor) (entities.VIPProfile, error) {
	profile, err := u.profiles.GetByPhone(ctx, actor.Phone)
	if err != nil {
		return entities.VIPProfile{}, err
	}
	if profile.ID == "" {
		return entities.VIPProfile{}, ErrProfileNotFound
	}
	return profile, nil
}

func (u *AuthUseCase) issue(profile entities.VIPProfile) (Session, error) {
	admin := u.isAdmin(profile.Phone)
	now := time.Now().UTC()

	access, err := u.sign(profile, admin, tokenTypeAccess, now, u.accessTTL)
	if err != nil {
		return Session{}, err
	}
	refresh, err := u.sign(profile, admin, tokenTypeRefresh, now, u.refreshTTL)
	if err != nil {
		return Session{}, err
	}

	profile.Password = ""
	return Session{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresIn:    int64(u.accessTTL.Seconds()),
		Profile:      profile,
		IsAdmin:      admin,
	}, nil
}

func (u *AuthUseCase) sign(profile entities.VIPProfile, admin bool, typ string, now time.Time, ttl time.Duration) (string, error) {
	claims := Claims{
		Phone:     profile.Phone,
		ProfileID: profile.ProfileID,
		Name:      profile.Name,
		IsAdmin:   admin,
		Typ:       typ,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   profile.Phone,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(u.secret)
}

func (u *AuthUseCase) parse(tokenString string) (Claims, error) {
	var claims Claims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
		}
		return u.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Claims{}, ErrTokenExpired
		}
		return Claims{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid {
		return Claims{}, ErrInvalidToken
	}
	return claims, nil
}
