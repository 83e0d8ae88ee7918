package auth

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/dermee/dermee_backend/config"
	"github.com/dermee/dermee_backend/internal/repo"
	entpat "github.com/dermee/dermee_backend/internal/repo/patientprofile"
	entuser "github.com/dermee/dermee_backend/internal/repo/user"
	"github.com/dermee/dermee_backend/pkg/authorize"
	pasetotoken "github.com/dermee/dermee_backend/pkg/paseto"
	"github.com/dermee/dermee_backend/pkg/util/password"
)

// redisKeySession returns the Redis key for a session.
func redisKeySession(sessionID string) string { return "session:" + sessionID }

var reEmail = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type AddressRequest struct {
	City       string
	Street     string
	PostalCode string
}

type SignupRequest struct {
	Name     string
	Email    string
	Password string
	Phone    string
	Role     string // DOCTOR or PATIENT

	// Doctor fields
	Specialty string
	Bio       string

	// Patient fields
	DateOfBirth *time.Time
	Gender      string

	Address *AddressRequest
}

type LoginRequest struct {
	Email    string
	Password string
}

type AuthTokens struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64 // seconds until access token expires
}

// ---------------------------------------------------------------------------
// Service interface
// ---------------------------------------------------------------------------

type Service interface {
	Signup(ctx context.Context, req SignupRequest) (*repo.User, *AuthTokens, error)
	Login(ctx context.Context, req LoginRequest) (*repo.User, *AuthTokens, error)
	RefreshTokens(ctx context.Context, refreshToken string) (*AuthTokens, error)
	Logout(ctx context.Context, sessionID uuid.UUID) error
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type authService struct {
	db     *repo.Client
	rdb    *redis.Client
	paseto *pasetotoken.Manager
	authz  authorize.IAuthorization
	cfg    *config.Config
}

func New(
	db *repo.Client,
	rdb *redis.Client,
	paseto *pasetotoken.Manager,
	authz authorize.IAuthorization,
	cfg *config.Config,
) Service {
	return &authService{
		db:     db,
		rdb:    rdb,
		paseto: paseto,
		authz:  authz,
		cfg:    cfg,
	}
}

// ---------------------------------------------------------------------------
// Signup
// ---------------------------------------------------------------------------

func (s *authService) Signup(ctx context.Context, req SignupRequest) (*repo.User, *AuthTokens, error) {
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	req.Name = strings.TrimSpace(req.Name)

	if !reEmail.MatchString(req.Email) {
		return nil, nil, ErrInvalidEmail
	}
	if len(req.Password) < 8 {
		return nil, nil, ErrPasswordTooShort
	}
	role := entuser.Role(strings.ToUpper(strings.TrimSpace(req.Role)))
	// ADMIN accounts are seeded, never self-registered.
	if role != entuser.RoleDOCTOR && role != entuser.RolePATIENT {
		return nil, nil, ErrInvalidRole
	}

	var gender entpat.Gender
	if role == entuser.RolePATIENT && req.Gender != "" {
		gender = entpat.Gender(strings.ToUpper(strings.TrimSpace(req.Gender)))
		if err := entpat.GenderValidator(gender); err != nil {
			return nil, nil, ErrInvalidGender
		}
	}

	exists, err := s.db.User.Query().Where(entuser.Email(req.Email)).Exist(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("check email: %w", err)
	}
	if exists {
		return nil, nil, ErrEmailAlreadyExists
	}

	passHash, err := password.Hash(req.Password)
	if err != nil {
		return nil, nil, fmt.Errorf("hash password: %w", err)
	}

	// User, role profile and address are created atomically.
	tx, err := s.db.Tx(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("begin tx: %w", err)
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	q := tx.Client().User.Create().
		SetName(req.Name).
		SetEmail(req.Email).
		SetPasswordHash(passHash).
		SetRole(role)
	if req.Phone != "" {
		q = q.SetPhone(req.Phone)
	}
	u, err := q.Save(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("create user: %w", err)
	}

	switch role {
	case entuser.RoleDOCTOR:
		dc := tx.Client().DoctorProfile.Create().SetUserID(u.ID)
		if req.Specialty != "" {
			dc = dc.SetSpecialty(req.Specialty)
		}
		if req.Bio != "" {
			dc = dc.SetBio(req.Bio)
		}
		if _, err := dc.Save(ctx); err != nil {
			return nil, nil, fmt.Errorf("create doctor profile: %w", err)
		}
	case entuser.RolePATIENT:
		pc := tx.Client().PatientProfile.Create().SetUserID(u.ID)
		if req.DateOfBirth != nil {
			pc = pc.SetDateOfBirth(*req.DateOfBirth)
		}
		if gender != "" {
			pc = pc.SetGender(gender)
		}
		if _, err := pc.Save(ctx); err != nil {
			return nil, nil, fmt.Errorf("create patient profile: %w", err)
		}
	}

	if req.Address != nil {
		ac := tx.Client().Address.Create().
			SetUserID(u.ID).
			SetCity(req.Address.City).
			SetStreet(req.Address.Street)
		if req.Address.PostalCode != "" {
			ac = ac.SetPostalCode(req.Address.PostalCode)
		}
		if _, err := ac.Save(ctx); err != nil {
			return nil, nil, fmt.Errorf("create address: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, nil, fmt.Errorf("commit signup: %w", err)
	}
	committed = true

	s.grantRoles(ctx, u)

	tokens, err := s.createSession(ctx, u)
	if err != nil {
		return nil, nil, err
	}
	return u, tokens, nil
}

// grantRoles records the Casbin grouping policies for a new user. Failures
// are logged, not returned: the enforcer table can be repaired with the init
// command, the signup itself already committed.
func (s *authService) grantRoles(ctx context.Context, u *repo.User) {
	if err := authorize.AssignUserSelfRole(ctx, s.authz, u.ID.String()); err != nil {
		slog.Warn("assign user:self role failed", "user_id", u.ID, "error", err)
	}
	if role, ok := authorize.UserRoleToRBACRole[string(u.Role)]; ok && role != authorize.RoleSysAdmin {
		if err := authorize.AssignClinicRole(ctx, s.authz, u.ID.String(), role); err != nil {
			slog.Warn("assign clinic role failed", "user_id", u.ID, "role", role, "error", err)
		}
	}
}

// ---------------------------------------------------------------------------
// Login
// ---------------------------------------------------------------------------

func (s *authService) Login(ctx context.Context, req LoginRequest) (*repo.User, *AuthTokens, error) {
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Email == "" || req.Password == "" {
		return nil, nil, ErrInvalidCredentials
	}

	u, err := s.db.User.Query().
		Where(entuser.Email(req.Email)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, nil, ErrInvalidCredentials
		}
		return nil, nil, fmt.Errorf("find user: %w", err)
	}

	if err := password.Verify(u.PasswordHash, req.Password); err != nil {
		return nil, nil, ErrInvalidCredentials
	}

	s.db.User.UpdateOne(u).
		SetLastLoginAt(time.Now()).
		Save(ctx)

	tokens, err := s.createSession(ctx, u)
	if err != nil {
		return nil, nil, err
	}
	return u, tokens, nil
}

// ---------------------------------------------------------------------------
// RefreshTokens
// ---------------------------------------------------------------------------

func (s *authService) RefreshTokens(ctx context.Context, refreshToken string) (*AuthTokens, error) {
	claims, err := s.paseto.Verify(refreshToken)
	if err != nil {
		return nil, ErrInvalidToken
	}
	if claims.Type != pasetotoken.TokenTypeRefresh {
		return nil, ErrInvalidToken
	}
	if claims.SessionID == nil {
		return nil, ErrInvalidToken
	}

	sessionKey := redisKeySession(claims.SessionID.String())

	// Check session exists
	if err := s.rdb.Get(ctx, sessionKey).Err(); err == redis.Nil {
		return nil, ErrSessionNotFound
	} else if err != nil {
		return nil, fmt.Errorf("redis get session: %w", err)
	}

	// Extend session TTL
	refreshTTL := time.Duration(s.cfg.Authentication.Paseto.RefreshTTLDays) * 24 * time.Hour
	s.rdb.Expire(ctx, sessionKey, refreshTTL)

	// Issue new access token only (refresh token stays the same until logout)
	accessTTL := time.Duration(s.cfg.Authentication.Paseto.AccessTTLMinutes) * time.Minute
	accessToken, err := s.paseto.IssueAccess(claims.UserID, claims.Role, claims.SessionID)
	if err != nil {
		return nil, fmt.Errorf("issue access token: %w", err)
	}

	return &AuthTokens{
		AccessToken:  accessToken,
		RefreshToken: refreshToken, // unchanged
		ExpiresIn:    int64(accessTTL.Seconds()),
	}, nil
}

// ---------------------------------------------------------------------------
// Logout
// ---------------------------------------------------------------------------

func (s *authService) Logout(ctx context.Context, sessionID uuid.UUID) error {
	deleted, err := s.rdb.Del(ctx, redisKeySession(sessionID.String())).Result()
	if err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	if deleted == 0 {
		// Session already expired — not an error from the client's perspective
		slog.Debug("logout: session not found in Redis (already expired)", "session_id", sessionID)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func (s *authService) createSession(ctx context.Context, u *repo.User) (*AuthTokens, error) {
	sessionID := uuid.Must(uuid.NewV7())

	refreshTTL := time.Duration(s.cfg.Authentication.Paseto.RefreshTTLDays) * 24 * time.Hour
	accessTTL := time.Duration(s.cfg.Authentication.Paseto.AccessTTLMinutes) * time.Minute

	// Store in Redis
	sessionKey := redisKeySession(sessionID.String())
	if err := s.rdb.Set(ctx, sessionKey, u.ID.String(), refreshTTL).Err(); err != nil {
		return nil, fmt.Errorf("store session: %w", err)
	}

	// Issue tokens
	access, err := s.paseto.IssueAccess(u.ID, string(u.Role), &sessionID)
	if err != nil {
		return nil, fmt.Errorf("issue access token: %w", err)
	}
	refresh, err := s.paseto.IssueRefresh(u.ID, string(u.Role), &sessionID)
	if err != nil {
		return nil, fmt.Errorf("issue refresh token: %w", err)
	}

	return &AuthTokens{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresIn:    int64(accessTTL.Seconds()),
	}, nil
}
