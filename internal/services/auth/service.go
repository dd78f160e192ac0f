// Package auth implements the login, registration, and OTP workflows.
// A session moves LoggedOut -> Authenticating -> LoggedIn; logout returns it
// to LoggedOut by bumping the token version and clearing the stored session.
package auth

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"log"
	"math/big"
	"strings"
	"time"

	"fixmycity/internal/models"
	"fixmycity/internal/repositories"
	"fixmycity/internal/utils"
	"fixmycity/internal/validation"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrMissingCredentials = errors.New("please fill in all fields")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidOTP         = errors.New("invalid or expired code")
)

const otpTTL = 5 * time.Minute

// SessionStore persists session objects and language preferences.
type SessionStore interface {
	SaveSession(ctx context.Context, sess *models.Session) error
	GetSession(ctx context.Context, userID uint) (*models.Session, error)
	ClearSession(ctx context.Context, userID uint) error
}

// OTPStore holds pending one-time passcodes.
type OTPStore interface {
	SaveOTP(ctx context.Context, mobile, code string, ttl time.Duration) error
	GetOTP(ctx context.Context, mobile string) (string, bool, error)
	DeleteOTP(ctx context.Context, mobile string) error
}

type Service interface {
	Login(ctx context.Context, identifier, password string) (*models.User, string, string, error)
	Register(ctx context.Context, input *models.RegisterInput) (*models.User, string, string, error)
	SendOTP(ctx context.Context, mobile string) error
	VerifyOTP(ctx context.Context, mobile, code string) error
	RefreshTokens(refreshToken string) (string, string, error)
	Logout(ctx context.Context, userID uint) error
	Session(ctx context.Context, userID uint) (*models.Session, error)
	GetUserTokenVersion(userID uint) (int, error)
}

// Config controls the sandbox behavior of the workflow.
type Config struct {
	// DemoMode enables the explicitly labeled sandbox login: any
	// credentials authenticate as the demo citizen after a simulated
	// delay. Never enabled in production.
	DemoMode bool

	// SimulatedDelay stands in for identity-provider latency on the demo
	// path. The wait honors context cancellation so an abandoned login
	// never applies stale state.
	SimulatedDelay time.Duration
}

type service struct {
	userRepo repositories.UserRepository
	sessions SessionStore
	otps     OTPStore
	cfg      Config
}

func NewService(userRepo repositories.UserRepository, sessions SessionStore, otps OTPStore, cfg Config) Service {
	return &service{
		userRepo: userRepo,
		sessions: sessions,
		otps:     otps,
		cfg:      cfg,
	}
}

func (s *service) Login(ctx context.Context, identifier, password string) (*models.User, string, string, error) {
	if strings.TrimSpace(identifier) == "" || password == "" {
		return nil, "", "", ErrMissingCredentials
	}

	if s.cfg.DemoMode {
		return s.demoLogin(ctx)
	}

	user, err := s.getUserByIdentifier(identifier)
	if err != nil {
		log.Printf("Login failed: user not found for identifier %q", identifier)
		return nil, "", "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		log.Printf("Login failed: incorrect password for user ID %d", user.ID)
		return nil, "", "", ErrInvalidCredentials
	}

	return s.completeLogin(ctx, user)
}

// demoLogin is the sandbox path: it waits out the simulated latency, then
// authenticates as the demo citizen. The demo user is created on first use
// so issued tokens reference a real record.
func (s *service) demoLogin(ctx context.Context) (*models.User, string, string, error) {
	if err := s.simulateLatency(ctx); err != nil {
		return nil, "", "", err
	}

	user, err := s.userRepo.GetByEmail("akshita@email.com")
	if errors.Is(err, repositories.ErrUserNotFound) {
		user = &models.User{
			Name:       "Akshita",
			Email:      "akshita@email.com",
			Phone:      "+91 9876543210",
			Verified:   true,
			AuthMethod: models.AuthMethodPassword,
		}
		if err := s.userRepo.Create(user); err != nil {
			return nil, "", "", err
		}
	} else if err != nil {
		return nil, "", "", err
	}

	log.Printf("Demo login issued for sandbox user %d", user.ID)
	return s.completeLogin(ctx, user)
}

func (s *service) completeLogin(ctx context.Context, user *models.User) (*models.User, string, string, error) {
	user.LastLoginAt = time.Now()
	if err := s.userRepo.Update(user); err != nil {
		log.Printf("Failed to record login time for user %d: %v", user.ID, err)
	}

	accessToken, refreshToken, err := utils.GenerateTokens(&models.UserClaims{
		UserID:       user.ID,
		Email:        user.Email,
		Role:         user.Role,
		TokenVersion: user.TokenVersion,
		Permissions:  models.GetDefaultPermissions(user.Role),
	})
	if err != nil {
		log.Println("Error generating tokens:", err)
		return nil, "", "", errors.New("error generating tokens")
	}

	sess := &models.Session{
		UserID:     user.ID,
		Name:       user.Name,
		Email:      user.Email,
		Phone:      user.Phone,
		Verified:   user.Verified,
		AuthMethod: user.AuthMethod,
		LoggedInAt: time.Now(),
	}
	if err := s.sessions.SaveSession(ctx, sess); err != nil {
		log.Printf("Failed to save session for user %d: %v", user.ID, err)
	}

	return user, accessToken, refreshToken, nil
}

func (s *service) Register(ctx context.Context, input *models.RegisterInput) (*models.User, string, string, error) {
	if err := validation.ValidateRegistration(input); err != nil {
		return nil, "", "", err
	}

	if _, err := s.userRepo.GetByEmail(input.Email); err == nil {
		return nil, "", "", repositories.ErrEmailTaken
	}
	if _, err := s.userRepo.GetByPhone(input.Mobile); err == nil {
		return nil, "", "", repositories.ErrPhoneTaken
	}

	user := &models.User{
		Name:       input.FullName,
		Email:      input.Email,
		Phone:      input.Mobile,
		AuthMethod: input.AuthMethod,
		Role:       "citizen",
	}

	if input.AuthMethod == models.AuthMethodPassword {
		hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, "", "", fmt.Errorf("password hashing failed: %w", err)
		}
		user.Password = string(hashed)
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, "", "", err
	}

	return s.completeLogin(ctx, user)
}

func (s *service) SendOTP(ctx context.Context, mobile string) error {
	if !validation.ValidMobile(mobile) {
		return errors.New("please enter a valid mobile number")
	}

	code, err := generateOTP()
	if err != nil {
		return err
	}

	if err := s.otps.SaveOTP(ctx, mobile, code, otpTTL); err != nil {
		return err
	}

	// Stand-in for an SMS gateway.
	log.Printf("OTP for %s: %s", mobile, code)
	return nil
}

func (s *service) VerifyOTP(ctx context.Context, mobile, code string) error {
	if len(code) != 6 {
		return ErrInvalidOTP
	}

	stored, found, err := s.otps.GetOTP(ctx, mobile)
	if err != nil {
		return err
	}
	if !found || stored != code {
		return ErrInvalidOTP
	}

	if err := s.otps.DeleteOTP(ctx, mobile); err != nil {
		return err
	}

	user, err := s.userRepo.GetByPhone(mobile)
	if err != nil {
		return err
	}
	user.Verified = true
	return s.userRepo.Update(user)
}

func (s *service) RefreshTokens(refreshToken string) (string, string, error) {
	_, claims, err := utils.ParseToken(refreshToken)
	if err != nil {
		return "", "", errors.New("invalid refresh token")
	}

	user, err := s.userRepo.GetByID(claims.UserID)
	if err != nil {
		return "", "", errors.New("user not found")
	}

	if user.TokenVersion != claims.TokenVersion {
		return "", "", errors.New("token version mismatch")
	}

	return utils.GenerateTokens(&models.UserClaims{
		UserID:       user.ID,
		Email:        user.Email,
		Role:         user.Role,
		TokenVersion: user.TokenVersion,
		Permissions:  models.GetDefaultPermissions(user.Role),
	})
}

func (s *service) Logout(ctx context.Context, userID uint) error {
	if err := s.sessions.ClearSession(ctx, userID); err != nil {
		log.Printf("Failed to clear session for user %d: %v", userID, err)
	}
	return s.userRepo.IncrementTokenVersion(userID)
}

// Session loads the stored session for a logged-in user. A nil session with
// no error means there is nothing to resume: either the user logged out or
// the stored entry was corrupted and has been discarded.
func (s *service) Session(ctx context.Context, userID uint) (*models.Session, error) {
	return s.sessions.GetSession(ctx, userID)
}

func (s *service) GetUserTokenVersion(userID uint) (int, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return 0, err
	}
	return user.TokenVersion, nil
}

func (s *service) getUserByIdentifier(identifier string) (*models.User, error) {
	if strings.Contains(identifier, "@") {
		return s.userRepo.GetByEmail(identifier)
	}
	return s.userRepo.GetByPhone(identifier)
}

// simulateLatency waits out the configured delay, aborting early if the
// caller cancels.
func (s *service) simulateLatency(ctx context.Context) error {
	if s.cfg.SimulatedDelay <= 0 {
		return nil
	}
	t := time.NewTimer(s.cfg.SimulatedDelay)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func generateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
