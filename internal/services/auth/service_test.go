package auth

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"fixmycity/internal/models"
	"fixmycity/internal/repositories"
	"fixmycity/internal/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type fakeUserRepo struct {
	users  map[uint]*models.User
	nextID uint
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uint]*models.User), nextID: 1}
}

func (r *fakeUserRepo) Create(user *models.User) error {
	user.ID = r.nextID
	r.nextID++
	copied := *user
	r.users[user.ID] = &copied
	return nil
}

func (r *fakeUserRepo) GetByID(id uint) (*models.User, error) {
	if u, ok := r.users[id]; ok {
		copied := *u
		return &copied, nil
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepo) GetByEmail(email string) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepo) GetByPhone(phone string) (*models.User, error) {
	for _, u := range r.users {
		if u.Phone == phone {
			copied := *u
			return &copied, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepo) Update(user *models.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return repositories.ErrUserNotFound
	}
	copied := *user
	r.users[user.ID] = &copied
	return nil
}

func (r *fakeUserRepo) IncrementTokenVersion(userID uint) error {
	u, ok := r.users[userID]
	if !ok {
		return repositories.ErrUserNotFound
	}
	u.TokenVersion++
	return nil
}

func (r *fakeUserRepo) CountActive() (int64, error) {
	return int64(len(r.users)), nil
}

type fakeStores struct {
	sessions map[uint]*models.Session
	otps     map[string]string
}

func newFakeStores() *fakeStores {
	return &fakeStores{
		sessions: make(map[uint]*models.Session),
		otps:     make(map[string]string),
	}
}

func (f *fakeStores) SaveSession(ctx context.Context, sess *models.Session) error {
	f.sessions[sess.UserID] = sess
	return nil
}

func (f *fakeStores) GetSession(ctx context.Context, userID uint) (*models.Session, error) {
	return f.sessions[userID], nil
}

func (f *fakeStores) ClearSession(ctx context.Context, userID uint) error {
	delete(f.sessions, userID)
	return nil
}

func (f *fakeStores) SaveOTP(ctx context.Context, mobile, code string, ttl time.Duration) error {
	f.otps[mobile] = code
	return nil
}

func (f *fakeStores) GetOTP(ctx context.Context, mobile string) (string, bool, error) {
	code, ok := f.otps[mobile]
	return code, ok, nil
}

func (f *fakeStores) DeleteOTP(ctx context.Context, mobile string) error {
	delete(f.otps, mobile)
	return nil
}

func setupService(t *testing.T, cfg Config) (Service, *fakeUserRepo, *fakeStores) {
	t.Setenv("JWT_SECRET", "test-secret")
	repo := newFakeUserRepo()
	stores := newFakeStores()
	return NewService(repo, stores, stores, cfg), repo, stores
}

func seedUser(t *testing.T, repo *fakeUserRepo, email, phone, password string) *models.User {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	user := &models.User{
		Name:       "Akshita",
		Email:      email,
		Phone:      phone,
		Password:   string(hashed),
		AuthMethod: models.AuthMethodPassword,
		Role:       "citizen",
	}
	require.NoError(t, repo.Create(user))
	return user
}

func TestLogin(t *testing.T) {
	svc, repo, stores := setupService(t, Config{})
	seedUser(t, repo, "akshita@email.com", "+91 9876543210", "Citizen@1")

	t.Run("empty fields are rejected before any lookup", func(t *testing.T) {
		_, _, _, err := svc.Login(context.Background(), "", "")
		assert.ErrorIs(t, err, ErrMissingCredentials)

		_, _, _, err = svc.Login(context.Background(), "akshita@email.com", "")
		assert.ErrorIs(t, err, ErrMissingCredentials)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, _, _, err := svc.Login(context.Background(), "akshita@email.com", "wrong")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown user", func(t *testing.T) {
		_, _, _, err := svc.Login(context.Background(), "nobody@email.com", "Citizen@1")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("successful login issues tokens and a session", func(t *testing.T) {
		user, access, refresh, err := svc.Login(context.Background(), "akshita@email.com", "Citizen@1")
		require.NoError(t, err)
		assert.NotEmpty(t, access)
		assert.NotEmpty(t, refresh)
		assert.Equal(t, "akshita@email.com", user.Email)

		sess := stores.sessions[user.ID]
		require.NotNil(t, sess)
		assert.Equal(t, user.Email, sess.Email)
		assert.WithinDuration(t, time.Now(), sess.LoggedInAt, time.Minute)
	})

	t.Run("login by phone", func(t *testing.T) {
		_, access, _, err := svc.Login(context.Background(), "+91 9876543210", "Citizen@1")
		require.NoError(t, err)
		assert.NotEmpty(t, access)
	})
}

func TestDemoLogin(t *testing.T) {
	svc, repo, _ := setupService(t, Config{DemoMode: true})

	t.Run("any credentials authenticate as the demo citizen", func(t *testing.T) {
		user, access, _, err := svc.Login(context.Background(), "whoever@example.com", "whatever")
		require.NoError(t, err)
		assert.NotEmpty(t, access)
		assert.Equal(t, "Akshita", user.Name)
		assert.Equal(t, "akshita@email.com", user.Email)
	})

	t.Run("the demo citizen is created once", func(t *testing.T) {
		first, _, _, err := svc.Login(context.Background(), "a@b.c", "x")
		require.NoError(t, err)
		second, _, _, err := svc.Login(context.Background(), "d@e.f", "y")
		require.NoError(t, err)
		assert.Equal(t, first.ID, second.ID)
		assert.Len(t, repo.users, 1)
	})

	t.Run("empty fields still fail in demo mode", func(t *testing.T) {
		_, _, _, err := svc.Login(context.Background(), "", "")
		assert.ErrorIs(t, err, ErrMissingCredentials)
	})
}

func TestDemoLoginCancellation(t *testing.T) {
	svc, repo, _ := setupService(t, Config{DemoMode: true, SimulatedDelay: time.Minute})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		_, _, _, err := svc.Login(ctx, "a@b.c", "x")
		done <- err
	}()
	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(5 * time.Second):
		t.Fatal("login did not honor cancellation")
	}

	// An abandoned login applies no state.
	assert.Empty(t, repo.users)
}

func TestRegister(t *testing.T) {
	svc, repo, _ := setupService(t, Config{})

	input := &models.RegisterInput{
		FullName:        "Rajesh Kumar",
		Email:           "rajesh@email.com",
		Mobile:          "+91 9876543211",
		Password:        "Citizen@1",
		ConfirmPassword: "Citizen@1",
		AuthMethod:      models.AuthMethodPassword,
		AgreeTerms:      true,
	}

	t.Run("successful registration logs the user in", func(t *testing.T) {
		user, access, refresh, err := svc.Register(context.Background(), input)
		require.NoError(t, err)
		assert.NotEmpty(t, access)
		assert.NotEmpty(t, refresh)
		assert.Equal(t, "citizen", user.Role)
		assert.NotEqual(t, "Citizen@1", user.Password, "password is stored hashed")
	})

	t.Run("duplicate email", func(t *testing.T) {
		dup := *input
		dup.Mobile = "+91 9876543299"
		_, _, _, err := svc.Register(context.Background(), &dup)
		assert.ErrorIs(t, err, repositories.ErrEmailTaken)
	})

	t.Run("duplicate phone", func(t *testing.T) {
		dup := *input
		dup.Email = "other@email.com"
		_, _, _, err := svc.Register(context.Background(), &dup)
		assert.ErrorIs(t, err, repositories.ErrPhoneTaken)
	})

	t.Run("validation failures create nothing", func(t *testing.T) {
		before := len(repo.users)
		bad := *input
		bad.Email = "fresh@email.com"
		bad.Mobile = "+91 9876543222"
		bad.ConfirmPassword = "Mismatch@1"
		_, _, _, err := svc.Register(context.Background(), &bad)
		assert.ErrorIs(t, err, validation.ErrPasswordMismatch)
		assert.Len(t, repo.users, before)
	})
}

func TestOTPFlow(t *testing.T) {
	svc, repo, stores := setupService(t, Config{})
	user := seedUser(t, repo, "sunita@email.com", "+91 9876543214", "Citizen@1")
	require.False(t, user.Verified)

	t.Run("invalid mobile is refused", func(t *testing.T) {
		assert.Error(t, svc.SendOTP(context.Background(), "12345"))
	})

	t.Run("send and verify", func(t *testing.T) {
		require.NoError(t, svc.SendOTP(context.Background(), "+91 9876543214"))
		code := stores.otps["+91 9876543214"]
		require.Len(t, code, 6)

		require.NoError(t, svc.VerifyOTP(context.Background(), "+91 9876543214", code))

		updated, err := repo.GetByID(user.ID)
		require.NoError(t, err)
		assert.True(t, updated.Verified)
	})

	t.Run("a code is single use", func(t *testing.T) {
		require.NoError(t, svc.SendOTP(context.Background(), "+91 9876543214"))
		code := stores.otps["+91 9876543214"]
		require.NoError(t, svc.VerifyOTP(context.Background(), "+91 9876543214", code))
		assert.ErrorIs(t, svc.VerifyOTP(context.Background(), "+91 9876543214", code), ErrInvalidOTP)
	})

	t.Run("wrong code", func(t *testing.T) {
		require.NoError(t, svc.SendOTP(context.Background(), "+91 9876543214"))
		wrong := "000000"
		if stores.otps["+91 9876543214"] == wrong {
			wrong = "111111"
		}
		assert.ErrorIs(t, svc.VerifyOTP(context.Background(), "+91 9876543214", wrong), ErrInvalidOTP)
	})
}

func TestLogoutInvalidatesTokens(t *testing.T) {
	svc, repo, stores := setupService(t, Config{})
	user := seedUser(t, repo, "akshita@email.com", "+91 9876543210", "Citizen@1")

	_, _, refresh, err := svc.Login(context.Background(), "akshita@email.com", "Citizen@1")
	require.NoError(t, err)

	require.NoError(t, svc.Logout(context.Background(), user.ID))

	_, ok := stores.sessions[user.ID]
	assert.False(t, ok, "session cleared on logout")

	_, _, err = svc.RefreshTokens(refresh)
	assert.Error(t, err, "old refresh token rejected after logout")

	version, err := svc.GetUserTokenVersion(user.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, version)
}

func TestRefreshTokens(t *testing.T) {
	svc, repo, _ := setupService(t, Config{})
	seedUser(t, repo, "akshita@email.com", "+91 9876543210", "Citizen@1")

	_, _, refresh, err := svc.Login(context.Background(), "akshita@email.com", "Citizen@1")
	require.NoError(t, err)

	access, newRefresh, err := svc.RefreshTokens(refresh)
	require.NoError(t, err)
	assert.NotEmpty(t, access)
	assert.NotEmpty(t, newRefresh)

	_, _, err = svc.RefreshTokens("not-a-token")
	assert.Error(t, err)
}

// rawSessionStore serializes sessions to bytes like the Redis-backed store
// does, including its corrupt-entry handling: undecodable data is dropped and
// the read reports no session.
type rawSessionStore struct {
	entries map[uint][]byte
	otps    map[string]string
}

func newRawSessionStore() *rawSessionStore {
	return &rawSessionStore{
		entries: make(map[uint][]byte),
		otps:    make(map[string]string),
	}
}

func (f *rawSessionStore) SaveSession(ctx context.Context, sess *models.Session) error {
	data, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	f.entries[sess.UserID] = data
	return nil
}

func (f *rawSessionStore) GetSession(ctx context.Context, userID uint) (*models.Session, error) {
	data, ok := f.entries[userID]
	if !ok {
		return nil, nil
	}
	var sess models.Session
	if err := json.Unmarshal(data, &sess); err != nil {
		delete(f.entries, userID)
		return nil, nil
	}
	return &sess, nil
}

func (f *rawSessionStore) ClearSession(ctx context.Context, userID uint) error {
	delete(f.entries, userID)
	return nil
}

func (f *rawSessionStore) SaveOTP(ctx context.Context, mobile, code string, ttl time.Duration) error {
	f.otps[mobile] = code
	return nil
}

func (f *rawSessionStore) GetOTP(ctx context.Context, mobile string) (string, bool, error) {
	code, ok := f.otps[mobile]
	return code, ok, nil
}

func (f *rawSessionStore) DeleteOTP(ctx context.Context, mobile string) error {
	delete(f.otps, mobile)
	return nil
}

func TestSessionResume(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	repo := newFakeUserRepo()
	store := newRawSessionStore()
	svc := NewService(repo, store, store, Config{})
	seedUser(t, repo, "akshita@email.com", "+91 9876543210", "Citizen@1")

	user, _, _, err := svc.Login(context.Background(), "akshita@email.com", "Citizen@1")
	require.NoError(t, err)

	sess, err := svc.Session(context.Background(), user.ID)
	require.NoError(t, err)
	require.NotNil(t, sess)
	assert.Equal(t, user.ID, sess.UserID)
	assert.Equal(t, "akshita@email.com", sess.Email)

	require.NoError(t, svc.Logout(context.Background(), user.ID))

	sess, err = svc.Session(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Nil(t, sess)
}

func TestSessionResumeDiscardsCorruptedEntry(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	repo := newFakeUserRepo()
	store := newRawSessionStore()
	svc := NewService(repo, store, store, Config{})
	seedUser(t, repo, "akshita@email.com", "+91 9876543210", "Citizen@1")

	user, _, _, err := svc.Login(context.Background(), "akshita@email.com", "Citizen@1")
	require.NoError(t, err)

	store.entries[user.ID] = []byte(`{"user_id":1,"name":`)

	sess, err := svc.Session(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Nil(t, sess)
	assert.NotContains(t, store.entries, user.ID)
}
