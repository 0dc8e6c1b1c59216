package service

import (
	"context"
	"testing"

	"stayfinder/internal/common"
	"stayfinder/internal/domain/model"
	"stayfinder/internal/platform/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockUserRepository keeps users in a map, assigning sequential IDs the way
// the database would.
type mockUserRepository struct {
	users map[int]*model.User
}

func newMockUserRepository() *mockUserRepository {
	return &mockUserRepository{users: make(map[int]*model.User)}
}

func (m *mockUserRepository) Create(_ context.Context, name, email, hashedPassword string) (*model.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return nil, common.ErrConflict
		}
	}
	user := &model.User{ID: len(m.users) + 1, Name: name, Email: email, HashedPassword: hashedPassword}
	m.users[user.ID] = user
	return user, nil
}

func (m *mockUserRepository) FindByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, common.ErrNotFound
}

func (m *mockUserRepository) FindByID(_ context.Context, id int) (*model.User, error) {
	user, ok := m.users[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	return user, nil
}

// plainHasher skips the bcrypt cost in unit tests.
type plainHasher struct{}

func (plainHasher) Hash(plain string) (string, error) { return "hashed:" + plain, nil }
func (plainHasher) Verify(plain, digest string) bool  { return "hashed:"+plain == digest }

func newTestAuthService() (*AuthService, *mockUserRepository) {
	repo := newMockUserRepository()
	return NewAuthService(repo, plainHasher{}, session.NewMemoryStore()), repo
}

func TestRegisterCreatesUserAndSession(t *testing.T) {
	svc, _ := newTestAuthService()
	ctx := context.Background()

	user, sessionID, err := svc.Register(ctx, RegisterRequest{Name: "A", Email: "a@x.com", Password: "secret"})
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.NotZero(t, user.ID)
	assert.Equal(t, "a@x.com", user.Email)
	assert.NotEmpty(t, sessionID)

	current, err := svc.CurrentUser(ctx, sessionID)
	require.NoError(t, err)
	assert.Equal(t, user.ID, current.ID)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _ := newTestAuthService()
	ctx := context.Background()

	_, _, err := svc.Register(ctx, RegisterRequest{Name: "A", Email: "a@x.com", Password: "secret"})
	require.NoError(t, err)

	_, _, err = svc.Register(ctx, RegisterRequest{Name: "B", Email: "a@x.com", Password: "other"})
	assert.ErrorIs(t, err, common.ErrConflict)
}

func TestRegisterRequiresAllFields(t *testing.T) {
	svc, _ := newTestAuthService()

	_, _, err := svc.Register(context.Background(), RegisterRequest{Email: "a@x.com", Password: "secret"})
	assert.ErrorIs(t, err, common.ErrBadRequest)
}

func TestLoginRoundTrip(t *testing.T) {
	svc, _ := newTestAuthService()
	ctx := context.Background()

	registered, _, err := svc.Register(ctx, RegisterRequest{Name: "A", Email: "a@x.com", Password: "secret"})
	require.NoError(t, err)

	user, sessionID, err := svc.Login(ctx, LoginRequest{Email: "a@x.com", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, registered.ID, user.ID)
	assert.Equal(t, "A", user.Name)
	assert.NotEmpty(t, sessionID)
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	svc, _ := newTestAuthService()
	ctx := context.Background()

	_, _, err := svc.Register(ctx, RegisterRequest{Name: "A", Email: "a@x.com", Password: "secret"})
	require.NoError(t, err)

	// Wrong password for a known email and any password for an unknown email
	// must produce the same result shape.
	_, _, wrongPassword := svc.Login(ctx, LoginRequest{Email: "a@x.com", Password: "wrong"})
	_, _, unknownEmail := svc.Login(ctx, LoginRequest{Email: "nosuchemail@x.com", Password: "anything"})

	assert.ErrorIs(t, wrongPassword, common.ErrUnauthorized)
	assert.ErrorIs(t, unknownEmail, common.ErrUnauthorized)
	assert.Equal(t, wrongPassword, unknownEmail)
}

func TestLogoutInvalidatesSession(t *testing.T) {
	svc, _ := newTestAuthService()
	ctx := context.Background()

	_, sessionID, err := svc.Register(ctx, RegisterRequest{Name: "A", Email: "a@x.com", Password: "secret"})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, sessionID))

	_, err = svc.CurrentUser(ctx, sessionID)
	assert.ErrorIs(t, err, common.ErrUnauthenticated)
}

func TestCurrentUserSignals(t *testing.T) {
	svc, repo := newTestAuthService()
	ctx := context.Background()

	// No session at all.
	_, err := svc.CurrentUser(ctx, "")
	assert.ErrorIs(t, err, common.ErrUnauthenticated)

	// A live session whose user has disappeared is a different signal.
	user, sessionID, err := svc.Register(ctx, RegisterRequest{Name: "A", Email: "a@x.com", Password: "secret"})
	require.NoError(t, err)
	delete(repo.users, user.ID)

	_, err = svc.CurrentUser(ctx, sessionID)
	assert.ErrorIs(t, err, common.ErrNotFound)
}
