package accounts

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"analystDashboard/internal/config"
	"analystDashboard/internal/logging"
	"analystDashboard/internal/testutil"
	"analystDashboard/models"
	"analystDashboard/repository"
)

func newStore(t *testing.T, name, adminPassword string) (*Store, *repository.UserRepository) {
	t.Helper()
	users := repository.NewUserRepository(testutil.OpenInMemoryDB(t, name))
	return NewStore(users, Options{
		BcryptCost:           bcrypt.MinCost,
		AdminInitialPassword: adminPassword,
		Logger:               logging.Discard(),
	}), users
}

func TestInitialize_Idempotent(t *testing.T) {
	s, users := newStore(t, "acct_idem", "admin123")
	ctx := context.Background()

	require.NoError(t, s.Initialize(ctx))
	require.NoError(t, s.Initialize(ctx))

	n, err := users.CountByRole(ctx, models.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	role, ok := s.Login(ctx, "admin", "admin123")
	require.True(t, ok)
	assert.Equal(t, models.RoleAdmin, role)
}

func TestInitialize_DoesNotOverwriteAdmin(t *testing.T) {
	ctx := context.Background()
	d := testutil.OpenInMemoryDB(t, "acct_nooverwrite")
	users := repository.NewUserRepository(d)

	first := NewStore(users, Options{BcryptCost: bcrypt.MinCost, AdminInitialPassword: "first", Logger: logging.Discard()})
	require.NoError(t, first.Initialize(ctx))

	second := NewStore(users, Options{BcryptCost: bcrypt.MinCost, AdminInitialPassword: "second", Logger: logging.Discard()})
	require.NoError(t, second.Initialize(ctx))

	_, ok := second.Login(ctx, "admin", "first")
	assert.True(t, ok)
	_, ok = second.Login(ctx, "admin", "second")
	assert.False(t, ok)
}

func TestInitialize_GeneratedPasswordLoggedOnce(t *testing.T) {
	ctx := context.Background()
	var buf bytes.Buffer
	logger := logging.New(&buf, config.LogConfig{Level: "debug", Format: "json"})
	users := repository.NewUserRepository(testutil.OpenInMemoryDB(t, "acct_generated"))
	s := NewStore(users, Options{BcryptCost: bcrypt.MinCost, Logger: logger})

	require.NoError(t, s.Initialize(ctx))

	var rec map[string]any
	line := strings.SplitN(strings.TrimSpace(buf.String()), "\n", 2)[0]
	require.NoError(t, json.Unmarshal([]byte(line), &rec))
	assert.Equal(t, "WARN", rec["level"])
	assert.Equal(t, "accounts", rec["component"])
	password, _ := rec["password"].(string)
	require.NotEmpty(t, password)

	role, ok := s.Login(ctx, "admin", password)
	require.True(t, ok)
	assert.Equal(t, models.RoleAdmin, role)

	buf.Reset()
	require.NoError(t, s.Initialize(ctx))
	assert.NotContains(t, buf.String(), `"password"`)
	assert.NotContains(t, buf.String(), password)
}

func TestInitialize_PropagatesStorageFailure(t *testing.T) {
	d := testutil.OpenInMemoryDB(t, "acct_closed")
	s := NewStore(repository.NewUserRepository(d), Options{BcryptCost: bcrypt.MinCost, AdminInitialPassword: "x", Logger: logging.Discard()})
	require.NoError(t, d.Close())

	assert.Error(t, s.Initialize(context.Background()))
}

func TestRegisterAndLogin(t *testing.T) {
	s, users := newStore(t, "acct_register", "admin123")
	ctx := context.Background()
	require.NoError(t, s.Initialize(ctx))

	assert.True(t, s.Register(ctx, "alice", "pw1"))
	assert.False(t, s.Register(ctx, "alice", "pw2"), "duplicate username")

	role, ok := s.Login(ctx, "alice", "pw1")
	require.True(t, ok)
	assert.Equal(t, models.RoleUser, role)

	// The original record survived the duplicate attempt.
	_, ok = s.Login(ctx, "alice", "pw2")
	assert.False(t, ok)

	u, err := users.GetByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.NotEqual(t, "pw1", u.PasswordHash)
	assert.True(t, strings.HasPrefix(u.PasswordHash, "$2"))
}

func TestRegister_RejectsEmptyAndOversized(t *testing.T) {
	s, users := newStore(t, "acct_reject", "admin123")
	ctx := context.Background()

	assert.False(t, s.Register(ctx, "", "pw"))
	assert.False(t, s.Register(ctx, "   ", "pw"))
	assert.False(t, s.Register(ctx, "dave", ""))
	assert.False(t, s.Register(ctx, "dave", strings.Repeat("p", 100)))

	n, err := users.CountByRole(ctx, models.RoleUser)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestCreateUser_Reasons(t *testing.T) {
	s, _ := newStore(t, "acct_reasons", "admin123")
	ctx := context.Background()

	require.NoError(t, s.CreateUser(ctx, "carol", "pw"))
	assert.ErrorIs(t, s.CreateUser(ctx, "carol", "pw"), ErrUsernameTaken)
	assert.ErrorIs(t, s.CreateUser(ctx, " ", "pw"), ErrInvalidInput)
	assert.ErrorIs(t, s.CreateUser(ctx, "dave", strings.Repeat("p", 100)), ErrInvalidInput)

	d := testutil.OpenInMemoryDB(t, "acct_reasons_closed")
	closed := NewStore(repository.NewUserRepository(d), Options{BcryptCost: bcrypt.MinCost, Logger: logging.Discard()})
	require.NoError(t, d.Close())
	err := closed.CreateUser(ctx, "erin", "pw")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrUsernameTaken)
	assert.NotErrorIs(t, err, ErrInvalidInput)
}

func TestRegister_CaseSensitiveUsernames(t *testing.T) {
	s, _ := newStore(t, "acct_case", "admin123")
	ctx := context.Background()

	assert.True(t, s.Register(ctx, "Alice", "a"))
	assert.True(t, s.Register(ctx, "alice", "b"))
	_, ok := s.Login(ctx, "Alice", "b")
	assert.False(t, ok)
}

func TestLogin_UnknownAndWrongAreIndistinguishable(t *testing.T) {
	s, _ := newStore(t, "acct_enum", "admin123")
	ctx := context.Background()
	require.True(t, s.Register(ctx, "bob", "secret"))

	r1, ok1 := s.Login(ctx, "bob", "wrong")
	r2, ok2 := s.Login(ctx, "nobody", "secret")
	assert.Equal(t, r1, r2)
	assert.Equal(t, ok1, ok2)
	assert.False(t, ok1)
	assert.Empty(t, r1)
}

func TestLogin_UnknownUserCostsAsMuchAsWrongPassword(t *testing.T) {
	if testing.Short() {
		t.Skip("slow bcrypt timing test")
	}
	const cost = 12
	users := repository.NewUserRepository(testutil.OpenInMemoryDB(t, "acct_timing"))
	s := NewStore(users, Options{BcryptCost: cost, AdminInitialPassword: "admin123", Logger: logging.Discard()})
	ctx := context.Background()
	require.NoError(t, s.Initialize(ctx))

	// Warm the cached dummy hash so only comparisons are measured.
	s.Login(ctx, "nobody", "warmup")

	start := time.Now()
	_, ok := s.Login(ctx, "admin", "wrong")
	wrong := time.Since(start)
	require.False(t, ok)

	start = time.Now()
	_, ok = s.Login(ctx, "nobody", "wrong")
	unknown := time.Since(start)
	require.False(t, ok)

	assert.Greater(t, unknown, wrong/3, "unknown=%s wrong=%s", unknown, wrong)
}

func TestLogin_StorageFailureIsAbsent(t *testing.T) {
	d := testutil.OpenInMemoryDB(t, "acct_loginclosed")
	s := NewStore(repository.NewUserRepository(d), Options{BcryptCost: bcrypt.MinCost, Logger: logging.Discard()})
	require.NoError(t, d.Close())

	role, ok := s.Login(context.Background(), "admin", "admin123")
	assert.False(t, ok)
	assert.Empty(t, role)
	assert.False(t, s.Register(context.Background(), "erin", "pw"))
}

func TestRegister_ConcurrentDuplicateOnlyOneWins(t *testing.T) {
	users := repository.NewUserRepository(testutil.OpenFileDB(t, config.DriverMattn))
	s := NewStore(users, Options{BcryptCost: bcrypt.MinCost, Logger: logging.Discard()})
	ctx := context.Background()

	const n = 8
	var wg sync.WaitGroup
	results := make([]bool, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = s.Register(ctx, "race", "pw")
		}(i)
	}
	wg.Wait()

	wins := 0
	for _, ok := range results {
		if ok {
			wins++
		}
	}
	assert.Equal(t, 1, wins)
}
