//go:build e2e

package helper

import (
	"testing"
	"time"

	"campus-rooms/internal/domain/user"
	"campus-rooms/internal/pkg/config"
	"campus-rooms/internal/pkg/jwt"
	"campus-rooms/tests/common/dbtest"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// JWTTestHelper mints tokens directly; authentication is owned by an
// upstream service, so there is no login endpoint to drive.
type JWTTestHelper struct {
	pool *pgxpool.Pool
	cfg  config.JWTConfig
}

func NewJWTTestHelper(pool *pgxpool.Pool, cfg config.JWTConfig) *JWTTestHelper {
	return &JWTTestHelper{pool: pool, cfg: cfg}
}

func (h *JWTTestHelper) CreateTestUser(t *testing.T, email string, role user.Role) uuid.UUID {
	t.Helper()
	return dbtest.CreateTestUser(t, h.pool, email, role.String())
}

// CreateUserWithToken inserts a user row and returns its id together with a
// valid bearer token for it.
func (h *JWTTestHelper) CreateUserWithToken(t *testing.T, email string, role user.Role) (uuid.UUID, string) {
	t.Helper()
	userID := h.CreateTestUser(t, email, role)
	return userID, h.GenerateToken(t, userID, role)
}

func (h *JWTTestHelper) GenerateToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	duration, err := time.ParseDuration(h.cfg.Duration)
	require.NoError(t, err)
	service := jwt.NewService(h.cfg.Secret, duration)
	token, err := service.GenerateToken(userID, role)
	require.NoError(t, err)
	return token
}

func (h *JWTTestHelper) CreateExpiredToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	service := jwt.NewService(h.cfg.Secret, 1*time.Millisecond)
	token, err := service.GenerateToken(userID, role)
	require.NoError(t, err)
	time.Sleep(10 * time.Millisecond)
	return token
}
