package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"analystDashboard/internal/logging"
	"analystDashboard/internal/testutil"
	"analystDashboard/models"
	"analystDashboard/repository"
)

func TestRequireRole(t *testing.T) {
	ctx := WithPrincipal(context.Background(), &Principal{Name: "u1", Role: models.RoleUser})
	_, err := RequireRole(ctx, models.RoleUser)
	require.NoError(t, err)

	_, err = RequireRole(ctx, models.RoleAdmin)
	assert.Equal(t, codes.PermissionDenied, status.Code(err))

	_, err = RequirePrincipal(context.Background())
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
}

func TestRequireAdmin_WithDBRoleCheck(t *testing.T) {
	d := testutil.OpenInMemoryDB(t, "authadmin")
	users := repository.NewUserRepository(d)
	ctx := context.Background()
	_, err := users.Create(ctx, "alice", "h", models.RoleUser)
	require.NoError(t, err)
	_, err = users.Create(ctx, "root", "h", models.RoleAdmin)
	require.NoError(t, err)

	// Forged token: role claims admin but the DB says user.
	pctx := WithPrincipal(ctx, &Principal{Name: "alice", Role: models.RoleAdmin})
	_, err = RequireAdmin(pctx, users)
	assert.Equal(t, codes.PermissionDenied, status.Code(err))

	// Unknown user with admin claim.
	ghost := WithPrincipal(ctx, &Principal{Name: "ghost", Role: models.RoleAdmin})
	_, err = RequireAdmin(ghost, users)
	assert.Equal(t, codes.PermissionDenied, status.Code(err))

	genuine := WithPrincipal(ctx, &Principal{Name: "root", Role: models.RoleAdmin})
	_, err = RequireAdmin(genuine, users)
	require.NoError(t, err)

	_, err = RequireAdmin(genuine, nil)
	assert.Equal(t, codes.Internal, status.Code(err))
}

func TestUnaryAuthInterceptor(t *testing.T) {
	secret := "s3cr3t"
	interceptor := NewUnaryAuthInterceptor(secret, logging.Discard(), "/health")

	hCalled := false
	_, err := interceptor(context.Background(), nil, &grpc.UnaryServerInfo{FullMethod: "/health"}, func(ctx context.Context, req any) (any, error) {
		hCalled = true
		_, ok := FromContext(ctx)
		assert.False(t, ok, "no principal on allowlisted path")
		return 123, nil
	})
	require.NoError(t, err)
	assert.True(t, hCalled)

	_, err = interceptor(context.Background(), nil, &grpc.UnaryServerInfo{FullMethod: "/svc/Op"}, func(ctx context.Context, req any) (any, error) {
		t.Fatal("handler must not run without a token")
		return nil, nil
	})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))

	tok := testutil.GenerateJWTHS256(t, secret, "bob", "user")
	ctx := testutil.CtxWithBearer(context.Background(), tok)
	_, err = interceptor(ctx, nil, &grpc.UnaryServerInfo{FullMethod: "/svc/Op"}, func(ctx context.Context, req any) (any, error) {
		p, ok := FromContext(ctx)
		require.True(t, ok)
		assert.Equal(t, "bob", p.Name)
		assert.Equal(t, models.RoleUser, p.Role)
		return nil, nil
	})
	require.NoError(t, err)
}
