package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"ouibooking.backend/internal/domain/entities"
)

func TestSeedDemoData(t *testing.T) {
	users, _ := newUserRepo(t)
	bots, _ := newBotRepo(t)
	ctx := context.Background()

	require.NoError(t, SeedDemoData(ctx, users, bots))

	n, err := users.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 6, n)

	admin, err := users.GetByEmail(ctx, "admin@ouibooking.com")
	require.NoError(t, err)
	assert.Equal(t, entities.UserRoleAdmin, admin.Role)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte("password")))

	adminBots, err := bots.ListByUser(ctx, admin.ID)
	require.NoError(t, err)
	require.Len(t, adminBots, 2)
	assert.Equal(t, "Medical Assistant", adminBots[0].Name)
	assert.Equal(t, 1237, adminBots[0].Metrics.Interactions)

	u1, err := users.GetByEmail(ctx, "user1@ouibooking.com")
	require.NoError(t, err)
	u1Bots, err := bots.ListByUser(ctx, u1.ID)
	require.NoError(t, err)
	require.Len(t, u1Bots, 1)
	assert.Equal(t, "Financial Advisor", u1Bots[0].Name)
	assert.False(t, u1Bots[0].Active)
}

func TestSeedDemoData_SkipsNonEmptyStore(t *testing.T) {
	users, _ := newUserRepo(t)
	bots, _ := newBotRepo(t)
	ctx := context.Background()

	require.NoError(t, users.Create(ctx, &entities.User{Email: "existing@ouibooking.com", Name: "E"}))
	require.NoError(t, SeedDemoData(ctx, users, bots))

	n, err := users.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	all, err := bots.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}
