//go:build integration

package repository

import (
	"context"
	"testing"

	"github.com/ipede/user-directory-service/internal/domain"
	"github.com/ipede/user-directory-service/internal/infrastructure/database/dbtest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestUserRepository_Integration(t *testing.T) {
	db, _ := dbtest.Start(t)
	ctx := context.Background()
	users := NewUserRepository(db, zap.NewNop())
	roles := NewRoleRepository(db, zap.NewNop())

	allAges := domain.UserFilter{MinAge: domain.MinUserAge, MaxAge: domain.MaxUserAge, Sort: domain.SortNameAsc}

	t.Run("seeded users sorted by name", func(t *testing.T) {
		count, err := users.Count(ctx, allAges)
		require.NoError(t, err)
		assert.Equal(t, 5, count)

		list, err := users.List(ctx, allAges, 10, 0)
		require.NoError(t, err)
		names := make([]string, 0, len(list))
		for _, u := range list {
			names = append(names, u.Name)
		}
		assert.Equal(t, []string{"Alice Johnson", "Bob Wilson", "Eve Brown", "Jane Smith", "John Doe"}, names)
	})

	t.Run("descending sort with age filter and window", func(t *testing.T) {
		filter := domain.UserFilter{MinAge: 28, MaxAge: 35, Sort: domain.SortNameDesc}
		count, err := users.Count(ctx, filter)
		require.NoError(t, err)
		assert.Equal(t, 3, count)

		list, err := users.List(ctx, filter, 2, 1)
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, "Eve Brown", list[0].Name)
		assert.Equal(t, "Alice Johnson", list[1].Name)
	})

	t.Run("unsorted listing uses id order", func(t *testing.T) {
		list, err := users.List(ctx, domain.UserFilter{MinAge: 0, MaxAge: 150, Sort: domain.SortNone}, 5, 0)
		require.NoError(t, err)
		for i, u := range list {
			assert.Equal(t, int64(i+1), u.ID)
		}
	})

	t.Run("create, add role, update, delete", func(t *testing.T) {
		user := &domain.User{Name: "X", Age: 10, Email: "x@x.com"}
		require.NoError(t, users.Create(ctx, user))
		assert.Greater(t, user.ID, int64(5))

		found, err := users.FindByID(ctx, user.ID)
		require.NoError(t, err)
		assert.Empty(t, found.Roles)

		require.NoError(t, users.AddRole(ctx, user.ID, domain.RoleUser))
		assert.ErrorIs(t, users.AddRole(ctx, user.ID, domain.RoleUser), domain.ErrRoleAlreadyAssigned)
		assert.ErrorIs(t, users.AddRole(ctx, user.ID, 99), domain.ErrRoleNotFound)

		found, err = users.FindByID(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, []domain.Role{{ID: 1, Name: "User"}}, found.Roles)

		found.Age = 11
		found.Roles = []domain.Role{{ID: 2, Name: "Admin"}, {ID: 4, Name: "SuperAdmin"}}
		require.NoError(t, users.Update(ctx, found))

		found, err = users.FindByID(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, 11, found.Age)
		assert.Equal(t, []domain.Role{{ID: 2, Name: "Admin"}, {ID: 4, Name: "SuperAdmin"}}, found.Roles)

		require.NoError(t, users.Delete(ctx, user.ID))
		_, err = users.FindByID(ctx, user.ID)
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
		assert.ErrorIs(t, users.Delete(ctx, user.ID), domain.ErrUserNotFound)

		role, err := roles.FindByID(ctx, domain.RoleUser)
		require.NoError(t, err)
		assert.Equal(t, "User", role.Name, "deleting a user keeps the role")
	})

	t.Run("email uniqueness is enforced by the store", func(t *testing.T) {
		err := users.Create(ctx, &domain.User{Name: "Dup", Age: 20, Email: "john.doe@example.com"})
		assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)

		exists, err := users.ExistsByEmail(ctx, "john.doe@example.com")
		require.NoError(t, err)
		assert.True(t, exists)

		err = users.Create(ctx, &domain.User{Name: "Dup", Age: 20, Email: "John.Doe@Example.COM"})
		assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)

		exists, err = users.ExistsByEmail(ctx, "JOHN.DOE@EXAMPLE.COM")
		require.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("age range is enforced by the store", func(t *testing.T) {
		err := users.Create(ctx, &domain.User{Name: "Old", Age: 151, Email: "old@example.com"})
		assert.ErrorIs(t, err, domain.ErrInvalidField)

		err = users.Create(ctx, &domain.User{Name: "Newborn", Age: 0, Email: "newborn@example.com"})
		assert.NoError(t, err, "0 is within the stored range")
	})

	t.Run("update of missing user", func(t *testing.T) {
		err := users.Update(ctx, &domain.User{ID: 9999, Name: "Ghost", Age: 1, Email: "ghost@example.com"})
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
	})

	t.Run("roles lookup", func(t *testing.T) {
		_, err := roles.FindByID(ctx, 99)
		assert.ErrorIs(t, err, domain.ErrRoleNotFound)

		found, err := roles.FindByIDs(ctx, []int64{4, 99, 1})
		require.NoError(t, err)
		assert.Equal(t, []domain.Role{{ID: 1, Name: "User"}, {ID: 4, Name: "SuperAdmin"}}, found)
	})
}

func TestUserRepository_StoreFailuresAreLogged(t *testing.T) {
	db, _ := dbtest.Start(t)
	ctx := context.Background()

	core, logs := observer.New(zapcore.ErrorLevel)
	users := NewUserRepository(db, zap.New(core))

	db.Close()

	assert.ErrorIs(t, users.Delete(ctx, 1), domain.ErrDatabaseQuery)
	assert.Equal(t, 1, logs.FilterMessage("failed to delete user").Len())

	_, err := users.FindByID(ctx, 1)
	assert.ErrorIs(t, err, domain.ErrDatabaseQuery)
	assert.Equal(t, 1, logs.FilterMessage("failed to find user by id").Len())
}
