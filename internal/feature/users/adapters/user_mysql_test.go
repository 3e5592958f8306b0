package adapters

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/ChadMaddela/Course-Booking-Backend/internal/feature/users/domain"
	"github.com/ChadMaddela/Course-Booking-Backend/internal/feature/users/domain/entity"
)

// setupTestDB prepares an in-memory SQLite database for testing.
// TranslateError makes the driver surface unique violations as
// gorm.ErrDuplicatedKey, matching the MySQL 1062 path.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err, "failed to initialize test database")

	err = db.AutoMigrate(&entity.User{})
	require.NoError(t, err, "failed to migrate table")

	return db
}

func testUser(email string) *entity.User {
	return &entity.User{
		FirstName: "Taro",
		LastName:  "Yamada",
		Email:     email,
		MobileNo:  "09012345678",
		Password:  "hashed_password",
	}
}

func TestNewUserMySQL(t *testing.T) {
	db := setupTestDB(t)

	repo := NewUserMySQL(db)

	assert.NotNil(t, repo, "repository is nil")
	assert.NotNil(t, repo.db, "database connection is nil")
}

func TestUserMySQL_Create(t *testing.T) {
	t.Run("successful user creation", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserMySQL(db)

		user := testUser("test@example.com")

		err := repo.Create(context.Background(), user)

		assert.NoError(t, err, "failed to create user")
		assert.NotZero(t, user.ID, "ID is not set")
		assert.False(t, user.CreatedAt.IsZero(), "CreatedAt is not set")
		assert.False(t, user.UpdatedAt.IsZero(), "UpdatedAt is not set")
	})

	t.Run("duplicate email returns domain error", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserMySQL(db)

		err := repo.Create(context.Background(), testUser("duplicate@example.com"))
		require.NoError(t, err, "failed to create first user")

		// Create second user with the same email
		err = repo.Create(context.Background(), testUser("duplicate@example.com"))

		assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists, "should return ErrEmailAlreadyExists")
	})
}

func TestUserMySQL_FindByEmail(t *testing.T) {
	t.Run("find user by email successfully", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserMySQL(db)

		expected := testUser("find@example.com")
		err := repo.Create(context.Background(), expected)
		require.NoError(t, err, "failed to create test data")

		found, err := repo.FindByEmail(context.Background(), "find@example.com")

		assert.NoError(t, err, "failed to find user")
		assert.NotNil(t, found, "user is nil")
		assert.Equal(t, expected.ID, found.ID, "ID does not match")
		assert.Equal(t, expected.Email, found.Email, "email does not match")
		assert.Equal(t, expected.Password, found.Password, "password does not match")
	})

	t.Run("email not found error", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserMySQL(db)

		found, err := repo.FindByEmail(context.Background(), "notfound@example.com")

		assert.Nil(t, found, "user should be nil")
		assert.ErrorIs(t, err, domain.ErrUserNotFound, "should return ErrUserNotFound")
	})
}

func TestUserMySQL_FindByID(t *testing.T) {
	t.Run("find user by ID successfully", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserMySQL(db)

		expected := testUser("findbyid@example.com")
		err := repo.Create(context.Background(), expected)
		require.NoError(t, err, "failed to create test data")

		found, err := repo.FindByID(context.Background(), expected.ID)

		assert.NoError(t, err, "failed to find user")
		assert.NotNil(t, found, "user is nil")
		assert.Equal(t, expected.ID, found.ID, "ID does not match")
		assert.Equal(t, expected.Email, found.Email, "email does not match")
	})

	t.Run("ID not found error", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserMySQL(db)

		found, err := repo.FindByID(context.Background(), 999)

		assert.Nil(t, found, "user should be nil")
		assert.ErrorIs(t, err, domain.ErrUserNotFound, "should return ErrUserNotFound")
	})
}

func TestUserMySQL_ExistsByEmail(t *testing.T) {
	t.Run("existing email returns true", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserMySQL(db)

		err := repo.Create(context.Background(), testUser("exists@example.com"))
		require.NoError(t, err, "failed to create test data")

		exists, err := repo.ExistsByEmail(context.Background(), "exists@example.com")

		assert.NoError(t, err)
		assert.True(t, exists, "expected email to exist")
	})

	t.Run("unknown email returns false", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserMySQL(db)

		exists, err := repo.ExistsByEmail(context.Background(), "unknown@example.com")

		assert.NoError(t, err)
		assert.False(t, exists, "expected email to not exist")
	})
}

func TestUserMySQL_Update(t *testing.T) {
	t.Run("changes are persisted", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserMySQL(db)

		user := testUser("update@example.com")
		err := repo.Create(context.Background(), user)
		require.NoError(t, err, "failed to create test data")

		user.IsAdmin = true
		user.FirstName = "Jiro"
		err = repo.Update(context.Background(), user)
		require.NoError(t, err, "failed to update user")

		found, err := repo.FindByID(context.Background(), user.ID)
		require.NoError(t, err, "failed to find user")

		assert.True(t, found.IsAdmin, "IsAdmin was not persisted")
		assert.Equal(t, "Jiro", found.FirstName, "FirstName was not persisted")
	})
}
