package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/ridesmart/backend/internal/domain"
	"github.com/ridesmart/backend/internal/service"
)

func registration() service.Registration {
	return service.Registration{
		FirstName: "Sara",
		LastName:  "Alqahtani",
		Email:     " Sara@Example.com ",
		Password:  "s3cret",
	}
}

func newUserService(r *mockUserRepo) *service.UserService {
	return service.NewUserService(r, bcrypt.MinCost)
}

func TestUserService_Register_HashesPassword(t *testing.T) {
	var stored domain.User
	r := &mockUserRepo{
		existsByEmail: func(_ context.Context, email string) (bool, error) {
			assert.Equal(t, "sara@example.com", email, "email should be normalised before lookup")
			return false, nil
		},
		create: func(_ context.Context, u domain.User) (domain.User, error) {
			stored = u
			u.ID = 5
			return u, nil
		},
	}

	got, err := newUserService(r).Register(context.Background(), registration())

	require.NoError(t, err)
	assert.EqualValues(t, 5, got.ID)
	assert.NotEqual(t, "s3cret", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("s3cret")))
}

func TestUserService_Register_Duplicate(t *testing.T) {
	r := &mockUserRepo{
		existsByEmail: func(_ context.Context, _ string) (bool, error) { return true, nil },
	}

	_, err := newUserService(r).Register(context.Background(), registration())

	assert.ErrorIs(t, err, domain.ErrIntegrity)
}

func TestUserService_Register_MissingFields(t *testing.T) {
	reg := registration()
	reg.LastName = ""

	_, err := newUserService(&mockUserRepo{}).Register(context.Background(), reg)

	require.ErrorIs(t, err, domain.ErrValidation)
	assert.ErrorContains(t, err, "last_name")
}

func TestUserService_Register_MissingPassword(t *testing.T) {
	reg := registration()
	reg.Password = ""

	_, err := newUserService(&mockUserRepo{}).Register(context.Background(), reg)

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func hashed(t *testing.T, password string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(h)
}

func TestUserService_Login_OK(t *testing.T) {
	user := domain.User{ID: 3, Email: "sara@example.com", PasswordHash: hashed(t, "s3cret")}
	r := &mockUserRepo{
		getByEmail: func(_ context.Context, _ string) (domain.User, error) { return user, nil },
	}

	got, err := newUserService(r).Login(context.Background(), "sara@example.com", "s3cret")

	require.NoError(t, err)
	assert.EqualValues(t, 3, got.ID)
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	user := domain.User{ID: 3, Email: "sara@example.com", PasswordHash: hashed(t, "s3cret")}
	r := &mockUserRepo{
		getByEmail: func(_ context.Context, _ string) (domain.User, error) { return user, nil },
	}

	_, err := newUserService(r).Login(context.Background(), "sara@example.com", "wrong")

	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestUserService_Login_UnknownEmail(t *testing.T) {
	r := &mockUserRepo{
		getByEmail: func(_ context.Context, _ string) (domain.User, error) { return domain.User{}, domain.ErrNotFound },
	}

	_, err := newUserService(r).Login(context.Background(), "ghost@example.com", "x")

	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	assert.NotErrorIs(t, err, domain.ErrNotFound)
}

func TestUserService_Login_StoreError(t *testing.T) {
	dbErr := errors.New("db down")
	r := &mockUserRepo{
		getByEmail: func(_ context.Context, _ string) (domain.User, error) { return domain.User{}, dbErr },
	}

	_, err := newUserService(r).Login(context.Background(), "sara@example.com", "x")

	assert.ErrorIs(t, err, dbErr)
}

func TestUserService_GetByID_NotFound(t *testing.T) {
	r := &mockUserRepo{
		getByID: func(_ context.Context, _ int64) (domain.User, error) { return domain.User{}, domain.ErrNotFound },
	}

	_, err := newUserService(r).GetByID(context.Background(), 9)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUserService_Update_OK(t *testing.T) {
	r := &mockUserRepo{
		update: func(_ context.Context, u domain.User) (domain.User, error) { return u, nil },
	}

	got, err := newUserService(r).Update(context.Background(), domain.User{
		ID: 3, FirstName: " Noura ", LastName: "Saleh", Email: "NOURA@example.com",
	})

	require.NoError(t, err)
	assert.Equal(t, "Noura", got.FirstName)
	assert.Equal(t, "noura@example.com", got.Email)
}

func TestUserService_Update_MissingEmail(t *testing.T) {
	_, err := newUserService(&mockUserRepo{}).Update(context.Background(), domain.User{ID: 3, FirstName: "A", LastName: "B"})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestUserService_Update_EmailTaken(t *testing.T) {
	r := &mockUserRepo{
		update: func(_ context.Context, _ domain.User) (domain.User, error) { return domain.User{}, domain.ErrIntegrity },
	}

	_, err := newUserService(r).Update(context.Background(), domain.User{ID: 3, FirstName: "A", LastName: "B", Email: "c@d.e"})

	assert.ErrorIs(t, err, domain.ErrIntegrity)
}
