package user_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gandistip/renting-things/internal/user"
)

// fakeRepo routes each method through an overridable function field so tests
// only wire the calls they care about.
type fakeRepo struct {
	createFn  func(ctx context.Context, u *user.User) error
	getByIDFn func(ctx context.Context, id int64) (*user.User, error)
	listFn    func(ctx context.Context) ([]*user.User, error)
	updateFn  func(ctx context.Context, u *user.User) error
	deleteFn  func(ctx context.Context, id int64) error
}

func (f *fakeRepo) Create(ctx context.Context, u *user.User) error { return f.createFn(ctx, u) }
func (f *fakeRepo) GetByID(ctx context.Context, id int64) (*user.User, error) {
	return f.getByIDFn(ctx, id)
}
func (f *fakeRepo) List(ctx context.Context) ([]*user.User, error) { return f.listFn(ctx) }
func (f *fakeRepo) Update(ctx context.Context, u *user.User) error { return f.updateFn(ctx, u) }
func (f *fakeRepo) Delete(ctx context.Context, id int64) error     { return f.deleteFn(ctx, id) }

func TestCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("assigns id from storage", func(t *testing.T) {
		repo := &fakeRepo{createFn: func(_ context.Context, u *user.User) error {
			u.ID = 5
			return nil
		}}
		svc := user.NewService(repo)

		u, err := svc.Create(ctx, user.CreateRequest{Name: "alice", Email: "alice@example.com"})
		require.NoError(t, err)
		assert.Equal(t, int64(5), u.ID)
		assert.Equal(t, "alice", u.Name)
	})

	t.Run("duplicate email surfaces conflict", func(t *testing.T) {
		repo := &fakeRepo{createFn: func(context.Context, *user.User) error {
			return user.ErrEmailTaken
		}}
		svc := user.NewService(repo)

		_, err := svc.Create(ctx, user.CreateRequest{Name: "alice", Email: "alice@example.com"})
		assert.ErrorIs(t, err, user.ErrEmailTaken)
	})
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()
	stored := &user.User{ID: 5, Name: "alice", Email: "alice@example.com"}

	newRepo := func() *fakeRepo {
		return &fakeRepo{
			getByIDFn: func(_ context.Context, id int64) (*user.User, error) {
				if id != stored.ID {
					return nil, user.ErrNotFound
				}
				copied := *stored
				return &copied, nil
			},
			updateFn: func(context.Context, *user.User) error { return nil },
		}
	}

	t.Run("partial update keeps untouched fields", func(t *testing.T) {
		svc := user.NewService(newRepo())
		email := "new@example.com"
		u, err := svc.Update(ctx, 5, user.UpdateRequest{Email: &email})
		require.NoError(t, err)
		assert.Equal(t, "alice", u.Name)
		assert.Equal(t, email, u.Email)
	})

	t.Run("unknown user", func(t *testing.T) {
		svc := user.NewService(newRepo())
		name := "bob"
		_, err := svc.Update(ctx, 99, user.UpdateRequest{Name: &name})
		assert.ErrorIs(t, err, user.ErrNotFound)
	})

	t.Run("email conflict on update", func(t *testing.T) {
		repo := newRepo()
		repo.updateFn = func(context.Context, *user.User) error { return user.ErrEmailTaken }
		svc := user.NewService(repo)
		email := "taken@example.com"
		_, err := svc.Update(ctx, 5, user.UpdateRequest{Email: &email})
		assert.ErrorIs(t, err, user.ErrEmailTaken)
	})
}

func TestDelete(t *testing.T) {
	repo := &fakeRepo{deleteFn: func(_ context.Context, id int64) error {
		if id != 5 {
			return user.ErrNotFound
		}
		return nil
	}}
	svc := user.NewService(repo)

	assert.NoError(t, svc.Delete(context.Background(), 5))
	assert.ErrorIs(t, svc.Delete(context.Background(), 99), user.ErrNotFound)
}
