package repository_test

import (
	"context"
	"errors"
	"testing"

	"github.com/goto/salt/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/goto/repoctl/core/repository"
	rerrors "github.com/goto/repoctl/internal/errors"
)

func TestService(t *testing.T) {
	ctx := context.Background()
	logger := log.NewNoop()
	ref := repository.Ref{Owner: "octocat", Name: "demo"}

	t.Run("Create", func(t *testing.T) {
		t.Run("sends a single request with auto init enabled", func(t *testing.T) {
			client := new(repoClient)
			defer client.AssertExpectations(t)

			expected := &repository.Repository{Name: "demo", HTMLURL: "https://github.com/octocat/demo"}
			client.On("CreateRepository", ctx, repository.CreateRequest{Name: "demo", Private: false, AutoInit: true}).
				Return(expected, nil).Once()

			service := repository.NewService(client, nil, 100, logger)
			created, err := service.Create(ctx, "demo", false)

			assert.NoError(t, err)
			assert.Equal(t, expected, created)
		})
		t.Run("keeps the private flag as given", func(t *testing.T) {
			client := new(repoClient)
			defer client.AssertExpectations(t)

			client.On("CreateRepository", ctx, repository.CreateRequest{Name: "secret", Private: true, AutoInit: true}).
				Return(&repository.Repository{Name: "secret", Private: true}, nil).Once()

			service := repository.NewService(client, nil, 100, logger)
			created, err := service.Create(ctx, "  secret ", true)

			assert.NoError(t, err)
			assert.Equal(t, repository.VisibilityPrivate, created.Visibility())
		})
		t.Run("returns the remote message on failure", func(t *testing.T) {
			client := new(repoClient)
			defer client.AssertExpectations(t)

			remoteErr := rerrors.NewRemoteError(rerrors.ErrInvalidArgument, repository.EntityRepository, 422, "repository name already exists")
			client.On("CreateRepository", ctx, mock.Anything).Return(nil, remoteErr)

			service := repository.NewService(client, nil, 100, logger)
			created, err := service.Create(ctx, "demo", false)

			assert.Nil(t, created)
			assert.EqualError(t, err, "repository name already exists")
		})
		t.Run("returns error without request when name is empty", func(t *testing.T) {
			client := new(repoClient)
			defer client.AssertExpectations(t)

			service := repository.NewService(client, nil, 100, logger)
			created, err := service.Create(ctx, "   ", false)

			assert.Nil(t, created)
			assert.True(t, rerrors.IsErrorType(err, rerrors.ErrInvalidArgument))
			client.AssertNotCalled(t, "CreateRepository", mock.Anything, mock.Anything)
		})
	})

	t.Run("Delete", func(t *testing.T) {
		t.Run("deletes when the confirmation token is typed", func(t *testing.T) {
			client := new(repoClient)
			defer client.AssertExpectations(t)
			asker := new(scriptedAsker)
			defer asker.AssertExpectations(t)

			asker.On("Ask", mock.Anything).Return("yes", nil).Once()
			client.On("DeleteRepository", ctx, ref).Return(nil).Once()

			service := repository.NewService(client, asker, 100, logger)
			deleted, err := service.Delete(ctx, ref)

			assert.NoError(t, err)
			assert.True(t, deleted)
		})
		t.Run("sends no request for any other answer", func(t *testing.T) {
			for _, answer := range []string{"", "no", "y", "yess", "ye s", "sure"} {
				client := new(repoClient)
				asker := new(scriptedAsker)
				asker.On("Ask", mock.Anything).Return(answer, nil).Once()

				service := repository.NewService(client, asker, 100, logger)
				deleted, err := service.Delete(ctx, ref)

				assert.NoError(t, err, answer)
				assert.False(t, deleted, answer)
				client.AssertNotCalled(t, "DeleteRepository", mock.Anything, mock.Anything)
				asker.AssertExpectations(t)
			}
		})
		t.Run("returns error when asking fails", func(t *testing.T) {
			client := new(repoClient)
			asker := new(scriptedAsker)
			asker.On("Ask", mock.Anything).Return("", errors.New("interrupt"))

			service := repository.NewService(client, asker, 100, logger)
			deleted, err := service.Delete(ctx, ref)

			assert.EqualError(t, err, "interrupt")
			assert.False(t, deleted)
			client.AssertNotCalled(t, "DeleteRepository", mock.Anything, mock.Anything)
		})
		t.Run("returns the remote error when deletion fails", func(t *testing.T) {
			client := new(repoClient)
			defer client.AssertExpectations(t)
			asker := new(scriptedAsker)

			asker.On("Ask", mock.Anything).Return("YES ", nil)
			client.On("DeleteRepository", ctx, ref).
				Return(rerrors.NewRemoteError(rerrors.ErrPermissionDenied, repository.EntityRepository, 403, "Must have admin rights to Repository."))

			service := repository.NewService(client, asker, 100, logger)
			deleted, err := service.Delete(ctx, ref)

			assert.False(t, deleted)
			assert.EqualError(t, err, "Must have admin rights to Repository.")
		})
	})

	t.Run("List", func(t *testing.T) {
		t.Run("requests the first page sorted by update time", func(t *testing.T) {
			client := new(repoClient)
			defer client.AssertExpectations(t)

			repos := []*repository.Repository{{Name: "demo"}, {Name: "secret", Private: true}}
			client.On("ListRepositories", ctx, "octocat", repository.ListOptions{PerPage: 100, Sort: "updated"}).
				Return(repos, nil).Once()

			service := repository.NewService(client, nil, 100, logger)
			actual, err := service.List(ctx, "octocat")

			assert.NoError(t, err)
			assert.Equal(t, repos, actual)
		})
		t.Run("returns empty list as is", func(t *testing.T) {
			client := new(repoClient)
			defer client.AssertExpectations(t)

			client.On("ListRepositories", ctx, "octocat", mock.Anything).Return([]*repository.Repository{}, nil).Once()

			service := repository.NewService(client, nil, 100, logger)
			actual, err := service.List(ctx, "octocat")

			assert.NoError(t, err)
			assert.Empty(t, actual)
		})
		t.Run("returns error when owner is empty", func(t *testing.T) {
			client := new(repoClient)

			service := repository.NewService(client, nil, 100, logger)
			_, err := service.List(ctx, "")

			assert.True(t, rerrors.IsErrorType(err, rerrors.ErrInvalidArgument))
		})
	})
}

func TestIsDeleteConfirmed(t *testing.T) {
	assert.True(t, repository.IsDeleteConfirmed("yes"))
	assert.True(t, repository.IsDeleteConfirmed(" Yes\n"))
	assert.False(t, repository.IsDeleteConfirmed("y"))
	assert.False(t, repository.IsDeleteConfirmed("no"))
	assert.False(t, repository.IsDeleteConfirmed(""))
}

func TestRefFrom(t *testing.T) {
	t.Run("trims the name", func(t *testing.T) {
		ref, err := repository.RefFrom("octocat", " demo ")

		assert.NoError(t, err)
		assert.Equal(t, "octocat/demo", ref.String())
	})
	t.Run("returns error for empty name", func(t *testing.T) {
		_, err := repository.RefFrom("octocat", " ")

		assert.True(t, rerrors.IsErrorType(err, rerrors.ErrInvalidArgument))
	})
	t.Run("returns error for empty owner", func(t *testing.T) {
		_, err := repository.RefFrom("", "demo")

		assert.Error(t, err)
	})
}

type repoClient struct {
	mock.Mock
}

func (r *repoClient) CreateRepository(ctx context.Context, req repository.CreateRequest) (*repository.Repository, error) {
	args := r.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.Repository), args.Error(1)
}

func (r *repoClient) DeleteRepository(ctx context.Context, ref repository.Ref) error {
	args := r.Called(ctx, ref)
	return args.Error(0)
}

func (r *repoClient) ListRepositories(ctx context.Context, owner string, opts repository.ListOptions) ([]*repository.Repository, error) {
	args := r.Called(ctx, owner, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*repository.Repository), args.Error(1)
}

type scriptedAsker struct {
	mock.Mock
}

func (s *scriptedAsker) Ask(message string) (string, error) {
	args := s.Called(message)
	return args.String(0), args.Error(1)
}
