package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/goto/salt/log"

	"github.com/goto/repoctl/internal/errors"
)

const (
	// DeleteConfirmationToken is the answer that has to be typed to confirm a deletion.
	DeleteConfirmationToken = "yes"

	SortByUpdated = "updated"
)

type Client interface {
	CreateRepository(ctx context.Context, req CreateRequest) (*Repository, error)
	DeleteRepository(ctx context.Context, ref Ref) error
	ListRepositories(ctx context.Context, owner string, opts ListOptions) ([]*Repository, error)
}

// Asker asks a free text question.
type Asker interface {
	Ask(message string) (string, error)
}

type CreateRequest struct {
	Name     string
	Private  bool
	AutoInit bool
}

type ListOptions struct {
	PerPage int
	Sort    string
}

type Service struct {
	client   Client
	asker    Asker
	pageSize int

	logger log.Logger
}

func NewService(client Client, asker Asker, pageSize int, logger log.Logger) *Service {
	return &Service{
		client:   client,
		asker:    asker,
		pageSize: pageSize,
		logger:   logger,
	}
}

// Create creates a repository for the authenticated user. Auto init is always enabled so the
// repository has a default branch to upload to.
func (s *Service) Create(ctx context.Context, name string, private bool) (*Repository, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.InvalidArgument(EntityRepository, "repository name is empty")
	}

	created, err := s.client.CreateRepository(ctx, CreateRequest{
		Name:     name,
		Private:  private,
		AutoInit: true,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Debug("repository [%s] created at %s", created.Name, created.HTMLURL)
	return created, nil
}

// Delete deletes the repository after the user typed the confirmation token. It returns false
// without issuing any request when the confirmation does not match.
func (s *Service) Delete(ctx context.Context, ref Ref) (bool, error) {
	answer, err := s.asker.Ask(fmt.Sprintf("Are you sure you want to delete '%s'? Type '%s' to confirm:", ref.Name, DeleteConfirmationToken))
	if err != nil {
		return false, err
	}

	if !IsDeleteConfirmed(answer) {
		return false, nil
	}

	if err := s.client.DeleteRepository(ctx, ref); err != nil {
		return false, err
	}
	return true, nil
}

// List returns the first page of the owner's repositories, most recently updated first.
func (s *Service) List(ctx context.Context, owner string) ([]*Repository, error) {
	if owner == "" {
		return nil, errors.InvalidArgument(EntityRepository, "owner is empty")
	}

	return s.client.ListRepositories(ctx, owner, ListOptions{
		PerPage: s.pageSize,
		Sort:    SortByUpdated,
	})
}

func IsDeleteConfirmed(answer string) bool {
	return strings.EqualFold(strings.TrimSpace(answer), DeleteConfirmationToken)
}
