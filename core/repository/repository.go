package repository

import (
	"strings"

	"github.com/goto/repoctl/internal/errors"
)

const (
	EntityRepository = "repository"

	VisibilityPublic  = "public"
	VisibilityPrivate = "private"
)

// Ref identifies a repository on the remote platform.
type Ref struct {
	Owner string
	Name  string
}

func RefFrom(owner, name string) (Ref, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Ref{}, errors.InvalidArgument(EntityRepository, "repository name is empty")
	}
	if owner == "" {
		return Ref{}, errors.InvalidArgument(EntityRepository, "repository owner is empty")
	}
	return Ref{Owner: owner, Name: name}, nil
}

func (r Ref) String() string {
	return r.Owner + "/" + r.Name
}

// Repository is the summary of a remote repository.
type Repository struct {
	Name          string
	Private       bool
	HTMLURL       string
	DefaultBranch string
}

func (r *Repository) Visibility() string {
	if r.Private {
		return VisibilityPrivate
	}
	return VisibilityPublic
}
