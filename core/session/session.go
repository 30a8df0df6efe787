package session

import (
	"context"
	"fmt"

	"github.com/goto/repoctl/internal/errors"
)

const EntitySession = "session"

type IdentityClient interface {
	GetAuthenticatedUser(ctx context.Context) (string, error)
}

// Session holds the identity resolved at login. It is read-only once created.
type Session struct {
	owner string
}

func (s *Session) Owner() string {
	return s.owner
}

// Login validates the credential the client was built with and resolves the user login.
func Login(ctx context.Context, client IdentityClient) (*Session, error) {
	login, err := client.GetAuthenticatedUser(ctx)
	if err != nil {
		var de *errors.DomainError
		if errors.As(err, &de) && de.Status != 0 {
			return nil, errors.Unauthenticated(EntitySession, fmt.Sprintf("login failed: %d - %s", de.Status, de.Message))
		}
		return nil, errors.Unauthenticated(EntitySession, fmt.Sprintf("login failed: %s", err))
	}

	if login == "" {
		return nil, errors.Unauthenticated(EntitySession, "login failed: empty user login in response")
	}
	return &Session{owner: login}, nil
}

// ValidateToken rejects an empty credential before any request is made.
func ValidateToken(token string) error {
	if token == "" {
		return errors.Unauthenticated(EntitySession, "access token is empty")
	}
	return nil
}
