package content

import (
	"context"
	"fmt"

	"github.com/goto/repoctl/core/repository"
	"github.com/goto/repoctl/internal/errors"
)

const EntityContent = "content"

type Client interface {
	GetDefaultBranch(ctx context.Context, ref repository.Ref) (string, error)
	// GetEntry returns nil without error when nothing exists at path on branch.
	GetEntry(ctx context.Context, ref repository.Ref, path, branch string) (*Entry, error)
	PutFile(ctx context.Context, ref repository.Ref, req WriteRequest) error
}

// Confirmer asks a yes/no question.
type Confirmer interface {
	Confirm(message string) (bool, error)
}

// Entry is a file stored in the remote repository. SHA is required to update it.
type Entry struct {
	Path string
	SHA  string
}

// WriteRequest creates the file at Path when SHA is empty, otherwise updates it.
type WriteRequest struct {
	Path    string
	Message string
	Branch  string
	SHA     string
	Content []byte
}

func (w WriteRequest) IsUpdate() bool {
	return w.SHA != ""
}

// Source pairs a local file with its destination path in the repository.
type Source struct {
	LocalPath  string
	RemotePath string
}

type Outcome string

const (
	OutcomeCreated Outcome = "created"
	OutcomeUpdated Outcome = "updated"
	OutcomeSkipped Outcome = "skipped"
	OutcomeFailed  Outcome = "failed"
)

type Result struct {
	Path    string
	Outcome Outcome
	Err     error
}

type Report struct {
	Branch  string
	Results []Result
}

type Summary struct {
	Created int
	Updated int
	Skipped int
	Failed  int
}

func (s Summary) String() string {
	return fmt.Sprintf("%d created, %d updated, %d skipped, %d failed", s.Created, s.Updated, s.Skipped, s.Failed)
}

func (r *Report) add(result Result) {
	r.Results = append(r.Results, result)
}

func (r *Report) Summary() Summary {
	var s Summary
	for _, result := range r.Results {
		switch result.Outcome {
		case OutcomeCreated:
			s.Created++
		case OutcomeUpdated:
			s.Updated++
		case OutcomeSkipped:
			s.Skipped++
		case OutcomeFailed:
			s.Failed++
		}
	}
	return s
}

// Err returns the failures of the report as a single error, nil when nothing failed.
func (r *Report) Err() error {
	me := errors.NewMultiError("upload failed for some files")
	for _, result := range r.Results {
		if result.Outcome == OutcomeFailed {
			me.Append(fmt.Errorf("%s: %w", result.Path, result.Err))
		}
	}
	return me.ToErr()
}
