package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/MakeNowJust/heredoc"
	"github.com/goto/salt/log"
	"github.com/olekukonko/tablewriter"

	"github.com/goto/repoctl/core/content"
	"github.com/goto/repoctl/core/repository"
	"github.com/goto/repoctl/core/session"
)

const (
	ChoiceCreate = "1"
	ChoiceDelete = "2"
	ChoiceUpload = "3"
	ChoiceList   = "4"
	ChoiceExit   = "5"
)

var menu = heredoc.Doc(`

	--- Menu ---
	1. Create Repository
	2. Delete Repository
	3. Upload Files or Folder
	4. View My Repositories
	5. Exit`)

// Prompter reads the answers the menu actions need.
type Prompter interface {
	AskChoice() (string, error)
	AskNewRepository() (name string, private bool, err error)
	AskRepositoryName(message string) (string, error)
	AskLocalPath() (string, error)
}

// Progress is shown while waiting on slow remote calls.
type Progress interface {
	Start(msg string)
	Stop()
}

type Shell struct {
	session  *session.Session
	prompter Prompter

	repositories *repository.Service
	uploader     *content.Uploader

	progress Progress
	out      io.Writer
	logger   log.Logger
}

func New(
	sess *session.Session, prompter Prompter,
	repositories *repository.Service, uploader *content.Uploader,
	progress Progress, out io.Writer, logger log.Logger,
) *Shell {
	return &Shell{
		session:      sess,
		prompter:     prompter,
		repositories: repositories,
		uploader:     uploader,
		progress:     progress,
		out:          out,
		logger:       logger,
	}
}

// Run shows the menu until the exit choice is made or input is closed at the menu. Failed
// actions are reported and the menu is shown again; only a failing prompt ends the loop with
// an error.
func (s *Shell) Run(ctx context.Context) error {
	for {
		fmt.Fprintln(s.out, menu)

		choice, err := s.prompter.AskChoice()
		if err != nil {
			if errors.Is(err, io.EOF) {
				s.logger.Info("input closed, exiting...")
				return nil
			}
			return err
		}

		exit, err := s.Dispatch(ctx, choice)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return fmt.Errorf("input closed before the action finished: %w", err)
			}
			return err
		}
		if exit {
			s.logger.Info("Exiting...")
			return nil
		}
	}
}

// Dispatch runs the action for choice. The returned error is only set when reading input failed.
func (s *Shell) Dispatch(ctx context.Context, choice string) (bool, error) {
	var err error
	switch choice {
	case ChoiceCreate:
		err = s.create(ctx)
	case ChoiceDelete:
		err = s.delete(ctx)
	case ChoiceUpload:
		err = s.upload(ctx)
	case ChoiceList:
		err = s.list(ctx)
	case ChoiceExit:
		return true, nil
	default:
		s.logger.Error("invalid choice [%s], try again", choice)
		return false, nil
	}

	if err != nil {
		if IsPromptError(err) {
			return false, err
		}
		s.logger.Error("%s", err)
	}
	return false, nil
}

func (s *Shell) create(ctx context.Context) error {
	name, private, err := s.prompter.AskNewRepository()
	if err != nil {
		return err
	}

	created, err := s.repositories.Create(ctx, name, private)
	if err != nil {
		s.logger.Error("failed to create repository: %s", err)
		return nil
	}
	s.logger.Info("repository '%s' created successfully: %s", created.Name, created.HTMLURL)
	return nil
}

func (s *Shell) delete(ctx context.Context) error {
	name, err := s.prompter.AskRepositoryName("Enter repository name to delete:")
	if err != nil {
		return err
	}
	ref, err := repository.RefFrom(s.session.Owner(), name)
	if err != nil {
		s.logger.Error("%s", err)
		return nil
	}

	deleted, err := s.repositories.Delete(ctx, ref)
	if err != nil {
		if IsPromptError(err) {
			return err
		}
		s.logger.Error("failed to delete repository: %s", err)
		return nil
	}
	if !deleted {
		s.logger.Info("deletion cancelled")
		return nil
	}
	s.logger.Info("repository '%s' deleted successfully", ref.Name)
	return nil
}

func (s *Shell) upload(ctx context.Context) error {
	name, err := s.prompter.AskRepositoryName("Enter repository name to upload to:")
	if err != nil {
		return err
	}
	localPath, err := s.prompter.AskLocalPath()
	if err != nil {
		return err
	}
	ref, err := repository.RefFrom(s.session.Owner(), name)
	if err != nil {
		s.logger.Error("%s", err)
		return nil
	}

	report, err := s.uploader.Upload(ctx, ref, localPath)
	if report != nil && len(report.Results) > 0 {
		s.logger.Info("upload to %s@%s finished: %s", ref, report.Branch, report.Summary())
	}
	if err != nil {
		if IsPromptError(err) {
			return err
		}
		s.logger.Error("%s", err)
	}
	return nil
}

func (s *Shell) list(ctx context.Context) error {
	owner := s.session.Owner()

	s.progress.Start("fetching repositories...")
	repos, err := s.repositories.List(ctx, owner)
	s.progress.Stop()
	if err != nil {
		s.logger.Error("failed to fetch repositories: %s", err)
		return nil
	}

	if len(repos) == 0 {
		s.logger.Info("no repositories found")
		return nil
	}

	fmt.Fprintf(s.out, "\nRepositories for '%s':\n", owner)
	table := tablewriter.NewWriter(s.out)
	table.SetHeader([]string{"#", "Name", "Visibility", "URL"})
	table.SetBorder(false)
	table.SetAutoWrapText(false)
	for i, repo := range repos {
		table.Append([]string{strconv.Itoa(i + 1), repo.Name, repo.Visibility(), repo.HTMLURL})
	}
	table.Render()
	return nil
}

// IsPromptError reports whether err comes from reading input, which means the user can no
// longer answer and the shell has to stop.
func IsPromptError(err error) bool {
	return errors.Is(err, terminal.InterruptErr) || errors.Is(err, io.EOF)
}
