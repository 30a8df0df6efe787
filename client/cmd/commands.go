package cmd

import (
	"context"
	"errors"
	"os"
	"strings"

	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/MakeNowJust/heredoc"
	"github.com/goto/salt/log"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/goto/repoctl/client/cmd/internal/logger"
	"github.com/goto/repoctl/client/cmd/internal/progressbar"
	"github.com/goto/repoctl/client/cmd/internal/survey"
	"github.com/goto/repoctl/client/cmd/shell"
	"github.com/goto/repoctl/client/cmd/version"
	githubapi "github.com/goto/repoctl/client/extension/provider/github"
	lerrors "github.com/goto/repoctl/client/local/errors"
	"github.com/goto/repoctl/config"
	"github.com/goto/repoctl/core/content"
	"github.com/goto/repoctl/core/repository"
	"github.com/goto/repoctl/core/session"
)

// New constructs the 'root' command. With no subcommand it logs in and starts the
// interactive menu.
func New() *cobra.Command {
	root := &rootCommand{
		getenv:   os.Getenv,
		askToken: survey.AskToken,
		progress: progressbar.NewProgressBar(),
	}

	cmd := &cobra.Command{
		Use:   "repoctl <command> [flags]",
		Short: "Manage your GitHub repositories interactively",
		Long: heredoc.Doc(`
			Create, delete and list GitHub repositories, and upload files or folders to them.

			The access token is read from the environment variable configured by
			github.token_env (GITHUB_TOKEN by default) and prompted for when it is not set.`),
		Example: heredoc.Doc(`
			$ repoctl
			$ repoctl --config ./repoctl.yaml
			$ repoctl version`),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PreRunE:       root.PreRunE,
		RunE:          root.RunE,
	}

	cmd.PersistentFlags().StringVarP(&root.configFilePath, "config", "c", config.EmptyPath, "File path for client configuration")

	cmd.AddCommand(version.NewVersionCommand())
	return cmd
}

type rootCommand struct {
	configFilePath string
	clientConfig   *config.ClientConfig

	getenv   func(key string) string
	askToken func() (string, error)
	progress shell.Progress

	logger  log.Logger
	api     *githubapi.API
	session *session.Session
}

func (r *rootCommand) PreRunE(cmd *cobra.Command, _ []string) error {
	conf, err := config.LoadClientConfig(r.configFilePath)
	if err != nil {
		return err
	}
	r.clientConfig = conf
	r.logger = logger.NewClientLogger(conf.Log.Level)

	r.logger.Info("GitHub Repository Manager")

	token, err := r.resolveToken()
	if err != nil {
		return err
	}

	r.api, err = githubapi.NewAPI(cmd.Context(), conf.GitHub, token)
	if err != nil {
		return err
	}
	return r.login(cmd.Context(), r.api)
}

// resolveToken returns the token from the configured env variable, or asks for it when the
// variable is unset or empty. An empty token fails with the authentication exit code.
func (r *rootCommand) resolveToken() (string, error) {
	token, err := r.readToken()
	if err != nil {
		if errors.Is(err, terminal.InterruptErr) {
			return "", lerrors.NewInterruptedError(err)
		}
		return "", err
	}
	if err := session.ValidateToken(token); err != nil {
		return "", lerrors.NewCmdError(err, lerrors.ExitCodeAuthFailure)
	}
	return token, nil
}

func (r *rootCommand) login(ctx context.Context, client session.IdentityClient) error {
	r.progress.Start("logging in...")
	sess, err := session.Login(ctx, client)
	r.progress.Stop()
	if err != nil {
		return lerrors.NewAuthErrorf("%s", err)
	}

	r.session = sess
	r.logger.Info("Logged in as: %s", sess.Owner())
	return nil
}

func (r *rootCommand) RunE(cmd *cobra.Command, _ []string) error {
	prompts := &prompter{
		MenuSurvey:       survey.NewMenuSurvey(),
		RepositorySurvey: survey.NewRepositorySurvey(),
		UploadSurvey:     survey.NewUploadSurvey(),
	}

	repositories := repository.NewService(r.api, prompts, r.clientConfig.List.PageSize, r.logger)
	uploader := content.NewUploader(r.api, afero.NewOsFs(), prompts, r.clientConfig.Upload.FallbackBranch, r.logger)

	sh := shell.New(r.session, prompts, repositories, uploader, r.progress, os.Stdout, r.logger)
	if err := sh.Run(cmd.Context()); err != nil {
		if errors.Is(err, terminal.InterruptErr) {
			return lerrors.NewInterruptedError(err)
		}
		return err
	}
	return nil
}

func (r *rootCommand) readToken() (string, error) {
	if token := strings.TrimSpace(r.getenv(r.clientConfig.GitHub.TokenEnv)); token != "" {
		r.logger.Debug("using access token from %s", r.clientConfig.GitHub.TokenEnv)
		return token, nil
	}
	return r.askToken()
}

// prompter answers every question of the interactive shell through survey prompts.
type prompter struct {
	*survey.MenuSurvey
	*survey.RepositorySurvey
	*survey.UploadSurvey
}
