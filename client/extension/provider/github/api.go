package github

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/google/go-github/v59/github"
	"golang.org/x/oauth2"

	"github.com/goto/repoctl/config"
	"github.com/goto/repoctl/core/content"
	"github.com/goto/repoctl/core/repository"
	"github.com/goto/repoctl/core/session"
	"github.com/goto/repoctl/internal/errors"
)

var (
	_ session.IdentityClient = (*API)(nil)
	_ repository.Client      = (*API)(nil)
	_ content.Client         = (*API)(nil)
)

type API struct {
	repository Repository
	users      Users

	// requestTimeout bounds every call except file writes, whose duration grows with the file size.
	requestTimeout time.Duration
}

// WithRequestTimeout sets the deadline applied to metadata calls. Zero leaves them bounded by
// the caller's context only.
func (api *API) WithRequestTimeout(timeout time.Duration) *API {
	api.requestTimeout = timeout
	return api
}

func (api *API) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if api.requestTimeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, api.requestTimeout)
}

// GetAuthenticatedUser returns the login of the user owning the token.
func (api *API) GetAuthenticatedUser(ctx context.Context) (string, error) {
	ctx, cancel := api.withTimeout(ctx)
	defer cancel()

	user, _, err := api.users.Get(ctx, "")
	if err != nil {
		return "", toDomainError(session.EntitySession, err)
	}
	return user.GetLogin(), nil
}

func (api *API) CreateRepository(ctx context.Context, req repository.CreateRequest) (*repository.Repository, error) {
	ctx, cancel := api.withTimeout(ctx)
	defer cancel()

	repo := &github.Repository{
		Name:     github.String(req.Name),
		Private:  github.Bool(req.Private),
		AutoInit: github.Bool(req.AutoInit),
	}

	created, resp, err := api.repository.Create(ctx, "", repo)
	if err != nil {
		return nil, toDomainError(repository.EntityRepository, err)
	}
	if err := expectStatus(repository.EntityRepository, resp, http.StatusCreated); err != nil {
		return nil, err
	}
	return toRepository(created), nil
}

func (api *API) DeleteRepository(ctx context.Context, ref repository.Ref) error {
	ctx, cancel := api.withTimeout(ctx)
	defer cancel()

	resp, err := api.repository.Delete(ctx, ref.Owner, ref.Name)
	if err != nil {
		return toDomainError(repository.EntityRepository, err)
	}
	return expectStatus(repository.EntityRepository, resp, http.StatusNoContent)
}

func (api *API) ListRepositories(ctx context.Context, owner string, opts repository.ListOptions) ([]*repository.Repository, error) {
	ctx, cancel := api.withTimeout(ctx)
	defer cancel()

	listOpts := &github.RepositoryListByUserOptions{
		Sort: opts.Sort,
		ListOptions: github.ListOptions{
			Page:    1,
			PerPage: opts.PerPage,
		},
	}

	repos, _, err := api.repository.ListByUser(ctx, owner, listOpts)
	if err != nil {
		return nil, toDomainError(repository.EntityRepository, err)
	}

	result := make([]*repository.Repository, 0, len(repos))
	for _, repo := range repos {
		if repo == nil {
			continue
		}
		result = append(result, toRepository(repo))
	}
	return result, nil
}

func (api *API) GetDefaultBranch(ctx context.Context, ref repository.Ref) (string, error) {
	ctx, cancel := api.withTimeout(ctx)
	defer cancel()

	repo, _, err := api.repository.Get(ctx, ref.Owner, ref.Name)
	if err != nil {
		return "", toDomainError(repository.EntityRepository, err)
	}
	return repo.GetDefaultBranch(), nil
}

func (api *API) GetEntry(ctx context.Context, ref repository.Ref, path, branch string) (*content.Entry, error) {
	ctx, cancel := api.withTimeout(ctx)
	defer cancel()

	option := &github.RepositoryContentGetOptions{Ref: branch}

	file, dir, resp, err := api.repository.GetContents(ctx, ref.Owner, ref.Name, path, option)
	if err != nil {
		if resp != nil && resp.StatusCode == http.StatusNotFound {
			return nil, nil
		}
		return nil, toDomainError(content.EntityContent, err)
	}

	if file == nil {
		if dir != nil {
			return nil, errors.InvalidArgument(content.EntityContent, fmt.Sprintf("remote path [%s] is a directory", path))
		}
		return nil, nil
	}
	return &content.Entry{
		Path: file.GetPath(),
		SHA:  file.GetSHA(),
	}, nil
}

// PutFile creates or updates a file. The content is base64 encoded by the client when the
// request body is marshalled. The write is not bounded by the request timeout, only by ctx.
func (api *API) PutFile(ctx context.Context, ref repository.Ref, req content.WriteRequest) error {
	opts := &github.RepositoryContentFileOptions{
		Message: github.String(req.Message),
		Content: req.Content,
		Branch:  github.String(req.Branch),
	}

	var (
		resp *github.Response
		err  error
	)
	if req.IsUpdate() {
		opts.SHA = github.String(req.SHA)
		_, resp, err = api.repository.UpdateFile(ctx, ref.Owner, ref.Name, req.Path, opts)
	} else {
		_, resp, err = api.repository.CreateFile(ctx, ref.Owner, ref.Name, req.Path, opts)
	}
	if err != nil {
		return toDomainError(content.EntityContent, err)
	}
	return expectStatus(content.EntityContent, resp, http.StatusOK, http.StatusCreated)
}

func toRepository(repo *github.Repository) *repository.Repository {
	return &repository.Repository{
		Name:          repo.GetName(),
		Private:       repo.GetPrivate(),
		HTMLURL:       repo.GetHTMLURL(),
		DefaultBranch: repo.GetDefaultBranch(),
	}
}

func expectStatus(entity string, resp *github.Response, statuses ...int) error {
	if resp == nil || resp.Response == nil {
		return errors.InternalError(entity, "empty response from server", nil)
	}
	for _, status := range statuses {
		if resp.StatusCode == status {
			return nil
		}
	}
	return errors.NewRemoteError(errors.ErrInternalError, entity, resp.StatusCode,
		fmt.Sprintf("unexpected response status %s", resp.Status))
}

// toDomainError keeps the message the server sent so it can be shown to the user as is.
func toDomainError(entity string, err error) error {
	var rateErr *github.RateLimitError
	if errors.As(err, &rateErr) {
		msg := fmt.Sprintf("%s (resets at %s)", rateErr.Message, rateErr.Rate.Reset.Time.Format(time.RFC3339))
		return errors.NewRemoteError(errors.ErrPermissionDenied, entity, statusOf(rateErr.Response), msg)
	}

	var abuseErr *github.AbuseRateLimitError
	if errors.As(err, &abuseErr) {
		return errors.NewRemoteError(errors.ErrPermissionDenied, entity, statusOf(abuseErr.Response), abuseErr.Message)
	}

	var respErr *github.ErrorResponse
	if errors.As(err, &respErr) {
		status := statusOf(respErr.Response)
		msg := respErr.Message
		if msg == "" {
			msg = http.StatusText(status)
		}
		return errors.NewRemoteError(errorTypeOf(status), entity, status, msg)
	}

	return errors.InternalError(entity, "request failed", err)
}

func statusOf(resp *http.Response) int {
	if resp == nil {
		return 0
	}
	return resp.StatusCode
}

func errorTypeOf(status int) errors.ErrorType {
	switch status {
	case http.StatusUnauthorized:
		return errors.ErrUnauthenticated
	case http.StatusForbidden:
		return errors.ErrPermissionDenied
	case http.StatusNotFound:
		return errors.ErrNotFound
	case http.StatusBadRequest, http.StatusConflict, http.StatusUnprocessableEntity:
		return errors.ErrInvalidArgument
	default:
		return errors.ErrInternalError
	}
}

// NewAPI builds the API on a go-github client whose transport attaches the token to every request.
func NewAPI(ctx context.Context, conf config.GitHubConfig, token string) (*API, error) {
	httpClient := oauth2.NewClient(ctx, oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token}))

	client := github.NewClient(httpClient)
	if conf.Host != "" {
		uploadHost := conf.UploadHost
		if uploadHost == "" {
			uploadHost = conf.Host
		}

		var err error
		client, err = client.WithEnterpriseURLs(conf.Host, uploadHost)
		if err != nil {
			return nil, fmt.Errorf("invalid github host [%s]: %w", conf.Host, err)
		}
	}

	return NewGitHubAPI(client.Repositories, client.Users).WithRequestTimeout(conf.RequestTimeout), nil
}

func NewGitHubAPI(repo Repository, users Users) *API {
	return &API{
		repository: repo,
		users:      users,
	}
}
