package content

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/goto/salt/log"
	"github.com/spf13/afero"

	"github.com/goto/repoctl/core/repository"
	"github.com/goto/repoctl/internal/errors"
)

type Uploader struct {
	client    Client
	fs        afero.Fs
	confirmer Confirmer

	fallbackBranch string

	logger log.Logger
}

func NewUploader(client Client, fs afero.Fs, confirmer Confirmer, fallbackBranch string, logger log.Logger) *Uploader {
	return &Uploader{
		client:         client,
		fs:             fs,
		confirmer:      confirmer,
		fallbackBranch: fallbackBranch,
		logger:         logger,
	}
}

// ResolveBranch returns the default branch of the repository, or the fallback branch when it
// cannot be fetched. The upload goes on either way and fails at write time if the branch is missing.
func (u *Uploader) ResolveBranch(ctx context.Context, ref repository.Ref) string {
	branch, err := u.client.GetDefaultBranch(ctx, ref)
	if err != nil {
		u.logger.Warn("failed to fetch repository info: %s", err)
		return u.fallbackBranch
	}
	if branch == "" {
		u.logger.Warn("repository [%s] reports no default branch", ref)
		return u.fallbackBranch
	}
	return branch
}

// Upload uploads a single file under its base name, or every regular file of a directory
// under its path relative to that directory.
func (u *Uploader) Upload(ctx context.Context, ref repository.Ref, localPath string) (*Report, error) {
	info, err := u.fs.Stat(localPath)
	if err != nil {
		return nil, errors.InvalidArgument(EntityContent, fmt.Sprintf("invalid file or folder path [%s]: %s", localPath, err))
	}
	if !info.IsDir() && !info.Mode().IsRegular() {
		return nil, errors.InvalidArgument(EntityContent, fmt.Sprintf("path [%s] is neither a file nor a folder", localPath))
	}

	branch := u.ResolveBranch(ctx, ref)
	u.logger.Info("using branch: %s", branch)

	if info.IsDir() {
		return u.UploadDir(ctx, ref, branch, localPath)
	}
	return u.UploadFile(ctx, ref, branch, localPath)
}

// UploadFile uploads one local file to the repository root. Declining to overwrite an existing
// entry cancels the upload.
func (u *Uploader) UploadFile(ctx context.Context, ref repository.Ref, branch, localPath string) (*Report, error) {
	report := &Report{Branch: branch}
	source := Source{
		LocalPath:  localPath,
		RemotePath: filepath.Base(localPath),
	}

	result, err := u.uploadSource(ctx, ref, branch, source)
	if err != nil {
		return report, err
	}
	report.add(result)

	if result.Outcome == OutcomeSkipped {
		u.logger.Info("upload cancelled")
	}
	return report, nil
}

// UploadDir walks root and uploads file by file in walk order. A failed or declined file does
// not stop the remaining ones; files already uploaded stay in place.
func (u *Uploader) UploadDir(ctx context.Context, ref repository.Ref, branch, root string) (*Report, error) {
	report := &Report{Branch: branch}

	sources, rejected := CollectSources(u.fs, root)
	for _, result := range rejected {
		if result.Outcome == OutcomeSkipped {
			u.logger.Warn("skipped: %s (%s)", result.Path, result.Err)
		} else {
			u.logger.Error("failed to read %s: %s", result.Path, result.Err)
		}
		report.add(result)
	}

	u.logger.Debug("found %d files under %s", len(sources), root)
	for _, source := range sources {
		result, err := u.uploadSource(ctx, ref, branch, source)
		if err != nil {
			return report, err
		}
		report.add(result)
	}
	return report, nil
}

// uploadSource runs check, confirm, read and write for one file. The returned error is only
// set when the confirmation prompt itself fails.
func (u *Uploader) uploadSource(ctx context.Context, ref repository.Ref, branch string, source Source) (Result, error) {
	path := source.RemotePath

	existing, err := u.client.GetEntry(ctx, ref, path, branch)
	if err != nil {
		return u.failed(path, errors.Wrap(EntityContent, "unable to check existing file", err)), nil
	}

	var sha string
	if existing != nil {
		overwrite, err := u.confirmer.Confirm(fmt.Sprintf("'%s' already exists. Overwrite?", path))
		if err != nil {
			return Result{}, err
		}
		if !overwrite {
			u.logger.Info("skipped: %s", path)
			return Result{Path: path, Outcome: OutcomeSkipped}, nil
		}
		sha = existing.SHA
	}

	data, err := afero.ReadFile(u.fs, source.LocalPath)
	if err != nil {
		return u.failed(path, errors.InternalError(EntityContent, "unable to read local file", err)), nil
	}

	req := WriteRequest{
		Path:    path,
		Message: "Upload " + path,
		Branch:  branch,
		SHA:     sha,
		Content: data,
	}
	if err := u.client.PutFile(ctx, ref, req); err != nil {
		return u.failed(path, err), nil
	}

	outcome := OutcomeCreated
	if req.IsUpdate() {
		outcome = OutcomeUpdated
	}
	u.logger.Info("uploaded: %s", path)
	return Result{Path: path, Outcome: outcome}, nil
}

func (u *Uploader) failed(path string, err error) Result {
	u.logger.Error("failed to upload %s: %s", path, err)
	return Result{Path: path, Outcome: OutcomeFailed, Err: err}
}
