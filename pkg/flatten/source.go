package flatten

import (
	"context"

	"gitflat/pkg/gitrepo"
)

// Source yields the candidate paths and their content for one snapshot of
// the repository, either the working tree or a resolved revision.
type Source interface {
	// List returns the tracked relative paths in listing order.
	List(ctx context.Context) ([]string, error)
	// Read returns the raw content of one listed path.
	Read(ctx context.Context, path string) ([]byte, error)
	// Label describes the snapshot for the document header.
	Label() string
}

type workingTreeSource struct {
	repo *gitrepo.Repository
}

// NewWorkingTreeSource reads the current tracked state of the repository.
func NewWorkingTreeSource(repo *gitrepo.Repository) Source {
	return &workingTreeSource{repo: repo}
}

func (s *workingTreeSource) List(ctx context.Context) ([]string, error) {
	return s.repo.ListWorkingTree(ctx)
}

func (s *workingTreeSource) Read(_ context.Context, path string) ([]byte, error) {
	return s.repo.ReadWorkingFile(path)
}

func (s *workingTreeSource) Label() string {
	return "working tree"
}

type revisionSource struct {
	repo *gitrepo.Repository
	rev  string
}

// NewRevisionSource reads the tracked state as of the resolved revision.
func NewRevisionSource(repo *gitrepo.Repository, rev string) Source {
	return &revisionSource{repo: repo, rev: rev}
}

func (s *revisionSource) List(ctx context.Context) ([]string, error) {
	return s.repo.ListRevision(ctx, s.rev)
}

func (s *revisionSource) Read(ctx context.Context, path string) ([]byte, error) {
	return s.repo.ReadBlob(ctx, s.rev, path)
}

func (s *revisionSource) Label() string {
	return "revision " + s.rev
}
