// Package gitrepo reads tracked paths and file content from a git
// repository, either from the working tree or from a specific revision,
// using git plumbing commands.
package gitrepo

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// Sentinel errors callers branch on.
var (
	ErrNotRepository = errors.New("not a git repository")
	ErrBadRevision   = errors.New("unknown revision")
)

// Repository provides read access to one git repository root.
type Repository struct {
	root     string
	executor CommandExecutor
	logger   *zap.Logger
}

// Open validates that root is inside a git work tree and returns a
// Repository for it.
func Open(ctx context.Context, root string, logger *zap.Logger) (*Repository, error) {
	return OpenWithExecutor(ctx, root, NewExecExecutor(), logger)
}

// OpenWithExecutor is Open with a caller-supplied executor, used by tests.
func OpenWithExecutor(ctx context.Context, root string, executor CommandExecutor, logger *zap.Logger) (*Repository, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve repository root: %w", err)
	}

	r := &Repository{root: absRoot, executor: executor, logger: logger}
	if _, err := r.run(ctx, "rev-parse", "--is-inside-work-tree"); err != nil {
		logger.Debug("rev-parse check failed", zap.String("root", absRoot), zap.Error(err))
		return nil, fmt.Errorf("%w: %s", ErrNotRepository, absRoot)
	}
	return r, nil
}

// Root returns the absolute repository root path.
func (r *Repository) Root() string {
	return r.root
}

// ListWorkingTree returns the slash-normalized relative paths of all files
// tracked in the working tree, in git's listing order.
func (r *Repository) ListWorkingTree(ctx context.Context) ([]string, error) {
	out, err := r.run(ctx, "ls-files", "-z")
	if err != nil {
		return nil, fmt.Errorf("failed to list working tree: %w", err)
	}
	return splitNulList(out), nil
}

// ListRevision returns the relative paths of all files present in the given
// revision.
func (r *Repository) ListRevision(ctx context.Context, rev string) ([]string, error) {
	out, err := r.run(ctx, "ls-tree", "-r", "-z", "--name-only", rev)
	if err != nil {
		return nil, fmt.Errorf("failed to list revision %s: %w", rev, err)
	}
	return splitNulList(out), nil
}

// ResolveRevision expands a revision expression (branch, tag, abbreviated
// hash) to a full commit hash.
func (r *Repository) ResolveRevision(ctx context.Context, rev string) (string, error) {
	out, err := r.run(ctx, "rev-parse", "--verify", rev+"^{commit}")
	if err != nil {
		r.logger.Debug("rev-parse failed", zap.String("rev", rev), zap.Error(err))
		return "", fmt.Errorf("%w: %s", ErrBadRevision, rev)
	}
	return strings.TrimSpace(string(out)), nil
}

// ReadWorkingFile reads one tracked file from the working tree.
func (r *Repository) ReadWorkingFile(path string) ([]byte, error) {
	data, err := os.ReadFile(filepath.Join(r.root, filepath.FromSlash(path)))
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return data, nil
}

// ReadBlob reads the content of path as stored in rev.
func (r *Repository) ReadBlob(ctx context.Context, rev, path string) ([]byte, error) {
	out, err := r.run(ctx, "show", rev+":"+path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s at %s: %w", path, rev, err)
	}
	return out, nil
}

// IsRepository reports whether path lies inside a git work tree.
func IsRepository(path string) bool {
	cmd := exec.Command("git", "-C", path, "rev-parse", "--is-inside-work-tree")
	_, err := NewExecExecutor().Output(cmd)
	return err == nil
}

func (r *Repository) run(ctx context.Context, args ...string) ([]byte, error) {
	full := append([]string{"-C", r.root}, args...)
	return r.executor.Output(exec.CommandContext(ctx, "git", full...))
}

// splitNulList parses NUL-delimited git output into relative paths.
func splitNulList(out []byte) []string {
	var paths []string
	for _, p := range strings.Split(string(out), "\x00") {
		if p != "" {
			paths = append(paths, p)
		}
	}
	return paths
}
