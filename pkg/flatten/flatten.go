// Package flatten turns the tracked contents of a git repository into a
// single Markdown document: a header, a file tree, one fenced section per
// included text file, and a token-count trailer.
package flatten

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"gitflat/pkg/detect"
	"gitflat/pkg/fence"
	"gitflat/pkg/filter"
	"gitflat/pkg/gitrepo"
	"gitflat/pkg/token"

	"go.uber.org/zap"
)

// Run opens the repository, resolves the snapshot to flatten, and writes
// the document to args.Output (or stdout when empty).
func Run(ctx context.Context, args Arguments, logger *zap.Logger) error {
	startTime := time.Now()
	logger.Info("Starting flatten", zap.String("directory", args.Directory), zap.String("revision", args.Revision))

	repo, err := gitrepo.Open(ctx, args.Directory, logger)
	if err != nil {
		return fmt.Errorf("failed to open repository: %w", err)
	}

	cfg, err := LoadFileConfig(repo.Root(), logger)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	args.ApplyDefaults(cfg)

	var src Source
	if args.Revision != "" {
		hash, err := repo.ResolveRevision(ctx, args.Revision)
		if err != nil {
			return fmt.Errorf("failed to resolve revision: %w", err)
		}
		logger.Debug("Resolved revision", zap.String("revision", args.Revision), zap.String("hash", hash))
		src = NewRevisionSource(repo, hash)
	} else {
		src = NewWorkingTreeSource(repo)
	}

	out := io.Writer(os.Stdout)
	if args.Output != "" {
		if dir := filepath.Dir(args.Output); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("failed to create output directory: %w", err)
			}
		}
		f, err := os.Create(args.Output)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer func() {
			if err := f.Close(); err != nil {
				logger.Error("Failed to close output file", zap.String("file", args.Output), zap.Error(err))
			}
		}()
		out = f
	}

	if err := WriteDocument(ctx, src, filepath.Base(repo.Root()), args, out, logger); err != nil {
		return fmt.Errorf("failed to write document: %w", err)
	}

	logger.Info("Flatten complete",
		zap.String("output", args.Output),
		zap.Duration("elapsed", time.Since(startTime)))
	return nil
}

// WriteDocument assembles the flattened document for one source snapshot
// and streams it to w.
func WriteDocument(ctx context.Context, src Source, rootName string, args Arguments, w io.Writer, logger *zap.Logger) error {
	paths, err := src.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list files: %w", err)
	}
	logger.Debug("Listed tracked files", zap.Int("count", len(paths)))

	included := make([]string, 0, len(paths))
	for _, p := range paths {
		if filter.ShouldInclude(p, args.Include, args.Exclude) {
			included = append(included, p)
		} else if args.Verbose {
			logger.Debug("Excluded by filter", zap.String("path", p))
		}
	}
	logger.Debug("Filtered files", zap.Int("included", len(included)), zap.Int("excluded", len(paths)-len(included)))

	cw := &countingWriter{w: w}
	writer := bufio.NewWriter(cw)

	fmt.Fprintf(writer, "# Repository: %s (%s)\n\n", rootName, src.Label())

	tree := RenderTree(rootName, included)
	treeFence := fence.Choose(tree)
	fmt.Fprintf(writer, "## File tree\n\n%s\n%s%s\n\n", treeFence, tree, treeFence)

	for _, p := range included {
		if err := writeFileSection(ctx, writer, src, p, args.MaxFileSizeKB, logger); err != nil {
			return err
		}
	}

	// Estimate from what was written so far; the trailer itself is noise
	// at this scale.
	if err := writer.Flush(); err != nil {
		return fmt.Errorf("failed to flush output: %w", err)
	}
	count := token.CountBytes(cw.n)
	fmt.Fprintf(writer, "---\n\nEstimated size: %s\n", count)

	if err := writer.Flush(); err != nil {
		return fmt.Errorf("failed to flush output: %w", err)
	}
	return nil
}

// writeFileSection emits one `## path` section: fenced content for text
// files, a placeholder note for binary, oversized, or unreadable ones.
func writeFileSection(ctx context.Context, writer *bufio.Writer, src Source, path string, maxFileSizeKB int, logger *zap.Logger) error {
	fmt.Fprintf(writer, "## %s\n\n", path)

	data, err := src.Read(ctx, path)
	if err != nil {
		logger.Warn("Failed to read file", zap.String("path", path), zap.Error(err))
		fmt.Fprintf(writer, "_(unreadable: %v)_\n\n", err)
		return nil
	}

	if maxFileSizeKB > 0 && len(data) > maxFileSizeKB*1024 {
		logger.Debug("File exceeds size limit",
			zap.String("path", path),
			zap.Int("sizeBytes", len(data)),
			zap.Int("maxSizeKB", maxFileSizeKB))
		fmt.Fprintf(writer, "_(skipped, %d bytes exceeds %d KB limit)_\n\n", len(data), maxFileSizeKB)
		return nil
	}

	if detect.LooksBinary(data) {
		logger.Debug("File is binary", zap.String("path", path), zap.Int("sizeBytes", len(data)))
		fmt.Fprintf(writer, "_(binary, %d bytes omitted)_\n\n", len(data))
		return nil
	}

	content := string(data)
	f := fence.Choose(content)
	fmt.Fprintf(writer, "%s\n%s", f, content)
	if len(content) > 0 && content[len(content)-1] != '\n' {
		writer.WriteByte('\n')
	}
	fmt.Fprintf(writer, "%s\n\n", f)
	return nil
}

// countingWriter tracks how many bytes passed through on the way to w.
type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
