package cmd

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"syscall"

	"github.com/alecthomas/kong"

	"github.com/ardnew/inuse/envvar"
	"github.com/ardnew/inuse/log"
	"github.com/ardnew/inuse/pkg"
	"github.com/ardnew/inuse/provider"
	"github.com/ardnew/inuse/resolve"
)

// ContextKey is used to store a [kong.Context] value in [context.Context].
type contextKey struct{}

// WithContext returns a new context.Context containing the given kong.Context.
func WithContext(ctx context.Context, ktx *kong.Context) context.Context {
	return context.WithValue(ctx, contextKey{}, ktx)
}

func kongContextFrom(ctx context.Context) *kong.Context {
	ktx, ok := ctx.Value(contextKey{}).(*kong.Context)
	if !ok || ktx == nil {
		return nil
	}

	return ktx
}

// stdout returns the output writer configured on the parser, so tests can
// capture command output. Falls back to os.Stdout outside a parse.
func stdout(ctx context.Context) io.Writer {
	if ktx := kongContextFrom(ctx); ktx != nil && ktx.Stdout != nil {
		return ktx.Stdout
	}

	return os.Stdout
}

type (
	sourcesKey   struct{}
	thresholdKey struct{}
)

// WithSources returns a new context.Context carrying the configuration
// source arguments given on the command line.
func WithSources(ctx context.Context, sources []string) context.Context {
	return context.WithValue(ctx, sourcesKey{}, sources)
}

func sourcesFrom(ctx context.Context) []string {
	sources, _ := ctx.Value(sourcesKey{}).([]string)

	return sources
}

// WithThreshold returns a new context.Context carrying the severity
// escalation threshold given on the command line.
func WithThreshold(ctx context.Context, threshold int) context.Context {
	return context.WithValue(ctx, thresholdKey{}, threshold)
}

func thresholdFrom(ctx context.Context) int {
	threshold, ok := ctx.Value(thresholdKey{}).(int)
	if !ok {
		return resolve.DefaultThreshold
	}

	return threshold
}

// stdinSource is the special source indicator for reading from stdin.
const stdinSource = "-"

// fileKey uniquely identifies a file by its device and inode numbers.
// This handles deduplication across symlinks, absolute/relative paths, and
// repeated arguments.
type fileKey struct {
	dev uint64
	ino uint64
}

// makeFileKey creates a fileKey from os.FileInfo.
// Returns false if the underlying Sys() data is not of type *syscall.Stat_t.
func makeFileKey(info os.FileInfo) (key fileKey, ok bool) {
	stat, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return key, false
	}

	return fileKey{dev: stat.Dev, ino: stat.Ino}, true
}

// buildDocument loads every configuration source named on the command line
// into a single merged [provider.Document].
//
// Sources load in argument order, so keys from later files override keys
// from earlier ones. The special source "-" reads INI from stdin. Named
// files are deduplicated by device/inode after resolving symlinks, so the
// same file given twice (or via a symlink) loads only once.
func buildDocument(ctx context.Context) (*provider.Document, error) {
	sources := sourcesFrom(ctx)
	if len(sources) == 0 {
		return nil, pkg.ErrNoSources
	}

	doc := provider.NewDocument()
	seen := make(map[fileKey]struct{})
	haveStdin := false

	for _, src := range sources {
		if src == stdinSource {
			if haveStdin {
				continue
			}

			haveStdin = true

			if err := doc.MergeINI(os.Stdin, "stdin"); err != nil {
				return nil, err
			}

			continue
		}

		// Existing paths resolve directly; bare names are searched for
		// upward from the working directory.
		path, err := provider.Discover(src, "")
		if err != nil {
			return nil, err
		}

		resolved, err := filepath.EvalSymlinks(path)
		if err == nil {
			path = resolved
		}

		if info, err := os.Stat(path); err == nil {
			if key, ok := makeFileKey(info); ok {
				if _, dup := seen[key]; dup {
					continue
				}

				seen[key] = struct{}{}
			}
		}

		if err := doc.LoadFile(path); err != nil {
			return nil, err
		}
	}

	return doc, nil
}

// buildEngine constructs a resolution engine over the sources and
// threshold carried in ctx. Additional options are appended after the
// defaults, so callers may override any of them.
func buildEngine(
	ctx context.Context,
	opts ...resolve.Option,
) (*resolve.Engine, error) {
	doc, err := buildDocument(ctx)
	if err != nil {
		return nil, err
	}

	base := []resolve.Option{
		resolve.WithHandlers(envvar.Handlers()),
		resolve.WithThreshold(thresholdFrom(ctx)),
		resolve.WithLogger(log.Default()),
	}

	return resolve.New(doc, append(base, opts...)...), nil
}
