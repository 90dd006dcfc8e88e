package filesystem

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/MKhiriev/go-lms-offline/internal/config"
	"github.com/MKhiriev/go-lms-offline/internal/logger"
	"github.com/MKhiriev/go-lms-offline/internal/utils"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644

	partialSuffix = ".part"
)

type aferoFilesystem struct {
	fs      afero.Fs
	temp    string
	persist string

	fetcher Fetcher
	names   utils.NameGenerator
	logger  *logger.Logger
}

// New returns a [Filesystem] over fs rooted at the directories of cfg.
// fetcher is used by DownloadFile.
func New(fs afero.Fs, cfg config.ClientFiles, fetcher Fetcher, names utils.NameGenerator, logger *logger.Logger) Filesystem {
	return &aferoFilesystem{
		fs:      fs,
		temp:    filepath.Clean(cfg.TempDir),
		persist: filepath.Clean(cfg.PersistentDir),
		fetcher: fetcher,
		names:   names,
		logger:  logger,
	}
}

// NewOS returns a [Filesystem] over the operating system filesystem.
func NewOS(cfg config.ClientFiles, fetcher Fetcher, logger *logger.Logger) Filesystem {
	return New(afero.NewOsFs(), cfg, fetcher, utils.NewUUIDGenerator(), logger)
}

func (f *aferoFilesystem) Root(class StorageClass) string {
	if class == Persistent {
		return f.persist
	}
	return f.temp
}

// DownloadFile implements [Filesystem]. The body is written to a partial
// file which is renamed once the stream is complete.
func (f *aferoFilesystem) DownloadFile(ctx context.Context, url string, class StorageClass, opts DownloadOptions) (string, error) {
	log := logger.FromContext(ctx)

	name := opts.Filename
	if name == "" {
		name = f.names.Generate()
	}
	root := f.Root(class)
	target, err := within(root, name)
	if err != nil {
		return "", err
	}

	if err = f.fs.MkdirAll(root, dirPerm); err != nil {
		return "", fmt.Errorf("%w: %w", ErrCreateFailed, err)
	}

	body, err := f.fetcher.Fetch(ctx, url, opts.Headers)
	if err != nil {
		log.Err(err).Str("func", "*aferoFilesystem.DownloadFile").Str("file", name).Msg("error fetching file")
		return "", err
	}
	defer body.Close()

	partial := target + partialSuffix
	if err = f.writeFile(partial, body); err != nil {
		_ = f.fs.Remove(partial)
		log.Err(err).Str("func", "*aferoFilesystem.DownloadFile").Str("file", name).Msg("error writing downloaded file")
		return "", fmt.Errorf("%w: %w", ErrDownloadFailed, err)
	}

	_ = f.fs.Remove(target)
	if err = f.fs.Rename(partial, target); err != nil {
		_ = f.fs.Remove(partial)
		return "", fmt.Errorf("%w: %w", ErrDownloadFailed, err)
	}

	log.Debug().Str("func", "*aferoFilesystem.DownloadFile").Str("file", target).Msg("file downloaded")
	return target, nil
}

func (f *aferoFilesystem) writeFile(path string, r io.Reader) error {
	out, err := f.fs.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, filePerm)
	if err != nil {
		return err
	}

	if _, err = io.Copy(out, r); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}

// CreatePersistentDirectory implements [Filesystem].
func (f *aferoFilesystem) CreatePersistentDirectory(name string) (string, error) {
	dir, err := within(f.persist, name)
	if err != nil {
		return "", err
	}

	if err = f.fs.MkdirAll(dir, dirPerm); err != nil {
		return "", fmt.Errorf("%w: %w", ErrCreateFailed, err)
	}
	return dir, nil
}

// MoveDirectory implements [Filesystem]. The tree is copied and the source
// removed afterwards, so the move also works across volumes.
func (f *aferoFilesystem) MoveDirectory(src, name, destParent string) error {
	if ok, _ := afero.DirExists(f.fs, src); !ok {
		return fmt.Errorf("%w: %s", ErrDirectoryNotFound, src)
	}

	target, err := within(destParent, name)
	if err != nil {
		return err
	}

	if err = f.fs.RemoveAll(target); err != nil {
		return fmt.Errorf("%w: %w", ErrMoveFailed, err)
	}
	if err = f.fs.MkdirAll(destParent, dirPerm); err != nil {
		return fmt.Errorf("%w: %w", ErrMoveFailed, err)
	}
	if err = f.copyTree(src, target); err != nil {
		_ = f.fs.RemoveAll(target)
		return fmt.Errorf("%w: %w", ErrMoveFailed, err)
	}
	if err = f.fs.RemoveAll(src); err != nil {
		return fmt.Errorf("%w: %w", ErrMoveFailed, err)
	}

	f.logger.Debug().Str("func", "*aferoFilesystem.MoveDirectory").Str("src", src).Str("dst", target).Msg("directory moved")
	return nil
}

func (f *aferoFilesystem) copyTree(src, dst string) error {
	return afero.Walk(f.fs, src, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)

		if info.IsDir() {
			return f.fs.MkdirAll(target, dirPerm)
		}

		in, err := f.fs.Open(path)
		if err != nil {
			return err
		}
		defer in.Close()

		return f.writeFile(target, in)
	})
}

// ReadFileAsText implements [Filesystem].
func (f *aferoFilesystem) ReadFileAsText(dir, name string) (string, error) {
	path, err := f.ResolveFile(dir, name)
	if err != nil {
		return "", err
	}

	data, err := afero.ReadFile(f.fs, path)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrReadFailed, err)
	}
	return string(data), nil
}

// ListDirectoryEntries implements [Filesystem]. Entries are sorted by name.
func (f *aferoFilesystem) ListDirectoryEntries(dir string) ([]Entry, error) {
	infos, err := afero.ReadDir(f.fs, dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrDirectoryNotFound, dir)
		}
		return nil, fmt.Errorf("%w: %w", ErrReadFailed, err)
	}

	entries := make([]Entry, 0, len(infos))
	for _, info := range infos {
		entries = append(entries, Entry{
			Name:    info.Name(),
			Path:    filepath.Join(dir, info.Name()),
			IsDir:   info.IsDir(),
			Size:    info.Size(),
			ModTime: info.ModTime(),
		})
	}
	return entries, nil
}

// ResolveFile implements [Filesystem].
func (f *aferoFilesystem) ResolveFile(base, rel string) (string, error) {
	path, err := within(base, rel)
	if err != nil {
		return "", err
	}

	info, err := f.fs.Stat(path)
	if err != nil || info.IsDir() {
		return "", fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}
	return path, nil
}

// ResolveDirectory implements [Filesystem].
func (f *aferoFilesystem) ResolveDirectory(base, rel string) (string, error) {
	path, err := within(base, rel)
	if err != nil {
		return "", err
	}

	if ok, _ := afero.DirExists(f.fs, path); !ok {
		return "", fmt.Errorf("%w: %s", ErrDirectoryNotFound, path)
	}
	return path, nil
}

// DeleteRecursively implements [Filesystem]. An empty name removes dir
// itself.
func (f *aferoFilesystem) DeleteRecursively(dir, name string) error {
	target, err := within(dir, name)
	if err != nil {
		return err
	}

	if err = f.fs.RemoveAll(target); err != nil {
		return fmt.Errorf("%w: %w", ErrDeleteFailed, err)
	}
	return nil
}

func (f *aferoFilesystem) URL(dir string) string {
	if abs, err := filepath.Abs(dir); err == nil {
		dir = abs
	}
	return "file://" + strings.TrimRight(filepath.ToSlash(dir), "/") + "/"
}

// within joins rel onto base and rejects results outside base.
func within(base, rel string) (string, error) {
	path := filepath.Join(base, filepath.FromSlash(rel))

	inner, err := filepath.Rel(filepath.Clean(base), path)
	if err != nil || inner == ".." || strings.HasPrefix(inner, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: %s", ErrPathOutsideBase, rel)
	}
	return path, nil
}
