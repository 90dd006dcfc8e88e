package filesystem

import (
	"archive/zip"
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/MKhiriev/go-lms-offline/internal/logger"
)

// Unzip implements [Filesystem]. Entries escaping dest are rejected; on any
// failure the partially extracted directory is removed.
func (f *aferoFilesystem) Unzip(ctx context.Context, file, dest string) (string, error) {
	log := logger.FromContext(ctx)

	data, err := afero.ReadFile(f.fs, file)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrFileNotFound, err)
	}

	archive, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		log.Err(err).Str("func", "*aferoFilesystem.Unzip").Str("file", file).Msg("error opening archive")
		return "", fmt.Errorf("%w: %w", ErrUnzipFailed, err)
	}

	if dest == "" {
		dest = filepath.Join(f.temp, f.names.Generate())
	}
	if err = f.fs.MkdirAll(dest, dirPerm); err != nil {
		return "", fmt.Errorf("%w: %w", ErrCreateFailed, err)
	}

	for _, entry := range archive.File {
		if err = ctx.Err(); err == nil {
			err = f.extract(entry, dest)
		}
		if err != nil {
			_ = f.fs.RemoveAll(dest)
			log.Err(err).Str("func", "*aferoFilesystem.Unzip").Str("file", file).Str("entry", entry.Name).Msg("error extracting archive")
			return "", fmt.Errorf("%w: %w", ErrUnzipFailed, err)
		}
	}

	log.Debug().Str("func", "*aferoFilesystem.Unzip").Str("dir", dest).Int("entries", len(archive.File)).Msg("archive extracted")
	return dest, nil
}

func (f *aferoFilesystem) extract(entry *zip.File, dest string) error {
	target, err := within(dest, entry.Name)
	if err != nil {
		return err
	}

	if entry.FileInfo().IsDir() || strings.HasSuffix(entry.Name, "/") {
		return f.fs.MkdirAll(target, dirPerm)
	}
	if err = f.fs.MkdirAll(filepath.Dir(target), dirPerm); err != nil {
		return err
	}

	in, err := entry.Open()
	if err != nil {
		return err
	}
	defer in.Close()

	return f.writeFile(target, in)
}
