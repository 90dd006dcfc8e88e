package workers

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/go-lms-offline/internal/filesystem"
	"github.com/MKhiriev/go-lms-offline/internal/logger"
)

// CacheCleaner removes downloads and extraction directories left in the
// temporary root by interrupted ingestions.
type CacheCleaner struct {
	fs     filesystem.Filesystem
	maxAge time.Duration
	now    func() time.Time
	logger *logger.Logger
}

// NewCacheCleaner returns a worker deleting temporary entries older than
// maxAge. A zero maxAge clears the whole temporary root.
func NewCacheCleaner(fs filesystem.Filesystem, maxAge time.Duration, logger *logger.Logger) *CacheCleaner {
	return &CacheCleaner{fs: fs, maxAge: maxAge, now: time.Now, logger: logger}
}

// Run implements [Worker].
func (c *CacheCleaner) Run(ctx context.Context) error {
	root := c.fs.Root(filesystem.Temporary)

	entries, err := c.fs.ListDirectoryEntries(root)
	if errors.Is(err, filesystem.ErrDirectoryNotFound) {
		return nil
	}
	if err != nil {
		c.logger.Err(err).Str("func", "*CacheCleaner.Run").Str("root", root).Msg("cannot list temporary directory")
		return err
	}

	cutoff := c.now().Add(-c.maxAge)
	removed := 0

	var errs []error
	for _, entry := range entries {
		if err = ctx.Err(); err != nil {
			return err
		}
		if c.maxAge > 0 && entry.ModTime.After(cutoff) {
			continue
		}

		if err = c.fs.DeleteRecursively(root, entry.Name); err != nil {
			c.logger.Err(err).Str("func", "*CacheCleaner.Run").Str("entry", entry.Name).Msg("cannot remove cached entry")
			errs = append(errs, err)
			continue
		}
		removed++
	}

	c.logger.Info().Int("removed", removed).Str("root", root).Msg("temporary cache cleaned")
	return errors.Join(errs...)
}
