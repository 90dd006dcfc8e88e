// Package builder turns an unpacked learning module export into a populated
// [models.LearningModule].
//
// A [ModuleBuilder] runs four ordered steps against one module directory:
// ParseManifest, ParseMediaObjects (only needed when the module embeds
// media), ParseStructureTree and ParseChapters. [Build] runs all of them and
// stops at the first failure, so no partial module is returned.
//
// Media is moved into a staging directory next to the stored media and only
// replaces it in CommitMedia, so a failed re-download leaves the media of
// the stored module untouched.
package builder

import (
	"context"
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/MKhiriev/go-lms-offline/internal/filesystem"
	"github.com/MKhiriev/go-lms-offline/internal/logger"
	"github.com/MKhiriev/go-lms-offline/models"
)

// Export document layout.
const (
	manifestFile = "manifest.xml"

	componentStructure = "Modules/LearningModule"
	componentContent   = "Services/COPage"
	componentMedia     = "Services/MediaObjects"

	mediaSourceDir  = "Services/MediaObjects"
	mediaDirName    = "MediaObjects"
	mediaStagingDir = "MediaObjects.staging"

	nodeTypeChapter = "st"
	nodeTypePage    = "pg"

	pageIDPrefix = "lm:"
)

// manifest holds the resolved paths of the three export components.
type manifest struct {
	structure string
	content   string
	media     string
}

// ModuleBuilder accumulates the state of one ingestion. It is not safe for
// concurrent use.
type ModuleBuilder struct {
	fs     filesystem.Filesystem
	module models.LearningModule

	manifest *manifest
	chapters []models.Chapter
	media    []models.MediaObject

	// persistent directory of the module, set once media is staged
	mediaRoot string
	staged    bool
}

// NewModuleBuilder returns a builder for module, whose Directory must point
// at the unpacked export.
func NewModuleBuilder(module models.LearningModule, fs filesystem.Filesystem) *ModuleBuilder {
	return &ModuleBuilder{fs: fs, module: module}
}

// Build runs every step in order and returns the populated module.
func Build(ctx context.Context, module models.LearningModule, fs filesystem.Filesystem) (models.LearningModule, error) {
	b := NewModuleBuilder(module, fs)

	steps := []func(context.Context) error{
		b.ParseManifest,
		b.ParseMediaObjects,
		b.ParseStructureTree,
		b.ParseChapters,
	}
	for _, step := range steps {
		if err := step(ctx); err != nil {
			b.DiscardMedia(ctx)
			return models.LearningModule{}, err
		}
	}

	if err := b.CommitMedia(ctx); err != nil {
		b.DiscardMedia(ctx)
		return models.LearningModule{}, err
	}

	return b.LearningModule(), nil
}

// ParseManifest reads manifest.xml and resolves the structure, content and
// media documents it declares.
func (b *ModuleBuilder) ParseManifest(ctx context.Context) error {
	log := logger.FromContext(ctx)

	root, err := b.readDocument(b.module.Directory, manifestFile)
	if err != nil {
		log.Err(err).Str("func", "*ModuleBuilder.ParseManifest").Int64("ref_id", b.module.RefID).Msg("error reading manifest")
		return err
	}

	paths := make(map[string]string, 3)
	for _, file := range root.findAll("ExportFile") {
		component, _ := file.attr("Component")
		path, ok := file.attr("Path")
		if _, seen := paths[component]; ok && !seen {
			paths[component] = path
		}
	}

	var m manifest
	for _, c := range []struct {
		name string
		dest *string
	}{
		{componentStructure, &m.structure},
		{componentContent, &m.content},
		{componentMedia, &m.media},
	} {
		path, ok := paths[c.name]
		if !ok {
			log.Error().Str("func", "*ModuleBuilder.ParseManifest").Int64("ref_id", b.module.RefID).Str("component", c.name).Msg("manifest component missing")
			return fmt.Errorf("%w: %s", ErrManifestComponentMissing, c.name)
		}
		if *c.dest, err = b.fs.ResolveFile(b.module.Directory, path); err != nil {
			log.Err(err).Str("func", "*ModuleBuilder.ParseManifest").Int64("ref_id", b.module.RefID).Str("component", c.name).Msg("manifest component not resolvable")
			return err
		}
	}

	b.manifest = &m
	return nil
}

// ParseMediaObjects stages the media of the export in the persistent
// directory of the module and reads the media descriptions. The staged
// media replaces the stored one in CommitMedia.
func (b *ModuleBuilder) ParseMediaObjects(ctx context.Context) error {
	log := logger.FromContext(ctx)

	if b.manifest == nil {
		return ErrStepOrder
	}

	dir, err := b.fs.CreatePersistentDirectory(strconv.FormatInt(b.module.RefID, 10))
	if err != nil {
		log.Err(err).Str("func", "*ModuleBuilder.ParseMediaObjects").Int64("ref_id", b.module.RefID).Msg("error creating media directory")
		return err
	}

	root, err := b.readDocument(splitPath(b.manifest.media))
	if err != nil {
		log.Err(err).Str("func", "*ModuleBuilder.ParseMediaObjects").Int64("ref_id", b.module.RefID).Msg("error reading media document")
		return err
	}

	// an export without embedded files has no media directory
	if src, err := b.fs.ResolveDirectory(b.module.Directory, mediaSourceDir); err == nil {
		if err = b.fs.MoveDirectory(src, mediaStagingDir, dir); err != nil {
			log.Err(err).Str("func", "*ModuleBuilder.ParseMediaObjects").Int64("ref_id", b.module.RefID).Msg("error staging media")
			return err
		}
		b.mediaRoot, b.staged = dir, true
	}

	media, err := parseMediaObjects(root, b.fs.URL(dir))
	if err != nil {
		log.Err(err).Str("func", "*ModuleBuilder.ParseMediaObjects").Int64("ref_id", b.module.RefID).Msg("error parsing media document")
		return err
	}

	b.media = media
	return nil
}

// ParseStructureTree reads the flat node list of the structure document.
// A page node belongs to the closest chapter node before it.
func (b *ModuleBuilder) ParseStructureTree(ctx context.Context) error {
	log := logger.FromContext(ctx)

	if b.manifest == nil {
		return ErrStepOrder
	}

	root, err := b.readDocument(splitPath(b.manifest.structure))
	if err != nil {
		log.Err(err).Str("func", "*ModuleBuilder.ParseStructureTree").Int64("ref_id", b.module.RefID).Msg("error reading structure document")
		return err
	}

	chapters, err := parseStructureTree(root)
	if err != nil {
		log.Err(err).Str("func", "*ModuleBuilder.ParseStructureTree").Int64("ref_id", b.module.RefID).Msg("error parsing structure tree")
		return err
	}

	b.chapters = chapters
	return nil
}

// ParseChapters fills the content of every collected page from the content
// document.
func (b *ModuleBuilder) ParseChapters(ctx context.Context) error {
	log := logger.FromContext(ctx)

	if b.manifest == nil {
		return ErrStepOrder
	}

	root, err := b.readDocument(splitPath(b.manifest.content))
	if err != nil {
		log.Err(err).Str("func", "*ModuleBuilder.ParseChapters").Int64("ref_id", b.module.RefID).Msg("error reading content document")
		return err
	}

	items := indexExportItems(root)
	for i := range b.chapters {
		pages := b.chapters[i].Pages
		for j := range pages {
			item, ok := items[pageIDPrefix+strconv.FormatInt(pages[j].ExportID, 10)]
			if !ok {
				log.Error().Str("func", "*ModuleBuilder.ParseChapters").Int64("ref_id", b.module.RefID).Int64("export_id", pages[j].ExportID).Msg("page content missing")
				return fmt.Errorf("%w: page %d", ErrPageContentMissing, pages[j].ExportID)
			}

			content, err := pageContent(item, b.media)
			if err != nil {
				log.Err(err).Str("func", "*ModuleBuilder.ParseChapters").Int64("ref_id", b.module.RefID).Int64("export_id", pages[j].ExportID).Msg("error parsing page")
				return err
			}
			pages[j].Content = content
		}
	}

	return nil
}

// CommitMedia replaces the stored media of the module with the staged
// media. It does nothing when no media was staged.
func (b *ModuleBuilder) CommitMedia(ctx context.Context) error {
	if !b.staged {
		return nil
	}

	src, err := b.fs.ResolveDirectory(b.mediaRoot, mediaStagingDir)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*ModuleBuilder.CommitMedia").Int64("ref_id", b.module.RefID).Msg("staged media missing")
		return err
	}
	if err = b.fs.MoveDirectory(src, mediaDirName, b.mediaRoot); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*ModuleBuilder.CommitMedia").Int64("ref_id", b.module.RefID).Msg("error moving media")
		return err
	}

	b.staged = false
	return nil
}

// DiscardMedia removes staged media that was not committed.
func (b *ModuleBuilder) DiscardMedia(ctx context.Context) {
	if !b.staged {
		return
	}

	if err := b.fs.DeleteRecursively(b.mediaRoot, mediaStagingDir); err != nil {
		logger.FromContext(ctx).Warn().Err(err).Str("func", "*ModuleBuilder.DiscardMedia").Int64("ref_id", b.module.RefID).Msg("error removing staged media")
		return
	}
	b.staged = false
}

// LearningModule attaches the collected chapters to the module and returns
// it.
func (b *ModuleBuilder) LearningModule() models.LearningModule {
	module := b.module
	module.Chapters = b.chapters
	return module
}

// MediaObjects returns the media descriptions read by ParseMediaObjects.
func (b *ModuleBuilder) MediaObjects() []models.MediaObject {
	return b.media
}

func (b *ModuleBuilder) readDocument(dir, name string) (*node, error) {
	content, err := b.fs.ReadFileAsText(dir, name)
	if err != nil {
		return nil, err
	}
	return parseDocument(content)
}

// splitPath splits a resolved file path for ReadFileAsText.
func splitPath(path string) (string, string) {
	return filepath.Dir(path), filepath.Base(path)
}
