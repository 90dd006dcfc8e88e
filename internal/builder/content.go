package builder

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-lms-offline/models"
)

// tagRewrites turn export markup into HTML. They apply in order and ignore
// case.
var tagRewrites = []struct {
	pattern *regexp.Regexp
	tag     string
}{
	{regexp.MustCompile(`(?i)SimpleBulletList`), "ul"},
	{regexp.MustCompile(`(?i)SimpleListItem`), "li"},
	{regexp.MustCompile(`(?i)Paragraph`), "p"},
	{regexp.MustCompile(`(?i)Emph`), "i"},
}

func toHTML(content string) string {
	for _, r := range tagRewrites {
		content = r.pattern.ReplaceAllLiteralString(content, r.tag)
	}
	return content
}

func parseMediaObjects(root *node, dirURL string) ([]models.MediaObject, error) {
	items := root.findAll("ExportItem")
	media := make([]models.MediaObject, 0, len(items))

	for _, item := range items {
		mob := item.find("Mob")
		mediaItem := item.find("MobMediaItem")
		if mob == nil || mediaItem == nil {
			return nil, fmt.Errorf("%w: media item without Mob or MobMediaItem", ErrMalformedDocument)
		}

		object, err := parseMediaObject(mob, mediaItem, dirURL)
		if err != nil {
			return nil, err
		}
		media = append(media, object)
	}

	return media, nil
}

func parseMediaObject(mob, item *node, dirURL string) (models.MediaObject, error) {
	var (
		object models.MediaObject
		err    error
		width  int64
		height int64
	)

	if object.MobID, err = item.number("MobId"); err != nil {
		return object, err
	}
	if width, err = item.number("Width"); err != nil {
		return object, err
	}
	if height, err = item.number("Height"); err != nil {
		return object, err
	}
	object.Width, object.Height = int(width), int(height)

	object.Halign, _ = item.text("Halign")
	object.Caption, _ = item.text("Caption")

	dir, err := mob.requiredText("Dir")
	if err != nil {
		return object, err
	}
	location, err := item.requiredText("Location")
	if err != nil {
		return object, err
	}
	object.Location = dirURL + dir + "/" + location

	if object.LocationType, err = item.requiredText("LocationType"); err != nil {
		return object, err
	}
	if object.Format, err = item.requiredText("Format"); err != nil {
		return object, err
	}

	return object, nil
}

func parseStructureTree(root *node) ([]models.Chapter, error) {
	var chapters []models.Chapter

	for _, tree := range root.findAll("LmTree") {
		nodeType, err := tree.requiredText("Type")
		if err != nil {
			return nil, err
		}
		if nodeType != nodeTypeChapter && nodeType != nodeTypePage {
			continue
		}

		title, err := tree.requiredText("Title")
		if err != nil {
			return nil, err
		}
		exportID, err := tree.number("Child")
		if err != nil {
			return nil, err
		}

		if nodeType == nodeTypeChapter {
			chapters = append(chapters, models.Chapter{
				Title:    title,
				ExportID: exportID,
				Position: len(chapters),
				Pages:    []models.Page{},
			})
			continue
		}

		if len(chapters) == 0 {
			return nil, fmt.Errorf("%w: page %d", ErrPageBeforeChapter, exportID)
		}
		last := &chapters[len(chapters)-1]
		last.Pages = append(last.Pages, models.Page{
			Title:    title,
			ExportID: exportID,
			Position: len(last.Pages),
		})
	}

	if chapters == nil {
		chapters = []models.Chapter{}
	}
	return chapters, nil
}

// indexExportItems maps the Id attribute of every ExportItem to the item.
// The first item with a given Id wins.
func indexExportItems(root *node) map[string]*node {
	index := make(map[string]*node)
	for _, item := range root.findAll("ExportItem") {
		id, ok := item.attr("Id")
		if !ok {
			continue
		}
		if _, seen := index[id]; !seen {
			index[id] = item
		}
	}
	return index
}

// pageContent concatenates the content blocks of a page item: the raw
// markup of paragraph blocks and an image tag for media blocks.
func pageContent(item *node, media []models.MediaObject) (string, error) {
	page := item.find("PageObject")
	if page == nil {
		return "", fmt.Errorf("%w: item without PageObject", ErrMalformedDocument)
	}

	var sb strings.Builder
	for _, block := range page.findAll("PageContent") {
		if block.find("Paragraph") != nil {
			sb.WriteString(block.Inner)
			continue
		}

		mob := block.find("MediaObject")
		if mob == nil {
			continue
		}
		alias := mob.find("MediaAlias")
		if alias == nil {
			return "", fmt.Errorf("%w: media block without MediaAlias", ErrMalformedDocument)
		}
		originID, _ := alias.attr("OriginId")

		tag, err := mediaTag(originID, media)
		if err != nil {
			return "", err
		}
		sb.WriteString(tag)
	}

	return toHTML(sb.String()), nil
}

// mediaTag builds the image tag of the first media object whose id occurs
// in originID. Origin ids carry the media id inside a longer identifier
// such as "il__mob_42".
func mediaTag(originID string, media []models.MediaObject) (string, error) {
	for _, m := range media {
		if strings.Contains(originID, strconv.FormatInt(m.MobID, 10)) {
			return `<img src="` + strings.Replace(m.Location, "Services/", "", 1) + `">`, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrMediaNotFound, originID)
}
