package task

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/xeruf/mostr-go/internal/event"
)

// formatUnix renders a unix timestamp for the "created" debugging
// property. Human-friendly relative/canonical rendering is the
// formatting collaborator's job ; this is the plain fallback.
func formatUnix(sec int64) string {
	return time.Unix(sec, 0).UTC().Format(time.RFC3339)
}

func joinStrings(parts []string, sep string) string {
	return strings.Join(parts, sep)
}

func kindString(k event.Kind) string {
	return strconv.Itoa(int(k))
}

func formatPropCount(props []event.Event) string {
	return fmt.Sprintf("%d", len(props))
}

// rawTagValues renders non-event tag values for the "tags" property.
func rawTagValues(t *Task) []string {
	if t.definition == nil {
		return nil
	}
	var out []string
	for _, tag := range t.definition.Tags {
		switch tag.Kind {
		case event.TagEvent:
			// excluded per spec
		case event.TagHashtag:
			out = append(out, "#"+tag.Hashtag)
		default:
			out = append(out, strings.Join(tag.Raw, " "))
		}
	}
	return out
}

// allTagStrings renders every tag on the definition event, including
// event tags, for the "alltags" debugging property.
func allTagStrings(t *Task) []string {
	if t.definition == nil {
		return nil
	}
	var out []string
	for _, tag := range t.definition.Tags {
		switch tag.Kind {
		case event.TagEvent:
			marker := tag.Marker
			if marker == "" {
				marker = event.MarkerParent
			}
			out = append(out, fmt.Sprintf("%s:%s", marker, tag.EventID.String()))
		case event.TagHashtag:
			out = append(out, "#"+tag.Hashtag)
		default:
			out = append(out, strings.Join(tag.Raw, " "))
		}
	}
	return out
}
