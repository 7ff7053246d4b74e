// Package relay is a local, file-backed stand-in for the signed-event
// relay transport the core is bound to : a JSONL journal
// appended to under an exclusive file lock, with a notification stream
// driven by fsnotify, and a synthetic (non-cryptographic) signing step
// standing in for the real relay client this module does not implement.
package relay

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"

	"github.com/xeruf/mostr-go/internal/event"
)

// wireTag mirrors the relay protocol's tag array shape: ["e", <id>,
// <marker>] for event tags, ["t", <label>] for hashtags, and anything
// else preserved as a raw string slice.
type wireTag []string

type wireEvent struct {
	ID string `json:"id"`
	PubKey string `json:"pubkey"`
	CreatedAt int64 `json:"created_at"`
	Kind uint16 `json:"kind"`
	Content string `json:"content"`
	Tags []wireTag `json:"tags"`
}

func encodeTag(t event.Tag) wireTag {
	switch t.Kind {
	case event.TagEvent:
		return wireTag{"e", t.EventID.String(), t.Marker}
	case event.TagHashtag:
		return wireTag{"t", t.Hashtag}
	default:
		return wireTag(t.Raw)
	}
}

func decodeTag(w wireTag) event.Tag {
	if len(w) == 0 {
		return event.Tag{Kind: event.TagOther, Raw: w}
	}
	switch w[0] {
	case "e":
		var id event.ID
		if len(w) > 1 {
			id, _ = event.IDFromHex(w[1])
		}
		marker := ""
		if len(w) > 2 {
			marker = w[2]
		}
		return event.Tag{Kind: event.TagEvent, EventID: id, Marker: marker}
	case "t":
		label := ""
		if len(w) > 1 {
			label = w[1]
		}
		return event.Tag{Kind: event.TagHashtag, Hashtag: label}
	default:
		return event.Tag{Kind: event.TagOther, Raw: w}
	}
}

func toWire(ev event.Event) wireEvent {
	tags := make([]wireTag, 0, len(ev.Tags))
	for _, t := range ev.Tags {
		tags = append(tags, encodeTag(t))
	}
	return wireEvent{
		ID: ev.ID.String(),
		PubKey: ev.Author.String(),
		CreatedAt: ev.CreatedAt,
		Kind: uint16(ev.Kind),
		Content: ev.Content,
		Tags: tags,
	}
}

func fromWire(w wireEvent) (event.Event, error) {
	id, err := event.IDFromHex(w.ID)
	if err != nil {
		return event.Event{}, fmt.Errorf("relay: decoding event id: %w", err)
	}
	var author event.PubKey
	if w.PubKey != "" {
		a, err := event.IDFromHex(w.PubKey)
		if err != nil {
			return event.Event{}, fmt.Errorf("relay: decoding author: %w", err)
		}
		author = event.PubKey(a)
	}
	tags := make([]event.Tag, 0, len(w.Tags))
	for _, t := range w.Tags {
		tags = append(tags, decodeTag(t))
	}
	return event.Event{
		ID: id,
		Author: author,
		CreatedAt: w.CreatedAt,
		Kind: event.Kind(w.Kind),
		Content: w.Content,
		Tags: tags,
	}, nil
}

func marshalLine(ev event.Event) ([]byte, error) {
	b, err := json.Marshal(toWire(ev))
	if err != nil {
		return nil, err
	}
	return append(b, '\n'), nil
}

func unmarshalLine(line []byte) (event.Event, error) {
	var w wireEvent
	if err := json.Unmarshal(line, &w); err != nil {
		return event.Event{}, fmt.Errorf("relay: decoding journal line: %w", err)
	}
	return fromWire(w)
}

// syntheticID derives a deterministic id from the builder's fields and
// the author, standing in for the real relay's signing step — a
// content hash over (author, created_at, kind, content, tags), matching
// the wire protocol's notion of id as a content hash.
func syntheticID(author event.PubKey, createdAt int64, b event.Builder) event.ID {
	h := sha256.New()
	fmt.Fprintf(h, "%s|%d|%d|%s|", author.String(), createdAt, b.Kind, b.Content)
	for _, t := range b.Tags {
		fmt.Fprintf(h, "%v|", encodeTag(t))
	}
	sum := h.Sum(nil)
	var id event.ID
	copy(id[:], sum)
	return id
}
