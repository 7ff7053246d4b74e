package event

// Builder is an unsigned event awaiting signature and publication by the
// transport, via the Sender interface below. The core never signs
// events; it only produces builders and hands them to a sender.
type Builder struct {
	Kind Kind
	Content string
	Tags []Tag
}

// NewBuilder constructs a builder from its three wire fields.
func NewBuilder(kind Kind, content string, tags []Tag) Builder {
	return Builder{Kind: kind, Content: content, Tags: tags}
}

// Sender finalizes a Builder into a signed Event for local re-insertion,
// or reports failure. Implemented outside the core by the relay/transport
// layer (internal/relay).
type Sender interface {
	Submit(b Builder) (Event, bool)
}
