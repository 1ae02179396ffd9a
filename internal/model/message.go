package model

import "strings"

// ComposedMessage is the update for one recipient: a greeting header,
// one body segment per account in input order, and a constant footer.
type ComposedMessage struct {
	Recipient string // normalized phone, also the batch key
	Header    string
	Segments  []string
	Footer    string
}

// Flatten joins the parts into the single payload handed to the channel.
// Segments embed their own separators, nothing is inserted between them.
func (m *ComposedMessage) Flatten() string {
	var b strings.Builder
	b.WriteString(m.Header)
	for _, s := range m.Segments {
		b.WriteString(s)
	}
	b.WriteString(m.Footer)
	return b.String()
}

// Batch maps normalized recipient phones to composed messages while
// preserving first-seen order, so delivery order is deterministic.
type Batch struct {
	byKey map[string]*ComposedMessage
	order []string
}

func NewBatch() *Batch {
	return &Batch{byKey: make(map[string]*ComposedMessage)}
}

// Get returns the message for key, or nil if the key is unseen.
func (b *Batch) Get(key string) *ComposedMessage { return b.byKey[key] }

// Put registers a message under key. First put of a key fixes its
// position in the delivery order.
func (b *Batch) Put(key string, m *ComposedMessage) {
	if _, ok := b.byKey[key]; !ok {
		b.order = append(b.order, key)
	}
	b.byKey[key] = m
}

func (b *Batch) Len() int { return len(b.order) }

// Messages returns the composed messages in first-seen order.
func (b *Batch) Messages() []*ComposedMessage {
	out := make([]*ComposedMessage, 0, len(b.order))
	for _, k := range b.order {
		out = append(out, b.byKey[k])
	}
	return out
}
