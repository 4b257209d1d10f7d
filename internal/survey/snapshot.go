package survey

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Snapshot is a frozen copy of an answer store, ordered by the catalog.
// Only answered questions are present.
type Snapshot struct {
	ids     []string
	answers map[string]Answer
}

func newSnapshot(order []string, answers map[string]Answer) Snapshot {
	s := Snapshot{answers: make(map[string]Answer, len(answers))}
	for _, id := range order {
		if a, ok := answers[id]; ok {
			s.ids = append(s.ids, id)
			s.answers[id] = a
		}
	}
	return s
}

// Get returns the answer for id
func (s Snapshot) Get(id string) (Answer, bool) {
	a, ok := s.answers[id]
	return a, ok
}

// Len returns the number of answered questions
func (s Snapshot) Len() int { return len(s.ids) }

// IDs returns the answered ids in catalog order
func (s Snapshot) IDs() []string { return append([]string(nil), s.ids...) }

// Values returns a fresh id → plain value map
func (s Snapshot) Values() map[string]any {
	out := make(map[string]any, len(s.ids))
	for _, id := range s.ids {
		out[id] = s.answers[id].Value()
	}
	return out
}

// Entry is one answered question with its kind, the form the archive keeps
type Entry struct {
	ID    string  `json:"id" yaml:"id"`
	Kind  KindTag `json:"kind" yaml:"kind"`
	Value any     `json:"value" yaml:"value"`
}

// Entries returns the answers as kind-tagged entries in order
func (s Snapshot) Entries() []Entry {
	entries := make([]Entry, len(s.ids))
	for i, id := range s.ids {
		a := s.answers[id]
		entries[i] = Entry{ID: id, Kind: a.tag, Value: a.Value()}
	}
	return entries
}

// RestoreSnapshot rebuilds a snapshot from entries, e.g. read back from the archive
func RestoreSnapshot(entries []Entry) (Snapshot, error) {
	s := Snapshot{answers: make(map[string]Answer, len(entries))}
	for _, e := range entries {
		a, ok := AnswerFromValue(e.Kind, e.Value)
		if !ok {
			return Snapshot{}, fmt.Errorf("entry %q: %v is not a valid %s value", e.ID, e.Value, e.Kind)
		}
		if _, dup := s.answers[e.ID]; dup {
			return Snapshot{}, fmt.Errorf("entry %q appears twice", e.ID)
		}
		s.ids = append(s.ids, e.ID)
		s.answers[e.ID] = a
	}
	return s, nil
}

// MarshalJSON writes a flat object keeping catalog order
func (s Snapshot) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, id := range s.ids {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(id)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(s.answers[id].Value())
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalYAML writes a flat mapping keeping catalog order
func (s Snapshot) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, id := range s.ids {
		var key, val yaml.Node
		if err := key.Encode(id); err != nil {
			return nil, err
		}
		if err := val.Encode(s.answers[id].Value()); err != nil {
			return nil, err
		}
		node.Content = append(node.Content, &key, &val)
	}
	return node, nil
}
