package entities

import "sort"

// MessageTable maps flat keys to raw message text. It is built once per load
// and never modified afterwards, so it can be shared between readers freely.
type MessageTable struct {
	language string
	entries  map[FlatKey]string
}

// NewMessageTable copies entries into a new table for language.
func NewMessageTable(language string, entries map[FlatKey]string) *MessageTable {
	m := make(map[FlatKey]string, len(entries))
	for k, v := range entries {
		m[k] = v
	}
	return &MessageTable{language: language, entries: m}
}

// EmptyTable is what callers get when nothing could be loaded.
func EmptyTable(language string) *MessageTable {
	return &MessageTable{language: language, entries: map[FlatKey]string{}}
}

func (t *MessageTable) Get(key FlatKey) (string, bool) {
	if t == nil {
		return "", false
	}
	v, ok := t.entries[key]
	return v, ok
}

func (t *MessageTable) Len() int {
	if t == nil {
		return 0
	}
	return len(t.entries)
}

func (t *MessageTable) Language() string {
	if t == nil {
		return ""
	}
	return t.language
}

// Keys returns the keys in lexical order.
func (t *MessageTable) Keys() []FlatKey {
	if t == nil {
		return nil
	}
	keys := make([]FlatKey, 0, len(t.entries))
	for k := range t.entries {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}
