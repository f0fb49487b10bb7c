package entities

import "strings"

// RootSection is the section every message lives under.
const RootSection = "messages"

// FlatKey is the dotted path of one message: "messages.<category>.<name>".
type FlatKey string

func NewFlatKey(category, name string) FlatKey {
	return FlatKey(RootSection + "." + category + "." + name)
}

// Split returns the category and name of k. ok is false when k is not exactly
// two levels under the messages section. Keys built from names containing
// dots are ambiguous and also report false.
func (k FlatKey) Split() (category, name string, ok bool) {
	rest, found := strings.CutPrefix(string(k), RootSection+".")
	if !found {
		return "", "", false
	}
	category, name, found = strings.Cut(rest, ".")
	if !found || category == "" || name == "" || strings.Contains(name, ".") {
		return "", "", false
	}
	return category, name, true
}

func (k FlatKey) String() string {
	return string(k)
}
