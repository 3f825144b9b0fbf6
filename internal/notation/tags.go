package notation

import (
	"sort"
	"strings"
)

// Tag names used when reading and writing games.
const (
	EventTag       = "Event"
	SiteTag        = "Site"
	DateTag        = "Date"
	RoundTag       = "Round"
	WhiteTag       = "White"
	BlackTag       = "Black"
	ResultTag      = "Result"
	FENTag         = "FEN"
	SetupTag       = "SetUp"
	PlyCountTag    = "PlyCount"
	TerminationTag = "Termination"
)

// SevenTagRoster contains the seven required PGN tags in order.
var SevenTagRoster = []string{
	EventTag,
	SiteTag,
	DateTag,
	RoundTag,
	WhiteTag,
	BlackTag,
	ResultTag,
}

// rosterDefaults are written when a roster tag has no value.
var rosterDefaults = map[string]string{
	DateTag:   "????.??.??",
	ResultTag: "*",
}

// IsSevenTagRosterTag returns true if the tag is one of the seven required tags.
func IsSevenTagRosterTag(tag string) bool {
	for _, t := range SevenTagRoster {
		if t == tag {
			return true
		}
	}
	return false
}

// Tags holds PGN tag pairs by name.
type Tags map[string]string

// TagPair is a single tag name and value.
type TagPair struct {
	Name  string
	Value string
}

// Get returns the tag value or "" when absent.
func (t Tags) Get(name string) string {
	return t[name]
}

// Clone returns an independent copy.
func (t Tags) Clone() Tags {
	out := make(Tags, len(t))
	for k, v := range t {
		out[k] = v
	}
	return out
}

// Ordered returns the tags in export order: the full Seven Tag Roster
// first, with "?" (or the PGN default) for missing values, then the
// remaining tags alphabetically.
func (t Tags) Ordered() []TagPair {
	pairs := make([]TagPair, 0, len(SevenTagRoster)+len(t))
	for _, name := range SevenTagRoster {
		value := t[name]
		if value == "" {
			value = rosterDefaults[name]
		}
		if value == "" {
			value = "?"
		}
		pairs = append(pairs, TagPair{Name: name, Value: value})
	}

	var extra []string
	for name := range t {
		if !IsSevenTagRosterTag(name) {
			extra = append(extra, name)
		}
	}
	sort.Strings(extra)
	for _, name := range extra {
		pairs = append(pairs, TagPair{Name: name, Value: t[name]})
	}
	return pairs
}

// EscapeTagValue escapes special characters in tag values.
func EscapeTagValue(s string) string {
	// Fast path: if no escaping needed, return original string
	if !strings.ContainsAny(s, "\\\"") {
		return s
	}
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "\"", "\\\"")
	return s
}
