package obsidian

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

var (
	whitespaceRun = regexp.MustCompile(`\s+`)
	hyphenRun     = regexp.MustCompile(`-+`)
)

// NormalizeTag makes tag safe for Obsidian: no leading #, whitespace
// becomes hyphens, & becomes "and". Case and / hierarchy are preserved.
// The result may be empty.
func NormalizeTag(tag string) string {
	tag = strings.TrimSpace(tag)
	tag = strings.TrimPrefix(tag, "#")
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return ""
	}

	tag = strings.ReplaceAll(tag, "&", "and")
	tag = strings.ReplaceAll(tag, "#", "")
	tag = whitespaceRun.ReplaceAllString(tag, "-")
	tag = hyphenRun.ReplaceAllString(tag, "-")

	return strings.Trim(tag, "-")
}

// TagSet collects normalized, deduplicated tags.
type TagSet struct {
	tags map[string]bool
}

// NewTagSet creates a new TagSet for collecting tags.
func NewTagSet() *TagSet {
	return &TagSet{
		tags: make(map[string]bool),
	}
}

// Add adds a tag after normalization. Empty tags are dropped.
func (ts *TagSet) Add(tag string) {
	if normalized := NormalizeTag(tag); normalized != "" {
		ts.tags[normalized] = true
	}
}

// AddFormat adds a formatted tag (like fmt.Sprintf).
func (ts *TagSet) AddFormat(format string, args ...any) {
	ts.Add(fmt.Sprintf(format, args...))
}

// GetSorted returns all tags as a sorted slice.
func (ts *TagSet) GetSorted() []string {
	result := make([]string, 0, len(ts.tags))
	for tag := range ts.tags {
		result = append(result, tag)
	}
	sort.Strings(result)
	return result
}

// MergeTags combines two tag lists into one sorted, deduplicated list.
func MergeTags(existing, added []string) []string {
	ts := NewTagSet()
	for _, tag := range existing {
		ts.Add(tag)
	}
	for _, tag := range added {
		ts.Add(tag)
	}
	return ts.GetSorted()
}

// TagsFromAny extracts a string slice from a YAML value, which may be
// []string or []any depending on where it came from.
func TagsFromAny(val any) []string {
	var result []string
	switch v := val.(type) {
	case []string:
		result = make([]string, 0, len(v))
		for _, s := range v {
			if s != "" {
				result = append(result, s)
			}
		}
	case []any:
		result = make([]string, 0, len(v))
		for _, item := range v {
			if str, ok := item.(string); ok && str != "" {
				result = append(result, str)
			}
		}
	default:
		result = []string{}
	}
	return result
}
