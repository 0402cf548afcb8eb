package store

import (
	"regexp"
	"strings"
)

// A hashtag token is "#" plus one or more token characters, and only counts
// as a tag when preceded by start-of-string or whitespace.
var (
	hashtagToken = regexp.MustCompile(`(^|\s)#[A-Za-z0-9_-]+`)
	nonTagChars  = regexp.MustCompile(`[^a-z0-9_-]+`)
)

// NormalizeTag lowercases raw, strips a leading "#", collapses internal
// whitespace to hyphens, and drops characters outside the token class.
// The result may be empty.
func NormalizeTag(raw string) string {
	tag := strings.ToLower(strings.TrimSpace(raw))
	tag = strings.TrimPrefix(tag, "#")
	tag = whitespaceRun.ReplaceAllString(tag, "-")
	return nonTagChars.ReplaceAllString(tag, "")
}

// ExtractTags removes hashtag tokens from text and returns the remaining
// title text plus the extracted tags, deduplicated in first-seen order.
func ExtractTags(text string) (string, []string) {
	tags := []string{}
	seen := make(map[string]bool)
	title := hashtagToken.ReplaceAllStringFunc(text, func(match string) string {
		i := strings.Index(match, "#")
		tag := NormalizeTag(match[i:])
		if tag != "" && !seen[tag] {
			seen[tag] = true
			tags = append(tags, tag)
		}
		// Keep the leading whitespace so adjacent words don't fuse.
		return match[:i]
	})
	return NormalizeName(title), tags
}

// NormalizeTags runs every entry through NormalizeTag and deduplicates,
// preserving first-seen order and dropping entries that normalize to empty.
func NormalizeTags(raw []string) []string {
	tags := []string{}
	seen := make(map[string]bool)
	for _, r := range raw {
		tag := NormalizeTag(r)
		if tag == "" || seen[tag] {
			continue
		}
		seen[tag] = true
		tags = append(tags, tag)
	}
	return tags
}

// ParseTemplateCommand recognizes a "/name rest-of-text" quick-add command.
// The slash token must start at position 0; the remainder after the first
// whitespace run is the task's literal title text.
func ParseTemplateCommand(text string) (name, rest string, ok bool) {
	if !strings.HasPrefix(text, "/") {
		return "", "", false
	}
	body := text[1:]
	if body == "" || body[0] == ' ' || body[0] == '\t' {
		return "", "", false
	}
	if i := strings.IndexFunc(body, func(r rune) bool { return r == ' ' || r == '\t' || r == '\n' || r == '\r' }); i >= 0 {
		return body[:i], strings.TrimSpace(body[i:]), true
	}
	return body, "", true
}
