package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractTags(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantTitle string
		wantTags  []string
	}{
		{
			name:      "dedupes repeated tags",
			input:     "Ship release #urgent #urgent",
			wantTitle: "Ship release",
			wantTags:  []string{"urgent"},
		},
		{
			name:      "first seen order",
			input:     "#b fix the #a build #b",
			wantTitle: "fix the build",
			wantTags:  []string{"b", "a"},
		},
		{
			name:      "hash inside a word is not a tag",
			input:     "issue#42 needs triage",
			wantTitle: "issue#42 needs triage",
			wantTags:  []string{},
		},
		{
			name:      "adjacent hashtags only consume the first",
			input:     "deploy #prod#eu",
			wantTitle: "deploy #eu",
			wantTags:  []string{"prod"},
		},
		{
			name:      "mixed case lowercased",
			input:     "Review PR #Urgent #WIP-2",
			wantTitle: "Review PR",
			wantTags:  []string{"urgent", "wip-2"},
		},
		{
			name:      "no tags",
			input:     "plain title",
			wantTitle: "plain title",
			wantTags:  []string{},
		},
		{
			name:      "tags only leaves empty title",
			input:     "#one #two",
			wantTitle: "",
			wantTags:  []string{"one", "two"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			title, tags := ExtractTags(tt.input)
			assert.Equal(t, tt.wantTitle, title)
			assert.Equal(t, tt.wantTags, tags)
		})
	}
}

func TestNormalizeTag(t *testing.T) {
	assert.Equal(t, "urgent", NormalizeTag("#Urgent"))
	assert.Equal(t, "two-words", NormalizeTag("two   words"))
	assert.Equal(t, "semi_colon", NormalizeTag("semi;_colon!"))
	assert.Equal(t, "", NormalizeTag("###"))
	assert.Equal(t, "", NormalizeTag("  "))
}

func TestNormalizeTagsDedupes(t *testing.T) {
	got := NormalizeTags([]string{"#Home", "home", "", "!!", "Work"})
	assert.Equal(t, []string{"home", "work"}, got)
}

func TestParseTemplateCommand(t *testing.T) {
	name, rest, ok := ParseTemplateCommand("/bug Crash on save")
	assert.True(t, ok)
	assert.Equal(t, "bug", name)
	assert.Equal(t, "Crash on save", rest)

	name, rest, ok = ParseTemplateCommand("/standup")
	assert.True(t, ok)
	assert.Equal(t, "standup", name)
	assert.Equal(t, "", rest)

	// Only position 0 counts as a command.
	_, _, ok = ParseTemplateCommand("deploy /prod now")
	assert.False(t, ok)

	_, _, ok = ParseTemplateCommand("/ nothing")
	assert.False(t, ok)

	_, _, ok = ParseTemplateCommand("no slash")
	assert.False(t, ok)
}
