package scraper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractKeywordsWordBoundaries(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "Go does not fire inside Google",
			text: "We use Google Analytics heavily",
			want: nil,
		},
		{
			name: "Go fires as a standalone word",
			text: "Backend services written in Go and Rust",
			want: []string{"Go", "Rust"},
		},
		{
			name: "case insensitive",
			text: "experience with PYTHON and docker required",
			want: []string{"Python", "Docker"},
		},
		{
			name: "multi word terms",
			text: "strong machine learning background, ci/cd pipelines",
			want: []string{"Machine Learning", "CI/CD"},
		},
		{
			name: "empty text",
			text: "",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DefaultVocabulary.ExtractKeywords(tt.text)
			assert.Equal(t, tt.want, got)
		})
	}
}
