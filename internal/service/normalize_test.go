package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeModelOutput(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want any
	}{
		{
			name: "plain JSON array",
			raw:  `[{"type":"expense"}]`,
			want: []any{map[string]any{"type": "expense"}},
		},
		{
			name: "fenced with language tag",
			raw:  "```json\n[{\"type\":\"expense\"}]\n```",
			want: []any{map[string]any{"type": "expense"}},
		},
		{
			name: "fenced without language tag",
			raw:  "```\n[{\"type\":\"income\",\"amount\":12.5}]\n```",
			want: []any{map[string]any{"type": "income", "amount": 12.5}},
		},
		{
			name: "embedded newlines inside the document",
			raw:  "[\n  {\n    \"type\": \"transfer\",\n    \"transfer_to\": \"ZA Bank 6605\"\n  }\n]",
			want: []any{map[string]any{"type": "transfer", "transfer_to": "ZA Bank 6605"}},
		},
		{
			name: "empty array",
			raw:  "```json\n[]\n```",
			want: []any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeModelOutput(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeModelOutputMalformed(t *testing.T) {
	raw := "I'm sorry, I cannot read this image."

	_, err := NormalizeModelOutput(raw)

	var malformedErr *MalformedOutputError
	require.ErrorAs(t, err, &malformedErr)
	assert.Equal(t, raw, malformedErr.Raw)
}
