package service

import (
	"testing"
	"time"

	"billsnap/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedComposer(t *testing.T) *PromptComposer {
	t.Helper()
	instant := time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)
	return &PromptComposer{now: func() time.Time { return instant }}
}

func TestComposeIsDeterministic(t *testing.T) {
	composer := fixedComposer(t)
	categories := []string{"Food", "Transport"}
	accounts := []dto.AccountEntry{{Name: "Cash", Currency: "USD"}}

	first, err := composer.Compose(ModeRecord, categories, accounts, "prefer short notes")
	require.NoError(t, err)
	second, err := composer.Compose(ModeRecord, categories, accounts, "prefer short notes")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestComposeRendersVocabulary(t *testing.T) {
	composer := fixedComposer(t)

	prompt, err := composer.Compose(ModeRecord,
		[]string{"Food", "Transport"},
		[]dto.AccountEntry{
			{Name: "Cash", Currency: "USD"},
			{Name: "ZA Bank 6605", Currency: "HKD", Note: "salary account"},
		},
		"")
	require.NoError(t, err)

	assert.Contains(t, prompt, "Categories: Food, Transport")
	assert.Contains(t, prompt, "Accounts: Cash (USD), ZA Bank 6605 (HKD), Note: salary account")
	assert.Contains(t, prompt, "Today is 2025-03-14, current time is 09:26")
	// The schema description embeds the same instant as the fallback values,
	// truncated to the minute.
	assert.Contains(t, prompt, "if not detected, use 2025-03-14")
	assert.Contains(t, prompt, "if not detected, use 09:26")
	assert.NotContains(t, prompt, "09:26:53")
	assert.NotContains(t, prompt, "Additional Instructions")
}

func TestComposeAppendsCustomPrompt(t *testing.T) {
	composer := fixedComposer(t)

	prompt, err := composer.Compose(ModeRecord,
		[]string{"Food"},
		[]dto.AccountEntry{{Name: "Cash", Currency: "USD"}},
		"All receipts are from Hong Kong.")
	require.NoError(t, err)

	assert.Contains(t, prompt, "Additional Instructions: All receipts are from Hong Kong.")
}

func TestComposeUnknownMode(t *testing.T) {
	composer := fixedComposer(t)

	_, err := composer.Compose("summarize", []string{"Food"}, nil, "")

	require.ErrorIs(t, err, ErrUnknownMode)
}
