package service

import (
	"fmt"
	"strings"
	"time"

	"billsnap/internal/dto"
)

// ModeRecord is the only processing mode: extract income/expense/transfer
// records from a single bill image.
const ModeRecord = "record"

// modePrompts maps a processing mode to its instruction template. Each
// template receives the fallback date (YYYY-MM-DD) and time (HH:MM) the
// model should use when the image does not show them clearly.
var modePrompts = map[string]string{
	ModeRecord: `You will be given an image of expenses; it can contain one or more income/expense items.

Process the image and return the result in JSON format.

The result must be a list of objects, each with the following fields:

type: "expense" | "transfer" | "income" // required, the type of the item, if not detected, use "expense"
amount: number // required, always positive, if not detected, use 0
currency: string // one of the currencies in the accounts list
date: string // required, format: YYYY-MM-DD, if not detected, use %[1]s
time: string // required, format: HH:MM, if not detected, use %[2]s
category: string // one of the categories in the categories list, null for transfers
note: string // optional, short description of the expense or income
warning: string // optional, message for the user if the image is unclear or the data may be wrong; still return the result, like "The image is not clear, result may be wrong"
transfer_to: string // optional, the account name the amount is transferred to, like a deposit or withdrawal; it must be one of the account names in the accounts list

Example:
[
  {
    "type": "expense",
    "amount": 49.9,
    "date": "2025-01-01",
    "time": "10:00",
    "category": "Food",
    "note": "Lunch at KFC",
    "warning": null,
    "transfer_to": null
  },
  {
    "type": "transfer",
    "amount": 100,
    "date": "2025-01-01",
    "time": "21:36",
    "category": null,
    "note": "Deposit to ZA Bank 6605",
    "warning": null,
    "transfer_to": "ZA Bank 6605"
  }
]`,
}

// PromptComposer renders the instruction prompt for a request. It is a pure
// function of its inputs and the clock instant, so two calls with identical
// inputs at the same instant produce byte-identical output.
type PromptComposer struct {
	now func() time.Time
}

func NewPromptComposer() *PromptComposer {
	return &PromptComposer{
		// The original client contract states dates in UTC.
		now: func() time.Time { return time.Now().UTC() },
	}
}

func (c *PromptComposer) Compose(mode string, categories []string, accounts []dto.AccountEntry, customPrompt string) (string, error) {
	tmpl, ok := modePrompts[mode]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownMode, mode)
	}

	now := c.now()
	date := now.Format("2006-01-02")
	clock := now.Format("15:04")

	rendered := make([]string, 0, len(accounts))
	for _, a := range accounts {
		entry := fmt.Sprintf("%s (%s)", a.Name, a.Currency)
		if a.Note != "" {
			entry += ", Note: " + a.Note
		}
		rendered = append(rendered, entry)
	}

	var b strings.Builder
	b.WriteString("You are a helpful assistant that can help me process my expenses.\n\n")
	fmt.Fprintf(&b, tmpl, date, clock)
	b.WriteString("\n\nCategories: ")
	b.WriteString(strings.Join(categories, ", "))
	b.WriteString("\n\nAccounts: ")
	b.WriteString(strings.Join(rendered, ", "))
	fmt.Fprintf(&b, "\n\nToday is %s, current time is %s, please use this time to determine the date and time of the bill if it is not clear.", date, clock)
	if customPrompt != "" {
		b.WriteString("\n\nAdditional Instructions: ")
		b.WriteString(customPrompt)
	}

	return b.String(), nil
}
