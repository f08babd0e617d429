package service

import (
	"encoding/json"
	"strings"
)

// fenceStripper removes markdown code-fence markers (with or without a
// language tag) and embedded newlines. Models routinely wrap JSON replies in
// fences even when told not to, and literal newlines inside the fence break
// naive parsing. Longer markers are listed first so "```json" is not left as
// a dangling "json".
var fenceStripper = strings.NewReplacer(
	"```json", "",
	"```", "",
	"\r", "",
	"\n", "",
)

// NormalizeModelOutput strips formatting artifacts from a model's text reply
// and parses the remainder as JSON. The parsed value is returned untyped:
// "is this valid JSON" is the only validation performed here, and downstream
// consumers treat every field of every record as untrusted.
func NormalizeModelOutput(raw string) (any, error) {
	cleaned := strings.TrimSpace(fenceStripper.Replace(raw))

	var parsed any
	if err := json.Unmarshal([]byte(cleaned), &parsed); err != nil {
		return nil, &MalformedOutputError{Raw: raw, Err: err}
	}

	return parsed, nil
}
