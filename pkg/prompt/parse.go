package prompt

import (
	"encoding/json"
	"fmt"
	"strings"
)

var (
	yesTokens = []string{"1", "true", "t", "yes", "y", "on"}
	noTokens  = []string{"0", "false", "f", "no", "n", "off"}
)

// ParseYesNo converts an operator answer into a boolean. Accepted
// spellings, case-insensitive: 1/true/t/yes/y/on and 0/false/f/no/n/off.
// Anything else wraps ErrInvalidResponse.
func ParseYesNo(answer string) (bool, error) {
	token := strings.ToLower(strings.TrimSpace(answer))
	for _, t := range yesTokens {
		if token == t {
			return true, nil
		}
	}
	for _, t := range noTokens {
		if token == t {
			return false, nil
		}
	}
	return false, fmt.Errorf("%w: please answer yes or no", ErrInvalidResponse)
}

// FormatYesNo renders a boolean the way the yes/no prompt displays its
// default.
func FormatYesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}

// ParseJSONObject decodes an operator answer as a JSON object. Non-object
// JSON and parse failures wrap ErrInvalidResponse so the prompt loop
// re-asks.
func ParseJSONObject(answer string) (map[string]any, error) {
	var decoded any
	if err := json.Unmarshal([]byte(answer), &decoded); err != nil {
		return nil, fmt.Errorf("%w: unable to decode to JSON", ErrInvalidResponse)
	}
	obj, ok := decoded.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: requires JSON dict", ErrInvalidResponse)
	}
	return obj, nil
}
