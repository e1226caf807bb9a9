package kernel

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"deliverydesk/internal/pkg/errs"
)

// ParseFlag reads a boolean from a loosely typed JSON value.
// It accepts JSON booleans, numbers (non-zero is true) and the strings
// true/1/yes/y and false/0/no/n in any case.
func ParseFlag(raw json.RawMessage) (bool, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return false, errs.NewValueIsRequiredError("flag")
	}

	var value any
	if err := json.Unmarshal(trimmed, &value); err != nil {
		return false, errs.NewValueIsInvalidErrorWithCause("flag", err)
	}

	switch v := value.(type) {
	case bool:
		return v, nil
	case float64:
		return v != 0, nil
	case string:
		return parseFlagString(v)
	}

	return false, errs.NewValueIsInvalidErrorWithCause("flag", fmt.Errorf("unsupported value %s", trimmed))
}

func parseFlagString(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "1", "yes", "y":
		return true, nil
	case "false", "0", "no", "n":
		return false, nil
	}
	return false, errs.NewValueIsInvalidErrorWithCause("flag", fmt.Errorf("%q is not a boolean", s))
}
