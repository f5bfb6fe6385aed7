package content

import (
	"bytes"
	"fmt"

	"github.com/goccy/go-json"
)

// text is a document field that accepts any JSON scalar and keeps it as a
// string. Numbers keep their literal spelling, booleans become "true" or
// "false", and null becomes "".
type text string

func (t *text) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case len(data) == 0 || bytes.Equal(data, []byte("null")):
		*t = ""
	case data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*t = text(s)
	case data[0] == '{' || data[0] == '[':
		return fmt.Errorf("expected a scalar, got %s", data[:1])
	default:
		*t = text(data)
	}
	return nil
}

// texts converts a tag list, dropping nulls.
func texts(in []text) []string {
	var out []string
	for _, t := range in {
		if t != "" {
			out = append(out, string(t))
		}
	}
	return out
}
