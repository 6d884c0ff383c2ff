package xgo

import "encoding/json"

// ToJSON renders v for log lines; errors are folded into the output.
func ToJSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return "<json error: " + err.Error() + ">"
	}
	return string(b)
}
