package apperror

import "encoding/json"

// rawJSON keeps upstream bodies as embedded JSON when they parse, and as a
// plain string otherwise (HTML error pages, truncated bodies).
func rawJSON(raw []byte) any {
	if json.Valid(raw) {
		return json.RawMessage(raw)
	}
	return string(raw)
}
