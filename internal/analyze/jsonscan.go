package analyze

import (
	"encoding/json"
	"strings"
)

// ExtractJSONObject finds the first well-formed JSON object embedded in
// free text. The reply from the generation capability often wraps the JSON
// in prose, and object values may themselves contain braces inside quoted
// strings, so a greedy brace match is not good enough: instead a decoder is
// restarted at each opening brace until one decodes cleanly.
func ExtractJSONObject(text string) (map[string]interface{}, bool) {
	for i := 0; i < len(text); i++ {
		if text[i] != '{' {
			continue
		}

		dec := json.NewDecoder(strings.NewReader(text[i:]))
		var obj map[string]interface{}
		if err := dec.Decode(&obj); err == nil {
			return obj, true
		}
	}
	return nil, false
}
