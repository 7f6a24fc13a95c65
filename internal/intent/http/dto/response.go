package dto

import "encoding/json"

// BuildIntentResponse carries the canonical intent serialization. The intent
// document is returned as-is so its canonical byte shape is preserved.
type BuildIntentResponse struct {
	Intent json.RawMessage `json:"intent"`
}
