package models

// Setting is one key/value configuration row. Type governs how Value is
// coerced when settings are read ("string", "boolean" or "number").
type Setting struct {
	Key         string `json:"key"`
	Value       string `json:"value"`
	Type        string `json:"type"`
	Description string `json:"description"`
	Updated     string `json:"updated"`
}
