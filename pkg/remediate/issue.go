package remediate

// Issue is the audit record for one performed rewrite. Field names follow
// the wire shape consumed by downstream remediation tooling; UsedFields and
// SuggestedFields are reserved for future field-level analysis and are
// always empty and null respectively today.
type Issue struct {
	Table              string   `json:"table"`
	TargetType         string   `json:"target_type"`
	TargetName         string   `json:"target_name"`
	UsedFields         []string `json:"used_fields"`
	Ambiguous          bool     `json:"ambiguous"`
	SuggestedStatement string   `json:"suggested_statement"`
	SuggestedFields    []string `json:"suggested_fields"`
	Snippet            string   `json:"snippet"`
	Note               string   `json:"note,omitempty"`
}
