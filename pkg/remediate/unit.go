package remediate

// Unit is one source-text item submitted for remediation, identified by
// program/include metadata. OriginalCode may be empty.
type Unit struct {
	PgmName             string  `json:"pgm_name"`
	IncName             string  `json:"inc_name"`
	Type                string  `json:"type"`
	Name                *string `json:"name,omitempty"`
	ClassImplementation *string `json:"class_implementation,omitempty"`
	OriginalCode        string  `json:"original_code"`
}

// Result is the remediated sibling of a Unit. Issues are always computed;
// the transport layer decides whether to attach them to the response.
type Result struct {
	Unit
	RemediatedCode string  `json:"remediated_code"`
	Issues         []Issue `json:"mb_txn_usage,omitempty"`
}

// RemediateUnit derives a Result from a Unit without mutating the input.
func (e *Engine) RemediateUnit(u Unit) Result {
	remediated, issues := e.Remediate(u.OriginalCode)
	return Result{
		Unit:           u,
		RemediatedCode: remediated,
		Issues:         issues,
	}
}
