package checker

// Rules is a marker Checker for rules-typed policies. It is never consulted
// for matching: Policy.Fits dispatches rules-typed fields straight to the
// rule algebra. It exists so storages can branch on Kind() to pre-filter
// candidates as an optional optimization.
type Rules struct{}

func (Rules) Fits(_, _, _, _ string) bool { return false }
func (Rules) Kind() Kind                  { return KindRules }
