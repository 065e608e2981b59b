package workflow

// WarningKind classifies a non-blocking signal.
type WarningKind string

const BudgetOverage WarningKind = "BudgetOverage"

type Warning struct {
	Kind    WarningKind `json:"kind"`
	Field   string      `json:"field,omitempty"`
	Message string      `json:"message"`
}

// Result carries warnings raised by a command that still succeeded.
type Result struct {
	Warnings []Warning `json:"warnings"`
}

func (r *Result) Add(w Warning) {
	r.Warnings = append(r.Warnings, w)
}

// Has reports whether a warning of the given kind was raised.
func (r Result) Has(kind WarningKind) bool {
	for _, w := range r.Warnings {
		if w.Kind == kind {
			return true
		}
	}
	return false
}
