package quotation

import "errors"

// TermKind distinguishes preset terms from user-defined ones.
type TermKind string

const (
	TermKindPredefined TermKind = "predefined"
	TermKindCustom     TermKind = "custom"
)

// PaymentTerm is a named percentage share of a quotation's total tied to a
// payment milestone.
type PaymentTerm struct {
	ID          string   `json:"id"`
	Kind        TermKind `json:"kind"`
	Description string   `json:"description"`
	Percentage  float64  `json:"percentage"`
	Conditions  string   `json:"conditions,omitempty"`
}

// ErrTermsNotSettled is returned when attached payment terms do not sum to
// exactly 100 percent.
var ErrTermsNotSettled = errors.New("payment terms must sum to 100%")

// ValidateTerms reports whether the terms sum to exactly 100. An empty set
// does not validate: sum 0 is not 100.
func ValidateTerms(terms []PaymentTerm) bool {
	var sum float64
	for _, t := range terms {
		sum += t.Percentage
	}
	return sum == 100
}

// Milestone is a payment term resolved against a quotation total.
type Milestone struct {
	ID          string  `json:"id"`
	Description string  `json:"description"`
	Percentage  float64 `json:"percentage"`
	Amount      float64 `json:"amount"`
}

// Milestones converts terms into concrete amounts against total.
func Milestones(terms []PaymentTerm, total float64) []Milestone {
	out := make([]Milestone, len(terms))
	for i, t := range terms {
		out[i] = Milestone{
			ID:          t.ID,
			Description: t.Description,
			Percentage:  t.Percentage,
			Amount:      total * t.Percentage / 100,
		}
	}
	return out
}

// Preset is a commonly used payment schedule offered to the user.
type Preset struct {
	ID    string        `json:"id"`
	Label string        `json:"label"`
	Terms []PaymentTerm `json:"terms"`
}

// Presets returns the built-in payment schedules.
func Presets() []Preset {
	return []Preset{
		{
			ID:    "fifty-fifty",
			Label: "50% Advance, 50% on Delivery",
			Terms: []PaymentTerm{
				{Kind: TermKindPredefined, Description: "Advance Payment", Percentage: 50},
				{Kind: TermKindPredefined, Description: "On Delivery", Percentage: 50},
			},
		},
		{
			ID:    "thirty-seventy",
			Label: "30% Advance, 70% Post-Delivery",
			Terms: []PaymentTerm{
				{Kind: TermKindPredefined, Description: "Advance Payment", Percentage: 30},
				{Kind: TermKindPredefined, Description: "Post-Delivery", Percentage: 70},
			},
		},
		{
			ID:    "net-30",
			Label: "Net 30 (Full payment after 30 days)",
			Terms: []PaymentTerm{
				{Kind: TermKindPredefined, Description: "Net 30", Percentage: 100},
			},
		},
		{
			ID:    "net-60",
			Label: "Net 60 (Full payment after 60 days)",
			Terms: []PaymentTerm{
				{Kind: TermKindPredefined, Description: "Net 60", Percentage: 100},
			},
		},
	}
}
