package simple

// LabelValue pairs a canonical machine token with its display label.
// Value is what round-trips back into a tree; Label is what the UI shows.
type LabelValue struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Condition is one normalized test of the filter: which message field it
// examines, how it matches, and the values it matches against.
type Condition struct {
	Type       LabelValue `json:"Type"`
	Comparator LabelValue `json:"Comparator"`
	Values     []string   `json:"Values"`
}

// Mark describes the IMAP flags the filter sets on a message.
type Mark struct {
	Read    bool `json:"Read"`
	Starred bool `json:"Starred"`
}

// Actions is the fixed-shape aggregate of everything the filter does.
// An empty Vacation means the script has no vacation action.
type Actions struct {
	FileInto []string `json:"FileInto"`
	Mark     Mark     `json:"Mark"`
	Vacation string   `json:"Vacation,omitempty"`
}

// Filter is the complete simplified model of one script.
type Filter struct {
	Operator   LabelValue  `json:"Operator"`
	Conditions []Condition `json:"Conditions"`
	Actions    Actions     `json:"Actions"`
}
