package domain

// Source identifiers, one per extractor. The value is what ends up in the
// `source` column of the export and in the JSON payload, so it matches the
// board's display name rather than a slug.
const (
	SourceTimesJobs = "TimesJobs"
	SourceLinkedIn  = "LinkedIn"
	SourceApna      = "Apna.co"
	SourceNaukri    = "Naukri"
)

// Candidate is a raw, partially-populated record exactly as an extractor
// saw it. Any field may be empty; nothing has been validated yet.
type Candidate struct {
	Title       string
	Company     string
	Location    string
	Experience  string
	Salary      string
	Description string
	ApplyURL    string
}

// JobRecord is a fully normalized posting. Once built it is never mutated.
type JobRecord struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Location    string `json:"location"`
	Experience  string `json:"experience"`
	Salary      string `json:"salary"`
	Description string `json:"description,omitempty"`
	ApplyURL    string `json:"apply_url"`
	Source      string `json:"source"`
}
