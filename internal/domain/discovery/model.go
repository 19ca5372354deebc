package discovery

// Candidate is a team surfaced in the discovery feed. A mutual like
// later appears as a MATCHED record in the pending bucket; this package
// only models the browse side.
type Candidate struct {
	TeamID     string
	Name       string
	LogoURL    string
	Level      string
	City       string
	DistanceKm float64
	Bio        string
}
