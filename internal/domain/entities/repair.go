package entities

// RepairReport describes one pass of the job key repair.
type RepairReport struct {
	DryRun      bool     `json:"dryRun"`
	Scanned     int      `json:"scanned"`
	Canonical   int      `json:"canonical"`
	Moved       int      `json:"moved"`
	MovedLegacy int      `json:"movedLegacy"`
	Dropped     int      `json:"dropped"`
	Duplicates  int      `json:"duplicates"`
	ListSize    int      `json:"listSize"`
	Moves       []string `json:"moves,omitempty"`
}
