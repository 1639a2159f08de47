package entities

// ProficiencyRecord tracks historical use of one gem key for one class.
// SuccessCount only ever grows; FailureChance is derived from it and is 0
// once the full-proficiency threshold is reached.
type ProficiencyRecord struct {
	GemKey        string
	SuccessCount  int32
	FailureChance float64
}

// ProficiencyRecords maps gem key to its record for one class
type ProficiencyRecords map[string]ProficiencyRecord
