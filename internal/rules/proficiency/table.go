// Package proficiency implements the gem proficiency model: per-gem-key
// success history that drives a decaying failure probability.
package proficiency

import (
	"github.com/KirkDiggler/gem-battle/internal/entities"
)

const (
	// FullProficiencyThreshold is the success count at which a gem key
	// stops failing for good
	FullProficiencyThreshold = 20

	// baseFailureChance is the failure chance of a never-used gem
	baseFailureChance = 0.45
)

// Table tracks success history for one class. Proficiency never regresses:
// failures are recorded but do not decrement the count, and the failure
// chance is floored at 0 once the threshold is reached.
type Table struct {
	class   string
	records map[string]*entities.ProficiencyRecord
}

// Reconcile builds a fully-populated table from loaded records. The four
// basic gem keys and the class signature gem are guaranteed present; any
// that were missing from the loaded data are synthesized at full
// proficiency. Failure chances are recomputed from the counts, so stale
// persisted chances cannot leak in.
func Reconcile(class string, loaded entities.ProficiencyRecords) *Table {
	t := &Table{
		class:   class,
		records: make(map[string]*entities.ProficiencyRecord, len(loaded)+5),
	}

	for key, rec := range loaded {
		t.records[key] = &entities.ProficiencyRecord{
			GemKey:        key,
			SuccessCount:  rec.SuccessCount,
			FailureChance: chanceFor(rec.SuccessCount),
		}
	}

	guaranteed := entities.BasicGemKeys()
	if sig := entities.SignatureGem(class); sig != "" {
		guaranteed = append(guaranteed, sig)
	}
	for _, key := range guaranteed {
		if _, ok := t.records[key]; !ok {
			t.records[key] = &entities.ProficiencyRecord{
				GemKey:        key,
				SuccessCount:  FullProficiencyThreshold,
				FailureChance: 0,
			}
		}
	}

	return t
}

// chanceFor maps a success count to a failure chance. Linear decay from
// baseFailureChance to 0 at the threshold; never negative.
func chanceFor(count int32) float64 {
	if count >= FullProficiencyThreshold {
		return 0
	}
	if count < 0 {
		count = 0
	}
	return baseFailureChance * float64(FullProficiencyThreshold-count) / FullProficiencyThreshold
}

// FailureChance returns the probability in [0,1] that the next use of the
// gem key fails. Unknown keys normalize to full proficiency rather than
// erroring; the catalog reconciliation makes that case unreachable for
// gems the player can actually hold.
func (t *Table) FailureChance(gemKey string) float64 {
	rec, ok := t.records[gemKey]
	if !ok {
		return 0
	}
	return rec.FailureChance
}

// RecordOutcome updates the history for a gem key. Successes increment the
// count and recompute the chance; failures leave the count untouched. An
// unknown key is first synthesized at full proficiency.
func (t *Table) RecordOutcome(gemKey string, succeeded bool) {
	rec, ok := t.records[gemKey]
	if !ok {
		rec = &entities.ProficiencyRecord{
			GemKey:        gemKey,
			SuccessCount:  FullProficiencyThreshold,
			FailureChance: 0,
		}
		t.records[gemKey] = rec
	}

	if !succeeded {
		return
	}

	rec.SuccessCount++
	rec.FailureChance = chanceFor(rec.SuccessCount)
}

// Class returns the class this table belongs to
func (t *Table) Class() string { return t.class }

// Records returns a snapshot of the table for persistence
func (t *Table) Records() entities.ProficiencyRecords {
	out := make(entities.ProficiencyRecords, len(t.records))
	for key, rec := range t.records {
		out[key] = *rec
	}
	return out
}
