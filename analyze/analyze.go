// Package analyze explains a solved chain: which word collected which of
// the required sounds.
package analyze

import (
	"github.com/google/uuid"

	"shiritori/kana"
	"shiritori/model"
	"shiritori/solver"
)

// Step is one word of the chain.
type Step struct {
	Surface     string   `json:"surface"`
	Reading     string   `json:"reading"`
	Contributed []string `json:"contributed,omitempty"`
}

// Analysis is the report written for a solve.
type Analysis struct {
	ID       string     `json:"id"`
	Start    string     `json:"start"`
	Target   string     `json:"target"`
	Required []string   `json:"required"`
	Supplied []string   `json:"supplied_by_start,omitempty"`
	Found    bool       `json:"found"`
	Valid    bool       `json:"valid"`
	Cost     model.Cost `json:"cost"`
	Steps    []Step     `json:"steps,omitempty"`
	Missing  []string   `json:"missing,omitempty"`
}

// Analyze builds the report for res.
func Analyze(start *model.Word, target string, res solver.Result) Analysis {
	all := kana.ToBitset(kana.NormalizeReading(target))
	need := solver.TargetBits(start, target)
	a := Analysis{
		ID:       uuid.New().String(),
		Start:    start.String(),
		Target:   target,
		Required: kana.BitsToKana(need),
		Supplied: kana.BitsToKana(all & start.Bits),
		Found:    res.Found(),
	}
	if !res.Found() {
		a.Missing = a.Required
		return a
	}

	a.Cost = res.Cost
	a.Valid = true
	var covered uint64
	for i, w := range res.Path {
		if i > 0 && res.Path[i-1].Last != w.First {
			a.Valid = false
		}
		var gained uint64
		if i > 0 {
			gained = need & w.Bits &^ covered
			covered |= gained
		}
		a.Steps = append(a.Steps, Step{
			Surface:     w.Surface,
			Reading:     w.Reading,
			Contributed: kana.BitsToKana(gained),
		})
	}
	if last := res.Path[len(res.Path)-1]; last.Last != start.First {
		a.Valid = false
	}
	if missing := need &^ covered; missing != 0 {
		a.Valid = false
		a.Missing = kana.BitsToKana(missing)
	}
	return a
}
