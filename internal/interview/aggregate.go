package interview

import (
	"math"

	"github.com/jonathan/interview-coach/internal/types"
)

// starPointsPerComponent is the weight of each structuredness flag.
const starPointsPerComponent = 25

// aggregateScores holds the recomputed session-level scores.
type aggregateScores struct {
	Overall       int
	Technical     *int
	Communication *int
	Star          *int
	ScoredCount   int
}

// computeAggregates derives session-level scores from per-question results.
// Questions without a score are excluded from every mean. Returns false
// when no question has been scored.
func computeAggregates(questions []types.Question) (aggregateScores, bool) {
	var scores, technical, communication, star []int

	for _, q := range questions {
		if q.Score == nil {
			continue
		}
		scores = append(scores, *q.Score)

		// Sub-fields fall back to the question's own score when the
		// evaluation does not carry them.
		techScore, commScore := *q.Score, *q.Score
		if q.Evaluation != nil {
			if q.Evaluation.TechnicalScore != nil {
				techScore = *q.Evaluation.TechnicalScore
			}
			if q.Evaluation.CommunicationScore != nil {
				commScore = *q.Evaluation.CommunicationScore
			}
			star = append(star, q.Evaluation.Star.Count()*starPointsPerComponent)
		}
		technical = append(technical, techScore)
		communication = append(communication, commScore)
	}

	if len(scores) == 0 {
		return aggregateScores{}, false
	}

	agg := aggregateScores{
		Overall:     roundedMean(scores),
		ScoredCount: len(scores),
	}
	if len(technical) > 0 {
		v := roundedMean(technical)
		agg.Technical = &v
	}
	if len(communication) > 0 {
		v := roundedMean(communication)
		agg.Communication = &v
	}
	if len(star) > 0 {
		v := roundedMean(star)
		agg.Star = &v
	}
	return agg, true
}

func roundedMean(values []int) int {
	sum := 0
	for _, v := range values {
		sum += v
	}
	return int(math.Round(float64(sum) / float64(len(values))))
}
