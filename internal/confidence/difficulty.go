package confidence

// Difficulty is a question difficulty tier
type Difficulty string

// Difficulty tiers, from easiest to hardest
const (
	Basic  Difficulty = "basic"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"
)

// SelectDifficulty chooses a difficulty tier from a candidate's historical
// confidence scores. Candidates with no history start at basic. The
// selection happens once per session start and is fixed for the session.
func SelectDifficulty(history []int) Difficulty {
	if len(history) == 0 {
		return Basic
	}

	sum := 0
	for _, score := range history {
		sum += score
	}
	mean := float64(sum) / float64(len(history))

	switch {
	case mean >= 75:
		return Hard
	case mean >= 60:
		return Medium
	default:
		return Basic
	}
}
