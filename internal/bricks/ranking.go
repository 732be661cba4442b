package bricks

const rankingSize = 9

// NewRanking create a new ranking
func NewRanking() *Ranking {
	ranking := &Ranking{
		scores: make([]uint64, rankingSize),
	}

	return ranking
}

// InsertScore inserts a score into the rankings and returns its place, -1 when it did not rank
func (ranking *Ranking) InsertScore(newScore uint64) int {
	ranking.mu.Lock()
	defer ranking.mu.Unlock()

	for index, score := range ranking.scores {
		if newScore > score {
			ranking.slideScores(index)
			ranking.scores[index] = newScore
			return index
		}
	}
	return -1
}

// Scores returns a copy of the scores, best first
func (ranking *Ranking) Scores() []uint64 {
	ranking.mu.Lock()
	defer ranking.mu.Unlock()

	scores := make([]uint64, len(ranking.scores))
	copy(scores, ranking.scores)
	return scores
}

// Best returns the best score
func (ranking *Ranking) Best() uint64 {
	ranking.mu.Lock()
	defer ranking.mu.Unlock()
	return ranking.scores[0]
}

// slideScores slides the scores down to make room for a new score
func (ranking *Ranking) slideScores(index int) {
	for i := len(ranking.scores) - 1; i > index; i-- {
		ranking.scores[i] = ranking.scores[i-1]
	}
}
