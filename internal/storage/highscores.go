package storage

import (
	"github.com/charmbracelet/log"
)

// HighScores is a high-score table keyed by player name.
type HighScores interface {
	LoadHighScores() (map[string]int, error)
	SaveHighScores(scores map[string]int) error
}

// Recorder keeps a history of finished games.
type Recorder interface {
	SaveScore(variant, player string, score int) (int64, error)
}

var (
	_ HighScores = (*Store)(nil)
	_ HighScores = (*BlobFile)(nil)
	_ Recorder   = (*Store)(nil)
)

// LoadOrDefault loads the high scores. When loading fails, or the table is
// empty, it returns {defaultName: 0} and writes that back best-effort. A
// nil store behaves like a failed load without the write.
func LoadOrDefault(h HighScores, defaultName string, logger *log.Logger) map[string]int {
	if h == nil {
		return map[string]int{defaultName: 0}
	}

	scores, err := h.LoadHighScores()
	if err == nil && len(scores) > 0 {
		return scores
	}

	if err != nil && logger != nil {
		logger.Warn("high scores unavailable, using default", "error", err)
	}
	scores = map[string]int{defaultName: 0}
	if err := h.SaveHighScores(scores); err != nil && logger != nil {
		logger.Warn("could not write default high scores", "error", err)
	}
	return scores
}
