package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Stats is the persisted record of one process run. It records play
// statistics, never simulation state.
type Stats struct {
	UUID        string    `json:"uuid"`
	StartTime   time.Time `json:"start_time"`
	EndTime     time.Time `json:"end_time"`
	GamesPlayed int       `json:"games_played"`
	BestScore   int       `json:"best_score"`
	TotalScore  int       `json:"total_score"`
}

// Session tracks scores across restarts within one process run and
// persists them under the data directory on Save.
type Session struct {
	dir       string
	stats     Stats
	highScore int
}

const highScoreFile = "highscore"

// New creates a session with a fresh identity and loads the existing
// all-time high score, if any.
func New(dir string) *Session {
	s := &Session{
		dir: dir,
		stats: Stats{
			UUID:      uuid.New().String(),
			StartTime: time.Now(),
		},
	}
	s.highScore = s.loadHighScore()
	return s
}

// RecordGame folds one finished game's score into the session
func (s *Session) RecordGame(score int) {
	s.stats.GamesPlayed++
	s.stats.TotalScore += score
	if score > s.stats.BestScore {
		s.stats.BestScore = score
	}
	if score > s.highScore {
		s.highScore = score
	}
}

// HighScore returns the all-time high score, including this session
func (s *Session) HighScore() int {
	return s.highScore
}

// GamesPlayed returns the number of finished games this session
func (s *Session) GamesPlayed() int {
	return s.stats.GamesPlayed
}

// Save writes the session stats JSON and the high score file
func (s *Session) Save() error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	s.stats.EndTime = time.Now()
	data, err := json.MarshalIndent(&s.stats, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal session stats: %w", err)
	}
	path := filepath.Join(s.dir, s.stats.UUID+".json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write session stats: %w", err)
	}

	hs := strconv.Itoa(s.highScore)
	if err := os.WriteFile(filepath.Join(s.dir, highScoreFile), []byte(hs), 0o644); err != nil {
		return fmt.Errorf("write high score: %w", err)
	}
	return nil
}

func (s *Session) loadHighScore() int {
	data, err := os.ReadFile(filepath.Join(s.dir, highScoreFile))
	if err != nil {
		// Absent or unreadable; the next Save rewrites it
		return 0
	}
	n, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil || n < 0 {
		return 0
	}
	return n
}
