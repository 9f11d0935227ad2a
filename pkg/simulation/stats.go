package simulation

import (
	"fmt"
	"sort"
	"strings"
)

// Stats aggregates the outcome of a batch of matches
type Stats struct {
	Seed      int64          `json:"seed"`
	Matches   int            `json:"matches"`
	Completed int            `json:"completed"`
	Wins      map[string]int `json:"wins"`
	Ties      int            `json:"ties"`

	// GamesPerMatch maps the number of games played (2 or 3) to how many matches took that many
	GamesPerMatch map[int]int `json:"gamesPerMatch"`
	Games         int         `json:"games"`
	Turns         int         `json:"turns"`

	// Failures is keyed by failure kind
	Failures map[string]int `json:"failures"`
	// FailedSeeds lets a failed match be replayed
	FailedSeeds []int64 `json:"failedSeeds,omitempty"`
}

// NewStats returns empty stats for the players
func NewStats(playerNames []string) *Stats {
	wins := make(map[string]int, len(playerNames))
	for _, name := range playerNames {
		wins[name] = 0
	}

	return &Stats{
		Wins:          wins,
		GamesPerMatch: make(map[int]int),
		Failures:      make(map[string]int),
	}
}

// Add records a run
func (s *Stats) Add(run *Run) {
	s.Matches++

	if run.Err != nil {
		s.Failures[run.Failure().String()]++
		s.FailedSeeds = append(s.FailedSeeds, run.Seed)
		return
	}

	s.Completed++
	if run.Details.Winner == "" {
		s.Ties++
	} else {
		s.Wins[run.Details.Winner]++
	}

	ml := run.MatchLog()
	if ml == nil {
		return
	}

	s.GamesPerMatch[len(ml.Games)]++
	s.Games += len(ml.Games)
	for _, g := range ml.Games {
		s.Turns += len(g.Turns)
	}
}

// FailureCount returns the number of failed matches
func (s *Stats) FailureCount() int {
	n := 0
	for _, count := range s.Failures {
		n += count
	}

	return n
}

// AverageTurns returns the mean number of moves per game
func (s *Stats) AverageTurns() float64 {
	if s.Games == 0 {
		return 0
	}

	return float64(s.Turns) / float64(s.Games)
}

// AverageGames returns the mean number of games per completed match
func (s *Stats) AverageGames() float64 {
	if s.Completed == 0 {
		return 0
	}

	return float64(s.Games) / float64(s.Completed)
}

func (s *Stats) String() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("matches: %d (seed %d)\n", s.Matches, s.Seed))

	names := make([]string, 0, len(s.Wins))
	for name := range s.Wins {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		sb.WriteString(fmt.Sprintf("  %-10s %d wins (%s)\n", name, s.Wins[name], percent(s.Wins[name], s.Completed)))
	}
	sb.WriteString(fmt.Sprintf("  %-10s %d (%s)\n", "ties", s.Ties, percent(s.Ties, s.Completed)))

	sb.WriteString(fmt.Sprintf("games per match: 2=%d 3=%d (avg %.2f)\n", s.GamesPerMatch[2], s.GamesPerMatch[3], s.AverageGames()))
	sb.WriteString(fmt.Sprintf("average turns per game: %.2f\n", s.AverageTurns()))

	if n := s.FailureCount(); n > 0 {
		kinds := make([]string, 0, len(s.Failures))
		for kind := range s.Failures {
			kinds = append(kinds, kind)
		}
		sort.Strings(kinds)

		sb.WriteString(fmt.Sprintf("failures: %d\n", n))
		for _, kind := range kinds {
			sb.WriteString(fmt.Sprintf("  %-12s %d\n", kind, s.Failures[kind]))
		}
	}

	return sb.String()
}

func percent(n, of int) string {
	if of == 0 {
		return "0.0%"
	}

	return fmt.Sprintf("%.1f%%", 100*float64(n)/float64(of))
}
