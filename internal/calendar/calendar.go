// Package calendar lists the Genuary prompts and which terminal sketches
// answer them.
package calendar

import (
	_ "embed"
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"
)

//go:embed challenges.yaml
var challengesYAML []byte

// Challenge is one day of the calendar.
type Challenge struct {
	Day       int      `yaml:"day"`
	Prompt    string   `yaml:"prompt"`
	Credit    string   `yaml:"credit"`
	Completed bool     `yaml:"completed"`
	Sketches  []string `yaml:"sketches,omitempty"`
}

// Status is the label shown on the calendar card.
func (c Challenge) Status() string {
	if c.Completed {
		return "Completed"
	}
	return "Not started"
}

// Calendar is ordered by day.
type Calendar struct {
	Challenges []Challenge
}

// Load parses the embedded calendar.
func Load() (*Calendar, error) {
	return Parse(challengesYAML)
}

// Parse reads a YAML list of challenges. Days must be unique and positive.
func Parse(data []byte) (*Calendar, error) {
	var cs []Challenge
	if err := yaml.Unmarshal(data, &cs); err != nil {
		return nil, fmt.Errorf("calendar: %w", err)
	}
	seen := make(map[int]bool, len(cs))
	for _, c := range cs {
		if c.Day < 1 {
			return nil, fmt.Errorf("calendar: invalid day %d", c.Day)
		}
		if seen[c.Day] {
			return nil, fmt.Errorf("calendar: duplicate day %d", c.Day)
		}
		seen[c.Day] = true
	}
	sort.Slice(cs, func(i, j int) bool { return cs[i].Day < cs[j].Day })
	return &Calendar{Challenges: cs}, nil
}

// Day returns the challenge for day n.
func (c *Calendar) Day(n int) (Challenge, bool) {
	for _, ch := range c.Challenges {
		if ch.Day == n {
			return ch, true
		}
	}
	return Challenge{}, false
}

// Completed returns the number of completed days.
func (c *Calendar) Completed() int {
	n := 0
	for _, ch := range c.Challenges {
		if ch.Completed {
			n++
		}
	}
	return n
}

// WithSketch returns the days that have at least one terminal sketch.
func (c *Calendar) WithSketch() []Challenge {
	var out []Challenge
	for _, ch := range c.Challenges {
		if len(ch.Sketches) > 0 {
			out = append(out, ch)
		}
	}
	return out
}
