package ai

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

type mockClient struct{}

// NewMock returns a model client that answers offline. Used when no LLM
// endpoint is configured so the rest of the pipeline stays exercisable.
func NewMock() Client { return &mockClient{} }

var countRX = regexp.MustCompile(`Create (\d+)`)

func (m *mockClient) Complete(system, user string, temperature float64) (string, error) {
	switch {
	case strings.Contains(system, "quiz creator"):
		n := 1
		if mm := countRX.FindStringSubmatch(user); mm != nil {
			fmt.Sscanf(mm[1], "%d", &n)
		}
		items := make([]map[string]any, 0, n)
		for i := 0; i < n; i++ {
			items = append(items, map[string]any{
				"question":       fmt.Sprintf("Mock question %d?", i+1),
				"options":        []string{"A) first", "B) second", "C) third", "D) fourth"},
				"correct_answer": "A",
				"explanation":    "Mock explanation.",
				"topic":          "mock topic",
			})
		}
		b, _ := json.Marshal(items)
		return string(b), nil
	case strings.Contains(system, "comma-separated topics"):
		return "reading, comprehension, study skills", nil
	case strings.Contains(system, "study planner"):
		return "Day 1: read chapter 1.\nDay 2: review and quiz.", nil
	default:
		return "Mock study assistant response.", nil
	}
}
