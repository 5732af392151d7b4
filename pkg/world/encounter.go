package world

import (
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Solution types for challenges and danger scenarios.
const (
	SolutionMultipleChoice = "multiple_choice"
	SolutionTextInput      = "text_input"
	SolutionQuickAnswer    = "quick_answer"
)

// AnswerKey is the canonical answer to a challenge or danger: a
// 0-based option index for multiple choice, or answer text for text
// solutions. Content files may supply either form.
type AnswerKey struct {
	Index int
	Text  string
}

func (k *AnswerKey) UnmarshalJSON(data []byte) error {
	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		k.Index = n
		k.Text = ""
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("correct_answer must be an option index or answer text: %w", err)
	}
	k.Text = s
	return nil
}

func (k AnswerKey) MarshalJSON() ([]byte, error) {
	if k.Text != "" {
		return json.Marshal(k.Text)
	}
	return json.Marshal(k.Index)
}

func (k *AnswerKey) UnmarshalYAML(value *yaml.Node) error {
	var n int
	if err := value.Decode(&n); err == nil {
		k.Index = n
		k.Text = ""
		return nil
	}
	var s string
	if err := value.Decode(&s); err != nil {
		return fmt.Errorf("correct_answer must be an option index or answer text: %w", err)
	}
	k.Text = s
	return nil
}

// Challenge is a single-shot educational puzzle found at a location.
type Challenge struct {
	ID                 string    `json:"id" yaml:"id"`
	Location           string    `json:"location" yaml:"location"`
	Title              string    `json:"title" yaml:"title"`
	Description        string    `json:"description" yaml:"description"`
	ChallengeText      string    `json:"challenge_text" yaml:"challenge_text"`
	SolutionType       string    `json:"solution_type" yaml:"solution_type"`
	Options            []string  `json:"options,omitempty" yaml:"options,omitempty"`
	CorrectAnswer      AnswerKey `json:"correct_answer" yaml:"correct_answer"`
	SuccessText        string    `json:"success_text" yaml:"success_text"`
	FailureText        string    `json:"failure_text" yaml:"failure_text"`
	EducationalContent string    `json:"educational_content" yaml:"educational_content"`
	CurriculumTopic    string    `json:"curriculum_topic" yaml:"curriculum_topic"`
	Difficulty         string    `json:"difficulty,omitempty" yaml:"difficulty,omitempty"`
}

// DangerScenario is a single-shot hazard. Failing one costs health;
// lethal scenarios cost more.
type DangerScenario struct {
	ID                 string    `json:"id" yaml:"id"`
	Location           string    `json:"location" yaml:"location"`
	Title              string    `json:"title" yaml:"title"`
	Description        string    `json:"description" yaml:"description"`
	ScenarioText       string    `json:"scenario_text" yaml:"scenario_text"`
	SolutionType       string    `json:"solution_type" yaml:"solution_type"`
	Options            []string  `json:"options,omitempty" yaml:"options,omitempty"`
	CorrectAnswer      AnswerKey `json:"correct_answer" yaml:"correct_answer"`
	SuccessText        string    `json:"success_text" yaml:"success_text"`
	FailureText        string    `json:"failure_text" yaml:"failure_text"`
	EducationalContent string    `json:"educational_content" yaml:"educational_content"`
	CurriculumTopic    string    `json:"curriculum_topic" yaml:"curriculum_topic"`
	IsLethal           bool      `json:"is_lethal" yaml:"is_lethal"`
	HumorStyle         string    `json:"humor_style,omitempty" yaml:"humor_style,omitempty"`
}

// Check reports whether a resolved answer matches the challenge's key.
func (c *Challenge) Check(ans Answer) bool {
	return checkAnswer(c.SolutionType, c.CorrectAnswer, ans)
}

// Check reports whether a resolved answer matches the scenario's key.
func (d *DangerScenario) Check(ans Answer) bool {
	return checkAnswer(d.SolutionType, d.CorrectAnswer, ans)
}

func checkAnswer(solutionType string, key AnswerKey, ans Answer) bool {
	if solutionType == SolutionMultipleChoice {
		return ans.Kind == AnswerIndex && ans.Index == key.Index
	}
	return ans.Kind == AnswerText && strings.EqualFold(ans.Text, key.Text)
}
