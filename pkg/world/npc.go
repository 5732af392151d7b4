package world

import "strings"

// Question is a single multiple-choice quiz question. CorrectAnswer
// is a 0-based index into Options.
type Question struct {
	Question      string   `json:"question" yaml:"question"`
	Options       []string `json:"options" yaml:"options"`
	CorrectAnswer int      `json:"correct_answer" yaml:"correct_answer"`
	Explanation   string   `json:"explanation" yaml:"explanation"`
}

// Quiz is an ordered question sequence an NPC offers on one topic.
type Quiz struct {
	Topic           string     `json:"topic" yaml:"topic"`
	Introduction    string     `json:"introduction" yaml:"introduction"`
	Questions       []Question `json:"questions" yaml:"questions"`
	SuccessResponse string     `json:"success_response" yaml:"success_response"`
	FailureResponse string     `json:"failure_response" yaml:"failure_response"`
}

// NPC is a character the player can talk to. NPCs do not move.
// QuizOptions and Quizzes are parallel lists; quiz lookup is by
// case-insensitive topic label, not by index.
type NPC struct {
	ID           string   `json:"npc_id" yaml:"npc_id"`
	Name         string   `json:"name" yaml:"name"`
	Location     string   `json:"location" yaml:"location"`
	Introduction string   `json:"introduction" yaml:"introduction"`
	QuizOptions  []string `json:"quiz_options,omitempty" yaml:"quiz_options,omitempty"`
	Quizzes      []Quiz   `json:"quizzes,omitempty" yaml:"quizzes,omitempty"`
}

// Quiz finds a quiz by topic label. Returns nil when the NPC offers
// no quiz on that topic.
func (n *NPC) Quiz(topic string) *Quiz {
	for i, label := range n.QuizOptions {
		if strings.EqualFold(label, topic) && i < len(n.Quizzes) {
			return &n.Quizzes[i]
		}
	}
	return nil
}
