package state

import (
	"github.com/digitalquest/quest-engine/pkg/world"
)

// InteractionKind discriminates the active engagement slot.
type InteractionKind int

const (
	InteractionNone InteractionKind = iota
	InteractionQuiz
	InteractionChallenge
	InteractionDanger
)

// ActiveQuiz tracks progress through an NPC quiz. The quiz definition
// is embedded so a saved session can resume mid-quiz.
type ActiveQuiz struct {
	NPCID           string      `json:"npcId"`
	Quiz            *world.Quiz `json:"quiz"`
	CurrentQuestion int         `json:"currentQuestion"`
	CorrectAnswers  int         `json:"correctAnswers"`
}

// Valid reports whether the quiz body is present and progress points
// at a real question. A live session always satisfies this; only a
// hand-edited or truncated save can violate it.
func (aq *ActiveQuiz) Valid() bool {
	return aq.Quiz != nil &&
		aq.CurrentQuestion >= 0 &&
		aq.CurrentQuestion < len(aq.Quiz.Questions)
}

// Interaction is the single active engagement: none, a quiz, a
// challenge or a danger scenario. The tagged form makes the mutual
// exclusivity of the three structural rather than conventional.
type Interaction struct {
	kind        InteractionKind
	quiz        *ActiveQuiz
	challengeID string
	dangerID    string
}

func NoInteraction() Interaction {
	return Interaction{kind: InteractionNone}
}

func QuizInteraction(npcID string, quiz *world.Quiz) Interaction {
	return Interaction{
		kind: InteractionQuiz,
		quiz: &ActiveQuiz{NPCID: npcID, Quiz: quiz},
	}
}

func ChallengeInteraction(challengeID string) Interaction {
	return Interaction{kind: InteractionChallenge, challengeID: challengeID}
}

func DangerInteraction(dangerID string) Interaction {
	return Interaction{kind: InteractionDanger, dangerID: dangerID}
}

func (i Interaction) Kind() InteractionKind { return i.kind }

func (i Interaction) Active() bool { return i.kind != InteractionNone }

// Quiz returns the active quiz progress, or nil when no quiz is active.
func (i Interaction) Quiz() *ActiveQuiz {
	if i.kind != InteractionQuiz {
		return nil
	}
	return i.quiz
}

// ChallengeID returns the active challenge ID, or "" when none.
func (i Interaction) ChallengeID() string {
	if i.kind != InteractionChallenge {
		return ""
	}
	return i.challengeID
}

// DangerID returns the active danger scenario ID, or "" when none.
func (i Interaction) DangerID() string {
	if i.kind != InteractionDanger {
		return ""
	}
	return i.dangerID
}
