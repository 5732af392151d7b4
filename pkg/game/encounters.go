package game

import (
	"fmt"
	"math"
	"strings"

	"github.com/digitalquest/quest-engine/pkg/state"
	"github.com/digitalquest/quest-engine/pkg/world"
)

// startQuiz begins the named quiz with an NPC at the current location,
// replacing any active interaction.
func (e *Engine) startQuiz(topic string) *CommandResult {
	if topic == "" {
		return &CommandResult{Message: "Which quiz do you want to take?"}
	}

	var npc *world.NPC
	var quiz *world.Quiz
	for _, candidate := range e.world.NPCsAt(e.gs.CurrentLocation) {
		if q := candidate.Quiz(topic); q != nil {
			npc = candidate
			quiz = q
			break
		}
	}
	if quiz == nil {
		return &CommandResult{Message: fmt.Sprintf("There's no quiz about %q available here.", topic)}
	}

	e.gs.SetInteraction(state.QuizInteraction(npc.ID, quiz))
	e.logger.Debug("quiz started", "npc", npc.ID, "topic", quiz.Topic)

	var b strings.Builder
	fmt.Fprintf(&b, "%s Quiz\n%s\n\n", quiz.Topic, quiz.Introduction)
	b.WriteString(e.renderQuizQuestion())
	return &CommandResult{Message: b.String(), NPCInteraction: npc.ID}
}

// renderQuizQuestion shows the current question, or the final results
// when the question index has run past the end.
func (e *Engine) renderQuizQuestion() string {
	aq := e.gs.Interaction().Quiz()
	if aq == nil || aq.Quiz == nil {
		return "No quiz is currently active."
	}
	if aq.CurrentQuestion >= len(aq.Quiz.Questions) {
		return e.finishQuiz()
	}

	question := aq.Quiz.Questions[aq.CurrentQuestion]
	var b strings.Builder
	fmt.Fprintf(&b, "Question %d of %d\n%s\n", aq.CurrentQuestion+1, len(aq.Quiz.Questions), question.Question)
	b.WriteString(renderOptions(question.Options))
	return b.String()
}

// submitAnswer routes an answer to whichever interaction is active.
func (e *Engine) submitAnswer(raw string) *CommandResult {
	if raw == "" {
		return &CommandResult{Message: "What is your answer?"}
	}

	switch e.gs.Interaction().Kind() {
	case state.InteractionQuiz:
		return e.answerQuiz(raw)
	case state.InteractionChallenge:
		return e.answerChallenge(raw)
	case state.InteractionDanger:
		return e.answerDanger(raw)
	default:
		return &CommandResult{Message: "There's nothing to answer right now."}
	}
}

// answerQuiz grades one question. An answer that maps to no option is
// rejected without advancing, so the player can retry.
func (e *Engine) answerQuiz(raw string) *CommandResult {
	aq := e.gs.Interaction().Quiz()
	if !aq.Valid() {
		// Can only happen through a damaged save; a live quiz never
		// points outside its question list.
		e.gs.ClearInteraction()
		return &CommandResult{Message: "No quiz is currently active."}
	}
	question := aq.Quiz.Questions[aq.CurrentQuestion]

	ans, ok := world.ResolveAnswer(raw, question.Options)
	if !ok {
		return &CommandResult{Message: "That's not a valid answer option. Please try again."}
	}

	correct := ans.Kind == world.AnswerIndex && ans.Index == question.CorrectAnswer
	if correct {
		aq.CorrectAnswers++
		e.gs.ModifyScore(ScoreQuizCorrect)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Question %d Result\n", aq.CurrentQuestion+1)
	if correct {
		b.WriteString("Correct!")
	} else {
		fmt.Fprintf(&b, "Incorrect. The correct answer was: %s", question.Options[question.CorrectAnswer])
	}
	if question.Explanation != "" {
		fmt.Fprintf(&b, "\n%s", question.Explanation)
	}

	aq.CurrentQuestion++
	b.WriteString("\n\n")
	b.WriteString(e.renderQuizQuestion())
	return &CommandResult{Message: b.String(), NPCInteraction: aq.NPCID}
}

// finishQuiz scores the finished quiz and clears the interaction.
// Passing (at least half the questions right) earns the full bonus;
// a failed attempt still earns half points per correct answer.
func (e *Engine) finishQuiz() string {
	aq := e.gs.Interaction().Quiz()
	total := len(aq.Quiz.Questions)
	correct := aq.CorrectAnswers

	percentage := 0
	if total > 0 {
		percentage = int(math.Round(float64(correct) / float64(total) * 100))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Quiz Complete: %s\n", aq.Quiz.Topic)
	fmt.Fprintf(&b, "You answered %d out of %d questions correctly (%d%%).\n", correct, total, percentage)

	if correct >= (total+1)/2 {
		b.WriteString(aq.Quiz.SuccessResponse)
		e.gs.ModifyScore(correct * 10)
	} else {
		b.WriteString(aq.Quiz.FailureResponse)
		e.gs.ModifyScore(correct * 5)
	}

	e.logger.Debug("quiz finished", "npc", aq.NPCID, "topic", aq.Quiz.Topic, "correct", correct, "total", total)
	e.gs.ClearInteraction()
	return b.String()
}

// startChallenge presents a challenge and makes it the active
// interaction.
func (e *Engine) startChallenge(c *world.Challenge) *CommandResult {
	e.gs.SetInteraction(state.ChallengeInteraction(c.ID))
	e.logger.Debug("challenge started", "challenge", c.ID)

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n%s\n%s\n", c.Title, c.Description, c.ChallengeText)
	if c.SolutionType == world.SolutionMultipleChoice && len(c.Options) > 0 {
		b.WriteString(renderOptions(c.Options))
	} else {
		b.WriteString("Type 'answer' followed by your response.")
	}
	return &CommandResult{Message: b.String(), ChallengeTriggered: c.ID}
}

// answerChallenge resolves the active challenge. Challenges are
// single-shot: any answer, resolvable or not, ends the challenge.
func (e *Engine) answerChallenge(raw string) *CommandResult {
	id := e.gs.Interaction().ChallengeID()
	c, ok := e.world.Challenges[id]
	if !ok {
		e.gs.ClearInteraction()
		return &CommandResult{Message: "Error: challenge not found."}
	}

	ans, resolved := world.ResolveAnswer(raw, c.Options)
	correct := resolved && c.Check(ans)
	if correct {
		e.gs.ModifyScore(ScoreChallenge)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s Result\n", c.Title)
	if correct {
		fmt.Fprintf(&b, "Correct!\n%s", c.SuccessText)
	} else {
		fmt.Fprintf(&b, "Incorrect.\n%s", c.FailureText)
	}
	fmt.Fprintf(&b, "\n\n%s", c.EducationalContent)

	e.logger.Debug("challenge resolved", "challenge", c.ID, "correct", correct)
	e.gs.ClearInteraction()
	return &CommandResult{Message: b.String()}
}

// triggerDanger presents a danger scenario and makes it the active
// interaction.
func (e *Engine) triggerDanger(d *world.DangerScenario) *CommandResult {
	e.gs.SetInteraction(state.DangerInteraction(d.ID))
	e.logger.Debug("danger triggered", "danger", d.ID, "lethal", d.IsLethal)

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n%s\n", d.Title, d.ScenarioText)
	if d.SolutionType == world.SolutionMultipleChoice && len(d.Options) > 0 {
		b.WriteString(renderOptions(d.Options))
	} else {
		b.WriteString("Type 'answer' followed by your response.")
	}
	return &CommandResult{Message: b.String(), DangerTriggered: d.ID}
}

// answerDanger resolves the active danger. Escaping earns the largest
// score award; failing costs health, fatally so when the scenario is
// lethal and health runs out.
func (e *Engine) answerDanger(raw string) *CommandResult {
	id := e.gs.Interaction().DangerID()
	d, ok := e.world.Dangers[id]
	if !ok {
		e.gs.ClearInteraction()
		return &CommandResult{Message: "Error: danger scenario not found."}
	}

	ans, resolved := world.ResolveAnswer(raw, d.Options)
	correct := resolved && d.Check(ans)

	var b strings.Builder
	fmt.Fprintf(&b, "%s Result\n", d.Title)
	if correct {
		e.gs.ModifyScore(ScoreDangerEscape)
		fmt.Fprintf(&b, "You escaped the danger!\n%s", d.SuccessText)
	} else {
		hit := HealthNonLethalHit
		if d.IsLethal {
			hit = HealthLethalHit
		}
		e.gs.ModifyHealth(hit)
		fmt.Fprintf(&b, "You failed to escape!\n%s", d.FailureText)
	}
	fmt.Fprintf(&b, "\n\n%s", d.EducationalContent)

	e.logger.Debug("danger resolved", "danger", d.ID, "correct", correct, "health", e.gs.Health)
	e.gs.ClearInteraction()

	result := &CommandResult{Message: b.String()}
	if e.gs.Health <= state.MinHealth {
		e.gameOver = true
		e.gameOverReason = "You have run out of health."
		b.WriteString("\n\nYou have run out of health. Game over. Type 'load' to restore a saved game or 'restart' to begin again.")
		result.Message = b.String()
		result.PlayerDied = true
		result.GameOver = true
		result.GameOverReason = e.gameOverReason
	}
	return result
}

// renderOptions numbers answer options the way players type them.
func renderOptions(options []string) string {
	var b strings.Builder
	for i, option := range options {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "  %d. %s (type 'answer %d')", i+1, option, i+1)
	}
	return b.String()
}
