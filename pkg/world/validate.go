package world

import "fmt"

// Validate checks referential integrity across the world and returns
// a list of human-readable warnings. Dangling references are never
// fatal; the affected entities simply behave as "not found" at
// runtime.
func (w *World) Validate() []string {
	var warnings []string

	warn := func(format string, args ...any) {
		warnings = append(warnings, fmt.Sprintf(format, args...))
	}

	if w.Start == "" {
		warn("world has no start location")
	} else if _, ok := w.Locations[w.Start]; !ok {
		warn("start location %q does not exist", w.Start)
	}

	for id, loc := range w.Locations {
		for _, exit := range loc.Exits {
			if _, ok := w.Locations[exit.Destination]; !ok {
				warn("location %q exit %q points to unknown location %q", id, exit.Direction, exit.Destination)
			}
		}
	}

	for id, item := range w.Items {
		if item.Location == LocationInventory {
			continue
		}
		if _, ok := w.Locations[item.Location]; !ok {
			warn("item %q placed at unknown location %q", id, item.Location)
		}
	}

	for id, npc := range w.NPCs {
		if _, ok := w.Locations[npc.Location]; !ok {
			warn("npc %q placed at unknown location %q", id, npc.Location)
		}
		if len(npc.QuizOptions) != len(npc.Quizzes) {
			warn("npc %q has %d quiz topics but %d quizzes", id, len(npc.QuizOptions), len(npc.Quizzes))
		}
		for qi, quiz := range npc.Quizzes {
			for qq, question := range quiz.Questions {
				if question.CorrectAnswer < 0 || question.CorrectAnswer >= len(question.Options) {
					warn("npc %q quiz %d question %d has out-of-range correct_answer %d", id, qi, qq, question.CorrectAnswer)
				}
			}
		}
	}

	for id, c := range w.Challenges {
		if _, ok := w.Locations[c.Location]; !ok {
			warn("challenge %q placed at unknown location %q", id, c.Location)
		}
		if c.SolutionType == SolutionMultipleChoice {
			if len(c.Options) == 0 {
				warn("challenge %q is multiple choice but has no options", id)
			} else if c.CorrectAnswer.Text == "" && (c.CorrectAnswer.Index < 0 || c.CorrectAnswer.Index >= len(c.Options)) {
				warn("challenge %q has out-of-range correct_answer %d", id, c.CorrectAnswer.Index)
			}
		}
	}

	for id, d := range w.Dangers {
		if _, ok := w.Locations[d.Location]; !ok {
			warn("danger %q placed at unknown location %q", id, d.Location)
		}
		if d.SolutionType == SolutionMultipleChoice {
			if len(d.Options) == 0 {
				warn("danger %q is multiple choice but has no options", id)
			} else if d.CorrectAnswer.Text == "" && (d.CorrectAnswer.Index < 0 || d.CorrectAnswer.Index >= len(d.Options)) {
				warn("danger %q has out-of-range correct_answer %d", id, d.CorrectAnswer.Index)
			}
		}
	}

	return warnings
}
