package game

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/digitalquest/quest-engine/pkg/state"
	"github.com/digitalquest/quest-engine/pkg/world"
)

// memStore is an in-memory SaveStore that round-trips through the
// wire format, like the real stores do.
type memStore struct {
	data []byte
}

func (m *memStore) Save(_ context.Context, gs *state.GameState) error {
	data, err := gs.Serialize()
	if err != nil {
		return err
	}
	m.data = data
	return nil
}

func (m *memStore) Load(_ context.Context) (*state.GameState, error) {
	if m.data == nil {
		return nil, nil
	}
	gs := &state.GameState{}
	if err := gs.Deserialize(m.data); err != nil {
		return nil, err
	}
	return gs, nil
}

func testWorld() *world.World {
	return &world.World{
		Name:  "Test World",
		Start: "digital_nexus",
		Locations: map[string]*world.Location{
			"digital_nexus": {
				ID:          "digital_nexus",
				Name:        "Digital Nexus",
				Description: "The central hub of the digital world.",
				Exits: []world.Exit{
					{Direction: "north", Destination: "data_domain_entrance", DestinationName: "Data Domain Entrance"},
				},
			},
			"data_domain_entrance": {
				ID:          "data_domain_entrance",
				Name:        "Data Domain Entrance",
				Description: "A shimmering gateway of pure data.",
				Exits: []world.Exit{
					{Direction: "south", Destination: "digital_nexus", DestinationName: "Digital Nexus"},
				},
			},
		},
		Items: map[string]*world.Item{
			"binary_decoder": {
				ID: "binary_decoder", Name: "Binary Decoder",
				Description: "Converts binary to decimal.",
				Location:    "digital_nexus", Home: "digital_nexus",
				CanTake: true, UseText: "The decoder hums quietly.",
			},
			"welcome_sign": {
				ID: "welcome_sign", Name: "Welcome Sign",
				Description: "A glowing sign.",
				Location:    "digital_nexus", Home: "digital_nexus",
				CanTake: false,
			},
		},
		NPCs: map[string]*world.NPC{
			"professor_binary": {
				ID: "professor_binary", Name: "Professor Binary",
				Location:     "data_domain_entrance",
				Introduction: "Ah, a visitor!",
				QuizOptions:  []string{"Binary Numbers"},
				Quizzes: []world.Quiz{
					{
						Topic:        "Binary Numbers",
						Introduction: "Let's test your binary knowledge!",
						Questions: []world.Question{
							{Question: "What is 1010 in decimal?", Options: []string{"8", "10", "12"}, CorrectAnswer: 1},
							{Question: "What is 100 in decimal?", Options: []string{"2", "3", "4"}, CorrectAnswer: 2},
							{Question: "How many bits in a byte?", Options: []string{"4", "8", "16"}, CorrectAnswer: 1},
						},
						SuccessResponse: "Excellent work!",
						FailureResponse: "Keep practicing!",
					},
				},
			},
		},
		Challenges: map[string]*world.Challenge{
			"logic_gate_repair": {
				ID: "logic_gate_repair", Location: "digital_nexus",
				Title:         "Logic Gate Repair",
				Description:   "A broken logic gate sparks nearby.",
				ChallengeText: "Which gate outputs 1 only when both inputs are 1?",
				SolutionType:  world.SolutionMultipleChoice,
				Options:       []string{"AND", "OR", "NOT"},
				CorrectAnswer: world.AnswerKey{Index: 0},
				SuccessText:   "The gate hums back to life.",
				FailureText:   "The gate sputters and dies.",
				EducationalContent: "AND gates output 1 only when every input is 1.",
			},
		},
		Dangers: map[string]*world.DangerScenario{
			"binary_black_hole": {
				ID: "binary_black_hole", Location: "digital_nexus",
				Title:        "The Binary Black Hole",
				Description:  "a swirling vortex of corrupted bits",
				ScenarioText: "A black hole of scrambled binary pulls you in! Enter the binary for 42 to escape.",
				SolutionType: world.SolutionTextInput,
				CorrectAnswer: world.AnswerKey{Text: "101010"},
				SuccessText:  "You slip free of the vortex.",
				FailureText:  "The vortex tears at you.",
				EducationalContent: "42 in binary is 101010.",
				IsLethal:     true,
			},
			"spam_tsunami": {
				ID: "spam_tsunami", Location: "digital_nexus",
				Title:        "Spam Tsunami",
				Description:  "a towering wave of junk mail",
				ScenarioText: "A wall of spam crashes toward you! What should you never do with spam?",
				SolutionType: world.SolutionMultipleChoice,
				Options:      []string{"Delete it", "Click its links", "Report it"},
				CorrectAnswer: world.AnswerKey{Index: 1},
				SuccessText:  "The wave parts around you.",
				FailureText:  "The wave buries you in junk.",
				EducationalContent: "Never click links in unsolicited messages.",
				IsLethal:     false,
			},
		},
	}
}

func testEngine(t *testing.T, saves SaveStore) *Engine {
	t.Helper()
	return NewEngine(testWorld(), saves, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func run(t *testing.T, e *Engine, input string) *CommandResult {
	t.Helper()
	result, err := e.ProcessCommand(context.Background(), input)
	if err != nil {
		t.Fatalf("ProcessCommand(%q) failed: %v", input, err)
	}
	return result
}

func TestProcessCommand_Move(t *testing.T) {
	e := testEngine(t, nil)

	result := run(t, e, "n")
	if !result.LocationChanged {
		t.Error("expected LocationChanged")
	}
	if e.State().CurrentLocation != "data_domain_entrance" {
		t.Errorf("location = %q", e.State().CurrentLocation)
	}
	if !strings.Contains(result.Message, "Data Domain Entrance") {
		t.Errorf("message should describe the destination: %q", result.Message)
	}
	if !e.State().HasVisited("data_domain_entrance") {
		t.Error("destination should be marked visited")
	}

	result = run(t, e, "go west")
	if result.LocationChanged || !strings.Contains(result.Message, "can't go west") {
		t.Errorf("blocked move: %+v", result)
	}
}

func TestProcessCommand_TakeDropRoundTrip(t *testing.T) {
	e := testEngine(t, nil)

	result := run(t, e, "take binary decoder")
	if result.Message != "You take the Binary Decoder." {
		t.Errorf("take: %q", result.Message)
	}
	if !e.State().HasItem("binary_decoder") {
		t.Error("item not in inventory")
	}
	if !strings.Contains(run(t, e, "inventory").Message, "Binary Decoder") {
		t.Error("inventory should list the item")
	}

	run(t, e, "n")
	result = run(t, e, "drop binary decoder")
	if result.Message != "You drop the Binary Decoder." {
		t.Errorf("drop: %q", result.Message)
	}
	if e.State().HasItem("binary_decoder") {
		t.Error("item still in inventory")
	}
	if e.World().Items["binary_decoder"].Location != "data_domain_entrance" {
		t.Errorf("dropped item location = %q", e.World().Items["binary_decoder"].Location)
	}
}

func TestProcessCommand_TakeRejections(t *testing.T) {
	e := testEngine(t, nil)

	if got := run(t, e, "take welcome sign").Message; got != "You can't take the welcome sign." {
		t.Errorf("fixed item: %q", got)
	}
	if got := run(t, e, "take quantum computer").Message; !strings.Contains(got, "no quantum computer here") {
		t.Errorf("missing item: %q", got)
	}
}

func TestProcessCommand_UnknownVerbs(t *testing.T) {
	e := testEngine(t, nil)

	if got := run(t, e, "dance").Message; got != "I don't know how to 'dance'. Type 'help' for a list of commands." {
		t.Errorf("unknown verb: %q", got)
	}
	if got := run(t, e, "   ").Message; got != "I don't understand that command. Type 'help' for a list of commands." {
		t.Errorf("empty input: %q", got)
	}
}

func TestQuiz_PassScoring(t *testing.T) {
	e := testEngine(t, nil)
	run(t, e, "n")

	result := run(t, e, "talk to professor binary")
	if result.NPCInteraction != "professor_binary" || !strings.Contains(result.Message, "quiz binary numbers") {
		t.Errorf("talk should offer the quiz: %+v", result)
	}

	result = run(t, e, "quiz binary numbers")
	if !strings.Contains(result.Message, "Question 1 of 3") {
		t.Errorf("quiz start: %q", result.Message)
	}

	// Two right, one wrong: per-question awards plus the pass bonus.
	if got := run(t, e, "answer 2").Message; !strings.Contains(got, "Correct!") {
		t.Errorf("q1: %q", got)
	}
	if got := run(t, e, "answer 2").Message; !strings.Contains(got, "Incorrect. The correct answer was: 4") {
		t.Errorf("q2: %q", got)
	}
	result = run(t, e, "answer 2")
	if !strings.Contains(result.Message, "2 out of 3 questions correctly (67%)") {
		t.Errorf("summary: %q", result.Message)
	}
	if !strings.Contains(result.Message, "Excellent work!") {
		t.Errorf("pass response missing: %q", result.Message)
	}

	if e.State().Score != 40 {
		t.Errorf("score = %d, want 40", e.State().Score)
	}
	if e.State().Interaction().Active() {
		t.Error("quiz should be cleared after the last question")
	}
}

func TestQuiz_InvalidAnswerRetries(t *testing.T) {
	e := testEngine(t, nil)
	run(t, e, "n")
	run(t, e, "quiz binary numbers")

	result := run(t, e, "answer 99")
	if result.Message != "That's not a valid answer option. Please try again." {
		t.Errorf("invalid answer: %q", result.Message)
	}
	if aq := e.State().Interaction().Quiz(); aq == nil || aq.CurrentQuestion != 0 {
		t.Errorf("invalid answer must not advance the quiz: %+v", aq)
	}
}

func TestQuiz_FailScoring(t *testing.T) {
	e := testEngine(t, nil)
	run(t, e, "n")
	run(t, e, "quiz binary numbers")

	run(t, e, "answer 1")
	run(t, e, "answer 1")
	result := run(t, e, "answer 2")
	if !strings.Contains(result.Message, "Keep practicing!") {
		t.Errorf("fail response missing: %q", result.Message)
	}
	// One correct: 10 during the quiz plus the half-rate consolation.
	if e.State().Score != 15 {
		t.Errorf("score = %d, want 15", e.State().Score)
	}
}

func TestChallenge_ExamineTriggersAndScores(t *testing.T) {
	e := testEngine(t, nil)

	result := run(t, e, "examine logic gate")
	if result.ChallengeTriggered != "logic_gate_repair" {
		t.Fatalf("examine should trigger the challenge: %+v", result)
	}
	if !strings.Contains(result.Message, "Which gate outputs 1") {
		t.Errorf("presentation: %q", result.Message)
	}
	if e.State().Interaction().ChallengeID() != "logic_gate_repair" {
		t.Errorf("interaction = %+v", e.State().Interaction())
	}

	result = run(t, e, "answer AND")
	if !strings.Contains(result.Message, "Correct!") ||
		!strings.Contains(result.Message, "AND gates output 1") {
		t.Errorf("result should include the educational content: %q", result.Message)
	}
	if e.State().Score != ScoreChallenge {
		t.Errorf("score = %d, want %d", e.State().Score, ScoreChallenge)
	}
	if e.State().Interaction().Active() {
		t.Error("challenge should be single-shot")
	}
}

func TestChallenge_WrongAnswerStillTeaches(t *testing.T) {
	e := testEngine(t, nil)
	run(t, e, "examine logic gate")

	result := run(t, e, "answer 2")
	if !strings.Contains(result.Message, "Incorrect.") ||
		!strings.Contains(result.Message, "AND gates output 1") {
		t.Errorf("educational content always shown: %q", result.Message)
	}
	if e.State().Score != 0 {
		t.Errorf("score = %d, want 0", e.State().Score)
	}
	if e.State().Interaction().Active() {
		t.Error("challenge should end even on a wrong answer")
	}
}

func TestDanger_NonLethalFailure(t *testing.T) {
	e := testEngine(t, nil)

	result := run(t, e, "examine spam")
	if result.DangerTriggered != "spam_tsunami" {
		t.Fatalf("examine should trigger the danger: %+v", result)
	}

	result = run(t, e, "answer 1")
	if !strings.Contains(result.Message, "You failed to escape!") {
		t.Errorf("failure: %q", result.Message)
	}
	if e.State().Health != 80 {
		t.Errorf("health = %d, want 80", e.State().Health)
	}
	if result.PlayerDied || result.GameOver {
		t.Error("non-lethal failure at full health is not fatal")
	}
}

func TestDanger_EscapeScores(t *testing.T) {
	e := testEngine(t, nil)
	run(t, e, "examine black hole")

	result := run(t, e, "answer 101010")
	if !strings.Contains(result.Message, "You escaped the danger!") {
		t.Errorf("escape: %q", result.Message)
	}
	if e.State().Score != ScoreDangerEscape {
		t.Errorf("score = %d, want %d", e.State().Score, ScoreDangerEscape)
	}
	if e.State().Health != 100 {
		t.Errorf("health = %d, want 100", e.State().Health)
	}
}

func TestDanger_LethalDeathAndGameOver(t *testing.T) {
	e := testEngine(t, nil)

	run(t, e, "examine black hole")
	run(t, e, "answer wrong")
	if e.State().Health != 50 {
		t.Fatalf("health = %d, want 50", e.State().Health)
	}

	run(t, e, "examine black hole")
	result := run(t, e, "answer wrong")
	if e.State().Health != 0 {
		t.Fatalf("health = %d, want 0", e.State().Health)
	}
	if !result.PlayerDied || !result.GameOver {
		t.Errorf("death flags: %+v", result)
	}

	// Everything except load and restart is gated now.
	result = run(t, e, "look")
	if !result.GameOver || !strings.Contains(result.Message, "The game is over.") {
		t.Errorf("gated command: %+v", result)
	}

	result = run(t, e, "restart")
	if result.GameOver {
		t.Errorf("restart should clear game over: %+v", result)
	}
	if e.State().Health != 100 || e.State().Score != 0 || e.State().CurrentLocation != "digital_nexus" {
		t.Errorf("restart state: %+v", e.State())
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	store := &memStore{}
	e := testEngine(t, store)

	run(t, e, "take binary decoder")
	run(t, e, "n")
	if got := run(t, e, "save").Message; got != "Game saved successfully." {
		t.Fatalf("save: %q", got)
	}

	// Wander off and drop the item, then load the earlier save.
	run(t, e, "s")
	run(t, e, "drop binary decoder")

	result := run(t, e, "load")
	if !strings.Contains(result.Message, "Game loaded successfully.") {
		t.Fatalf("load: %q", result.Message)
	}
	if e.State().CurrentLocation != "data_domain_entrance" {
		t.Errorf("location = %q", e.State().CurrentLocation)
	}
	if !e.State().HasItem("binary_decoder") {
		t.Error("inventory not restored")
	}
	if e.World().Items["binary_decoder"].Location != world.LocationInventory {
		t.Error("item position not rebuilt from inventory")
	}
}

func TestLoad_NoSave(t *testing.T) {
	e := testEngine(t, &memStore{})
	if got := run(t, e, "load").Message; got != "No saved game found." {
		t.Errorf("load: %q", got)
	}
}

func TestSaveLoad_Unavailable(t *testing.T) {
	e := testEngine(t, nil)
	if got := run(t, e, "save").Message; got != "Saving is not available here." {
		t.Errorf("save: %q", got)
	}
	if got := run(t, e, "load").Message; got != "Loading is not available here." {
		t.Errorf("load: %q", got)
	}
}

func TestUse(t *testing.T) {
	e := testEngine(t, nil)

	if got := run(t, e, "use binary decoder").Message; !strings.Contains(got, "don't have a binary decoder") {
		t.Errorf("use uncarried: %q", got)
	}
	run(t, e, "take binary decoder")
	if got := run(t, e, "use binary decoder").Message; got != "The decoder hums quietly." {
		t.Errorf("use: %q", got)
	}
}

func TestExamine(t *testing.T) {
	e := testEngine(t, nil)

	if got := run(t, e, "examine welcome sign").Message; got != "Welcome Sign: A glowing sign." {
		t.Errorf("examine item: %q", got)
	}
	if got := run(t, e, "examine the void").Message; !strings.Contains(got, "anything special") {
		t.Errorf("examine nothing: %q", got)
	}
	// Bare examine falls back to looking around.
	if got := run(t, e, "examine").Message; !strings.Contains(got, "Digital Nexus") {
		t.Errorf("bare examine: %q", got)
	}
}

func TestAnswer_NothingActive(t *testing.T) {
	e := testEngine(t, nil)
	if got := run(t, e, "answer 42").Message; got != "There's nothing to answer right now." {
		t.Errorf("answer: %q", got)
	}
}

func TestNewEngineFromState(t *testing.T) {
	base := testWorld()
	gs := state.NewGameState(base.Start)
	gs.MoveTo("data_domain_entrance")
	gs.AddToInventory("binary_decoder")
	gs.ModifyHealth(-100)

	e := NewEngineFromState(base, gs, nil, slog.New(slog.NewTextHandler(io.Discard, nil)))
	if !e.GameOver() {
		t.Error("zero health should restore as game over")
	}
	if e.World().Items["binary_decoder"].Location != world.LocationInventory {
		t.Error("carried item not placed in inventory")
	}
	if base.Items["binary_decoder"].Location != "digital_nexus" {
		t.Error("base world must not be mutated")
	}
}

func TestAnswer_DamagedQuizSave(t *testing.T) {
	// A hand-edited save with a quiz slot but no quiz body restores
	// with the slot dropped, so answering is a no-op rather than a
	// crash.
	store := &memStore{data: []byte(`{
		"id": "58f3c69c-4ef1-4a5c-9db9-f3f0b64ee3cc",
		"currentLocation": "digital_nexus",
		"health": 100,
		"score": 0,
		"inventory": [],
		"visitedLocations": {},
		"gameFlags": {},
		"currentQuiz": {"npcId": "professor_binary", "quiz": null, "currentQuestion": 0, "correctAnswers": 0}
	}`)}

	e := testEngine(t, store)
	if got := run(t, e, "load").Message; !strings.Contains(got, "Game loaded successfully.") {
		t.Fatalf("load: %q", got)
	}
	if e.State().Interaction().Active() {
		t.Error("damaged quiz slot should not restore as active")
	}
	if got := run(t, e, "answer 1").Message; got != "There's nothing to answer right now." {
		t.Errorf("answer: %q", got)
	}
}

func TestAnswer_QuizWithoutQuestionsClears(t *testing.T) {
	e := testEngine(t, nil)
	e.State().SetInteraction(state.QuizInteraction("professor_binary", &world.Quiz{Topic: "Binary Numbers"}))

	if got := run(t, e, "answer 1").Message; got != "No quiz is currently active." {
		t.Errorf("answer: %q", got)
	}
	if e.State().Interaction().Active() {
		t.Error("empty quiz should be cleared, not left active")
	}
}
