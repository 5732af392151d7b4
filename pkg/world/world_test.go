package world

import (
	"testing"
)

func testWorld() *World {
	return &World{
		Name:  "Test World",
		Start: "digital_nexus",
		Locations: map[string]*Location{
			"digital_nexus": {
				ID:          "digital_nexus",
				Name:        "Digital Nexus",
				Description: "The central hub.",
				Exits: []Exit{
					{Direction: "north", Destination: "data_domain_entrance", DestinationName: "Data Domain"},
				},
			},
			"data_domain_entrance": {
				ID:          "data_domain_entrance",
				Name:        "Data Domain Entrance",
				Description: "The entrance to the Data Domain.",
				Exits: []Exit{
					{Direction: "south", Destination: "digital_nexus", DestinationName: "Digital Nexus"},
				},
			},
		},
		Items: map[string]*Item{
			"binary_decoder": {
				ID:       "binary_decoder",
				Name:     "Binary Decoder",
				Location: "data_domain_entrance",
				Home:     "data_domain_entrance",
				CanTake:  true,
			},
			"welcome_sign": {
				ID:       "welcome_sign",
				Name:     "Welcome Sign",
				Location: "digital_nexus",
				Home:     "digital_nexus",
				CanTake:  false,
			},
		},
		NPCs: map[string]*NPC{
			"professor_binary": {
				ID:          "professor_binary",
				Name:        "Professor Binary",
				Location:    "data_domain_entrance",
				QuizOptions: []string{"Binary Numbers"},
				Quizzes: []Quiz{
					{Topic: "Binary Numbers", Questions: []Question{
						{Question: "1+1 in binary?", Options: []string{"10", "11"}, CorrectAnswer: 0},
					}},
				},
			},
		},
		Challenges: map[string]*Challenge{
			"logic_gate_repair": {
				ID:              "logic_gate_repair",
				Location:        "digital_nexus",
				Title:           "Logic Gate Repair",
				SolutionType:    SolutionMultipleChoice,
				Options:         []string{"AND", "OR"},
				CorrectAnswer:   AnswerKey{Index: 0},
				CurriculumTopic: "Systems - hardware",
			},
		},
		Dangers: map[string]*DangerScenario{
			"binary_black_hole": {
				ID:              "binary_black_hole",
				Location:        "digital_nexus",
				Title:           "The Binary Black Hole",
				SolutionType:    SolutionTextInput,
				CorrectAnswer:   AnswerKey{Text: "101010"},
				IsLethal:        true,
				CurriculumTopic: "Data representation - binary numbers",
			},
		},
	}
}

func TestLocation_Exit(t *testing.T) {
	w := testWorld()
	loc := w.Locations["digital_nexus"]

	tests := []struct {
		input string
		want  string // destination, or "" for no exit
	}{
		{"north", "data_domain_entrance"},
		{"NORTH", "data_domain_entrance"},
		{"data domain", "data_domain_entrance"}, // destination display name
		{"south", ""},
		{"teleport", ""},
	}

	for _, tt := range tests {
		exit := loc.Exit(tt.input)
		if tt.want == "" {
			if exit != nil {
				t.Errorf("Exit(%q) = %+v, want nil", tt.input, exit)
			}
			continue
		}
		if exit == nil || exit.Destination != tt.want {
			t.Errorf("Exit(%q) = %+v, want destination %q", tt.input, exit, tt.want)
		}
	}
}

func TestNPC_Quiz(t *testing.T) {
	npc := testWorld().NPCs["professor_binary"]

	if quiz := npc.Quiz("binary numbers"); quiz == nil || quiz.Topic != "Binary Numbers" {
		t.Errorf("Quiz lookup should be case-insensitive, got %+v", quiz)
	}
	if quiz := npc.Quiz("quantum computing"); quiz != nil {
		t.Errorf("expected nil for unknown topic, got %+v", quiz)
	}
}

func TestResolveAnswer(t *testing.T) {
	options := []string{"AND", "OR", "NOT"}

	tests := []struct {
		name    string
		raw     string
		options []string
		want    Answer
		ok      bool
	}{
		{"numeric 1-based", "2", options, Answer{Kind: AnswerIndex, Index: 1}, true},
		{"option text", "not", options, Answer{Kind: AnswerIndex, Index: 2}, true},
		{"out of range high", "4", options, Answer{}, false},
		{"out of range zero", "0", options, Answer{}, false},
		{"no such option", "XOR", options, Answer{}, false},
		{"free text when no options", "101010", nil, Answer{Kind: AnswerText, Text: "101010"}, true},
		{"free text trims", "  101010 ", nil, Answer{Kind: AnswerText, Text: "101010"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ResolveAnswer(tt.raw, tt.options)
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if ok && got != tt.want {
				t.Errorf("ResolveAnswer(%q) = %+v, want %+v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestCheck(t *testing.T) {
	w := testWorld()
	challenge := w.Challenges["logic_gate_repair"]
	danger := w.Dangers["binary_black_hole"]

	if !challenge.Check(Answer{Kind: AnswerIndex, Index: 0}) {
		t.Error("correct index should pass")
	}
	if challenge.Check(Answer{Kind: AnswerIndex, Index: 1}) {
		t.Error("wrong index should fail")
	}
	if challenge.Check(Answer{Kind: AnswerText, Text: "AND"}) {
		t.Error("text answers do not apply to multiple choice")
	}

	if !danger.Check(Answer{Kind: AnswerText, Text: "101010"}) {
		t.Error("correct text should pass")
	}
	if !danger.Check(Answer{Kind: AnswerText, Text: "101010"}) {
		t.Error("text check should be repeatable")
	}
	if danger.Check(Answer{Kind: AnswerText, Text: "111111"}) {
		t.Error("wrong text should fail")
	}
}

func TestWorld_QueriesAndClone(t *testing.T) {
	w := testWorld()

	items := w.ItemsAt("digital_nexus")
	if len(items) != 1 || items[0].ID != "welcome_sign" {
		t.Errorf("ItemsAt = %v", items)
	}
	if npcs := w.NPCsAt("data_domain_entrance"); len(npcs) != 1 || npcs[0].ID != "professor_binary" {
		t.Errorf("NPCsAt = %v", npcs)
	}
	if got := len(w.ChallengesAt("digital_nexus")); got != 1 {
		t.Errorf("ChallengesAt count = %d", got)
	}
	if got := len(w.DangersAt("digital_nexus")); got != 1 {
		t.Errorf("DangersAt count = %d", got)
	}

	clone := w.Clone()
	clone.Items["binary_decoder"].Location = LocationInventory
	if w.Items["binary_decoder"].Location != "data_domain_entrance" {
		t.Error("clone mutation leaked into the source world")
	}
	if !clone.Items["binary_decoder"].Carried() {
		t.Error("item moved to the inventory should report carried")
	}
	if len(clone.CarriedItems()) != 1 {
		t.Error("clone should see the carried item")
	}
}

func TestFindItem(t *testing.T) {
	w := testWorld()
	items := w.ItemsAt("data_domain_entrance")

	if item := FindItem(items, "BINARY DECODER"); item == nil || item.ID != "binary_decoder" {
		t.Errorf("FindItem = %v", item)
	}
	if item := FindItem(items, "quantum decoder"); item != nil {
		t.Errorf("expected nil, got %v", item)
	}
}

func TestValidate_Warnings(t *testing.T) {
	w := testWorld()
	if warnings := w.Validate(); len(warnings) != 0 {
		t.Fatalf("clean world should have no warnings, got %v", warnings)
	}

	// Break things on purpose; validation must warn, never panic.
	w.Locations["digital_nexus"].Exits = append(w.Locations["digital_nexus"].Exits,
		Exit{Direction: "west", Destination: "missing_realm", DestinationName: "Missing Realm"})
	w.Items["binary_decoder"].Location = "missing_realm"
	w.NPCs["professor_binary"].QuizOptions = append(w.NPCs["professor_binary"].QuizOptions, "Extra Topic")
	w.Challenges["logic_gate_repair"].CorrectAnswer = AnswerKey{Index: 9}

	warnings := w.Validate()
	if len(warnings) != 4 {
		t.Errorf("expected 4 warnings, got %d: %v", len(warnings), warnings)
	}
}

func TestCoverageByTopic(t *testing.T) {
	coverage := testWorld().CoverageByTopic()
	if coverage["Systems - hardware"] != 1 {
		t.Errorf("coverage = %v", coverage)
	}
	if coverage["Data representation - binary numbers"] != 1 {
		t.Errorf("coverage = %v", coverage)
	}
}
