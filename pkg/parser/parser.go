package parser

import (
	"strings"
)

// Command is the structured form of a raw player input line.
type Command struct {
	Action string
	Target string
	Raw    string
}

// ActionInvalid is returned for empty input. Unrecognized verbs pass
// through unchanged and are rejected by the dispatcher instead.
const ActionInvalid = "invalid"

var directions = map[string]bool{
	"north":     true,
	"south":     true,
	"east":      true,
	"west":      true,
	"northeast": true,
	"northwest": true,
	"southeast": true,
	"southwest": true,
	"up":        true,
	"down":      true,
}

// Parser turns raw input lines into commands using a synonym table.
type Parser struct {
	synonyms map[string]string
}

func New() *Parser {
	return &Parser{
		synonyms: map[string]string{
			// Movement
			"go":     "move",
			"walk":   "move",
			"run":    "move",
			"travel": "move",
			"head":   "move",
			"n":      "move north",
			"s":      "move south",
			"e":      "move east",
			"w":      "move west",
			"ne":     "move northeast",
			"nw":     "move northwest",
			"se":     "move southeast",
			"sw":     "move southwest",

			// Items
			"get":     "take",
			"grab":    "take",
			"pick":    "take",
			"collect": "take",

			// Examination
			"look":    "examine",
			"inspect": "examine",
			"check":   "examine",
			"view":    "examine",
			"x":       "examine",
			"l":       "examine",

			// Inventory
			"i":     "inventory",
			"inv":   "inventory",
			"items": "inventory",

			// Help
			"h":        "help",
			"?":        "help",
			"commands": "help",

			// Conversation
			"speak":    "talk",
			"chat":     "talk",
			"converse": "talk",

			// Answers
			"a":       "answer",
			"respond": "answer",
			"reply":   "answer",
		},
	}
}

// Parse normalizes a raw input line into a Command. It never fails;
// unknown verbs are passed through for the dispatcher to reject.
func (p *Parser) Parse(raw string) Command {
	input := strings.ToLower(strings.TrimSpace(raw))
	if input == "" {
		return Command{Action: ActionInvalid, Raw: raw}
	}

	words := strings.Fields(input)
	action := words[0]
	target := strings.Join(words[1:], " ")

	// Bare compass directions short-circuit to movement.
	if directions[action] {
		return Command{Action: "move", Target: action, Raw: raw}
	}

	if replacement, ok := p.synonyms[action]; ok {
		parts := strings.Fields(replacement)
		action = parts[0]
		// Aliases like "n" carry their own target, prepended to any
		// user-supplied one.
		if len(parts) > 1 {
			prefix := strings.Join(parts[1:], " ")
			if target != "" {
				target = prefix + " " + target
			} else {
				target = prefix
			}
		}
	}

	// A bare "examine" means look around.
	if action == "examine" && target == "" {
		action = "look"
	}

	// "take X from Y" keeps only X.
	if action == "take" {
		if idx := strings.Index(target, " from "); idx >= 0 {
			target = target[:idx]
		}
	}

	// "talk to X" strips the leading "to ".
	if action == "talk" {
		target = strings.TrimPrefix(target, "to ")
	}

	return Command{Action: action, Target: target, Raw: raw}
}

// Examples lists the canonical command reference shown by "help".
func (p *Parser) Examples() []string {
	return []string{
		"look - Look around the current location",
		"examine [object] - Look at something specific",
		"move [direction] - Move in a direction (north, south, east, west)",
		"take [item] - Pick up an item",
		"drop [item] - Drop an item from your inventory",
		"inventory - Check what you're carrying",
		"talk to [npc] - Talk to a character",
		"quiz [topic] - Take a quiz on a specific topic",
		"answer [response] - Answer a question in a quiz or challenge",
		"use [item] - Use an item from your inventory",
		"help - Show this help message",
		"save - Save your game progress",
		"load - Load a saved game",
		"restart - Start the game over from the beginning",
	}
}
