package game

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/digitalquest/quest-engine/pkg/world"
)

var titleCaser = cases.Title(language.English)

// Describe renders the current location, for the opening screen and
// after movement.
func (e *Engine) Describe() string {
	return e.describeLocation()
}

func (e *Engine) describeLocation() string {
	loc, ok := e.world.Locations[e.gs.CurrentLocation]
	if !ok {
		return "Error: current location not found."
	}
	e.gs.MarkVisited(loc.ID)

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n%s\n", loc.Name, loc.Description)

	if len(loc.Exits) > 0 {
		parts := make([]string, 0, len(loc.Exits))
		for _, exit := range loc.Exits {
			parts = append(parts, fmt.Sprintf("%s to the %s", titleCaser.String(exit.Direction), exit.DestinationName))
		}
		fmt.Fprintf(&b, "Exits: %s\n", strings.Join(parts, ", "))
	}

	if items := e.world.ItemsAt(loc.ID); len(items) > 0 {
		names := make([]string, 0, len(items))
		for _, item := range items {
			names = append(names, item.Name)
		}
		fmt.Fprintf(&b, "You can see: %s\n", strings.Join(names, ", "))
	}

	if npcs := e.world.NPCsAt(loc.ID); len(npcs) > 0 {
		names := make([]string, 0, len(npcs))
		for _, npc := range npcs {
			names = append(names, npc.Name)
		}
		fmt.Fprintf(&b, "Present here: %s\n", strings.Join(names, ", "))
	}

	if challenges := e.world.ChallengesAt(loc.ID); len(challenges) > 0 {
		titles := make([]string, 0, len(challenges))
		for _, c := range challenges {
			titles = append(titles, c.Title)
		}
		fmt.Fprintf(&b, "Challenges: %s\n", strings.Join(titles, ", "))
	}

	if dangers := e.world.DangersAt(loc.ID); len(dangers) > 0 {
		descs := make([]string, 0, len(dangers))
		for _, d := range dangers {
			descs = append(descs, d.Description)
		}
		fmt.Fprintf(&b, "You notice: %s\n", strings.Join(descs, ", "))
	}

	return strings.TrimRight(b.String(), "\n")
}

// examine resolves a target against, in order: items here, carried
// items, NPCs, challenge titles and danger descriptions. Matching a
// challenge or danger starts that encounter.
func (e *Engine) examine(target string) *CommandResult {
	locID := e.gs.CurrentLocation

	if item := world.FindItem(e.world.ItemsAt(locID), target); item != nil {
		return &CommandResult{Message: fmt.Sprintf("%s: %s", item.Name, item.Description)}
	}
	if item := world.FindItem(e.world.CarriedItems(), target); item != nil {
		return &CommandResult{Message: fmt.Sprintf("%s: %s", item.Name, item.Description)}
	}

	if npc := world.FindNPC(e.world.NPCsAt(locID), target); npc != nil {
		return &CommandResult{Message: e.introduceNPC(npc), NPCInteraction: npc.ID}
	}

	lower := strings.ToLower(target)
	for _, c := range e.world.ChallengesAt(locID) {
		if strings.Contains(strings.ToLower(c.Title), lower) {
			return e.startChallenge(c)
		}
	}
	for _, d := range e.world.DangersAt(locID) {
		if strings.Contains(strings.ToLower(d.Title), lower) ||
			strings.Contains(strings.ToLower(d.Description), lower) {
			return e.triggerDanger(d)
		}
	}

	return &CommandResult{Message: fmt.Sprintf("You don't see anything special about the %s.", target)}
}

func (e *Engine) move(direction string) *CommandResult {
	if direction == "" {
		return &CommandResult{Message: "Which direction do you want to go?"}
	}

	loc, ok := e.world.Locations[e.gs.CurrentLocation]
	if !ok {
		return &CommandResult{Message: "Error: current location not found."}
	}

	exit := loc.Exit(direction)
	if exit == nil {
		return &CommandResult{Message: fmt.Sprintf("You can't go %s from here.", direction)}
	}
	if _, ok := e.world.Locations[exit.Destination]; !ok {
		return &CommandResult{Message: "Error: destination location not found."}
	}

	e.gs.MoveTo(exit.Destination)
	return &CommandResult{Message: e.describeLocation(), LocationChanged: true}
}

func (e *Engine) take(itemName string) *CommandResult {
	if itemName == "" {
		return &CommandResult{Message: "What do you want to take?"}
	}

	item := world.FindItem(e.world.ItemsAt(e.gs.CurrentLocation), itemName)
	if item == nil {
		return &CommandResult{Message: fmt.Sprintf("There's no %s here to take.", itemName)}
	}
	if !item.CanTake {
		return &CommandResult{Message: fmt.Sprintf("You can't take the %s.", itemName)}
	}

	e.gs.AddToInventory(item.ID)
	item.Location = world.LocationInventory
	return &CommandResult{Message: fmt.Sprintf("You take the %s.", item.Name)}
}

func (e *Engine) drop(itemName string) *CommandResult {
	if itemName == "" {
		return &CommandResult{Message: "What do you want to drop?"}
	}

	item := world.FindItem(e.world.CarriedItems(), itemName)
	if item == nil {
		return &CommandResult{Message: fmt.Sprintf("You don't have a %s in your inventory.", itemName)}
	}

	e.gs.RemoveFromInventory(item.ID)
	item.Location = e.gs.CurrentLocation
	return &CommandResult{Message: fmt.Sprintf("You drop the %s.", item.Name)}
}

func (e *Engine) showInventory() string {
	items := e.world.CarriedItems()
	if len(items) == 0 {
		return "Your inventory is empty."
	}

	var b strings.Builder
	b.WriteString("Inventory:")
	for _, item := range items {
		fmt.Fprintf(&b, "\n  %s - %s", item.Name, item.Description)
	}
	return b.String()
}

func (e *Engine) talk(npcName string) *CommandResult {
	if npcName == "" {
		return &CommandResult{Message: "Who do you want to talk to?"}
	}

	npc := world.FindNPC(e.world.NPCsAt(e.gs.CurrentLocation), npcName)
	if npc == nil {
		return &CommandResult{Message: fmt.Sprintf("There's no %s here to talk to.", npcName)}
	}
	return &CommandResult{Message: e.introduceNPC(npc), NPCInteraction: npc.ID}
}

// introduceNPC renders an NPC's greeting plus the quiz topics they
// offer.
func (e *Engine) introduceNPC(npc *world.NPC) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s", npc.Name, npc.Introduction)
	if len(npc.QuizOptions) > 0 {
		b.WriteString("\nAvailable quizzes:")
		for _, topic := range npc.QuizOptions {
			fmt.Fprintf(&b, "\n  %s (type 'quiz %s')", topic, strings.ToLower(topic))
		}
	}
	return b.String()
}

func (e *Engine) use(itemName string) *CommandResult {
	if itemName == "" {
		return &CommandResult{Message: "What do you want to use?"}
	}

	item := world.FindItem(e.world.CarriedItems(), itemName)
	if item == nil {
		return &CommandResult{Message: fmt.Sprintf("You don't have a %s to use.", itemName)}
	}
	if item.UseText != "" {
		return &CommandResult{Message: item.UseText}
	}
	return &CommandResult{Message: fmt.Sprintf("You use the %s, but nothing special happens.", item.Name)}
}

func (e *Engine) help() string {
	var b strings.Builder
	b.WriteString("Available commands:")
	for _, example := range e.parser.Examples() {
		fmt.Fprintf(&b, "\n  %s", example)
	}
	return b.String()
}
