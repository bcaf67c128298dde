package catalog

import "fmt"

// Slot is one of the six generic relic slots. Outer sets produce
// Head/Hand/Body/Feet pieces, inner (planar) sets produce Sphere/Rope pieces.
type Slot string

const (
	SlotHead   Slot = "Head"
	SlotHand   Slot = "Hand"
	SlotBody   Slot = "Body"
	SlotFeet   Slot = "Feet"
	SlotSphere Slot = "Sphere"
	SlotRope   Slot = "Rope"
)

var (
	OuterSlots = []Slot{SlotHead, SlotHand, SlotBody, SlotFeet}
	InnerSlots = []Slot{SlotSphere, SlotRope}
)

// RelicSet describes one relic set and the concrete piece name it produces
// for each generic slot it covers.
type RelicSet struct {
	ID      string          `json:"id"`
	Name    string          `json:"name"`
	Icon    string          `json:"icon"`
	IsInner bool            `json:"isInner"`
	Parts   map[Slot]string `json:"parts"`
}

// SubStatType describes a secondary stat and its single-roll value range.
type SubStatType struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	MinRoll   float64 `json:"minRoll"`
	MaxRoll   float64 `json:"maxRoll"`
	IsPercent bool    `json:"isPercent"`
}

// Character is one roster entry relics can be rated against.
type Character struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon"`
}

func SetByID(id string) (RelicSet, bool) {
	s, ok := relicSetsByID[id]
	return s, ok
}

func SubStatByID(id string) (SubStatType, bool) {
	s, ok := subStatsByID[id]
	return s, ok
}

func CharacterByID(id string) (Character, bool) {
	c, ok := charactersByID[id]
	return c, ok
}

// MainStatsForSlot returns the main stats a piece in the given generic slot
// can roll.
func MainStatsForSlot(slot Slot) []string {
	return mainStatsBySlot[slot]
}

// SlotOfPart resolves a concrete part name back to its generic slot within
// the given set. It fails when the set is unknown or the part does not belong
// to it, which is how malformed scan results are detected.
func SlotOfPart(setID, partID string) (Slot, error) {
	set, ok := relicSetsByID[setID]
	if !ok {
		return "", fmt.Errorf("unknown relic set %q", setID)
	}
	for slot, part := range set.Parts {
		if part == partID {
			return slot, nil
		}
	}
	return "", fmt.Errorf("set %q has no part %q", setID, partID)
}

var (
	relicSetsByID  = make(map[string]RelicSet, len(relicSets))
	subStatsByID   = make(map[string]SubStatType, len(subStatTypes))
	charactersByID = make(map[string]Character, len(characters))
)

func init() {
	for _, s := range relicSets {
		relicSetsByID[s.ID] = s
	}
	for _, s := range subStatTypes {
		subStatsByID[s.ID] = s
	}
	for _, c := range characters {
		charactersByID[c.ID] = c
	}
}
