package rating

import (
	"testing"

	"github.com/relictools/relicrater/internal/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	setMusketeer = "Musketeer of Wild Wheat"
	setHunter    = "Hunter of Glacial Forest"
	setStation   = "Space Sealing Station"
	setFleet     = "Fleet of the Ageless"

	partMusketeerHead = "Musketeer's Wild Wheat Felt Hat"
	partMusketeerHand = "Musketeer's Coarse Leather Gloves"
	partMusketeerBody = "Musketeer's Wind-Hunting Shawl"
	partMusketeerFeet = "Musketeer's Rivets Riding Boots"
	partHunterHead    = "Hunter's Artaius Hood"
	partStationSphere = "Herta's Space Station"
	partStationRope   = "Herta's Wandering Trek"
)

func TestAffectedParts(t *testing.T) {
	tests := []struct {
		name     string
		setNames []string
		slot     catalog.Slot
		expected []string
	}{
		{"single outer set", []string{setMusketeer}, catalog.SlotHead, []string{partMusketeerHead}},
		{"two outer sets", []string{setMusketeer, setHunter}, catalog.SlotHead, []string{partMusketeerHead, partHunterHead}},
		{"inner slot on outer set", []string{setMusketeer}, catalog.SlotSphere, nil},
		{"inner set", []string{setStation}, catalog.SlotRope, []string{partStationRope}},
		{"unknown set skipped", []string{"No Such Set", setMusketeer}, catalog.SlotHand, []string{partMusketeerHand}},
		{"empty set list", nil, catalog.SlotHead, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, AffectedParts(tt.setNames, tt.slot))
		})
	}
}

func TestApplyMainStatSelectionReplacesNotMerges(t *testing.T) {
	rule := Rule{
		SetNames: []string{setMusketeer, setHunter},
		PartNames: map[string]PartPreference{
			partMusketeerHead: {ValuableMain: []string{"HP"}},
		},
	}

	ApplyMainStatSelection(&rule, catalog.SlotHead, []string{"ATK%", "SPD"})

	require.Contains(t, rule.PartNames, partMusketeerHead)
	require.Contains(t, rule.PartNames, partHunterHead)
	// The previous HP selection is overwritten, not merged.
	assert.Equal(t, []string{"ATK%", "SPD"}, rule.PartNames[partMusketeerHead].ValuableMain)
	assert.Equal(t, []string{"ATK%", "SPD"}, rule.PartNames[partHunterHead].ValuableMain)
}

func TestApplyMainStatSelectionEmptyDeletesEntries(t *testing.T) {
	rule := Rule{
		SetNames: []string{setMusketeer},
		PartNames: map[string]PartPreference{
			partMusketeerHead: {ValuableMain: []string{"HP"}},
			partMusketeerBody: {ValuableMain: []string{"CRIT Rate"}},
		},
	}

	ApplyMainStatSelection(&rule, catalog.SlotHead, nil)

	assert.NotContains(t, rule.PartNames, partMusketeerHead)
	// Other slots stay untouched.
	assert.Contains(t, rule.PartNames, partMusketeerBody)
}

func TestApplyMainStatSelectionNilPartNames(t *testing.T) {
	rule := Rule{SetNames: []string{setMusketeer}}

	ApplyMainStatSelection(&rule, catalog.SlotFeet, []string{"SPD"})

	require.Contains(t, rule.PartNames, partMusketeerFeet)
	assert.Equal(t, []string{"SPD"}, rule.PartNames[partMusketeerFeet].ValuableMain)
}

func mixedRule() Rule {
	return Rule{
		SetNames: []string{setMusketeer, setStation},
		PartNames: map[string]PartPreference{
			partMusketeerHead: {ValuableMain: []string{"HP"}},
			partMusketeerFeet: {ValuableMain: []string{"SPD"}},
			partStationSphere: {ValuableMain: []string{"ATK%"}},
			partStationRope:   {ValuableMain: []string{"Energy Regen"}},
		},
		SubStats:   []string{"CRIT Rate", "CRIT DMG"},
		Characters: []string{"Seele"},
	}
}

func TestNormalizeRuleForSetsCascade(t *testing.T) {
	t.Run("losing all inner sets clears sphere and rope", func(t *testing.T) {
		rule := mixedRule()

		NormalizeRuleForSets(&rule, []string{setMusketeer})

		assert.NotContains(t, rule.PartNames, partStationSphere)
		assert.NotContains(t, rule.PartNames, partStationRope)
		assert.Contains(t, rule.PartNames, partMusketeerHead)
		assert.Contains(t, rule.PartNames, partMusketeerFeet)
	})

	t.Run("losing all outer sets clears head hand body feet", func(t *testing.T) {
		rule := mixedRule()

		NormalizeRuleForSets(&rule, []string{setStation})

		assert.NotContains(t, rule.PartNames, partMusketeerHead)
		assert.NotContains(t, rule.PartNames, partMusketeerFeet)
		assert.Contains(t, rule.PartNames, partStationSphere)
		assert.Contains(t, rule.PartNames, partStationRope)
	})

	t.Run("empty set list resets the rule but keeps characters", func(t *testing.T) {
		rule := mixedRule()

		NormalizeRuleForSets(&rule, nil)

		assert.Empty(t, rule.PartNames)
		assert.Empty(t, rule.SubStats)
		assert.Equal(t, []string{"Seele"}, rule.Characters)
	})

	t.Run("parts of removed sets are pruned even within a family", func(t *testing.T) {
		rule := mixedRule()

		// Swap Space Sealing Station for Fleet of the Ageless: still an
		// inner set, but the station pieces are no longer reachable.
		NormalizeRuleForSets(&rule, []string{setMusketeer, setFleet})

		assert.NotContains(t, rule.PartNames, partStationSphere)
		assert.NotContains(t, rule.PartNames, partStationRope)
		assert.Contains(t, rule.PartNames, partMusketeerHead)
	})

	t.Run("substats survive a partial cascade", func(t *testing.T) {
		rule := mixedRule()

		NormalizeRuleForSets(&rule, []string{setMusketeer})

		assert.Equal(t, []string{"CRIT Rate", "CRIT DMG"}, rule.SubStats)
		assert.Equal(t, []string{"Seele"}, rule.Characters)
	})
}

func TestMatchingRules(t *testing.T) {
	ts := TemplateStore{
		"t1": Template{
			Name: "Main",
			Rules: map[string]Rule{
				"r1": {SetNames: []string{setMusketeer}},
				"r2": {SetNames: []string{setHunter}},
			},
		},
		"t2": Template{
			Name: "Alt",
			Rules: map[string]Rule{
				"r3": {SetNames: []string{setHunter, setMusketeer}},
			},
		},
	}

	matches := MatchingRules(ts, setMusketeer)

	require.Len(t, matches, 2)
	ids := []string{matches[0].RuleID, matches[1].RuleID}
	assert.ElementsMatch(t, []string{"r1", "r3"}, ids)
}
