package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetPartsMatchSlotFamily(t *testing.T) {
	outer := map[Slot]bool{SlotHead: true, SlotHand: true, SlotBody: true, SlotFeet: true}
	inner := map[Slot]bool{SlotSphere: true, SlotRope: true}

	for _, set := range GetRelicSets() {
		require.NotEmpty(t, set.Parts, "set %s has no parts", set.ID)
		for slot := range set.Parts {
			if set.IsInner {
				assert.True(t, inner[slot], "inner set %s maps outer slot %s", set.ID, slot)
			} else {
				assert.True(t, outer[slot], "outer set %s maps inner slot %s", set.ID, slot)
			}
		}
	}
}

func TestSlotOfPart(t *testing.T) {
	tests := []struct {
		name    string
		setID   string
		partID  string
		slot    Slot
		wantErr bool
	}{
		{"outer part", "Musketeer of Wild Wheat", "Musketeer's Wild Wheat Felt Hat", SlotHead, false},
		{"inner part", "Space Sealing Station", "Herta's Wandering Trek", SlotRope, false},
		{"part of another set", "Musketeer of Wild Wheat", "Hunter's Artaius Hood", "", true},
		{"unknown set", "No Such Set", "whatever", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slot, err := SlotOfPart(tt.setID, tt.partID)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.slot, slot)
		})
	}
}

func TestSubStatRollRangesAreSane(t *testing.T) {
	for _, sub := range GetAllSubStatTypes() {
		assert.Greater(t, sub.MinRoll, 0.0, sub.ID)
		assert.GreaterOrEqual(t, sub.MaxRoll, sub.MinRoll, sub.ID)
	}
}

func TestMainStatsForSlot(t *testing.T) {
	assert.Equal(t, []string{"HP"}, MainStatsForSlot(SlotHead))
	assert.Equal(t, []string{"ATK"}, MainStatsForSlot(SlotHand))
	assert.Contains(t, MainStatsForSlot(SlotBody), "CRIT Rate")
	assert.Contains(t, MainStatsForSlot(SlotFeet), "SPD")
	assert.Contains(t, MainStatsForSlot(SlotSphere), "Quantum DMG")
	assert.Contains(t, MainStatsForSlot(SlotRope), "Energy Regen")
}

func TestLookups(t *testing.T) {
	set, ok := SetByID("Genius of Brilliant Stars")
	require.True(t, ok)
	assert.False(t, set.IsInner)

	_, ok = SetByID("Nope")
	assert.False(t, ok)

	sub, ok := SubStatByID("CRIT DMG")
	require.True(t, ok)
	assert.InDelta(t, 6.48, sub.MaxRoll, 1e-9)

	c, ok := CharacterByID("Seele")
	require.True(t, ok)
	assert.Equal(t, "Seele", c.Name)

	assert.NotEmpty(t, GetCharacters())
}
