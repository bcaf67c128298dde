package catalog

// GetAllSubStatTypes returns every sub-stat a relic can roll, with the value
// range of a single roll at max rarity.
func GetAllSubStatTypes() []SubStatType {
	return subStatTypes
}

var subStatTypes = []SubStatType{
	{ID: "HP", Name: "HP", MinRoll: 33.87, MaxRoll: 42.34, IsPercent: false},
	{ID: "ATK", Name: "ATK", MinRoll: 16.94, MaxRoll: 21.17, IsPercent: false},
	{ID: "DEF", Name: "DEF", MinRoll: 16.94, MaxRoll: 21.17, IsPercent: false},
	{ID: "HP%", Name: "HP%", MinRoll: 3.456, MaxRoll: 4.32, IsPercent: true},
	{ID: "ATK%", Name: "ATK%", MinRoll: 3.456, MaxRoll: 4.32, IsPercent: true},
	{ID: "DEF%", Name: "DEF%", MinRoll: 4.32, MaxRoll: 5.4, IsPercent: true},
	{ID: "CRIT Rate", Name: "CRIT Rate", MinRoll: 2.592, MaxRoll: 3.24, IsPercent: true},
	{ID: "CRIT DMG", Name: "CRIT DMG", MinRoll: 5.184, MaxRoll: 6.48, IsPercent: true},
	{ID: "Effect Hit Rate", Name: "Effect Hit Rate", MinRoll: 3.456, MaxRoll: 4.32, IsPercent: true},
	{ID: "Effect RES", Name: "Effect RES", MinRoll: 3.456, MaxRoll: 4.32, IsPercent: true},
	{ID: "Break Effect", Name: "Break Effect", MinRoll: 5.184, MaxRoll: 6.48, IsPercent: true},
	{ID: "SPD", Name: "SPD", MinRoll: 2.0, MaxRoll: 2.6, IsPercent: false},
}

var mainStatsBySlot = map[Slot][]string{
	SlotHead: {"HP"},
	SlotHand: {"ATK"},
	SlotBody: {
		"HP%", "ATK%", "DEF%",
		"CRIT Rate", "CRIT DMG",
		"Outgoing Healing", "Effect Hit Rate",
	},
	SlotFeet: {"HP%", "ATK%", "DEF%", "SPD"},
	SlotSphere: {
		"HP%", "ATK%", "DEF%",
		"Physical DMG", "Fire DMG", "Ice DMG", "Lightning DMG",
		"Wind DMG", "Quantum DMG", "Imaginary DMG",
	},
	SlotRope: {"HP%", "ATK%", "DEF%", "Break Effect", "Energy Regen"},
}
