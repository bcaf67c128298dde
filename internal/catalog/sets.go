package catalog

// GetRelicSets returns the full relic set catalog.
func GetRelicSets() []RelicSet {
	return relicSets
}

var relicSets = []RelicSet{
	// Outer sets (cavern relics)
	{
		ID:      "Musketeer of Wild Wheat",
		Name:    "Musketeer of Wild Wheat",
		Icon:    "assets/sets/musketeer.webp",
		IsInner: false,
		Parts: map[Slot]string{
			SlotHead: "Musketeer's Wild Wheat Felt Hat",
			SlotHand: "Musketeer's Coarse Leather Gloves",
			SlotBody: "Musketeer's Wind-Hunting Shawl",
			SlotFeet: "Musketeer's Rivets Riding Boots",
		},
	},
	{
		ID:      "Hunter of Glacial Forest",
		Name:    "Hunter of Glacial Forest",
		Icon:    "assets/sets/hunter.webp",
		IsInner: false,
		Parts: map[Slot]string{
			SlotHead: "Hunter's Artaius Hood",
			SlotHand: "Hunter's Lizard Gloves",
			SlotBody: "Hunter's Ice Dragon Cloak",
			SlotFeet: "Hunter's Soft Elkskin Boots",
		},
	},
	{
		ID:      "Genius of Brilliant Stars",
		Name:    "Genius of Brilliant Stars",
		Icon:    "assets/sets/genius.webp",
		IsInner: false,
		Parts: map[Slot]string{
			SlotHead: "Genius's Ultraremote Sensing Visor",
			SlotHand: "Genius's Frequency Catcher",
			SlotBody: "Genius's Metafield Suit",
			SlotFeet: "Genius's Gravity Walker",
		},
	},
	{
		ID:      "Knight of Purity Palace",
		Name:    "Knight of Purity Palace",
		Icon:    "assets/sets/knight.webp",
		IsInner: false,
		Parts: map[Slot]string{
			SlotHead: "Knight's Forgiving Casque",
			SlotHand: "Knight's Silent Oath Ring",
			SlotBody: "Knight's Solemn Breastplate",
			SlotFeet: "Knight's Iron Boots of Order",
		},
	},
	{
		ID:      "Eagle of Twilight Line",
		Name:    "Eagle of Twilight Line",
		Icon:    "assets/sets/eagle.webp",
		IsInner: false,
		Parts: map[Slot]string{
			SlotHead: "Eagle's Beaked Helmet",
			SlotHand: "Eagle's Soaring Ring",
			SlotBody: "Eagle's Winged Suit Harness",
			SlotFeet: "Eagle's Quilted Puttees",
		},
	},
	{
		ID:      "Thief of Shooting Meteor",
		Name:    "Thief of Shooting Meteor",
		Icon:    "assets/sets/thief.webp",
		IsInner: false,
		Parts: map[Slot]string{
			SlotHead: "Thief's Myriad-Faced Mask",
			SlotHand: "Thief's Gloves With Prints",
			SlotBody: "Thief's Steel Grappling Hook",
			SlotFeet: "Thief's Meteor Boots",
		},
	},
	{
		ID:      "Band of Sizzling Thunder",
		Name:    "Band of Sizzling Thunder",
		Icon:    "assets/sets/band.webp",
		IsInner: false,
		Parts: map[Slot]string{
			SlotHead: "Band's Polarized Sunglasses",
			SlotHand: "Band's Touring Bracelet",
			SlotBody: "Band's Leather Jacket With Studs",
			SlotFeet: "Band's Ankle Boots With Rivets",
		},
	},

	// Inner sets (planar ornaments)
	{
		ID:      "Space Sealing Station",
		Name:    "Space Sealing Station",
		Icon:    "assets/sets/station.webp",
		IsInner: true,
		Parts: map[Slot]string{
			SlotSphere: "Herta's Space Station",
			SlotRope:   "Herta's Wandering Trek",
		},
	},
	{
		ID:      "Fleet of the Ageless",
		Name:    "Fleet of the Ageless",
		Icon:    "assets/sets/fleet.webp",
		IsInner: true,
		Parts: map[Slot]string{
			SlotSphere: "The Xianzhou Luofu's Celestial Ark",
			SlotRope:   "The Xianzhou Luofu's Ambrosial Arbor Vines",
		},
	},
	{
		ID:      "Pan-Cosmic Commercial Enterprise",
		Name:    "Pan-Cosmic Commercial Enterprise",
		Icon:    "assets/sets/enterprise.webp",
		IsInner: true,
		Parts: map[Slot]string{
			SlotSphere: "The IPC's Mega HQ",
			SlotRope:   "The IPC's Trade Route",
		},
	},
	{
		ID:      "Celestial Differentiator",
		Name:    "Celestial Differentiator",
		Icon:    "assets/sets/differentiator.webp",
		IsInner: true,
		Parts: map[Slot]string{
			SlotSphere: "Planet Screwllum's Mechanical Sun",
			SlotRope:   "Planet Screwllum's Ring System",
		},
	},
}
