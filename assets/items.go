package assets

// ItemDef is one row of the built-in item table.
// MaxStack is the most units of the item a single inventory slot can hold.
type ItemDef struct {
	Code        string
	Name        string
	Glyph       string
	Description string
	MaxStack    int
}

// Items is the default item catalog, in display order.
var Items = []ItemDef{
	// Gems
	{Code: "ruby", Name: "Ruby", Glyph: "🔴", MaxStack: 3, Description: "A blood-red gem. Rare enough that three fill a pouch."},
	{Code: "sapphire", Name: "Sapphire", Glyph: "🔷", MaxStack: 5, Description: "A cold blue stone cut along its grain."},
	{Code: "emerald", Name: "Emerald", Glyph: "💚", MaxStack: 5, Description: "Green as spring moss and twice as hard to find."},
	// Consumables
	{Code: "healing_potion", Name: "Healing Potion", Glyph: "🧪", MaxStack: 10, Description: "Restores a little health when consumed."},
	{Code: "bread", Name: "Bread", Glyph: "🍞", MaxStack: 20, Description: "Yesterday's loaf. Still edible."},
	{Code: "scroll", Name: "Scroll", Glyph: "📜", MaxStack: 8, Description: "A single-use spell, sealed with wax."},
	// Materials
	{Code: "gold_coin", Name: "Gold Coin", Glyph: "🪙", MaxStack: 99, Description: "Currency minted in Emberveil."},
	{Code: "iron_ore", Name: "Iron Ore", Glyph: "🪨", MaxStack: 30, Description: "Unrefined ore, heavy in the hand."},
	// Equipment does not stack.
	{Code: "iron_sword", Name: "Iron Sword", Glyph: "🗡️", MaxStack: 1, Description: "A plain, well-balanced blade."},
	{Code: "wooden_shield", Name: "Wooden Shield", Glyph: "🛡️", MaxStack: 1, Description: "Oak planks bound with iron."},
}
