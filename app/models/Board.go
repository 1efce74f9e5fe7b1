package models

// Space describes one board cell. Purchasable spaces (type property, railroad,
// utility) carry price/rent data; special spaces encode their effect in Action.
type Space struct {
	Name           string `json:"name"`
	Type           string `json:"type"` // "go", "property", "railroad", "utility", "tax", "chance", "chest", "jail", "gotojail", "free"
	Group          string `json:"group"`
	Position       int    `json:"position"`
	Price          int    `json:"price"`
	Rent           int    `json:"rent"`
	MultipliedRent []int  `json:"multiplied_rent"`
	Mortgage       int    `json:"mortgage"`
	HouseCost      int    `json:"housecost"`
	Action         string `json:"action"` // numeric - balance update, otherwise type-specific
}

// Purchasable reports whether the space can be owned by a player.
func (s Space) Purchasable() bool {
	return s.Price > 0
}
