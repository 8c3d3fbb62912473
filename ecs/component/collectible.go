package component

// Collectible is one star of the fixed set.
type Collectible struct {
	Index int
	// ColumnX and RowY are where the star is placed on every respawn.
	ColumnX float64
	RowY    float64
	Bounce  float64
	Active  bool
}

var CollectibleComponent = NewComponent[Collectible]()
