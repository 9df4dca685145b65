package disaster

// Info carries display metadata for a disaster kind
type Info struct {
	Kind        Kind   `json:"kind"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Color       string `json:"color"`
}

var catalog = map[Kind]Info{
	KindEarthquake: {
		Kind:        KindEarthquake,
		Name:        "Earthquake",
		Description: "Ground shaking and structural damage",
		Color:       "#f59e0b",
	},
	KindFlood: {
		Kind:        KindFlood,
		Name:        "Flood",
		Description: "Rising water levels and inundation",
		Color:       "#3b82f6",
	},
	KindFire: {
		Kind:        KindFire,
		Name:        "Fire",
		Description: "Spreading flames and smoke",
		Color:       "#ef4444",
	},
	KindHurricane: {
		Kind:        KindHurricane,
		Name:        "Hurricane",
		Description: "High winds and flying debris",
		Color:       "#8b5cf6",
	},
}

// Lookup returns the catalog entry for k, falling back to DefaultKind
func Lookup(k Kind) Info {
	return catalog[k.Normalize()]
}

// Catalog returns all entries in display order
func Catalog() []Info {
	kinds := AllKinds()
	out := make([]Info, len(kinds))
	for i, k := range kinds {
		out[i] = catalog[k]
	}
	return out
}
