package model

// Symbol names consumed from SkillPropertiesLua.xml.
const (
	// SymbolMinTimePerCast is the per-cast minimum time between casts,
	// in raw ticks at 18 Hz.
	SymbolMinTimePerCast = "skill_mintimepercast_v"
	// SymbolStateTime is the state/buff duration, in raw ticks.
	SymbolStateTime = "skill_statetime"
)

// PropertyTable maps property-set name → symbol name → skill level → value,
// as parsed from SkillPropertiesLua.xml. Read-only after loading.
type PropertyTable map[string]map[string]map[int32]float64

// SymbolAt resolves a symbol value for a property set. The set is looked up
// first under name, then under name+"_1" (property sets with level variants
// store the base values under the suffixed key). The value is read at the
// requested level, falling back to the lowest level present. Returns 0 when
// the set or symbol is absent everywhere.
func (t PropertyTable) SymbolAt(name, symbol string, level int32) float64 {
	for _, candidate := range [2]string{name, name + "_1"} {
		symbols, ok := t[candidate]
		if !ok {
			continue
		}
		levels, ok := symbols[symbol]
		if !ok {
			continue
		}
		if v, ok := levels[level]; ok {
			return v
		}
		if v, ok := lowestLevel(levels); ok {
			return v
		}
	}
	return 0
}

func lowestLevel(levels map[int32]float64) (float64, bool) {
	var (
		minLevel int32
		found    bool
	)
	for lvl := range levels {
		if !found || lvl < minLevel {
			minLevel = lvl
			found = true
		}
	}
	if !found {
		return 0, false
	}
	return levels[minLevel], true
}
