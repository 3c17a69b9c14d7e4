package data

import (
	"encoding/xml"
	"fmt"
	"log/slog"
	"os"

	"github.com/tranvu/skillframe/internal/model"
)

// --- XML structures (SkillPropertiesLua.xml) ---

type xmlPropertiesDoc struct {
	Skills []xmlPropertySet `xml:"Skill"`
}

type xmlPropertySet struct {
	Name    string      `xml:"Name,attr"`
	Symbols []xmlSymbol `xml:"Symbol"`
}

type xmlSymbol struct {
	Name   string     `xml:"Name,attr"`
	Values []xmlValue `xml:"Value"`
}

type xmlValue struct {
	Levels []xmlSkillLevelValue `xml:"SkillLevelValue"`
}

type xmlSkillLevelValue struct {
	Level string `xml:"Level,attr"`
	Value string `xml:"Value,attr"`
}

// LoadProperties parses SkillPropertiesLua.xml into the per-skill symbol
// table: property-set name → symbol → level → value. When the same level
// appears under several <Value> groups the first occurrence wins.
func LoadProperties(path string) (model.PropertyTable, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading skill properties: %w", err)
	}

	var doc xmlPropertiesDoc
	if err := xml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	table := make(model.PropertyTable, len(doc.Skills))
	for _, set := range doc.Skills {
		symbols := make(map[string]map[int32]float64, len(set.Symbols))
		for _, sym := range set.Symbols {
			levels := make(map[int32]float64)
			for _, val := range sym.Values {
				for _, lvl := range val.Levels {
					level := attrInt32(lvl.Level, 0)
					if _, ok := levels[level]; !ok {
						levels[level] = attrFloat64(lvl.Value, 0)
					}
				}
			}
			symbols[sym.Name] = levels
		}
		table[set.Name] = symbols
	}

	slog.Info("loaded skill property sets", "count", len(table), "path", path)
	return table, nil
}
