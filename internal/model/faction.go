package model

// factionNames maps FactionID to the faction's display name. IDs 1..10 are
// the player factions; anything else is common/shared content.
var factionNames = map[int32]string{
	1:  "Thiếu Lâm",
	2:  "Thiên Vương",
	3:  "Đường Môn",
	4:  "Ngũ Độc",
	5:  "Nga My",
	6:  "Côn Lôn",
	7:  "Thiên Nhẫn",
	8:  "Cái Bang",
	9:  "Ngũ Tiên",
	10: "Võ Đang",
}

// FactionName returns the display name for a faction ID, or "Chung"
// (common) for IDs outside the player faction range.
func FactionName(id int32) string {
	if name, ok := factionNames[id]; ok {
		return name
	}
	return "Chung"
}

// IsPlayerFaction reports whether id is one of the ten player factions.
func IsPlayerFaction(id int32) bool {
	_, ok := factionNames[id]
	return ok
}
