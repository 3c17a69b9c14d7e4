package frame

import (
	"sort"

	"github.com/bytedance/sonic"

	"github.com/tranvu/skillframe/internal/model"
)

// Meta describes the timing model the entries were generated under.
type Meta struct {
	TickRate             int32    `json:"tick_rate"`
	TickDurationMS       float64  `json:"tick_duration_ms"`
	MinAttackDurationS   float64  `json:"min_attack_duration_s"`
	MaxAttackDurationS   float64  `json:"max_attack_duration_s"`
	AttackSpeedAdditionS float64  `json:"attack_speed_addition_s"`
	AttackSpeedRange     [2]int32 `json:"attack_speed_range"`
	Notes                Notes    `json:"notes"`
}

// Notes documents the entry fields for human readers of the JSON file.
type Notes struct {
	TotalTick          string `json:"total_tick"`
	CooldownTick       string `json:"cooldown_tick"`
	GlobalCooldownTick string `json:"global_cooldown_tick"`
	Phases             string `json:"phases"`
	BufferWindow       string `json:"buffer_window"`
}

// Document is the full generated output: metadata plus entries grouped by
// faction display name.
type Document struct {
	Meta     Meta               `json:"_meta"`
	Factions map[string][]Entry `json:"factions"`
}

// jsonStd is the std-compatible sonic configuration: sorted map keys and
// html-safe escaping, so repeated runs marshal byte-identically.
var jsonStd = sonic.ConfigStd

func newMeta() Meta {
	return Meta{
		TickRate:             TickRate,
		TickDurationMS:       55.6, // round(1000/18, 1)
		MinAttackDurationS:   MinAttackDuration,
		MaxAttackDurationS:   MaxAttackDuration,
		AttackSpeedAdditionS: AttackSpeedAddition,
		AttackSpeedRange:     [2]int32{0, 100},
		Notes: Notes{
			TotalTick:          "Full action cycle in ticks (at base attack speed 0)",
			CooldownTick:       "Skill-specific cooldown in ticks (skill_mintimepercast_v)",
			GlobalCooldownTick: "Minimum global cooldown between any two skills (at max attack speed 100)",
			Phases:             "Action phases with tick ranges",
			BufferWindow:       "Input buffer window for queuing next skill",
		},
	}
}

// Generate assembles one entry per eligible skill and groups them by
// faction. Skills are processed in ascending ID order, so entry order
// within a faction is stable across runs.
func Generate(skills map[int32]model.Skill, props model.PropertyTable, bullets map[int32]model.Bullet) *Document {
	ids := make([]int32, 0, len(skills))
	for id := range skills {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	doc := &Document{
		Meta:     newMeta(),
		Factions: make(map[string][]Entry),
	}
	for _, id := range ids {
		s := skills[id]
		if !Eligible(s) {
			continue
		}
		entry := Assemble(s, props, bullets)
		doc.Factions[entry.Faction] = append(doc.Factions[entry.Faction], entry)
	}
	return doc
}

// EntryCount returns the total number of entries across all factions.
func (d *Document) EntryCount() int {
	var n int
	for _, entries := range d.Factions {
		n += len(entries)
	}
	return n
}

// MarshalIndent renders the document as two-space-indented JSON. Output is
// deterministic: struct field order is fixed and faction keys are sorted.
func (d *Document) MarshalIndent() ([]byte, error) {
	return jsonStd.MarshalIndent(d, "", "  ")
}

// JSON renders a single entry as compact JSON, used by the publish sink.
func (e Entry) JSON() ([]byte, error) {
	return jsonStd.Marshal(e)
}
