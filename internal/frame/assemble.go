package frame

import (
	"github.com/tranvu/skillframe/internal/model"
	"github.com/tranvu/skillframe/internal/translit"
)

// Entry is the generated frame-data record for one skill. Field names and
// order are the compatibility surface for combat-prediction consumers.
type Entry struct {
	SkillID            int32           `json:"skill_id"`
	SkillName          string          `json:"skill_name"`
	SkillNameVI        string          `json:"skill_name_vi"`
	Faction            string          `json:"faction"`
	TotalTick          int32           `json:"total_tick"`
	CooldownTick       int32           `json:"cooldown_tick"`
	GlobalCooldownTick int32           `json:"global_cooldown_tick"`
	Phases             Timeline        `json:"phases"`
	Input              InputSpec       `json:"input"`
	Properties         EntryProperties `json:"properties"`
	Bullet             *BulletInfo     `json:"bullet,omitempty"`
	StateDurationTick  int32           `json:"state_duration_tick,omitempty"`
}

// InputSpec carries client input handling parameters.
type InputSpec struct {
	BufferWindow int32 `json:"buffer_window"`
}

// EntryProperties echoes the static skill attributes that drove
// classification.
type EntryProperties struct {
	Type             string `json:"type"`
	IsMelee          bool   `json:"is_melee"`
	IsPhysical       bool   `json:"is_physical"`
	IsDamageSkill    bool   `json:"is_damage_skill"`
	CastActionID     int32  `json:"cast_action_id"`
	FixedAttackCount int32  `json:"fixed_attack_count,omitempty"`
}

// BulletInfo summarizes the skill's projectile template.
type BulletInfo struct {
	ID             int32  `json:"id"`
	Name           string `json:"name"`
	LifeTime       int32  `json:"life_time"`
	MoveSpeed      int32  `json:"move_speed"`
	ExplodeRadius  int32  `json:"explode_radius"`
	DamageInterval int32  `json:"damage_interval"`
}

// Assemble builds the frame-data entry for one skill: classification, phase
// timeline and cooldown/state lookups merged into a single record.
func Assemble(s model.Skill, props model.PropertyTable, bullets map[int32]model.Bullet) Entry {
	propName := s.Properties
	if propName == model.PropertiesEmpty {
		propName = ""
	}

	var cooldownTick, stateTick int32
	if propName != "" {
		cooldownTick = int32(props.SymbolAt(propName, model.SymbolMinTimePerCast, 1))
		stateTick = int32(props.SymbolAt(propName, model.SymbolStateTime, 1))
	}

	class := Classify(s, bullets)
	totalTick, gcd, timeline := ComputePhases(s, bullets, class)

	entry := Entry{
		SkillID:            s.ID,
		SkillName:          translit.SnakeCase(s.Name),
		SkillNameVI:        s.Name,
		Faction:            model.FactionName(s.FactionID),
		TotalTick:          totalTick,
		CooldownTick:       cooldownTick,
		GlobalCooldownTick: gcd,
		Phases:             timeline,
		Input:              InputSpec{BufferWindow: InputBufferWindow},
		Properties: EntryProperties{
			Type:          class.String(),
			IsMelee:       s.IsMelee,
			IsPhysical:    s.IsPhysical,
			IsDamageSkill: s.IsDamageSkill,
			CastActionID:  s.CastActionID,
		},
	}

	if s.BulletID > 0 {
		if b, ok := bullets[s.BulletID]; ok {
			entry.Bullet = &BulletInfo{
				ID:             b.ID,
				Name:           b.Name,
				LifeTime:       b.LifeTime,
				MoveSpeed:      b.MoveSpeed,
				ExplodeRadius:  b.ExplodeRadius,
				DamageInterval: b.DamageInterval,
			}
		}
	}

	if s.FixedAttackActionCount > 1 {
		entry.Properties.FixedAttackCount = s.FixedAttackActionCount
	}

	if stateTick > 0 {
		entry.StateDurationTick = stateTick
	}

	return entry
}

// Eligible reports whether a skill belongs in the output document: an
// active-type skill of a player faction with a property set.
func Eligible(s model.Skill) bool {
	switch s.Type {
	case 1, 2, 4, 5: // active, buff/toggle, aura, combat
	default:
		return false
	}
	if !model.IsPlayerFaction(s.FactionID) {
		return false
	}
	return s.Properties != model.PropertiesEmpty
}
