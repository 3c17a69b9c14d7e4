package frame

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tranvu/skillframe/internal/model"
)

func testProps() model.PropertyTable {
	return model.PropertyTable{
		"tl_kim_cang": {
			model.SymbolMinTimePerCast: {1: 54},
			model.SymbolStateTime:      {1: 0},
		},
		"nd_doc_chau_1": {
			model.SymbolMinTimePerCast: {1: 108},
			model.SymbolStateTime:      {1: 360},
		},
	}
}

func TestAssembleMergesLookups(t *testing.T) {
	t.Parallel()

	s := model.Skill{
		ID:            101,
		Name:          "Kim Cang Chưởng",
		Type:          1,
		FactionID:     1,
		IsMelee:       true,
		IsPhysical:    true,
		IsDamageSkill: true,
		CastActionID:  9,
		Properties:    "tl_kim_cang",
	}
	entry := Assemble(s, testProps(), nil)

	assert.Equal(t, int32(101), entry.SkillID)
	assert.Equal(t, "kim_cang_chuong", entry.SkillName)
	assert.Equal(t, "Kim Cang Chưởng", entry.SkillNameVI)
	assert.Equal(t, "Thiếu Lâm", entry.Faction)
	assert.Equal(t, int32(54), entry.CooldownTick)
	assert.Equal(t, int32(6), entry.GlobalCooldownTick)
	assert.Equal(t, "melee_physical", entry.Properties.Type)
	assert.True(t, entry.Properties.IsDamageSkill)
	assert.Equal(t, int32(2), entry.Input.BufferWindow)
	assert.Zero(t, entry.StateDurationTick)
	assert.Zero(t, entry.Properties.FixedAttackCount)
	assert.Nil(t, entry.Bullet)
}

func TestAssemblePropertySuffixFallback(t *testing.T) {
	t.Parallel()

	// Property set stored only under the _1 suffix.
	s := model.Skill{ID: 102, FactionID: 4, Type: 2, Properties: "nd_doc_chau"}
	entry := Assemble(s, testProps(), nil)

	assert.Equal(t, int32(108), entry.CooldownTick)
	assert.Equal(t, int32(360), entry.StateDurationTick)
}

func TestAssembleEmptyProperties(t *testing.T) {
	t.Parallel()

	s := model.Skill{ID: 103, FactionID: 2, Type: 1, Properties: model.PropertiesEmpty}
	entry := Assemble(s, testProps(), nil)

	assert.Zero(t, entry.CooldownTick)
	assert.Zero(t, entry.StateDurationTick)
}

func TestAssembleBulletBlock(t *testing.T) {
	t.Parallel()

	bullets := map[int32]model.Bullet{
		55: {ID: 55, Name: "phi_tieu", MoveKind: 1, LifeTime: 27, MoveSpeed: 1200, ExplodeRadius: 0, DamageInterval: 0},
	}
	s := model.Skill{ID: 104, FactionID: 3, Type: 1, BulletID: 55, Properties: "tl_kim_cang"}
	entry := Assemble(s, testProps(), bullets)

	require.NotNil(t, entry.Bullet)
	assert.Equal(t, int32(55), entry.Bullet.ID)
	assert.Equal(t, "phi_tieu", entry.Bullet.Name)
	assert.Equal(t, int32(27), entry.Bullet.LifeTime)
	assert.Equal(t, "ranged_physical", entry.Properties.Type)

	// Unresolvable bullet id: classified magic, no bullet block.
	s.BulletID = 56
	entry = Assemble(s, testProps(), bullets)
	assert.Nil(t, entry.Bullet)
	assert.Equal(t, "magic", entry.Properties.Type)
}

func TestAssembleFixedAttackCount(t *testing.T) {
	t.Parallel()

	s := model.Skill{ID: 105, FactionID: 8, Type: 5, FixedAttackActionCount: 4, Properties: "tl_kim_cang"}
	entry := Assemble(s, testProps(), nil)

	assert.Equal(t, "multi_hit", entry.Properties.Type)
	assert.Equal(t, int32(4), entry.Properties.FixedAttackCount)
}

func TestEligible(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		skill model.Skill
		want  bool
	}{
		{"active player skill", model.Skill{Type: 1, FactionID: 1, Properties: "x"}, true},
		{"buff type", model.Skill{Type: 2, FactionID: 10, Properties: "x"}, true},
		{"aura type", model.Skill{Type: 4, FactionID: 5, Properties: "x"}, true},
		{"combat type", model.Skill{Type: 5, FactionID: 7, Properties: "x"}, true},
		{"passive type", model.Skill{Type: 3, FactionID: 1, Properties: "x"}, false},
		{"monster faction", model.Skill{Type: 1, FactionID: 11, Properties: "x"}, false},
		{"common faction", model.Skill{Type: 1, FactionID: 0, Properties: "x"}, false},
		{"no properties", model.Skill{Type: 1, FactionID: 1, Properties: model.PropertiesEmpty}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Eligible(tt.skill))
		})
	}
}
