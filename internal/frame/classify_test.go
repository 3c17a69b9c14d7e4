package frame

import (
	"math/rand"
	"testing"

	"github.com/tranvu/skillframe/internal/model"
)

func TestClassifyRules(t *testing.T) {
	t.Parallel()

	bullets := map[int32]model.Bullet{
		100: {ID: 100, MoveKind: 1, LifeTime: 30},
		101: {ID: 101, MoveKind: 0, LifeTime: 40},
	}

	tests := []struct {
		name  string
		skill model.Skill
		want  Class
	}{
		{"no attack speed cooldown wins over everything",
			model.Skill{IsNoAttackSpeedCooldown: true, IsMelee: true, IsPhysical: true, FixedAttackActionCount: 3},
			ClassInstant},
		{"fixed count above one is multi hit",
			model.Skill{FixedAttackActionCount: 3, IsMelee: true, IsPhysical: true},
			ClassMultiHit},
		{"fixed count of one is not multi hit",
			model.Skill{FixedAttackActionCount: 1, IsMelee: true, IsPhysical: true},
			ClassMeleePhysical},
		{"melee physical",
			model.Skill{IsMelee: true, IsPhysical: true},
			ClassMeleePhysical},
		{"cast action 11 physical",
			model.Skill{CastActionID: 11, IsPhysical: true},
			ClassRangedPhysicalMagicCast},
		{"cast action 11 non-physical",
			model.Skill{CastActionID: 11},
			ClassMagic},
		{"cast action 9 melee",
			model.Skill{CastActionID: 9, IsMelee: true},
			ClassMeleePhysical},
		{"cast action 9 ranged",
			model.Skill{CastActionID: 9},
			ClassRangedPhysical},
		{"moving bullet",
			model.Skill{BulletID: 100},
			ClassRangedPhysical},
		{"static bullet",
			model.Skill{BulletID: 101},
			ClassMagic},
		{"unresolvable bullet behaves as static",
			model.Skill{BulletID: 999},
			ClassMagic},
		{"nothing matches falls back to melee physical",
			model.Skill{},
			ClassMeleePhysical},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Classify(tt.skill, bullets); got != tt.want {
				t.Errorf("Classify() = %v; want %v", got, tt.want)
			}
		})
	}
}

// TestClassifyTotal drives the classifier with randomized skills and checks
// that every one lands on a known class with the documented rule priority.
func TestClassifyTotal(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(42))
	bullets := map[int32]model.Bullet{
		1: {ID: 1, MoveKind: 0},
		2: {ID: 2, MoveKind: 2},
	}
	known := map[Class]bool{
		ClassInstant:                 true,
		ClassMultiHit:                true,
		ClassMeleePhysical:           true,
		ClassRangedPhysical:          true,
		ClassRangedPhysicalMagicCast: true,
		ClassMagic:                   true,
	}

	for i := 0; i < 10000; i++ {
		s := model.Skill{
			IsNoAttackSpeedCooldown: rng.Intn(2) == 0,
			IsMelee:                 rng.Intn(2) == 0,
			IsPhysical:              rng.Intn(2) == 0,
			FixedAttackActionCount:  int32(rng.Intn(6)) - 1,
			CastActionID:            int32(rng.Intn(14)),
			BulletID:                int32(rng.Intn(4)),
			WaitTime:                int32(rng.Intn(40)),
		}
		got := Classify(s, bullets)
		if !known[got] {
			t.Fatalf("Classify(%+v) = %v; not a known class", s, got)
		}

		// Rule priority spot checks.
		if s.IsNoAttackSpeedCooldown && got != ClassInstant {
			t.Fatalf("no-cooldown skill classified %v", got)
		}
		if !s.IsNoAttackSpeedCooldown && s.FixedAttackActionCount > 1 && got != ClassMultiHit {
			t.Fatalf("fixed count %d classified %v", s.FixedAttackActionCount, got)
		}
	}
}

func TestClassString(t *testing.T) {
	t.Parallel()

	want := map[Class]string{
		ClassInstant:                 "instant",
		ClassMultiHit:                "multi_hit",
		ClassMeleePhysical:           "melee_physical",
		ClassRangedPhysical:          "ranged_physical",
		ClassRangedPhysicalMagicCast: "ranged_physical_magic_cast",
		ClassMagic:                   "magic",
	}
	for class, name := range want {
		if got := class.String(); got != name {
			t.Errorf("%d.String() = %q; want %q", class, got, name)
		}
	}
}
