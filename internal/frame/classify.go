// Package frame derives deterministic, tick-quantized frame timelines for
// combat skills: a behavioral classification plus a per-class phase layout
// (cast delay, damage, hit-stop, recovery lock, combo window, idle)
// expressed in integer ticks at the fixed 18 Hz simulation rate.
package frame

import "github.com/tranvu/skillframe/internal/model"

// Class is the behavioral class of a skill. It selects the phase layout and
// is emitted verbatim as properties.type in the output document.
type Class int

const (
	// ClassInstant — skills exempt from attack-speed cooldown; fixed
	// six-tick cycle.
	ClassInstant Class = iota
	// ClassMultiHit — fixed multi-hit skills (FixedAttackActionCount > 1).
	ClassMultiHit
	// ClassMeleePhysical — melee physical strikes; also the fallback class.
	ClassMeleePhysical
	// ClassRangedPhysical — projectile skills with physical delivery.
	ClassRangedPhysical
	// ClassRangedPhysicalMagicCast — physical skills using the magic cast
	// action (CastActionID 11). Same phase layout as ClassRangedPhysical,
	// kept as its own tag because consumers key on the emitted name.
	ClassRangedPhysicalMagicCast
	// ClassMagic — casted magic, including bullet skills whose projectile
	// does not move.
	ClassMagic
)

func (c Class) String() string {
	switch c {
	case ClassInstant:
		return "instant"
	case ClassMultiHit:
		return "multi_hit"
	case ClassMeleePhysical:
		return "melee_physical"
	case ClassRangedPhysical:
		return "ranged_physical"
	case ClassRangedPhysicalMagicCast:
		return "ranged_physical_magic_cast"
	case ClassMagic:
		return "magic"
	}
	return "melee_physical"
}

// Classify assigns a skill to exactly one class. Rules are ordered; the
// first match wins. The function is total: every skill classifies, there is
// no unknown class.
func Classify(s model.Skill, bullets map[int32]model.Bullet) Class {
	if s.IsNoAttackSpeedCooldown {
		return ClassInstant
	}
	if s.FixedAttackActionCount > 1 {
		return ClassMultiHit
	}
	if s.IsMelee && s.IsPhysical {
		return ClassMeleePhysical
	}

	switch s.CastActionID {
	case 11:
		if s.IsPhysical {
			return ClassRangedPhysicalMagicCast
		}
		return ClassMagic
	case 9:
		if s.IsMelee {
			return ClassMeleePhysical
		}
		return ClassRangedPhysical
	}

	if s.BulletID > 0 {
		// Unresolvable bullet references behave as MoveKind 0.
		if b, ok := bullets[s.BulletID]; ok && b.MoveKind > 0 {
			return ClassRangedPhysical
		}
		return ClassMagic
	}

	return ClassMeleePhysical
}
