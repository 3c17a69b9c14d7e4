package frame

import (
	"math"

	"github.com/tranvu/skillframe/internal/model"
)

// Timing constants of the combat simulation. Attack speed 0..100 scales an
// action between MaxAttackDuration and MinAttackDuration; all generated
// timelines are quantized at TickRate.
const (
	TickRate            = 18  // Hz
	MinAttackDuration   = 0.2 // seconds, at attack speed 100
	MaxAttackDuration   = 0.8 // seconds, at attack speed 0
	AttackSpeedAddition = 0.1 // seconds gap between consecutive casts
	InputBufferWindow   = 2   // ticks for queuing the next skill
)

// ceilTicks converts a duration in seconds to ticks, rounding up.
func ceilTicks(seconds float64) int32 {
	return int32(math.Ceil(seconds * TickRate))
}

// floorRatio returns floor(t * ratio) for a tick count t.
func floorRatio(t int32, ratio float64) int32 {
	return int32(math.Floor(float64(t) * ratio))
}

// ComputePhases derives the total action duration, the global cooldown and
// the per-class phase layout for a skill, all in ticks. Pure integer
// results; the same inputs always produce the same timeline.
func ComputePhases(s model.Skill, bullets map[int32]model.Bullet, class Class) (totalTick, globalCooldownTick int32, tl Timeline) {
	var total int32
	switch class {
	case ClassInstant:
		total = 6
	case ClassMultiHit:
		count := max(s.FixedAttackActionCount, 1)
		// Per-hit duration in seconds. The original generator computes it
		// and never consumes it; kept for arithmetic parity.
		_ = (MaxAttackDuration - AttackSpeedAddition) / float64(count)
		total = ceilTicks(MaxAttackDuration) + 2
	default:
		total = ceilTicks(MaxAttackDuration + AttackSpeedAddition)
	}

	var waitTicks int32
	if s.WaitTime > 0 {
		waitTicks = int32(math.Ceil(float64(s.WaitTime) / TickRate))
		total += waitTicks
	}

	var gcd int32
	if s.IsNoAttackSpeedCooldown {
		gcd = ceilTicks(MinAttackDuration) + 1
	} else {
		gcd = ceilTicks(MinAttackDuration + AttackSpeedAddition)
	}

	T := total

	switch class {
	case ClassInstant:
		tl = Timeline{
			CastDelay:    span(0, 1),
			Damage:       tickAt(2),
			HitStop:      spanPtr(2, 3),
			RecoveryLock: span(3, 4),
			ComboWindow:  span(4, 5),
			Idle:         tickAt(T - 1),
		}

	case ClassMultiHit:
		count := max(s.FixedAttackActionCount, 1)
		perHit := max(2, (T-2)/count)
		castEnd := max(1, perHit/2-1)

		var damageTicks []int32
		for i := int32(0); i < count; i++ {
			tick := castEnd + 1 + i*perHit
			if tick < T {
				damageTicks = append(damageTicks, tick)
			}
		}
		if len(damageTicks) == 0 {
			damageTicks = []int32{castEnd + 1}
		}

		var damage Phase
		if len(damageTicks) == 1 {
			damage = tickAt(damageTicks[0])
		} else {
			damage = Phase{Ticks: damageTicks, Interval: perHit}
		}

		lastDamage := damageTicks[len(damageTicks)-1]
		hitStopEnd := min(lastDamage+1, T-1)
		recoveryEnd := min(hitStopEnd+max(2, (T-hitStopEnd)/2), T-3)
		if recoveryEnd <= hitStopEnd {
			recoveryEnd = min(hitStopEnd+2, T-3)
		}
		comboEnd := T - 2
		if comboEnd <= recoveryEnd {
			comboEnd = recoveryEnd + 1
		}

		tl = Timeline{
			CastDelay:    span(0, castEnd),
			Damage:       damage,
			HitStop:      spanPtr(lastDamage, hitStopEnd),
			RecoveryLock: span(hitStopEnd, recoveryEnd),
			ComboWindow:  span(recoveryEnd+1, comboEnd),
			Idle:         tickAt(T - 1),
		}

	case ClassRangedPhysical, ClassRangedPhysicalMagicCast:
		castEnd := max(1, floorRatio(T, 0.33))
		damageTick := castEnd + 1 // projectile launch
		recoveryEnd := max(damageTick+2, floorRatio(T, 0.67))

		var projectile *Projectile
		if b, ok := bullets[s.BulletID]; ok && b.LifeTime > 0 {
			projectile = &Projectile{
				LaunchTick: damageTick,
				LifeTime:   b.LifeTime,
				MoveSpeed:  b.MoveSpeed,
			}
			if b.DamageInterval > 0 {
				projectile.DamageInterval = b.DamageInterval
			}
		}

		tl = Timeline{
			CastDelay:    span(0, castEnd),
			Damage:       tickAt(damageTick),
			Projectile:   projectile,
			RecoveryLock: span(damageTick+1, recoveryEnd),
			ComboWindow:  span(recoveryEnd+1, T-2),
			Idle:         tickAt(T - 1),
		}

	case ClassMagic:
		castEnd := max(1, floorRatio(T, 0.44))
		damageTick := castEnd + 1
		hitStopEnd := damageTick + 1
		recoveryEnd := max(hitStopEnd+1, floorRatio(T, 0.78))

		tl = Timeline{
			CastDelay:    span(0, castEnd),
			Damage:       tickAt(damageTick),
			HitStop:      spanPtr(damageTick, hitStopEnd),
			RecoveryLock: span(hitStopEnd, recoveryEnd),
			ComboWindow:  span(recoveryEnd+1, T-2),
			Idle:         tickAt(T - 1),
		}

	default: // ClassMeleePhysical
		castEnd := max(1, floorRatio(T, 0.39))
		damageTick := castEnd + 1
		hitStopEnd := damageTick + 1
		recoveryEnd := max(hitStopEnd+1, floorRatio(T, 0.72))
		comboStart := recoveryEnd + 1
		comboEnd := T - 2

		// The wait offset shifts every phase except the start of the cast
		// delay, which covers the wait itself.
		w := waitTicks
		combo := span(comboStart+w, comboEnd+w)
		if comboStart+w > comboEnd+w || comboEnd+w >= T-1 {
			combo = span(T-3, T-2)
		}

		tl = Timeline{
			CastDelay:    span(0, castEnd+w),
			Damage:       tickAt(damageTick + w),
			HitStop:      spanPtr(damageTick+w, hitStopEnd+w),
			RecoveryLock: span(hitStopEnd+w, recoveryEnd+w),
			ComboWindow:  combo,
			Idle:         tickAt(T - 1),
		}
	}

	return total, gcd, tl
}
