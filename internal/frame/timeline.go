package frame

// Phase is one named span or instant of the action cycle. Exactly one shape
// is populated per phase:
//
//	{tick}            an instant
//	{start, end}      an interval
//	{ticks, interval} the multi-hit damage train
//
// Pointer fields keep a legitimate tick 0 (cast_delay always starts at 0)
// distinct from an absent field.
type Phase struct {
	Tick     *int32  `json:"tick,omitempty"`
	Ticks    []int32 `json:"ticks,omitempty"`
	Interval int32   `json:"interval,omitempty"`
	Start    *int32  `json:"start,omitempty"`
	End      *int32  `json:"end,omitempty"`
}

// Projectile describes bullet timing for ranged skills whose bullet has a
// positive life time.
type Projectile struct {
	LaunchTick     int32 `json:"launch_tick"`
	LifeTime       int32 `json:"life_time"`
	MoveSpeed      int32 `json:"move_speed"`
	DamageInterval int32 `json:"damage_interval,omitempty"`
}

// Timeline is the full phase layout of one skill cast. HitStop and
// Projectile never co-occur: ranged classes have no hit-stop, all others
// have no projectile.
type Timeline struct {
	CastDelay    Phase       `json:"cast_delay"`
	Damage       Phase       `json:"damage"`
	HitStop      *Phase      `json:"hit_stop,omitempty"`
	Projectile   *Projectile `json:"projectile,omitempty"`
	RecoveryLock Phase       `json:"recovery_lock"`
	ComboWindow  Phase       `json:"combo_window"`
	Idle         Phase       `json:"idle"`
}

func tickAt(t int32) Phase {
	return Phase{Tick: &t}
}

func span(start, end int32) Phase {
	return Phase{Start: &start, End: &end}
}

func spanPtr(start, end int32) *Phase {
	p := span(start, end)
	return &p
}
