package model

// PropertiesEmpty is the sentinel value of the Properties attribute for
// skills that carry no property set in SkillPropertiesLua.xml.
const PropertiesEmpty = "empty"

// Skill is one row of SkillData.xml. Built once by the loader and never
// mutated afterwards.
type Skill struct {
	ID        int32
	Name      string
	Type      int32
	FactionID int32

	IsMelee                 bool
	IsPhysical              bool
	IsDamageSkill           bool
	IsNoAttackSpeedCooldown bool

	CastActionID           int32
	BulletID               int32 // 0 = no projectile
	BulletCount            int32
	ShootCount             int32 // -1 when absent
	WaitTime               int32 // raw ticks, 0 = no pre-cast wait
	FixedAttackActionCount int32 // -1 = not a fixed multi-hit skill
	BulletRoundTime        int32
	AttackRadius           int32
	IsBullet               int32

	TargetType string
	SkillStyle string
	Properties string // key into PropertyTable, or PropertiesEmpty
}
