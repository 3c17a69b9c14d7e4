package model

// Bullet is one row of BulletConfig.xml: a projectile template referenced
// by Skill.BulletID.
type Bullet struct {
	ID                  int32
	Name                string
	MoveKind            int32
	IsFollowTarget      int32
	ExplodeRadius       int32
	DamageInterval      int32
	LifeTime            int32
	MoveSpeed           int32
	IsComeback          int32
	MaxTargetTouch      int32
	PieceThroughPercent int32
}
