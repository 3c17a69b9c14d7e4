package data

import (
	"encoding/xml"
	"fmt"
	"log/slog"
	"os"

	"github.com/tranvu/skillframe/internal/model"
)

// --- XML structures (SkillData.xml) ---

type xmlSkillData struct {
	Skills []xmlSkill `xml:"Skill"`
}

type xmlSkill struct {
	ID                     string `xml:"ID,attr"`
	Name                   string `xml:"Name,attr"`
	Type                   string `xml:"Type,attr"`
	FactionID              string `xml:"FactionID,attr"`
	IsMelee                string `xml:"IsMelee,attr"`
	IsPhysical             string `xml:"IsPhysical,attr"`
	IsDamageSkill          string `xml:"IsDamageSkill,attr"`
	CastActionID           string `xml:"CastActionID,attr"`
	BulletID               string `xml:"BulletID,attr"`
	BulletCount            string `xml:"BulletCount,attr"`
	ShootCount             string `xml:"ShootCount,attr"`
	WaitTime               string `xml:"WaitTime,attr"`
	FixedAttackActionCount string `xml:"FixedAttackActionCount,attr"`
	IsNoAtkSpeedCooldown   string `xml:"IsSkillNoAddAttackSpeedCooldown,attr"`
	Properties             string `xml:"Properties,attr"`
	BulletRoundTime        string `xml:"BulletRoundTime,attr"`
	TargetType             string `xml:"TargetType,attr"`
	SkillStyle             string `xml:"SkillStyle,attr"`
	AttackRadius           string `xml:"AttackRadius,attr"`
	IsBullet               string `xml:"IsBullet,attr"`
}

// LoadSkills parses SkillData.xml into skill records keyed by skill ID.
func LoadSkills(path string) (map[int32]model.Skill, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading skill data: %w", err)
	}

	var doc xmlSkillData
	if err := xml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	skills := make(map[int32]model.Skill, len(doc.Skills))
	for _, s := range doc.Skills {
		skill := model.Skill{
			ID:                      attrInt32(s.ID, 0),
			Name:                    s.Name,
			Type:                    attrInt32(s.Type, 0),
			FactionID:               attrInt32(s.FactionID, 0),
			IsMelee:                 attrBool(s.IsMelee),
			IsPhysical:              attrBool(s.IsPhysical),
			IsDamageSkill:           attrBool(s.IsDamageSkill),
			IsNoAttackSpeedCooldown: attrBool(s.IsNoAtkSpeedCooldown),
			CastActionID:            attrInt32(s.CastActionID, 0),
			BulletID:                attrInt32(s.BulletID, 0),
			BulletCount:             attrInt32(s.BulletCount, 0),
			ShootCount:              attrInt32(s.ShootCount, -1),
			WaitTime:                attrInt32(s.WaitTime, 0),
			FixedAttackActionCount:  attrInt32(s.FixedAttackActionCount, -1),
			BulletRoundTime:         attrInt32(s.BulletRoundTime, 0),
			AttackRadius:            attrInt32(s.AttackRadius, 0),
			IsBullet:                attrInt32(s.IsBullet, 0),
			TargetType:              s.TargetType,
			SkillStyle:              s.SkillStyle,
			Properties:              attrString(s.Properties, model.PropertiesEmpty),
		}
		skills[skill.ID] = skill
	}

	slog.Info("loaded skills", "count", len(skills), "path", path)
	return skills, nil
}
