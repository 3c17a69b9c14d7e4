package data

import (
	"encoding/xml"
	"fmt"
	"log/slog"
	"os"

	"github.com/tranvu/skillframe/internal/model"
)

// --- XML structures (BulletConfig.xml) ---

type xmlBulletConfig struct {
	Bullets []xmlBullet `xml:"Bullet"`
}

type xmlBullet struct {
	ID                  string `xml:"ID,attr"`
	Name                string `xml:"Name,attr"`
	MoveKind            string `xml:"MoveKind,attr"`
	IsFollowTarget      string `xml:"IsFollowTarget,attr"`
	ExplodeRadius       string `xml:"ExplodeRadius,attr"`
	DamageInterval      string `xml:"DamageInterval,attr"`
	LifeTime            string `xml:"LifeTime,attr"`
	MoveSpeed           string `xml:"MoveSpeed,attr"`
	IsComeback          string `xml:"IsComeback,attr"`
	MaxTargetTouch      string `xml:"MaxTargetTouch,attr"`
	PieceThroughPercent string `xml:"PieceThroughTargetsPercent,attr"`
}

// LoadBullets parses BulletConfig.xml into projectile records keyed by
// bullet ID.
func LoadBullets(path string) (map[int32]model.Bullet, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading bullet config: %w", err)
	}

	var doc xmlBulletConfig
	if err := xml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	bullets := make(map[int32]model.Bullet, len(doc.Bullets))
	for _, b := range doc.Bullets {
		bullet := model.Bullet{
			ID:                  attrInt32(b.ID, 0),
			Name:                b.Name,
			MoveKind:            attrInt32(b.MoveKind, 0),
			IsFollowTarget:      attrInt32(b.IsFollowTarget, 0),
			ExplodeRadius:       attrInt32(b.ExplodeRadius, 0),
			DamageInterval:      attrInt32(b.DamageInterval, 0),
			LifeTime:            attrInt32(b.LifeTime, 0),
			MoveSpeed:           attrInt32(b.MoveSpeed, 0),
			IsComeback:          attrInt32(b.IsComeback, 0),
			MaxTargetTouch:      attrInt32(b.MaxTargetTouch, 1000),
			PieceThroughPercent: attrInt32(b.PieceThroughPercent, 0),
		}
		bullets[bullet.ID] = bullet
	}

	slog.Info("loaded bullets", "count", len(bullets), "path", path)
	return bullets, nil
}
