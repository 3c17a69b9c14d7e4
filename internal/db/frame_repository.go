package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tranvu/skillframe/internal/frame"
)

// FrameRepository publishes generated frame-data entries into the
// skill_frames table.
type FrameRepository struct {
	db *DB
}

// NewFrameRepository creates a new FrameRepository.
func NewFrameRepository(db *DB) *FrameRepository {
	return &FrameRepository{db: db}
}

// UpsertEntries writes all entries of a document in one batch, keyed on
// skill_id so repeated runs overwrite stale rows. Returns the number of
// rows written.
func (r *FrameRepository) UpsertEntries(ctx context.Context, doc *frame.Document) (int64, error) {
	const query = `
		INSERT INTO skill_frames
			(skill_id, skill_name, faction, class, total_tick, cooldown_tick, global_cooldown_tick, frame_json, generated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, now())
		ON CONFLICT (skill_id) DO UPDATE SET
			skill_name = EXCLUDED.skill_name,
			faction = EXCLUDED.faction,
			class = EXCLUDED.class,
			total_tick = EXCLUDED.total_tick,
			cooldown_tick = EXCLUDED.cooldown_tick,
			global_cooldown_tick = EXCLUDED.global_cooldown_tick,
			frame_json = EXCLUDED.frame_json,
			generated_at = now()
	`

	batch := &pgx.Batch{}
	for _, entries := range doc.Factions {
		for _, e := range entries {
			payload, err := e.JSON()
			if err != nil {
				return 0, fmt.Errorf("encoding entry %d: %w", e.SkillID, err)
			}
			batch.Queue(query,
				e.SkillID, e.SkillName, e.Faction, e.Properties.Type,
				e.TotalTick, e.CooldownTick, e.GlobalCooldownTick, payload,
			)
		}
	}

	results := r.db.pool.SendBatch(ctx, batch)
	defer results.Close()

	var written int64
	for range batch.Len() {
		tag, err := results.Exec()
		if err != nil {
			return written, fmt.Errorf("upserting frame entry: %w", err)
		}
		written += tag.RowsAffected()
	}
	return written, nil
}
