// framegen derives tick-quantized frame timing for every player skill in
// the KT_Skill config tables and writes it as a single JSON document for
// client/server combat prediction. Optionally publishes the entries to the
// game database.
//
// Usage:
//
//	go run ./cmd/framegen                    # generate docs/skill_frame_data.json
//	go run ./cmd/framegen -out out.json      # custom output path
//	go run ./cmd/framegen -publish           # also upsert into PostgreSQL
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"sort"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/tranvu/skillframe/internal/config"
	"github.com/tranvu/skillframe/internal/data"
	"github.com/tranvu/skillframe/internal/db"
	"github.com/tranvu/skillframe/internal/frame"
	"github.com/tranvu/skillframe/internal/model"
)

const ConfigPath = "config/framegen.yaml"

func main() {
	configPath := flag.String("config", ConfigPath, "path to YAML config")
	outPath := flag.String("out", "", "output file (overrides config)")
	publish := flag.Bool("publish", false, "upsert entries into PostgreSQL after writing the file")
	quiet := flag.Bool("quiet", false, "suppress the per-faction summary")
	flag.Parse()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		slog.Info("shutting down", "signal", sig)
		cancel()
	}()

	if err := run(ctx, *configPath, *outPath, *publish, *quiet); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, configPath, outPath string, publish, quiet bool) error {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	if configPath == ConfigPath {
		if p := os.Getenv("SKILLFRAME_CONFIG"); p != "" {
			configPath = p
		}
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if outPath == "" {
		outPath = cfg.Output
	}

	// The three tables are independent; load them in parallel.
	var (
		skills  map[int32]model.Skill
		bullets map[int32]model.Bullet
		props   model.PropertyTable
	)
	start := time.Now()
	var g errgroup.Group
	g.Go(func() error {
		var err error
		skills, err = data.LoadSkills(cfg.SkillDataPath())
		return err
	})
	g.Go(func() error {
		var err error
		bullets, err = data.LoadBullets(cfg.BulletConfigPath())
		return err
	})
	g.Go(func() error {
		var err error
		props, err = data.LoadProperties(cfg.SkillPropertiesPath())
		return err
	})
	if err := g.Wait(); err != nil {
		return fmt.Errorf("loading config tables: %w", err)
	}
	slog.Info("config tables loaded", "took", time.Since(start).Round(time.Millisecond))

	start = time.Now()
	doc := frame.Generate(skills, props, bullets)
	slog.Info("frame data generated",
		"entries", doc.EntryCount(),
		"factions", len(doc.Factions),
		"took", time.Since(start).Round(time.Millisecond))

	out, err := doc.MarshalIndent()
	if err != nil {
		return fmt.Errorf("encoding frame data: %w", err)
	}
	if dir := filepath.Dir(outPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}
	if err := os.WriteFile(outPath, out, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", outPath, err)
	}
	slog.Info("frame data written", "path", outPath, "bytes", len(out))

	if publish {
		if err := publishEntries(ctx, cfg.Database.DSN(), doc); err != nil {
			return fmt.Errorf("publishing frame data: %w", err)
		}
	}

	if !quiet {
		printSummary(doc)
	}
	return nil
}

func publishEntries(ctx context.Context, dsn string, doc *frame.Document) error {
	if err := db.RunMigrations(ctx, dsn); err != nil {
		return err
	}
	database, err := db.New(ctx, dsn)
	if err != nil {
		return err
	}
	defer database.Close()

	written, err := db.NewFrameRepository(database).UpsertEntries(ctx, doc)
	if err != nil {
		return err
	}
	slog.Info("frame data published", "rows", written)
	return nil
}

func printSummary(doc *frame.Document) {
	factions := make([]string, 0, len(doc.Factions))
	for name := range doc.Factions {
		factions = append(factions, name)
	}
	sort.Strings(factions)

	fmt.Println("\n=== Summary by Faction ===")
	for _, name := range factions {
		entries := doc.Factions[name]
		var damage int
		for _, e := range entries {
			if e.Properties.IsDamageSkill {
				damage++
			}
		}
		fmt.Printf("  %s: %d skills (%d damage, %d buff/utility)\n",
			name, len(entries), damage, len(entries)-damage)
	}
}
