// Command chef assembles a learning-platform channel from spreadsheet
// catalogs: a video catalog plus one or more assessment banks, merged into
// a single language > grade > subject > chapter > topic hierarchy and
// rendered as channel JSON.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/p-n-ai/content-chef/internal/download"
	"github.com/p-n-ai/content-chef/internal/ingest"
	"github.com/p-n-ai/content-chef/internal/ledger"
	"github.com/p-n-ai/content-chef/internal/manifest"
	"github.com/p-n-ai/content-chef/internal/platform/config"
	"github.com/p-n-ai/content-chef/internal/render"
	"github.com/p-n-ai/content-chef/internal/sheet"
	"github.com/p-n-ai/content-chef/internal/tree"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	setupLogger(cfg)

	if err := cfg.Validate(); err != nil {
		slog.Error("invalid config", "error", err)
		os.Exit(1)
	}

	if err := run(cfg); err != nil {
		slog.Error("run failed", "error", err)
		os.Exit(1)
	}
}

func setupLogger(cfg *config.Config) {
	var level slog.Level
	switch cfg.LogLevel() {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if cfg.Log.Format == "text" {
		handler = slog.NewTextHandler(os.Stdout, opts)
	} else {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}
	slog.SetDefault(slog.New(handler))
}

func run(cfg *config.Config) error {
	m, err := manifest.Load(cfg.ManifestPath)
	if err != nil {
		return err
	}
	slog.Info("manifest loaded",
		"channel", m.Channel.Name,
		"video_sources", len(m.Sources.Videos),
		"assessment_sources", len(m.Sources.Assessments),
	)

	tr := tree.New()
	led := ledger.New()
	images := &ingest.Resolver{Root: cfg.FilesDir, Ledger: led}

	for _, src := range m.Sources.Videos {
		table, err := sheet.Read(src.Path)
		if err != nil {
			return err
		}
		if _, err := ingest.IngestVideos(tr, table); err != nil {
			return err
		}
	}

	for _, src := range m.Sources.Assessments {
		table, err := sheet.Read(src.Path)
		if err != nil {
			return err
		}
		if _, err := ingest.IngestAssessments(tr, table, images); err != nil {
			return err
		}
	}

	if err := led.Flush(cfg.LedgerPath()); err != nil {
		return err
	}
	if led.Len() > 0 {
		slog.Warn("missing image files recorded", "count", led.Len(), "ledger", cfg.LedgerPath())
	}

	if cfg.Download.Enabled {
		downloadContent(tr, cfg)
	}

	channel := render.New(m.Channel.CopyrightHolder).Channel(m.Channel, tr)
	if err := writeChannel(cfg.ChannelPath(), channel); err != nil {
		return err
	}
	slog.Info("channel written", "path", cfg.ChannelPath())
	return nil
}

// downloadContent fetches video files and icons for every record in the
// tree. Failures are logged per item; the channel still renders with the
// remote links for anything that could not be fetched.
func downloadContent(t *tree.Tree, cfg *config.Config) {
	client := download.New()
	ctx := context.Background()

	for _, lang := range t.Languages() {
		for _, grade := range lang.Children() {
			for _, subject := range grade.Children() {
				dir := filepath.Join(cfg.Download.Dir, lang.Key, grade.Key, subject.Key)
				for _, chapter := range subject.Children() {
					for _, topic := range chapter.Children() {
						for _, v := range topic.Videos() {
							if _, err := client.Fetch(ctx, v.Link, dir); err != nil {
								slog.Warn("video download failed", "link", v.Link, "error", err)
							}
							if v.Icon == "" {
								continue
							}
							if _, err := client.Fetch(ctx, v.Icon, dir); err != nil {
								slog.Warn("icon download failed", "link", v.Icon, "error", err)
							}
						}
					}
				}
			}
		}
	}
}

func writeChannel(path string, ch *render.Channel) error {
	data, err := json.MarshalIndent(ch, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding channel: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating output dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing channel: %w", err)
	}
	return nil
}
