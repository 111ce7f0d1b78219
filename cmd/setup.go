package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/kozaktomas/aerogate/internal/access"
	"github.com/kozaktomas/aerogate/internal/config"
	"github.com/kozaktomas/aerogate/internal/database"
	"github.com/kozaktomas/aerogate/internal/database/postgres"
	"github.com/kozaktomas/aerogate/internal/recognition"
)

// gate bundles the wiring shared by commands that touch storage and the
// extractor. Close releases the database pool.
type gate struct {
	cfg     *config.Config
	pool    *postgres.Pool
	members *postgres.MemberRepository
	logs    *postgres.LogRepository
	service *access.Service
}

func (g *gate) Close() {
	if g.pool != nil {
		_ = g.pool.Close()
	}
}

// buildMatcher selects the matcher implementation from config. The HNSW
// index is seeded from the current member list; the linear matcher reads the
// store on every call and needs no seeding.
func buildMatcher(ctx context.Context, cfg *config.Config, members database.MemberStore) (access.Matcher, error) {
	if cfg.Gate.MatcherIndex != "hnsw" {
		return access.NewLinearMatcher(members), nil
	}

	list, err := members.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("seeding HNSW index: %w", err)
	}
	matcher := access.NewHNSWMatcher()
	matcher.Build(list)
	fmt.Printf("HNSW index built with %d members\n", matcher.Count())
	return matcher, nil
}

// openGate connects to PostgreSQL, runs migrations, and wires the access
// service with the configured extractor and matcher.
func openGate(ctx context.Context) (*gate, error) {
	cfg := config.Load()

	if cfg.Database.URL == "" {
		return nil, errors.New("DATABASE_URL environment variable is required")
	}
	if cfg.Extractor.URL == "" {
		return nil, errors.New("EXTRACTOR_URL environment variable is required")
	}

	pool, err := postgres.Initialize(&cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize PostgreSQL: %w", err)
	}

	members := postgres.NewMemberRepository(pool)
	logs := postgres.NewLogRepository(pool)

	matcher, err := buildMatcher(ctx, cfg, members)
	if err != nil {
		pool.Close()
		return nil, err
	}

	extractor := recognition.NewClient(cfg.Extractor.URL, cfg.Extractor.Dim)
	service := access.NewService(extractor, members, logs, matcher,
		cfg.Policy.Threshold(), cfg.Policy.DateFormats)

	return &gate{
		cfg:     cfg,
		pool:    pool,
		members: members,
		logs:    logs,
		service: service,
	}, nil
}
