// Command wanderctl is the operator CLI for Wanderlust: schema migrations and
// reference-data seeding. The API server never migrates on its own.
package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib" // "pgx" driver for database/sql
	"github.com/pressly/goose/v3"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/pkordes/wanderlust/internal/cache"
	"github.com/pkordes/wanderlust/internal/domain"
	"github.com/pkordes/wanderlust/internal/repo"
	"github.com/pkordes/wanderlust/migrations"
)

var (
	databaseURL string
	redisURL    string
)

var rootCmd = &cobra.Command{
	Use:           "wanderctl",
	Short:         "Operate a Wanderlust deployment",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if databaseURL == "" {
			return fmt.Errorf("database URL must be set with --database-url or DATABASE_URL")
		}
		return nil
	},
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply or roll back schema migrations",
}

var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply every pending migration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withProvider(cmd.Context(), func(ctx context.Context, p *goose.Provider) error {
			results, err := p.Up(ctx)
			if err != nil {
				return fmt.Errorf("migrate up: %w", err)
			}
			for _, r := range results {
				slog.Info("applied migration", "version", r.Source.Version, "duration", r.Duration)
			}
			if len(results) == 0 {
				slog.Info("schema already current")
			}
			return nil
		})
	},
}

var migrateDownCmd = &cobra.Command{
	Use:   "down",
	Short: "Roll back the most recent migration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withProvider(cmd.Context(), func(ctx context.Context, p *goose.Provider) error {
			r, err := p.Down(ctx)
			if err != nil {
				return fmt.Errorf("migrate down: %w", err)
			}
			slog.Info("rolled back migration", "version", r.Source.Version, "duration", r.Duration)
			return nil
		})
	},
}

var migrateStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "List migrations and whether each is applied",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withProvider(cmd.Context(), func(ctx context.Context, p *goose.Provider) error {
			statuses, err := p.Status(ctx)
			if err != nil {
				return fmt.Errorf("migrate status: %w", err)
			}
			out := cmd.OutOrStdout()
			for _, s := range statuses {
				applied := "pending"
				if s.State == goose.StateApplied {
					applied = s.AppliedAt.Format("2006-01-02 15:04:05")
				}
				fmt.Fprintf(out, "%05d  %-32s  %s\n", s.Source.Version, pathBase(s.Source.Path), applied)
			}
			return nil
		})
	},
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load reference data",
}

var seedDestinationsCmd = &cobra.Command{
	Use:   "destinations <file.json>",
	Short: "Upsert destinations from a JSON array, keyed by name and country",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()

		list, err := readDestinations(f)
		if err != nil {
			return fmt.Errorf("%s: %w", args[0], err)
		}

		ctx := cmd.Context()
		pool, err := pgxpool.New(ctx, databaseURL)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer pool.Close()

		dest := repo.NewDestinationRepo(pool)
		for _, d := range list {
			if _, err := dest.Upsert(ctx, d); err != nil {
				return fmt.Errorf("upsert %q: %w", d.Name, err)
			}
		}
		slog.Info("seeded destinations", "count", len(list))

		if redisURL == "" {
			return nil
		}
		return invalidateCache(ctx)
	},
}

// readDestinations decodes a JSON array of destinations. Name and country are
// required since together they identify a destination.
func readDestinations(r io.Reader) ([]domain.Destination, error) {
	var list []domain.Destination
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&list); err != nil {
		return nil, fmt.Errorf("decode destinations: %w", err)
	}
	for i, d := range list {
		if strings.TrimSpace(d.Name) == "" || strings.TrimSpace(d.Country) == "" {
			return nil, fmt.Errorf("destination %d: name and country are required", i)
		}
	}
	return list, nil
}

func withProvider(ctx context.Context, fn func(context.Context, *goose.Provider) error) error {
	db, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	p, err := migrations.NewProvider(db)
	if err != nil {
		return err
	}
	return fn(ctx, p)
}

// invalidateCache drops the server's cached destination list so the next
// Explore reload sees the seeded rows.
func invalidateCache(ctx context.Context) error {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return fmt.Errorf("parse redis url: %w", err)
	}
	rdb := redis.NewClient(opts)
	defer rdb.Close()

	if err := cache.NewDestinations(rdb, nil, 0, slog.Default()).Invalidate(ctx); err != nil {
		return err
	}
	slog.Info("destination cache invalidated")
	return nil
}

func pathBase(p string) string {
	if i := strings.LastIndexByte(p, '/'); i >= 0 {
		return p[i+1:]
	}
	return p
}

func initCmd() {
	rootCmd.PersistentFlags().StringVar(&databaseURL, "database-url", os.Getenv("DATABASE_URL"), "Postgres connection string")
	rootCmd.PersistentFlags().StringVar(&redisURL, "redis-url", os.Getenv("REDIS_URL"), "Redis URL; when set, seeding invalidates the destination cache")

	migrateCmd.AddCommand(migrateUpCmd, migrateDownCmd, migrateStatusCmd)
	seedCmd.AddCommand(seedDestinationsCmd)
	rootCmd.AddCommand(migrateCmd, seedCmd)
}

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))
	initCmd()

	if err := rootCmd.Execute(); err != nil {
		slog.Error("wanderctl failed", "error", err)
		os.Exit(1)
	}
}
