// Command ttpcount enumerates feasible double round-robin schedules for
// the TTP feasibility variant.
//
// Usage:
//
//	ttpcount run 8
//	ttpcount run 8 2 --workers 4 --mode dynamic
//	ttpcount serve --port 8080
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/adampetrovic/ttpcount/internal/api"
	"github.com/adampetrovic/ttpcount/internal/coordinator"
	"github.com/adampetrovic/ttpcount/internal/storage/sqlite"
)

func main() {
	root := &cobra.Command{
		Use:   "ttpcount",
		Short: "Count feasible double round-robin TTP schedules",
	}

	root.AddCommand(runCmd())
	root.AddCommand(serveCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// --------------------------------------------------------------------------
// run command
// --------------------------------------------------------------------------

func runCmd() *cobra.Command {
	var (
		workers int
		mode    string
		optimal bool
	)

	cmd := &cobra.Command{
		Use:   "run N [K] [max]",
		Short: "Count feasible schedules for N teams",
		Args:  cobra.RangeArgs(1, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid N: %w", err)
			}

			k := 0
			if len(args) > 1 {
				k, err = strconv.Atoi(args[1])
				if err != nil {
					return fmt.Errorf("invalid K: %w", err)
				}
			}

			max := coordinator.Unbounded
			if len(args) > 2 {
				max, err = strconv.ParseInt(args[2], 10, 64)
				if err != nil {
					return fmt.Errorf("invalid max: %w", err)
				}
			}

			plan := coordinator.Plan{
				N:       n,
				K:       k,
				Max:     max,
				Workers: workers,
				Mode:    coordinator.Mode(mode),
				Optimal: optimal,
			}

			ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
			defer cancel()

			start := time.Now()
			result, err := coordinator.Run(ctx, plan, func(p coordinator.Progress) {
				log.Printf("rank %d: %d counted (task %d)", p.Rank, p.Local, p.TaskIndex)
			})
			if err != nil {
				return fmt.Errorf("counting schedules: %w", err)
			}
			elapsed := time.Since(start)

			fmt.Printf("total: %d\n", result.Total)
			fmt.Printf("frontier tasks: %d, leaves discovered during expansion: %d\n", result.TaskCount, result.FrontierLeaves)
			for _, rank := range result.PerRank {
				fmt.Printf("  rank %d: %d\n", rank.Rank, rank.Local)
			}
			fmt.Printf("time taken: %s\n", formatElapsed(elapsed))
			return nil
		},
	}

	cmd.Flags().IntVarP(&workers, "workers", "w", 1, "number of simulated nodes")
	cmd.Flags().StringVar(&mode, "mode", string(coordinator.ModeStatic), "coordination mode (static|dynamic)")
	cmd.Flags().BoolVar(&optimal, "optimal", false, "use the optimized oracle (adds lookahead rules)")
	return cmd
}

// formatElapsed breaks d into hours:minutes:seconds.milliseconds, the same
// breakdown the reference implementation prints after a run completes.
func formatElapsed(d time.Duration) string {
	h := d / time.Hour
	d -= h * time.Hour
	m := d / time.Minute
	d -= m * time.Minute
	s := d / time.Second
	d -= s * time.Second
	ms := d / time.Millisecond
	return fmt.Sprintf("%d:%02d:%02d.%03d", h, m, s, ms)
}

// --------------------------------------------------------------------------
// serve command
// --------------------------------------------------------------------------

func serveCmd() *cobra.Command {
	var port string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP job API",
		RunE: func(cmd *cobra.Command, args []string) error {
			dbPath := os.Getenv("DATABASE_URL")
			if dbPath == "" {
				dbPath = "ttpcount.db"
			}

			sqliteDB, err := sqlite.New(dbPath)
			if err != nil {
				return fmt.Errorf("opening database: %w", err)
			}
			defer sqliteDB.Close()

			migrationsPath := os.Getenv("MIGRATIONS_PATH")
			if migrationsPath == "" {
				migrationsPath = "migrations"
			}
			if err := sqliteDB.Migrate(migrationsPath); err != nil {
				return fmt.Errorf("running migrations: %w", err)
			}

			server := api.NewServer(sqliteDB.Conn())

			if port == "" {
				port = os.Getenv("PORT")
			}
			if port == "" {
				port = "8080"
			}

			log.Printf("starting ttpcount API server on port %s", port)
			return server.Run(":" + port)
		},
	}

	cmd.Flags().StringVarP(&port, "port", "p", "", "port to listen on (defaults to $PORT or 8080)")
	return cmd
}
