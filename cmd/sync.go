package cmd

import (
	"context"
	"fmt"
	"log"

	"github.com/Omega-Networks/Pulse-sub003/core/config"
	"github.com/Omega-Networks/Pulse-sub003/core/database"
	"github.com/Omega-Networks/Pulse-sub003/core/logger"
	"github.com/Omega-Networks/Pulse-sub003/core/reconcile"

	"github.com/Omega-Networks/Pulse-sub003/feature/alerts"
	"github.com/Omega-Networks/Pulse-sub003/feature/alerts/zabbix"
	"github.com/Omega-Networks/Pulse-sub003/feature/inventory"
	"github.com/Omega-Networks/Pulse-sub003/feature/inventory/netbox"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var syncKind string

// syncCmd runs one batch synchronization from the command line.
var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Run one synchronization pass",
	Long: `Fetches every remote collection and reconciles it into the local store,
then prints a per-kind summary. With --kind only that kind is synchronized.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()

		db, err := database.Connect(cfg.Database)
		if err != nil {
			return err
		}

		engine := reconcile.NewEngine(db, logg)
		orchestrator := reconcile.NewOrchestrator(engine, logg)

		inventorySvc := inventory.NewService(db, netbox.NewClient(cfg.NetBox, logg), orchestrator, logg)
		alertsSvc := alerts.NewService(db, zabbix.NewClient(cfg.Zabbix, logg), orchestrator, logg)

		if err := inventorySvc.Migrate(); err != nil {
			return err
		}
		if err := alertsSvc.Migrate(); err != nil {
			return err
		}

		ctx := context.Background()

		if syncKind != "" {
			outcome, err := orchestrator.Sync(ctx, reconcile.Kind(syncKind), nil)
			if err != nil {
				return err
			}
			printOutcome(outcome)
			return nil
		}

		summary := orchestrator.SyncAll(ctx)
		for _, kind := range orchestrator.Kinds() {
			res := summary.Results[kind]
			if res.Err != nil {
				fmt.Printf("%-14s FAILED  %v\n", kind, res.Err)
				continue
			}
			printOutcome(res.Outcome)
		}

		if failed := summary.Failed(); len(failed) > 0 {
			logg.Warn("Some kinds failed to synchronize", zap.Int("failed", len(failed)))
		}

		return nil
	},
}

func printOutcome(out *reconcile.Outcome) {
	fmt.Printf("%-14s ok      created=%d updated=%d deleted=%d unchanged=%d\n",
		out.Kind, out.Created, out.Updated, out.Deleted, out.Unchanged)
}

func init() {
	syncCmd.Flags().StringVar(&syncKind, "kind", "", "synchronize a single entity kind")
	RootCmd.AddCommand(syncCmd)
}
