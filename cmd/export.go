package cmd

import (
	"context"
	"fmt"
	"log"

	"github.com/Omega-Networks/Pulse-sub003/core/config"
	"github.com/Omega-Networks/Pulse-sub003/core/database"
	"github.com/Omega-Networks/Pulse-sub003/core/logger"
	"github.com/Omega-Networks/Pulse-sub003/core/storage"
	"github.com/Omega-Networks/Pulse-sub003/feature/snapshot"

	"github.com/spf13/cobra"
)

// exportCmd uploads a snapshot of the local graph to object storage.
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export a snapshot of the local graph",
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

		store, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return err
		}

		svc := snapshot.NewService(db, store, cfg.Storage.Bucket, logg)
		object, err := svc.Export(context.Background())
		if err != nil {
			return err
		}

		fmt.Println("uploaded", object)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(exportCmd)
}
