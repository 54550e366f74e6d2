package cmd

import (
	"context"
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/Rana718/vitalgen/internal/docstore"
	"github.com/Rana718/vitalgen/internal/sqlstore"
)

var (
	loadRelational bool
	loadDocuments  bool
)

var loadCmd = &cobra.Command{
	Use:   "load",
	Short: "Generate a dataset and load it into the databases",
	Long: `Run the full pipeline, recreate the relational schema and insert the
normalized rows into the configured SQL provider, then replace the
marriages and deaths collections in MongoDB.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("indexes") {
			cfg.Database.CreateIndexes, _ = cmd.Flags().GetBool("indexes")
		}
		if !loadRelational && !loadDocuments {
			loadRelational, loadDocuments = true, true
		}

		var dbURL, mongoURL string
		if loadRelational {
			if dbURL, err = cfg.GetDatabaseURL(); err != nil {
				return err
			}
		}
		if loadDocuments {
			if mongoURL, err = cfg.GetMongoURL(); err != nil {
				return err
			}
		}

		r, err := execute(cfg)
		if err != nil {
			return err
		}
		defer r.log.Sync()

		ctx := context.Background()

		if loadRelational {
			store, err := sqlstore.New(ctx, cfg.Database.Provider, dbURL, r.log)
			if err != nil {
				return err
			}
			defer store.Close()

			color.Cyan("🗄️  Recreating %s schema...", store.Dialect())
			if err := store.ResetSchema(ctx, cfg.Database.CreateIndexes); err != nil {
				return fmt.Errorf("failed to reset schema: %w", err)
			}

			tables, err := r.dataset.Tables()
			if err != nil {
				return err
			}
			for _, t := range tables {
				color.Cyan("  📝 Seeding %s (%d records)...", t.Table, len(t.Records))
			}
			rows, err := store.Insert(ctx, tables)
			if err != nil {
				return err
			}
			color.Green("  ✅ %s rows inserted", humanize.Comma(int64(rows)))
		}

		if loadDocuments {
			store, err := docstore.Connect(ctx, mongoURL, cfg.Database.MongoDatabase, r.log)
			if err != nil {
				return err
			}
			defer store.Close()

			color.Cyan("🍃 Replacing document collections...")
			if err := store.Reset(ctx); err != nil {
				return err
			}
			docs, err := store.Load(ctx, r.docs.Marriages, r.docs.Deaths, cfg.Database.CreateIndexes)
			if err != nil {
				return err
			}
			color.Green("  ✅ %s documents inserted", humanize.Comma(int64(docs)))
		}

		printSummary(r)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(loadCmd)
	loadCmd.Flags().Int("records", 0, "marriage+death record budget (overrides generation.records)")
	loadCmd.Flags().BoolVar(&loadRelational, "relational", false, "load the normalized tables into the SQL database")
	loadCmd.Flags().BoolVar(&loadDocuments, "documents", false, "load the documents into MongoDB (both targets when neither flag is set)")
	loadCmd.Flags().Bool("indexes", true, "create secondary indexes (overrides database.create_indexes)")
}
