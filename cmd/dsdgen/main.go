package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/mmrzaf/dsdgen/internal/config"
	"github.com/mmrzaf/dsdgen/internal/logging"
	"github.com/mmrzaf/dsdgen/internal/manifest"
	"github.com/mmrzaf/dsdgen/internal/table"
	"github.com/mmrzaf/dsdgen/internal/target"
	"github.com/mmrzaf/dsdgen/internal/target/postgres"
	"github.com/mmrzaf/dsdgen/internal/target/sqlite"
	"github.com/mmrzaf/dsdgen/internal/writer"
)

func main() {
	opts := config.NewOptions()

	rootCmd := &cobra.Command{
		Use:   "dsdgen",
		Short: "TPC-DS dimension data generator",
	}

	rootCmd.PersistentFlags().Float64Var(&opts.Scale, "scale", opts.Scale, "Scale factor (target GB volume)")
	rootCmd.PersistentFlags().StringVar(&opts.Table, "table", opts.Table, "Generate only this table")
	rootCmd.PersistentFlags().StringVar(&opts.NullString, "null", opts.NullString, "Serialization of null fields")
	rootCmd.PersistentFlags().StringVar(&opts.Separator, "separator", opts.Separator, "Field separator (single character)")
	rootCmd.PersistentFlags().BoolVar(&opts.DoNotTerminate, "do-not-terminate", opts.DoNotTerminate, "Suppress the trailing separator")
	rootCmd.PersistentFlags().BoolVar(&opts.NoSexism, "no-sexism", opts.NoSexism, "Use gender-neutral name distribution for managers")
	rootCmd.PersistentFlags().StringVar(&opts.LogLevel, "log-level", opts.LogLevel, "Log level (debug|info|warn|error)")

	rootCmd.AddCommand(generateCmd(opts))
	rootCmd.AddCommand(tablesCmd(opts))
	rootCmd.AddCommand(loadCmd(opts))

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func generateCmd(opts *config.Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate dimension tables into flat files",
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := opts.Session()
			if err != nil {
				return err
			}
			logger := logging.NewLogger(opts.LogLevel)

			startedAt := time.Now()
			w := writer.NewWriter(session, logger)
			stats, err := w.WriteAll()
			if err != nil {
				return err
			}

			m, err := manifest.New(session, startedAt, stats)
			if err != nil {
				return err
			}
			path, err := m.Write(session.TargetDirectory())
			if err != nil {
				return err
			}

			logger.Info("Run %s: %d total rows, manifest %s", m.RunID, m.TotalRows, path)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Directory, "directory", opts.Directory, "Output directory")
	cmd.Flags().StringVar(&opts.Suffix, "suffix", opts.Suffix, "Output file suffix")
	cmd.Flags().IntVar(&opts.Parallelism, "parallelism", opts.Parallelism, "Number of row chunks")
	cmd.Flags().BoolVar(&opts.Overwrite, "overwrite", opts.Overwrite, "Allow overwriting existing output files")
	return cmd
}

func tablesCmd(opts *config.Options) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "tables",
		Short: "List tables with estimated row counts",
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := opts.Session()
			if err != nil {
				return err
			}

			tables := table.Dimensions()
			if session.GenerateOnlyOneTable() {
				tables = []table.Table{session.OnlyTableToGenerate()}
			}

			type tableInfo struct {
				Name string `json:"name"`
				Rows int64  `json:"rows"`
			}
			infos := make([]tableInfo, 0, len(tables))
			for _, t := range tables {
				rows, err := session.Scaling().RowCount(t)
				if err != nil {
					return err
				}
				infos = append(infos, tableInfo{Name: t.Name(), Rows: rows})
			}

			if format == "json" {
				data, _ := json.MarshalIndent(infos, "", "  ")
				fmt.Println(string(data))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "TABLE\tROWS")
			for _, info := range infos {
				fmt.Fprintf(w, "%s\t%d\n", info.Name, info.Rows)
			}
			w.Flush()
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "table", "Output format (table|json)")
	return cmd
}

func loadCmd(opts *config.Options) *cobra.Command {
	var (
		targetPath string
		targetDSN  string
		targetKind string
		batchSize  int
	)

	cmd := &cobra.Command{
		Use:   "load",
		Short: "Generate rows and load them into a database",
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := opts.Session()
			if err != nil {
				return err
			}
			logger := logging.NewLogger(opts.LogLevel)

			var targetCfg *config.TargetConfig
			if targetPath != "" {
				targetCfg, err = config.LoadTargetConfig(targetPath)
				if err != nil {
					return err
				}
			} else if targetDSN != "" {
				if targetKind == "" {
					return fmt.Errorf("--target-kind required when using --target DSN")
				}
				targetCfg = &config.TargetConfig{Name: "inline-target", Kind: targetKind, DSN: targetDSN}
			} else {
				return fmt.Errorf("either --target-file or --target required")
			}

			var tgt target.Target
			switch targetCfg.Kind {
			case "postgres":
				tgt = postgres.NewPostgresTarget(targetCfg.DSN, targetCfg.Schema)
			case "sqlite":
				tgt = sqlite.NewSQLiteTarget(targetCfg.DSN)
			default:
				return fmt.Errorf("unsupported target kind: %s", targetCfg.Kind)
			}

			if batchSize == 0 {
				if v, ok := targetCfg.Options["batch_size"]; ok {
					batchSize, err = strconv.Atoi(v)
					if err != nil {
						return fmt.Errorf("invalid batch_size in target options: %s", v)
					}
				}
			}

			if err := tgt.Connect(); err != nil {
				return fmt.Errorf("connecting to target %s: %w", targetCfg.Name, err)
			}
			defer tgt.Close()

			start := time.Now()
			loader := target.NewLoader(session, logger, batchSize)
			totalRows, err := loader.LoadAll(tgt)
			if err != nil {
				return err
			}

			logger.Info("Loaded %d total rows into %s in %.2fs",
				totalRows, targetCfg.Name, time.Since(start).Seconds())
			return nil
		},
	}

	cmd.Flags().StringVar(&targetPath, "target-file", "", "Target definition file (YAML)")
	cmd.Flags().StringVar(&targetDSN, "target", "", "Target DSN")
	cmd.Flags().StringVar(&targetKind, "target-kind", "", "Target kind (required with --target)")
	cmd.Flags().IntVar(&batchSize, "batch-size", 0, "Insert batch size")
	cmd.Flags().BoolVar(&opts.Overwrite, "overwrite", opts.Overwrite, "Truncate tables before loading")
	return cmd
}
