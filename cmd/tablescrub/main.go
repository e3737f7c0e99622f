// Command tablescrub validates chunks of semi-structured crime data,
// splitting each chunk into clean rows, hard rejects, and soft rejects.
package main

import (
	"context"
	"fmt"
	"os"
	"sort"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/tablescrub/tablescrub"
	"github.com/tablescrub/tablescrub/domain/model"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	v := newViper()

	rootCmd := &cobra.Command{
		Use:           "tablescrub",
		Short:         "Validate and clean chunked tabular crime data",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	scrubCmd := &cobra.Command{
		Use:   "scrub <chunk-file>...",
		Short: "Scrub chunk files into clean data and reject reports",
		Long: `Scrub runs each chunk file through the validation ruleset.
Rows failing a mandatory field are removed and reported as hard
rejects; values failing an optional field are nulled in place and
reported as soft rejects together with their original values.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScrub(cmd.Context(), v, args)
		},
	}

	flags := scrubCmd.Flags()
	flags.StringP("output-dir", "o", "./output", "directory for clean data and reject reports")
	flags.String("format", "csv", "output format (csv or tsv)")
	flags.String("compression", "none", "output compression (none, gz, xz, zst)")
	flags.String("sqlite", "", "also persist results into this SQLite database file")
	flags.BoolP("verbose", "v", false, "enable debug logging")

	cobra.CheckErr(v.BindPFlag("output_dir", flags.Lookup("output-dir")))
	cobra.CheckErr(v.BindPFlag("format", flags.Lookup("format")))
	cobra.CheckErr(v.BindPFlag("compression", flags.Lookup("compression")))
	cobra.CheckErr(v.BindPFlag("sqlite_path", flags.Lookup("sqlite")))
	cobra.CheckErr(v.BindPFlag("verbose", flags.Lookup("verbose")))

	rootCmd.AddCommand(scrubCmd)
	return rootCmd
}

func runScrub(ctx context.Context, v *viper.Viper, paths []string) error {
	cfg, err := loadConfig(v)
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg.Verbose)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	format, _ := tablescrub.ParseOutputFormat(cfg.Format)
	compression, ok := tablescrub.ParseCompressionType(cfg.Compression)
	if !ok || compression == tablescrub.CompressionBZ2 {
		return fmt.Errorf("unsupported output compression: %s", cfg.Compression)
	}
	opts := tablescrub.NewDumpOptions().
		WithFormat(format).
		WithCompression(compression)

	rules := tablescrub.ChicagoCrimeRuleset()
	keep := cfg.KeepColumns
	if len(keep) == 0 {
		keep = tablescrub.ChicagoKeepColumns()
	}

	runID := uuid.NewString()
	logger.Info("starting scrub run",
		zap.String("run_id", runID),
		zap.Int("chunks", len(paths)),
		zap.String("output_dir", cfg.OutputDir),
	)

	for _, path := range paths {
		if err := scrubChunk(ctx, cfg, logger.With(zap.String("run_id", runID)), path, keep, rules, opts); err != nil {
			return fmt.Errorf("chunk %s: %w", path, err)
		}
	}

	logger.Info("scrub run complete", zap.String("run_id", runID))
	return nil
}

func scrubChunk(
	ctx context.Context,
	cfg *Config,
	logger *zap.Logger,
	path string,
	keep []string,
	rules tablescrub.Ruleset,
	opts tablescrub.DumpOptions,
) error {
	tbl, err := tablescrub.LoadChunk(path)
	if err != nil {
		return err
	}
	tbl, err = tbl.SelectColumns(keep)
	if err != nil {
		return err
	}

	logger.Debug("chunk loaded",
		zap.String("chunk", tbl.Name()),
		zap.Int("rows", tbl.RowCount()),
		zap.Int("columns", len(tbl.Header())),
	)

	result, err := tablescrub.Scrub(tbl, tbl.Name(), rules)
	if err != nil {
		return err
	}
	logSummary(logger, result.Summary)

	if err := tablescrub.WriteArtifacts(cfg.OutputDir, result, opts); err != nil {
		return err
	}

	if cfg.SQLitePath != "" {
		tables := []*model.Table{result.Clean, result.HardRejects, result.SoftRejects}
		if err := tablescrub.SaveToSQLite(ctx, cfg.SQLitePath, tables...); err != nil {
			return err
		}
	}
	return nil
}

// logSummary reports the per-chunk reject bookkeeping, including the
// per-column breakdown for both phases.
func logSummary(logger *zap.Logger, s tablescrub.Summary) {
	logger.Info("chunk scrubbed",
		zap.String("chunk", s.ChunkID),
		zap.Int("input_rows", s.InputRows),
		zap.Int("clean_rows", s.CleanRows),
		zap.Int("hard_reject_rows", s.HardRejectRows),
		zap.Int("soft_reject_rows", s.SoftRejectRows),
		zap.Int("soft_fields_nulled", s.SoftFieldsNulled),
	)
	for _, col := range sortedKeys(s.HardRejectsByColumn) {
		logger.Info("hard rejects by column",
			zap.String("chunk", s.ChunkID),
			zap.String("column", col),
			zap.Int("rows", s.HardRejectsByColumn[col]),
		)
	}
	for _, col := range sortedKeys(s.SoftRejectsByColumn) {
		logger.Info("soft rejects by column",
			zap.String("chunk", s.ChunkID),
			zap.String("column", col),
			zap.Int("rows", s.SoftRejectsByColumn[col]),
		)
	}
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func newLogger(verbose bool) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	if verbose {
		config.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	return config.Build()
}
