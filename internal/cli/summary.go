package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mvillar/annokit/internal/cache"
	"github.com/mvillar/annokit/internal/model"
	"github.com/mvillar/annokit/internal/summary"
)

var (
	pfamAcc string
	rootDir string
	outCSV  string
	workers int
	maxRate float64
	noCache bool
)

// summaryCmd represents the summary command
var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Join per-sample annotation outputs into one CSV summary table",
	Long: `Summary discovers samples under a pipeline root (one sample per final
selected FASTA), joins each sample's annotation outputs, and writes one
CSV row per retained sequence:

- sequence lengths from the selected, trimmed and original FASTAs
- the best hmmsearch hit per sequence (min domain i-evalue, ties by
  max domain bit-score)
- the best hit of the requested Pfam family per sequence
- the SignalP cleavage record, when present

Samples are processed in parallel; missing optional inputs for a sample
become empty columns, never errors.

Example:
  annokit summary --pfam PF01083
  annokit summary --pfam PF01083 --root /data/run42 --out summary.csv --workers 4`,
	RunE: runSummary,
}

func init() {
	rootCmd.AddCommand(summaryCmd)

	summaryCmd.Flags().StringVar(&pfamAcc, "pfam", "", "Pfam accession to select (e.g. PF01083)")
	summaryCmd.Flags().StringVar(&rootDir, "root", "", "pipeline root (default: walk up from cwd until data/ and results/ exist)")
	summaryCmd.Flags().StringVar(&outCSV, "out", "results/summary/candidates_summary.csv", "output CSV path (relative paths resolve against the root)")
	summaryCmd.Flags().IntVar(&workers, "workers", runtime.NumCPU(), "number of concurrent sample workers")
	summaryCmd.Flags().Float64Var(&maxRate, "max-rate", 0, "max samples started per second (0 = unlimited)")
	summaryCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the FASTA length-map cache")

	_ = summaryCmd.MarkFlagRequired("pfam")
}

func runSummary(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	// Build configuration from defaults and flags
	cfg := model.DefaultConfig()
	cfg.Concurrency.Workers = workers
	cfg.Concurrency.MaxRate = maxRate
	cfg.Output.Verbose = verbose
	cfg.Cache.Enabled = !noCache && cfg.Cache.Enabled
	if dir := viper.GetString("cache.dir"); dir != "" {
		cfg.Cache.Dir = dir
	}

	root := rootDir
	if root == "" {
		root = findPipelineRoot()
	}
	logger.Debug("pipeline root resolved", "root", root)

	var c cache.Cache
	if cfg.Cache.Enabled {
		dir := cfg.Cache.Dir
		if dir == "" {
			home, err := os.UserHomeDir()
			if err == nil {
				dir = filepath.Join(home, ".annokit", "cache")
			}
		}
		if dir != "" {
			c = cache.NewLayeredCache(cfg.Cache.MemoryTTL, dir, cfg.Cache.DiskTTL)
		}
	}

	engine := summary.NewEngine(cfg, pfamAcc, c, logger)
	rows, err := engine.Run(ctx, root)
	if err != nil {
		return err
	}

	out := outCSV
	if !filepath.IsAbs(out) {
		out = filepath.Join(root, out)
	}
	if err := summary.WriteCSVFile(out, rows); err != nil {
		return fmt.Errorf("write summary: %w", err)
	}

	fmt.Printf("OK: wrote %d rows -> %s\n", len(rows), out)
	return nil
}

// findPipelineRoot walks up from the working directory looking for the
// conventional data/ and results/ pair, falling back to the cwd.
func findPipelineRoot() string {
	here, err := os.Getwd()
	if err != nil {
		return "."
	}
	dir := here
	for i := 0; i < 6; i++ {
		if isDir(filepath.Join(dir, "data")) && isDir(filepath.Join(dir, "results")) {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return here
}

func isDir(path string) bool {
	st, err := os.Stat(path)
	return err == nil && st.IsDir()
}
