package model

import (
	"runtime"
	"time"
)

// Config is the complete annokit configuration
type Config struct {
	Layout      LayoutConfig      `yaml:"layout"`
	Concurrency ConcurrencyConfig `yaml:"concurrency"`
	Cache       CacheConfig       `yaml:"cache"`
	Output      OutputConfig      `yaml:"output"`
}

// LayoutConfig describes where a pipeline run keeps its per-sample files,
// relative to the pipeline root. Defaults match the standard stage layout
// (01_hmmsearch / 02_signalp / 03_pfam).
type LayoutConfig struct {
	SelectedDir    string `yaml:"selected_dir"`    // dir of final selected FASTAs, one subdir per sample
	SelectedSuffix string `yaml:"selected_suffix"` // filename suffix of the selected FASTA

	HmmDir    string `yaml:"hmm_dir"`
	HmmSuffix string `yaml:"hmm_suffix"`

	SignalPDir    string `yaml:"signalp_dir"`
	SummarySuffix string `yaml:"summary_suffix"`
	TrimmedSuffix string `yaml:"trimmed_suffix"`

	PfamDir    string `yaml:"pfam_dir"`
	PfamSuffix string `yaml:"pfam_suffix"`

	ProteomeDir  string   `yaml:"proteome_dir"`
	ProteomeExts []string `yaml:"proteome_exts"`
}

// ConcurrencyConfig controls parallel per-sample processing
type ConcurrencyConfig struct {
	Workers int     `yaml:"workers"`
	MaxRate float64 `yaml:"max_rate"` // samples per second, 0 = unlimited
	Burst   int     `yaml:"burst"`
}

// CacheConfig controls the FASTA length-map cache
type CacheConfig struct {
	Enabled   bool          `yaml:"enabled"`
	Dir       string        `yaml:"dir"`
	MemoryTTL time.Duration `yaml:"memory_ttl"`
	DiskTTL   time.Duration `yaml:"disk_ttl"`
}

// OutputConfig controls output behavior
type OutputConfig struct {
	Verbose bool `yaml:"verbose"`
	Wrap    int  `yaml:"wrap"` // FASTA line width, 0 = no wrap
}

// DefaultConfig returns the built-in defaults
func DefaultConfig() *Config {
	return &Config{
		Layout: LayoutConfig{
			SelectedDir:    "results/03_pfam",
			SelectedSuffix: "_pfam_filtered.fasta",
			HmmDir:         "results/01_hmmsearch",
			HmmSuffix:      ".domtblout",
			SignalPDir:     "results/02_signalp",
			SummarySuffix:  "_signalP_summary.tsv",
			TrimmedSuffix:  "_signalp_trimmed.fasta",
			PfamDir:        "results/03_pfam",
			PfamSuffix:     "_pfam.domtblout",
			ProteomeDir:    "data/proteomes",
			ProteomeExts:   []string{"faa", "fasta", "fa", "fna"},
		},
		Concurrency: ConcurrencyConfig{
			Workers: runtime.NumCPU(),
			MaxRate: 0,
			Burst:   5,
		},
		Cache: CacheConfig{
			Enabled:   true,
			Dir:       "",
			MemoryTTL: 15 * time.Minute,
			DiskTTL:   24 * time.Hour,
		},
		Output: OutputConfig{
			Verbose: false,
			Wrap:    0,
		},
	}
}
