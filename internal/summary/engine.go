// Package summary joins per-sample annotation outputs (HMMER domain
// search, SignalP prediction, Pfam classification) into one CSV table.
package summary

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/mvillar/annokit/internal/cache"
	"github.com/mvillar/annokit/internal/fasta"
	"github.com/mvillar/annokit/internal/hmmer"
	"github.com/mvillar/annokit/internal/model"
	"github.com/mvillar/annokit/internal/signalp"
	"github.com/mvillar/annokit/internal/worker"
)

// Engine builds summary rows for every sample discovered under a
// pipeline root. All per-sample maps are constructed fresh inside
// BuildSample, so samples can be processed in parallel.
type Engine struct {
	cfg       *model.Config
	accession string // Pfam family accession to select, e.g. PF01083
	cache     cache.Cache
	logger    *log.Logger
}

// NewEngine creates an engine. cache may be nil to disable length-map
// caching.
func NewEngine(cfg *model.Config, accession string, c cache.Cache, logger *log.Logger) *Engine {
	return &Engine{
		cfg:       cfg,
		accession: strings.TrimSpace(accession),
		cache:     c,
		logger:    logger,
	}
}

// Sample describes one discovered sample and its per-sample input paths.
// Optional inputs may point at files that do not exist; those sources
// resolve to empty maps.
type Sample struct {
	Name           string
	SelectedFasta  string // defines the retained identifier set
	HmmTable       string
	SignalPSummary string
	TrimmedFasta   string
	PfamTable      string
	Proteome       string // "" if no original proteome was found
}

// DiscoverSamples enumerates samples under root: one sample per selected
// FASTA matching <root>/<selected_dir>/<sample>/*<selected_suffix>,
// sorted by path. An empty result across the whole root is fatal.
func (e *Engine) DiscoverSamples(root string) ([]Sample, error) {
	l := e.cfg.Layout
	pattern := filepath.Join(root, l.SelectedDir, "*", "*"+l.SelectedSuffix)
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return nil, fmt.Errorf("discover samples: %w", err)
	}
	sort.Strings(matches)
	if len(matches) == 0 {
		return nil, fmt.Errorf("no selected FASTA files found under %s: nothing to summarize", pattern)
	}

	samples := make([]Sample, 0, len(matches))
	for _, sel := range matches {
		name := filepath.Base(filepath.Dir(sel))
		s := Sample{
			Name:           name,
			SelectedFasta:  sel,
			HmmTable:       filepath.Join(root, l.HmmDir, name, name+l.HmmSuffix),
			SignalPSummary: filepath.Join(root, l.SignalPDir, name, name+l.SummarySuffix),
			TrimmedFasta:   filepath.Join(root, l.SignalPDir, name, name+l.TrimmedSuffix),
			PfamTable:      filepath.Join(root, l.PfamDir, name, name+l.PfamSuffix),
		}
		for _, ext := range l.ProteomeExts {
			cand := filepath.Join(root, l.ProteomeDir, name+"."+ext)
			if st, err := os.Stat(cand); err == nil && !st.IsDir() {
				s.Proteome = cand
				break
			}
		}
		samples = append(samples, s)
	}
	return samples, nil
}

// BuildSample assembles one row per retained identifier of the sample,
// in selected-FASTA file order.
func (e *Engine) BuildSample(s Sample) []model.SummaryRow {
	selected := fasta.Lengths(s.SelectedFasta)
	trimmed := fasta.Lengths(s.TrimmedFasta)
	original := fasta.CachedLengths(e.cache, s.Proteome)

	sig, err := signalp.ParseFile(s.SignalPSummary)
	if err != nil {
		e.logger.Warn("signalp summary unreadable, treating as empty", "sample", s.Name, "err", err)
		sig = map[string]model.SignalPeptideRecord{}
	}

	hmmBest := e.bestHits(s.HmmTable, s.Name, hmmer.BestPerTarget)
	pfBest := e.bestHits(s.PfamTable, s.Name, func(hits []model.DomainHit) map[string]model.DomainHit {
		return hmmer.BestPerQuery(hits, e.accession)
	})

	rows := make([]model.SummaryRow, 0, len(selected.IDs))
	for _, id := range selected.IDs {
		rows = append(rows, e.assembleRow(s.Name, id, selected, trimmed, original, sig, hmmBest, pfBest))
	}
	e.logger.Info("sample summarized", "sample", s.Name, "rows", len(rows))
	return rows
}

func (e *Engine) bestHits(path, sample string, reduce func([]model.DomainHit) map[string]model.DomainHit) map[string]model.DomainHit {
	hits, err := hmmer.ParseFile(path)
	if err != nil {
		e.logger.Warn("domain table unreadable, treating as empty", "sample", sample, "path", path, "err", err)
		return map[string]model.DomainHit{}
	}
	return reduce(hits)
}

func (e *Engine) assembleRow(
	sample, id string,
	selected, trimmed, original *fasta.LengthIndex,
	sig map[string]model.SignalPeptideRecord,
	hmmBest, pfBest map[string]model.DomainHit,
) model.SummaryRow {
	row := model.SummaryRow{
		Sample:        sample,
		SequenceID:    id,
		PfamAccession: e.accession,
	}

	if n, ok := selected.Get(id); ok {
		row.LengthSelected = strconv.Itoa(n)
	}
	if n, ok := trimmed.Get(id); ok {
		row.LengthTrimmed = strconv.Itoa(n)
	}

	sp, hasSP := sig[id]

	// Original length: prefer the proteome FASTA, fall back to the
	// length SignalP recorded before cleavage.
	if n, ok := original.Get(id); ok {
		row.LengthOriginal = strconv.Itoa(n)
	} else if hasSP {
		row.LengthOriginal = strconv.Itoa(sp.OriginalLen)
	}

	if hit, ok := hmmBest[id]; ok {
		row.HmmQuery = hit.QueryName
		row.HmmFullEvalue = fmtFloat(hit.FullEvalue)
		row.HmmFullScore = fmtFloat(hit.FullScore)
		row.HmmDomIEvalue = fmtFloat(hit.DomIEvalue)
		row.HmmDomScore = fmtFloat(hit.DomScore)
		row.HmmAliFrom = strconv.Itoa(hit.AliFrom)
		row.HmmAliTo = strconv.Itoa(hit.AliTo)
		row.HmmHmmFrom = strconv.Itoa(hit.HmmFrom)
		row.HmmHmmTo = strconv.Itoa(hit.HmmTo)
		row.HmmAcc = fmtFloat(hit.Acc)
	}

	row.HasSignalPeptide = "no"
	if hasSP {
		row.HasSignalPeptide = "yes"
		row.SpStart = strconv.Itoa(sp.SpStart)
		row.SpEnd = strconv.Itoa(sp.SpEnd)
		row.SpCleavageAfter = strconv.Itoa(sp.CleavageAfterAA)
		row.SpMatureLen = strconv.Itoa(sp.MatureLen)
	}

	if hit, ok := pfBest[id]; ok {
		row.PfamHit = hit.TargetName
		row.PfamFullEval = fmtFloat(hit.FullEvalue)
		row.PfamFullScore = fmtFloat(hit.FullScore)
		row.PfamDomIEval = fmtFloat(hit.DomIEvalue)
		row.PfamDomScore = fmtFloat(hit.DomScore)
		row.PfamAliFrom = strconv.Itoa(hit.AliFrom)
		row.PfamAliTo = strconv.Itoa(hit.AliTo)
		row.PfamDesc = hit.Desc
	}

	return row
}

func fmtFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// sampleJob runs one sample on the worker pool.
type sampleJob struct {
	index   int
	sample  Sample
	engine  *Engine
	limiter *worker.Limiter
}

// sampleResult carries the rows of one sample plus its position in the
// sample enumeration, so output order stays deterministic.
type sampleResult struct {
	index int
	rows  []model.SummaryRow
	err   error
}

func (r *sampleResult) GetError() error { return r.err }

func (j *sampleJob) Execute(ctx context.Context) worker.Result {
	if err := j.limiter.Wait(ctx); err != nil {
		return &sampleResult{index: j.index, err: err}
	}
	return &sampleResult{index: j.index, rows: j.engine.BuildSample(j.sample)}
}

// Run discovers samples under root and builds rows for all of them,
// processing samples in parallel but emitting rows grouped by sample in
// enumeration order.
func (e *Engine) Run(ctx context.Context, root string) ([]model.SummaryRow, error) {
	samples, err := e.DiscoverSamples(root)
	if err != nil {
		return nil, err
	}
	e.logger.Info("samples discovered", "count", len(samples))

	limiter := worker.NewLimiter(e.cfg.Concurrency.MaxRate, e.cfg.Concurrency.Burst)
	pool := worker.NewPool(e.cfg.Concurrency.Workers)
	pool.Start()
	for i, s := range samples {
		pool.Submit(&sampleJob{index: i, sample: s, engine: e, limiter: limiter})
	}
	results := pool.Wait()

	bySample := make([][]model.SummaryRow, len(samples))
	for _, res := range results {
		sr := res.(*sampleResult)
		if sr.err != nil {
			return nil, fmt.Errorf("sample %s: %w", samples[sr.index].Name, sr.err)
		}
		bySample[sr.index] = sr.rows
	}

	var rows []model.SummaryRow
	for _, chunk := range bySample {
		rows = append(rows, chunk...)
	}

	// The pool drops jobs once its context is gone; surface that as a
	// cancellation instead of returning a short table.
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return rows, nil
}
