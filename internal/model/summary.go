package model

// SummaryRow is one output row of the summary table: one retained sequence
// of one sample, with fields joined from every annotation source. All
// fields are pre-formatted strings so that a missing source contributes an
// explicit empty cell rather than a missing column.
type SummaryRow struct {
	Sample     string
	SequenceID string

	LengthOriginal string
	LengthTrimmed  string
	LengthSelected string

	HmmQuery      string
	HmmFullEvalue string
	HmmFullScore  string
	HmmDomIEvalue string
	HmmDomScore   string
	HmmAliFrom    string
	HmmAliTo      string
	HmmHmmFrom    string
	HmmHmmTo      string
	HmmAcc        string

	HasSignalPeptide string // "yes" or "no"
	SpStart          string
	SpEnd            string
	SpCleavageAfter  string
	SpMatureLen      string

	PfamAccession string
	PfamHit       string
	PfamFullEval  string
	PfamFullScore string
	PfamDomIEval  string
	PfamDomScore  string
	PfamAliFrom   string
	PfamAliTo     string
	PfamDesc      string
}

// SummaryHeader is the fixed CSV column order of the summary table.
var SummaryHeader = []string{
	"sample", "sequence_id",
	"length_original_aa", "length_secreted_trimmed_aa", "length_final_selected_aa",
	"hmm_query", "hmm_full_evalue", "hmm_full_bitscore", "hmm_domain_ievalue", "hmm_domain_bitscore",
	"hmm_ali_from", "hmm_ali_to", "hmm_hmm_from", "hmm_hmm_to", "hmm_acc",
	"has_signal_peptide", "signalp_start", "signalp_end", "signalp_cleavage_after_aa", "signalp_mature_length_aa",
	"pfam_accession", "pfam_hit", "pfam_evalue_full", "pfam_bitscore_full",
	"pfam_domain_ievalue", "pfam_domain_bitscore", "pfam_ali_from", "pfam_ali_to", "pfam_desc",
}

// Fields returns the row's cells in SummaryHeader order.
func (r *SummaryRow) Fields() []string {
	return []string{
		r.Sample, r.SequenceID,
		r.LengthOriginal, r.LengthTrimmed, r.LengthSelected,
		r.HmmQuery, r.HmmFullEvalue, r.HmmFullScore, r.HmmDomIEvalue, r.HmmDomScore,
		r.HmmAliFrom, r.HmmAliTo, r.HmmHmmFrom, r.HmmHmmTo, r.HmmAcc,
		r.HasSignalPeptide, r.SpStart, r.SpEnd, r.SpCleavageAfter, r.SpMatureLen,
		r.PfamAccession, r.PfamHit, r.PfamFullEval, r.PfamFullScore,
		r.PfamDomIEval, r.PfamDomScore, r.PfamAliFrom, r.PfamAliTo, r.PfamDesc,
	}
}
