package model

// SignalPeptideRecord represents one data row of a SignalP summary TSV,
// keyed by the first whitespace token of the originating identifier.
type SignalPeptideRecord struct {
	SpStart         int // predicted signal-peptide start (1-based)
	SpEnd           int // predicted signal-peptide end (1-based)
	CleavageAfterAA int // cleavage site position
	OriginalLen     int // sequence length before cleavage
	MatureLen       int // sequence length after cleavage
}
