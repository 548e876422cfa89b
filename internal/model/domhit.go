package model

// DomainHit represents one row of HMMER domtblout output: a single scored
// alignment between a query sequence and a profile model.
type DomainHit struct {
	TargetName string // target sequence or family name
	TargetAcc  string // target accession (may carry a ".N" version suffix)
	QueryName  string
	QueryAcc   string

	FullEvalue float64 // full-sequence e-value
	FullScore  float64 // full-sequence bit-score
	FullBias   float64

	DomIEvalue float64 // per-domain independent e-value
	DomScore   float64 // per-domain bit-score
	DomBias    float64

	HmmFrom int
	HmmTo   int
	AliFrom int
	AliTo   int
	EnvFrom int
	EnvTo   int

	Acc  float64 // posterior accuracy
	Desc string  // free-text description (may be empty)
}
