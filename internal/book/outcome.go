package book

// OutcomeKind discriminates the Outcome variant.
type OutcomeKind int

const (
	// OutcomeEmpty means the source answered with nothing usable.
	OutcomeEmpty OutcomeKind = iota
	// OutcomeSuccess means Record holds the source's data.
	OutcomeSuccess
	// OutcomeFailure means the call failed; Reason explains why.
	OutcomeFailure
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeSuccess:
		return "success"
	case OutcomeFailure:
		return "failure"
	default:
		return "empty"
	}
}

// Outcome is the result of exactly one source call.
type Outcome struct {
	Kind   OutcomeKind
	Record *PartialRecord
	Reason error
}

// Success wraps a record. A nil or empty record degrades to Empty.
func Success(rec *PartialRecord) Outcome {
	if rec.IsEmpty() {
		return Empty()
	}
	return Outcome{Kind: OutcomeSuccess, Record: rec}
}

// Empty reports that the source had nothing.
func Empty() Outcome {
	return Outcome{Kind: OutcomeEmpty}
}

// Failure reports a failed call.
func Failure(reason error) Outcome {
	return Outcome{Kind: OutcomeFailure, Reason: reason}
}

// OK reports whether the outcome carries a record.
func (o Outcome) OK() bool {
	return o.Kind == OutcomeSuccess && o.Record != nil
}
