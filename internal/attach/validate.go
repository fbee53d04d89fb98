package attach

// Reason identifies which gate produced the surfaced rejection.
type Reason int

const (
	ReasonNone Reason = iota
	ReasonCount
	ReasonSize
	ReasonType
)

func (r Reason) String() string {
	switch r {
	case ReasonCount:
		return "count"
	case ReasonSize:
		return "size"
	case ReasonType:
		return "type"
	default:
		return "none"
	}
}

// Result is the outcome of validating one batch.
type Result struct {
	Accepted  []PendingFile
	Rejection string // User-facing message, empty when nothing was rejected
	Reason    Reason
	Dropped   int // Number of candidates not accepted
}

// Validate classifies candidates against the rules given that the draft
// already holds currentCount files.
//
// The count gate truncates the batch before any per-file check runs. Every
// remaining file is then checked for size and, if the size passed, for type.
// Only one message is reported per batch: count before size before type.
func Validate(candidates []RawFile, currentCount int, rules RuleSet) Result {
	var res Result
	if len(candidates) == 0 {
		return res
	}

	batch := candidates
	if rules.MaxFiles > 0 && currentCount+len(batch) > rules.MaxFiles {
		room := max(0, rules.MaxFiles-currentCount)
		batch = batch[:room]
		res.Reason = ReasonCount
		res.Rejection = rules.maxFilesMessage()
	}

	maxBytes := rules.MaxFileSizeBytes()
	var sizeFailed, typeFailed bool
	for _, f := range batch {
		if maxBytes > 0 && f.SizeBytes > maxBytes {
			sizeFailed = true
			continue
		}
		if !rules.Matches(f.Name, f.MimeType) {
			typeFailed = true
			continue
		}
		res.Accepted = append(res.Accepted, newPending(f))
	}

	if res.Reason == ReasonNone {
		switch {
		case sizeFailed:
			res.Reason = ReasonSize
			res.Rejection = rules.maxSizeMessage()
		case typeFailed:
			res.Reason = ReasonType
			res.Rejection = rules.invalidTypeMessage()
		}
	}

	res.Dropped = len(candidates) - len(res.Accepted)
	return res
}
