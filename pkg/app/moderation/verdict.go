package moderation

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

type Verdict int

const (
	// VerdictUnknown means the pipeline could not reach a decision. It is
	// never a synonym for "allowed".
	VerdictUnknown Verdict = iota
	VerdictNoViolation
	VerdictViolation
)

const (
	ReasonNoRules          = "no moderation rules found for this tenant"
	ReasonMissing          = "no reason provided"
	reasonStoreUnavailable = "rule store unavailable"
	reasonTransport        = "judging model transport failure"
	reasonUnparsable       = "unparsable verdict"
)

func (v Verdict) String() string {
	switch v {
	case VerdictNoViolation:
		return "no_violation"
	case VerdictViolation:
		return "violation"
	default:
		return "unknown"
	}
}

func (v Verdict) IsKnown() bool {
	return v == VerdictNoViolation || v == VerdictViolation
}

type Result struct {
	Verdict Verdict
	Reason  string
}

type resultJSON struct {
	IsViolation *bool  `json:"is_violation"`
	Reason      string `json:"reason"`
}

func (r Result) MarshalJSON() ([]byte, error) {
	out := resultJSON{Reason: r.Reason}
	if r.Verdict.IsKnown() {
		isViolation := r.Verdict == VerdictViolation
		out.IsViolation = &isViolation
	}
	return json.Marshal(out)
}

func (r *Result) UnmarshalJSON(data []byte) error {
	var in resultJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	r.Reason = in.Reason
	switch {
	case in.IsViolation == nil:
		r.Verdict = VerdictUnknown
	case *in.IsViolation:
		r.Verdict = VerdictViolation
	default:
		r.Verdict = VerdictNoViolation
	}
	return nil
}

// unknown builds a failed result. When err already wraps a sentinel with
// the same message as prefix, the duplicated prefix is dropped.
func unknown(prefix string, err error, sentinel error) Result {
	detail := err.Error()
	if errors.Is(err, sentinel) {
		detail = strings.TrimPrefix(detail, sentinel.Error()+": ")
	}
	return Result{
		Verdict: VerdictUnknown,
		Reason:  fmt.Sprintf("%s: %s", prefix, detail),
	}
}
