package pipeline

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/sadewadee/sheet-report/internal/domain"
)

// numericToken matches the first signed decimal number in a string,
// e.g. "90%" -> 90, "approx 45.5 done" -> 45.5.
var numericToken = regexp.MustCompile(`[-+]?\d*\.?\d+`)

// Classify assigns an indicator value to a status bucket.
//
// Matching is done on the lower-cased, trimmed string form. A value
// containing "complete" or "100" is Completed; substring containment is the
// chosen policy, which means "incomplete" also lands in Completed (see
// DESIGN.md). Otherwise the first numeric token decides: >90 almost
// complete, >50 half done, <=50 work in progress. Non-numeric values count
// as in progress unless blank or "nan", which are unclassified.
func Classify(value string) domain.StatusBucket {
	s := strings.ToLower(strings.TrimSpace(value))

	if strings.Contains(s, "complete") || strings.Contains(s, "100") {
		return domain.BucketCompleted
	}

	token := numericToken.FindString(s)
	if token == "" {
		if s == "" || s == "nan" {
			return domain.BucketUnclassified
		}

		return domain.BucketWorkInProgress
	}

	v, err := strconv.ParseFloat(token, 64)
	if err != nil {
		// Token matched the pattern but does not parse as a float.
		if s == "" || s == "nan" {
			return domain.BucketUnclassified
		}

		return domain.BucketWorkInProgress
	}

	switch {
	case v > 90:
		return domain.BucketAlmostComplete
	case v > 50:
		return domain.BucketHalfDone
	default:
		return domain.BucketWorkInProgress
	}
}
