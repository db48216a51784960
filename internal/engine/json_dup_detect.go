package engine

import (
	"errors"
	"io"
)

// DetectDuplicateKeys drains src and reports every duplicated object key with
// its JSON Pointer. maxIssues < 0 means unlimited; 0 disables reporting; > 0
// stops after that many issues and appends a truncated marker.
//
// A syntax error from the underlying source ends the scan and is reported as a
// parse_error issue rather than returned.
func DetectDuplicateKeys(src TokenSource, maxIssues int) ([]SimpleIssue, error) {
	if maxIssues == 0 {
		return nil, nil
	}
	var issues []SimpleIssue
	sink := func(si SimpleIssue) {
		issues = append(issues, si)
	}
	enforced := &enforcingTokenSource{inner: src, opt: EnforceOptions{OnDuplicate: DupWarn, IssueSink: sink}}
	seen := false
	for {
		if maxIssues > 0 && len(issues) >= maxIssues {
			issues = append(issues, SimpleIssue{Code: CodeTruncated, Path: "/", Message: "max issues reached", Offset: -1})
			return issues, nil
		}
		_, err := enforced.NextToken()
		if err == nil {
			seen = true
			continue
		}
		if errors.Is(err, io.EOF) {
			if !seen || len(enforced.stack) > 0 {
				issues = append(issues, SimpleIssue{Code: CodeParseError, Path: "/", Message: "unexpected end of JSON input", Offset: src.Location()})
			}
			return issues, nil
		}
		issues = append(issues, SimpleIssue{Code: CodeParseError, Path: "/", Message: err.Error(), Offset: src.Location()})
		return issues, nil
	}
}
