package pathdoc

import (
	"io"

	eng "github.com/reoring/pathdoc/internal/engine"
)

// DetectDuplicateKeysBytes reports duplicated object keys in data without
// building a tree. maxIssues < 0 is unlimited, 0 disables reporting and a
// positive limit ends the report with a truncated issue. Syntax errors end
// the scan and show up as a parse_error issue.
func DetectDuplicateKeysBytes(data []byte, maxIssues int) (Issues, error) {
	return detectDuplicates(JSONBytes(data), maxIssues)
}

// DetectDuplicateKeysReader is DetectDuplicateKeysBytes over a reader.
func DetectDuplicateKeysReader(r io.Reader, maxIssues int) (Issues, error) {
	return detectDuplicates(JSONReader(r), maxIssues)
}

func detectDuplicates(src Source, maxIssues int) (Issues, error) {
	si, err := eng.DetectDuplicateKeys(EngineTokenSource(src), maxIssues)
	if err != nil {
		return nil, err
	}
	return fromEngineIssues(si), nil
}

func fromEngineIssues(si []eng.SimpleIssue) Issues {
	var iss Issues
	for _, s := range si {
		iss = append(iss, Issue{Code: s.Code, Path: s.Path, Message: s.Message, Offset: s.Offset})
	}
	return iss
}
