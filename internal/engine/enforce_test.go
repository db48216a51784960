package engine

import (
	"errors"
	"io"
	"testing"
)

// tokens for {"a":[1,{"b":true,"b":null}],"c":"x"}
func sampleTokens() []Token {
	return []Token{
		{Kind: KindBeginObject, Offset: 1},
		{Kind: KindKey, String: "a", Offset: 4},
		{Kind: KindBeginArray, Offset: 6},
		{Kind: KindNumber, Number: "1", Offset: 7},
		{Kind: KindBeginObject, Offset: 9},
		{Kind: KindKey, String: "b", Offset: 12},
		{Kind: KindBool, Bool: true, Offset: 17},
		{Kind: KindKey, String: "b", Offset: 21},
		{Kind: KindNull, Offset: 26},
		{Kind: KindEndObject, Offset: 27},
		{Kind: KindEndArray, Offset: 28},
		{Kind: KindKey, String: "c", Offset: 32},
		{Kind: KindString, String: "x", Offset: 36},
		{Kind: KindEndObject, Offset: 37},
	}
}

func drain(src TokenSource) error {
	for {
		if _, err := src.NextToken(); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
	}
}

func TestEnforce_DuplicateKeyWarnReportsPointer(t *testing.T) {
	var got []SimpleIssue
	src := WrapWithEnforcement(&SliceSource{Tokens: sampleTokens()}, EnforceOptions{
		OnDuplicate: DupWarn,
		IssueSink:   func(si SimpleIssue) { got = append(got, si) },
	})
	if err := drain(src); err != nil {
		t.Fatalf("warn mode must not fail: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 issue, got %d: %v", len(got), got)
	}
	if got[0].Code != CodeDuplicateKey || got[0].Path != "/a/1/b" {
		t.Fatalf("unexpected issue: %+v", got[0])
	}
}

func TestEnforce_DuplicateKeyErrorStops(t *testing.T) {
	src := WrapWithEnforcement(&SliceSource{Tokens: sampleTokens()}, EnforceOptions{OnDuplicate: DupError})
	err := drain(src)
	var ie IssueError
	if !errors.As(err, &ie) {
		t.Fatalf("expected IssueError, got %v", err)
	}
	if ie.Code != CodeDuplicateKey {
		t.Fatalf("expected duplicate_key, got %s", ie.Code)
	}
}

func TestEnforce_MaxDepth(t *testing.T) {
	src := WrapWithEnforcement(&SliceSource{Tokens: sampleTokens()}, EnforceOptions{MaxDepth: 2})
	err := drain(src)
	var ie IssueError
	if !errors.As(err, &ie) {
		t.Fatalf("expected IssueError, got %v", err)
	}
	if ie.Path != "/a/1" {
		t.Fatalf("expected path /a/1, got %s", ie.Path)
	}
}

func TestEnforce_MaxBytes(t *testing.T) {
	src := WrapWithEnforcement(&SliceSource{Tokens: sampleTokens()}, EnforceOptions{MaxBytes: 10})
	err := drain(src)
	var ie IssueError
	if !errors.As(err, &ie) || ie.Code != CodeTruncated {
		t.Fatalf("expected truncated, got %v", err)
	}
}

func TestEnforce_DisabledPassesThrough(t *testing.T) {
	if !(EnforceOptions{}).Disabled() {
		t.Fatalf("zero options should be disabled")
	}
	src := WrapWithEnforcement(&SliceSource{Tokens: sampleTokens()}, EnforceOptions{})
	if err := drain(src); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDetectDuplicateKeys(t *testing.T) {
	iss, err := DetectDuplicateKeys(&SliceSource{Tokens: sampleTokens()}, -1)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if len(iss) != 1 || iss[0].Path != "/a/1/b" {
		t.Fatalf("unexpected issues: %v", iss)
	}

	iss, _ = DetectDuplicateKeys(&SliceSource{Tokens: sampleTokens()}, 0)
	if iss != nil {
		t.Fatalf("maxIssues=0 should disable reporting, got %v", iss)
	}
}

func TestJoinPointer_Escapes(t *testing.T) {
	if got := JoinPointer("/a", "b/c~d"); got != "/a/b~1c~0d" {
		t.Fatalf("got %q", got)
	}
}

func TestDetectDuplicateKeys_TruncatedInput(t *testing.T) {
	toks := sampleTokens()[:4] // {"a":[1
	iss, _ := DetectDuplicateKeys(&SliceSource{Tokens: toks}, -1)
	if len(iss) != 1 || iss[0].Code != CodeParseError {
		t.Fatalf("unexpected issues: %v", iss)
	}

	iss, _ = DetectDuplicateKeys(&SliceSource{}, -1)
	if len(iss) != 1 || iss[0].Code != CodeParseError {
		t.Fatalf("empty input should be a parse error: %v", iss)
	}
}
