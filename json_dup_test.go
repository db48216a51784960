package pathdoc

import (
	"testing"

	eng "github.com/reoring/pathdoc/internal/engine"
)

func TestDetectDuplicateKeysBytes_NoDup(t *testing.T) {
	iss, err := DetectDuplicateKeysBytes([]byte(`{"a":1,"b":[{"a":2},{"a":3}]}`), -1)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if len(iss) != 0 {
		t.Fatalf("expected 0 issues, got %d: %v", len(iss), iss)
	}
}

func TestDetectDuplicateKeysBytes_WithDup(t *testing.T) {
	iss, err := DetectDuplicateKeysBytes([]byte(`{"x":{"a":1,"a":2}}`), -1)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if len(iss) != 1 || iss[0].Code != CodeDuplicateKey || iss[0].Path != "/x/a" {
		t.Fatalf("expected duplicate_key at /x/a, got %v", iss)
	}
}

func TestDetectDuplicateKeysBytes_Disabled(t *testing.T) {
	iss, err := DetectDuplicateKeysBytes([]byte(`{"a":1,"a":2}`), 0)
	if err != nil || iss != nil {
		t.Fatalf("maxIssues 0 should report nothing, got %v %v", iss, err)
	}
}

func TestFromEngineIssues(t *testing.T) {
	iss := fromEngineIssues([]eng.SimpleIssue{{Code: eng.CodeParseError, Path: "/", Message: "bad", Offset: 7}})
	if len(iss) != 1 || iss[0].Code != CodeParseError || iss[0].Offset != 7 {
		t.Fatalf("unexpected conversion: %+v", iss)
	}
	if fromEngineIssues(nil) != nil {
		t.Fatal("no engine issues should convert to nil")
	}
}
