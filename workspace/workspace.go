// Package workspace runs PathDocument operations the way visual programming
// blocks call them: strings in, strings or primitives out, and a status line
// plus an error line left behind for the next "last error" block.
//
// A Workspace replaces the global current-document state of a block runtime
// with an explicit handle. Failures never escape as Go errors; each method
// falls back to a safe default ("{}", "[]", "", false, 0 or -1) and records
// a translated message in LastError.
package workspace

import (
	"errors"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/reoring/pathdoc"
	"github.com/reoring/pathdoc/i18n"
	"github.com/reoring/pathdoc/internal/logging"
)

const (
	emptyObject = "{}"
	emptyArray  = "[]"
)

// Workspace holds the current JSON object, the current array and the outcome
// of the last operation. It is safe for concurrent use; operations are
// serialized.
type Workspace struct {
	mu sync.Mutex

	currentJSON  string
	currentArray string
	lastError    string
	lastStatus   string

	log logrus.FieldLogger
	opt pathdoc.ParseOpt
	tr  i18n.Translator
}

// Option configures a Workspace.
type Option func(*Workspace)

// WithLogger sets the logger that receives debug records of failed
// operations. The default discards everything.
func WithLogger(l logrus.FieldLogger) Option {
	return func(w *Workspace) {
		if l != nil {
			w.log = l
		}
	}
}

// WithParseOpt sets the options used whenever a block input is parsed.
func WithParseOpt(opt pathdoc.ParseOpt) Option {
	return func(w *Workspace) { w.opt = opt }
}

// WithTranslator sets the translator for LastError messages.
func WithTranslator(tr i18n.Translator) Option {
	return func(w *Workspace) {
		if tr != nil {
			w.tr = tr
		}
	}
}

// New returns a Workspace whose current object is "{}" and current array is
// "[]".
func New(opts ...Option) *Workspace {
	w := &Workspace{
		currentJSON:  emptyObject,
		currentArray: emptyArray,
		log:          logging.Discard(),
		tr:           i18n.Current(),
	}
	for _, o := range opts {
		o(w)
	}
	return w
}

// LastError returns the message of the last failed operation, or "" when the
// last operation succeeded.
func (w *Workspace) LastError() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.lastError
}

// LastStatus returns the status line of the last operation.
func (w *Workspace) LastStatus() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.lastStatus
}

// CurrentJSON returns the current JSON object text.
func (w *Workspace) CurrentJSON() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.currentJSON
}

// CurrentArray returns the current array text.
func (w *Workspace) CurrentArray() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.currentArray
}

// begin locks w and clears the outcome of the previous operation. Callers
// defer w.mu.Unlock().
func (w *Workspace) begin() {
	w.mu.Lock()
	w.lastError = ""
	w.lastStatus = ""
}

func (w *Workspace) ok(status string) { w.lastStatus = status }

// fail records err, translated through its issue code, and status.
func (w *Workspace) fail(op, status string, err error) {
	iss := pathdoc.IssueOf(err)
	data := map[string]string{"path": iss.Path, "detail": iss.Message}
	var te *pathdoc.TypeError
	if errors.As(err, &te) && len(te.Want) > 0 {
		data["subject"] = "value"
		data["want"] = te.Want[0].String()
	}
	w.failCode(op, status, iss.Code, data)
}

func (w *Workspace) failCode(op, status, code string, data map[string]string) {
	w.lastError = w.tr.Message(code, data)
	w.lastStatus = status
	w.log.WithFields(logrus.Fields{"op": op, "code": code}).Debug(w.lastError)
}

func (w *Workspace) parse(text string) (pathdoc.Value, error) {
	return pathdoc.Parse(text, w.opt)
}

// parseObject parses text and requires an object.
func (w *Workspace) parseObject(op, status, subject, text string) (*pathdoc.Object, bool) {
	v, err := w.parse(text)
	if err != nil {
		w.fail(op, status, err)
		return nil, false
	}
	obj, isObj := v.(*pathdoc.Object)
	if !isObj {
		w.failCode(op, status, pathdoc.CodeInvalidType, map[string]string{"subject": subject, "want": "object"})
		return nil, false
	}
	return obj, true
}

// parseArray parses text and requires an array.
func (w *Workspace) parseArray(op, status, text string) (*pathdoc.Array, bool) {
	v, err := w.parse(text)
	if err == nil {
		if arr, isArr := v.(*pathdoc.Array); isArr {
			return arr, true
		}
	}
	w.failCode(op, status, pathdoc.CodeInvalidType, map[string]string{"subject": "input", "want": "array"})
	return nil, false
}

func displayPath(path string) string {
	if path == "" {
		return "/"
	}
	return path
}
