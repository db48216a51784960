package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/reoring/pathdoc"
	"github.com/reoring/pathdoc/internal/logging"
	"github.com/reoring/pathdoc/source/gojson"
	"github.com/reoring/pathdoc/source/yamlsrc"
	"github.com/reoring/pathdoc/store"
	"github.com/reoring/pathdoc/store/badgerstore"
	"github.com/reoring/pathdoc/store/sqlitestore"
)

const defaultStore = "file:.pathdoc"

type rootParams struct {
	store       string
	driver      string
	logLevel    string
	logFormat   string
	maxDepth    int
	maxBytes    int64
	onDuplicate string
	inputFormat string
	config      string
}

// app carries what every subcommand needs once flags are resolved.
type app struct {
	params rootParams
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
	log    *logrus.Logger
	opt    pathdoc.ParseOpt
	st     store.Store
}

// run executes the command line args and releases the catalog store.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	root, a := newRootCommand(stdin, stdout, stderr)
	root.SetArgs(args)
	return errors.Join(root.Execute(), a.close())
}

func newRootCommand(stdin io.Reader, stdout, stderr io.Writer) (*cobra.Command, *app) {
	a := &app{stdin: stdin, stdout: stdout, stderr: stderr, log: logging.Discard()}
	root := &cobra.Command{
		Use:           "pathdoc",
		Short:         "Read and edit JSON documents through slash-delimited paths",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	f := root.PersistentFlags()
	f.StringVar(&a.params.store, "store", defaultStore, "catalog store as kind:path (file, badger or sqlite)")
	f.StringVar(&a.params.driver, "driver", "json", "JSON tokenizer: json (encoding/json) or gojson (goccy/go-json)")
	f.StringVar(&a.params.logLevel, "log-level", "info", "log level: debug, info, warn or error")
	f.StringVar(&a.params.logFormat, "log-format", "text", "log format: text, json or json-pretty")
	f.IntVar(&a.params.maxDepth, "max-depth", 0, "maximum nesting depth of input documents (0 = unlimited)")
	f.Int64Var(&a.params.maxBytes, "max-bytes", 0, "maximum size of input documents in bytes (0 = unlimited)")
	f.StringVar(&a.params.onDuplicate, "on-duplicate", "ignore", "duplicate object keys: ignore, warn or error")
	f.StringVar(&a.params.inputFormat, "input-format", "json", "document format: json or yaml")
	f.StringVar(&a.params.config, "config", "", "optional config file providing flag defaults")

	root.AddCommand(
		newGetCommand(a),
		newSetCommand(a),
		newDeleteCommand(a),
		newExistsCommand(a),
		newTypeCommand(a),
		newKeysCommand(a),
		newValuesCommand(a),
		newCountCommand(a),
		newMergeCommand(a),
		newCoerceCommand(a),
		newFmtCommand(a),
		newCheckCommand(a),
		newStoreCommand(a),
	)
	return root, a
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg := a.params.config
	if cfg == "" {
		cfg = os.Getenv(strings.ToUpper(envPrefix) + "_CONFIG")
	}
	if err := applyEnvironment(cmd, cfg); err != nil {
		return err
	}

	log, err := logging.New(a.stderr, a.params.logLevel, a.params.logFormat)
	if err != nil {
		return err
	}
	a.log = log

	switch a.params.driver {
	case "json":
		pathdoc.UseDefaultJSONDriver()
	case "gojson":
		pathdoc.SetJSONDriver(gojson.Driver())
	default:
		return fmt.Errorf("unknown driver %q", a.params.driver)
	}

	sev, ok := pathdoc.ParseSeverity(a.params.onDuplicate)
	if !ok {
		return fmt.Errorf("invalid --on-duplicate %q", a.params.onDuplicate)
	}
	a.opt = pathdoc.ParseOpt{
		Strictness: pathdoc.Strictness{OnDuplicateKey: sev},
		MaxDepth:   a.params.maxDepth,
		MaxBytes:   a.params.maxBytes,
		IssueSink: func(iss pathdoc.Issue) {
			a.log.WithFields(logrus.Fields{"code": iss.Code, "path": iss.Path}).Warn(iss.Message)
		},
	}

	switch a.params.inputFormat {
	case "json", "yaml":
	default:
		return fmt.Errorf("unknown input format %q", a.params.inputFormat)
	}
	a.log.WithFields(logrus.Fields{"driver": pathdoc.CurrentJSONDriver().Name(), "store": a.params.store}).Debug("configured")
	return nil
}

func (a *app) close() error {
	if a.st == nil {
		return nil
	}
	err := a.st.Close()
	a.st = nil
	return err
}

// catalog opens the configured store on first use.
func (a *app) catalog(ctx context.Context) (store.Store, error) {
	if a.st != nil {
		return a.st, nil
	}
	kind, path, found := strings.Cut(a.params.store, ":")
	if !found {
		kind, path = "file", a.params.store
	}
	var (
		st  store.Store
		err error
	)
	switch kind {
	case "file":
		st, err = store.NewFileStore(path)
	case "badger":
		st, err = badgerstore.Open(path)
	case "sqlite":
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, err
			}
		}
		st, err = sqlitestore.Open(ctx, path)
	default:
		return nil, fmt.Errorf("unknown store kind %q", kind)
	}
	if err != nil {
		return nil, err
	}
	a.st = st
	return st, nil
}

// parse decodes data in the configured input format.
func (a *app) parse(data []byte) (pathdoc.Value, error) {
	if a.params.inputFormat == "yaml" {
		return yamlsrc.Parse(data, a.opt)
	}
	return pathdoc.ParseBytes(data, a.opt)
}

// docRef names where a document came from so edits can be written back.
type docRef struct {
	arg  string
	name string // catalog name for "@name" arguments
}

func (r docRef) stored() bool { return r.name != "" }

// readRaw loads the bytes behind arg: "-" is stdin, "@name" a catalog entry
// and anything else a file path.
func (a *app) readRaw(ctx context.Context, arg string) ([]byte, docRef, error) {
	ref := docRef{arg: arg}
	switch {
	case arg == "-":
		data, err := io.ReadAll(a.stdin)
		return data, ref, err
	case strings.HasPrefix(arg, "@"):
		ref.name = arg[1:]
		st, err := a.catalog(ctx)
		if err != nil {
			return nil, ref, err
		}
		data, err := st.Get(ctx, ref.name)
		return data, ref, err
	}
	data, err := os.ReadFile(arg)
	return data, ref, err
}

func (a *app) load(ctx context.Context, arg string) (pathdoc.Value, docRef, error) {
	data, ref, err := a.readRaw(ctx, arg)
	if err != nil {
		return nil, ref, err
	}
	v, err := a.parse(data)
	if err != nil {
		return nil, ref, err
	}
	a.log.WithFields(logrus.Fields{"doc": arg, "kind": v.Kind().String()}).Debug("loaded document")
	return v, ref, nil
}

// lookup resolves p while streaming arg, which is opened rather than read
// whole when it names stdin or a file.
func (a *app) lookup(ctx context.Context, arg string, p pathdoc.Path) (pathdoc.Value, bool, error) {
	switch {
	case arg == "-":
		return pathdoc.Lookup(pathdoc.JSONReader(a.stdin), p, a.opt)
	case strings.HasPrefix(arg, "@"):
		data, _, err := a.readRaw(ctx, arg)
		if err != nil {
			return nil, false, err
		}
		return pathdoc.LookupBytes(data, p, a.opt)
	}
	f, err := os.Open(arg)
	if err != nil {
		return nil, false, err
	}
	defer f.Close()
	return pathdoc.Lookup(pathdoc.JSONReader(f), p, a.opt)
}

// save writes v back to catalog entries and, with inPlace, to files.
func (a *app) save(ctx context.Context, ref docRef, v pathdoc.Value, inPlace bool) error {
	switch {
	case ref.stored():
		st, err := a.catalog(ctx)
		if err != nil {
			return err
		}
		return store.SaveDocument(ctx, st, ref.name, v)
	case inPlace && ref.arg != "-":
		return os.WriteFile(ref.arg, append(pathdoc.AppendJSON(nil, v), '\n'), 0o644)
	}
	return nil
}

func (a *app) println(s string) {
	fmt.Fprintln(a.stdout, s)
}
