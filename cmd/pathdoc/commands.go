package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/reoring/pathdoc"
	"github.com/reoring/pathdoc/codec/protostruct"
	"github.com/reoring/pathdoc/source/yamlsrc"
	"github.com/reoring/pathdoc/store"
)

// pathArg returns args[i] as a Path, or the root when absent.
func pathArg(args []string, i int) pathdoc.Path {
	if i >= len(args) {
		return nil
	}
	return pathdoc.ParsePath(args[i])
}

func notFound(p pathdoc.Path) error {
	return &pathdoc.PathError{Code: pathdoc.CodeNotFound, Op: "get", Path: p, At: len(p) - 1, Message: "path not found"}
}

func newGetCommand(a *app) *cobra.Command {
	var streaming bool
	c := &cobra.Command{
		Use:   "get <doc> <path>",
		Short: "Print the value at path",
		Long: `Print the value at path. Strings print verbatim, containers as compact JSON.
With --stream the JSON input is read only up to the value at path and
nothing else is decoded.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			p := pathArg(args, 1)
			var (
				v   pathdoc.Value
				ok  bool
				err error
			)
			if streaming && a.params.inputFormat != "yaml" {
				v, ok, err = a.lookup(cmd.Context(), args[0], p)
			} else {
				var doc pathdoc.Value
				if doc, _, err = a.load(cmd.Context(), args[0]); err == nil {
					v, ok = pathdoc.Get(doc, p)
				}
			}
			if err != nil {
				return err
			}
			if !ok {
				return notFound(p)
			}
			a.println(pathdoc.Text(v))
			return nil
		},
	}
	c.Flags().BoolVar(&streaming, "stream", false, "stop reading JSON input once the value is found")
	return c
}

func newSetCommand(a *app) *cobra.Command {
	var (
		inPlace bool
		raw     bool
	)
	c := &cobra.Command{
		Use:   "set <doc> <path> <value>",
		Short: "Set the value at path and print the document",
		Long: `Set the value at path, creating missing intermediate objects, and print
the resulting document. The value is coerced from text (JSON, true/false/null,
numbers, else a string) unless --raw is given. Catalog documents (@name) are
written back; files only with --in-place.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			doc, ref, err := a.load(ctx, args[0])
			if err != nil {
				return err
			}
			var v pathdoc.Value = pathdoc.String(args[2])
			if !raw {
				v = pathdoc.Coerce(args[2])
			}
			p := pathdoc.ParsePath(args[1])
			if err := pathdoc.Set(doc, p, v); err != nil {
				return err
			}
			a.log.WithFields(logrus.Fields{"path": p.String(), "kind": v.Kind().String()}).Debug("set value")
			if err := a.save(ctx, ref, doc, inPlace); err != nil {
				return err
			}
			a.println(pathdoc.Stringify(doc))
			return nil
		},
	}
	c.Flags().BoolVarP(&inPlace, "in-place", "i", false, "rewrite the input file")
	c.Flags().BoolVar(&raw, "raw", false, "store the value as a plain string")
	return c
}

func newDeleteCommand(a *app) *cobra.Command {
	var inPlace bool
	c := &cobra.Command{
		Use:     "delete <doc> <path>",
		Aliases: []string{"rm"},
		Short:   "Delete the value at path and print the document",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			doc, ref, err := a.load(ctx, args[0])
			if err != nil {
				return err
			}
			if err := pathdoc.Delete(doc, pathdoc.ParsePath(args[1])); err != nil {
				return err
			}
			if err := a.save(ctx, ref, doc, inPlace); err != nil {
				return err
			}
			a.println(pathdoc.Stringify(doc))
			return nil
		},
	}
	c.Flags().BoolVarP(&inPlace, "in-place", "i", false, "rewrite the input file")
	return c
}

func newExistsCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "exists <doc> <path>",
		Short: "Print whether path resolves",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, _, err := a.load(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			a.println(strconv.FormatBool(pathdoc.Exists(doc, pathArg(args, 1))))
			return nil
		},
	}
}

func newTypeCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "type <doc> [path]",
		Short: "Print the type of the value at path",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, _, err := a.load(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			p := pathArg(args, 1)
			k, ok := pathdoc.TypeOf(doc, p)
			if !ok {
				return notFound(p)
			}
			a.println(k.String())
			return nil
		},
	}
}

// objectAt loads doc and resolves the optional path argument.
func (a *app) objectAt(cmd *cobra.Command, args []string) (pathdoc.Value, error) {
	doc, _, err := a.load(cmd.Context(), args[0])
	if err != nil {
		return nil, err
	}
	p := pathArg(args, 1)
	v, ok := pathdoc.Get(doc, p)
	if !ok {
		return nil, notFound(p)
	}
	return v, nil
}

func newKeysCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "keys <doc> [path]",
		Short: "Print the keys of the object at path, one per line",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := a.objectAt(cmd, args)
			if err != nil {
				return err
			}
			keys, err := pathdoc.Keys(v)
			if err != nil {
				return err
			}
			for _, k := range keys {
				a.println(k)
			}
			return nil
		},
	}
}

func newValuesCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "values <doc> [path]",
		Short: "Print the values of the object at path, one per line",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := a.objectAt(cmd, args)
			if err != nil {
				return err
			}
			vals, err := pathdoc.ValuesText(v)
			if err != nil {
				return err
			}
			for _, s := range vals {
				a.println(s)
			}
			return nil
		},
	}
}

func newCountCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "count <doc> [path]",
		Short: "Print the number of keys of the object at path",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := a.objectAt(cmd, args)
			if err != nil {
				return err
			}
			n, err := pathdoc.PropertyCount(v)
			if err != nil {
				return err
			}
			a.println(strconv.Itoa(n))
			return nil
		},
	}
}

func newMergeCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "merge <doc> <doc>",
		Short: "Shallow-merge the second object over the first and print it",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			left, _, err := a.load(ctx, args[0])
			if err != nil {
				return err
			}
			right, _, err := a.load(ctx, args[1])
			if err != nil {
				return err
			}
			merged, err := pathdoc.Merge(left, right)
			if err != nil {
				return err
			}
			a.println(pathdoc.Stringify(merged))
			return nil
		},
	}
}

func newCoerceCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "coerce <text>",
		Short: "Print the JSON value free text coerces to, and its type",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			v := pathdoc.Coerce(args[0])
			a.println(pathdoc.Stringify(v) + "\t" + v.Kind().String())
			return nil
		},
	}
}

func newFmtCommand(a *app) *cobra.Command {
	var (
		indent string
		output string
	)
	c := &cobra.Command{
		Use:   "fmt <doc>",
		Short: "Re-encode a document as json, yaml or protojson",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, _, err := a.load(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			switch output {
			case "json":
				a.println(pathdoc.StringifyIndent(doc, indent))
			case "yaml":
				out, err := yamlsrc.Marshal(doc)
				if err != nil {
					return err
				}
				fmt.Fprint(a.stdout, string(out))
			case "protojson":
				out, err := protostruct.MarshalJSON(doc)
				if err != nil {
					return err
				}
				a.println(string(out))
			default:
				return fmt.Errorf("unknown output format %q", output)
			}
			return nil
		},
	}
	c.Flags().StringVar(&indent, "indent", "", "indent string for json output (empty = compact)")
	c.Flags().StringVarP(&output, "output", "o", "json", "output format: json, yaml or protojson")
	return c
}

func newCheckCommand(a *app) *cobra.Command {
	var maxIssues int
	c := &cobra.Command{
		Use:   "check <doc>",
		Short: "Report duplicate object keys without building the document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, _, err := a.readRaw(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			iss, err := pathdoc.DetectDuplicateKeysBytes(data, maxIssues)
			if err != nil {
				return err
			}
			for _, is := range iss {
				a.println(is.Code + "\t" + is.Path + "\t" + is.Message)
			}
			if len(iss) > 0 {
				return iss
			}
			return nil
		},
	}
	c.Flags().IntVar(&maxIssues, "max-issues", -1, "stop after this many issues (-1 = unlimited)")
	return c
}

func newStoreCommand(a *app) *cobra.Command {
	c := &cobra.Command{
		Use:   "store",
		Short: "Manage the document catalog",
	}
	c.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List stored document names",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				st, err := a.catalog(cmd.Context())
				if err != nil {
					return err
				}
				names, err := st.List(cmd.Context())
				if err != nil {
					return err
				}
				for _, n := range names {
					a.println(n)
				}
				return nil
			},
		},
		&cobra.Command{
			Use:   "put <name> <doc>",
			Short: "Validate a document and store it under name",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				ctx := cmd.Context()
				doc, _, err := a.load(ctx, args[1])
				if err != nil {
					return err
				}
				st, err := a.catalog(ctx)
				if err != nil {
					return err
				}
				return store.SaveDocument(ctx, st, args[0], doc)
			},
		},
		&cobra.Command{
			Use:   "get <name>",
			Short: "Print a stored document",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				doc, _, err := a.load(cmd.Context(), "@"+args[0])
				if err != nil {
					return err
				}
				a.println(pathdoc.Stringify(doc))
				return nil
			},
		},
		&cobra.Command{
			Use:   "rm <name>",
			Short: "Remove a stored document",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				st, err := a.catalog(cmd.Context())
				if err != nil {
					return err
				}
				if err := st.Delete(cmd.Context(), args[0]); err != nil {
					if errors.Is(err, store.ErrNotFound) {
						return fmt.Errorf("%s: %w", args[0], err)
					}
					return err
				}
				return nil
			},
		},
	)
	return c
}
