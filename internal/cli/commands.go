package cli

import (
	"fmt"
	"runtime"

	"braces.dev/errtrace"
	"github.com/spf13/cobra"

	"github.com/ghettovoice/urisplit/escape"
	"github.com/ghettovoice/urisplit/query"
	"github.com/ghettovoice/urisplit/uri"
)

type splitFlags struct {
	defScheme   string
	noFragments bool
}

func (f *splitFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.defScheme, "scheme", "s", "", "scheme used when the URL has none")
	cmd.Flags().BoolVar(&f.noFragments, "no-fragments", false, "keep '#' and what follows it in the preceding component")
}

func (f *splitFlags) options() *uri.SplitOptions {
	return &uri.SplitOptions{DefaultScheme: f.defScheme, IgnoreFragment: f.noFragments}
}

func newSplitCommand(a *app) *cobra.Command {
	var f splitFlags
	cmd := &cobra.Command{
		Use:   "split URL",
		Short: "Split a URL into scheme, authority, path, query and fragment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.parser.Split(args[0], f.options())
			if err != nil {
				return errtrace.Wrap(err)
			}
			return errtrace.Wrap(a.render(cmd, res,
				field{"scheme", res.Scheme},
				field{"authority", res.Authority},
				field{"path", res.Path},
				field{"query", res.Query},
				field{"fragment", res.Fragment},
			))
		},
	}
	f.register(cmd)
	return cmd
}

func newParseCommand(a *app) *cobra.Command {
	var f splitFlags
	cmd := &cobra.Command{
		Use:   "parse URL",
		Short: "Split a URL and separate the parameters of its last path segment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.parser.Parse(args[0], f.options())
			if err != nil {
				return errtrace.Wrap(err)
			}
			return errtrace.Wrap(a.render(cmd, res,
				field{"scheme", res.Scheme},
				field{"authority", res.Authority},
				field{"path", res.Path},
				field{"params", res.Params},
				field{"query", res.Query},
				field{"fragment", res.Fragment},
			))
		},
	}
	f.register(cmd)
	return cmd
}

func newJoinCommand(a *app) *cobra.Command {
	var noFragments bool
	cmd := &cobra.Command{
		Use:   "join BASE REF",
		Short: "Resolve a reference against a base URL",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.parser.Join(args[0], args[1], &uri.JoinOptions{IgnoreFragment: noFragments})
			if err != nil {
				return errtrace.Wrap(err)
			}
			return errtrace.Wrap(a.renderString(cmd, "url", s))
		},
	}
	cmd.Flags().BoolVar(&noFragments, "no-fragments", false, "do not split fragments of base and reference")
	return cmd
}

func newDefragCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "defrag URL",
		Short: "Remove the fragment from a URL",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.parser.Defrag(args[0])
			if err != nil {
				return errtrace.Wrap(err)
			}
			return errtrace.Wrap(a.render(cmd, res,
				field{"url", res.URL},
				field{"fragment", res.Fragment},
			))
		},
	}
}

type codecFlags struct {
	plus     bool
	encoding string
	errors   string
}

func (f *codecFlags) register(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&f.plus, "plus", false, "use '+' for spaces")
	cmd.Flags().StringVar(&f.encoding, "encoding", "", "character encoding, default utf-8")
	cmd.Flags().StringVar(&f.errors, "errors", "", "error policy: strict, replace or ignore")
}

func (f *codecFlags) options() (*escape.Options, error) {
	p, err := escape.ParseErrorPolicy(f.errors)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	return &escape.Options{Encoding: f.encoding, Errors: p}, nil
}

func newQuoteCommand(a *app) *cobra.Command {
	var (
		f    codecFlags
		safe string
	)
	cmd := &cobra.Command{
		Use:   "quote TEXT",
		Short: "Percent-encode text",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := f.options()
			if err != nil {
				return errtrace.Wrap(err)
			}
			quote := a.escapes.Quote
			if f.plus {
				quote = a.escapes.QuotePlus
			}
			s, err := quote(args[0], safe, opts)
			if err != nil {
				return errtrace.Wrap(err)
			}
			return errtrace.Wrap(a.renderString(cmd, "quoted", s))
		},
	}
	f.register(cmd)
	cmd.Flags().StringVar(&safe, "safe", escape.DefaultSafe, "ASCII characters left unencoded")
	return cmd
}

func newUnquoteCommand(a *app) *cobra.Command {
	var f codecFlags
	cmd := &cobra.Command{
		Use:   "unquote TEXT",
		Short: "Decode percent-encoded text",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := f.options()
			if err != nil {
				return errtrace.Wrap(err)
			}
			unquote := escape.Unquote
			if f.plus {
				unquote = escape.UnquotePlus
			}
			s, err := unquote(args[0], opts)
			if err != nil {
				return errtrace.Wrap(err)
			}
			return errtrace.Wrap(a.renderString(cmd, "unquoted", s))
		},
	}
	f.register(cmd)
	return cmd
}

func newQueryCommand(a *app) *cobra.Command {
	var (
		opts   query.ParseOptions
		errPol string
	)
	cmd := &cobra.Command{
		Use:   "query QS",
		Short: "Parse a query string into name-value pairs",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := escape.ParseErrorPolicy(errPol)
			if err != nil {
				return errtrace.Wrap(err)
			}
			opts.Errors = p
			pairs, err := query.ParseList(args[0], &opts)
			if err != nil {
				return errtrace.Wrap(err)
			}
			if pairs == nil {
				pairs = []query.Pair{}
			}
			fields := make([]field, len(pairs))
			for i, pair := range pairs {
				fields[i] = field{pair.Name, pair.Value}
			}
			return errtrace.Wrap(a.render(cmd, pairs, fields...))
		},
	}
	cmd.Flags().BoolVar(&opts.KeepBlankValues, "keep-blank", false, "keep fields with empty values")
	cmd.Flags().BoolVar(&opts.Strict, "strict", false, "fail on fields without '='")
	cmd.Flags().StringVar(&opts.Encoding, "encoding", "", "character encoding, default utf-8")
	cmd.Flags().StringVar(&errPol, "errors", "", "error policy: strict, replace or ignore")
	return cmd
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		PersistentPreRun: func(*cobra.Command, []string) {},
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "urisplit %s %s/%s\n", Version, runtime.GOOS, runtime.GOARCH)
			return errtrace.Wrap(err)
		},
	}
}
