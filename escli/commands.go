package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/DeafMist/es-cli/internal/elasticsearch"
	"github.com/DeafMist/es-cli/internal/query"
	"github.com/DeafMist/es-cli/internal/render"
)

func generic(body string) string {
	return render.Format(body, true)
}

func count(body string) string {
	return render.Count(body, true)
}

// searchFetch sends an encoded search body to index.
func searchFetch(index string, payload []byte) fetchFunc {
	return func(ctx context.Context, c *elasticsearch.Client) (string, error) {
		return c.Search(ctx, index, payload)
	}
}

func (a *app) listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all indices",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.exec(cmd, func(ctx context.Context, c *elasticsearch.Client) (string, error) {
				return c.ListIndices(ctx)
			}, generic)
		},
	}
}

func (a *app) getCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <index>",
		Short: "Get the mapping of an index",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.exec(cmd, func(ctx context.Context, c *elasticsearch.Client) (string, error) {
				return c.Mapping(ctx, args[0])
			}, generic)
		},
	}
}

func (a *app) searchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "search <index> <json>",
		Short: "Search an index with a query DSL body",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			body, err := query.Search(args[1])
			if err != nil {
				return err
			}
			payload, err := encode(body)
			if err != nil {
				return err
			}
			return a.exec(cmd, searchFetch(args[0], payload), generic)
		},
	}
}

func (a *app) esqlCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "esql <query>",
		Short: "Run an ES|QL query",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.exec(cmd, func(ctx context.Context, c *elasticsearch.Client) (string, error) {
				return c.ESQL(ctx, args[0])
			}, generic)
		},
	}
}

func (a *app) kqlCmd() *cobra.Command {
	var opts query.KQLOptions

	cmd := &cobra.Command{
		Use:   "kql <index> <query>",
		Short: "Search with query string syntax",
		Example: `  es-cli kql logs-* "status:error AND host:prod-*" --since 1h
  es-cli kql logs-* "timeout" -s -@timestamp -f message,host.name -n 50`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkSize(opts.Size); err != nil {
				return err
			}
			opts.Index, opts.Query = args[0], args[1]
			payload, err := encode(query.KQL(opts))
			if err != nil {
				return err
			}
			return a.exec(cmd, searchFetch(opts.Index, payload), generic)
		},
	}

	f := cmd.Flags()
	f.IntVarP(&opts.Size, "size", "n", 10, "number of hits to return")
	f.StringVarP(&opts.Sort, "sort", "s", "", "sort field, prefix with - for descending or + for ascending")
	f.StringVarP(&opts.Fields, "fields", "f", "", "comma-separated source fields to return")
	f.StringVar(&opts.Time.Since, "since", "", "relative lower bound, e.g. 15m, 1h, 7d")
	f.StringVar(&opts.Time.From, "from", "", "absolute lower bound, overrides --since")
	f.StringVar(&opts.Time.To, "to", "", "upper bound")
	f.StringVar(&opts.Time.Field, "timestamp-field", query.DefaultTimestampField, "field the time range applies to")

	return cmd
}

func (a *app) aliasesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "aliases [pattern]",
		Short: "List aliases",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pattern := optionalArg(args)
			return a.exec(cmd, func(ctx context.Context, c *elasticsearch.Client) (string, error) {
				return c.Aliases(ctx, pattern)
			}, generic)
		},
	}
}

func (a *app) countCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "count <index> [json]",
		Short: "Count documents, optionally matching a query DSL body",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			body := query.CountAll()
			if len(args) == 2 {
				var err error
				if body, err = query.Count(args[1]); err != nil {
					return err
				}
			}
			payload, err := encode(body)
			if err != nil {
				return err
			}
			return a.exec(cmd, func(ctx context.Context, c *elasticsearch.Client) (string, error) {
				return c.Count(ctx, args[0], payload)
			}, count)
		},
	}
}

func (a *app) dataStreamsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "datastreams [pattern]",
		Short: "List data streams",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pattern := optionalArg(args)
			return a.exec(cmd, func(ctx context.Context, c *elasticsearch.Client) (string, error) {
				return c.DataStreams(ctx, pattern)
			}, generic)
		},
	}
}

func (a *app) fieldsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fields <index>",
		Short: "List the mapped fields of an index",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.exec(cmd, func(ctx context.Context, c *elasticsearch.Client) (string, error) {
				return c.Mapping(ctx, args[0])
			}, render.Fields)
		},
	}
}

func (a *app) histogramCmd() *cobra.Command {
	var field, interval string

	cmd := &cobra.Command{
		Use:   "histogram <index>",
		Short: "Count documents over time",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			payload, err := encode(query.Histogram(args[0], field, interval))
			if err != nil {
				return err
			}
			return a.exec(cmd, searchFetch(args[0], payload), render.Histogram)
		},
	}

	cmd.Flags().StringVarP(&field, "field", "f", query.DefaultTimestampField, "date field to bucket on")
	cmd.Flags().StringVarP(&interval, "interval", "i", "1h", "fixed bucket interval")

	return cmd
}

func (a *app) statsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats <index> <field>",
		Short: "Show extended statistics of a numeric field",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			payload, err := encode(query.Stats(args[0], args[1]))
			if err != nil {
				return err
			}
			return a.exec(cmd, searchFetch(args[0], payload), render.Stats)
		},
	}
}

func (a *app) tailCmd() *cobra.Command {
	var size int

	cmd := &cobra.Command{
		Use:   "tail <index>",
		Short: "Show the most recent documents",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkSize(size); err != nil {
				return err
			}
			payload, err := encode(query.Tail(args[0], size))
			if err != nil {
				return err
			}
			return a.exec(cmd, searchFetch(args[0], payload), generic)
		},
	}

	cmd.Flags().IntVarP(&size, "size", "n", 10, "number of documents to return")

	return cmd
}

func (a *app) valuesCmd() *cobra.Command {
	var size int

	cmd := &cobra.Command{
		Use:   "values <index> <field>",
		Short: "Show the most frequent values of a field",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkSize(size); err != nil {
				return err
			}
			payload, err := encode(query.Values(args[0], args[1], size))
			if err != nil {
				return err
			}
			return a.exec(cmd, searchFetch(args[0], payload), render.Values)
		},
	}

	cmd.Flags().IntVarP(&size, "size", "n", 10, "number of values to return")

	return cmd
}

func optionalArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}
