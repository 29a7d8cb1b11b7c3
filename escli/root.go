package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/DeafMist/es-cli/internal/config"
	"github.com/DeafMist/es-cli/internal/elasticsearch"
	"github.com/DeafMist/es-cli/internal/logger"
	"github.com/DeafMist/es-cli/internal/query"
)

const serviceName = "es-cli"

var version = "dev"

// app carries the state shared by every subcommand of one invocation.
type app struct {
	human bool
}

// fetchFunc performs the single request of a command.
type fetchFunc func(ctx context.Context, c *elasticsearch.Client) (string, error)

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:     "es-cli",
		Short:   "Minimal CLI for Elasticsearch",
		Version: version,
		Long: strings.Join([]string{
			"Query an Elasticsearch cluster from the command line.",
			"",
			"Settings are read from the environment (or a .env file):",
			"  ELASTICSEARCH_URL       cluster URL",
			"  ELASTICSEARCH_API_KEY   API key",
			"  ELASTICSEARCH_TIMEOUT   response timeout (default 30s)",
			"  ES_CLI_CONFIG           optional YAML file with the same keys",
			"",
			"Responses are printed as JSON on stdout unless -H is given; errors go to stderr.",
		}, "\n"),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().BoolVarP(&a.human, "human", "H", false, "human-readable output instead of JSON")

	root.AddCommand(
		a.listCmd(),
		a.getCmd(),
		a.searchCmd(),
		a.esqlCmd(),
		a.kqlCmd(),
		a.aliasesCmd(),
		a.countCmd(),
		a.dataStreamsCmd(),
		a.fieldsCmd(),
		a.histogramCmd(),
		a.statsCmd(),
		a.tailCmd(),
		a.valuesCmd(),
	)

	return root
}

func (a *app) connect(cmd *cobra.Command) (*elasticsearch.Client, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	log := logger.New(serviceName, cfg.LogLevel, cmd.ErrOrStderr())
	return elasticsearch.New(cfg.ElasticsearchURL, cfg.APIKey, cfg.Timeout, log)
}

// exec runs fetch against the cluster and prints the response, rendered by
// human when the -H flag is set.
func (a *app) exec(cmd *cobra.Command, fetch fetchFunc, human func(string) string) error {
	c, err := a.connect(cmd)
	if err != nil {
		return err
	}

	body, err := fetch(cmd.Context(), c)
	if err != nil {
		return err
	}

	if a.human {
		body = human(body)
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), body)
	return err
}

func encode(b query.Body) ([]byte, error) {
	payload, err := b.Encode()
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}
	return payload, nil
}

func checkSize(n int) error {
	if n < 0 {
		return fmt.Errorf("size must not be negative, got %d", n)
	}
	return nil
}
