package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/chromatic-tools/datapoint-cli/internal/api"
	"github.com/chromatic-tools/datapoint-cli/internal/config"
	"github.com/chromatic-tools/datapoint-cli/internal/tags"
)

// RunRetag replaces a datapoint's tag list in one shot: fetch the current
// tags, diff them against the requested list, and issue one append or
// remove call per changed tag. Already-applied effects are not undone when
// a later call fails.
func RunRetag(out io.Writer, store retagStore, datapointID, tagList string) error {
	dp, err := store.GetDatapoint(datapointID)
	if err != nil {
		return fmt.Errorf("fetch datapoint: %w", err)
	}

	session := tags.NewSession(dp.ID, dp.TagNames())
	session.BeginEdit()
	session.SetBuffer(tagList)
	diff, submitted := session.Submit()
	if !submitted || diff.Empty() {
		fmt.Fprintln(out, "no changes")
		return nil
	}

	for _, name := range diff.Added {
		fmt.Fprintf(out, "+ %s\n", name)
	}
	for _, name := range diff.Removed {
		fmt.Fprintf(out, "- %s\n", name)
	}

	failed := tags.Apply(store, dp.ID, diff)
	for _, f := range failed {
		fmt.Fprintf(out, "failed: %v\n", f)
	}
	if len(failed) > 0 {
		return fmt.Errorf("%d of %d tag operations failed", len(failed), len(diff.Ops()))
	}
	return nil
}

// retagStore is the slice of the API client the retag command needs.
type retagStore interface {
	tags.TagStore
	GetDatapoint(id string) (*api.Datapoint, error)
}

// RetagCmd returns the `datapoint retag` command.
func RetagCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "retag <datapoint-id> <tag,tag,...>",
		Short: "Replace a datapoint's tags with a comma-separated list",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("not logged in: %w", err)
			}
			baseURL := cfg.ServerURL
			if baseURL == "" {
				baseURL = api.DefaultBaseURL
			}
			client := api.NewClient(baseURL, cfg.APIKey)

			tagList := strings.Join(args[1:], " ")
			return RunRetag(os.Stdout, client, args[0], tagList)
		},
	}
}
