package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"

	_ "github.com/nfrund/scalemyorg/internal/auth" // registers the session events
	"github.com/nfrund/scalemyorg/internal/pubsub"
	"github.com/spf13/cobra"
)

var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "List the session lifecycle events published on the bus",
	RunE: func(cmd *cobra.Command, args []string) error {
		events := pubsub.RegisteredEvents()
		if len(events) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No events registered.")
			return nil
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tMODULE\tPAYLOAD\tDESCRIPTION")
		for _, e := range events {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", e.Name, e.Module, strings.Join(e.PayloadFields, ","), e.Description)
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(eventsCmd)
}
