package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/nfrund/scalemyorg/internal/app"
	"github.com/nfrund/scalemyorg/internal/config"
	"github.com/nfrund/scalemyorg/internal/server"
	"github.com/samber/do/v2"
	"github.com/spf13/cobra"
)

var routesCmd = &cobra.Command{
	Use:   "routes",
	Short: "Print the HTTP route table",
	Long: `Builds the HTTP server against in-memory stores and prints every
registered method and path. No listener is opened and no backend is contacted.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.FromEnv()
		cfg.SessionBackend = config.SessionBackendMemory
		cfg.EmailProvider = "log"

		srv, err := do.Invoke[*server.Server](app.NewContainer(cfg))
		if err != nil {
			return fmt.Errorf("build server: %w", err)
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "METHOD\tPATH")
		for _, r := range srv.RouteTable() {
			fmt.Fprintf(w, "%s\t%s\n", r.Method, r.Path)
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(routesCmd)
}
