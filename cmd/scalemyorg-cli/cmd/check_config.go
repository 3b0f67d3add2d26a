package cmd

import (
	"fmt"

	"github.com/nfrund/scalemyorg/internal/config"
	"github.com/spf13/cobra"
)

var checkConfigCmd = &cobra.Command{
	Use:   "check-config",
	Short: "Validate the environment for the selected backends",
	Long: `Loads .env (if present) and the environment the same way the server does,
then reports every missing or malformed setting.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.New()
		if err := cfg.Validate(); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "configuration is invalid:\n%v\n", err)
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "configuration OK (session backend: %s, email: %s, static: %s)\n",
			cfg.GetSessionBackend(), cfg.GetEmailProvider(), cfg.GetStaticMode())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkConfigCmd)
}
