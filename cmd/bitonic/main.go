// Command bitonic demonstrates and benchmarks the sorters of the
// github.com/exascience/bitonic/sort package.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var logger = zap.NewNop()

var rootInfo = "demonstrate and benchmark bitonic and hybrid parallel sorting"
var RootCmd = &cobra.Command{
	Use:          "bitonic",
	Short:        rootInfo,
	Long:         rootInfo,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := viper.BindPFlags(cmd.Flags()); err != nil {
			return err
		}
		return initLogger(viper.GetBool("verbose"))
	},
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), "use bitonic --help or -h")
	},
}

func init() {
	viper.SetEnvPrefix("bitonic")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	RootCmd.PersistentFlags().BoolP("verbose", "v", false, "log at debug level")
	RootCmd.AddCommand(demoCmd, benchCmd)
}

func initLogger(verbose bool) (err error) {
	if verbose {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	return
}

func main() {
	err := RootCmd.Execute()
	_ = logger.Sync()
	if err != nil {
		os.Exit(1)
	}
}
