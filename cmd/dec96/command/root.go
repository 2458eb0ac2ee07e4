// Package command holds the dec96 command tree.
package command

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/golang/glog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// New builds the dec96 command tree. Each call returns an independent tree
// with its own configuration registry.
//
// Every flag can also be set from the environment with a DEC96_ prefix, so
// --round-scale becomes DEC96_ROUND_SCALE, or from the file named by
// --config. Flags set on the command line win.
func New() *cobra.Command {
	cfg := viper.New()
	cfg.SetEnvPrefix("DEC96")
	cfg.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	cfg.AutomaticEnv()

	root := &cobra.Command{
		Use:   "dec96",
		Short: "dec96 adds fixed-point decimals of up to 96 bits.",
		Long: "`dec96` parses decimal or binary literals and adds them with either the packed\n" +
			"96-bit engine (`add`) or the 64-digit base-10 engine (`sum`).\n\n" +
			"Operands are read from the arguments, or from stdin when there are none.\n" +
			"Put `--` before the first operand if it is negative.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.BindPFlags(cmd.Flags()); err != nil {
				return err
			}
			if path := cfg.GetString("config"); path != "" {
				cfg.SetConfigFile(path)
				if err := cfg.ReadInConfig(); err != nil {
					return fmt.Errorf("dec96: reading config %q: %w", path, err)
				}
				glog.V(1).Infof("config loaded from %s", cfg.ConfigFileUsed())
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			glog.Flush()
		},
	}

	root.PersistentFlags().String("config", "", "Read flag defaults from this json, yaml or toml file.")
	root.PersistentFlags().Int("radix", 10, "Radix of the operand literals, 2 or 10.")

	root.AddCommand(
		newAddCmd(cfg),
		newSumCmd(cfg),
		newBitsCmd(cfg),
	)
	return root
}

// readOperands returns args, or every whitespace separated word on the
// command's input when args is empty.
func readOperands(cmd *cobra.Command, args []string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}

	var ops []string
	scn := bufio.NewScanner(cmd.InOrStdin())
	scn.Split(bufio.ScanWords)
	for scn.Scan() {
		ops = append(ops, scn.Text())
	}
	if err := scn.Err(); err != nil {
		return nil, err
	}
	if len(ops) == 0 {
		return nil, fmt.Errorf("dec96: no operands")
	}
	return ops, nil
}
