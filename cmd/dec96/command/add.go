package command

import (
	"fmt"

	"github.com/golang/glog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	dec96 "github.com/shabbyrobe/go-dec96"
)

func newAddCmd(cfg *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add [flags] [--] [value...]",
		Short: "Adds values with the packed 96-bit engine.",
		Long: "Folds the operands left to right with Decimal.Add. The result takes the\n" +
			"largest scale seen; any step that needs more than 96 bits fails.",
		Example: "  dec96 add 4.5 0.01\n" +
			"  dec96 add -- -0.005 5\n" +
			"  dec96 add --sub 10 0.5\n" +
			"  dec96 add --radix 2 101 1",
		RunE: func(cmd *cobra.Command, args []string) error {
			return commandAdd(cmd, cfg, args)
		},
	}
	cmd.Flags().Bool("sub", false, "Subtract every operand after the first instead of adding it.")
	return cmd
}

func commandAdd(cmd *cobra.Command, cfg *viper.Viper, args []string) error {
	ops, err := readOperands(cmd, args)
	if err != nil {
		return err
	}

	radix := cfg.GetInt("radix")
	sub := cfg.GetBool("sub")

	var acc dec96.Decimal
	for i, op := range ops {
		d, err := dec96.Parse(op, radix)
		if err != nil {
			return fmt.Errorf("dec96: operand %d: %w", i+1, err)
		}
		if i == 0 {
			acc = d
			continue
		}

		var next dec96.Decimal
		if sub {
			next, err = acc.Sub(d)
		} else {
			next, err = acc.Add(d)
		}
		if err != nil {
			return fmt.Errorf("dec96: operand %d: %w", i+1, err)
		}
		glog.V(1).Infof("step %d: %s, %s -> %s", i, acc, d, next)
		acc = next
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), acc.String())
	return err
}
