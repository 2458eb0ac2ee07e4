package command

import (
	"fmt"

	"github.com/golang/glog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	dec96 "github.com/shabbyrobe/go-dec96"
)

func newSumCmd(cfg *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sum [flags] [--] [value...]",
		Short: "Sums values with the 64-digit base-10 engine.",
		Long: "Accumulates the operands as Digits, which hold up to 64 decimal digits and\n" +
			"are not limited to the range of a packed Decimal. With --round the total is\n" +
			"rounded half to even to --round-scale fractional digits.",
		Example: "  dec96 sum 79228162514264337593543950335 0.9228162514264337593543950335 --round\n" +
			"  dec96 sum --round --round-scale 1 1.25",
		RunE: func(cmd *cobra.Command, args []string) error {
			return commandSum(cmd, cfg, args)
		},
	}
	cmd.Flags().Bool("round", false, "Round the total half to even.")
	cmd.Flags().Int("round-scale", 0, "Number of fractional digits kept by --round.")
	return cmd
}

func commandSum(cmd *cobra.Command, cfg *viper.Viper, args []string) error {
	ops, err := readOperands(cmd, args)
	if err != nil {
		return err
	}

	radix := cfg.GetInt("radix")

	var acc dec96.Digits
	for i, op := range ops {
		d, err := parseDigits(op, radix)
		if err != nil {
			return fmt.Errorf("dec96: operand %d: %w", i+1, err)
		}
		if err := acc.Accumulate(d); err != nil {
			return fmt.Errorf("dec96: operand %d: %w", i+1, err)
		}
		glog.V(1).Infof("step %d: +%s -> %s", i, d, acc)
	}

	if cfg.GetBool("round") {
		scale := cfg.GetInt("round-scale")
		if acc, err = acc.RoundHalfEvenTo(scale); err != nil {
			return fmt.Errorf("dec96: rounding to %d: %w", scale, err)
		}
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), acc.String())
	return err
}

// parseDigits reads a base-10 literal straight into Digits. Binary literals
// go through Bits first, so they are limited to 96 bits.
func parseDigits(s string, radix int) (dec96.Digits, error) {
	if radix == 10 {
		return dec96.ParseDigits(s)
	}
	b, err := dec96.ParseBits(s, radix)
	if err != nil {
		return dec96.Digits{}, err
	}
	return dec96.DigitsFromBits(b), nil
}
