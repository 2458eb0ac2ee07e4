package command

import (
	"fmt"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	dec96 "github.com/shabbyrobe/go-dec96"
)

func newBitsCmd(cfg *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bits [flags] [--] <value>",
		Short: "Shows the packed representation of a value.",
		Example: "  dec96 bits -- -4.5\n" +
			"  dec96 bits --dump 79_228_162_514_264_337_593_543_950_335",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return commandBits(cmd, cfg, args[0])
		},
	}
	cmd.Flags().Bool("dump", false, "Also dump the unpacked Bits value.")
	return cmd
}

func commandBits(cmd *cobra.Command, cfg *viper.Viper, op string) error {
	d, err := dec96.Parse(op, cfg.GetInt("radix"))
	if err != nil {
		return fmt.Errorf("dec96: %w", err)
	}

	w := d.Words()
	b := d.Bits()
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "value   %s\n", d)
	fmt.Fprintf(out, "sign    %s\n", d.Sign())
	fmt.Fprintf(out, "scale   %d\n", d.Scale())
	fmt.Fprintf(out, "words   0x%08x 0x%08x 0x%08x 0x%08x\n", w[0], w[1], w[2], w[3])
	fmt.Fprintf(out, "binary  %s\n", b.BinaryString())

	if cfg.GetBool("dump") {
		spew.Fdump(out, b)
	}
	return nil
}
