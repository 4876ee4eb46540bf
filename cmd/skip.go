// Copyright (C) 2018. See AUTHORS.

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var skipN int64

// skipCmd jumps through a sequence
var skipCmd = &cobra.Command{
	Use:   "skip",
	Short: "Jump n steps ahead or behind and print the output and state",
	Long: `Jump n steps ahead, or behind when n is negative, in logarithmic time.
The output is the value the n-th call to next would have returned. For example:
  prng skip --variant parkmiller --n 10000`,
	RunE: func(cmd *cobra.Command, args []string) error {
		src, err := source()
		if err != nil {
			return err
		}
		output := src.Skip(skipN)
		state := src.State()

		out := cmd.OutOrStdout()
		if !viper.GetBool("json") {
			_, err := fmt.Fprintf(out, "output %d\nstate %d\n", output, state)
			return err
		}
		return newObject().
			str("variant", viper.GetString("variant")).
			u32("seed", viper.GetUint32("seed")).
			i64("n", skipN).
			u32("output", output).
			u64("state", state).
			dump(out)
	},
}

func init() {
	rootCmd.AddCommand(skipCmd)

	skipCmd.Flags().Int64Var(&skipN, "n", 1, "steps to skip, may be negative")
}
