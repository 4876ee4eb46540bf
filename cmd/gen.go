// Copyright (C) 2018. See AUTHORS.

package cmd

import (
	"errors"

	"github.com/spacemonkeygo/prng/logger"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	genCount        int
	genLower        uint32
	genUpper        uint32
	genSkip         int64
	errBoundsNeeded = errors.New("--lower and --upper must be given together")
	errBadCount     = errors.New("--count must be positive")
)

// genCmd prints values from one generator
var genCmd = &cobra.Command{
	Use:   "gen",
	Short: "Print values from a generator",
	Long: `Print values from a generator, optionally bounded to an inclusive range
and after skipping ahead. For example:
  prng gen --variant schrage --seed 42 --count 3
  prng gen --lower 1 --upper 6 --count 10 --skip 1000`,
	RunE: func(cmd *cobra.Command, args []string) error {
		flags := cmd.Flags()
		bounded := flags.Changed("lower")
		if bounded != flags.Changed("upper") {
			return errBoundsNeeded
		}
		if genCount <= 0 {
			return errBadCount
		}

		src, err := source()
		if err != nil {
			return err
		}
		if genSkip != 0 {
			src.Skip(genSkip)
		}

		vals := make([]uint32, genCount)
		for i := range vals {
			if bounded {
				vals[i] = src.Bounded(genLower, genUpper)
			} else {
				vals[i] = src.Next()
			}
		}
		logger.Debug("variant", viper.GetString("variant"), "count", genCount,
			"bounded", bounded, "state", src.State(), "generated")

		out := cmd.OutOrStdout()
		if !viper.GetBool("json") {
			return writeLines(out, vals)
		}
		o := newObject().
			str("variant", viper.GetString("variant")).
			u32("seed", viper.GetUint32("seed")).
			i64("skip", genSkip)
		if bounded {
			o.u32("lower", genLower).u32("upper", genUpper)
		}
		return o.values("values", vals).dump(out)
	},
}

func init() {
	rootCmd.AddCommand(genCmd)

	flags := genCmd.Flags()
	flags.IntVarP(&genCount, "count", "c", 10, "number of values")
	flags.Uint32Var(&genLower, "lower", 0, "inclusive lower bound")
	flags.Uint32Var(&genUpper, "upper", 0, "inclusive upper bound")
	flags.Int64Var(&genSkip, "skip", 0, "steps to skip before generating, may be negative")
}
