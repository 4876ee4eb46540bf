// Copyright (C) 2018. See AUTHORS.

package cmd

import (
	"errors"
	"fmt"
	"math"

	"github.com/spacemonkeygo/prng"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	streamsCount  int
	streamsStride int64
	streamsTake   int

	errBadStreams = errors.New("--count and --take must be positive and --stride at least --take")
)

// streamsCmd splits one sequence into sub-streams
var streamsCmd = &cobra.Command{
	Use:   "streams",
	Short: "Split a generator into non-overlapping sub-streams",
	Long: `Split a generator into count sub-streams. Sub-stream i starts i*stride
steps into the sequence. The first take values of each are printed, one
stream per line. All count*stride steps must fit in one period of the
generator; a stride of 0 divides the period evenly. For example:
  prng streams --variant parkmiller64 --count 4 --stride 1000000 --take 5
  prng streams --variant schrage --count 16`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if streamsCount <= 0 || streamsTake <= 0 {
			return errBadStreams
		}
		variant := viper.GetString("variant")
		src, err := prng.New(variant)
		if err != nil {
			return err
		}
		stride := streamsStride
		if stride == 0 {
			stride = int64(min(src.Period()/uint64(streamsCount), math.MaxInt64))
		}
		if stride < int64(streamsTake) {
			return errBadStreams
		}

		srcs, err := partition(variant, viper.GetUint32("seed"),
			streamsCount, stride)
		if err != nil {
			return fmt.Errorf("%s: %d streams of %d steps: %w",
				variant, streamsCount, stride, err)
		}
		vals := make([][]uint32, len(srcs))
		for i, src := range srcs {
			vals[i] = make([]uint32, streamsTake)
			for j := range vals[i] {
				vals[i][j] = src.Next()
			}
		}

		out := cmd.OutOrStdout()
		if !viper.GetBool("json") {
			for _, vs := range vals {
				for j, v := range vs {
					sep := " "
					if j == len(vs)-1 {
						sep = "\n"
					}
					if _, err := fmt.Fprintf(out, "%d%s", v, sep); err != nil {
						return err
					}
				}
			}
			return nil
		}
		return newObject().
			str("variant", variant).
			u32("seed", viper.GetUint32("seed")).
			i64("stride", stride).
			streams("streams", vals).
			dump(out)
	},
}

func init() {
	rootCmd.AddCommand(streamsCmd)

	flags := streamsCmd.Flags()
	flags.IntVarP(&streamsCount, "count", "c", 4, "number of sub-streams")
	flags.Int64Var(&streamsStride, "stride", 0, "steps between sub-stream starts, 0 divides the period evenly")
	flags.IntVarP(&streamsTake, "take", "t", 5, "values to print from each sub-stream")
}

// partition seeds the named variant and splits it with prng.Partition.
func partition(variant string, seed uint32, count int, stride int64) (
	[]prng.Source, error) {

	switch variant {
	case "lcg":
		var base prng.LCG
		base.Seed(seed)
		gens, err := prng.Partition(base, count, stride)
		return sources(gens), err
	case "parkmiller":
		var base prng.ParkMiller
		base.Seed(seed)
		gens, err := prng.Partition(base, count, stride)
		return sources(gens), err
	case "parkmiller64":
		var base prng.ParkMiller64
		base.Seed(seed)
		gens, err := prng.Partition(base, count, stride)
		return sources(gens), err
	case "schrage":
		var base prng.Schrage
		base.Seed(seed)
		gens, err := prng.Partition(base, count, stride)
		return sources(gens), err
	}
	return nil, fmt.Errorf("%w: %q", prng.ErrUnknownVariant, variant)
}

func sources[T any, P interface {
	*T
	prng.Source
}](gens []T) []prng.Source {
	out := make([]prng.Source, len(gens))
	for i := range gens {
		out[i] = P(&gens[i])
	}
	return out
}
