// Copyright (C) 2018. See AUTHORS.

package cmd

import (
	"bytes"
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/spacemonkeygo/prng"
	"github.com/spf13/pflag"
	"github.com/tidwall/gjson"
)

// run executes the root command with args, resetting every flag first so
// values do not leak between tests.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	reset := func(f *pflag.Flag) {
		f.Value.Set(f.DefValue)
		f.Changed = false
	}
	rootCmd.PersistentFlags().VisitAll(reset)
	for _, c := range rootCmd.Commands() {
		c.Flags().VisitAll(reset)
	}

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestGen_Text(t *testing.T) {
	out, err := run(t, "gen", "--variant", "lcg", "--seed", "1", "--count", "2")
	if err != nil {
		t.Fatal(err)
	}
	if out != "3026134194\n4066333757\n" {
		t.Fatalf("got %q", out)
	}
}

func TestGen_JSON(t *testing.T) {
	out, err := run(t, "gen", "-v", "parkmiller", "-s", "1", "-c", "3", "--json")
	if err != nil {
		t.Fatal(err)
	}
	if !gjson.Valid(out) {
		t.Fatalf("invalid json: %s", out)
	}
	if v := gjson.Get(out, "variant").String(); v != "parkmiller" {
		t.Fatalf("variant: %q", v)
	}
	var got []uint64
	for _, r := range gjson.Get(out, "values").Array() {
		got = append(got, r.Uint())
	}
	want := []uint64{48271, 182605794, 1291394886}
	if len(got) != len(want) {
		t.Fatalf("values: %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("values: got %v, want %v", got, want)
		}
	}
}

func TestGen_Bounded(t *testing.T) {
	out, err := run(t, "gen", "--lower", "6", "--upper", "1", "--count", "500",
		"--skip", "77", "--json")
	if err != nil {
		t.Fatal(err)
	}
	if gjson.Get(out, "lower").Uint() != 6 || gjson.Get(out, "skip").Int() != 77 {
		t.Fatalf("bounds not echoed: %s", out)
	}
	vals := gjson.Get(out, "values").Array()
	if len(vals) != 500 {
		t.Fatalf("got %d values", len(vals))
	}
	for _, v := range vals {
		if n := v.Uint(); n < 1 || n > 6 {
			t.Fatalf("value %d outside [1, 6]", n)
		}
	}
}

func TestGen_Errors(t *testing.T) {
	if _, err := run(t, "gen", "--lower", "3"); !errors.Is(err, errBoundsNeeded) {
		t.Fatalf("lower only: %v", err)
	}
	if _, err := run(t, "gen", "--count", "0"); !errors.Is(err, errBadCount) {
		t.Fatalf("zero count: %v", err)
	}
	if _, err := run(t, "gen", "--variant", "mt19937"); !errors.Is(err, prng.ErrUnknownVariant) {
		t.Fatalf("unknown variant: %v", err)
	}
}

func TestSkip(t *testing.T) {
	out, err := run(t, "skip", "--variant", "parkmiller", "--n", "10000", "--json")
	if err != nil {
		t.Fatal(err)
	}
	if got := gjson.Get(out, "output").Uint(); got != 399268537 {
		t.Fatalf("output %d", got)
	}
	if got := gjson.Get(out, "state").Uint(); got != 399268537 {
		t.Fatalf("state %d", got)
	}

	out, err = run(t, "skip", "--variant", "schrage", "--n=-1")
	if err != nil {
		t.Fatal(err)
	}
	// the predecessor of the default seed 1 is a^-1 mod m.
	var s prng.Schrage
	want := s.Skip(-1)
	if !strings.HasPrefix(out, "output ") || !strings.Contains(out, "state ") {
		t.Fatalf("got %q", out)
	}
	if s.Next() != 1 {
		t.Fatal("predecessor does not step to the seed")
	}
	if !strings.Contains(out, "output "+strconv.FormatUint(uint64(want), 10)+"\n") {
		t.Fatalf("got %q, want output %d", out, want)
	}
}

func TestStreams(t *testing.T) {
	out, err := run(t, "streams", "-v", "lcg", "-s", "9", "-c", "3",
		"--stride", "10", "-t", "2", "--json")
	if err != nil {
		t.Fatal(err)
	}

	var base prng.LCG
	base.Seed(9)
	all := make([]uint32, 30)
	for i := range all {
		all[i] = base.Next()
	}

	streams := gjson.Get(out, "streams").Array()
	if len(streams) != 3 {
		t.Fatalf("got %d streams: %s", len(streams), out)
	}
	for i, s := range streams {
		vals := s.Array()
		if len(vals) != 2 {
			t.Fatalf("stream %d: %s", i, s.Raw)
		}
		for j, v := range vals {
			if want := all[i*10+j]; uint32(v.Uint()) != want {
				t.Fatalf("stream %d value %d: got %d, want %d", i, j, v.Uint(), want)
			}
		}
	}

	if _, err := run(t, "streams", "--stride", "2", "--take", "3"); !errors.Is(err, errBadStreams) {
		t.Fatalf("overlapping streams: %v", err)
	}
}

func TestStreams_DefaultStride(t *testing.T) {
	out, err := run(t, "streams", "-v", "schrage", "-s", "3", "-c", "2",
		"-t", "1", "--json")
	if err != nil {
		t.Fatal(err)
	}
	const stride = (1<<31 - 2) / 2
	if got := gjson.Get(out, "stride").Int(); got != stride {
		t.Fatalf("stride %d, want %d", got, stride)
	}

	var s prng.Schrage
	s.Seed(3)
	first := s.Next()
	second := s.Skip(stride)
	if got := gjson.Get(out, "streams.0.0").Uint(); uint32(got) != first {
		t.Fatalf("stream 0: got %d, want %d", got, first)
	}
	if got := gjson.Get(out, "streams.1.0").Uint(); uint32(got) != second {
		t.Fatalf("stream 1: got %d, want %d", got, second)
	}

	// a single lcg stream may cover the whole period.
	if _, err := run(t, "streams", "-v", "lcg", "-c", "1"); err != nil {
		t.Fatal(err)
	}
}

func TestStreams_PastPeriod(t *testing.T) {
	// two streams of a whole parkmiller period would repeat each other.
	_, err := run(t, "streams", "-v", "parkmiller", "-c", "2",
		"--stride", "2147483646")
	if !errors.Is(err, prng.ErrOverlap) {
		t.Fatalf("stride of a full period: %v", err)
	}

	_, err = run(t, "streams", "-v", "parkmiller64", "-c", "3",
		"--stride", "4611686018427387904")
	if !errors.Is(err, prng.ErrOverlap) {
		t.Fatalf("3 x 2^62: %v", err)
	}
}

func TestVariants(t *testing.T) {
	out, err := run(t, "variants", "park*")
	if err != nil {
		t.Fatal(err)
	}
	if out != "parkmiller\nparkmiller64\n" {
		t.Fatalf("got %q", out)
	}

	out, err = run(t, "variants", "--json")
	if err != nil {
		t.Fatal(err)
	}
	if n := len(gjson.Parse(out).Array()); n != len(prng.Variants()) {
		t.Fatalf("got %d names: %s", n, out)
	}
}
