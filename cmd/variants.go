// Copyright (C) 2018. See AUTHORS.

package cmd

import (
	"github.com/spacemonkeygo/prng"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// variantsCmd lists generator names
var variantsCmd = &cobra.Command{
	Use:   "variants [pattern]",
	Short: "List generator variants, optionally filtered by a glob pattern",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		names := prng.Variants()
		if len(args) == 1 {
			names = prng.Match(args[0])
		}
		return writeStrings(cmd.OutOrStdout(), viper.GetBool("json"), names)
	},
}

func init() {
	rootCmd.AddCommand(variantsCmd)
}
