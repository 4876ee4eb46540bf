// Copyright (C) 2018. See AUTHORS.

package main

import "github.com/spacemonkeygo/prng/cmd"

func main() {
	cmd.Execute()
}
