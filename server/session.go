// Copyright (C) 2018. See AUTHORS.

package server

import (
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/spacemonkeygo/prng"
	"github.com/tidwall/redcon"
)

// maxBatch bounds the count accepted by NEXT.
const maxBatch = 1 << 16

// session is the per connection state. Each connection owns its generator,
// so no locking is needed.
type session struct {
	id      uuid.UUID
	addr    string
	variant string
	src     prng.Source
}

type quitReply struct{}

func newSession(addr, variant string) (*session, error) {
	src, err := prng.New(variant)
	if err != nil {
		return nil, err
	}
	return &session{
		id:      uuid.New(),
		addr:    addr,
		variant: variant,
		src:     src,
	}, nil
}

func commandArgs(cmd redcon.Command) []string {
	args := make([]string, len(cmd.Args))
	args[0] = strings.ToLower(string(cmd.Args[0]))
	for i := 1; i < len(cmd.Args); i++ {
		args[i] = string(cmd.Args[i])
	}
	return args
}

// exec runs one command and returns the reply value.
func (s *session) exec(args []string) (interface{}, error) {
	switch args[0] {
	case "ping":
		switch len(args) {
		case 1:
			return redcon.SimpleString("PONG"), nil
		case 2:
			return args[1], nil
		}
		return nil, ErrWrongNumArgs

	case "quit":
		return quitReply{}, nil

	case "use":
		if len(args) != 2 {
			return nil, ErrWrongNumArgs
		}
		name := strings.ToLower(args[1])
		src, err := prng.New(name)
		if err != nil {
			return nil, err
		}
		s.variant, s.src = name, src
		return redcon.SimpleString("OK"), nil

	case "variant":
		if len(args) != 1 {
			return nil, ErrWrongNumArgs
		}
		return s.variant, nil

	case "variants":
		switch len(args) {
		case 1:
			return prng.Variants(), nil
		case 2:
			return prng.Match(strings.ToLower(args[1])), nil
		}
		return nil, ErrWrongNumArgs

	case "seed":
		if len(args) != 2 {
			return nil, ErrWrongNumArgs
		}
		seed, err := parseUint32(args[1])
		if err != nil {
			return nil, err
		}
		s.src.Seed(seed)
		return redcon.SimpleString("OK"), nil

	case "next":
		switch len(args) {
		case 1:
			return int64(s.src.Next()), nil
		case 2:
			n, err := strconv.Atoi(args[1])
			if err != nil || n <= 0 || n > maxBatch {
				return nil, ErrSyntax
			}
			vals := make([]int64, n)
			for i := range vals {
				vals[i] = int64(s.src.Next())
			}
			return vals, nil
		}
		return nil, ErrWrongNumArgs

	case "bounded":
		if len(args) != 3 {
			return nil, ErrWrongNumArgs
		}
		lower, err := parseUint32(args[1])
		if err != nil {
			return nil, err
		}
		upper, err := parseUint32(args[2])
		if err != nil {
			return nil, err
		}
		return int64(s.src.Bounded(lower, upper)), nil

	case "skip":
		if len(args) != 2 {
			return nil, ErrWrongNumArgs
		}
		n, err := strconv.ParseInt(args[1], 10, 64)
		if err != nil {
			return nil, ErrSyntax
		}
		return int64(s.src.Skip(n)), nil

	case "state":
		if len(args) != 1 {
			return nil, ErrWrongNumArgs
		}
		return int64(s.src.State()), nil
	}
	return nil, errUnknownCommand(args[0])
}

func parseUint32(arg string) (uint32, error) {
	v, err := strconv.ParseUint(arg, 10, 32)
	if err != nil {
		return 0, ErrSyntax
	}
	return uint32(v), nil
}
