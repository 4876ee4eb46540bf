// Copyright (C) 2018. See AUTHORS.

// Package server exposes prng generators over the Redis protocol. Every
// connection gets its own generator, so clients never share a stream.
package server

import (
	"net"
	"sync"

	"github.com/spacemonkeygo/prng"
	"github.com/spacemonkeygo/prng/logger"
	"github.com/tidwall/redcon"
)

// Server accepts RESP connections on a listener.
type Server struct {
	ln      net.Listener
	variant string

	mu     sync.Mutex
	closed bool
}

// Listen binds addr. New connections start with an unseeded generator of
// the given variant.
func Listen(addr, variant string) (*Server, error) {
	if _, err := prng.New(variant); err != nil {
		return nil, err
	}
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, err
	}
	return &Server{ln: ln, variant: variant}, nil
}

// Addr returns the bound address.
func (s *Server) Addr() net.Addr {
	return s.ln.Addr()
}

// Serve handles connections until Close is called, returning nil in that
// case.
func (s *Server) Serve() error {
	logger.Info("addr", s.ln.Addr().String(), "variant", s.variant,
		"listening")
	err := redcon.Serve(s.ln, s.handle, s.accept, s.closedConn)
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	return err
}

// Close stops the listener.
func (s *Server) Close() error {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()
	return s.ln.Close()
}

func (s *Server) accept(conn redcon.Conn) bool {
	sess, err := newSession(conn.RemoteAddr(), s.variant)
	if err != nil {
		logger.Error(err, "addr", conn.RemoteAddr(), "rejected")
		return false
	}
	conn.SetContext(sess)
	logger.Debug("session", sess.id, "addr", sess.addr, "opened")
	return true
}

func (s *Server) closedConn(conn redcon.Conn, err error) {
	sess, ok := conn.Context().(*session)
	if !ok {
		return
	}
	if err != nil {
		logger.Debug("session", sess.id, "error", err, "closed")
		return
	}
	logger.Debug("session", sess.id, "closed")
}

func (s *Server) handle(conn redcon.Conn, cmd redcon.Command) {
	sess := conn.Context().(*session)
	args := commandArgs(cmd)
	reply, err := sess.exec(args)
	if err != nil {
		logger.Debug("session", sess.id, "cmd", args[0], "error", err)
		conn.WriteError("ERR " + err.Error())
		return
	}
	writeReply(conn, reply)
}

func writeReply(conn redcon.Conn, reply interface{}) {
	switch v := reply.(type) {
	case quitReply:
		conn.WriteString("OK")
		conn.Close()
	case redcon.SimpleString:
		conn.WriteString(string(v))
	case string:
		conn.WriteBulkString(v)
	case int64:
		conn.WriteInt64(v)
	case []int64:
		conn.WriteArray(len(v))
		for _, n := range v {
			conn.WriteInt64(n)
		}
	case []string:
		conn.WriteArray(len(v))
		for _, str := range v {
			conn.WriteBulkString(str)
		}
	default:
		conn.WriteNull()
	}
}
