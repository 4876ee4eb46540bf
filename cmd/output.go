// Copyright (C) 2018. See AUTHORS.

package cmd

import (
	"fmt"
	"io"

	"github.com/mailru/easyjson/jwriter"
)

// object writes a json object field by field. Fields must be added through
// the typed helpers, each of which writes its own separator.
type object struct {
	w     jwriter.Writer
	first bool
}

func newObject() *object {
	o := &object{first: true}
	o.w.RawByte('{')
	return o
}

func (o *object) key(name string) {
	if !o.first {
		o.w.RawByte(',')
	}
	o.first = false
	o.w.String(name)
	o.w.RawByte(':')
}

func (o *object) str(name, v string) *object {
	o.key(name)
	o.w.String(v)
	return o
}

func (o *object) u32(name string, v uint32) *object {
	o.key(name)
	o.w.Uint32(v)
	return o
}

func (o *object) u64(name string, v uint64) *object {
	o.key(name)
	o.w.Uint64(v)
	return o
}

func (o *object) i64(name string, v int64) *object {
	o.key(name)
	o.w.Int64(v)
	return o
}

func (o *object) values(name string, vs []uint32) *object {
	o.key(name)
	writeValues(&o.w, vs)
	return o
}

func (o *object) streams(name string, ss [][]uint32) *object {
	o.key(name)
	o.w.RawByte('[')
	for i, vs := range ss {
		if i > 0 {
			o.w.RawByte(',')
		}
		writeValues(&o.w, vs)
	}
	o.w.RawByte(']')
	return o
}

// dump closes the object and writes it to out followed by a newline.
func (o *object) dump(out io.Writer) error {
	o.w.RawString("}\n")
	_, err := o.w.DumpTo(out)
	return err
}

func writeValues(w *jwriter.Writer, vs []uint32) {
	w.RawByte('[')
	for i, v := range vs {
		if i > 0 {
			w.RawByte(',')
		}
		w.Uint32(v)
	}
	w.RawByte(']')
}

func writeStrings(out io.Writer, asJSON bool, ss []string) error {
	if !asJSON {
		for _, s := range ss {
			if _, err := fmt.Fprintln(out, s); err != nil {
				return err
			}
		}
		return nil
	}
	var w jwriter.Writer
	w.RawByte('[')
	for i, s := range ss {
		if i > 0 {
			w.RawByte(',')
		}
		w.String(s)
	}
	w.RawString("]\n")
	_, err := w.DumpTo(out)
	return err
}

func writeLines(out io.Writer, vs []uint32) error {
	for _, v := range vs {
		if _, err := fmt.Fprintln(out, v); err != nil {
			return err
		}
	}
	return nil
}
