// Package ident generates the opaque string identifiers used by all entity
// collections.
package ident

import (
	"strconv"
	"time"

	"github.com/jaevor/go-nanoid"
)

const suffixAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

var suffix = mustGenerator(9)

func mustGenerator(length int) func() string {
	gen, err := nanoid.CustomASCII(suffixAlphabet, length)
	if err != nil {
		panic(err)
	}
	return gen
}

// New returns a fresh identifier: the unix-millisecond timestamp followed by
// a random suffix, so rapid successive calls still produce distinct ids.
// Identifiers are unique within a collection, nothing more.
func New() string {
	return strconv.FormatInt(time.Now().UnixMilli(), 10) + suffix()
}
