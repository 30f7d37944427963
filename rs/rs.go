// Package rs implements a systematic Reed-Solomon encoder over GF(2^8),
// adapted from the fixed-parameter RS(204,188) encoder in the DVB-S
// reference implementation into a parametric encoder usable with any
// message length and any parity count up to 128 symbols.
//
// Parameters are fixed for interoperability: primitive polynomial 0x11D
// (see package gf), generator alpha=2, first consecutive root (fcr) 0.
package rs

import "github.com/Yarik9008/LorettStratoLink/gf"

// MaxParity is the largest number of parity symbols this encoder
// supports; combined with any message it must still fit the 255-symbol
// RS block limit enforced by package groupplan.
const MaxParity = 128

// Encoder holds the generator polynomial for a fixed parity count.
// A single Encoder may be reused across any number of Encode calls.
type Encoder struct {
	nsym      int
	generator []byte // generator[0..nsym], generator[0] == 1
}

// New builds the generator polynomial for nsym parity symbols:
//
//	g(x) = 1
//	for i in 0..nsym: g(x) *= (x - alpha^i)
//
// following the in-place update order required for byte-exact
// interoperability with the reference decoder.
func New(nsym int) *Encoder {
	if nsym < 1 || nsym > MaxParity {
		panic("rs: nsym out of range")
	}
	g := make([]byte, nsym+1)
	g[0] = 1
	for i := 0; i < nsym; i++ {
		r := gf.ExpAt(i)
		g[i+1] = gf.Mul(g[i], r)
		for j := i; j > 0; j-- {
			g[j] = g[j-1] ^ gf.Mul(g[j], r)
		}
		g[0] = gf.Mul(g[0], r)
	}
	return &Encoder{nsym: nsym, generator: g}
}

// NSym returns the parity-symbol count this encoder was built for.
func (e *Encoder) NSym() int {
	return e.nsym
}

// Encode runs msg through the feedback shift register and returns the
// nsym parity bytes. The caller is responsible for concatenating
// msg||parity into the final codeword; Encode never mutates msg.
func (e *Encoder) Encode(msg []byte) []byte {
	parity := make([]byte, e.nsym)
	g := e.generator
	for _, b := range msg {
		feedback := b ^ parity[0]
		copy(parity, parity[1:])
		parity[e.nsym-1] = 0
		if feedback != 0 {
			for j := 0; j < e.nsym; j++ {
				parity[j] ^= gf.Mul(g[j+1], feedback)
			}
		}
	}
	return parity
}
