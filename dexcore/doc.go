// © The dexcore Authors 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package dexcore implements the top-level evaluation pipeline of Dex, an
// array-oriented, functional, statically-typed research language: the
// staged lowering that takes a parsed source block, threads it through a
// sequence of semantically distinct passes, and ultimately executes it,
// together with the environment that accumulates across evaluations.
//
// The data model lives here; the effect machinery every pass is built on
// lives in the toppass package; the individual IR transformations live in
// the passes package; and the driver that sequences them lives in the
// pipeline package.
package dexcore
