package matsys

import (
	"fmt"

	"github.com/katalvlaran/moment/opctx"
	"github.com/katalvlaran/moment/sequence"
)

// MomentMatrixIndex selects the moment matrix built from every dictionary
// word up to Level (spec §4.7, §6 "Moment matrix").
type MomentMatrixIndex struct {
	Level int
}

// Key implements Keyed.
func (m MomentMatrixIndex) Key() string { return fmt.Sprintf("moment:%d", m.Level) }

// LocalizingMatrixIndex selects the localizing matrix for Word at Level
// (spec §6 "Localizing matrix"): entry (i,j) is the symbol for
// gi* . Word . gj.
type LocalizingMatrixIndex struct {
	Level int
	Word  sequence.OperatorSequence
}

// Key implements Keyed. Word sequences are formatted through a
// context-free raw rendering (operator indices plus sign tag) so two
// equal words always hash to the same key regardless of which context
// built them.
func (l LocalizingMatrixIndex) Key() string {
	return fmt.Sprintf("localizing:%d:%s", l.Level, rawKey(l.Word))
}

// NearestNeighbourMatrixIndex selects a moment matrix additionally
// restricted to the Pauli nearest-neighbour OSG of the given Radius
// (spec §4.6 "Nearest-neighbour OSGs"; spec §4.7's InsertAlias example:
// radius 0 is cross-registered under MomentMatrixIndex as well).
type NearestNeighbourMatrixIndex struct {
	Level  int
	Radius int
}

// Key implements Keyed.
func (n NearestNeighbourMatrixIndex) Key() string {
	return fmt.Sprintf("nn:%d:%d", n.Level, n.Radius)
}

// InflationExtendedMatrixIndex selects the extended moment matrix: a base
// moment matrix at Level (built by the parallel column-partitioned
// builder, spec §4.8) plus one row and column per symbol listed in
// Extension, which are filled in without the parallel builder.
type InflationExtendedMatrixIndex struct {
	Level     int
	Extension string
}

// Key implements Keyed.
func (e InflationExtendedMatrixIndex) Key() string {
	return fmt.Sprintf("extended:%d:%s", e.Level, e.Extension)
}

// CommutatorMatrixIndex selects the Pauli (anti-)commutator matrix for
// Word at Level, optionally restricted to the nearest-neighbour OSG of
// Radius (spec §1(e), §4.6 "commutator matrices"): entry (i,j) is
// [gi* . gj, Word] (or the anticommutator, when Anti is set). A negative
// Radius selects the unrestricted moment-matrix OSG.
type CommutatorMatrixIndex struct {
	Level  int
	Radius int
	Word   sequence.OperatorSequence
	Anti   bool
}

// Key implements Keyed.
func (c CommutatorMatrixIndex) Key() string {
	kind := "commutator"
	if c.Anti {
		kind = "anticommutator"
	}
	return fmt.Sprintf("%s:%d:%d:%s", kind, c.Level, c.Radius, rawKey(c.Word))
}

// rawKey renders an operator sequence's raw index tuple plus sign tag,
// independent of any Context.FormatSequence implementation, so it is
// stable across scenarios for use as a map key.
func rawKey(seq sequence.OperatorSequence) string {
	return opctx.DefaultFormatSequence(seq)
}
