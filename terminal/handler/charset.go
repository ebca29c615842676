package handler

// CharsetTable names one of the four designable charset slots.
type CharsetTable uint8

const (
	CharsetTableG0 CharsetTable = iota
	CharsetTableG1
	CharsetTableG2
	CharsetTableG3
)

// CharsetID names a designable character set.
type CharsetID uint8

const (
	// Special Character and Line Drawing Set.
	CharsetSpecial CharsetID = iota
	CharsetUSASCII
)
