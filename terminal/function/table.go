package function

import (
	"slices"
	"sort"

	"github.com/mitchellh/hashstructure/v2"
)

// ArgsMax is the open upper bound for variadic parameter lists.
const ArgsMax = 127

func c0(id ID, final byte, mnemonic string, batchable bool) Definition {
	return Definition{
		ID:        id,
		Category:  CategoryC0,
		Final:     final,
		Mnemonic:  mnemonic,
		Batchable: batchable,
	}
}

func esc(id ID, intermediate, final byte, mnemonic string, batchable bool) Definition {
	return Definition{
		ID:           id,
		Category:     CategoryESC,
		Intermediate: intermediate,
		Final:        final,
		Mnemonic:     mnemonic,
		Batchable:    batchable,
	}
}

func csi(
	id ID,
	leader byte,
	argc0, argc1 int,
	intermediate, final byte,
	mnemonic string,
	batchable bool,
) Definition {
	return Definition{
		ID:           id,
		Category:     CategoryCSI,
		Leader:       leader,
		Intermediate: intermediate,
		Final:        final,
		MinParams:    argc0,
		MaxParams:    argc1,
		Mnemonic:     mnemonic,
		Batchable:    batchable,
	}
}

func dcs(
	id ID,
	leader byte,
	argc0, argc1 int,
	intermediate, final byte,
	mnemonic string,
) Definition {
	return Definition{
		ID:           id,
		Category:     CategoryDCS,
		Leader:       leader,
		Intermediate: intermediate,
		Final:        final,
		MinParams:    argc0,
		MaxParams:    argc1,
		Mnemonic:     mnemonic,
	}
}

func osc(id ID, code int, mnemonic string, batchable bool) Definition {
	return Definition{
		ID:        id,
		Category:  CategoryOSC,
		MaxParams: code,
		Mnemonic:  mnemonic,
		Batchable: batchable,
	}
}

// definitions is sorted by compareDefinitions at init so Select can use a
// binary search.
var definitions = func() []Definition {
	defs := []Definition{
		// C0
		c0(EOT, 0x04, "EOT", false),
		c0(BEL, 0x07, "BEL", false),
		c0(BS, 0x08, "BS", true),
		c0(TAB, 0x09, "TAB", true),
		c0(LF, 0x0A, "LF", true),
		c0(VT, 0x0B, "VT", true),
		c0(FF, 0x0C, "FF", true),
		c0(CR, 0x0D, "CR", true),
		c0(SO, 0x0E, "SO", false),
		c0(SI, 0x0F, "SI", false),

		// ESC
		esc(SCSG0Special, '(', '0', "SCS_G0_SPECIAL", true),
		esc(SCSG0USASCII, '(', 'B', "SCS_G0_USASCII", true),
		esc(SCSG1Special, ')', '0', "SCS_G1_SPECIAL", true),
		esc(SCSG1USASCII, ')', 'B', "SCS_G1_USASCII", true),
		esc(DECALN, '#', '8', "DECALN", true),
		esc(DECBI, 0, '6', "DECBI", true),
		esc(DECFI, 0, '9', "DECFI", true),
		esc(DECKPAM, 0, '=', "DECKPAM", false),
		esc(DECKPNM, 0, '>', "DECKPNM", false),
		esc(DECRS, 0, '8', "DECRS", true),
		esc(DECSC, 0, '7', "DECSC", true),
		esc(HTS, 0, 'H', "HTS", true),
		esc(IND, 0, 'D', "IND", true),
		esc(NEL, 0, 'E', "NEL", true),
		esc(RI, 0, 'M', "RI", true),
		esc(RIS, 0, 'c', "RIS", false),
		esc(SS2, 0, 'N', "SS2", true),
		esc(SS3, 0, 'O', "SS3", true),

		// CSI
		csi(ANSISYSSC, 0, 0, 0, 0, 'u', "ANSISYSSC", true),
		csi(CBT, 0, 0, 1, 0, 'Z', "CBT", true),
		csi(CHA, 0, 0, 1, 0, 'G', "CHA", true),
		csi(CHT, 0, 0, 1, 0, 'I', "CHT", true),
		csi(CNL, 0, 0, 1, 0, 'E', "CNL", true),
		csi(CPL, 0, 0, 1, 0, 'F', "CPL", true),
		csi(CPR, 0, 1, 1, 0, 'n', "CPR", false),
		csi(CUB, 0, 0, 1, 0, 'D', "CUB", true),
		csi(CUD, 0, 0, 1, 0, 'B', "CUD", true),
		csi(CUF, 0, 0, 1, 0, 'C', "CUF", true),
		csi(CUP, 0, 0, 2, 0, 'H', "CUP", true),
		csi(CUU, 0, 0, 1, 0, 'A', "CUU", true),
		csi(DA1, 0, 0, 1, 0, 'c', "DA1", false),
		csi(DA2, '>', 0, 1, 0, 'c', "DA2", false),
		csi(DA3, '=', 0, 1, 0, 'c', "DA3", false),
		csi(DCH, 0, 0, 1, 0, 'P', "DCH", true),
		csi(DECDC, 0, 0, 1, '\'', '~', "DECDC", true),
		csi(DECIC, 0, 0, 1, '\'', '}', "DECIC", true),
		csi(DECMODERESTORE, '?', 0, ArgsMax, 0, 'r', "DECMODERESTORE", false),
		csi(DECMODESAVE, '?', 0, ArgsMax, 0, 's', "DECMODESAVE", false),
		csi(DECRM, '?', 1, ArgsMax, 0, 'l', "DECRM", false),
		csi(DECRQM, '?', 1, 1, '$', 'p', "DECRQM", false),
		csi(DECRQMANSI, 0, 1, 1, '$', 'p', "DECRQM_ANSI", false),
		csi(DECRQPSR, 0, 1, 1, '$', 'w', "DECRQPSR", false),
		csi(DECSCPP, 0, 0, 1, '$', '|', "DECSCPP", false),
		csi(DECSCUSR, 0, 0, 1, ' ', 'q', "DECSCUSR", true),
		csi(DECSLRM, 0, 2, 2, 0, 's', "DECSLRM", true),
		csi(DECSM, '?', 1, ArgsMax, 0, 'h', "DECSM", false),
		csi(DECSTBM, 0, 0, 2, 0, 'r', "DECSTBM", true),
		csi(DECSTR, 0, 0, 0, '!', 'p', "DECSTR", false),
		csi(DECXCPR, 0, 0, 0, 0, '6', "DECXCPR", false),
		csi(DL, 0, 0, 1, 0, 'M', "DL", true),
		csi(ECH, 0, 0, 1, 0, 'X', "ECH", true),
		csi(ED, 0, 0, ArgsMax, 0, 'J', "ED", true),
		csi(EL, 0, 0, 1, 0, 'K', "EL", true),
		csi(HPA, 0, 1, 1, 0, '`', "HPA", true),
		csi(HPR, 0, 1, 1, 0, 'a', "HPR", true),
		csi(HVP, 0, 0, 2, 0, 'f', "HVP", true),
		csi(ICH, 0, 0, 1, 0, '@', "ICH", true),
		csi(IL, 0, 0, 1, 0, 'L', "IL", true),
		csi(RM, 0, 1, ArgsMax, 0, 'l', "RM", false),
		csi(SCOSC, 0, 0, 0, 0, 's', "SCOSC", true),
		csi(SD, 0, 0, 1, 0, 'T', "SD", true),
		csi(SETMARK, '>', 0, 0, 0, 'M', "SETMARK", true),
		csi(SGR, 0, 0, ArgsMax, 0, 'm', "SGR", true),
		csi(SM, 0, 1, ArgsMax, 0, 'h', "SM", false),
		csi(SU, 0, 0, 1, 0, 'S', "SU", true),
		csi(TBC, 0, 0, 1, 0, 'g', "TBC", true),
		csi(VPA, 0, 0, 1, 0, 'd', "VPA", true),
		csi(WINMANIP, 0, 1, 3, 0, 't', "WINMANIP", false),
		csi(XTSMGRAPHICS, '?', 2, 4, 0, 'S', "XTSMGRAPHICS", false),

		// DCS
		dcs(DECRQSS, 0, 0, 0, '$', 'q', "DECRQSS"),
		dcs(DECSIXEL, 0, 0, 3, 0, 'q', "DECSIXEL"),
		dcs(GIUPLOAD, 0, 0, 0, 0, 'u', "GIUPLOAD"),
		dcs(GIRENDER, 0, 0, 0, 0, 'r', "GIRENDER"),
		dcs(GIDELETE, 0, 0, 0, 0, 'd', "GIDELETE"),
		dcs(GIONESHOT, 0, 0, 0, 0, 's', "GIONESHOT"),

		// OSC
		osc(SETTITLE, 0, "SETTITLE", false),
		osc(SETICON, 1, "SETICON", false),
		osc(SETWINTITLE, 2, "SETWINTITLE", false),
		osc(SETXPROP, 3, "SETXPROP", false),
		osc(HYPERLINK, 8, "HYPERLINK", true),
		osc(COLORFG, 10, "COLORFG", false),
		osc(COLORBG, 11, "COLORBG", false),
		osc(COLORCURSOR, 12, "COLORCURSOR", false),
		osc(COLORMOUSEFG, 13, "COLORMOUSEFG", false),
		osc(COLORMOUSEBG, 14, "COLORMOUSEBG", false),
		osc(COLORHIGHLIGHTBG, 17, "COLORHIGHLIGHTBG", false),
		osc(COLORHIGHLIGHTFG, 19, "COLORHIGHLIGHTFG", false),
		osc(CLIPBOARD, 52, "CLIPBOARD", false),
		osc(RCOLORFG, 110, "RCOLORFG", true),
		osc(RCOLORBG, 111, "RCOLORBG", true),
		osc(RCOLORCURSOR, 112, "RCOLORCURSOR", true),
		osc(RCOLORMOUSEFG, 113, "RCOLORMOUSEFG", true),
		osc(RCOLORMOUSEBG, 114, "RCOLORMOUSEBG", true),
		osc(RCOLORHIGHLIGHTBG, 117, "RCOLORHIGHLIGHTBG", true),
		osc(RCOLORHIGHLIGHTFG, 119, "RCOLORHIGHLIGHTFG", true),
		osc(NOTIFY, 777, "NOTIFY", false),
		osc(DUMPSTATE, 888, "DUMPSTATE", false),
	}
	slices.SortFunc(defs, compareDefinitions)
	return defs
}()

func compareDefinitions(a, b Definition) int {
	if a.Category != b.Category {
		return int(a.Category) - int(b.Category)
	}
	if a.Final != b.Final {
		return int(a.Final) - int(b.Final)
	}
	if a.Leader != b.Leader {
		return int(a.Leader) - int(b.Leader)
	}
	if a.Intermediate != b.Intermediate {
		return int(a.Intermediate) - int(b.Intermediate)
	}
	if a.MinParams != b.MinParams {
		return a.MinParams - b.MinParams
	}
	return a.MaxParams - b.MaxParams
}

func compareSelector(s Selector, d Definition) int {
	if s.Category != d.Category {
		return int(s.Category) - int(d.Category)
	}
	if s.Final != d.Final {
		return int(s.Final) - int(d.Final)
	}
	if s.Leader != d.Leader {
		return int(s.Leader) - int(d.Leader)
	}
	if s.Intermediate != d.Intermediate {
		return int(s.Intermediate) - int(d.Intermediate)
	}
	if s.Category == CategoryOSC {
		// For OSC the numeric code is stored in MaxParams.
		return s.Argc - d.MaxParams
	}
	if s.Argc < d.MinParams {
		return -1
	}
	if s.Argc > d.MaxParams {
		return +1
	}
	return 0
}

// selectorCache caches resolved selectors by their structural hash. The
// engine is single-threaded, so no synchronization is needed.
var selectorCache = map[uint64]*Definition{}

// Select resolves a selector to the matching definition, or nil if none
// matched.
func Select(selector Selector) *Definition {
	hash, err := hashstructure.Hash(selector, hashstructure.FormatV2, nil)
	if err == nil {
		if def, ok := selectorCache[hash]; ok {
			return def
		}
	}

	idx := sort.Search(len(definitions), func(i int) bool {
		return compareSelector(selector, definitions[i]) <= 0
	})
	if idx >= len(definitions) || compareSelector(selector, definitions[idx]) != 0 {
		return nil
	}

	def := &definitions[idx]
	if err == nil {
		selectorCache[hash] = def
	}
	return def
}

// SelectEscape resolves an ESC sequence by its intermediate and final
// characters. Multi-character intermediates are intentionally not
// supported.
func SelectEscape(intermediate, final byte) *Definition {
	return Select(Selector{
		Category:     CategoryESC,
		Intermediate: intermediate,
		Final:        final,
	})
}

// SelectControl resolves a CSI sequence.
func SelectControl(leader byte, argc int, intermediate, final byte) *Definition {
	return Select(Selector{
		Category:     CategoryCSI,
		Leader:       leader,
		Argc:         argc,
		Intermediate: intermediate,
		Final:        final,
	})
}

// SelectOSC resolves an OSC command by its leading numeric code.
func SelectOSC(code int) *Definition {
	return Select(Selector{Category: CategoryOSC, Argc: code})
}
