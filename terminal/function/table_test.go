package function

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelectControl(t *testing.T) {
	tests := []struct {
		name         string
		leader       byte
		argc         int
		intermediate byte
		final        byte
		expected     ID
	}{
		{"CUP no args", 0, 0, 0, 'H', CUP},
		{"CUP two args", 0, 2, 0, 'H', CUP},
		{"SGR variadic", 0, 42, 0, 'm', SGR},
		{"DECSM", '?', 1, 0, 'h', DECSM},
		{"SM", 0, 1, 0, 'h', SM},
		{"DECRM", '?', 3, 0, 'l', DECRM},
		{"RM", 0, 1, 0, 'l', RM},
		{"DA2 leader", '>', 0, 0, 'c', DA2},
		{"DA3 leader", '=', 0, 0, 'c', DA3},
		{"DECSTR intermediate", 0, 0, '!', 'p', DECSTR},
		{"DECRQM", '?', 1, '$', 'p', DECRQM},
		{"DECRQM ANSI", 0, 1, '$', 'p', DECRQMANSI},
		{"SCOSC zero args", 0, 0, 0, 's', SCOSC},
		{"DECSLRM two args", 0, 2, 0, 's', DECSLRM},
		{"WINMANIP", 0, 3, 0, 't', WINMANIP},
		{"XTSMGRAPHICS", '?', 2, 0, 'S', XTSMGRAPHICS},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			def := SelectControl(tc.leader, tc.argc, tc.intermediate, tc.final)
			assert.NotNil(t, def)
			assert.Equal(t, tc.expected, def.ID)
		})
	}
}

func TestSelectControlNoMatch(t *testing.T) {
	// Unknown final
	assert.Nil(t, SelectControl(0, 0, 0, 'y'))
	// Argc outside the accepted range
	assert.Nil(t, SelectControl(0, 1, 0, 's'))
	// Leader mismatch
	assert.Nil(t, SelectControl('>', 1, 0, 'h'))
}

func TestSelectEscape(t *testing.T) {
	tests := []struct {
		intermediate byte
		final        byte
		expected     ID
	}{
		{0, 'D', IND},
		{0, 'M', RI},
		{0, 'c', RIS},
		{0, '7', DECSC},
		{0, '8', DECRS},
		{'#', '8', DECALN},
		{'(', '0', SCSG0Special},
		{')', 'B', SCSG1USASCII},
	}
	for _, tc := range tests {
		def := SelectEscape(tc.intermediate, tc.final)
		assert.NotNil(t, def)
		assert.Equal(t, tc.expected, def.ID)
	}
	assert.Nil(t, SelectEscape(0, 'z'))
}

func TestSelectOSC(t *testing.T) {
	tests := []struct {
		code     int
		expected ID
	}{
		{0, SETTITLE},
		{2, SETWINTITLE},
		{8, HYPERLINK},
		{10, COLORFG},
		{17, COLORHIGHLIGHTBG},
		{19, COLORHIGHLIGHTFG},
		{52, CLIPBOARD},
		{112, RCOLORCURSOR},
		{777, NOTIFY},
		{888, DUMPSTATE},
	}
	for _, tc := range tests {
		def := SelectOSC(tc.code)
		assert.NotNil(t, def)
		assert.Equal(t, tc.expected, def.ID)
	}
	assert.Nil(t, SelectOSC(4))
	assert.Nil(t, SelectOSC(-76)) // single-byte code form, unmapped
}

func TestSelectDCS(t *testing.T) {
	def := Select(Selector{Category: CategoryDCS, Intermediate: '$', Final: 'q'})
	assert.NotNil(t, def)
	assert.Equal(t, DECRQSS, def.ID)

	def = Select(Selector{Category: CategoryDCS, Argc: 2, Final: 'q'})
	assert.NotNil(t, def)
	assert.Equal(t, DECSIXEL, def.ID)

	for final, expected := range map[byte]ID{
		'u': GIUPLOAD, 'r': GIRENDER, 'd': GIDELETE, 's': GIONESHOT,
	} {
		def := Select(Selector{Category: CategoryDCS, Final: final})
		assert.NotNil(t, def)
		assert.Equal(t, expected, def.ID)
	}
}

func TestSelectC0(t *testing.T) {
	def := Select(Selector{Category: CategoryC0, Final: 0x0A})
	assert.NotNil(t, def)
	assert.Equal(t, LF, def.ID)
}

func TestBatchableFlags(t *testing.T) {
	batchable := []ID{SGR, CUP, ED, EL, IL, DL, HYPERLINK, RCOLORFG, LF, CR}
	notBatchable := []ID{
		CPR, DA1, DA2, DECSM, DECRM, SM, RM, WINMANIP,
		XTSMGRAPHICS, CLIPBOARD, NOTIFY, SETWINTITLE, COLORFG, BEL,
	}

	byID := map[ID]*Definition{}
	for i := range definitions {
		byID[definitions[i].ID] = &definitions[i]
	}

	for _, id := range batchable {
		assert.True(t, byID[id].Batchable, "expected %s batchable", byID[id].Mnemonic)
	}
	for _, id := range notBatchable {
		assert.False(t, byID[id].Batchable, "expected %s not batchable", byID[id].Mnemonic)
	}
}

func TestSelectorCacheStaysCoherent(t *testing.T) {
	// Same selector twice must return the same definition through the
	// hashed fast path.
	first := SelectControl(0, 1, 0, 'm')
	second := SelectControl(0, 1, 0, 'm')
	assert.Same(t, first, second)
}
