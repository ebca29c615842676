package mode

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromDEC(t *testing.T) {
	tests := []struct {
		value    int
		expected Mode
	}{
		{1, ModeApplicationCursorKeys},
		{6, ModeOrigin},
		{7, ModeAutoWrap},
		{25, ModeVisibleCursor},
		{47, ModeUseAlternateScreen},
		{1047, ModeUseAlternateScreen},
		{1049, ModeExtendedAltScreen},
		{1070, ModeUsePrivateColorRegisters},
		{2004, ModeBracketedPaste},
		{2026, ModeBatchedRendering},
	}
	for _, tc := range tests {
		m, ok := FromDEC(tc.value)
		assert.True(t, ok, "mode %d", tc.value)
		assert.Equal(t, tc.expected, m)
	}

	_, ok := FromDEC(9999)
	assert.False(t, ok)
	// ANSI numbers don't resolve as DEC modes.
	_, ok = FromDEC(20)
	assert.False(t, ok)
}

func TestFromANSI(t *testing.T) {
	m, ok := FromANSI(4)
	assert.True(t, ok)
	assert.Equal(t, ModeInsert, m)

	_, ok = FromANSI(25)
	assert.False(t, ok)
}

func TestStateSetGetReset(t *testing.T) {
	s := NewState(nil, nil)
	assert.True(t, s.Get(ModeAutoWrap))
	assert.False(t, s.Get(ModeOrigin))

	s.Set(ModeOrigin, true)
	s.Set(ModeAutoWrap, false)
	assert.True(t, s.Get(ModeOrigin))
	assert.False(t, s.Get(ModeAutoWrap))

	s.Reset()
	assert.False(t, s.Get(ModeOrigin))
	assert.True(t, s.Get(ModeAutoWrap))
}

func TestStateSaveRestore(t *testing.T) {
	s := NewState(nil, nil)
	s.Set(ModeBracketedPaste, true)
	s.Save([]Mode{ModeBracketedPaste, ModeOrigin})

	s.Set(ModeBracketedPaste, false)
	s.Set(ModeOrigin, true)

	s.Restore([]Mode{ModeBracketedPaste, ModeOrigin})
	assert.True(t, s.Get(ModeBracketedPaste))
	assert.False(t, s.Get(ModeOrigin))

	// Restoring with nothing saved is a no-op.
	s.Restore([]Mode{ModeBracketedPaste})
	assert.True(t, s.Get(ModeBracketedPaste))
}

func TestStateSaveRestoreIsAStack(t *testing.T) {
	s := NewState(nil, nil)
	modes := []Mode{ModeVisibleCursor}

	s.Set(ModeVisibleCursor, true)
	s.Save(modes)
	s.Set(ModeVisibleCursor, false)
	s.Save(modes)
	s.Set(ModeVisibleCursor, true)

	s.Restore(modes)
	assert.False(t, s.Get(ModeVisibleCursor))
	s.Restore(modes)
	assert.True(t, s.Get(ModeVisibleCursor))
}
