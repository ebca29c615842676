// Package sequence holds the in-flight control sequence the producer is
// assembling and the accessors the dispatcher decodes it through.
package sequence

import (
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/hnimtadd/termseq/terminal/function"
)

const (
	// MaxParameters bounds both the number of parameter groups and the
	// number of values (primary plus sub-parameters) within one group.
	MaxParameters = 16
	// MaxOscLength bounds the intermediates buffer, which doubles as the
	// OSC payload.
	MaxOscLength = 512
)

// Sequence is a control sequence under construction. A fresh or cleared
// Sequence has no leader, no parameters, no intermediates, a zero final
// character, and an empty data string.
type Sequence struct {
	category      function.Category
	leader        byte
	parameters    [][]int
	intermediates []byte
	final         byte
	data          []byte
}

func New() *Sequence {
	s := &Sequence{}
	s.Clear()
	return s
}

func (s *Sequence) Clear() {
	s.category = function.CategoryC0
	s.leader = 0
	s.parameters = s.parameters[:0]
	s.intermediates = s.intermediates[:0]
	s.final = 0
	s.data = s.data[:0]
}

func (s *Sequence) SetCategory(category function.Category) { s.category = category }
func (s *Sequence) Category() function.Category            { return s.category }

func (s *Sequence) SetLeader(leader byte) { s.leader = leader }
func (s *Sequence) Leader() byte          { return s.leader }

func (s *Sequence) SetFinal(final byte) { s.final = final }
func (s *Sequence) Final() byte         { return s.final }

// AppendIntermediate collects one intermediate byte. The buffer also
// carries OSC payloads, so it is bounded by MaxOscLength; overflow is
// dropped quietly.
func (s *Sequence) AppendIntermediate(c byte) {
	if len(s.intermediates) >= MaxOscLength {
		return
	}
	s.intermediates = append(s.intermediates, c)
}

func (s *Sequence) Intermediates() []byte { return s.intermediates }

// StripIntermediates removes the first n intermediate bytes. Used by the
// OSC dispatch path after the numeric code has been parsed out.
func (s *Sequence) StripIntermediates(n int) {
	if n > len(s.intermediates) {
		n = len(s.intermediates)
	}
	s.intermediates = append(s.intermediates[:0], s.intermediates[n:]...)
}

func (s *Sequence) SetData(data []byte) {
	s.data = append(s.data[:0], data...)
}

func (s *Sequence) Data() []byte { return s.data }

// NextParam starts a new parameter group. Groups beyond MaxParameters are
// dropped.
func (s *Sequence) NextParam() {
	s.ensureParam()
	if len(s.parameters) >= MaxParameters {
		return
	}
	s.parameters = append(s.parameters, []int{0})
}

// NextSubParam starts a new sub-parameter within the current group.
// A group holds at most MaxParameters values including its primary, so
// sub-parameters beyond MaxParameters-1 are dropped.
func (s *Sequence) NextSubParam() {
	s.ensureParam()
	last := len(s.parameters) - 1
	if len(s.parameters[last]) >= MaxParameters {
		return
	}
	s.parameters[last] = append(s.parameters[last], 0)
}

// AddDigit accumulates one decimal digit into the current value,
// saturating at MaxInt32 instead of wrapping.
func (s *Sequence) AddDigit(c byte) {
	s.ensureParam()
	group := s.parameters[len(s.parameters)-1]
	value := int64(group[len(group)-1])*10 + int64(c-'0')
	if value > math.MaxInt32 {
		value = math.MaxInt32
	}
	group[len(group)-1] = int(value)
}

// PushParam appends a group with the given values. Used by the OSC path
// and by tests constructing sequences field-wise.
func (s *Sequence) PushParam(values ...int) {
	if len(s.parameters) >= MaxParameters {
		return
	}
	s.parameters = append(s.parameters, slices.Clone(values))
}

func (s *Sequence) ensureParam() {
	if len(s.parameters) == 0 {
		s.parameters = append(s.parameters, []int{0})
	}
}

func (s *Sequence) ParameterCount() int {
	return len(s.parameters)
}

// SubParameterCount reports how many sub-parameters follow the primary
// value of group index.
func (s *Sequence) SubParameterCount(index int) int {
	if index >= len(s.parameters) {
		return 0
	}
	return len(s.parameters[index]) - 1
}

// Param returns the primary value of the given group, or 0 when the group
// is absent.
func (s *Sequence) Param(index int) int {
	if index >= len(s.parameters) {
		return 0
	}
	return s.parameters[index][0]
}

// ParamOpt reports the primary value of the given group. A stored zero
// counts as absent; see ParamOr.
func (s *Sequence) ParamOpt(index int) (int, bool) {
	if index < len(s.parameters) && s.parameters[index][0] != 0 {
		return s.parameters[index][0], true
	}
	return 0, false
}

// ParamOr returns the primary value of the given group, or defaultValue
// when the group is absent OR the stored value is zero. The zero quirk is
// intentional and load-bearing for the default-1 cursor functions.
func (s *Sequence) ParamOr(index, defaultValue int) int {
	if value, ok := s.ParamOpt(index); ok {
		return value
	}
	return defaultValue
}

// Subparam returns the k-th sub-parameter of the given group, or 0 when
// absent.
func (s *Sequence) Subparam(index, sub int) int {
	if index >= len(s.parameters) || sub+1 >= len(s.parameters[index]) {
		return 0
	}
	return s.parameters[index][sub+1]
}

// ContainsParameter reports whether any group's primary value equals the
// given value.
func (s *Sequence) ContainsParameter(value int) bool {
	for i := range s.parameters {
		if s.parameters[i][0] == value {
			return true
		}
	}
	return false
}

// Clone deep-copies the sequence. The batch queue needs this because the
// live sequence is cleared once handling completes.
func (s *Sequence) Clone() *Sequence {
	clone := &Sequence{
		category:      s.category,
		leader:        s.leader,
		parameters:    make([][]int, len(s.parameters)),
		intermediates: slices.Clone(s.intermediates),
		final:         s.final,
		data:          slices.Clone(s.data),
	}
	for i := range s.parameters {
		clone.parameters[i] = slices.Clone(s.parameters[i])
	}
	return clone
}

// Selector derives the function lookup key. Only a single intermediate
// character is significant; OSC sequences select on their numeric code.
func (s *Sequence) Selector() function.Selector {
	switch s.category {
	case function.CategoryOSC:
		return function.Selector{
			Category: s.category,
			Argc:     s.Param(0),
		}
	default:
		var intermediate byte
		if len(s.intermediates) == 1 {
			intermediate = s.intermediates[0]
		}
		return function.Selector{
			Category:     s.category,
			Leader:       s.leader,
			Argc:         len(s.parameters),
			Intermediate: intermediate,
			Final:        s.final,
		}
	}
}

// Definition resolves the sequence against the function registry, or nil
// for an unknown sequence.
func (s *Sequence) Definition() *function.Definition {
	return function.Select(s.Selector())
}

func (s *Sequence) hasVisibleParams() bool {
	return len(s.parameters) > 1 ||
		(len(s.parameters) == 1 && s.parameters[0][0] != 0)
}

func (s *Sequence) paramString() string {
	var sb strings.Builder
	for i, group := range s.parameters {
		if i > 0 {
			sb.WriteByte(';')
		}
		for k, value := range group {
			if k > 0 {
				sb.WriteByte(':')
			}
			fmt.Fprintf(&sb, "%d", value)
		}
	}
	return sb.String()
}

// Raw serializes the sequence back to its canonical byte form.
func (s *Sequence) Raw() string {
	var sb strings.Builder

	switch s.category {
	case function.CategoryC0:
	case function.CategoryESC:
		sb.WriteString("\x1b")
	case function.CategoryCSI:
		sb.WriteString("\x1b[")
	case function.CategoryDCS:
		sb.WriteString("\x1bP")
	case function.CategoryOSC:
		sb.WriteString("\x1b]")
	}

	if s.leader != 0 {
		sb.WriteByte(s.leader)
	}
	if s.hasVisibleParams() {
		sb.WriteString(s.paramString())
	}
	sb.Write(s.intermediates)
	if s.final != 0 {
		sb.WriteByte(s.final)
	}
	if len(s.data) > 0 {
		sb.Write(s.data)
		sb.WriteString("\x1b\\")
	}

	return sb.String()
}

// Text renders a human readable debug form.
func (s *Sequence) Text() string {
	var sb strings.Builder

	sb.WriteString(s.category.String())
	if s.leader != 0 {
		fmt.Fprintf(&sb, " %c", s.leader)
	}
	if s.hasVisibleParams() {
		sb.WriteByte(' ')
		sb.WriteString(s.paramString())
	}
	if len(s.intermediates) > 0 {
		fmt.Fprintf(&sb, " %s", s.intermediates)
	}
	if s.final != 0 {
		fmt.Fprintf(&sb, " %c", s.final)
	}
	if len(s.data) > 0 {
		fmt.Fprintf(&sb, " %q ST", s.data)
	}

	return sb.String()
}

func (s *Sequence) String() string {
	return s.Text()
}
