package message

import (
	"encoding/base64"
	"unicode/utf8"
)

const (
	MaxKeyLength   = 64
	MaxValueLength = 512
	MaxHeaderCount = 32
	MaxBodyLength  = 8 * 1024 * 1024 // 8 MiB
)

// State of the parser's character-driven state machine.
type State uint8

const (
	StateParamKey State = iota
	StateParamValue
	StateBodyStart
	StateBody
)

// Parser is a single-pass parser for parametrized messages.
//
// Headers and body are separated by ';', header entries by ',', and
// header name from value by '='. A value starting with '!' carries
// base64-encoded raw bytes. Oversized keys, values and bodies are
// truncated quietly at the caps above.
//
// Examples:
//
//	"first=Foo,second=Bar;some body here"
//	",first=Foo,second,,,another=value,also=;some body here"
type Parser struct {
	state State
	key   []byte
	value []byte

	headers map[string]string
	body    []byte

	finalizer func(Message)
}

func NewParser(finalizer func(Message)) *Parser {
	return &Parser{finalizer: finalizer}
}

func (p *Parser) Start() {
	p.state = StateParamKey
	p.key = p.key[:0]
	p.value = p.value[:0]
	p.headers = map[string]string{}
	p.body = nil
}

func (p *Parser) Pass(c rune) {
	switch p.state {
	case StateParamKey:
		switch c {
		case ',':
			p.flushHeader()
		case ';':
			p.flushHeader()
			p.state = StateBodyStart
			p.body = []byte{}
		case '=':
			p.state = StateParamValue
		default:
			if len(p.key) < MaxKeyLength {
				p.key = appendRaw(p.key, c)
			}
		}
	case StateParamValue:
		switch c {
		case ',':
			p.flushHeader()
			p.state = StateParamKey
		case ';':
			p.flushHeader()
			p.state = StateBodyStart
			p.body = []byte{}
		default:
			if len(p.value) < MaxValueLength {
				p.value = appendRaw(p.value, c)
			}
		}
	case StateBodyStart:
		p.state = StateBody
		fallthrough
	case StateBody:
		// Only the first ';' is significant; everything after it is body
		// bytes, further ';' included.
		if len(p.body) < MaxBodyLength {
			p.body = appendRaw(p.body, c)
		}
	}
}

// flushHeader commits the pending key/value pair. An empty key discards
// the pair, base64 failures keep the raw un-prefixed bytes, and duplicate
// keys overwrite.
func (p *Parser) flushHeader() {
	hasSpaceAvailable := len(p.headers) < MaxHeaderCount
	if _, exists := p.headers[string(p.key)]; exists {
		hasSpaceAvailable = true
	}

	value := decodeBang(p.value)
	if hasSpaceAvailable && len(p.key) > 0 {
		p.headers[string(p.key)] = string(value)
	}

	p.key = p.key[:0]
	p.value = p.value[:0]
}

// Finalize flushes any pending header, decodes a base64 body, and hands
// the assembled Message to the completion callback.
func (p *Parser) Finalize() {
	switch p.state {
	case StateParamKey, StateParamValue:
		p.flushHeader()
	case StateBodyStart:
	case StateBody:
		p.body = decodeBang(p.body)
	}
	if p.finalizer != nil {
		p.finalizer(New(p.headers, p.body))
	}
}

// appendRaw keeps single-byte payloads byte-for-byte (DCS passthrough
// hands us Latin-1-ish scalars) and falls back to UTF-8 for anything
// wider.
func appendRaw(buf []byte, c rune) []byte {
	if c <= 0xFF {
		return append(buf, byte(c))
	}
	return utf8.AppendRune(buf, c)
}

// decodeBang decodes a '!'-prefixed base64 buffer; on decode failure the
// raw bytes after the prefix are kept as-is.
func decodeBang(buf []byte) []byte {
	if len(buf) == 0 || buf[0] != '!' {
		return buf
	}
	raw := buf[1:]
	decoded, err := base64.StdEncoding.DecodeString(string(raw))
	if err != nil {
		return raw
	}
	return decoded
}

// Parse runs a complete input through a throwaway parser.
func Parse(input string) Message {
	var result Message
	p := NewParser(func(m Message) { result = m })
	p.Start()
	for _, c := range input {
		p.Pass(c)
	}
	p.Finalize()
	return result
}
