package llm

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
)

var (
	// ErrUnparseable is returned alongside the default record.
	ErrUnparseable = errors.New("reply is not an attributes object")

	errNoFence = errors.New("no fenced block")

	// first ``` ... ``` pair, may span lines
	reFence = regexp.MustCompile("(?s)```(.+?)```")
)

// ParseReply turns a model reply into an Extraction. It tries the whole reply
// as JSON, then the first fenced block. When both fail it returns the default
// record with Origin=default and an error describing both failures.
func ParseReply(reply string) (Extraction, error) {
	attrs, directErr := parseDirect(reply)
	if directErr == nil {
		return Extraction{Attributes: attrs, Origin: OriginJSON, Reply: reply}, nil
	}
	attrs, fencedErr := parseFenced(reply)
	if fencedErr == nil {
		return Extraction{Attributes: attrs, Origin: OriginFenced, Reply: reply}, nil
	}
	return Extraction{Attributes: DefaultAttributes(), Origin: OriginDefault, Reply: reply},
		fmt.Errorf("%w: direct: %v; fenced: %v", ErrUnparseable, directErr, fencedErr)
}

func parseDirect(reply string) (Attributes, error) {
	return decodeAttributes(reply)
}

func parseFenced(reply string) (Attributes, error) {
	m := reFence.FindStringSubmatch(reply)
	if m == nil {
		return Attributes{}, errNoFence
	}
	return decodeAttributes(stripInfoString(m[1]))
}

// stripInfoString drops a language tag such as "json" on the fence's opening line.
func stripInfoString(block string) string {
	i := strings.IndexByte(block, '\n')
	if i < 0 {
		return block
	}
	tag := strings.TrimSpace(block[:i])
	if tag == "" || strings.ContainsAny(tag, "{}[]\":") {
		return block
	}
	return block[i+1:]
}

func decodeAttributes(s string) (Attributes, error) {
	raw := []byte(strings.TrimSpace(s))
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return Attributes{}, fmt.Errorf("decode: %w", err)
	}
	if err := ValidateShape(v); err != nil {
		return Attributes{}, err
	}
	var out Attributes
	if err := json.Unmarshal(raw, &out); err != nil {
		return Attributes{}, fmt.Errorf("unmarshal attributes: %w", err)
	}
	return out, nil
}
