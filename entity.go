package vcxml

import (
	"bytes"
	"fmt"
	"strconv"
	"unicode/utf8"
)

// Unescape appends the decoded form of src to dst and returns the extended
// slice. It resolves the five predefined entities and decimal/hex character
// references. This is a derived view: verbatim spans always keep their
// original, possibly non-canonical encoding.
func Unescape(dst, src []byte) ([]byte, error) {
	for len(src) > 0 {
		i := bytes.IndexByte(src, '&')
		if i < 0 {
			return append(dst, src...), nil
		}
		dst = append(dst, src[:i]...)
		src = src[i:]
		j := bytes.IndexByte(src, ';')
		if j < 0 {
			return nil, fmt.Errorf("%w: unterminated reference", ErrInvalidEntity)
		}
		ref := src[1:j]
		src = src[j+1:]
		switch {
		case bytes.Equal(ref, []byte("lt")):
			dst = append(dst, '<')
		case bytes.Equal(ref, []byte("gt")):
			dst = append(dst, '>')
		case bytes.Equal(ref, []byte("amp")):
			dst = append(dst, '&')
		case bytes.Equal(ref, []byte("apos")):
			dst = append(dst, '\'')
		case bytes.Equal(ref, []byte("quot")):
			dst = append(dst, '"')
		case len(ref) > 1 && ref[0] == '#':
			r, err := parseCharRef(ref[1:])
			if err != nil {
				return nil, err
			}
			dst = utf8.AppendRune(dst, r)
		default:
			return nil, fmt.Errorf("%w: %q", ErrInvalidEntity, ref)
		}
	}
	return dst, nil
}

func parseCharRef(ref []byte) (rune, error) {
	base := 10
	if len(ref) > 1 && (ref[0] == 'x' || ref[0] == 'X') {
		base = 16
		ref = ref[1:]
	}
	n, err := strconv.ParseUint(string(ref), base, 32)
	if err != nil || !utf8.ValidRune(rune(n)) {
		return 0, fmt.Errorf("%w: bad character reference %q", ErrInvalidEntity, ref)
	}
	return rune(n), nil
}

// appendEscapedText escapes the minimum for synthesized character content:
// '<' and '&'.
func appendEscapedText(dst, s []byte) []byte {
	for _, b := range s {
		switch b {
		case '<':
			dst = append(dst, "&lt;"...)
		case '&':
			dst = append(dst, "&amp;"...)
		default:
			dst = append(dst, b)
		}
	}
	return dst
}

// appendEscapedAttr escapes synthesized attribute values, which are always
// rendered in double quotes: '<', '&' and '"'.
func appendEscapedAttr(dst, s []byte) []byte {
	for _, b := range s {
		switch b {
		case '<':
			dst = append(dst, "&lt;"...)
		case '&':
			dst = append(dst, "&amp;"...)
		case '"':
			dst = append(dst, "&quot;"...)
		default:
			dst = append(dst, b)
		}
	}
	return dst
}
