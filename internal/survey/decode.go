package survey

import (
	"bytes"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// decodeText converts raw upload bytes to a UTF-8 string, trying the
// encodings survey tools commonly export: UTF-8 (with or without BOM),
// then the Windows codepages, then ISO 8859-1 as the final fallback. The
// first encoding that decodes without replacement characters wins. The
// returned name identifies the encoding used.
func decodeText(raw []byte) (text, name string, err error) {
	if bytes.HasPrefix(raw, utf8BOM) {
		body := raw[len(utf8BOM):]
		if !utf8.Valid(body) {
			return "", "", NewEncodingError("UTF-8 BOM present but content is not valid UTF-8")
		}
		return string(body), "utf-8-sig", nil
	}
	if utf8.Valid(raw) {
		return string(raw), "utf-8", nil
	}
	for _, cm := range []struct {
		name string
		enc  *charmap.Charmap
	}{
		{"windows-1250", charmap.Windows1250},
		{"windows-1252", charmap.Windows1252},
		{"latin-1", charmap.ISO8859_1},
	} {
		decoded, _, terr := transform.String(cm.enc.NewDecoder(), string(raw))
		if terr != nil {
			continue
		}
		if strings.ContainsRune(decoded, utf8.RuneError) {
			continue
		}
		return decoded, cm.name, nil
	}
	return "", "", NewEncodingError("could not read file with any supported encoding")
}
