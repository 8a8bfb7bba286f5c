// Package textenc decodes pasted or uploaded bytes into NFC-normalized
// UTF-8 text.
package textenc

import (
	"bytes"
	"errors"
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/unicode/norm"
)

// Encoding 检测到的编码
type Encoding string

const (
	UTF8    Encoding = "UTF-8"
	UTF8BOM Encoding = "UTF-8-BOM"
	UTF16LE Encoding = "UTF-16LE"
	UTF16BE Encoding = "UTF-16BE"
	GBK     Encoding = "GBK"
	Unknown Encoding = "UNKNOWN"
)

// ErrUnknownEncoding 无法识别输入编码
var ErrUnknownEncoding = errors.New("unknown text encoding")

var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
)

// Detect 按 BOM、UTF-8 合法性、GBK 的顺序判断编码
func Detect(data []byte) Encoding {
	switch {
	case bytes.HasPrefix(data, bomUTF8):
		return UTF8BOM
	case bytes.HasPrefix(data, bomUTF16LE):
		return UTF16LE
	case bytes.HasPrefix(data, bomUTF16BE):
		return UTF16BE
	case utf8.Valid(data):
		return UTF8
	case isGBK(data):
		return GBK
	}
	return Unknown
}

func isGBK(data []byte) bool {
	decoded, err := simplifiedchinese.GBK.NewDecoder().Bytes(data)
	return err == nil && utf8.Valid(decoded) && !bytes.ContainsRune(decoded, utf8.RuneError)
}

// Decode 将 data 解码为 UTF-8 并做 NFC 规范化
func Decode(data []byte) (string, Encoding, error) {
	enc := Detect(data)

	var (
		decoded []byte
		err     error
	)
	switch enc {
	case UTF8:
		decoded = data
	case UTF8BOM:
		decoded = data[len(bomUTF8):]
	case UTF16LE:
		decoded, err = unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder().Bytes(data)
	case UTF16BE:
		decoded, err = unicode.UTF16(unicode.BigEndian, unicode.UseBOM).NewDecoder().Bytes(data)
	case GBK:
		decoded, err = simplifiedchinese.GBK.NewDecoder().Bytes(data)
	default:
		return "", enc, ErrUnknownEncoding
	}
	if err != nil {
		return "", enc, fmt.Errorf("failed to decode %s: %w", enc, err)
	}
	return norm.NFC.String(string(decoded)), enc, nil
}
