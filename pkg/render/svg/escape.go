package svg

import (
	"bytes"
	"encoding/xml"
)

func escape(s string) string {
	var buf bytes.Buffer
	_ = xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
