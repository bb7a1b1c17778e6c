package clipboard

import (
	"bytes"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"strings"
)

// osascriptHelper moves HTML as AppleScript «data HTML…» hex literals.
var osascriptHelper = &richHelper{
	name: "osascript",
	readArgs: []string{
		"-e", "try",
		"-e", "return the clipboard as «class HTML»",
		"-e", "on error",
		"-e", `return ""`,
		"-e", "end try",
	},
	decode: func(out []byte) ([]byte, error) {
		return decodeAppleScriptData(out, "HTML")
	},
	write: func(html []byte, text string) ([]string, []byte) {
		return nil, []byte(appleScriptSetClipboard(html, text))
	},
}

// decodeAppleScriptData parses osascript's rendering of a raw data value,
// «data CLASSHEX». Empty output means the clipboard had no such class.
func decodeAppleScriptData(out []byte, class string) ([]byte, error) {
	s := strings.TrimSpace(string(out))
	if s == "" {
		return nil, nil
	}
	prefix := "«data " + class
	if !strings.HasPrefix(s, prefix) || !strings.HasSuffix(s, "»") {
		return nil, fmt.Errorf("unexpected osascript output %.40q", s)
	}
	data, err := hex.DecodeString(s[len(prefix) : len(s)-len("»")])
	if err != nil {
		return nil, fmt.Errorf("decoding osascript data: %w", err)
	}
	return data, nil
}

// appleScriptSetClipboard builds a script that sets both flavours at once.
// Payloads are hex literals so the script itself stays ASCII; osascript reads
// it from stdin.
func appleScriptSetClipboard(html []byte, text string) string {
	entries := []string{fmt.Sprintf("«class HTML»:«data HTML%X»", html)}
	if text != "" {
		entries = append(entries, fmt.Sprintf("«class utf8»:«data utf8%X»", text))
	}
	return "set the clipboard to {" + strings.Join(entries, ", ") + "}\n"
}

// powershellHelper moves HTML through System.Windows.Forms in CF_HTML
// format. Payloads cross the pipe base64 encoded, one per line.
var powershellHelper = &richHelper{
	name: "powershell",
	readArgs: []string{"-NoProfile", "-NonInteractive", "-STA", "-Command", `Add-Type -AssemblyName System.Windows.Forms
$h = [System.Windows.Forms.Clipboard]::GetText([System.Windows.Forms.TextDataFormat]::Html)
[Console]::Out.Write([Convert]::ToBase64String([Text.Encoding]::UTF8.GetBytes($h)))`},
	decode: func(out []byte) ([]byte, error) {
		raw, err := base64.StdEncoding.DecodeString(strings.TrimSpace(string(out)))
		if err != nil {
			return nil, fmt.Errorf("decoding powershell output: %w", err)
		}
		return decodeCFHTML(raw), nil
	},
	write: func(html []byte, text string) ([]string, []byte) {
		var stdin bytes.Buffer
		stdin.WriteString(base64.StdEncoding.EncodeToString(encodeCFHTML(html)))
		stdin.WriteByte('\n')
		stdin.WriteString(base64.StdEncoding.EncodeToString([]byte(text)))
		stdin.WriteByte('\n')
		return []string{"-NoProfile", "-NonInteractive", "-STA", "-Command", powershellWriteScript}, stdin.Bytes()
	},
}

const powershellWriteScript = `Add-Type -AssemblyName System.Windows.Forms
$enc = [Text.Encoding]::UTF8
$html = $enc.GetString([Convert]::FromBase64String([Console]::In.ReadLine()))
$text = $enc.GetString([Convert]::FromBase64String([Console]::In.ReadLine()))
$data = New-Object System.Windows.Forms.DataObject
$data.SetData([System.Windows.Forms.DataFormats]::Html, $html)
if ($text -ne '') { $data.SetData([System.Windows.Forms.DataFormats]::UnicodeText, $text) }
[System.Windows.Forms.Clipboard]::SetDataObject($data, $true)`

// cfHTMLHeader carries byte offsets into the whole payload, zero padded so the
// header length does not depend on them.
const cfHTMLHeader = "Version:0.9\r\nStartHTML:%010d\r\nEndHTML:%010d\r\nStartFragment:%010d\r\nEndFragment:%010d\r\n"

var (
	fragmentStart = []byte("<!--StartFragment-->")
	fragmentEnd   = []byte("<!--EndFragment-->")
)

// decodeCFHTML strips the CF_HTML description header and returns the markup,
// fragment markers included.
func decodeCFHTML(data []byte) []byte {
	i := bytes.IndexByte(data, '<')
	if i < 0 {
		return nil
	}
	return data[i:]
}

// encodeCFHTML prefixes markup with a CF_HTML header. Markup without fragment
// markers is wrapped so the whole of it is the fragment.
func encodeCFHTML(markup []byte) []byte {
	start := bytes.Index(markup, fragmentStart)
	end := bytes.LastIndex(markup, fragmentEnd)
	if start < 0 || end < start {
		wrapped := make([]byte, 0, len(markup)+64)
		wrapped = append(wrapped, "<html><body>"...)
		wrapped = append(wrapped, fragmentStart...)
		wrapped = append(wrapped, markup...)
		wrapped = append(wrapped, fragmentEnd...)
		wrapped = append(wrapped, "</body></html>"...)
		markup = wrapped
		start = len("<html><body>")
		end = len(markup) - len("</body></html>") - len(fragmentEnd)
	}

	offset := len(fmt.Sprintf(cfHTMLHeader, 0, 0, 0, 0))
	header := fmt.Sprintf(cfHTMLHeader,
		offset,
		offset+len(markup),
		offset+start+len(fragmentStart),
		offset+end,
	)
	return append([]byte(header), markup...)
}
