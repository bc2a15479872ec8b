package status

import (
	"io"
	"sort"
	"strconv"
	"strings"
	"text/template"
)

// Header describes the PO catalogue written by WritePO.
type Header struct {
	PackageName      string
	MsgidBugsAddress string
	CreationDate     string
	Language         string
	PluralForms      string
}

const poTemplateData = `# {{ or .Header.Language "LANGUAGE" }} translations for {{ or .Header.PackageName "PACKAGE" }}.
#
msgid ""
msgstr ""
"Project-Id-Version: {{ or .Header.PackageName "PACKAGE" }}\n"
{{ if .Header.MsgidBugsAddress -}}
"Report-Msgid-Bugs-To: {{ .Header.MsgidBugsAddress }}\n"
{{ end -}}
"POT-Creation-Date: {{ .Header.CreationDate }}\n"
"Language: {{ .Header.Language }}\n"
"MIME-Version: 1.0\n"
"Content-Type: text/plain; charset=UTF-8\n"
"Content-Transfer-Encoding: 8bit\n"
{{ if .Header.PluralForms -}}
"Plural-Forms: {{ .Header.PluralForms }}\n"
{{ end -}}
{{ range .Messages -}}
{{ "\n" -}}
{{ .Comments -}}
{{ if .MsgContext -}}
msgctxt {{ .MsgContext }}
{{ end -}}
msgid {{ .Msgid }}
msgstr {{ .Msgstr }}
{{ end -}}
`

var poTemplate = template.Must(template.New("po").Parse(poTemplateData))

type messageData struct {
	Comments   string
	MsgContext string
	Msgid      string
	Msgstr     string
}

func quoteMsgid(msg string) string {
	if len(msg) == 0 {
		return `""`
	}

	quoted := []string{`""`}
	for _, line := range strings.SplitAfter(msg, "\n") {
		if len(line) == 0 {
			continue
		}
		quoted = append(quoted, strconv.Quote(line))
	}

	if len(quoted) == 2 {
		return quoted[1]
	}
	return strings.Join(quoted, "\n")
}

// WritePO writes a PO catalogue keyed by message key. Each entry carries
// the base template as extracted comment and the translation as msgstr,
// empty when the key is untranslated. Dotted keys are split into msgctxt
// and msgid, matching how .mo resources are read back.
func WritePO(w io.Writer, header Header, base, translations map[string]string) error {
	keys := make([]string, 0, len(base))
	for key := range base {
		// an empty msgid is the catalogue header
		if key != "" {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)

	msgData := make([]*messageData, 0, len(keys))
	for _, key := range keys {
		data := &messageData{Msgstr: quoteMsgid(translations[key])}
		for _, line := range strings.Split(base[key], "\n") {
			data.Comments += "#. " + line + "\n"
		}
		if context, msgid, ok := strings.Cut(key, "."); ok {
			data.MsgContext = quoteMsgid(context)
			data.Msgid = quoteMsgid(msgid)
		} else {
			data.Msgid = quoteMsgid(key)
		}
		msgData = append(msgData, data)
	}

	return poTemplate.Execute(w, struct {
		Header   Header
		Messages []*messageData
	}{
		Header:   header,
		Messages: msgData,
	})
}
