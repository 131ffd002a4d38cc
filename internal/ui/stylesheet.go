package ui

import (
	"bytes"
	"text/template"

	"github.com/Masterminds/sprig"

	"github.com/ingyamilmolinar/retrofx/internal/dom"
)

const keyframes = `
{{- define "particleExplode" -}}
@keyframes particleExplode {
{{- include "frame" (list "0%" "transform: scale(1) translate(0, 0);" "opacity: 1;") | nindent 2 }}
{{- include "frame" (list "100%" (printf "transform: scale(0) translate(%vpx, %vpx);" (round .DX 2) (round .DY 2)) "opacity: 0;") | nindent 2 }}
}
{{- end -}}

{{- define "rainbow" -}}
@keyframes rainbow {
{{- include "frame" (list "0%" "filter: hue-rotate(0deg);") | nindent 2 }}
{{- include "frame" (list "100%" "filter: hue-rotate(360deg);") | nindent 2 }}
}
{{- end -}}

{{- define "frame" -}}
{{ first . }} { {{ rest . | join " " }} }
{{- end -}}
`

var sheets = newSheets()

// newSheets parses the keyframe templates. include renders a named template
// to a string so it can be piped through sprig's string functions.
func newSheets() *template.Template {
	t := template.New("keyframes")
	funcs := sprig.TxtFuncMap()
	funcs["include"] = func(name string, data interface{}) (string, error) {
		var b bytes.Buffer
		err := t.ExecuteTemplate(&b, name, data)
		return b.String(), err
	}
	return template.Must(t.Funcs(funcs).Parse(keyframes))
}

type particleFrames struct {
	DX, DY float64
}

// renderKeyframes renders one named keyframes block.
func renderKeyframes(name string, data interface{}) (string, error) {
	var b bytes.Buffer
	if err := sheets.ExecuteTemplate(&b, name, data); err != nil {
		return "", err
	}
	return b.String(), nil
}

// injectStyle appends a <style> element holding css to the head.
func injectStyle(doc dom.Document, css string) dom.Element {
	s := doc.Create("style")
	s.SetText(css)
	doc.Head().AppendChild(s)
	return s
}
