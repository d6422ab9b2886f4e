package labels

import (
	"bytes"
	"fmt"
	"html/template"
)

// Recipient is the address data printed on a label.
type Recipient struct {
	FullName       string
	Address        string
	Phone          string
	TrackingNumber string
}

// LabelType selects the physical layout of a rendered document.
type LabelType string

const (
	// TypeMinimal is a compact A6 label with name, address and phone.
	TypeMinimal LabelType = "minimal"
	// TypeFull is a full A4 page for one recipient.
	TypeFull LabelType = "full"
	// TypeFourUp is an A4 sheet with four label cells.
	TypeFourUp LabelType = "4up"
)

const minimalTmpl = `<!DOCTYPE html>
<html lang="th">
<head>
<meta charset="utf-8">
<title>ป้ายจ่าหน้า</title>
<style>
@page { size: A6; margin: 8mm; }
body { font-family: "Sarabun", sans-serif; font-size: 11pt; }
.label { border: 1px solid #000; padding: 6mm; }
.name { font-weight: bold; font-size: 13pt; }
.tracking { margin-top: 4mm; font-size: 10pt; }
</style>
</head>
<body>
{{range .}}<div class="label">
<div class="name">{{.FullName}}</div>
<div>{{.Address}}</div>
<div>โทร {{.Phone}}</div>
{{if .TrackingNumber}}<div class="tracking">Tracking: {{.TrackingNumber}}</div>{{end}}
</div>
{{end}}</body>
</html>
`

const fullTmpl = `<!DOCTYPE html>
<html lang="th">
<head>
<meta charset="utf-8">
<title>ป้ายจ่าหน้า</title>
<style>
@page { size: A4; margin: 20mm; }
body { font-family: "Sarabun", sans-serif; font-size: 14pt; }
.label { border: 2px solid #000; padding: 15mm; margin-bottom: 10mm; page-break-inside: avoid; }
.name { font-weight: bold; font-size: 18pt; margin-bottom: 5mm; }
.tracking { margin-top: 8mm; font-size: 12pt; }
</style>
</head>
<body>
{{range .}}<div class="label">
<div class="name">{{.FullName}}</div>
<div>{{.Address}}</div>
<div>โทร {{.Phone}}</div>
{{if .TrackingNumber}}<div class="tracking">Tracking: {{.TrackingNumber}}</div>{{end}}
</div>
{{end}}</body>
</html>
`

const fourUpTmpl = `<!DOCTYPE html>
<html lang="th">
<head>
<meta charset="utf-8">
<title>ป้ายจ่าหน้า 4 ดวง</title>
<style>
@page { size: A4 landscape; margin: 10mm; }
body { font-family: "Sarabun", sans-serif; font-size: 10pt; margin: 0; }
.sheet { display: grid; grid-template-columns: 1fr 1fr; gap: 5mm; }
.cell { border: 1px dashed #555; padding: 5mm; min-height: 60mm; }
.name { font-weight: bold; font-size: 12pt; }
.tracking { margin-top: 3mm; font-size: 9pt; }
</style>
</head>
<body>
<div class="sheet">
{{range .}}<div class="cell">
<div class="name">{{.FullName}}</div>
<div>{{.Address}}</div>
<div>โทร {{.Phone}}</div>
{{if .TrackingNumber}}<div class="tracking">Tracking: {{.TrackingNumber}}</div>{{end}}
</div>
{{end}}</div>
</body>
</html>
`

var templates = map[LabelType]*template.Template{
	TypeMinimal: template.Must(template.New("minimal").Parse(minimalTmpl)),
	TypeFull:    template.Must(template.New("full").Parse(fullTmpl)),
	TypeFourUp:  template.Must(template.New("4up").Parse(fourUpTmpl)),
}

// Render produces the printable HTML document for the given layout.
// A 4-up sheet accepts at most SheetSize recipients.
func Render(t LabelType, recipients []Recipient) ([]byte, error) {
	tmpl, ok := templates[t]
	if !ok {
		return nil, fmt.Errorf("unknown label type %q", t)
	}
	if t == TypeFourUp && len(recipients) > SheetSize {
		return nil, fmt.Errorf("4-up sheet holds at most %d labels, got %d", SheetSize, len(recipients))
	}
	if len(recipients) == 0 {
		return nil, fmt.Errorf("no recipients to render")
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, recipients); err != nil {
		return nil, fmt.Errorf("failed to render %s label document: %w", t, err)
	}
	return buf.Bytes(), nil
}
