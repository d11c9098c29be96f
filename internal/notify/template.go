package notify

import (
	"bytes"
	"fmt"
	"html/template"
)

// DisplayDateLayout is how dates appear in notification bodies
const DisplayDateLayout = "2 January 2006"

var subjects = map[Kind]string{
	KindAssigned:  "New Maintenance Assigned",
	KindUpdated:   "Maintenance Updated",
	KindCancelled: "Maintenance Cancelled",
}

var intros = map[Kind]string{
	KindAssigned:  "You have been assigned a new maintenance:",
	KindUpdated:   "A maintenance assigned to you has been updated:",
	KindCancelled: "The following maintenance has been cancelled:",
}

const bodyTemplate = `<h2>{{.Subject}}</h2>
<p>Hello {{.OperatorName}},</p>
<p>{{.Intro}}</p>
<ul>
  <li><strong>Equipment:</strong> {{.EquipmentName}}</li>
  <li><strong>Scheduled date:</strong> {{.Date}}</li>
  {{- if .Observations}}
  <li><strong>Observations:</strong> {{.Observations}}</li>
  {{- end}}
</ul>
{{- if .Reminder}}
<p>Please make sure the maintenance is carried out on the scheduled date.</p>
{{- end}}
`

var body = template.Must(template.New("maintenance-email").Parse(bodyTemplate))

type templateData struct {
	Subject       string
	Intro         string
	OperatorName  string
	EquipmentName string
	Date          string
	Observations  string
	Reminder      bool
}

// Subject returns the e-mail subject for kind
func Subject(kind Kind) string {
	return subjects[kind]
}

// Render builds the HTML body for a notification. Field values are escaped.
func Render(kind Kind, msg Message) (string, error) {
	subject, ok := subjects[kind]
	if !ok {
		return "", fmt.Errorf("notify: unknown notification kind %q", kind)
	}
	data := templateData{
		Subject:       subject,
		Intro:         intros[kind],
		OperatorName:  msg.OperatorName,
		EquipmentName: msg.EquipmentName,
		Date:          msg.ScheduledDate.Format(DisplayDateLayout),
		Observations:  msg.Observations,
		Reminder:      kind != KindCancelled,
	}
	var buf bytes.Buffer
	if err := body.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
