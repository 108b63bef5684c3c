package resumes

import (
	"html/template"
	"strings"
)

const viewHTML = `<h2>{{.Name}}'s Resume</h2>
<p><strong>Father's Name:</strong> {{.FatherName}}</p>
<p><strong>CNIC:</strong> {{.CNIC}}</p>
<p><strong>Email:</strong> {{.Email}}</p>
<p><strong>Phone:</strong> {{.Phone}}</p>
<p><strong>Education:</strong> {{.Education}}</p>
<p><strong>Experience:</strong> {{.Experience}}</p>
<p><strong>Skills:</strong> {{.Skills}}</p>
{{if .ProfilePicture}}<img src="{{.ProfilePicture}}" alt="Profile Picture" width="150" height="150"/>
{{end}}<p><a href="/resumes/{{.PDFFileName}}" target="_blank">Download PDF</a></p>
`

var viewTmpl = template.Must(template.New("view").Parse(viewHTML))

// buildViewPage renders the browser-facing resume page.
func buildViewPage(rec Resume) (string, error) {
	var b strings.Builder
	if err := viewTmpl.Execute(&b, rec); err != nil {
		return "", err
	}
	return b.String(), nil
}
