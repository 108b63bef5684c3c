package render

import (
	"html/template"
	"strings"
)

// Document carries the fields printed into the generated PDF.
type Document struct {
	Name           string
	FatherName     string
	CNIC           string
	Email          string
	Phone          string
	Education      string
	Experience     string
	Skills         string
	ProfilePicture string
}

const pageHTML = `<!doctype html>
<html>
<head>
<meta charset="utf-8">
<style>
  body { font-family: Helvetica, Arial, sans-serif; font-size: 12pt; margin: 2cm; }
  h1 { font-size: 20pt; text-align: center; }
  p { text-align: left; margin: 0.35em 0; }
</style>
</head>
<body>
<h1>{{.Name}}'s Resume</h1>
<p>Father's Name: {{.FatherName}}</p>
<p>CNIC: {{.CNIC}}</p>
<p>Email: {{.Email}}</p>
<p>Phone: {{.Phone}}</p>
<p>Education: {{.Education}}</p>
<p>Experience: {{.Experience}}</p>
<p>Skills: {{.Skills}}</p>
{{if .ProfilePicture}}<p>Profile Picture: {{.ProfilePicture}}</p>
{{end}}</body>
</html>
`

var pageTmpl = template.Must(template.New("resume").Parse(pageHTML))

// BuildHTML renders the printable resume page for the document.
func BuildHTML(doc Document) (string, error) {
	var b strings.Builder
	if err := pageTmpl.Execute(&b, doc); err != nil {
		return "", err
	}
	return b.String(), nil
}
