package services

import (
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/rpupo63/storefront-site-backend/models"
)

// ContactRequest is a message sent through the public contact form
type ContactRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Company     string `json:"company,omitempty"`
	Subject     string `json:"subject,omitempty"`
	Message     string `json:"message"`
	ProjectID   string `json:"project_id,omitempty"`
	InquiryType string `json:"inquiry_type,omitempty"`
}

// ContactEmail renders the sales notification for a contact form submission
func ContactEmail(siteName string, req ContactRequest, projectName string) (subject, body string) {
	subject = fmt.Sprintf("[%s] New contact request from %s", siteName, req.Name)
	if req.Subject != "" {
		subject = fmt.Sprintf("[%s] %s", siteName, req.Subject)
	}

	var b strings.Builder
	b.WriteString("<h2>New contact request</h2><table>")
	row(&b, "Name", req.Name)
	row(&b, "Email", req.Email)
	row(&b, "Company", req.Company)
	row(&b, "Project", projectName)
	b.WriteString("</table>")
	fmt.Fprintf(&b, "<p>%s</p>", strings.ReplaceAll(html.EscapeString(req.Message), "\n", "<br>"))
	return subject, b.String()
}

// LeadDigestEmail summarizes the leads captured since the given time
func LeadDigestEmail(siteName string, leads []*models.ProjectLead, since time.Time) (subject, body string) {
	subject = fmt.Sprintf("[%s] %d new lead(s) since %s", siteName, len(leads), since.UTC().Format("Jan 2 15:04 MST"))

	var b strings.Builder
	fmt.Fprintf(&b, "<h2>%d new lead(s)</h2>", len(leads))
	b.WriteString("<table><tr><th>When</th><th>Project</th><th>Type</th><th>Name</th><th>Email</th><th>Message</th></tr>")
	for _, lead := range leads {
		project := "-"
		if lead.Project != nil {
			project = lead.Project.Name
		}
		fmt.Fprintf(&b, "<tr><td>%s</td><td>%s</td><td>%s</td><td>%s</td><td>%s</td><td>%s</td></tr>",
			lead.CreatedAt.UTC().Format(time.RFC3339),
			html.EscapeString(project),
			html.EscapeString(string(lead.InquiryType)),
			html.EscapeString(lead.Name),
			html.EscapeString(lead.Email),
			html.EscapeString(lead.Message),
		)
	}
	b.WriteString("</table>")
	return subject, b.String()
}

func row(b *strings.Builder, label, value string) {
	if value == "" {
		return
	}
	fmt.Fprintf(b, "<tr><td><b>%s</b></td><td>%s</td></tr>", label, html.EscapeString(value))
}
