// Package templates renders the storefront pages and the confirmation email
// by substituting {{TOKEN}} placeholders in embedded HTML files. Every
// substituted value is HTML escaped.
package templates

import (
	"embed"
	"fmt"
	"html"
	"strconv"
	"strings"

	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/ports"

	"github.com/valyala/fasttemplate"
)

// ConfirmationSubject is the subject line of every confirmation email.
const ConfirmationSubject = "Cool bean shipment"

const (
	startTag = "{{"
	endTag   = "}}"

	// greyClass marks a tracking stage the order has not reached yet.
	greyClass = "grey"
)

//go:embed html/*.html
var files embed.FS

// Renderer holds the parsed templates. It is safe for concurrent use.
type Renderer struct {
	checkout *fasttemplate.Template
	tracking *fasttemplate.Template
	email    *fasttemplate.Template
	admin    *fasttemplate.Template
	adminRow *fasttemplate.Template
}

var _ ports.ConfirmationRenderer = (*Renderer)(nil)

// NewRenderer parses the embedded templates.
func NewRenderer() (*Renderer, error) {
	r := &Renderer{}

	for name, dst := range map[string]**fasttemplate.Template{
		"checkout.html":       &r.checkout,
		"tracking.html":       &r.tracking,
		"tracking_email.html": &r.email,
		"admin.html":          &r.admin,
		"admin_row.html":      &r.adminRow,
	} {
		t, err := parse(name)
		if err != nil {
			return nil, err
		}
		*dst = t
	}

	return r, nil
}

func parse(name string) (*fasttemplate.Template, error) {
	raw, err := files.ReadFile("html/" + name)
	if err != nil {
		return nil, fmt.Errorf("read template %s: %w", name, err)
	}

	t, err := fasttemplate.NewTemplate(string(raw), startTag, endTag)
	if err != nil {
		return nil, fmt.Errorf("parse template %s: %w", name, err)
	}

	return t, nil
}

// RenderConfirmationEmail builds the email sent after checkout.
func (r *Renderer) RenderConfirmationEmail(data ports.ConfirmationData) (ports.RenderedEmail, error) {
	body := r.email.ExecuteString(escaped(map[string]string{
		"NAME":  data.Name,
		"BEANS": formatQuantity(data.Quantity),
		"EMAIL": data.Email,
		"CODE":  data.Code,
		"SITE":  strings.TrimRight(data.SiteURL, "/"),
	}))

	return ports.RenderedEmail{Subject: ConfirmationSubject, HTMLBody: body}, nil
}

// ConfirmationPage renders the page shown right after checkout.
func (r *Renderer) ConfirmationPage(data ports.ConfirmationData) string {
	return r.checkout.ExecuteString(escaped(map[string]string{
		"NAME":  data.Name,
		"BEANS": formatQuantity(data.Quantity),
		"EMAIL": data.Email,
		"CODE":  data.Code,
		"SITE":  strings.TrimRight(data.SiteURL, "/"),
	}))
}

// TrackingPage renders the public status page. Stages the order has not
// reached are greyed out.
func (r *Renderer) TrackingPage(o queries.GetOrderQueryResponse) string {
	values := escaped(map[string]string{
		"CODE":        o.Code,
		"NAME":        o.Name,
		"BEANS":       formatQuantity(o.Quantity),
		"BEAN_STATUS": o.Status.String(),
	})
	values["HIDDEN_SHIP"] = stageClass(o.Status, order.Shipped)
	values["HIDDEN_TRAN"] = stageClass(o.Status, order.InTransit)
	values["HIDDEN_DLIV"] = stageClass(o.Status, order.Delivered)

	return r.tracking.ExecuteString(values)
}

// AdminPage renders the order table with per-row actions.
func (r *Renderer) AdminPage(orders []queries.ListOrdersQueryResponse) string {
	var rows strings.Builder
	for _, o := range orders {
		rows.WriteString(r.adminRow.ExecuteString(escaped(map[string]string{
			"CODE":        o.Code,
			"NAME":        o.Name,
			"BEANS":       formatQuantity(o.Quantity),
			"EMAIL":       o.Email,
			"SSN":         o.Reference,
			"BEAN_STATUS": o.Status.String(),
		})))
	}

	return r.admin.ExecuteString(map[string]any{"ADMIN": rows.String()})
}

func stageClass(current, stage order.Status) string {
	if current.Reached(stage) {
		return ""
	}
	return greyClass
}

func formatQuantity(q uint32) string {
	return strconv.FormatUint(uint64(q), 10)
}

func escaped(values map[string]string) map[string]any {
	m := make(map[string]any, len(values))
	for k, v := range values {
		m[k] = html.EscapeString(v)
	}
	return m
}
