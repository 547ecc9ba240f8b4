package ports

// ConfirmationData is the plain data a confirmation page or email is rendered from.
type ConfirmationData struct {
	Code     string
	Name     string
	Quantity uint32
	Email    string
	SiteURL  string
}

// RenderedEmail is a subject line plus an HTML body.
type RenderedEmail struct {
	Subject  string
	HTMLBody string
}

// ConfirmationRenderer turns confirmation data into the customer's email.
type ConfirmationRenderer interface {
	RenderConfirmationEmail(data ConfirmationData) (RenderedEmail, error)
}
