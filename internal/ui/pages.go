package ui

import (
	"github.com/Goofygiraffe06/barber/internal/form"
	"github.com/Goofygiraffe06/barber/internal/notify"
)

// Page names known to the Renderer.
const (
	PageSignIn    = "signin"
	PageSignUp    = "signup"
	PageDashboard = "dashboard"
)

// Page is the data every template receives.
type Page struct {
	Title     string
	CSRFToken string
	Toasts    []notify.Toast

	// Form pages.
	Action string
	Fields []Field
	Button Button

	// Dashboard.
	UserName  string
	UserEmail string
}

var signInFields = []Field{
	{Name: form.FieldEmail, Type: "text", Placeholder: "E-mail", Autocomplete: "email", Icon: IconMail},
	{Name: form.FieldPassword, Type: "password", Placeholder: "Password", Autocomplete: "current-password", Icon: IconLock},
}

var signUpFields = []Field{
	{Name: form.FieldName, Type: "text", Placeholder: "Name", Autocomplete: "name", Icon: IconUser},
	{Name: form.FieldEmail, Type: "text", Placeholder: "E-mail", Autocomplete: "email", Icon: IconMail},
	{Name: form.FieldPassword, Type: "password", Placeholder: "Password", Autocomplete: "new-password", Icon: IconLock},
}

// SignInPage builds the sign-in page. values and errs are nil on first view.
func SignInPage(values form.Values, errs form.Errors) Page {
	return Page{
		Title:  "Sign in",
		Action: "/",
		Fields: bindAll(signInFields, values, errs),
		Button: Button{Label: "Sign in", Type: "submit"},
	}
}

// SignUpPage builds the registration page.
func SignUpPage(values form.Values, errs form.Errors) Page {
	return Page{
		Title:  "Create your account",
		Action: "/register",
		Fields: bindAll(signUpFields, values, errs),
		Button: Button{Label: "Sign up", Type: "submit"},
	}
}

// DashboardPage builds the signed-in landing page.
func DashboardPage(name, email string) Page {
	return Page{
		Title:     "Dashboard",
		UserName:  name,
		UserEmail: email,
	}
}

func bindAll(fields []Field, values form.Values, errs form.Errors) []Field {
	out := make([]Field, len(fields))
	for i, f := range fields {
		out[i] = f.bind(values, errs)
	}
	return out
}
