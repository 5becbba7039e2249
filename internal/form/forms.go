package form

// MinPasswordLength is enforced on sign-up only; sign-in accepts whatever the
// account was created with.
const MinPasswordLength = 6

var (
	msgNameRequired     = Messages{"required": "Name is required"}
	msgEmail            = Messages{"required": "E-mail is required", "email": "Enter a valid e-mail"}
	msgPasswordRequired = Messages{"required": "Password is required"}
	msgPasswordSignUp   = Messages{
		"required": "Password is required",
		"min":      "Password must be at least six characters",
	}
)

// SignInSchema validates the sign-in form.
var SignInSchema = NewSchema("signin").
	Field(FieldEmail, "required,email", msgEmail).
	Field(FieldPassword, "required", msgPasswordRequired)

// SignUpSchema validates the sign-up form.
var SignUpSchema = NewSchema("signup").
	Field(FieldName, "required", msgNameRequired).
	Field(FieldEmail, "required,email", msgEmail).
	Field(FieldPassword, "required,min=6", msgPasswordSignUp)
