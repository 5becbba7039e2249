package flow

import (
	"context"

	"github.com/Goofygiraffe06/barber/internal/form"
	"github.com/Goofygiraffe06/barber/internal/models"
	"github.com/Goofygiraffe06/barber/internal/notify"
)

// Routes used by the built-in flows.
const (
	RouteSignIn    = "/"
	RouteSignUp    = "/register"
	RouteDashboard = "/dashboard"
)

// SignIn builds the sign-in flow around an authentication call.
func SignIn(authenticate func(ctx context.Context, c models.Credentials) error) Definition {
	return Definition{
		Schema: form.SignInSchema,
		Action: func(ctx context.Context, v form.Values) error {
			return authenticate(ctx, models.Credentials{
				Email:    v.Get(form.FieldEmail),
				Password: v.Get(form.FieldPassword),
			})
		},
		SuccessRoute: RouteDashboard,
		FailureToast: notify.Toast{
			Kind:        notify.KindError,
			Title:       "Authentication error",
			Description: "Something went wrong while talking to the server. Please check your credentials.",
		},
	}
}

// SignUp builds the registration flow around a user creation call.
func SignUp(register func(ctx context.Context, req models.CreateUserRequest) error) Definition {
	return Definition{
		Schema: form.SignUpSchema,
		Action: func(ctx context.Context, v form.Values) error {
			return register(ctx, models.CreateUserRequest{
				Name:     v.Get(form.FieldName),
				Email:    v.Get(form.FieldEmail),
				Password: v.Get(form.FieldPassword),
			})
		},
		SuccessRoute: RouteSignIn,
		SuccessToast: &notify.Toast{
			Kind:        notify.KindSuccess,
			Title:       "User registered",
			Description: "You can now sign in.",
		},
		FailureToast: notify.Toast{
			Kind:        notify.KindError,
			Title:       "Registration error",
			Description: "Something went wrong while talking to the server. Please try again later.",
		},
	}
}
