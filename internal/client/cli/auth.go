package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/foorum/internal/client/models"
	"github.com/dmitrijs2005/foorum/internal/client/services"
	"github.com/dmitrijs2005/foorum/internal/client/storage"
	"github.com/dmitrijs2005/foorum/internal/client/validation"
	"github.com/dmitrijs2005/foorum/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// SignIn runs the sign-in form: email, password and "remember me".
//
// Field errors are printed and ErrInvalidForm returned without calling the
// auth service. Otherwise the call waits for the auth task with a pending
// indicator. A rejected sign-in prints the service error and returns it.
func (a *App) SignIn(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword("Password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	remember, err := getSimpleText(a.reader, "Remember me? (y/N)", a.out)
	if err != nil {
		return err
	}

	form := validation.SignInForm{Email: email, Password: string(password)}
	if errs := validation.ValidateSignIn(form); errs != nil {
		a.println(renderFieldErrors(errs, "email", "password"))
		return ErrInvalidForm
	}

	session, err := a.await(ctx, a.authService.SignIn(ctx, email, password))
	if err != nil {
		a.println(errorStyle.Render("Error: " + err.Error()))
		return err
	}

	if isYes(remember) {
		storage.Set(ctx, a.store, KeyRememberMe, "true")
	}

	a.println(successStyle.Render("Welcome, " + session.DisplayName + "!"))
	return nil
}

// SignUp runs the sign-up form: name, email, password with a strength
// meter, confirmation and terms.
func (a *App) SignUp(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Full name", a.out)
	if err != nil {
		return err
	}

	email, err := getSimpleText(a.reader, "Email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword("Password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	a.println(mutedStyle.Render("Password strength: ") + strengthLabel(validation.PasswordStrength(string(password))))

	confirm, err := getPassword("Confirm password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(confirm)

	terms, err := getSimpleText(a.reader, "Accept the terms and conditions? (y/N)", a.out)
	if err != nil {
		return err
	}

	form := validation.SignUpForm{
		Name:            name,
		Email:           email,
		Password:        string(password),
		ConfirmPassword: string(confirm),
		AcceptTerms:     isYes(terms),
	}
	if errs := validation.ValidateSignUp(form); errs != nil {
		a.println(renderFieldErrors(errs, "name", "email", "password", "confirmPassword", "terms"))
		return ErrInvalidForm
	}

	session, err := a.await(ctx, a.authService.SignUp(ctx, strings.TrimSpace(name), email, password))
	if err != nil {
		a.println(errorStyle.Render("Error: " + err.Error()))
		return err
	}

	a.println(successStyle.Render("Welcome, " + session.DisplayName + "!"))
	return nil
}

// SignOut forgets the session. The remember-me flag is left as is.
func (a *App) SignOut(ctx context.Context) error {
	a.authService.SignOut(ctx)
	a.println("Signed out.")
	return nil
}

// requireAuth is the sign-in modal: it offers sign-in or sign-up and
// reports whether a session exists afterwards.
func (a *App) requireAuth(ctx context.Context) bool {
	if a.isLoggedIn() {
		return true
	}

	a.println(mutedStyle.Render("Please sign in to continue."))
	choice, err := getSimpleText(a.reader, "Sign (i)n, sign (u)p, or press Enter to cancel", a.out)
	if err != nil {
		return false
	}

	switch strings.ToLower(choice) {
	case "i", "in", "signin":
		_ = a.SignIn(ctx)
	case "u", "up", "signup":
		_ = a.SignUp(ctx)
	default:
		return false
	}
	return a.isLoggedIn()
}

// await prints progress dots until task resolves. Giving up on ctx leaves
// the task running; its outcome still lands in the auth service.
func (a *App) await(ctx context.Context, task *services.AuthTask) (*models.Session, error) {
	fmt.Fprint(a.out, "Loading")
	defer fmt.Fprintln(a.out)

	ticker := time.NewTicker(pendingTick)
	defer ticker.Stop()

	for {
		select {
		case <-task.Done():
			res, _ := task.Result()
			return res.Session, res.Err
		case <-ticker.C:
			fmt.Fprint(a.out, ".")
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
}

func strengthLabel(s validation.Strength) string {
	switch s {
	case validation.StrengthStrong:
		return successStyle.Render(string(s))
	case validation.StrengthMedium:
		return nameStyle.Render(string(s))
	default:
		return errorStyle.Render(string(s))
	}
}
