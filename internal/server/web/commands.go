package web

import "net/http"

// Typed commands parsed from form payloads at the boundary, one per
// operation. Handlers validate them before anything reaches a service.

type SignupCommand struct {
	Email      string
	Password   string
	RedirectTo string
}

type LoginCommand struct {
	Email      string
	Password   string
	Remember   bool
	RedirectTo string
}

type CreatePostCommand struct {
	Title    string
	Slug     string
	Markdown string
}

type UpdatePostCommand struct {
	CurrentSlug string
	Title       string
	NewSlug     string
	Markdown    string
}

func parseSignupCommand(r *http.Request) SignupCommand {
	return SignupCommand{
		Email:      r.PostFormValue("email"),
		Password:   r.PostFormValue("password"),
		RedirectTo: r.PostFormValue("redirectTo"),
	}
}

func parseLoginCommand(r *http.Request) LoginCommand {
	return LoginCommand{
		Email:      r.PostFormValue("email"),
		Password:   r.PostFormValue("password"),
		Remember:   r.PostFormValue("remember") == "on",
		RedirectTo: r.PostFormValue("redirectTo"),
	}
}

func parseCreatePostCommand(r *http.Request) CreatePostCommand {
	return CreatePostCommand{
		Title:    r.PostFormValue("title"),
		Slug:     r.PostFormValue("slug"),
		Markdown: r.PostFormValue("markdown"),
	}
}

func parseUpdatePostCommand(r *http.Request, currentSlug string) UpdatePostCommand {
	return UpdatePostCommand{
		CurrentSlug: currentSlug,
		Title:       r.PostFormValue("title"),
		NewSlug:     r.PostFormValue("slug"),
		Markdown:    r.PostFormValue("markdown"),
	}
}
