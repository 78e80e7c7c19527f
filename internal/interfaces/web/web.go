// Package web serves the server-rendered signup, login and profile pages.
package web

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/render"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"rewear.backend/internal/domain/entities"
	domainerrors "rewear.backend/internal/domain/errors"
	"rewear.backend/pkg/logger"
	"rewear.backend/pkg/utils"
)

//go:embed templates/*.html
var templateFS embed.FS

type registrar interface {
	Register(ctx context.Context, input *entities.RegisterInput, photo *entities.Upload) (*entities.User, error)
}

type profiles interface {
	Profile(ctx context.Context, id uuid.UUID, viewerID *uuid.UUID) (*entities.UserProfile, error)
}

// Pages renders the HTML frontend.
type Pages struct {
	tmpl     *template.Template
	auth     registrar
	profiles profiles
}

// NewPages parses the embedded templates.
func NewPages(auth registrar, profiles profiles) (*Pages, error) {
	tmpl, err := template.New("pages").Funcs(template.FuncMap{
		"price": formatPrice,
	}).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &Pages{tmpl: tmpl, auth: auth, profiles: profiles}, nil
}

// Register mounts the page routes.
func (p *Pages) Register(r gin.IRouter) {
	r.GET("/signup", p.SignupForm)
	r.POST("/signup", p.Signup)
	r.GET("/login", p.Login)
	r.GET("/users/:id", p.Profile)
}

type signupView struct {
	Title string
	Error string
	Form  entities.RegisterInput
}

func (p *Pages) SignupForm(c *gin.Context) {
	p.render(c, http.StatusOK, "signup.html", signupView{Title: "Sign up"})
}

// Signup submits the registration. Failures re-render the form with the
// message instead of dropping the user on a blank error.
func (p *Pages) Signup(c *gin.Context) {
	var input entities.RegisterInput
	view := signupView{Title: "Sign up"}

	if err := c.ShouldBind(&input); err != nil {
		view.Form = withoutPassword(input)
		view.Error = "Please fill in every field. Passwords need at least 8 characters."
		p.render(c, http.StatusUnprocessableEntity, "signup.html", view)
		return
	}

	photo, closePhoto, err := formPhoto(c)
	if err != nil {
		view.Form = withoutPassword(input)
		view.Error = "The profile photo could not be uploaded."
		p.render(c, http.StatusUnprocessableEntity, "signup.html", view)
		return
	}
	defer closePhoto()

	if _, err := p.auth.Register(c.Request.Context(), &input, photo); err != nil {
		status, message := signupFailure(err)
		if status >= http.StatusInternalServerError {
			logger.Error(c.Request.Context(), "Signup failed", zap.Error(err))
		}
		view.Form = withoutPassword(input)
		view.Error = message
		p.render(c, status, "signup.html", view)
		return
	}

	c.Redirect(http.StatusSeeOther, "/login?registered=1")
}

func (p *Pages) Login(c *gin.Context) {
	p.render(c, http.StatusOK, "login.html", gin.H{
		"Title":      "Log in",
		"Registered": c.Query("registered") != "",
	})
}

func (p *Pages) Profile(c *gin.Context) {
	id, ok := utils.ParseID(c.Param("id"))
	if !ok {
		p.render(c, http.StatusNotFound, "not_found.html", gin.H{"Title": "Not found"})
		return
	}

	profile, err := p.profiles.Profile(c.Request.Context(), id, nil)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			p.render(c, http.StatusNotFound, "not_found.html", gin.H{"Title": "Not found"})
			return
		}
		logger.Error(c.Request.Context(), "Profile page failed", zap.Error(err))
		c.String(http.StatusInternalServerError, "Something went wrong.")
		return
	}

	p.render(c, http.StatusOK, "profile.html", gin.H{
		"Title":   profile.Name,
		"Profile": profile,
	})
}

func (p *Pages) render(c *gin.Context, status int, name string, data interface{}) {
	c.Render(status, render.HTML{Template: p.tmpl, Name: name, Data: data})
}

func signupFailure(err error) (int, string) {
	var appErr *domainerrors.AppError
	if errors.As(err, &appErr) && appErr.Status < http.StatusInternalServerError {
		return http.StatusUnprocessableEntity, appErr.Message
	}
	return http.StatusInternalServerError, "We could not create your account right now. Please try again."
}

func withoutPassword(input entities.RegisterInput) entities.RegisterInput {
	input.Password = ""
	return input
}

func formPhoto(c *gin.Context) (*entities.Upload, func(), error) {
	noop := func() {}
	header, err := c.FormFile("profile_photo")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil, noop, nil
		}
		return nil, noop, err
	}
	file, err := header.Open()
	if err != nil {
		return nil, noop, err
	}
	return &entities.Upload{
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
		Content:     file,
	}, func() { _ = file.Close() }, nil
}

// formatPrice renders minor units as a decimal amount.
func formatPrice(minor int64) string {
	sign := ""
	if minor < 0 {
		sign = "-"
		minor = -minor
	}
	return fmt.Sprintf("%s%d.%02d", sign, minor/100, minor%100)
}
