package web

import (
	"errors"
	"net/http"

	"emporia-be/internal/flash"
	"emporia-be/internal/logger"
	"emporia-be/internal/middleware"
	"emporia-be/internal/user"

	"go.uber.org/zap"
)

func (h *Handler) LoginShow(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "login.html", nil)
}

func (h *Handler) LoginPost(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	email := r.PostFormValue("email")
	password := r.PostFormValue("password")

	u, err := h.users.Login(ctx, email, password)
	if err != nil {
		switch {
		case errors.Is(err, user.ErrFieldsRequired):
			flash.Danger(w, "Both email and password are required")
		case errors.Is(err, user.ErrInvalidEmail):
			flash.Danger(w, "Invalid email format")
		case errors.Is(err, user.ErrInvalidCredentials):
			flash.Danger(w, "Invalid email or password")
		case errors.Is(err, user.ErrUnknownRole):
			flash.Danger(w, "Unknown role encountered")
		default:
			flash.Danger(w, "An internal database error occurred")
		}
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	token, err := h.sessions.Create(ctx, u.ID, u.Role)
	if err != nil {
		logger.FromCtx(ctx).Error("failed to create session", zap.Error(err))
		flash.Danger(w, "An internal database error occurred")
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	setSessionCookie(w, token)

	switch u.Role {
	case user.RoleAdmin:
		http.Redirect(w, r, "/admin_home", http.StatusSeeOther)
	case user.RoleSuperadmin:
		http.Redirect(w, r, "/superadmin_home", http.StatusSeeOther)
	default:
		http.Redirect(w, r, "/user_home", http.StatusSeeOther)
	}
}

func (h *Handler) SignupShow(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "signup.html", nil)
}

func (h *Handler) SignupPost(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	email := r.PostFormValue("email")
	password := r.PostFormValue("password")

	_, err := h.users.Register(ctx, email, password)
	if err != nil {
		switch {
		case errors.Is(err, user.ErrFieldsRequired):
			flash.Danger(w, "Email and password are required")
			http.Redirect(w, r, "/signup", http.StatusSeeOther)
		case errors.Is(err, user.ErrInvalidEmail):
			flash.Danger(w, "Invalid email format")
			http.Redirect(w, r, "/signup", http.StatusSeeOther)
		case errors.Is(err, user.ErrPasswordTooShort):
			flash.Danger(w, "Password must be at least 6 characters long")
			http.Redirect(w, r, "/signup", http.StatusSeeOther)
		case errors.Is(err, user.ErrEmailExists):
			// Existing accounts are pointed at login, not back to signup.
			flash.Danger(w, "Email already exists, please log in instead")
			http.Redirect(w, r, "/login", http.StatusSeeOther)
		default:
			flash.Danger(w, "Failed to register user")
			http.Redirect(w, r, "/signup", http.StatusSeeOther)
		}
		return
	}

	flash.Success(w, "User registered successfully!")
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if token, ok := middleware.TokenFromContext(ctx); ok {
		if err := h.sessions.Destroy(ctx, token); err != nil {
			logger.FromCtx(ctx).Error("failed to destroy session", zap.Error(err))
		}
	}

	clearSessionCookie(w)
	flash.Info(w, "You have been logged out")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
