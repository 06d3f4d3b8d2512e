package web

import (
	"embed"
	"html/template"
	"net/http"

	"emporia-be/internal/flash"
	"emporia-be/internal/logger"
	"emporia-be/internal/middleware"
	"emporia-be/internal/seller"
	"emporia-be/internal/session"
	"emporia-be/internal/user"

	"go.uber.org/zap"
)

//go:embed templates/*.html
var templatesFS embed.FS

var templates = template.Must(template.ParseFS(templatesFS, "templates/*.html"))

type Handler struct {
	users    user.Service
	sellers  seller.Service
	sessions session.Store
}

func NewHandler(users user.Service, sellers seller.Service, sessions session.Store) *Handler {
	return &Handler{
		users:    users,
		sellers:  sellers,
		sessions: sessions,
	}
}

// Register wires every route onto the mux. Guards wrap individual routes;
// session resolution and logging are applied to the whole mux by the caller.
func (h *Handler) Register(mux *http.ServeMux) {
	auth := middleware.RequireAuth
	admin := middleware.RequireAdmin

	mux.HandleFunc("GET /{$}", h.Landing)
	mux.HandleFunc("GET /product_page", h.ProductPage)

	mux.Handle("GET /user_home", auth(http.HandlerFunc(h.UserHome)))
	mux.Handle("GET /admin_home", auth(http.HandlerFunc(h.AdminHome)))
	mux.Handle("GET /superadmin_home", auth(http.HandlerFunc(h.SuperadminHome)))
	mux.Handle("GET /cart", auth(http.HandlerFunc(h.Cart)))
	mux.Handle("GET /account_page", auth(http.HandlerFunc(h.AccountPage)))
	mux.Handle("GET /seller_dashboard", auth(http.HandlerFunc(h.SellerDashboard)))

	mux.HandleFunc("GET /logout", h.Logout)
	mux.HandleFunc("GET /login", h.LoginShow)
	mux.HandleFunc("POST /login", h.LoginPost)
	mux.HandleFunc("GET /signup", h.SignupShow)
	mux.HandleFunc("POST /signup", h.SignupPost)

	mux.Handle("GET /seller_registration", auth(http.HandlerFunc(h.SellerRegistrationShow)))
	mux.Handle("POST /seller_registration", auth(http.HandlerFunc(h.SellerRegistrationSubmit)))

	mux.Handle("GET /admin_home_user", admin(http.HandlerFunc(h.AdminHomeUser)))
	mux.Handle("GET /admin_home_sellers", admin(http.HandlerFunc(h.AdminHomeSellers)))
	mux.Handle("GET /admin_home_reg", admin(http.HandlerFunc(h.AdminHomeReg)))
	mux.Handle("POST /approve_seller/{id}", admin(http.HandlerFunc(h.ApproveSeller)))
	mux.Handle("POST /decline_seller/{id}", admin(http.HandlerFunc(h.DeclineSeller)))
}

// viewData is what every template receives.
type viewData struct {
	Notices []flash.Notice
	Session *session.Session
	Data    any
}

// render consumes any pending flash notices, appends inline ones, and
// executes the named template.
func (h *Handler) render(w http.ResponseWriter, r *http.Request, name string, data any, inline ...flash.Notice) {
	sess, _ := middleware.SessionFromContext(r.Context())

	vd := viewData{
		Notices: append(flash.Take(w, r), inline...),
		Session: sess,
		Data:    data,
	}

	if err := templates.ExecuteTemplate(w, name, vd); err != nil {
		logger.FromCtx(r.Context()).Error("failed to render template",
			zap.String("template", name),
			zap.Error(err),
		)
	}
}

func setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
}
