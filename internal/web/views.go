package web

import "net/http"

// Plain page handlers. Gating happens at route registration.

func (h *Handler) Landing(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "landing.html", nil)
}

func (h *Handler) ProductPage(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "product_page.html", nil)
}

func (h *Handler) UserHome(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "user_home.html", nil)
}

func (h *Handler) AdminHome(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "admin_home.html", nil)
}

func (h *Handler) SuperadminHome(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "superadmin_home.html", nil)
}

func (h *Handler) Cart(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "cart.html", nil)
}

func (h *Handler) AccountPage(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "account_page.html", nil)
}

func (h *Handler) SellerDashboard(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "seller_dashboard.html", nil)
}

func (h *Handler) AdminHomeUser(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "admin_home_user.html", nil)
}

func (h *Handler) AdminHomeSellers(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "admin_home_sellers.html", nil)
}
