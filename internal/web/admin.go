package web

import (
	"net/http"
	"strconv"

	"emporia-be/internal/flash"
	"emporia-be/internal/logger"

	"go.uber.org/zap"
)

// AdminHomeReg lists every seller application, resolved ones included.
func (h *Handler) AdminHomeReg(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	apps, err := h.sellers.ListAll(ctx)
	if err != nil {
		flash.Danger(w, "An error occurred while fetching seller applications")
		http.Redirect(w, r, "/user_home", http.StatusSeeOther)
		return
	}

	h.render(w, r, "admin_home_reg.html", apps)
}

func (h *Handler) ApproveSeller(w http.ResponseWriter, r *http.Request) {
	h.reviewSeller(w, r, "approve")
}

func (h *Handler) DeclineSeller(w http.ResponseWriter, r *http.Request) {
	h.reviewSeller(w, r, "decline")
}

// reviewSeller transitions an application unconditionally, whatever its
// prior status, and always lands back on the review listing.
func (h *Handler) reviewSeller(w http.ResponseWriter, r *http.Request, action string) {
	ctx := r.Context()

	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		flash.Danger(w, "Invalid application id")
		http.Redirect(w, r, "/admin_home_reg", http.StatusSeeOther)
		return
	}

	if action == "approve" {
		err = h.sellers.Approve(ctx, id)
	} else {
		err = h.sellers.Decline(ctx, id)
	}

	if err != nil {
		logger.FromCtx(ctx).Error("failed to update seller application",
			zap.String("action", action),
			zap.Int("id", id),
			zap.Error(err),
		)
		flash.Danger(w, "Failed to "+action+" seller")
	} else {
		flash.Success(w, "Seller "+action+"d successfully!")
	}

	http.Redirect(w, r, "/admin_home_reg", http.StatusSeeOther)
}
