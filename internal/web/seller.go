package web

import (
	"errors"
	"net/http"

	"emporia-be/internal/flash"
	"emporia-be/internal/logger"
	"emporia-be/internal/middleware"
	"emporia-be/internal/seller"

	"go.uber.org/zap"
)

// resolveWorkflow looks up the caller's application state. It returns false
// after writing the response when the request should not fall through to the
// registration form.
func (h *Handler) resolveWorkflow(w http.ResponseWriter, r *http.Request) (seller.State, bool) {
	ctx := r.Context()
	sess, _ := middleware.SessionFromContext(ctx)
	token, _ := middleware.TokenFromContext(ctx)

	state, _, err := h.sellers.Resolve(ctx, sess.UserID, sess.SeenApproval)
	if err != nil {
		flash.Danger(w, "An error occurred. Please try again later.")
		http.Redirect(w, r, "/user_home", http.StatusSeeOther)
		return state, false
	}

	switch state {
	case seller.StateApprovedUnseen:
		// One-time celebration view, then the flag is spent for this session.
		if err := h.sessions.MarkApprovalSeen(ctx, token); err != nil {
			logger.FromCtx(ctx).Error("failed to mark approval seen", zap.Error(err))
		}
		h.render(w, r, "seller_approve.html", nil)
		return state, false

	case seller.StateApprovedSeen:
		http.Redirect(w, r, "/seller_dashboard", http.StatusSeeOther)
		return state, false

	case seller.StatePending:
		h.render(w, r, "reg_after_sub.html", nil,
			flash.Notice{Category: flash.CategoryInfo, Message: "Your application is still pending."})
		return state, false
	}

	return state, true
}

func (h *Handler) SellerRegistrationShow(w http.ResponseWriter, r *http.Request) {
	state, proceed := h.resolveWorkflow(w, r)
	if !proceed {
		return
	}

	if state == seller.StateDeclined {
		h.render(w, r, "seller_registration.html", nil,
			flash.Notice{Category: flash.CategoryInfo, Message: "Your application was declined. You can reapply."})
		return
	}

	h.render(w, r, "seller_registration.html", nil)
}

func (h *Handler) SellerRegistrationSubmit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if _, proceed := h.resolveWorkflow(w, r); !proceed {
		return
	}

	sess, _ := middleware.SessionFromContext(ctx)

	in := seller.ApplicationInput{
		FirstName:    r.PostFormValue("firstName"),
		LastName:     r.PostFormValue("lastName"),
		Email:        r.PostFormValue("email"),
		PhoneNumber:  r.PostFormValue("phoneNumber"),
		Address:      r.PostFormValue("address"),
		PostalCode:   r.PostFormValue("postalCode"),
		BusinessName: r.PostFormValue("businessName"),
		Description:  r.PostFormValue("description"),
	}

	if _, err := h.sellers.Apply(ctx, sess.UserID, in); err != nil {
		var msg string
		switch {
		case errors.Is(err, seller.ErrFieldsRequired):
			msg = "All fields are required."
		case errors.Is(err, seller.ErrInvalidEmail):
			msg = "Invalid email format."
		case errors.Is(err, seller.ErrInvalidPhoneNumber):
			msg = "Invalid phone number. It should be a valid number."
		case errors.Is(err, seller.ErrInvalidPostalCode):
			msg = "Invalid postal code format."
		default:
			msg = "An error occurred. Please try again later."
		}
		// Validation failures re-show the form inline, nothing is persisted.
		h.render(w, r, "seller_registration.html", nil,
			flash.Notice{Category: flash.CategoryDanger, Message: msg})
		return
	}

	h.render(w, r, "reg_after_sub.html", nil,
		flash.Notice{Category: flash.CategorySuccess, Message: "Your seller application has been submitted successfully!"})
}
