// Package flash implements one-shot notices carried across a redirect in a
// cookie and consumed on the next rendered page.
package flash

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
)

type Category string

const (
	CategoryDanger  Category = "danger"
	CategoryInfo    Category = "info"
	CategorySuccess Category = "success"
)

type Notice struct {
	Category Category `json:"category"`
	Message  string   `json:"message"`
}

const cookieName = "flash"

// Set queues notices for the next rendered page. Calling it again before the
// notices are taken replaces them.
func Set(w http.ResponseWriter, notices ...Notice) {
	data, err := json.Marshal(notices)
	if err != nil {
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    base64.URLEncoding.EncodeToString(data),
		Path:     "/",
		HttpOnly: true,
	})
}

func Danger(w http.ResponseWriter, message string) {
	Set(w, Notice{Category: CategoryDanger, Message: message})
}

func Info(w http.ResponseWriter, message string) {
	Set(w, Notice{Category: CategoryInfo, Message: message})
}

func Success(w http.ResponseWriter, message string) {
	Set(w, Notice{Category: CategorySuccess, Message: message})
}

// Take returns any queued notices and clears the cookie. A malformed cookie
// is dropped silently.
func Take(w http.ResponseWriter, r *http.Request) []Notice {
	c, err := r.Cookie(cookieName)
	if err != nil {
		return nil
	}

	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})

	data, err := base64.URLEncoding.DecodeString(c.Value)
	if err != nil {
		return nil
	}

	var notices []Notice
	if err := json.Unmarshal(data, &notices); err != nil {
		return nil
	}

	return notices
}
