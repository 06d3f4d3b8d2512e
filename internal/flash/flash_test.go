package flash

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetAndTake(t *testing.T) {
	w := httptest.NewRecorder()
	Danger(w, "Access restricted")

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, cookieName, cookies[0].Name)

	// Replay the cookie on the next request, the way a browser would.
	req := httptest.NewRequest("GET", "/", nil)
	req.AddCookie(cookies[0])
	w2 := httptest.NewRecorder()

	notices := Take(w2, req)
	require.Len(t, notices, 1)
	assert.Equal(t, CategoryDanger, notices[0].Category)
	assert.Equal(t, "Access restricted", notices[0].Message)

	// Take clears the cookie.
	cleared := w2.Result().Cookies()
	require.Len(t, cleared, 1)
	assert.Equal(t, -1, cleared[0].MaxAge)
}

func TestTakeWithoutCookie(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()

	assert.Nil(t, Take(w, req))
	assert.Empty(t, w.Result().Cookies())
}

func TestTakeMalformedCookie(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	req.AddCookie(&http.Cookie{Name: cookieName, Value: "not-base64!!"})
	w := httptest.NewRecorder()

	assert.Nil(t, Take(w, req))
}

func TestCategories(t *testing.T) {
	cases := []struct {
		set  func(http.ResponseWriter, string)
		want Category
	}{
		{Danger, CategoryDanger},
		{Info, CategoryInfo},
		{Success, CategorySuccess},
	}

	for _, tc := range cases {
		w := httptest.NewRecorder()
		tc.set(w, "msg")

		req := httptest.NewRequest("GET", "/", nil)
		req.AddCookie(w.Result().Cookies()[0])

		notices := Take(httptest.NewRecorder(), req)
		require.Len(t, notices, 1)
		assert.Equal(t, tc.want, notices[0].Category)
	}
}
