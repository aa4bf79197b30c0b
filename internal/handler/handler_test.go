package handler

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/cine-estrella/box-office/internal/booking"
	"github.com/cine-estrella/box-office/internal/config"
)

// newTestEcho returns an Echo instance configured like production, minus
// the middleware chain: handlers are invoked directly in these tests.
func newTestEcho(t *testing.T) *echo.Echo {
	t.Helper()
	e := echo.New()
	e.Validator = NewRequestValidator()
	return e
}

func testConfig() config.Config {
	return config.Config{
		Env:            "test",
		Port:           "0",
		CinemaName:     "Cine Estrella",
		JWTSecret:      "handler-test-secret",
		AccessTTLMin:   15,
		RefreshTTLDays: 7,
		BcryptCost:     4,
	}
}

// newCtx builds a request context with an optional JSON body.
func newCtx(t *testing.T, e *echo.Echo, method, target string, body any) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

// decodeBody unmarshals the recorded JSON response into out.
func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out))
}

// catalogFixture builds a ledger with one room, one title and two
// showtimes, frozen at noon the day of the screenings.
func catalogFixture(t *testing.T) (*booking.Ledger, *booking.Title, *booking.Showtime, *booking.Showtime) {
	t.Helper()
	l := booking.New("Cine Estrella")
	noon := time.Date(2025, 10, 8, 12, 0, 0, 0, time.UTC)
	l.SetClock(func() time.Time { return noon })

	_, err := l.AddRoom(1, 6, 8)
	require.NoError(t, err)
	title := l.AddTitle("El Viaje", "Drama", 120, "PG-13", "Poster", 5)
	early, err := l.AddShowtime(title.ID, 1, noon.Add(6*time.Hour))
	require.NoError(t, err)
	late, err := l.AddShowtime(title.ID, 1, noon.Add(9*time.Hour))
	require.NoError(t, err)
	return l, title, early, late
}

// httpStatus unwraps an error returned by a handler into its status code;
// validation failures come back as *echo.HTTPError instead of a written
// response.
func httpStatus(t *testing.T, err error) int {
	t.Helper()
	var he *echo.HTTPError
	require.ErrorAs(t, err, &he)
	return he.Code
}
