package session

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func roundTrip(t *testing.T, codec *Codec, state State) State {
	t.Helper()

	recorder := httptest.NewRecorder()
	require.NoError(t, codec.Write(recorder, state))

	cookies := recorder.Result().Cookies()
	require.Len(t, cookies, 1)

	request := httptest.NewRequest(http.MethodGet, "/", nil)
	request.AddCookie(cookies[0])
	return codec.Read(request)
}

func TestCodec_RoundTrip(t *testing.T) {
	codec := NewCodec([]byte("test-secret"), time.Hour, false)
	score := 54
	state := State{Category: "startup", CompanyID: 7, Score: &score}
	state = state.WithFlash("success", "Survey submitted successfully!")

	decoded := roundTrip(t, codec, state)

	assert.Equal(t, "startup", decoded.Category)
	assert.Equal(t, int64(7), decoded.CompanyID)
	require.NotNil(t, decoded.Score)
	assert.Equal(t, 54, *decoded.Score)
	require.Len(t, decoded.Flashes, 1)
	assert.Equal(t, "Survey submitted successfully!", decoded.Flashes[0].Message)
}

func TestCodec_ZeroScoreSurvivesRoundTrip(t *testing.T) {
	codec := NewCodec([]byte("test-secret"), time.Hour, false)
	zero := 0

	decoded := roundTrip(t, codec, State{Category: "loss", CompanyID: 1, Score: &zero})

	require.NotNil(t, decoded.Score, "a zero score must stay distinct from no score")
	assert.Equal(t, 0, *decoded.Score)
}

func TestCodec_MissingCookie(t *testing.T) {
	codec := NewCodec([]byte("test-secret"), time.Hour, false)
	request := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Equal(t, State{}, codec.Read(request))
}

func TestCodec_TamperedCookie(t *testing.T) {
	codec := NewCodec([]byte("test-secret"), time.Hour, false)

	recorder := httptest.NewRecorder()
	require.NoError(t, codec.Write(recorder, State{Category: "profit"}))
	cookie := recorder.Result().Cookies()[0]

	parts := strings.Split(cookie.Value, ".")
	require.Len(t, parts, 3)
	cookie.Value = parts[0] + "." + parts[1] + ".AAAA" + parts[2][4:]

	request := httptest.NewRequest(http.MethodGet, "/", nil)
	request.AddCookie(cookie)
	assert.Equal(t, State{}, codec.Read(request))
}

func TestCodec_WrongSecret(t *testing.T) {
	writer := NewCodec([]byte("secret-a"), time.Hour, false)
	reader := NewCodec([]byte("secret-b"), time.Hour, false)

	recorder := httptest.NewRecorder()
	require.NoError(t, writer.Write(recorder, State{Category: "low", CompanyID: 3}))

	request := httptest.NewRequest(http.MethodGet, "/", nil)
	request.AddCookie(recorder.Result().Cookies()[0])
	assert.Equal(t, State{}, reader.Read(request))
}

func TestCodec_ExpiredCookie(t *testing.T) {
	codec := NewCodec([]byte("test-secret"), -2*time.Minute, false)

	recorder := httptest.NewRecorder()
	require.NoError(t, codec.Write(recorder, State{Category: "startup"}))

	request := httptest.NewRequest(http.MethodGet, "/", nil)
	request.AddCookie(recorder.Result().Cookies()[0])
	assert.Equal(t, State{}, codec.Read(request))
}

func TestState_PopFlashes(t *testing.T) {
	state := State{}.WithFlash("error", "Invalid category.").WithFlash("success", "done")

	flashes, cleared := state.PopFlashes()

	assert.Len(t, flashes, 2)
	assert.Empty(t, cleared.Flashes)
}
