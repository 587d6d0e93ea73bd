package services

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidName(t *testing.T) {
	assert.False(t, ValidName(""))
	assert.False(t, ValidName("ab"))
	assert.True(t, ValidName("abc"))
	assert.True(t, ValidName(strings.Repeat("a", 100)))
	assert.False(t, ValidName(strings.Repeat("a", 101)))

	// Length is counted in characters, not bytes
	assert.True(t, ValidName("ночь"))
}

func TestParseID(t *testing.T) {
	id, err := ParseID("42")
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	_, err = ParseID("abc")
	assert.Error(t, err)

	_, err = ParseID("")
	assert.Error(t, err)
}

func TestBodyValuesForm(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/users",
		strings.NewReader("login=abc&firstName=John"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	body, err := BodyValues(req)
	require.NoError(t, err)
	assert.Equal(t, "abc", body("login"))
	assert.Equal(t, "John", body("firstName"))
	assert.Equal(t, "", body("lastName"))
}

func TestBodyValuesJSON(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/users/2/assign/create",
		strings.NewReader(`{"id": 1}`))
	req.Header.Set("Content-Type", "application/json")

	body, err := BodyValues(req)
	require.NoError(t, err)

	// Numeric JSON values come back as their decimal form
	assert.Equal(t, "1", body("id"))
	assert.Equal(t, "", body("missing"))
}

func TestBodyValuesBadJSON(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/users",
		strings.NewReader(`{`))
	req.Header.Set("Content-Type", "application/json")

	_, err := BodyValues(req)
	assert.Error(t, err)
}

func TestServicePath(t *testing.T) {
	svc := &Service{}
	assert.Equal(t, "/users", svc.path("/users"))
}
