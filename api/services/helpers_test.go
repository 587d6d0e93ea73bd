package services

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gorilla/mux"
)

// newTestRouter wires the services under test into a router with the same
// routes the serve command registers.
func newTestRouter(store *MockStore) *mux.Router {
	svc := &Service{DB: store}

	r := mux.NewRouter()
	r.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		HomeService(svc, w, r)
	}).Methods(http.MethodGet)

	r.HandleFunc("/users", func(w http.ResponseWriter, r *http.Request) {
		CreateUserService(svc, w, r)
	}).Methods(http.MethodPost)
	r.HandleFunc("/users", func(w http.ResponseWriter, r *http.Request) {
		GetUsersService(svc, w, r)
	}).Methods(http.MethodGet)
	r.HandleFunc("/users/create", func(w http.ResponseWriter, r *http.Request) {
		CreateUserViewService(svc, w, r)
	}).Methods(http.MethodGet)
	r.HandleFunc("/users/edit", func(w http.ResponseWriter, r *http.Request) {
		UpdateUserService(svc, w, r)
	}).Methods(http.MethodPost)
	r.HandleFunc("/users/{id}", func(w http.ResponseWriter, r *http.Request) {
		GetUserService(svc, w, r)
	}).Methods(http.MethodGet)
	r.HandleFunc("/users/{id}/edit", func(w http.ResponseWriter, r *http.Request) {
		EditUserViewService(svc, w, r)
	}).Methods(http.MethodGet)
	r.HandleFunc("/users/{id}/delete", func(w http.ResponseWriter, r *http.Request) {
		DeleteUserService(svc, w, r)
	}).Methods(http.MethodPost)
	r.HandleFunc("/users/{id}/assign/create", func(w http.ResponseWriter, r *http.Request) {
		AssignUserService(svc, w, r)
	}).Methods(http.MethodPost)

	r.HandleFunc("/groups", func(w http.ResponseWriter, r *http.Request) {
		CreateGroupService(svc, w, r)
	}).Methods(http.MethodPost)
	r.HandleFunc("/groups", func(w http.ResponseWriter, r *http.Request) {
		GetGroupsService(svc, w, r)
	}).Methods(http.MethodGet)
	r.HandleFunc("/groups/create", func(w http.ResponseWriter, r *http.Request) {
		CreateGroupViewService(svc, w, r)
	}).Methods(http.MethodGet)
	r.HandleFunc("/groups/edit", func(w http.ResponseWriter, r *http.Request) {
		UpdateGroupService(svc, w, r)
	}).Methods(http.MethodPost)
	r.HandleFunc("/groups/{id}/edit", func(w http.ResponseWriter, r *http.Request) {
		EditGroupViewService(svc, w, r)
	}).Methods(http.MethodGet)
	r.HandleFunc("/groups/{id}/users", func(w http.ResponseWriter, r *http.Request) {
		GroupUsersService(svc, w, r)
	}).Methods(http.MethodGet)
	r.HandleFunc("/groups/{id}/delete", func(w http.ResponseWriter, r *http.Request) {
		DeleteGroupService(svc, w, r)
	}).Methods(http.MethodPost)

	r.HandleFunc("/assigns/{id}/delete", func(w http.ResponseWriter, r *http.Request) {
		DeleteAssignService(svc, w, r)
	}).Methods(http.MethodPost)

	return r
}

// postForm performs a form-encoded POST against the router.
func postForm(t *testing.T, r *mux.Router, path string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

// jsonRequest builds a request carrying a JSON body.
func jsonRequest(t *testing.T, method, path, body string) *http.Request {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

// serve runs the request through the router and records the response.
func serve(t *testing.T, r *mux.Router, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

// get performs a GET against the router.
func get(t *testing.T, r *mux.Router, path string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}
