package services

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"unicode/utf8"
)

// ValidName reports whether a login, first/last name or group name is
// acceptable: non-empty and between 3 and 100 characters.
func ValidName(name string) bool {
	n := utf8.RuneCountInString(name)
	return n >= 3 && n <= 100
}

// ParseID parses a numeric entity identifier from a path or form value.
func ParseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid identifier %q", raw)
	}
	return id, nil
}

// path prefixes p with the configured base path.
func (s *Service) path(p string) string {
	if s.Config == nil || s.Config.BasePath == "" {
		return p
	}
	return s.Config.BasePath + p
}

// BodyValues returns a lookup over the request body fields, accepting both
// HTML form encoding and JSON so the same routes serve browser forms and
// API clients.
func BodyValues(r *http.Request) (func(string) string, error) {
	ct := r.Header.Get("Content-Type")
	if strings.HasPrefix(ct, "application/json") {
		var body map[string]interface{}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			return nil, fmt.Errorf("error decoding request body: %w", err)
		}
		return func(key string) string {
			switch v := body[key].(type) {
			case string:
				return v
			case float64:
				return strconv.FormatFloat(v, 'f', -1, 64)
			case nil:
				return ""
			default:
				return fmt.Sprint(v)
			}
		}, nil
	}

	if err := r.ParseForm(); err != nil {
		return nil, fmt.Errorf("error parsing form body: %w", err)
	}
	return r.PostFormValue, nil
}
