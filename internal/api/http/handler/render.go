package handler

import (
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/dtroode/userdir/internal/model"
)

// Headers sent on every response.
const (
	ContentType       = "text/plain; charset=utf-8"
	ServiceHeader     = "X-Service"
	ServiceName       = "userdir"
	UserIDHeader      = "X-User-Id"
	PayloadKindHeader = "X-Payload-Kind"
	PayloadKindUsers  = "user-collection"
)

// RecordSeparator joins rendered records in a collection body.
const RecordSeparator = ","

// Outcome is the result of handling one request, rendered by Render.
type Outcome interface {
	outcome()
}

// SingleRecord is a successful lookup by identifier.
type SingleRecord struct {
	User model.User
}

// Collection is the result of a search. An empty collection renders as not found.
type Collection struct {
	Users []model.User
}

// NotFound means no record matched.
type NotFound struct {
	Message string
}

// ClientError means the request could not be decoded.
type ClientError struct {
	Message string
}

// ServerError means the store failed. No detail is exposed.
type ServerError struct{}

func (SingleRecord) outcome() {}
func (Collection) outcome()   {}
func (NotFound) outcome()     {}
func (ClientError) outcome()  {}
func (ServerError) outcome()  {}

type response struct {
	status  int
	headers map[string]string
	body    string
}

func resolve(o Outcome) response {
	switch o := o.(type) {
	case SingleRecord:
		return response{
			status:  http.StatusOK,
			headers: map[string]string{UserIDHeader: o.User.ID.String()},
			body:    renderUser(o.User),
		}
	case Collection:
		if len(o.Users) == 0 {
			return resolve(NotFound{Message: "no users matched"})
		}
		rendered := make([]string, 0, len(o.Users))
		for _, u := range o.Users {
			rendered = append(rendered, renderUser(u))
		}
		return response{
			status:  http.StatusOK,
			headers: map[string]string{PayloadKindHeader: PayloadKindUsers},
			body:    strings.Join(rendered, RecordSeparator),
		}
	case NotFound:
		return response{status: http.StatusNotFound, body: o.Message}
	case ClientError:
		return response{status: http.StatusBadRequest, body: o.Message}
	default:
		return response{status: http.StatusInternalServerError, body: "internal server error"}
	}
}

// Render writes the status, headers and body for o. The fixed headers are
// applied last so outcome headers can never replace them.
func Render(w http.ResponseWriter, o Outcome) {
	resp := resolve(o)

	h := w.Header()
	for k, v := range resp.headers {
		h.Set(k, v)
	}
	setFixedHeaders(h, ContentType)

	w.WriteHeader(resp.status)
	_, _ = io.WriteString(w, resp.body)
}

func setFixedHeaders(h http.Header, contentType string) {
	h.Set("Content-Type", contentType)
	h.Set(ServiceHeader, ServiceName)
}

func renderUser(u model.User) string {
	return fmt.Sprintf("%+v", u)
}
