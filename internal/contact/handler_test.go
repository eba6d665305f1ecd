package contact

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/zondaerp/website/internal/notify"
)

type fakeSender struct {
	fields []notify.ContactFields
	err    error
}

func (f *fakeSender) SendContactMessage(_ context.Context, fields notify.ContactFields) error {
	f.fields = append(f.fields, fields)
	return f.err
}

func post(t *testing.T, h *Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Submit(rec, req)
	return rec
}

func TestSubmitForwardsMessage(t *testing.T) {
	sender := &fakeSender{}
	h := NewHandler(sender, "contacto@zondaerp.com", nil, nil)

	rec := post(t, h, `{"name":"Luis Mora","email":"luis@example.com","message":"Quiero una demo"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var resp response
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if !resp.Sent {
		t.Error("expected sent=true")
	}
	if len(sender.fields) != 1 || sender.fields[0].RecipientEmail != "contacto@zondaerp.com" {
		t.Errorf("fields = %+v", sender.fields)
	}
}

func TestSubmitValidation(t *testing.T) {
	h := NewHandler(&fakeSender{}, "contacto@zondaerp.com", nil, nil)

	cases := []string{
		`{"email":"luis@example.com","message":"hola"}`,
		`{"name":"Luis","email":"luis@","message":"hola"}`,
		`{"name":"Luis","email":"luis@example.com","message":"  "}`,
		`{`,
	}
	for _, body := range cases {
		if rec := post(t, h, body); rec.Code != http.StatusBadRequest {
			t.Errorf("body %q: status = %d, want 400", body, rec.Code)
		}
	}
}

func TestSubmitDeliveryFailureIsNotAnHTTPError(t *testing.T) {
	sender := &fakeSender{err: errors.New("smtp down")}
	h := NewHandler(sender, "contacto@zondaerp.com", nil, nil)

	rec := post(t, h, `{"name":"Luis","email":"luis@example.com","message":"hola"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 with sent=false", rec.Code)
	}
	var resp response
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Sent {
		t.Error("expected sent=false on delivery failure")
	}
}
