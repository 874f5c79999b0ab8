package flash

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestEncodeAndDecode(t *testing.T) {
	token, err := Encode("test-secret-key", Notice{Kind: KindSuccess, Message: "Motor berhasil ditambahkan."})
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	n, err := Decode("test-secret-key", token)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if n.Kind != KindSuccess {
		t.Errorf("expected kind %q, got %q", KindSuccess, n.Kind)
	}
	if n.Message != "Motor berhasil ditambahkan." {
		t.Errorf("unexpected message %q", n.Message)
	}
}

func TestDecodeWrongSecret(t *testing.T) {
	token, _ := Encode("secret1", Notice{Kind: KindError, Message: "x"})

	if _, err := Decode("secret2", token); err == nil {
		t.Error("expected error for wrong secret")
	}
}

func TestDecodeInvalid(t *testing.T) {
	if _, err := Decode("secret", "not-a-token"); err == nil {
		t.Error("expected error for invalid token")
	}
}

func TestSetThenPop(t *testing.T) {
	rec := httptest.NewRecorder()
	if err := Set(rec, "s", KindError, "Motor tidak ditemukan."); err != nil {
		t.Fatalf("Set: %v", err)
	}

	cookies := rec.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Name != CookieName {
		t.Fatalf("expected one flash cookie, got %v", cookies)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookies[0])
	rec = httptest.NewRecorder()

	n := Pop(rec, req, "s")
	if n == nil {
		t.Fatal("expected notice")
	}
	if n.Message != "Motor tidak ditemukan." || n.Kind != KindError {
		t.Errorf("unexpected notice %+v", n)
	}

	cleared := rec.Result().Cookies()
	if len(cleared) != 1 || cleared[0].MaxAge >= 0 {
		t.Errorf("expected flash cookie to be cleared, got %v", cleared)
	}
}

func TestPopTampered(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: "garbage"})
	rec := httptest.NewRecorder()

	if n := Pop(rec, req, "s"); n != nil {
		t.Errorf("expected nil for tampered cookie, got %+v", n)
	}
}

func TestPopWithoutCookie(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	if n := Pop(rec, req, "s"); n != nil {
		t.Errorf("expected nil, got %+v", n)
	}
	if len(rec.Result().Cookies()) != 0 {
		t.Error("expected no cookie to be written")
	}
}
