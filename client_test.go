package yaedit

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

// fixedSID is a session.Provider returning a constant SID.
type fixedSID string

func (f fixedSID) SID(ctx context.Context) (string, error) {
	return string(f), nil
}

// failingSID is a session.Provider that always fails.
type failingSID struct{ err error }

func (f failingSID) SID(ctx context.Context) (string, error) {
	return "", f.err
}

// newTestClient points a yandexClient at a local test server.
func newTestClient(t *testing.T, handler http.Handler) *yandexClient {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	c := newYandexClient(server.Client(), fixedSID("abc.def"))
	c.editorURL = server.URL + "/editor"
	c.translateURL = server.URL + "/translate"
	return c
}

func TestTranslateSuccess(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/translate", func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if got := q.Get("id"); got != "abc.def-1-0" {
			t.Errorf("id query = %q, want %q", got, "abc.def-1-0")
		}
		if got := q.Get("source_lang"); got != "en" {
			t.Errorf("source_lang = %q, want %q", got, "en")
		}
		if got := q.Get("target_lang"); got != "ru" {
			t.Errorf("target_lang = %q, want %q", got, "ru")
		}
		if got := r.PostFormValue("text"); got != "hello world" {
			t.Errorf("text form field = %q, want %q", got, "hello world")
		}
		if got := r.Header.Get("Origin"); got != originURL {
			t.Errorf("Origin header = %q, want %q", got, originURL)
		}
		w.Write([]byte(`{"code": 200, "text": ["привет", " мир"]}`))
	})

	c := newTestClient(t, mux)
	got, err := c.Translate(context.Background(), "hello world")
	if err != nil {
		t.Fatalf("Translate() failed: %v", err)
	}
	if got != "привет мир" {
		t.Errorf("Translate() = %q, want %q", got, "привет мир")
	}
}

func TestTranslatePayloadErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "missing text field", body: `{"code": 200}`},
		{name: "empty text list", body: `{"code": 200, "text": []}`},
		{name: "not json", body: `<html>error</html>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mux := http.NewServeMux()
			mux.HandleFunc("/translate", func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(tt.body))
			})

			c := newTestClient(t, mux)
			_, err := c.Translate(context.Background(), "hello")
			if !errors.Is(err, ErrAPI) {
				t.Errorf("Translate() error = %v, want ErrAPI", err)
			}
		})
	}
}

func TestTranslateBadStatus(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/translate", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream sad", http.StatusBadGateway)
	})

	c := newTestClient(t, mux)
	_, err := c.Translate(context.Background(), "hello")
	if !errors.Is(err, ErrRequest) {
		t.Errorf("Translate() error = %v, want ErrRequest", err)
	}
	if !strings.Contains(err.Error(), "502") {
		t.Errorf("error %q does not mention the status", err)
	}
}

func TestTranslateSessionFailure(t *testing.T) {
	c := newTestClient(t, http.NewServeMux())
	c.sessions = failingSID{err: errors.New("captcha wall")}

	_, err := c.Translate(context.Background(), "hello")
	if !errors.Is(err, ErrRequest) {
		t.Errorf("Translate() error = %v, want ErrRequest", err)
	}
}

func TestTranslateEmptyText(t *testing.T) {
	c := newTestClient(t, http.NewServeMux())
	if _, err := c.Translate(context.Background(), ""); err == nil {
		t.Error("Translate(\"\") succeeded, want language detection error")
	}
}

func TestEditorTransformSuccess(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/editor", func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if got := q.Get("sid"); got != "abc.def-00-0" {
			t.Errorf("sid query = %q, want %q", got, "abc.def-00-0")
		}
		if got := r.PostFormValue("action_type"); got != "correct_mistakes" {
			t.Errorf("action_type = %q, want %q", got, "correct_mistakes")
		}
		if got := r.PostFormValue("targ_lang"); got != "ru" {
			t.Errorf("targ_lang = %q, want %q", got, "ru")
		}
		w.Write([]byte(`{"result_text": "привет, мир"}`))
	})

	c := newTestClient(t, mux)
	got, err := c.EditorTransform(context.Background(), "привет мир", ActionCorrect)
	if err != nil {
		t.Fatalf("EditorTransform() failed: %v", err)
	}
	if got != "привет, мир" {
		t.Errorf("EditorTransform() = %q, want %q", got, "привет, мир")
	}
}

func TestEditorTransformTranslateFlipsTarget(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/editor", func(w http.ResponseWriter, r *http.Request) {
		// Russian source, so translation targets English via plain correction.
		if got := r.PostFormValue("targ_lang"); got != "en" {
			t.Errorf("targ_lang = %q, want %q", got, "en")
		}
		if got := r.PostFormValue("action_type"); got != "correct_mistakes" {
			t.Errorf("action_type = %q, want %q", got, "correct_mistakes")
		}
		w.Write([]byte(`{"result_text": "hello world"}`))
	})

	c := newTestClient(t, mux)
	got, err := c.EditorTransform(context.Background(), "привет мир", ActionTranslate)
	if err != nil {
		t.Fatalf("EditorTransform() failed: %v", err)
	}
	if got != "hello world" {
		t.Errorf("EditorTransform() = %q, want %q", got, "hello world")
	}
}

func TestEditorTransformMissingResult(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/editor", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"something_else": true}`))
	})

	c := newTestClient(t, mux)
	_, err := c.EditorTransform(context.Background(), "привет", ActionImprove)
	if !errors.Is(err, ErrAPI) {
		t.Errorf("EditorTransform() error = %v, want ErrAPI", err)
	}
}

func TestEditorTransformUnknownAction(t *testing.T) {
	c := newTestClient(t, http.NewServeMux())
	_, err := c.EditorTransform(context.Background(), "привет", Action("shout"))
	if !errors.Is(err, ErrUnknownAction) {
		t.Errorf("EditorTransform() error = %v, want ErrUnknownAction", err)
	}
}
