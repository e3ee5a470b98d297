package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

// mockServer creates a test HTTP server for mocking API responses.
func mockServer(handler http.HandlerFunc) *httptest.Server {
	return httptest.NewServer(handler)
}

func TestNewClient(t *testing.T) {
	client := NewClient("", "test-token")

	if client.accessToken != "test-token" {
		t.Errorf("expected token %q, got %q", "test-token", client.accessToken)
	}
	if client.baseURL != DefaultBaseURL {
		t.Errorf("unexpected base URL: %s", client.baseURL)
	}

	client = NewClient("http://example.test/", "")
	if client.BaseURL() != "http://example.test" {
		t.Errorf("expected trailing slash to be trimmed, got %s", client.BaseURL())
	}
}

func TestListTasks(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		statusCode int
		wantLen    int
		wantErr    bool
	}{
		{
			name:       "successful request",
			body:       `[{"id":1,"titulo":"Study","fecha":"2025-03-15","importancia":"alta","status":"inbox"}]`,
			statusCode: http.StatusOK,
			wantLen:    1,
		},
		{
			name:       "empty list",
			body:       `[]`,
			statusCode: http.StatusOK,
			wantLen:    0,
		},
		{
			name:       "unauthorized",
			body:       `{"error":"login required"}`,
			statusCode: http.StatusUnauthorized,
			wantErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := mockServer(func(w http.ResponseWriter, r *http.Request) {
				if r.Method != http.MethodGet {
					t.Errorf("expected GET request, got %s", r.Method)
				}
				if r.URL.Path != "/api/tareas" {
					t.Errorf("unexpected path %s", r.URL.Path)
				}
				if r.Header.Get("Authorization") != "Bearer test-token" {
					t.Errorf("expected Bearer token, got %q", r.Header.Get("Authorization"))
				}
				if r.Header.Get(RequestIDHeader) == "" {
					t.Error("expected a request id header")
				}
				w.WriteHeader(tt.statusCode)
				io.WriteString(w, tt.body)
			})
			defer server.Close()

			client := NewClient(server.URL, "test-token")
			tasks, err := client.ListTasks()

			if tt.wantErr {
				if err == nil {
					t.Error("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(tasks) != tt.wantLen {
				t.Errorf("expected %d tasks, got %d", tt.wantLen, len(tasks))
			}
		})
	}
}

func TestListTasksByDate(t *testing.T) {
	var gotPath string
	server := mockServer(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		io.WriteString(w, `[{"id":4,"titulo":"Dentist","fecha":"2025-03-15","status":"incompleta"}]`)
	})
	defer server.Close()

	client := NewClient(server.URL, "")
	tasks, err := client.ListTasksByDate("2025-03-15")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotPath != "/api/tareas/fecha/2025-03-15" {
		t.Errorf("unexpected path %s", gotPath)
	}
	if len(tasks) != 1 || tasks[0].ID != 4 {
		t.Errorf("unexpected tasks %+v", tasks)
	}
}

func TestListTasksByDate_InvalidDate(t *testing.T) {
	calls := 0
	server := mockServer(func(w http.ResponseWriter, r *http.Request) {
		calls++
	})
	defer server.Close()

	client := NewClient(server.URL, "")
	if _, err := client.ListTasksByDate("15/03/2025"); err == nil {
		t.Error("expected error for malformed date")
	}
	if calls != 0 {
		t.Errorf("expected no request, got %d", calls)
	}
}

func TestCreateTask(t *testing.T) {
	server := mockServer(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST request, got %s", r.Method)
		}
		if r.Header.Get("Content-Type") != "application/json" {
			t.Errorf("expected JSON content type, got %q", r.Header.Get("Content-Type"))
		}

		var body map[string]interface{}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("failed to decode body: %v", err)
			return
		}
		if body["titulo"] != "Study" {
			t.Errorf("unexpected titulo %v", body["titulo"])
		}
		if v, ok := body["asunto"]; !ok || v != nil {
			t.Errorf("expected asunto to be null, got %v", v)
		}
		enlaces, ok := body["enlaces"].([]interface{})
		if !ok || len(enlaces) != 2 {
			t.Errorf("unexpected enlaces %v", body["enlaces"])
			return
		}
		if enlaces[0] != "https://go.dev" {
			t.Errorf("expected bare url first, got %v", enlaces[0])
		}

		w.WriteHeader(http.StatusCreated)
		io.WriteString(w, `{"success":true,"id":42}`)
	})
	defer server.Close()

	date := "2025-03-15"
	client := NewClient(server.URL, "")
	task, err := client.CreateTask(CreateTaskRequest{
		Titulo:      "Study",
		Fecha:       &date,
		Importancia: ImportanceAlta,
		Status:      StatusIncompleta,
		Enlaces:     []Link{{URL: "https://go.dev"}, {Title: "Docs", URL: "https://pkg.go.dev"}},
		Contactos:   []Contact{},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if task.ID != 42 {
		t.Errorf("expected id 42, got %d", task.ID)
	}
	if task.Titulo != "Study" || task.Fecha != date {
		t.Errorf("expected request fields to be kept, got %+v", task)
	}
}

func TestUpdateTask_StatusOnly(t *testing.T) {
	var raw string
	server := mockServer(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut {
			t.Errorf("expected PUT request, got %s", r.Method)
		}
		if r.URL.Path != "/api/tareas/7" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		b, _ := io.ReadAll(r.Body)
		raw = string(b)
		io.WriteString(w, `{"success":true}`)
	})
	defer server.Close()

	client := NewClient(server.URL, "")
	task, err := client.UpdateTask(7, StatusUpdate(StatusCompleta))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if raw != `{"status":"completa"}` {
		t.Errorf("expected status-only body, got %s", raw)
	}
	if task.ID != 7 {
		t.Errorf("expected id to default to 7, got %d", task.ID)
	}
}

func TestUpdateTask_ClearDate(t *testing.T) {
	var body map[string]interface{}
	server := mockServer(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&body)
		io.WriteString(w, `{}`)
	})
	defer server.Close()

	title := "Renamed"
	client := NewClient(server.URL, "")
	if _, err := client.UpdateTask(3, UpdateTaskRequest{Titulo: &title, ClearFecha: true}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v, ok := body["fecha"]; !ok || v != nil {
		t.Errorf("expected explicit null fecha, got %v (present=%v)", v, ok)
	}
	if _, ok := body["status"]; ok {
		t.Error("status must not be sent when unset")
	}
}

func TestDeleteTask(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		body       string
		wantErr    bool
		notFound   bool
	}{
		{name: "deleted", statusCode: http.StatusNoContent},
		{name: "already deleted", statusCode: http.StatusNotFound, body: `{"error":"No encontrado"}`, wantErr: true, notFound: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := mockServer(func(w http.ResponseWriter, r *http.Request) {
				if r.Method != http.MethodDelete {
					t.Errorf("expected DELETE request, got %s", r.Method)
				}
				w.WriteHeader(tt.statusCode)
				io.WriteString(w, tt.body)
			})
			defer server.Close()

			err := NewClient(server.URL, "").DeleteTask(9)
			if (err != nil) != tt.wantErr {
				t.Fatalf("unexpected error state: %v", err)
			}
			if tt.notFound {
				apiErr, ok := IsAPIError(err)
				if !ok || !apiErr.IsNotFound() {
					t.Errorf("expected wrapped not-found APIError, got %v", err)
				}
				if UserMessage(err) != MsgNotFound {
					t.Errorf("unexpected user message %q", UserMessage(err))
				}
			}
		})
	}
}

func TestValidationErrorMessage(t *testing.T) {
	server := mockServer(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		io.WriteString(w, `{"error":"El título es obligatorio"}`)
	})
	defer server.Close()

	_, err := NewClient(server.URL, "").CreateTask(CreateTaskRequest{})
	if err == nil {
		t.Fatal("expected error")
	}
	apiErr, ok := IsAPIError(err)
	if !ok || !apiErr.IsValidation() {
		t.Fatalf("expected validation APIError, got %v", err)
	}
	if got := UserMessage(err); got != "El título es obligatorio" {
		t.Errorf("expected server message verbatim, got %q", got)
	}
	if apiErr.RequestID == "" {
		t.Error("expected request id on error")
	}
}

type failingTransport struct{}

func (failingTransport) RoundTrip(*http.Request) (*http.Response, error) {
	return nil, errors.New("connection refused")
}

func TestNetworkError(t *testing.T) {
	client := NewClient("http://planner.invalid", "")
	client.SetHTTPClient(&http.Client{Transport: failingTransport{}})

	_, err := client.ListTasks()
	if err == nil {
		t.Fatal("expected error")
	}
	if !IsNetworkError(err) {
		t.Errorf("expected network error, got %v", err)
	}
	if UserMessage(err) != MsgConnection {
		t.Errorf("unexpected user message %q", UserMessage(err))
	}
	if !strings.Contains(err.Error(), "failed to list tasks") {
		t.Errorf("expected wrapped context, got %v", err)
	}
}
