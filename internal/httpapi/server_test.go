package httpapi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"proteinlab/internal/core"
	"proteinlab/pkg/domain"
)

func newTestServer(t *testing.T, opts ...Option) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(NewServer(core.NewInMemoryService(), opts...).Handler())
	t.Cleanup(srv.Close)
	return srv
}

func postJSON(t *testing.T, url string, body any) *http.Response {
	t.Helper()
	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatal(err)
	}
	resp, err := http.Post(url, "application/json", bytes.NewReader(payload))
	if err != nil {
		t.Fatal(err)
	}
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer func() { _ = resp.Body.Close() }()
	var out T
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatal(err)
	}
	return out
}

func createRecord(t *testing.T, base, name, seq string) domain.ProteinRecord {
	t.Helper()
	resp := postJSON(t, base+"/sequences/text", map[string]string{"name": name, "sequence": seq})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create status = %d", resp.StatusCode)
	}
	return decode[domain.ProteinRecord](t, resp)
}

func TestCreateListFetchFlow(t *testing.T) {
	srv := newTestServer(t)

	rec := createRecord(t, srv.URL, "Insulin", "MALWMRLL")
	if rec.ID != 1 || rec.Length != 8 {
		t.Fatalf("created %+v", rec)
	}
	createRecord(t, srv.URL, "Ubiquitin", "MQIFVKTL")

	resp, err := http.Get(srv.URL + "/sequences")
	if err != nil {
		t.Fatal(err)
	}
	summaries := decode[[]domain.RecordSummary](t, resp)
	if len(summaries) != 2 || summaries[0].Name != "Insulin" || summaries[1].Name != "Ubiquitin" {
		t.Fatalf("summaries %+v", summaries)
	}

	resp, err = http.Get(fmt.Sprintf("%s/sequences/%d", srv.URL, rec.ID))
	if err != nil {
		t.Fatal(err)
	}
	fetched := decode[domain.ProteinRecord](t, resp)
	if fetched.Sequence != "MALWMRLL" || fetched.Composition["L"] != 3 {
		t.Fatalf("fetched %+v", fetched)
	}
}

func TestCreateValidationErrors(t *testing.T) {
	srv := newTestServer(t)

	cases := []struct {
		name string
		body map[string]string
		code string
	}{
		{"missing name", map[string]string{"sequence": "MALW"}, "invalid_input"},
		{"missing sequence", map[string]string{"name": "x"}, "invalid_input"},
		{"bad residue", map[string]string{"name": "x", "sequence": "MALWX"}, "invalid_sequence"},
	}
	for _, tc := range cases {
		resp := postJSON(t, srv.URL+"/sequences/text", tc.body)
		if resp.StatusCode != http.StatusBadRequest {
			t.Fatalf("%s: status = %d", tc.name, resp.StatusCode)
		}
		body := decode[map[string]string](t, resp)
		if body["code"] != tc.code {
			t.Fatalf("%s: code = %s, want %s", tc.name, body["code"], tc.code)
		}
	}
}

func TestFetchUnknownRecord(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/sequences/99")
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	body := decode[map[string]string](t, resp)
	if body["code"] != "not_found" {
		t.Fatalf("code = %s", body["code"])
	}

	resp, err = http.Get(srv.URL + "/sequences/abc")
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("non-numeric id status = %d", resp.StatusCode)
	}
}

func TestMutateEndpoint(t *testing.T) {
	srv := newTestServer(t)
	rec := createRecord(t, srv.URL, "Insulin", "MALWMRLL")

	url := fmt.Sprintf("%s/sequences/%d/mutate", srv.URL, rec.ID)

	resp := postJSON(t, url, map[string]any{"position": 0, "new_residue": "G"})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("mutate status = %d", resp.StatusCode)
	}
	result := decode[core.MutationResult](t, resp)
	if result.Nomenclature != "M1G" || result.Record.Sequence != "GALWMRLL" {
		t.Fatalf("result %+v", result)
	}
	if result.Record.Lineage == nil || result.Record.Lineage.ParentID != rec.ID {
		t.Fatalf("lineage %+v", result.Record.Lineage)
	}

	for _, tc := range []struct {
		body map[string]any
		code string
	}{
		{map[string]any{"position": 9999, "new_residue": "G"}, "invalid_position"},
		{map[string]any{"position": 0, "new_residue": "X"}, "invalid_residue"},
		{map[string]any{"position": 0, "new_residue": "M"}, "noop_mutation"},
	} {
		resp := postJSON(t, url, tc.body)
		if resp.StatusCode != http.StatusBadRequest {
			t.Fatalf("%s: status = %d", tc.code, resp.StatusCode)
		}
		body := decode[map[string]string](t, resp)
		if body["code"] != tc.code {
			t.Fatalf("code = %s, want %s", body["code"], tc.code)
		}
	}
}

func TestAminoAcidCatalogEndpoint(t *testing.T) {
	srv := newTestServer(t)
	resp, err := http.Get(srv.URL + "/amino-acids")
	if err != nil {
		t.Fatal(err)
	}
	names := decode[map[string]string](t, resp)
	if len(names) != 20 {
		t.Fatalf("catalog size = %d", len(names))
	}
	if names["G"] != "Glycine" || names["W"] != "Tryptophan" {
		t.Fatalf("catalog %+v", names)
	}
}

func TestUploadFASTARawBody(t *testing.T) {
	srv := newTestServer(t)
	resp, err := http.Post(srv.URL+"/sequences/upload", "text/plain",
		strings.NewReader(">INS_HUMAN insulin\nMALWMRLL\n"))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	rec := decode[domain.ProteinRecord](t, resp)
	if rec.Name != "INS_HUMAN" || rec.Sequence != "MALWMRLL" {
		t.Fatalf("record %+v", rec)
	}
}

func TestUploadFASTAMultipart(t *testing.T) {
	srv := newTestServer(t)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", "insulin.fasta")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := part.Write([]byte(">INS_HUMAN\nMALW\n")); err != nil {
		t.Fatal(err)
	}
	if err := mw.Close(); err != nil {
		t.Fatal(err)
	}

	resp, err := http.Post(srv.URL+"/sequences/upload", mw.FormDataContentType(), &buf)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	rec := decode[domain.ProteinRecord](t, resp)
	if rec.Name != "INS_HUMAN" {
		t.Fatalf("record %+v", rec)
	}
}

func TestProfileEndpoint(t *testing.T) {
	srv := newTestServer(t)
	rec := createRecord(t, srv.URL, "poly-G", "GGGG")

	resp, err := http.Get(fmt.Sprintf("%s/sequences/%d/profile", srv.URL, rec.ID))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	prof := decode[map[string]any](t, resp)
	if prof["length"].(float64) != 4 {
		t.Fatalf("profile %+v", prof)
	}
}

func TestCORSPreflight(t *testing.T) {
	srv := newTestServer(t, WithAllowedOrigins([]string{"http://localhost:3000"}))

	req, err := http.NewRequest(http.MethodOptions, srv.URL+"/sequences", nil)
	if err != nil {
		t.Fatal(err)
	}
	req.Header.Set("Origin", "http://localhost:3000")
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("preflight status = %d", resp.StatusCode)
	}
	if resp.Header.Get("Access-Control-Allow-Origin") != "http://localhost:3000" {
		t.Fatalf("allow-origin = %q", resp.Header.Get("Access-Control-Allow-Origin"))
	}

	// Unlisted origins get no CORS headers.
	req.Header.Set("Origin", "http://evil.example")
	resp2, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = resp2.Body.Close() }()
	if resp2.Header.Get("Access-Control-Allow-Origin") != "" {
		t.Fatal("unexpected CORS header for unlisted origin")
	}
}
