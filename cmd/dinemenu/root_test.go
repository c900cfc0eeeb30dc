package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

const sourceBody = `{"status":"success","data":[
	{"id":1,"item_name":"Paneer Tikka","item_code":"PT01","category":"Starters","kitchen":"Tandoor","rate":"250","rate1":260,"rate3":300},
	{"id":2,"item_name":"Dal Makhani","item_code":"DM02","category":"Mains","rate":180},
	{"id":3,"item_name":"Masala Chai","item_code":"MC03","rate":"40"}
]}`

func sourceServer(t *testing.T, status int, body string) string {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv.URL
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestItems_Table(t *testing.T) {
	url := sourceServer(t, http.StatusOK, sourceBody)

	out, err := run(t, "items", "--source-url", url)
	if err != nil {
		t.Fatalf("items: %v", err)
	}
	for _, want := range []string{"Paneer Tikka", "₹250.00", "Rate 3 ₹300.00", "General", "3 of 3 items"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestItems_FilteredJSON(t *testing.T) {
	url := sourceServer(t, http.StatusOK, sourceBody)

	out, err := run(t, "items", "--source-url", url, "-c", "Mains", "--json")
	if err != nil {
		t.Fatalf("items: %v", err)
	}

	var page struct {
		Category string `json:"category"`
		Total    int    `json:"total"`
		Matched  int    `json:"matched"`
		Items    []struct {
			ID int64 `json:"id"`
		} `json:"items"`
	}
	if err := json.Unmarshal([]byte(out), &page); err != nil {
		t.Fatalf("decode: %v\n%s", err, out)
	}
	if page.Category != "Mains" || page.Total != 3 || page.Matched != 1 || page.Items[0].ID != 2 {
		t.Errorf("unexpected page: %+v", page)
	}
}

func TestItems_Query(t *testing.T) {
	url := sourceServer(t, http.StatusOK, sourceBody)

	out, err := run(t, "items", "--source-url", url, "-q", "tandoor")
	if err != nil {
		t.Fatalf("items: %v", err)
	}
	if !strings.Contains(out, "1 of 3 items") {
		t.Errorf("expected one match:\n%s", out)
	}
}

func TestCategories(t *testing.T) {
	url := sourceServer(t, http.StatusOK, sourceBody)

	out, err := run(t, "categories", "--source-url", url)
	if err != nil {
		t.Fatalf("categories: %v", err)
	}
	if out != "All\nStarters\nMains\n" {
		t.Errorf("categories = %q", out)
	}
}

func TestItems_SourceDown(t *testing.T) {
	url := sourceServer(t, http.StatusBadGateway, `{"status":"error"}`)

	if _, err := run(t, "items", "--source-url", url); err == nil {
		t.Fatal("expected error when the source fails")
	}
}

func TestMissingSourceURL(t *testing.T) {
	t.Setenv(envSourceURL, "")
	if _, err := run(t, "categories"); err == nil {
		t.Fatal("expected error without a source URL")
	}
}

func TestSummary_RequiresValkey(t *testing.T) {
	_, err := run(t, "summary", "today")
	if err == nil || !strings.Contains(err.Error(), "--valkey") {
		t.Fatalf("expected --valkey error, got %v", err)
	}
}

func TestVersion(t *testing.T) {
	out, err := run(t, "--version")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	if !strings.HasPrefix(out, "dinemenu dev") {
		t.Errorf("version output = %q", out)
	}
}

func TestCacheFlagsExclusive(t *testing.T) {
	url := sourceServer(t, http.StatusOK, sourceBody)

	_, err := run(t, "categories", "--source-url", url, "--valkey", "localhost:6379", "--redis", "localhost:6380")
	if err == nil {
		t.Fatal("expected error when both --valkey and --redis are set")
	}
}
