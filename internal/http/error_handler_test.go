package handlers_test

import (
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
)

// store failures surface as a friendly page without internals
func TestStoreFailureRendersFriendlyError(t *testing.T) {
	mdb, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	defer mdb.Close()
	mock.ExpectQuery("home_stats").WillReturnError(errors.New("database is locked: secret trace"))

	app := newApp(t, sqlx.NewDb(mdb, "sqlite"))

	var resp *http.Response
	var body string
	entries := captureLogs(t, func() {
		resp, body = get(t, app, "/")
	})
	if resp.StatusCode != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", resp.StatusCode)
	}
	if !strings.Contains(body, "Algo deu errado") {
		t.Fatalf("friendly message missing; body=%s", body)
	}
	if strings.Contains(body, "database is locked") || strings.Contains(body, "secret") {
		t.Fatalf("internal details leaked to user; body=%s", body)
	}
	errs := byAction(entries, "server.error")
	if len(errs) != 1 || !strings.Contains(errs[0].Err, "database is locked") {
		t.Fatalf("server.error log: %+v", errs)
	}
}

func TestAPIStoreFailureIsJSON(t *testing.T) {
	mdb, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	defer mdb.Close()
	mock.ExpectQuery("FROM properties").WillReturnError(errors.New("disk I/O error"))

	app := newApp(t, sqlx.NewDb(mdb, "sqlite"))
	resp, body := get(t, app, "/api/v1/imoveis")
	if resp.StatusCode != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", resp.StatusCode)
	}
	if strings.Contains(body, "disk") || !strings.Contains(body, `"error"`) {
		t.Fatalf("body: %s", body)
	}
}
