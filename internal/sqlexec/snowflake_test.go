package sqlexec

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestSnowflakeEngineQuery(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New() error: %v", err)
	}
	defer db.Close()

	day := time.Date(2022, 5, 1, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery("SELECT day, region, revenue FROM sales").WillReturnRows(
		sqlmock.NewRows([]string{"DAY", "REGION", "REVENUE"}).
			AddRow(day, []byte("EMEA"), 5000000.0).
			AddRow(day, "APAC", nil),
	)

	engine := NewSnowflakeEngine(db)
	table, err := engine.Query(context.Background(), "SELECT day, region, revenue FROM sales")
	if err != nil {
		t.Fatalf("Query() error: %v", err)
	}

	if got, want := len(table.Columns), 3; got != want {
		t.Fatalf("columns = %d, want %d", got, want)
	}
	if table.Columns[0] != "DAY" {
		t.Errorf("column[0] = %q, want DAY", table.Columns[0])
	}
	if table.RowCount() != 2 {
		t.Fatalf("rows = %d, want 2", table.RowCount())
	}
	if table.Rows[0][0] != day {
		t.Errorf("date cell = %v, want %v", table.Rows[0][0], day)
	}
	// Byte slices from the driver become strings.
	if table.Rows[0][1] != "EMEA" {
		t.Errorf("region cell = %v (%T), want EMEA", table.Rows[0][1], table.Rows[0][1])
	}
	if table.Rows[1][2] != nil {
		t.Errorf("null cell = %v, want nil", table.Rows[1][2])
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestSnowflakeEngineQueryError(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New() error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT SUM").WillReturnError(errors.New("syntax error at or near SUM"))

	engine := NewSnowflakeEngine(db)
	table, qerr := engine.Query(context.Background(), "SELECT SUM(")
	if table != nil {
		t.Errorf("table = %v, want nil on error", table)
	}
	if qerr == nil || qerr.Error() != "syntax error at or near SUM" {
		t.Errorf("error = %v, want the engine error verbatim", qerr)
	}
}
