package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/GeorgesCH/SSDTeamProject/internal/logger"
	"github.com/GeorgesCH/SSDTeamProject/models"
)

var recordColumns = []string{"id", "user_id", "kind", "record", "date_posted"}

func newTestRecordRepo(t *testing.T) (*recordRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &recordRepository{
		db:     &DB{DB: db, dialect: DialectPostgres, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func TestCreateRecord_Success(t *testing.T) {
	repo, mock, db := newTestRecordRepo(t)
	defer db.Close()

	record := models.Record{
		UserID:     3,
		Kind:       models.KindBloodPressure,
		Ciphertext: "gAAAAABtoken",
	}

	rows := sqlmock.NewRows(recordColumns).
		AddRow(11, record.UserID, string(record.Kind), record.Ciphertext, time.Now())

	mock.ExpectQuery("INSERT INTO records").
		WithArgs(record.UserID, string(record.Kind), record.Ciphertext).
		WillReturnRows(rows)

	created, err := repo.CreateRecord(context.Background(), record)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID != 11 {
		t.Errorf("expected ID=11, got %d", created.ID)
	}
	if created.Kind != models.KindBloodPressure {
		t.Errorf("expected kind blood_pressure, got %s", created.Kind)
	}
}

func TestCreateRecord_DBError(t *testing.T) {
	repo, mock, db := newTestRecordRepo(t)
	defer db.Close()

	mock.ExpectQuery("INSERT INTO records").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(errors.New("connection reset"))

	_, err := repo.CreateRecord(context.Background(), models.Record{UserID: 3, Kind: models.KindWeight})
	if err == nil {
		t.Fatal("expected error, got nil")
	}
}

func TestGetRecordsByOwner_Success(t *testing.T) {
	repo, mock, db := newTestRecordRepo(t)
	defer db.Close()

	rows := sqlmock.NewRows(recordColumns).
		AddRow(2, int64(3), "weight", "gAAAAABsecond", time.Now()).
		AddRow(1, int64(3), "weight", "gAAAAABfirst", time.Now().Add(-time.Hour))

	mock.ExpectQuery("SELECT (.+) FROM records").
		WithArgs(int64(3), "weight").
		WillReturnRows(rows)

	records, err := repo.GetRecordsByOwner(context.Background(), 3, models.KindWeight)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].ID != 2 {
		t.Errorf("expected newest record first, got ID=%d", records[0].ID)
	}
}

func TestGetRecordsByOwner_Empty(t *testing.T) {
	repo, mock, db := newTestRecordRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM records").
		WithArgs(int64(3), "blood_pressure").
		WillReturnRows(sqlmock.NewRows(recordColumns))

	records, err := repo.GetRecordsByOwner(context.Background(), 3, models.KindBloodPressure)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 0 {
		t.Fatalf("expected no records, got %d", len(records))
	}
}

func TestGetRecordsByOwner_QueryError(t *testing.T) {
	repo, mock, db := newTestRecordRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM records").
		WithArgs(int64(3), "weight").
		WillReturnError(errors.New("relation does not exist"))

	_, err := repo.GetRecordsByOwner(context.Background(), 3, models.KindWeight)
	if !errors.Is(err, ErrExecutingQuery) {
		t.Fatalf("expected ErrExecutingQuery, got %v", err)
	}
}

func TestGetRecordsByOwner_ScanError(t *testing.T) {
	repo, mock, db := newTestRecordRepo(t)
	defer db.Close()

	rows := sqlmock.NewRows(recordColumns).
		AddRow("not-an-int", int64(3), "weight", "gAAAAAB", time.Now())

	mock.ExpectQuery("SELECT (.+) FROM records").
		WithArgs(int64(3), "weight").
		WillReturnRows(rows)

	_, err := repo.GetRecordsByOwner(context.Background(), 3, models.KindWeight)
	if !errors.Is(err, ErrScanningRow) {
		t.Fatalf("expected ErrScanningRow, got %v", err)
	}
}
