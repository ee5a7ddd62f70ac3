package sink

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"member-reconcile/core/database"
	"member-reconcile/core/reconcile"
	"member-reconcile/core/storage"
	"member-reconcile/core/storage/mocks"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/minio/minio-go/v7"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

var sampleCleaned = []reconcile.CleanedRecord{
	{MemberID: "M1", FullName: "John Smith", PaidAmount: decimal.RequireFromString("100")},
	{MemberID: "M1", FullName: "Smith, John", PaidAmount: decimal.RequireFromString("50.25")},
}

// rowsOf flattens records so amounts compare by value rather than representation.
func rowsOf(cleaned []reconcile.CleanedRecord) [][]string {
	out := make([][]string, 0, len(cleaned))
	for _, c := range cleaned {
		out = append(out, []string{c.MemberID, c.FullName, c.PaidAmount.String()})
	}
	return out
}

const sampleCSV = "memberId,fullName,paidAmount\nM1,John Smith,100\nM1,\"Smith, John\",50.25\n"

// setupMockDB creates a mock GORM DB for testing.
func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open mock sql db: %v", err)
	}

	dialector := mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open gorm db: %v", err)
	}

	return gormDB, mock
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, sampleCleaned))
	assert.Equal(t, sampleCSV, buf.String())

	buf.Reset()
	require.NoError(t, WriteCSV(&buf, nil))
	assert.Equal(t, "memberId,fullName,paidAmount\n", buf.String())
}

func TestSaveCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "out", "cleaned.csv")

	require.NoError(t, SaveCSV(path, sampleCleaned))
	first, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, sampleCSV, string(first))

	require.NoError(t, SaveCSV(path, sampleCleaned))
	second, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, first, second, "reruns are byte-identical")
}

func TestSaveCSV_UnwritablePath(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	err := SaveCSV(filepath.Join(blocker, "cleaned.csv"), sampleCleaned)
	assert.Error(t, err)
}

func TestWriteCSV_PreservesPrecision(t *testing.T) {
	cleaned := []reconcile.CleanedRecord{
		{MemberID: "M1", FullName: "John Smith", PaidAmount: decimal.RequireFromString("12345678.123456789012")},
		{MemberID: "M2", FullName: "Jane Doe", PaidAmount: decimal.RequireFromString("0.10")},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, cleaned))
	assert.Equal(t, "memberId,fullName,paidAmount\nM1,John Smith,12345678.123456789012\nM2,Jane Doe,0.1\n", buf.String())
}

func TestDatabase_SQLite(t *testing.T) {
	db, err := database.Connect(database.Config{Driver: "sqlite", Name: ":memory:"})
	require.NoError(t, err)

	ctx := context.Background()
	sink := NewDatabase(db)
	require.NoError(t, sink.Migrate(ctx))

	n, err := sink.Save(ctx, "run-1", sampleCleaned)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	_, err = sink.Save(ctx, "run-2", sampleCleaned[:1])
	require.NoError(t, err)

	loaded, err := sink.Load(ctx, "run-1")
	require.NoError(t, err)
	assert.Equal(t, rowsOf(sampleCleaned), rowsOf(loaded))

	loaded, err = sink.Load(ctx, "run-2")
	require.NoError(t, err)
	assert.Len(t, loaded, 1)
}

func TestDatabase_SaveEmpty(t *testing.T) {
	gormDB, mock := setupMockDB(t)

	n, err := NewDatabase(gormDB).Save(context.Background(), "run-1", nil)
	assert.NoError(t, err)
	assert.Zero(t, n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDatabase_SaveMySQL(t *testing.T) {
	gormDB, mock := setupMockDB(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO `cleaned_member_payments`")).
		WillReturnResult(sqlmock.NewResult(1, 2))
	mock.ExpectCommit()

	n, err := NewDatabase(gormDB).Save(context.Background(), "run-1", sampleCleaned)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDatabase_SaveError(t *testing.T) {
	gormDB, mock := setupMockDB(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO `cleaned_member_payments`")).
		WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	_, err := NewDatabase(gormDB).Save(context.Background(), "run-1", sampleCleaned)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStorage_Upload(t *testing.T) {
	ctx := context.Background()
	client := new(mocks.Client)
	cfg := storage.Config{Bucket: "reports", Prefix: "cleaned"}

	var uploaded string
	client.On("BucketExists", mock.Anything, "reports").Return(true, nil)
	client.On("PutObject", mock.Anything, "reports", "cleaned/run-1/cleaned_member_payments.csv",
		mock.Anything,
		int64(len(sampleCSV)),
		mock.MatchedBy(func(opts minio.PutObjectOptions) bool { return opts.ContentType == "text/csv" }),
	).Run(func(args mock.Arguments) {
		body, _ := io.ReadAll(args.Get(3).(io.Reader))
		uploaded = string(body)
	}).Return(minio.UploadInfo{Bucket: "reports"}, nil)

	name, err := NewStorage(client, cfg).Upload(ctx, "run-1", sampleCleaned)
	require.NoError(t, err)
	assert.Equal(t, "cleaned/run-1/cleaned_member_payments.csv", name)
	assert.Equal(t, sampleCSV, uploaded)
	client.AssertExpectations(t)
}

func TestStorage_UploadError(t *testing.T) {
	ctx := context.Background()
	client := new(mocks.Client)

	client.On("BucketExists", mock.Anything, "reports").Return(true, nil)
	client.On("PutObject", mock.Anything, "reports", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(minio.UploadInfo{}, errors.New("access denied"))

	_, err := NewStorage(client, storage.Config{Bucket: "reports"}).Upload(ctx, "run-1", sampleCleaned)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "access denied")
}
