package draft

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-MentorBooking/internal/domain"
	"github.com/m04kA/SMC-MentorBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-MentorBooking/pkg/txmanager"
)

var (
	selectDraftSQL = "SELECT " + strings.Join(columns, ", ") + " FROM booking_drafts WHERE mentee_id = $1"

	createdAt = time.Date(2025, time.March, 9, 10, 0, 0, 0, time.UTC)
)

func newSQLRepository(t *testing.T) (*Repository, *txmanager.TransactionManager, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	wrapped := dbmetrics.Wrap(db, nil)
	return NewRepository(wrapped), txmanager.NewTransactionManager(wrapped), mock
}

func exactSQL(query string) string {
	return "^" + regexp.QuoteMeta(query) + "$"
}

func draftRows(menteeID string) *sqlmock.Rows {
	return sqlmock.NewRows(columns).AddRow(
		menteeID,
		[]byte(`{"id":"mentor-1","name":"Anna Petrova","title":"Go mentor","picture":"","hourly_rate":30}`),
		[]byte(`[{"day_of_week":0,"start_hour":9,"end_hour":11}]`),
		nil,
		"09:00",
		"Concurrency",
		"",
		"Europe/Berlin",
		int64(60),
		float64(30),
		int64(1),
		int64(30),
		nil,
		nil,
		"",
		createdAt,
		createdAt,
	)
}

func TestRepository_Get_ReadOnlyTxDoesNotLock(t *testing.T) {
	repo, tm, mock := newSQLRepository(t)

	mock.ExpectBegin()
	mock.ExpectQuery(exactSQL(selectDraftSQL)).
		WithArgs("mentee-1").
		WillReturnRows(draftRows("mentee-1"))
	mock.ExpectCommit()

	var got *domain.BookingDraft
	err := tm.DoReadOnly(context.Background(), func(ctx context.Context) error {
		var err error
		got, err = repo.Get(ctx, "mentee-1")
		return err
	})

	require.NoError(t, err)
	require.NotNil(t, got.Mentor)
	assert.Equal(t, "mentor-1", got.Mentor.ID)
	assert.Equal(t, []domain.AvailabilityWindow{{DayOfWeek: 0, StartHour: 9, EndHour: 11}}, got.Availability)
	assert.Equal(t, "09:00", got.SelectedTime)
	assert.Equal(t, domain.StepSelectDateTime, got.Step)
	assert.Nil(t, got.SelectedDate)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Get_WriteTxLocksRow(t *testing.T) {
	repo, tm, mock := newSQLRepository(t)

	mock.ExpectBegin()
	mock.ExpectQuery(exactSQL(selectDraftSQL + " FOR UPDATE")).
		WithArgs("mentee-1").
		WillReturnRows(draftRows("mentee-1"))
	mock.ExpectCommit()

	err := tm.Do(context.Background(), func(ctx context.Context) error {
		_, err := repo.Get(ctx, "mentee-1")
		return err
	})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Get_OutsideTx(t *testing.T) {
	repo, _, mock := newSQLRepository(t)

	mock.ExpectQuery(exactSQL(selectDraftSQL)).
		WithArgs("mentee-1").
		WillReturnRows(draftRows("mentee-1"))

	got, err := repo.Get(context.Background(), "mentee-1")

	require.NoError(t, err)
	assert.Equal(t, "mentee-1", got.MenteeID)
	assert.Equal(t, createdAt, got.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Get_Errors(t *testing.T) {
	repo, _, mock := newSQLRepository(t)

	mock.ExpectQuery(exactSQL(selectDraftSQL)).
		WithArgs("nobody").
		WillReturnRows(sqlmock.NewRows(columns))
	_, err := repo.Get(context.Background(), "nobody")
	assert.ErrorIs(t, err, ErrDraftNotFound)

	mock.ExpectQuery(exactSQL(selectDraftSQL)).
		WithArgs("mentee-1").
		WillReturnError(errors.New("connection reset"))
	_, err = repo.Get(context.Background(), "mentee-1")
	assert.ErrorIs(t, err, ErrScanRow)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Save_Upsert(t *testing.T) {
	repo, _, mock := newSQLRepository(t)

	d := domain.NewBookingDraft("mentee-1")
	d.SetMentor(domain.MentorSummary{ID: "mentor-1", Name: "Anna Petrova", HourlyRate: 30})

	updatedAt := createdAt.Add(time.Hour)
	mock.ExpectQuery(
		"^" + regexp.QuoteMeta("INSERT INTO booking_drafts") +
			".*" + regexp.QuoteMeta("ON CONFLICT (mentee_id) DO UPDATE SET mentor = EXCLUDED.mentor") +
			".*" + regexp.QuoteMeta("idempotency_key = EXCLUDED.idempotency_key, updated_at = now() RETURNING created_at, updated_at") + "$",
	).
		WithArgs(
			"mentee-1",
			`{"id":"mentor-1","name":"Anna Petrova","title":"","picture":"","hourly_rate":30}`,
			"[]",
			nil,
			"",
			"",
			"",
			"",
			domain.DefaultDurationMinutes,
			float64(30),
			int(domain.StepSelectDateTime),
			domain.DefaultDateWindowDays,
			nil,
			nil,
			"",
		).
		WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(createdAt, updatedAt))

	require.NoError(t, repo.Save(context.Background(), d))

	assert.Equal(t, createdAt, d.CreatedAt)
	assert.Equal(t, updatedAt, d.UpdatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Save_WithoutMentor(t *testing.T) {
	repo, _, mock := newSQLRepository(t)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO booking_drafts")).
		WithArgs("mentee-1", nil, sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(),
			sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(),
			sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(errors.New("relation does not exist"))

	err := repo.Save(context.Background(), domain.NewBookingDraft("mentee-1"))

	assert.ErrorIs(t, err, ErrExecQuery)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Delete(t *testing.T) {
	repo, _, mock := newSQLRepository(t)
	deleteSQL := exactSQL("DELETE FROM booking_drafts WHERE mentee_id = $1")

	mock.ExpectExec(deleteSQL).
		WithArgs("mentee-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, repo.Delete(context.Background(), "mentee-1"))

	mock.ExpectExec(deleteSQL).
		WithArgs("nobody").
		WillReturnResult(sqlmock.NewResult(0, 0))
	assert.ErrorIs(t, repo.Delete(context.Background(), "nobody"), ErrDraftNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_DeleteExpired(t *testing.T) {
	repo, _, mock := newSQLRepository(t)
	before := createdAt.Add(-2 * time.Hour)

	mock.ExpectExec(exactSQL("DELETE FROM booking_drafts WHERE updated_at < $1")).
		WithArgs(before).
		WillReturnResult(sqlmock.NewResult(0, 3))

	removed, err := repo.DeleteExpired(context.Background(), before)

	require.NoError(t, err)
	assert.Equal(t, int64(3), removed)
	assert.NoError(t, mock.ExpectationsWereMet())
}
