package attendance

import (
	"context"
	"testing"
	"time"

	"github.com/ems-suite/ems-backend-go/internal/domain/attendance"
	"github.com/ems-suite/ems-backend-go/internal/domain/employee"
	"github.com/ems-suite/ems-backend-go/internal/domain/leave"
	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAttendanceRepo struct {
	records   []attendance.AttendanceRecord
	saveErr   error
	saveCalls int
}

func (f *fakeAttendanceRepo) ListByDate(ctx context.Context, date time.Time) ([]attendance.AttendanceRecord, error) {
	return f.records, nil
}

func (f *fakeAttendanceRepo) ListByMonth(ctx context.Context, month int, year int) ([]attendance.AttendanceRecord, error) {
	return f.records, nil
}

func (f *fakeAttendanceRepo) ExistsForDate(ctx context.Context, date time.Time) (bool, error) {
	return len(f.records) > 0, nil
}

func (f *fakeAttendanceRepo) SaveDay(ctx context.Context, date time.Time, records []attendance.AttendanceRecord) error {
	f.saveCalls++
	if f.saveErr != nil {
		return f.saveErr
	}
	f.records = append(f.records, records...)
	return nil
}

type fakeEmployeeRepo struct {
	employees []employee.Employee
}

func (f *fakeEmployeeRepo) Create(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	return e, nil
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) GetByUserID(ctx context.Context, userID string) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) GetByEmployeeCode(ctx context.Context, code string) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) List(ctx context.Context, filter employee.EmployeeFilter) ([]employee.Employee, error) {
	return f.employees, nil
}

func (f *fakeEmployeeRepo) Update(ctx context.Context, e employee.Employee) error { return nil }
func (f *fakeEmployeeRepo) Delete(ctx context.Context, id string) error           { return nil }

type fakeLeaveRepo struct {
	leaves []leave.LeaveRequest
}

func (f *fakeLeaveRepo) Create(ctx context.Context, l leave.LeaveRequest) (leave.LeaveRequest, error) {
	return l, nil
}

func (f *fakeLeaveRepo) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
}

func (f *fakeLeaveRepo) List(ctx context.Context, filter leave.LeaveFilter) ([]leave.LeaveRequest, error) {
	return f.leaves, nil
}

func (f *fakeLeaveRepo) UpdateStatus(ctx context.Context, id string, status leave.Status, processedBy string) error {
	return nil
}

func (f *fakeLeaveRepo) CountByStatus(ctx context.Context, status leave.Status) (int64, error) {
	return 0, nil
}

func adminContext(t *testing.T) context.Context {
	t.Helper()
	ja := jwtauth.New("HS256", []byte("test-secret"), nil)
	_, tokenString, err := ja.Encode(map[string]interface{}{"user_id": "admin-1", "type": "access"})
	require.NoError(t, err)
	token, err := ja.Decode(tokenString)
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

func TestDailyView_LockedFollowsRecordPresence(t *testing.T) {
	t.Parallel()
	date := day(2026, time.March, 10)
	attendanceRepo := &fakeAttendanceRepo{}
	svc := NewAttendanceService(attendanceRepo, &fakeEmployeeRepo{employees: testRoster()}, &fakeLeaveRepo{})

	resp, err := svc.DailyView(context.Background(), date)
	require.NoError(t, err)
	assert.False(t, resp.Locked)
	assert.Equal(t, "2026-03-10", resp.Date)
	assert.Len(t, resp.Employees, 3)

	attendanceRepo.records = []attendance.AttendanceRecord{
		{EmployeeID: "emp-1", Date: date, Status: attendance.StatusPresent},
	}

	resp, err = svc.DailyView(context.Background(), date)
	require.NoError(t, err)
	assert.True(t, resp.Locked)
}

func TestMarkDay_SurfacesDayLocked(t *testing.T) {
	t.Parallel()
	attendanceRepo := &fakeAttendanceRepo{saveErr: attendance.ErrDayLocked}
	svc := NewAttendanceService(attendanceRepo, &fakeEmployeeRepo{employees: testRoster()}, &fakeLeaveRepo{})

	_, err := svc.MarkDay(adminContext(t), attendance.MarkDayRequest{
		Date:     "2026-03-10",
		Statuses: map[string]string{"emp-1": attendance.StatusPresent},
	})

	assert.ErrorIs(t, err, attendance.ErrDayLocked)
	assert.Equal(t, 1, attendanceRepo.saveCalls)
	assert.Empty(t, attendanceRepo.records, "a rejected save must not store any rows")
}

func TestMarkDay_SavesAndReportsCount(t *testing.T) {
	t.Parallel()
	date := day(2026, time.March, 10)
	attendanceRepo := &fakeAttendanceRepo{}
	leaveRepo := &fakeLeaveRepo{leaves: []leave.LeaveRequest{
		{EmployeeID: "emp-3", Status: leave.StatusApproved, StartDate: date, EndDate: date},
	}}
	svc := NewAttendanceService(attendanceRepo, &fakeEmployeeRepo{employees: testRoster()}, leaveRepo)

	resp, err := svc.MarkDay(adminContext(t), attendance.MarkDayRequest{
		Date: "2026-03-10",
		Statuses: map[string]string{
			"emp-1": attendance.StatusPresent,
			"emp-3": attendance.StatusPresent, // on leave, dropped before saving
		},
	})

	require.NoError(t, err)
	assert.Equal(t, 1, resp.Saved)
	require.Len(t, attendanceRepo.records, 1)
	assert.Equal(t, "emp-1", attendanceRepo.records[0].EmployeeID)
	require.NotNil(t, attendanceRepo.records[0].MarkedBy)
	assert.Equal(t, "admin-1", *attendanceRepo.records[0].MarkedBy)
}

func TestMarkDay_NothingToSave(t *testing.T) {
	t.Parallel()
	date := day(2026, time.March, 10)
	leaveRepo := &fakeLeaveRepo{leaves: []leave.LeaveRequest{
		{EmployeeID: "emp-1", Status: leave.StatusApproved, StartDate: date, EndDate: date},
	}}
	attendanceRepo := &fakeAttendanceRepo{}
	svc := NewAttendanceService(attendanceRepo, &fakeEmployeeRepo{employees: testRoster()}, leaveRepo)

	_, err := svc.MarkDay(adminContext(t), attendance.MarkDayRequest{
		Date:     "2026-03-10",
		Statuses: map[string]string{"emp-1": attendance.StatusPresent},
	})

	assert.ErrorIs(t, err, attendance.ErrNothingToSave)
	assert.Zero(t, attendanceRepo.saveCalls)
}
