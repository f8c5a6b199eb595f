package schedules

import (
	"bytes"
	"clinicdesk-service/internal/app/services/shared/jwtmanager"
	"clinicdesk-service/internal/pkg/constvars"
	"clinicdesk-service/internal/pkg/dto/requests"
	"clinicdesk-service/internal/pkg/dto/responses"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubScheduleUsecase struct {
	byDoctor    map[int64][]responses.Schedule
	lastCreate  *requests.CreateSchedule
	updateCalls int
	deleteCalls int
}

func (s *stubScheduleUsecase) FindByDoctorID(ctx context.Context, doctorID int64) ([]responses.Schedule, error) {
	return s.byDoctor[doctorID], nil
}

func (s *stubScheduleUsecase) Create(ctx context.Context, request *requests.CreateSchedule) (*responses.ScheduleBatchResult, error) {
	s.lastCreate = request
	return &responses.ScheduleBatchResult{CreatedCount: 1}, nil
}

func (s *stubScheduleUsecase) Update(ctx context.Context, scheduleID int64, request *requests.UpdateSchedule) (*responses.Schedule, error) {
	s.updateCalls++
	return &responses.Schedule{ID: scheduleID}, nil
}

func (s *stubScheduleUsecase) Delete(ctx context.Context, scheduleID int64) error {
	s.deleteCalls++
	return nil
}

func scheduleCreateRequest(t *testing.T, body string, session *jwtmanager.Session) *http.Request {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/schedules", bytes.NewBufferString(body))
	if session != nil {
		req = req.WithContext(context.WithValue(req.Context(), constvars.CONTEXT_SESSION_KEY, session))
	}
	return req
}

func scheduleIDRequest(t *testing.T, method, scheduleID string, session *jwtmanager.Session) *http.Request {
	t.Helper()
	req := httptest.NewRequest(method, "/schedules/"+scheduleID, nil)

	routeCtx := chi.NewRouteContext()
	routeCtx.URLParams.Add(constvars.URLParamScheduleID, scheduleID)
	ctx := context.WithValue(req.Context(), chi.RouteCtxKey, routeCtx)
	if session != nil {
		ctx = context.WithValue(ctx, constvars.CONTEXT_SESSION_KEY, session)
	}
	return req.WithContext(ctx)
}

func TestScheduleCreate_DoctorSessionOverridesBodyDoctorID(t *testing.T) {
	usecase := &stubScheduleUsecase{}
	ctrl := NewScheduleController(zap.NewNop(), usecase)

	body := `{"doctor_id": 9, "available_date": "2026-09-10", "start_time": "09:00", "end_time": "17:00"}`
	rec := httptest.NewRecorder()
	ctrl.Create(rec, scheduleCreateRequest(t, body, &jwtmanager.Session{Role: constvars.RoleDoctor, DoctorID: 7}))

	assert.Equal(t, http.StatusCreated, rec.Code)
	require.NotNil(t, usecase.lastCreate)
	assert.Equal(t, int64(7), usecase.lastCreate.DoctorID)
}

func TestScheduleCreate_DoctorSessionSuppliesOmittedDoctorID(t *testing.T) {
	usecase := &stubScheduleUsecase{}
	ctrl := NewScheduleController(zap.NewNop(), usecase)

	body := `{"available_date": "2026-09-10", "start_time": "09:00", "end_time": "17:00"}`
	rec := httptest.NewRecorder()
	ctrl.Create(rec, scheduleCreateRequest(t, body, &jwtmanager.Session{Role: constvars.RoleDoctor, DoctorID: 7}))

	assert.Equal(t, http.StatusCreated, rec.Code)
	require.NotNil(t, usecase.lastCreate)
	assert.Equal(t, int64(7), usecase.lastCreate.DoctorID)
}

func TestScheduleCreate_AdminWithoutDoctorIDRejected(t *testing.T) {
	usecase := &stubScheduleUsecase{}
	ctrl := NewScheduleController(zap.NewNop(), usecase)

	body := `{"available_date": "2026-09-10", "start_time": "09:00", "end_time": "17:00"}`
	rec := httptest.NewRecorder()
	ctrl.Create(rec, scheduleCreateRequest(t, body, &jwtmanager.Session{Role: constvars.RoleAdmin}))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, usecase.lastCreate)
}

func TestScheduleCreate_AdminTargetsAnyDoctor(t *testing.T) {
	usecase := &stubScheduleUsecase{}
	ctrl := NewScheduleController(zap.NewNop(), usecase)

	body := `{"doctor_id": 9, "available_date": "2026-09-10", "start_time": "09:00", "end_time": "17:00"}`
	rec := httptest.NewRecorder()
	ctrl.Create(rec, scheduleCreateRequest(t, body, &jwtmanager.Session{Role: constvars.RoleAdmin}))

	assert.Equal(t, http.StatusCreated, rec.Code)
	require.NotNil(t, usecase.lastCreate)
	assert.Equal(t, int64(9), usecase.lastCreate.DoctorID)
}

func TestScheduleDelete_DoctorCannotDeleteAnotherDoctorsSchedule(t *testing.T) {
	usecase := &stubScheduleUsecase{
		byDoctor: map[int64][]responses.Schedule{
			7: {{ID: 31, DoctorID: 7}, {ID: 32, DoctorID: 7}},
		},
	}
	ctrl := NewScheduleController(zap.NewNop(), usecase)

	rec := httptest.NewRecorder()
	ctrl.Delete(rec, scheduleIDRequest(t, http.MethodDelete, "99", &jwtmanager.Session{Role: constvars.RoleDoctor, DoctorID: 7}))

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Zero(t, usecase.deleteCalls)
}

func TestScheduleDelete_DoctorDeletesOwnSchedule(t *testing.T) {
	usecase := &stubScheduleUsecase{
		byDoctor: map[int64][]responses.Schedule{
			7: {{ID: 31, DoctorID: 7}},
		},
	}
	ctrl := NewScheduleController(zap.NewNop(), usecase)

	rec := httptest.NewRecorder()
	ctrl.Delete(rec, scheduleIDRequest(t, http.MethodDelete, "31", &jwtmanager.Session{Role: constvars.RoleDoctor, DoctorID: 7}))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, usecase.deleteCalls)
}

func TestScheduleUpdate_DoctorCannotEditAnotherDoctorsSchedule(t *testing.T) {
	usecase := &stubScheduleUsecase{
		byDoctor: map[int64][]responses.Schedule{
			7: {{ID: 31, DoctorID: 7}},
		},
	}
	ctrl := NewScheduleController(zap.NewNop(), usecase)

	req := httptest.NewRequest(http.MethodPut, "/schedules/40", bytes.NewBufferString(`{"start_time": "09:00", "end_time": "17:00"}`))
	routeCtx := chi.NewRouteContext()
	routeCtx.URLParams.Add(constvars.URLParamScheduleID, "40")
	ctx := context.WithValue(req.Context(), chi.RouteCtxKey, routeCtx)
	ctx = context.WithValue(ctx, constvars.CONTEXT_SESSION_KEY, &jwtmanager.Session{Role: constvars.RoleDoctor, DoctorID: 7})

	rec := httptest.NewRecorder()
	ctrl.Update(rec, req.WithContext(ctx))

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Zero(t, usecase.updateCalls)
}
