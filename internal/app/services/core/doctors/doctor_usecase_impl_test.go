package doctors

import (
	"clinicdesk-service/internal/app/config"
	"clinicdesk-service/internal/pkg/dto/requests"
	"clinicdesk-service/internal/pkg/dto/responses"
	"context"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubRedis struct {
	store map[string]string
}

func newStubRedis() *stubRedis {
	return &stubRedis{store: make(map[string]string)}
}

func (s *stubRedis) Delete(ctx context.Context, key string) error {
	delete(s.store, key)
	return nil
}

func (s *stubRedis) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	s.store[key] = string(data)
	return nil
}

func (s *stubRedis) Get(ctx context.Context, key string) (string, error) {
	return s.store[key], nil
}

type stubDoctorBackend struct {
	doctors   []responses.Doctor
	listCalls int
}

func (s *stubDoctorBackend) FindAllDoctors(ctx context.Context) ([]responses.Doctor, error) {
	s.listCalls++
	return s.doctors, nil
}

func (s *stubDoctorBackend) FindDoctorByID(ctx context.Context, doctorID int64) (*responses.Doctor, error) {
	for i := range s.doctors {
		if s.doctors[i].ID == doctorID {
			return &s.doctors[i], nil
		}
	}
	return nil, nil
}

func (s *stubDoctorBackend) CreateDoctor(ctx context.Context, request *requests.CreateDoctor) (*responses.Doctor, error) {
	doctor := responses.Doctor{ID: int64(len(s.doctors) + 1), FullName: request.FullName, Status: request.Status}
	s.doctors = append(s.doctors, doctor)
	return &doctor, nil
}

func (s *stubDoctorBackend) UpdateDoctor(ctx context.Context, doctorID int64, request *requests.UpdateDoctor) (*responses.Doctor, error) {
	return &responses.Doctor{ID: doctorID, FullName: request.FullName}, nil
}

func (s *stubDoctorBackend) DeleteDoctor(ctx context.Context, doctorID int64) error {
	return nil
}

func testInternalConfig() *config.InternalConfig {
	return &config.InternalConfig{
		App: config.App{
			DoctorCacheTTLInMinute:               10,
			MinioProfilePictureMaxUploadSizeInMB: 2,
		},
	}
}

func TestDoctorUsecaseFindAll_SecondReadServedFromCache(t *testing.T) {
	backend := &stubDoctorBackend{doctors: []responses.Doctor{
		{ID: 1, FullName: "Dr. Asha Rao", Specialization: "Cardiology", Status: "Active"},
	}}
	uc := NewDoctorUsecase(backend, newStubRedis(), nil, testInternalConfig(), zap.NewNop())

	first, err := uc.FindAll(context.Background())
	require.NoError(t, err)
	second, err := uc.FindAll(context.Background())
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, backend.listCalls)
}

func TestDoctorUsecaseCreate_InvalidatesDirectoryCache(t *testing.T) {
	backend := &stubDoctorBackend{doctors: []responses.Doctor{
		{ID: 1, FullName: "Dr. Asha Rao", Status: "Active"},
	}}
	redis := newStubRedis()
	uc := NewDoctorUsecase(backend, redis, nil, testInternalConfig(), zap.NewNop())

	_, err := uc.FindAll(context.Background())
	require.NoError(t, err)

	_, err = uc.Create(context.Background(), &requests.CreateDoctor{FullName: "Dr. Vikram Shah", Status: "Active"})
	require.NoError(t, err)

	doctors, err := uc.FindAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, doctors, 2)
	assert.Equal(t, 2, backend.listCalls)
}

func TestDoctorUsecaseDirectory_KeyedByID(t *testing.T) {
	backend := &stubDoctorBackend{doctors: []responses.Doctor{
		{ID: 1, FullName: "Dr. Asha Rao", Specialization: "Cardiology"},
		{ID: 4, FullName: "Dr. Vikram Shah", Specialization: "Dermatology"},
	}}
	uc := NewDoctorUsecase(backend, newStubRedis(), nil, testInternalConfig(), zap.NewNop())

	directory, err := uc.Directory(context.Background())
	require.NoError(t, err)

	require.Len(t, directory, 2)
	assert.Equal(t, "Dr. Vikram Shah", directory[4].FullName)
}
