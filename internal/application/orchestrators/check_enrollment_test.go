package orchestrators

import (
	"context"
	"errors"
	"testing"

	"companion/internal/domain/enrollment"
)

// mockEnrollmentAPI implements EnrollmentAPI for testing.
type mockEnrollmentAPI struct {
	records map[string]enrollment.Enrollment // keyed userID+"/"+activityID

	lookupErr error
	createErr error
	deleteErr error

	createCalls int
	deleteCalls int
}

func newMockEnrollmentAPI() *mockEnrollmentAPI {
	return &mockEnrollmentAPI{records: make(map[string]enrollment.Enrollment)}
}

// GetEnrollment implements EnrollmentAPI.
// POST: returns enrollment.ErrNotFound when no record exists
func (m *mockEnrollmentAPI) GetEnrollment(_ context.Context, userID, activityID string) (enrollment.Enrollment, error) {
	if m.lookupErr != nil {
		return enrollment.Enrollment{}, m.lookupErr
	}
	rec, ok := m.records[userID+"/"+activityID]
	if !ok {
		return enrollment.Enrollment{}, enrollment.ErrNotFound
	}
	return rec, nil
}

// CreateEnrollment implements EnrollmentAPI.
// POST: record exists on success
func (m *mockEnrollmentAPI) CreateEnrollment(_ context.Context, userID, activityID string) (enrollment.Enrollment, error) {
	m.createCalls++
	if m.createErr != nil {
		return enrollment.Enrollment{}, m.createErr
	}
	rec := enrollment.Enrollment{ID: "enr-001", UserID: userID, ActivityID: activityID}
	m.records[userID+"/"+activityID] = rec
	return rec, nil
}

// DeleteEnrollment implements EnrollmentAPI.
// POST: record is gone on success
func (m *mockEnrollmentAPI) DeleteEnrollment(_ context.Context, userID, activityID string) error {
	m.deleteCalls++
	if m.deleteErr != nil {
		return m.deleteErr
	}
	delete(m.records, userID+"/"+activityID)
	return nil
}

// TestExecuteCheckEnrollment_Enrolled verifies an existing record.
func TestExecuteCheckEnrollment_Enrolled(t *testing.T) {
	api := newMockEnrollmentAPI()
	api.records["user-001/act-42"] = enrollment.Enrollment{ID: "enr-001", UserID: "user-001", ActivityID: "act-42"}

	status, err := ExecuteCheckEnrollment(context.Background(),
		CheckEnrollmentInput{UserID: "user-001", ActivityID: "act-42"},
		CheckEnrollmentDeps{Enrollments: api})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if status != enrollment.StatusEnrolled {
		t.Errorf("expected enrolled, got %s", status)
	}
}

// TestExecuteCheckEnrollment_NotFoundIsNotEnrolled verifies a missing
// record is a normal answer, not an error.
func TestExecuteCheckEnrollment_NotFoundIsNotEnrolled(t *testing.T) {
	status, err := ExecuteCheckEnrollment(context.Background(),
		CheckEnrollmentInput{UserID: "user-001", ActivityID: "act-42"},
		CheckEnrollmentDeps{Enrollments: newMockEnrollmentAPI()})
	if err != nil {
		t.Fatalf("expected no error for missing record, got %v", err)
	}
	if status != enrollment.StatusNotEnrolled {
		t.Errorf("expected not enrolled, got %s", status)
	}
}

// TestExecuteCheckEnrollment_TransientError verifies a lookup failure is
// never conflated with "not enrolled".
func TestExecuteCheckEnrollment_TransientError(t *testing.T) {
	api := newMockEnrollmentAPI()
	api.lookupErr = errors.New("connection reset")

	status, err := ExecuteCheckEnrollment(context.Background(),
		CheckEnrollmentInput{UserID: "user-001", ActivityID: "act-42"},
		CheckEnrollmentDeps{Enrollments: api})
	if !errors.Is(err, ErrEnrollmentUnavailable) {
		t.Fatalf("expected ErrEnrollmentUnavailable, got %v", err)
	}
	if status != enrollment.StatusUnknown {
		t.Errorf("expected unknown status, got %s", status)
	}
}
