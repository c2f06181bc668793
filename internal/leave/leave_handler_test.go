package leave_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-absensi/internal/leave"
	leaveerrors "go-absensi/internal/leave/errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeService struct {
	createFn  func(ctx context.Context, actorID string, req leave.CreateLeaveRequest) (leave.LeaveResponse, error)
	getAllFn  func(ctx context.Context) ([]leave.LeaveResponse, error)
	getByIDFn func(ctx context.Context, id string) (leave.LeaveResponse, error)
	approveFn func(ctx context.Context, actorID, id string) (leave.LeaveResponse, error)
	rejectFn  func(ctx context.Context, actorID, id, rejectionReason string) (leave.LeaveResponse, error)
}

func (f *fakeService) Create(ctx context.Context, actorID string, req leave.CreateLeaveRequest) (leave.LeaveResponse, error) {
	return f.createFn(ctx, actorID, req)
}
func (f *fakeService) GetAll(ctx context.Context) ([]leave.LeaveResponse, error) {
	return f.getAllFn(ctx)
}
func (f *fakeService) GetByID(ctx context.Context, id string) (leave.LeaveResponse, error) {
	return f.getByIDFn(ctx, id)
}
func (f *fakeService) Approve(ctx context.Context, actorID, id string) (leave.LeaveResponse, error) {
	return f.approveFn(ctx, actorID, id)
}
func (f *fakeService) Reject(ctx context.Context, actorID, id, rejectionReason string) (leave.LeaveResponse, error) {
	return f.rejectFn(ctx, actorID, id, rejectionReason)
}

func TestHandler_CreateAndApprove(t *testing.T) {
	gin.SetMode(gin.TestMode)
	actorID := uuid.New().String()
	employeeID := uuid.New().String()
	leaveID := uuid.New().String()

	svc := &fakeService{
		createFn: func(ctx context.Context, aid string, req leave.CreateLeaveRequest) (leave.LeaveResponse, error) {
			assert.Equal(t, actorID, aid)
			assert.Equal(t, employeeID, req.EmployeeID)
			return leave.LeaveResponse{ID: leaveID, EmployeeID: req.EmployeeID, Days: 3, Status: leave.StatusPending}, nil
		},
		approveFn: func(ctx context.Context, aid, id string) (leave.LeaveResponse, error) {
			assert.Equal(t, leaveID, id)
			return leave.LeaveResponse{ID: id, Status: leave.StatusApproved}, nil
		},
	}

	h := leave.NewHandler(svc, nil)

	body := `{"employee_id":"` + employeeID + `","leave_type":"ANNUAL","start_date":"2026-04-06","end_date":"2026-04-08"}`
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set("employee_id", actorID)
	c.Request = httptest.NewRequest(http.MethodPost, "/leaves", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	h.Create(c)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "\"days\":3")

	w2 := httptest.NewRecorder()
	c2, _ := gin.CreateTestContext(w2)
	c2.Set("employee_id", actorID)
	c2.Params = gin.Params{{Key: "id", Value: leaveID}}
	c2.Request = httptest.NewRequest(http.MethodPost, "/leaves/"+leaveID+"/approve", nil)
	h.Approve(c2)
	assert.Equal(t, http.StatusOK, w2.Code)
	assert.Contains(t, w2.Body.String(), leave.StatusApproved)
}

func TestHandler_Create_Overlap(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &fakeService{
		createFn: func(ctx context.Context, aid string, req leave.CreateLeaveRequest) (leave.LeaveResponse, error) {
			return leave.LeaveResponse{}, leaveerrors.ErrLeaveOverlap
		},
	}

	h := leave.NewHandler(svc, nil)

	body := `{"employee_id":"` + uuid.New().String() + `","leave_type":"ANNUAL","start_date":"2026-04-06","end_date":"2026-04-08"}`
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set("employee_id", uuid.New().String())
	c.Request = httptest.NewRequest(http.MethodPost, "/leaves", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	h.Create(c)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "CONFLICT")
}

func TestHandler_Create_MissingFields(t *testing.T) {
	gin.SetMode(gin.TestMode)

	h := leave.NewHandler(&fakeService{}, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set("employee_id", uuid.New().String())
	c.Request = httptest.NewRequest(http.MethodPost, "/leaves", strings.NewReader(`{}`))
	c.Request.Header.Set("Content-Type", "application/json")
	h.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
