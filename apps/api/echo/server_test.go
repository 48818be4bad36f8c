package echoapi_test

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"syscall"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/volatiletech/null/v8"

	echoapi "github.com/trezcool/shule/apps/api/echo"
	"github.com/trezcool/shule/core"
	"github.com/trezcool/shule/core/record"
	"github.com/trezcool/shule/core/student"
	"github.com/trezcool/shule/storage/remote"
	testutil "github.com/trezcool/shule/tests"
)

func setup(t *testing.T) *echoapi.Server {
	conf := &core.Config{AppName: "Shule", TestMode: true}
	return echoapi.NewServer(echoapi.ServerDeps{
		Conf:           conf,
		Logger:         testutil.NewLogger(),
		Store:          testutil.NewStore(t),
		DisableReqLogs: true,
	})
}

type httpTest struct {
	name     string
	method   string
	path     string
	body     string
	wantCode int
	wantData string
}

func newRequest(method, path, body string) (*http.Request, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	return req, httptest.NewRecorder()
}

func TestServer_ShutdownSignal(t *testing.T) {
	conf := &core.Config{AppName: "Shule", TestMode: true}
	conf.Server.Address = "127.0.0.1:0"
	srv := echoapi.NewServer(echoapi.ServerDeps{
		Conf:           conf,
		Logger:         testutil.NewLogger(),
		Store:          testutil.NewStore(t),
		DisableReqLogs: true,
	})

	// building a server does not take over the process signals
	select {
	case sig := <-srv.ShutdownSignal():
		t.Fatalf("ShutdownSignal() = %v before Start()", sig)
	default:
	}

	go srv.Start()
	deadline := time.Now().Add(5 * time.Second)
	for srv.ListenerAddr() == nil {
		if time.Now().After(deadline) {
			t.Fatal("server did not start listening")
		}
		time.Sleep(10 * time.Millisecond)
	}

	require.NoError(t, syscall.Kill(syscall.Getpid(), syscall.SIGTERM))
	select {
	case sig := <-srv.ShutdownSignal():
		assert.Equal(t, syscall.SIGTERM, sig)
	case <-time.After(5 * time.Second):
		t.Fatal("ShutdownSignal() received nothing")
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	assert.NoError(t, srv.Shutdown(ctx))
}

func TestServer_Home(t *testing.T) {
	srv := setup(t)
	req, rec := newRequest(http.MethodGet, "/", "")
	srv.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Welcome to Shule API!", rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))
}

func TestServer_Records(t *testing.T) {
	tests := []httpTest{
		{
			name:     "fetch with projection",
			method:   http.MethodPost,
			path:     "/v1/tables/class/fetch",
			body:     `{"fields":[{"field":{"Name":"Name"}}]}`,
			wantCode: http.StatusOK,
			wantData: `{"success":true,"data":[
				{"Id":1,"Name":"Algebra II"},{"Id":2,"Name":"English Literature"},
				{"Id":3,"Name":"Biology"},{"Id":4,"Name":"World History"}]}`,
		},
		{
			name:     "get by id",
			method:   http.MethodPost,
			path:     "/v1/tables/student/records/1/",
			body:     `{"fields":[{"field":{"Name":"first_name"}},{"field":{"Name":"grade"}}]}`,
			wantCode: http.StatusOK,
			wantData: `{"success":true,"data":{"Id":1,"first_name":"Emma","grade":10}}`,
		},
		{
			name:     "get missing id",
			method:   http.MethodPost,
			path:     "/v1/tables/student/records/99",
			wantCode: http.StatusOK,
			wantData: `{"success":true,"data":null}`,
		},
		{
			name:     "get invalid id",
			method:   http.MethodPost,
			path:     "/v1/tables/student/records/abc",
			wantCode: http.StatusBadRequest,
			wantData: `{"success":false,"message":"invalid record id"}`,
		},
		{
			name:     "create",
			method:   http.MethodPost,
			path:     "/v1/tables/attendance/records",
			body:     `{"records":[{"Name":"Attendance for 2","student_id":2,"class_id":1,"date":"2024-09-03","status":"present"}]}`,
			wantCode: http.StatusOK,
			wantData: `{"success":true,"results":[{"success":true,"data":
				{"Id":5,"Name":"Attendance for 2","student_id":2,"class_id":1,"date":"2024-09-03","status":"present"}}]}`,
		},
		{
			name:     "update unknown record",
			method:   http.MethodPut,
			path:     "/v1/tables/grade/records",
			body:     `{"records":[{"Id":77,"score":99}]}`,
			wantCode: http.StatusOK,
			wantData: `{"success":true,"results":[{"success":false,"message":"record not found"}]}`,
		},
		{
			name:     "delete",
			method:   http.MethodDelete,
			path:     "/v1/tables/assignment/records",
			body:     `{"RecordIds":[4]}`,
			wantCode: http.StatusOK,
			wantData: `{"success":true,"results":[{"success":true,"data":{"Id":4}}]}`,
		},
		{
			name:     "unknown table",
			method:   http.MethodPost,
			path:     "/v1/tables/teacher/fetch",
			body:     `{}`,
			wantCode: http.StatusNotFound,
			wantData: `{"success":false,"message":"teacher: unknown table"}`,
		},
		{
			name:     "bad json",
			method:   http.MethodPost,
			path:     "/v1/tables/student/records",
			body:     `{"records":[`,
			wantCode: http.StatusBadRequest,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := setup(t)
			req, rec := newRequest(tt.method, tt.path, tt.body)
			srv.ServeHTTP(rec, req)

			if rec.Code != tt.wantCode {
				t.Errorf("failed! code = %v; wantCode %v; body %s", rec.Code, tt.wantCode, rec.Body.String())
			}
			if tt.wantData != "" {
				assert.JSONEq(t, tt.wantData, rec.Body.String())
			} else {
				assert.Contains(t, rec.Body.String(), `"success":false`)
			}
		})
	}
}

func TestServer_Summary(t *testing.T) {
	srv := setup(t)
	req, rec := newRequest(http.MethodGet, "/v1/summary", "")
	srv.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"totalStudents":5,"totalClasses":4,"averageGrade":58,"attendanceRate":50}`, rec.Body.String())
}

// The remote client and the entity services talk to the server over real HTTP.
func TestServer_RemoteClient(t *testing.T) {
	ctx := context.Background()
	ts := httptest.NewServer(setup(t))
	t.Cleanup(ts.Close)

	conf := new(core.Config)
	conf.Remote.BaseURL = ts.URL
	conf.Remote.Timeout = 5 * time.Second
	client := remote.NewClient(conf)
	svc := student.NewService(client, testutil.NewLogger())

	all, err := svc.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 5)

	created, err := svc.Create(ctx, student.NewStudent{
		FirstName:   "Ada",
		LastName:    "Lovelace",
		Grade:       11,
		Email:       "ada@example.com",
		DateOfBirth: "1990-01-01",
	})
	require.NoError(t, err)
	assert.Equal(t, 6, created.ID)
	assert.Equal(t, "Ada Lovelace", created.Name)

	updated, err := svc.Update(ctx, created.ID, student.UpdateStudent{Grade: null.IntFrom(12)})
	require.NoError(t, err)
	assert.Equal(t, 12, updated.Grade)

	got, err := svc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, updated, *got)

	ok, err := svc.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	resp, err := client.FetchRecords(ctx, "teacher", record.FetchParams{})
	require.NoError(t, err)
	assert.False(t, resp.Success)
	assert.Equal(t, "teacher: unknown table", resp.Message)
}
