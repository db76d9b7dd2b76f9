package server_test

import (
	"context"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/loilo-inc/mockcage/behavior"
	"github.com/loilo-inc/mockcage/metrics"
	"github.com/loilo-inc/mockcage/mocks/mock_types"
	"github.com/loilo-inc/mockcage/server"
	"github.com/loilo-inc/mockcage/test"
	"github.com/loilo-inc/mockcage/timeout"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func setup(t *testing.T, tm *test.FakeTime) (*server.Server, http.Handler, *test.LogRecorder) {
	t.Helper()
	l, rec := test.NewLogger()
	srv := server.NewServer(&server.Input{
		Time:    tm,
		Timeout: 3 * time.Second,
		Log:     l,
	})
	return srv, srv.Handler(), rec
}

func do(h http.Handler, method, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(method, path, nil))
	return rec
}

func TestDataEndpoint(t *testing.T) {
	t.Run("default is 200 with empty body", func(t *testing.T) {
		_, h, _ := setup(t, test.NewFakeTime())
		for _, method := range []string{http.MethodGet, http.MethodHead} {
			rec := do(h, method, "/")
			assert.Equal(t, http.StatusOK, rec.Code, method)
			assert.Empty(t, rec.Body.String(), method)
		}
	})
	t.Run("status round trip", func(t *testing.T) {
		_, h, _ := setup(t, test.NewFakeTime())
		for code := 200; code <= 599; code++ {
			token := strconv.Itoa(code)
			post := do(h, http.MethodPost, "/"+token)
			if !assert.Equal(t, http.StatusOK, post.Code, token) {
				return
			}
			get := do(h, http.MethodGet, "/")
			assert.Equal(t, code, get.Code, token)
			assert.Empty(t, get.Body.String(), token)
			head := do(h, http.MethodHead, "/")
			assert.Equal(t, code, head.Code, token)
			assert.Empty(t, head.Body.String(), token)
		}
	})
	t.Run("informational codes never reach the wire", func(t *testing.T) {
		_, h, _ := setup(t, test.NewFakeTime())
		ts := httptest.NewServer(h)
		defer ts.Close()
		do(h, http.MethodPost, "/404")
		for _, token := range []string{"100", "102", "103", "199"} {
			resp, err := http.Post(ts.URL+"/"+token, "text/plain", nil)
			if !assert.NoError(t, err) {
				return
			}
			resp.Body.Close()
			assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode, token)
			conn, err := net.Dial("tcp", ts.Listener.Addr().String())
			if !assert.NoError(t, err) {
				return
			}
			_, err = io.WriteString(conn, "GET / HTTP/1.1\r\nHost: mock\r\nConnection: close\r\n\r\n")
			assert.NoError(t, err)
			raw, err := io.ReadAll(conn)
			conn.Close()
			assert.NoError(t, err)
			assert.True(t, strings.HasPrefix(string(raw), "HTTP/1.1 404 Not Found\r\n"), token)
			assert.Equal(t, 1, strings.Count(string(raw), "HTTP/1.1 "), token)
		}
	})
	t.Run("delay", func(t *testing.T) {
		tm := test.NewFakeTime()
		_, h, _ := setup(t, tm)
		assert.Equal(t, http.StatusOK, do(h, http.MethodPost, "/delay-2").Code)
		get := do(h, http.MethodGet, "/")
		assert.Equal(t, http.StatusOK, get.Code)
		assert.Equal(t, "Slept for 2 sec\n", get.Body.String())
		head := do(h, http.MethodHead, "/")
		assert.Equal(t, http.StatusOK, head.Code)
		assert.Empty(t, head.Body.String())
		assert.Equal(t, []time.Duration{2 * time.Second, 2 * time.Second}, tm.Durations())
	})
	t.Run("delay-0 does not wait", func(t *testing.T) {
		tm := test.NewFakeTime()
		_, h, _ := setup(t, tm)
		do(h, http.MethodPost, "/delay-0")
		get := do(h, http.MethodGet, "/")
		assert.Equal(t, "Slept for 0 sec\n", get.Body.String())
		assert.Empty(t, tm.Durations())
	})
	t.Run("timeout", func(t *testing.T) {
		tm := test.NewFakeTime()
		_, h, _ := setup(t, tm)
		assert.Equal(t, http.StatusOK, do(h, http.MethodPost, "/timeout").Code)
		get := do(h, http.MethodGet, "/")
		assert.Equal(t, http.StatusOK, get.Code)
		assert.Empty(t, get.Body.String())
		head := do(h, http.MethodHead, "/")
		assert.Equal(t, http.StatusOK, head.Code)
		assert.Empty(t, head.Body.String())
		assert.Equal(t, []time.Duration{3 * time.Second, 3 * time.Second}, tm.Durations())
	})
	t.Run("timeout defaults to 120 seconds", func(t *testing.T) {
		tm := test.NewFakeTime()
		srv := server.NewServer(&server.Input{Time: tm})
		h := srv.Handler()
		do(h, http.MethodPost, "/timeout")
		do(h, http.MethodGet, "/")
		assert.Equal(t, []time.Duration{120 * time.Second}, tm.Durations())
	})
	t.Run("delay holds the request in real time", func(t *testing.T) {
		srv := server.NewServer(&server.Input{Time: &timeout.Time{}})
		h := srv.Handler()
		do(h, http.MethodPost, "/delay-1")
		start := time.Now()
		get := do(h, http.MethodGet, "/")
		assert.GreaterOrEqual(t, time.Since(start), time.Second)
		assert.Equal(t, "Slept for 1 sec\n", get.Body.String())
	})
	t.Run("request gone before the wait finished", func(t *testing.T) {
		tm := test.NewGatedTime()
		_, h, _ := setup(t, tm)
		do(h, http.MethodPost, "/delay-30")
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil).WithContext(ctx))
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Empty(t, rec.Body.String())
		assert.Equal(t, []time.Duration{30 * time.Second}, tm.Durations())
	})
}

func TestWaitStopsTimer(t *testing.T) {
	ctrl := gomock.NewController(t)
	tm := mock_types.NewMockTime(ctrl)
	timer := time.NewTimer(time.Hour)
	tm.EXPECT().Now().Return(time.Now()).AnyTimes()
	tm.EXPECT().NewTimer(86400 * time.Second).Return(timer)
	srv := server.NewServer(&server.Input{Time: tm})
	h := srv.Handler()
	do(h, http.MethodPost, "/delay-86400")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil).WithContext(ctx))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	// already stopped by the handler
	assert.False(t, timer.Stop())
}

func TestControlEndpoint(t *testing.T) {
	t.Run("accepted", func(t *testing.T) {
		srv, h, logs := setup(t, test.NewFakeTime())
		rec := do(h, http.MethodPost, "/503")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Status changed to Status(503 Service Unavailable)\n", rec.Body.String())
		assert.Equal(t, behavior.Status{Code: 503}, srv.Store().Snapshot())
		assert.Contains(t, logs.Messages(), "behavior changed")
	})
	t.Run("rejected", func(t *testing.T) {
		for _, token := range []string{"not-a-status", "delay-abc", "delay-1-2", "42", "100", "103"} {
			srv, h, logs := setup(t, test.NewFakeTime())
			do(h, http.MethodPost, "/404")
			rec := do(h, http.MethodPost, "/"+token)
			assert.Equal(t, http.StatusUnprocessableEntity, rec.Code, token)
			assert.Contains(t, rec.Body.String(), "invalid behavior '"+token+"'", token)
			assert.Equal(t, behavior.Status{Code: 404}, srv.Store().Snapshot(), token)
			assert.Equal(t, http.StatusNotFound, do(h, http.MethodGet, "/").Code, token)
			assert.Contains(t, logs.Messages(), "behavior change rejected", token)
		}
	})
	t.Run("re-post is idempotent", func(t *testing.T) {
		tm := test.NewFakeTime()
		_, h, _ := setup(t, tm)
		do(h, http.MethodPost, "/delay-4")
		do(h, http.MethodPost, "/delay-4")
		get := do(h, http.MethodGet, "/")
		assert.Equal(t, "Slept for 4 sec\n", get.Body.String())
		assert.Equal(t, []time.Duration{4 * time.Second}, tm.Durations())
	})
}

func TestRouting(t *testing.T) {
	_, h, _ := setup(t, test.NewFakeTime())
	assert.Equal(t, http.StatusNotFound, do(h, http.MethodGet, "/foo/bar").Code)
	assert.Equal(t, http.StatusMethodNotAllowed, do(h, http.MethodGet, "/foo").Code)
	assert.Equal(t, http.StatusNotFound, do(h, http.MethodPost, "/foo/bar").Code)
	assert.Equal(t, http.StatusMethodNotAllowed, do(h, http.MethodPut, "/").Code)
	assert.Equal(t, http.StatusMethodNotAllowed, do(h, http.MethodGet, "/500").Code)
}

func TestRequestID(t *testing.T) {
	_, h, _ := setup(t, test.NewFakeTime())
	t.Run("generated", func(t *testing.T) {
		rec := do(h, http.MethodGet, "/")
		assert.Len(t, rec.Header().Get("X-Request-Id"), 36)
	})
	t.Run("propagated", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Request-Id", "abc")
		h.ServeHTTP(rec, req)
		assert.Equal(t, "abc", rec.Header().Get("X-Request-Id"))
	})
}

func TestRecoverer(t *testing.T) {
	srv, _, logs := setup(t, test.NewFakeTime())
	srv.Store().Replace(behavior.Timeout{})
	h := srv.Recoverer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))
	rec := do(h, http.MethodGet, "/")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, behavior.Default(), srv.Store().Snapshot())
	assert.Contains(t, logs.Messages(), "handler panicked. behavior reset to initial")
}

func TestRecovererKeepsWrittenStatus(t *testing.T) {
	srv, _, logs := setup(t, test.NewFakeTime())
	h := srv.Recoverer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusAccepted)
		panic("boom")
	}))
	rec := do(h, http.MethodGet, "/")
	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Equal(t, behavior.Default(), srv.Store().Snapshot())
	assert.Contains(t, logs.Messages(), "handler panicked. behavior reset to initial")
}

func TestMetrics(t *testing.T) {
	m := metrics.NewMetrics()
	h := server.NewServer(&server.Input{Time: test.NewFakeTime(), Metrics: m}).Handler()
	do(h, http.MethodGet, "/")
	do(h, http.MethodPost, "/delay-1")
	do(h, http.MethodPost, "/nope")
	do(h, http.MethodHead, "/")
	assert.Equal(t, 2, testutil.CollectAndCount(m.Registry(), "mockcage_requests_total"))
	assert.Equal(t, 2, testutil.CollectAndCount(m.Registry(), "mockcage_behavior_changes_total"))
	assert.Equal(t, 1, testutil.CollectAndCount(m.Registry(), "mockcage_wait_seconds"))
}

func TestConcurrentRequests(t *testing.T) {
	tm := test.NewGatedTime()
	defer tm.Release()
	srv := server.NewServer(&server.Input{Time: tm})
	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()
	client := &http.Client{Timeout: 10 * time.Second}

	post := func(token string) *http.Response {
		resp, err := client.Post(ts.URL+"/"+token, "text/plain", nil)
		if !assert.NoError(t, err) {
			t.FailNow()
		}
		return resp
	}
	resp := post("delay-5")
	resp.Body.Close()

	type result struct {
		code int
		body string
		err  error
	}
	slow := make(chan result, 1)
	go func() {
		resp, err := client.Get(ts.URL)
		if err != nil {
			slow <- result{err: err}
			return
		}
		defer resp.Body.Close()
		b, err := io.ReadAll(resp.Body)
		slow <- result{code: resp.StatusCode, body: string(b), err: err}
	}()
	select {
	case d := <-tm.Started():
		assert.Equal(t, 5*time.Second, d)
	case <-time.After(5 * time.Second):
		t.Fatal("slow request did not start waiting")
	}

	// The sleeping request must not hold up others.
	resp = post("503")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()
	resp, err := client.Get(ts.URL)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	resp.Body.Close()

	tm.Release()
	select {
	case r := <-slow:
		assert.NoError(t, r.err)
		assert.Equal(t, http.StatusOK, r.code)
		assert.Equal(t, "Slept for 5 sec\n", r.body)
	case <-time.After(5 * time.Second):
		t.Fatal("slow request did not finish")
	}
}

func TestServe(t *testing.T) {
	t.Run("serves until the context is done", func(t *testing.T) {
		tm := test.NewGatedTime()
		defer tm.Release()
		l, _ := test.NewLogger()
		srv := server.NewServer(&server.Input{Time: tm, Log: l})
		ln, err := net.Listen("tcp", "127.0.0.1:0")
		if !assert.NoError(t, err) {
			return
		}
		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan error, 1)
		go func() {
			done <- srv.Serve(ctx, ln)
		}()
		url := "http://" + ln.Addr().String()
		resp, err := http.Post(url+"/timeout", "text/plain", strings.NewReader(""))
		if !assert.NoError(t, err) {
			cancel()
			return
		}
		resp.Body.Close()

		held := make(chan error, 1)
		go func() {
			resp, err := http.Get(url)
			if err == nil {
				resp.Body.Close()
			}
			held <- err
		}()
		<-tm.Started()
		cancel()
		select {
		case err := <-done:
			assert.NoError(t, err)
		case <-time.After(10 * time.Second):
			t.Fatal("Serve did not return")
		}
		select {
		case <-held:
		case <-time.After(10 * time.Second):
			t.Fatal("held request was not released")
		}
	})
	t.Run("bind error", func(t *testing.T) {
		ln, err := net.Listen("tcp", "127.0.0.1:0")
		if !assert.NoError(t, err) {
			return
		}
		defer ln.Close()
		l, _ := test.NewLogger()
		srv := server.NewServer(&server.Input{Addr: ln.Addr().String(), Log: l})
		err = srv.Run(context.Background())
		assert.ErrorContains(t, err, "failed to listen on "+ln.Addr().String())
	})
}
