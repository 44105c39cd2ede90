package helpers

import (
	"fmt"
	"io/ioutil"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFoldErrors(t *testing.T) {
	t.Parallel()

	e1 := fmt.Errorf("media root missing")
	assert.NoError(t, FoldErrors(nil))
	assert.NoError(t, FoldErrors([]error{nil, nil}))
	assert.Equal(t, e1, FoldErrors([]error{nil, e1}))
	assert.EqualError(t, FoldErrors([]error{e1, fmt.Errorf("tele queue")}), "media root missing\ntele queue")
}

func TestWrapErrChan(t *testing.T) {
	t.Parallel()

	wg := sync.WaitGroup{}
	errch := make(chan error, 3)
	wg.Add(3)
	go WrapErrChan(&wg, errch, func() error { return nil })
	go WrapErrChan(&wg, errch, func() error { return fmt.Errorf("input") })
	go WrapErrChan(&wg, errch, func() error { return nil })
	wg.Wait()
	close(errch)
	assert.EqualError(t, FoldErrChan(errch), "input")
}

func TestIntDefault(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 30*time.Second, IntSecondDefault(0, 30*time.Second))
	assert.Equal(t, 7*time.Second, IntSecondDefault(7, 30*time.Second))
	assert.Equal(t, 2500*time.Millisecond, IntMillisecondDefault(-1, 2500*time.Millisecond))
	assert.Equal(t, 1500*time.Millisecond, IntMillisecondDefault(1500, 2500*time.Millisecond))
}

func TestBackoff(t *testing.T) {
	t.Parallel()

	b := Backoff{Min: 100 * time.Millisecond, Max: time.Second, K: 2}
	assert.Equal(t, time.Duration(0), b.DelayBefore())
	b.Failure()
	assert.Equal(t, 100*time.Millisecond, b.Next())
	b.Failure()
	b.Failure()
	assert.Equal(t, 400*time.Millisecond, b.Next())
	for i := 0; i < 10; i++ {
		b.Failure()
	}
	assert.Equal(t, time.Second, b.Next())
	assert.True(t, b.DelayBefore() > 0)
	b.Update(true)
	assert.Equal(t, time.Duration(0), b.DelayBefore())
}

func TestMockHTTP(t *testing.T) {
	t.Parallel()

	m := &MockHTTP{Body: []byte(`{"text":"ok"}`)}
	resp, err := m.Client().Get("http://booth.invalid/api")
	require.NoError(t, err)
	b, err := ioutil.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, `{"text":"ok"}`, string(b))

	m = &MockHTTP{Err: fmt.Errorf("network down")}
	_, err = m.Client().Get("http://booth.invalid/api")
	assert.Error(t, err)
}
