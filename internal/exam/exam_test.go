package exam

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cradlecare/cradle/internal/roster"
)

func newTestService() (*Service, *time.Time) {
	now := time.Date(2025, 8, 31, 12, 0, 0, 0, time.UTC)
	s := NewService(2*time.Second, roster.NewGenerator(1))
	s.now = func() time.Time { return now }
	return s, &now
}

func Test_Record_beforeConnect(t *testing.T) {
	assert := assert.New(t)

	s, _ := newTestService()
	e := NewExam()

	err := s.Record(e)
	assert.ErrorIs(err, ErrNotConnected)
	assert.Equal(Disconnected, e.State)
	assert.Nil(e.Recording)
}

func Test_Record_whileConnecting(t *testing.T) {
	assert := assert.New(t)

	s, now := newTestService()
	e := NewExam()

	s.Connect(e)
	assert.Equal(Connecting, e.State)

	// delay not yet elapsed
	*now = now.Add(time.Second)
	err := s.Record(e)
	assert.ErrorIs(err, ErrNotConnected)
	assert.Equal(Connecting, e.State)
	assert.Nil(e.Recording)
}

func Test_ConnectRecord(t *testing.T) {
	require := require.New(t)
	assert := assert.New(t)

	s, now := newTestService()
	e := NewExam()

	s.Connect(e)
	*now = now.Add(2 * time.Second)
	s.Refresh(e)
	assert.Equal(Connected, e.State)

	require.NoError(s.Record(e))
	assert.Equal(Recorded, e.State)
	require.NotNil(e.Recording)
	assert.Len(e.Recording.Series, 100)
	assert.GreaterOrEqual(e.Recording.Risk, 10)
	assert.LessOrEqual(e.Recording.Risk, 100)
	assert.NotEmpty(e.Recording.ID)
}

func Test_Record_again(t *testing.T) {
	require := require.New(t)

	s, now := newTestService()
	e := NewExam()

	s.Connect(e)
	*now = now.Add(2 * time.Second)
	require.NoError(s.Record(e))
	first := e.Recording

	// recording again regenerates without reconnecting
	require.NoError(s.Record(e))
	require.NotNil(e.Recording)
	assert.NotEqual(t, first.ID, e.Recording.ID)
}

func Test_Connect_idempotent(t *testing.T) {
	assert := assert.New(t)

	s, now := newTestService()
	e := NewExam()

	s.Connect(e)
	first := e.ConnectedAt

	// a second connect while connecting must not push out the deadline
	*now = now.Add(time.Second)
	s.Connect(e)
	assert.Equal(first, e.ConnectedAt)
	assert.Equal(Connecting, e.State)
}

func Test_Report(t *testing.T) {
	require := require.New(t)
	assert := assert.New(t)

	s, now := newTestService()
	e := NewExam()

	_, err := s.Report(e)
	assert.ErrorIs(err, ErrNoRecording)

	s.Connect(e)
	*now = now.Add(2 * time.Second)
	require.NoError(s.Record(e))

	rec, err := s.Report(e)
	require.NoError(err)
	assert.Equal(e.Recording, rec)
	assert.Equal(Recorded, e.State)
}

func Test_Questionnaire_independent(t *testing.T) {
	assert := assert.New(t)

	e := NewExam()
	e.Questionnaire.Smoke = true
	e.Questionnaire.Notes = "wheezing at night"

	s, _ := newTestService()
	s.Connect(e)

	assert.True(e.Questionnaire.Smoke)
	assert.Equal("wheezing at night", e.Questionnaire.Notes)
}
