package tasks

import (
	"context"
	"io"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jesseduffield/lazysnapper/pkg/i18n"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func newTestManager() *TaskManager {
	log := logrus.New()
	log.Out = io.Discard
	entry := logrus.NewEntry(log)
	return NewTaskManager(entry, i18n.NewTranslationSet(entry, "en"))
}

func TestNewTaskCancelsPrevious(t *testing.T) {
	manager := newTestManager()

	firstStarted := make(chan struct{})
	firstCancelled := make(chan struct{})
	assert.NoError(t, manager.NewTask(func(ctx context.Context) {
		close(firstStarted)
		<-ctx.Done()
		close(firstCancelled)
	}))

	select {
	case <-firstStarted:
	case <-time.After(time.Second):
		t.Fatal("first task never started")
	}

	secondRan := make(chan struct{})
	assert.NoError(t, manager.NewTask(func(ctx context.Context) {
		close(secondRan)
	}))

	for _, c := range []chan struct{}{firstCancelled, secondRan} {
		select {
		case <-c:
		case <-time.After(time.Second):
			t.Fatal("task queue did not move on")
		}
	}
}

func TestCloseStopsCurrentTask(t *testing.T) {
	manager := newTestManager()

	var stopped int32
	started := make(chan struct{})
	assert.NoError(t, manager.NewTask(func(ctx context.Context) {
		close(started)
		<-ctx.Done()
		atomic.StoreInt32(&stopped, 1)
	}))
	<-started

	manager.Close()
	assert.Equal(t, int32(1), atomic.LoadInt32(&stopped))
}

func TestCloseWithoutTask(t *testing.T) {
	newTestManager().Close()
}
