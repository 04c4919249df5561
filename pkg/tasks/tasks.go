package tasks

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/jesseduffield/lazysnapper/pkg/i18n"
	"github.com/sasha-s/go-deadlock"
	"github.com/sirupsen/logrus"
)

// TaskFunc renders something to the main view until ctx is cancelled
type TaskFunc func(ctx context.Context)

const closeTimeout = 3 * time.Second

// TaskManager runs one main view task at a time. Queueing a new task cancels
// the current one and waits for it to return first. When tasks are queued
// faster than they stop, only the newest one gets to run.
type TaskManager struct {
	Log *logrus.Entry
	Tr  *i18n.TranslationSet

	// held while swapping the running task
	swapMutex deadlock.Mutex
	running   *runningTask

	generationMutex deadlock.Mutex
	generation      int
}

type runningTask struct {
	cancel context.CancelFunc
	done   chan struct{}
	mutex  deadlock.Mutex
	halted bool
}

func NewTaskManager(log *logrus.Entry, translationSet *i18n.TranslationSet) *TaskManager {
	return &TaskManager{Log: log, Tr: translationSet}
}

func (t *TaskManager) nextGeneration() int {
	t.generationMutex.Lock()
	defer t.generationMutex.Unlock()
	t.generation++
	return t.generation
}

func (t *TaskManager) isLatest(generation int) bool {
	t.generationMutex.Lock()
	defer t.generationMutex.Unlock()
	return generation == t.generation
}

// NewTask queues f. It returns straight away; f starts once the previous task
// has returned.
func (t *TaskManager) NewTask(f TaskFunc) error {
	generation := t.nextGeneration()

	go func() {
		t.swapMutex.Lock()
		defer t.swapMutex.Unlock()

		if !t.isLatest(generation) {
			return
		}

		if t.running != nil {
			t.Log.Debug("stopping previous main view task")
			t.running.stop()
		}

		ctx, cancel := context.WithCancel(context.Background())
		task := &runningTask{cancel: cancel, done: make(chan struct{})}
		t.running = task

		go func() {
			defer close(task.done)
			f(ctx)
		}()
	}()

	return nil
}

// Close stops whatever task is running. A task that ignores its context for
// longer than closeTimeout is abandoned.
func (t *TaskManager) Close() {
	t.swapMutex.Lock()
	task := t.running
	t.swapMutex.Unlock()

	if task == nil {
		return
	}

	stopped := make(chan struct{})
	go func() {
		task.stop()
		close(stopped)
	}()

	select {
	case <-stopped:
	case <-time.After(closeTimeout):
		t.Log.Warn("main view task did not stop in time")
		fmt.Fprintln(os.Stderr, t.Tr.CannotKillChildError)
	}
}

// stop cancels the task and blocks until it has returned. Safe to call twice.
func (r *runningTask) stop() {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	if r.halted {
		return
	}
	r.cancel()
	<-r.done
	r.halted = true
}
