package gui

import (
	"time"

	"github.com/jesseduffield/gocui"
	"github.com/jesseduffield/lazysnapper/pkg/utils"
	"github.com/samber/lo"
	"github.com/sasha-s/go-deadlock"
)

type statusKind int

const (
	statusToast statusKind = iota
	statusWaiting
)

const (
	toastDuration   = 2 * time.Second
	spinnerInterval = 50 * time.Millisecond
)

// appStatus is one line for the bottom right corner. It is found again by its
// key, so the text can change while it is shown, e.g. to report progress.
type appStatus struct {
	key  string
	text string
	kind statusKind
}

// statusManager keeps a stack of statuses; only the newest one is shown
type statusManager struct {
	lock     deadlock.Mutex
	statuses []appStatus
}

func (m *statusManager) withoutKey(key string) []appStatus {
	return lo.Filter(m.statuses, func(status appStatus, _ int) bool { return status.key != key })
}

func (m *statusManager) removeStatus(key string) {
	m.lock.Lock()
	defer m.lock.Unlock()

	m.statuses = m.withoutKey(key)
}

// addStatus puts the status on top, replacing any older one with its key
func (m *statusManager) addStatus(key string, text string, kind statusKind) {
	m.lock.Lock()
	defer m.lock.Unlock()

	m.statuses = append([]appStatus{{key: key, text: text, kind: kind}}, m.withoutKey(key)...)
}

func (m *statusManager) setStatusText(key string, text string) {
	m.lock.Lock()
	defer m.lock.Unlock()

	for i := range m.statuses {
		if m.statuses[i].key == key {
			m.statuses[i].text = text
		}
	}
}

// getStatusString renders the top status. A waiting status gets a spinner.
func (m *statusManager) getStatusString() string {
	m.lock.Lock()
	defer m.lock.Unlock()

	if len(m.statuses) == 0 {
		return ""
	}

	top := m.statuses[0]
	if top.kind == statusWaiting {
		return top.text + " " + utils.Loader()
	}
	return top.text
}

// showToast shows message in the app status for a couple of seconds
func (gui *Gui) showToast(message string) {
	gui.statusManager.addStatus(message, message, statusToast)
	gui.renderAppStatus()

	time.AfterFunc(toastDuration, func() {
		gui.statusManager.removeStatus(message)
		gui.renderAppStatus()
	})
}

func (gui *Gui) renderAppStatus() {
	if gui.g == nil {
		return
	}
	gui.reRenderString("appStatus", gui.statusManager.getStatusString())
}

// spinAppStatus keeps redrawing the app status, so the spinner turns, until
// done is closed
func (gui *Gui) spinAppStatus(done <-chan struct{}) {
	ticker := time.NewTicker(spinnerInterval)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			gui.renderAppStatus()
		}
	}
}

// WithWaitingStatus runs f in the background with name and a spinner in the
// app status. An error from f opens the error panel.
func (gui *Gui) WithWaitingStatus(name string, f func() error) error {
	go func() {
		gui.statusManager.addStatus(name, name, statusWaiting)
		done := make(chan struct{})
		go gui.spinAppStatus(done)

		err := f()

		close(done)
		gui.statusManager.removeStatus(name)
		gui.renderAppStatus()

		if err != nil {
			gui.g.Update(func(*gocui.Gui) error {
				return gui.createErrorPanel(err.Error())
			})
		}
	}()

	return nil
}
