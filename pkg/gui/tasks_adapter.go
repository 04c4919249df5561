package gui

import (
	"context"
	"time"

	"github.com/jesseduffield/gocui"
	"github.com/jesseduffield/lazysnapper/pkg/tasks"
)

func (gui *Gui) QueueTask(f func(ctx context.Context)) error {
	return gui.taskManager.NewTask(f)
}

// mainViewTask renders into the main view. wrap and autoscroll are applied to
// the view before run starts.
type mainViewTask struct {
	wrap       bool
	autoscroll bool
	run        func(ctx context.Context)
}

func (gui *Gui) newMainViewTask(opts mainViewTask) tasks.TaskFunc {
	return func(ctx context.Context) {
		mainView := gui.Views.Main
		gui.g.Update(func(*gocui.Gui) error {
			mainView.Autoscroll = opts.autoscroll
			mainView.Wrap = opts.wrap
			return nil
		})

		opts.run(ctx)
	}
}

// assumes it's cheap to obtain the content. Use NewLoadingTask when snapper
// has to be asked.
func (gui *Gui) NewSimpleRenderStringTask(getContent func() string) tasks.TaskFunc {
	return gui.newMainViewTask(mainViewTask{
		wrap: gui.Config.UserConfig.Gui.WrapMainPanel,
		run: func(ctx context.Context) {
			_ = gui.RenderStringMain(getContent())
		},
	})
}

// NewLoadingTask shows a placeholder while getContent runs snapper, then the
// result. Nothing is rendered if the task was superseded in the meantime.
func (gui *Gui) NewLoadingTask(getContent func(ctx context.Context) string) tasks.TaskFunc {
	return gui.newMainViewTask(mainViewTask{
		wrap: gui.Config.UserConfig.Gui.WrapMainPanel,
		run: func(ctx context.Context) {
			_ = gui.RenderStringMain(gui.Tr.LoadingDiff)

			content := getContent(ctx)
			if ctx.Err() != nil {
				return
			}

			_ = gui.RenderStringMain(content)
		},
	})
}

// newRefreshingTask renders getContent straight away and then once per
// interval until the task is replaced. The view is only rewritten when the
// content changed so that the user's scroll position survives.
func (gui *Gui) newRefreshingTask(interval time.Duration, getContent func() string) tasks.TaskFunc {
	return gui.newMainViewTask(mainViewTask{
		run: func(ctx context.Context) {
			ticker := time.NewTicker(interval)
			defer ticker.Stop()

			last := getContent()
			_ = gui.RenderStringMain(last)

			for {
				select {
				case <-ctx.Done():
					gui.Log.Info("stopping refreshing task")
					return
				case <-ticker.C:
					if content := getContent(); content != last {
						last = content
						_ = gui.RenderStringMain(content)
					}
				}
			}
		},
	})
}
