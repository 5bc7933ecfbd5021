// Package task polls asynchronous vCloud Director tasks to completion.
//
// A Monitor fetches task state through a Getter, implemented by
// client.Client, and blocks until the task reaches a target status, a
// fail status, the wait timeout, or context cancellation:
//
//	monitor := task.NewMonitor(c)
//	done, err := monitor.WaitForSuccess(ctx, t,
//		task.WithTimeout(5*time.Minute),
//		task.WithProgress(func(t *model.Task) {
//			if t.Progress != nil {
//				fmt.Printf("%d%%\n", *t.Progress)
//			}
//		}),
//	)
//
// A task that reaches a fail status returns *FailedError carrying the
// server's structured error; an exhausted timeout returns *TimeoutError.
package task
