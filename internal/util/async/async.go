package async

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Task represents an asynchronous operation with a name and function.
type Task struct {
	Name string
	Func func(context.Context) error
}

// Run executes tasks with at most limit running at once and waits for all
// of them. The returned slice has one entry per task, in input order; nil
// means the task succeeded. A limit below 1 runs tasks sequentially.
//
// Tasks that have not started when ctx is cancelled are not run; their slot
// holds the context error.
//
// Example:
//
//	errs := async.Run(ctx, 4, tasks)
//	for i, err := range errs {
//	    if err != nil {
//	        log.Printf("%s failed: %v", tasks[i].Name, err)
//	    }
//	}
func Run(ctx context.Context, limit int, tasks []Task) []error {
	errs := make([]error, len(tasks))
	if len(tasks) == 0 {
		return errs
	}
	if limit < 1 {
		limit = 1
	}

	// errgroup is used only for its limiter; tasks report through their own
	// slot and always return nil so one failure does not cancel the rest.
	var g errgroup.Group
	g.SetLimit(limit)

	for i, task := range tasks {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				errs[i] = err
				return nil
			}
			errs[i] = task.Func(ctx)
			return nil
		})
	}
	_ = g.Wait()

	return errs
}

// Failed counts non-nil errors.
func Failed(errs []error) int {
	n := 0
	for _, err := range errs {
		if err != nil {
			n++
		}
	}
	return n
}

// Join combines every task error, each wrapped with its task name.
func Join(tasks []Task, errs []error) error {
	var wrapped []error
	for i, err := range errs {
		if err != nil {
			wrapped = append(wrapped, fmt.Errorf("%s: %w", tasks[i].Name, err))
		}
	}
	return errors.Join(wrapped...)
}
