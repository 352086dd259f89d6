// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

// Package jobs processes batches of tasks with a bounded number of parallel workers.
package jobs

import (
	"context"
	"fmt"
	"sync"

	"github.com/hashicorp/go-multierror"
)

// Job processes a batch of tasks in parallel and reports when all are done
type Job struct {
	// MaxWorkers is the maximum number of workers processing a batch of tasks in parallel
	MaxWorkers int
	// MinWorkers is the minimum number of workers processing a batch of tasks in parallel
	MinWorkers int
	// Worker for processing tasks
	Worker Worker
	// FailFast controls the behavior of this Job upon errors. If set to true, it will quit
	// further processing upon the first error that occurs. For fault tolerant applications
	// use false.
	FailFast bool
}

// Worker declares workers functional interface
type Worker interface {
	// Work processes the task within the given context.
	Work(ctx context.Context, task interface{}) error
}

// The WorkerFunc type is an adapter to allow the use of
// ordinary functions as Workers.
type WorkerFunc func(ctx context.Context, task interface{}) error

// Work calls f(ctx, task).
func (f WorkerFunc) Work(ctx context.Context, task interface{}) error {
	return f(ctx, task)
}

// TaskError is the error of a single task
type TaskError struct {
	Task interface{}
	Err  error
}

func (e *TaskError) Error() string {
	return fmt.Sprintf("%v: %v", e.Task, e.Err)
}

func (e *TaskError) Unwrap() error {
	return e.Err
}

// feeds tasks to the returned channel until all are sent or ctx is done
func (j *Job) allocate(ctx context.Context, tasks []interface{}) (<-chan interface{}, <-chan error) {
	taskCh := make(chan interface{})
	errCh := make(chan error, 1)
	go func() {
		defer close(taskCh)
		defer close(errCh)
		for _, task := range tasks {
			select {
			case taskCh <- task:
			case <-ctx.Done():
				errCh <- ctx.Err()
				return
			}
		}
	}()
	return taskCh, errCh
}

// processes tasks until the tasks channel is closed or ctx is done
func (j *Job) process(ctx context.Context, taskCh <-chan interface{}) <-chan error {
	errCh := make(chan error)
	go func() {
		defer close(errCh)
		for {
			select {
			case task, ok := <-taskCh:
				if !ok {
					return
				}
				if err := j.Worker.Work(ctx, task); err != nil {
					select {
					case errCh <- &TaskError{Task: task, Err: err}:
					case <-ctx.Done():
						return
					}
				}
			case <-ctx.Done():
				return
			}
		}
	}()
	return errCh
}

// Dispatch spawns a set of workers processing in parallel the supplied tasks
// and blocks until they are done. With FailFast the first error cancels the
// remaining tasks and is returned, otherwise all errors are aggregated.
func (j *Job) Dispatch(ctx context.Context, tasks []interface{}) error {
	if j.MaxWorkers < j.MinWorkers {
		panic(fmt.Sprintf("Job maxWorkers < minWorkers: %d < %d", j.MaxWorkers, j.MinWorkers))
	}
	if len(tasks) == 0 {
		return nil
	}
	workersCount := len(tasks)
	if workersCount > j.MaxWorkers {
		workersCount = j.MaxWorkers
	}
	if workersCount < j.MinWorkers {
		workersCount = j.MinWorkers
	}
	if workersCount < 1 {
		workersCount = 1
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	taskCh, allocErrCh := j.allocate(ctx, tasks)
	errChs := make([]<-chan error, 0, workersCount)
	for i := 0; i < workersCount; i++ {
		errChs = append(errChs, j.process(ctx, taskCh))
	}

	var errs *multierror.Error
	merged := mergeErrors(errChs...)
	for err := range merged {
		if j.FailFast {
			cancel()
			// wait for the workers to exit
			for range merged {
			}
			return err
		}
		errs = multierror.Append(errs, err)
	}
	if err := <-allocErrCh; err != nil {
		errs = multierror.Append(errs, err)
	}
	return errs.ErrorOrNil()
}

// merges errors from multiple error channels into a single channel
func mergeErrors(channels ...<-chan error) <-chan error {
	var wg sync.WaitGroup
	errCh := make(chan error)
	output := func(ch <-chan error) {
		defer wg.Done()
		for err := range ch {
			errCh <- err
		}
	}
	wg.Add(len(channels))
	for _, ch := range channels {
		go output(ch)
	}
	go func() {
		wg.Wait()
		close(errCh)
	}()
	return errCh
}
