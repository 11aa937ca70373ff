package fdtd

import "sync"

// runAll executes the tasks concurrently and joins before returning. Every
// task runs to completion even when another fails; the first error in task
// order is returned. Classification, injection, and both stepping phases
// all share this fork-join barrier.
func runAll(tasks []func() error) error {
	if len(tasks) == 1 {
		return tasks[0]()
	}
	errs := make([]error, len(tasks))

	var wg sync.WaitGroup
	wg.Add(len(tasks))
	for i, task := range tasks {
		go func(i int, task func() error) {
			defer wg.Done()
			errs[i] = task()
		}(i, task)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
