package ingest

import (
	"context"
	"sync"
	"time"
)

// WorkerPool processes multiple documents in parallel. Each document
// is an independent job: the catalog and lexicon are immutable, so
// workers share nothing mutable.
type WorkerPool struct {
	ctx        context.Context
	cancel     context.CancelFunc
	tasks      chan Task
	results    chan TaskResult
	wg         sync.WaitGroup
	engine     *Engine
	numWorkers int

	mu        sync.RWMutex
	completed int
	total     int
}

// Task identifies one document to process.
type Task struct {
	ID       string
	Filename string
}

// TaskResult carries a processed document or its failure.
type TaskResult struct {
	Task     Task
	Result   *Result
	Err      error
	Duration time.Duration
}

// NewWorkerPool creates a pool running numWorkers concurrent document
// jobs against the given engine.
func NewWorkerPool(ctx context.Context, engine *Engine, numWorkers int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = 4
	}

	ctx, cancel := context.WithCancel(ctx)

	return &WorkerPool{
		ctx:        ctx,
		cancel:     cancel,
		tasks:      make(chan Task, numWorkers*2),
		results:    make(chan TaskResult, numWorkers*2),
		engine:     engine,
		numWorkers: numWorkers,
	}
}

// Start launches the workers.
func (wp *WorkerPool) Start() {
	for i := 0; i < wp.numWorkers; i++ {
		wp.wg.Add(1)
		go wp.worker()
	}
}

func (wp *WorkerPool) worker() {
	defer wp.wg.Done()

	for {
		select {
		case <-wp.ctx.Done():
			return
		case task, ok := <-wp.tasks:
			if !ok {
				return
			}

			start := time.Now()
			result, err := wp.engine.Process(wp.ctx, task.Filename)

			wp.mu.Lock()
			wp.completed++
			wp.mu.Unlock()

			select {
			case wp.results <- TaskResult{Task: task, Result: result, Err: err, Duration: time.Since(start)}:
			case <-wp.ctx.Done():
				return
			}
		}
	}
}

// Submit queues a task. Call Finish after the last one.
func (wp *WorkerPool) Submit(task Task) {
	wp.mu.Lock()
	wp.total++
	wp.mu.Unlock()

	wp.tasks <- task
}

// Finish signals that no more tasks are coming and closes the results
// channel once all workers drain.
func (wp *WorkerPool) Finish() {
	close(wp.tasks)

	go func() {
		wp.wg.Wait()
		close(wp.results)
	}()
}

// Results returns the channel of completed tasks.
func (wp *WorkerPool) Results() <-chan TaskResult {
	return wp.results
}

// Progress reports completed vs submitted task counts.
func (wp *WorkerPool) Progress() (completed, total int) {
	wp.mu.RLock()
	defer wp.mu.RUnlock()

	return wp.completed, wp.total
}

// Stop cancels in-flight work.
func (wp *WorkerPool) Stop() {
	wp.cancel()
}
