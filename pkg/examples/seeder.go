// Package examples seeds two illustrative projects into a freshly
// provisioned workspace: a datacenter under development and an
// operating PV park. The task content is hard coded and purely
// illustrative; due dates are computed relative to the run time.
package examples

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/heliosam/clickup-setup/pkg/builder"
	"github.com/heliosam/clickup-setup/pkg/clickup"
)

// API is the slice of the remote client the seeder needs.
type API interface {
	CreateTask(ctx context.Context, listID string, task clickup.TaskRequest) (string, error)
	CreateSubtask(ctx context.Context, parentID string, task clickup.TaskRequest) (string, error)
}

// Seeder inserts the example projects into an already built structure.
type Seeder struct {
	api API
	st  *builder.Structure
	out io.Writer
	log *logrus.Logger
}

// New wires a seeder over a built structure.
func New(api API, st *builder.Structure, out io.Writer, log *logrus.Logger) *Seeder {
	if out == nil {
		out = io.Discard
	}
	if log == nil {
		log = logrus.New()
	}
	return &Seeder{api: api, st: st, out: out, log: log}
}

// dueIn returns a millisecond-epoch due date N days from now.
func dueIn(days int) int64 {
	return time.Now().Add(time.Duration(days) * 24 * time.Hour).UnixMilli()
}

// createTasks creates a flat batch of tasks in a list. Failures are
// logged and the batch continues.
func (s *Seeder) createTasks(ctx context.Context, listID string, tasks []clickup.TaskRequest) {
	for _, task := range tasks {
		if _, err := s.api.CreateTask(ctx, listID, task); err != nil {
			s.log.Warnf("create task %q failed: %v", task.Name, err)
		}
	}
}

// createProject creates one parent task plus its subtasks in a list.
func (s *Seeder) createProject(ctx context.Context, listID string, parent clickup.TaskRequest, subtasks []clickup.TaskRequest) {
	parentID, err := s.api.CreateTask(ctx, listID, parent)
	if err != nil || parentID == "" {
		s.log.Warnf("create project task %q failed, skipping its subtasks: %v", parent.Name, err)
		return
	}
	for _, sub := range subtasks {
		if _, err := s.api.CreateSubtask(ctx, parentID, sub); err != nil {
			s.log.Warnf("create subtask %q failed: %v", sub.Name, err)
		}
	}
}

// skipExample explains why an example was not seeded.
func (s *Seeder) skipExample(title, reason string) bool {
	fmt.Fprintf(s.out, "\n%s\n", title)
	fmt.Fprintf(s.out, "   ⚠️  %s\n", reason)
	return false
}
