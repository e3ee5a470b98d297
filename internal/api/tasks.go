package api

import (
	"fmt"
	"strconv"
	"time"
)

const tasksPath = "/api/tareas"

// ListTasks returns every task of the current user.
func (c *Client) ListTasks() ([]Task, error) {
	tasks := make([]Task, 0)
	if err := c.Get(tasksPath, &tasks); err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

// ListTasksByDate returns the tasks dated on the given YYYY-MM-DD day.
func (c *Client) ListTasksByDate(date string) ([]Task, error) {
	if _, err := time.Parse(DateLayout, date); err != nil {
		return nil, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", date)
	}

	tasks := make([]Task, 0)
	if err := c.Get(tasksPath+"/fecha/"+date, &tasks); err != nil {
		return nil, fmt.Errorf("failed to list tasks for %s: %w", date, err)
	}
	return tasks, nil
}

// CreateTask creates a new task. Servers that only acknowledge the creation
// with an id get the remaining fields filled in from the request.
func (c *Client) CreateTask(req CreateTaskRequest) (*Task, error) {
	var task Task
	if err := c.Post(tasksPath, req, &task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	if task.Titulo == "" {
		task.Titulo = req.Titulo
		task.Descripcion = req.Descripcion
		task.Importancia = req.Importancia
		task.Status = req.Status
		task.Enlaces = req.Enlaces
		task.Contactos = req.Contactos
		if req.Fecha != nil {
			task.Fecha = *req.Fecha
		}
		if req.Asunto != nil {
			task.Asunto = *req.Asunto
		}
	}
	return &task, nil
}

// UpdateTask applies a partial update to a task.
func (c *Client) UpdateTask(id int, req UpdateTaskRequest) (*Task, error) {
	var task Task
	if err := c.Put(taskPath(id), req, &task); err != nil {
		return nil, fmt.Errorf("failed to update task %d: %w", id, err)
	}
	if task.ID == 0 {
		task.ID = id
	}
	return &task, nil
}

// DeleteTask deletes a task.
func (c *Client) DeleteTask(id int) error {
	if err := c.Delete(taskPath(id)); err != nil {
		return fmt.Errorf("failed to delete task %d: %w", id, err)
	}
	return nil
}

func taskPath(id int) string {
	return tasksPath + "/" + strconv.Itoa(id)
}
