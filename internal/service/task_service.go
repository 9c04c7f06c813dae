package service

import (
	"context"
	"time"

	"legal-assistant-be/internal/dto"
	"legal-assistant-be/internal/entity"
	"legal-assistant-be/internal/repository/specification"
	"legal-assistant-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type ITaskService interface {
	Create(ctx context.Context, req *dto.CreateTaskRequest) (*dto.CreateTaskResponse, error)
	List(ctx context.Context, caseId *uuid.UUID, completed *bool) ([]*dto.ShowTaskResponse, error)
	Show(ctx context.Context, id uuid.UUID) (*dto.ShowTaskResponse, error)
	Update(ctx context.Context, req *dto.UpdateTaskRequest) (*dto.UpdateTaskResponse, error)
	ToggleComplete(ctx context.Context, id uuid.UUID) (*dto.ShowTaskResponse, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

type taskService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewTaskService(uowFactory unitofwork.RepositoryFactory) ITaskService {
	return &taskService{
		uowFactory: uowFactory,
	}
}

func (s *taskService) Create(ctx context.Context, req *dto.CreateTaskRequest) (*dto.CreateTaskResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	// Tasks may reference a case but never require one
	if req.CaseId != nil {
		c, err := uow.CaseRepository().FindOne(ctx, specification.ByID{ID: *req.CaseId})
		if err != nil {
			return nil, err
		}
		if c == nil {
			return nil, nil
		}
	}

	task := entity.Task{
		Id:          uuid.New(),
		CaseId:      req.CaseId,
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
		CreatedAt:   time.Now(),
	}

	if err := uow.TaskRepository().Create(ctx, &task); err != nil {
		return nil, err
	}

	return &dto.CreateTaskResponse{Id: task.Id}, nil
}

func (s *taskService) List(ctx context.Context, caseId *uuid.UUID, completed *bool) ([]*dto.ShowTaskResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	specs := []specification.Specification{
		specification.OrderBy{Field: "created_at", Desc: true},
	}
	if caseId != nil {
		specs = append(specs, specification.ByCaseID{CaseID: *caseId})
	}
	if completed != nil {
		specs = append(specs, specification.FilterBy{Field: "completed", Value: *completed})
	}

	tasks, err := uow.TaskRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.ShowTaskResponse, len(tasks))
	for i, t := range tasks {
		res[i] = toShowTaskResponse(t)
	}
	return res, nil
}

func (s *taskService) Show(ctx context.Context, id uuid.UUID) (*dto.ShowTaskResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	task, err := uow.TaskRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, nil
	}
	return toShowTaskResponse(task), nil
}

// ToggleComplete flips the completed flag and returns the updated task.
func (s *taskService) ToggleComplete(ctx context.Context, id uuid.UUID) (*dto.ShowTaskResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	task, err := uow.TaskRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, nil
	}

	task.Completed = !task.Completed

	if err := uow.TaskRepository().Update(ctx, task); err != nil {
		return nil, err
	}
	return toShowTaskResponse(task), nil
}

func toShowTaskResponse(t *entity.Task) *dto.ShowTaskResponse {
	return &dto.ShowTaskResponse{
		Id:          t.Id,
		CaseId:      t.CaseId,
		Title:       t.Title,
		Description: t.Description,
		Completed:   t.Completed,
		DueDate:     t.DueDate,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

func (s *taskService) Update(ctx context.Context, req *dto.UpdateTaskRequest) (*dto.UpdateTaskResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	task, err := uow.TaskRepository().FindOne(ctx, specification.ByID{ID: req.Id})
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, nil
	}

	task.Title = req.Title
	task.Description = req.Description
	task.Completed = req.Completed
	task.DueDate = req.DueDate

	if err := uow.TaskRepository().Update(ctx, task); err != nil {
		return nil, err
	}

	return &dto.UpdateTaskResponse{Id: task.Id}, nil
}

func (s *taskService) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	task, err := uow.TaskRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return false, err
	}
	if task == nil {
		return false, nil
	}

	if err := uow.TaskRepository().Delete(ctx, id); err != nil {
		return false, err
	}
	return true, nil
}
