package service

import (
	"context"
	"testing"
	"time"

	"legal-assistant-be/internal/dto"
	"legal-assistant-be/internal/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func taskFixture(caseId *uuid.UUID, title string, completed bool) *entity.Task {
	return &entity.Task{
		Id:        uuid.New(),
		CaseId:    caseId,
		Title:     title,
		Completed: completed,
		CreatedAt: time.Now(),
	}
}

func TestTaskService_ListCompletedFilter(t *testing.T) {
	caseId := uuid.New()

	uow := newFakeUow()
	uow.tasks.tasks = []*entity.Task{
		taskFixture(&caseId, "duruşma hazırlığı", false),
		taskFixture(&caseId, "ihtarname gönder", true),
		taskFixture(nil, "arşiv düzeni", true),
	}

	svc := NewTaskService(&fakeUowFactory{uow: uow})

	all, err := svc.List(context.Background(), nil, nil)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	done := true
	completed, err := svc.List(context.Background(), &caseId, &done)
	require.NoError(t, err)
	require.Len(t, completed, 1)
	assert.Equal(t, "ihtarname gönder", completed[0].Title)

	pending := false
	open, err := svc.List(context.Background(), nil, &pending)
	require.NoError(t, err)
	require.Len(t, open, 1)
	assert.Equal(t, "duruşma hazırlığı", open[0].Title)
}

func TestTaskService_Show(t *testing.T) {
	uow := newFakeUow()
	task := taskFixture(nil, "dosya incelemesi", false)
	uow.tasks.tasks = []*entity.Task{task}

	svc := NewTaskService(&fakeUowFactory{uow: uow})

	res, err := svc.Show(context.Background(), task.Id)
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.Equal(t, task.Id, res.Id)
	assert.Equal(t, "dosya incelemesi", res.Title)
}

func TestTaskService_ShowNotFound(t *testing.T) {
	svc := NewTaskService(&fakeUowFactory{uow: newFakeUow()})

	res, err := svc.Show(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Nil(t, res)
}

func TestTaskService_ToggleComplete(t *testing.T) {
	uow := newFakeUow()
	task := taskFixture(nil, "bilirkişi raporu", false)
	uow.tasks.tasks = []*entity.Task{task}

	svc := NewTaskService(&fakeUowFactory{uow: uow})

	res, err := svc.ToggleComplete(context.Background(), task.Id)
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.True(t, res.Completed)
	assert.True(t, task.Completed)

	// A second toggle flips it back
	res, err = svc.ToggleComplete(context.Background(), task.Id)
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.False(t, res.Completed)
}

func TestTaskService_ToggleCompleteNotFound(t *testing.T) {
	svc := NewTaskService(&fakeUowFactory{uow: newFakeUow()})

	res, err := svc.ToggleComplete(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Nil(t, res)
}

func TestTaskService_UpdateNotFound(t *testing.T) {
	svc := NewTaskService(&fakeUowFactory{uow: newFakeUow()})

	res, err := svc.Update(context.Background(), &dto.UpdateTaskRequest{
		Id:    uuid.New(),
		Title: "yok",
	})
	require.NoError(t, err)
	assert.Nil(t, res)
}
