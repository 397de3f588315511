package handlers

import (
	"context"

	"github.com/sindhujaReddy244/Hacking-Scl-Task/internal/models"
	"github.com/sindhujaReddy244/Hacking-Scl-Task/internal/pagination"
)

type mockAccountService struct {
	signupFn func(ctx context.Context, username, password string) error
	loginFn  func(ctx context.Context, username, password string) (string, error)
}

func (m *mockAccountService) Signup(ctx context.Context, username, password string) error {
	if m.signupFn != nil {
		return m.signupFn(ctx, username, password)
	}
	return nil
}

func (m *mockAccountService) Login(ctx context.Context, username, password string) (string, error) {
	if m.loginFn != nil {
		return m.loginFn(ctx, username, password)
	}
	return "", nil
}

type mockMessageService struct {
	postFn     func(ctx context.Context, author, content string) (models.Message, error)
	listPageFn func(ctx context.Context, page int) (pagination.Page[models.Message], error)
}

func (m *mockMessageService) Post(ctx context.Context, author, content string) (models.Message, error) {
	if m.postFn != nil {
		return m.postFn(ctx, author, content)
	}
	return models.Message{}, nil
}

func (m *mockMessageService) ListPage(ctx context.Context, page int) (pagination.Page[models.Message], error) {
	if m.listPageFn != nil {
		return m.listPageFn(ctx, page)
	}
	return pagination.Page[models.Message]{}, nil
}
