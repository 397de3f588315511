package services

import (
	"context"
	"sync"
	"time"

	"github.com/sindhujaReddy244/Hacking-Scl-Task/internal/models"
)

// fakeAccountStore is an in-memory AccountStore.
type fakeAccountStore struct {
	mu       sync.Mutex
	accounts map[string]string

	existsErr error
	createErr error
	findErr   error
	creates   int
}

func newFakeAccountStore() *fakeAccountStore {
	return &fakeAccountStore{accounts: map[string]string{}}
}

func (f *fakeAccountStore) Create(_ context.Context, username, hash string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return f.createErr
	}
	if _, ok := f.accounts[username]; ok {
		return models.ErrConflict
	}
	f.accounts[username] = hash
	f.creates++
	return nil
}

func (f *fakeAccountStore) Exists(_ context.Context, username string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.existsErr != nil {
		return false, f.existsErr
	}
	_, ok := f.accounts[username]
	return ok, nil
}

func (f *fakeAccountStore) Find(_ context.Context, username string) (models.Account, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.findErr != nil {
		return models.Account{}, f.findErr
	}
	hash, ok := f.accounts[username]
	if !ok {
		return models.Account{}, models.ErrNotFound
	}
	return models.Account{Username: username, PasswordHash: hash}, nil
}

// fakeMessageStore is an in-memory MessageStore.
type fakeMessageStore struct {
	messages  []models.Message
	appendErr error
	listErr   error
	appends   int
}

func (f *fakeMessageStore) Append(_ context.Context, author, content string) (models.Message, error) {
	f.appends++
	if f.appendErr != nil {
		return models.Message{}, f.appendErr
	}
	m := models.Message{
		ID:        int64(len(f.messages) + 1),
		Username:  author,
		Content:   content,
		CreatedAt: time.Now(),
	}
	f.messages = append(f.messages, m)
	return m, nil
}

func (f *fakeMessageStore) ListAll(context.Context) ([]models.Message, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return append([]models.Message{}, f.messages...), nil
}

func (f *fakeMessageStore) Count(context.Context) (int, error) {
	return len(f.messages), nil
}

// fakeRecorder counts metric calls.
type fakeRecorder struct {
	signups  int
	logins   map[string]int
	posted   int
	rejected map[string]int
	board    int
}

func newFakeRecorder() *fakeRecorder {
	return &fakeRecorder{logins: map[string]int{}, rejected: map[string]int{}}
}

func (r *fakeRecorder) RecordSignup()                  { r.signups++ }
func (r *fakeRecorder) RecordLogin(outcome string)     { r.logins[outcome]++ }
func (r *fakeRecorder) RecordMessagePosted()           { r.posted++ }
func (r *fakeRecorder) RecordAuthRejection(rsn string) { r.rejected[rsn]++ }
func (r *fakeRecorder) SetBoardMessages(n int)         { r.board = n }

// fakePublisher records published events.
type fakePublisher struct {
	actions  []string
	payloads []interface{}
	err      error
}

func (p *fakePublisher) Publish(action string, payload interface{}) error {
	p.actions = append(p.actions, action)
	p.payloads = append(p.payloads, payload)
	return p.err
}
