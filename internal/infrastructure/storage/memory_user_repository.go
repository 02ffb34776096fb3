package storage

import (
	"context"
	"sync"

	"care-label-reader/internal/domain/entity"
	"care-label-reader/internal/domain/port"
)

// MemoryUserRepository in-memory хранилище пользователей. Наружу отдаются
// копии, поэтому обработчики разных сообщений не делят одну структуру.
type MemoryUserRepository struct {
	mu    sync.Mutex
	users map[int64]entity.User
}

// NewMemoryUserRepository создаёт новое in-memory хранилище
func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{
		users: make(map[int64]entity.User),
	}
}

// Get возвращает пользователя по ID, создаёт нового если не найден
func (r *MemoryUserRepository) Get(ctx context.Context, userID, chatID int64) (*entity.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[userID]
	if !ok {
		user = *entity.NewUser(userID, chatID)
		r.users[userID] = user
	}
	return clone(user), nil
}

// Save сохраняет состояние пользователя
func (r *MemoryUserRepository) Save(ctx context.Context, user *entity.User) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	r.users[user.ID] = *clone(*user)
	r.mu.Unlock()
	return nil
}

// UpdateState обновляет состояние пользователя, неизвестные ID пропускаются
func (r *MemoryUserRepository) UpdateState(ctx context.Context, userID int64, state entity.UserState) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if user, ok := r.users[userID]; ok {
		user.SetState(state)
		r.users[userID] = user
	}
	return nil
}

func clone(u entity.User) *entity.User {
	u.LastReading = append([]string(nil), u.LastReading...)
	return &u
}

// Проверка реализации интерфейса
var _ port.UserRepository = (*MemoryUserRepository)(nil)
