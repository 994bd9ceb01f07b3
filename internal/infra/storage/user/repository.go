package user

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/m04kA/CWT-SchedulingService/internal/domain"
)

// Repository read-only репозиторий пользователей поверх коллекции users
// Используется только для резолва отображаемых имен клиентов
type Repository struct {
	store RecordStore
	log   Logger
}

// NewRepository создает репозиторий пользователей
func NewRepository(store RecordStore, log Logger) *Repository {
	return &Repository{store: store, log: log}
}

// GetByID возвращает пользователя по идентификатору
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	users, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	for _, u := range users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, ErrUserNotFound
}

// GetByEmail возвращает пользователя по email
func (r *Repository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	users, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	for _, u := range users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, ErrUserNotFound
}

func (r *Repository) load(ctx context.Context) ([]*domain.User, error) {
	recs, err := r.store.ReadCollection(ctx, domain.CollectionUsers)
	if err != nil {
		return nil, fmt.Errorf("%w: load - read collection: %v", ErrStorage, err)
	}

	users := make([]*domain.User, 0, len(recs))
	for _, raw := range recs {
		var u domain.User
		if err := json.Unmarshal(raw, &u); err != nil {
			r.log.Warn("load: skipping malformed user record: %v", err)
			continue
		}
		users = append(users, &u)
	}

	return users, nil
}
