package repo

import (
	"context"

	"joblink/internal/api/models"
	"joblink/internal/kvstore"
)

type UserRepository struct {
	store kvstore.Store
}

func NewUserRepository(store kvstore.Store) *UserRepository {
	return &UserRepository{store: store}
}

func (slf *UserRepository) Create(ctx context.Context, user *models.User) error {
	return slf.store.Set(ctx, UserKey(user.ID), user)
}

func (slf *UserRepository) FindByID(ctx context.Context, id string) (models.User, error) {
	var user models.User
	err := slf.store.Get(ctx, UserKey(id), &user)
	return user, err
}

func (slf *UserRepository) CreateAccount(ctx context.Context, account *models.Account) error {
	return slf.store.Set(ctx, AccountKey(account.Email), account)
}

func (slf *UserRepository) FindAccount(ctx context.Context, email string) (models.Account, error) {
	var account models.Account
	err := slf.store.Get(ctx, AccountKey(email), &account)
	return account, err
}

func (slf *UserRepository) AccountExists(ctx context.Context, email string) (bool, error) {
	var account models.Account
	err := slf.store.Get(ctx, AccountKey(email), &account)
	if kvstore.IsNotFound(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
