package controllers

import (
	"bistro-boss/models"
	"bistro-boss/repositories"
	"context"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var errStorage = errors.New("connection reset")

type failingUsers struct{}

func (failingUsers) FindAll(context.Context) ([]models.User, error) { return nil, errStorage }
func (failingUsers) FindByEmail(context.Context, string) (*models.User, error) {
	return nil, errStorage
}
func (failingUsers) Create(context.Context, models.User) (*models.InsertResult, error) {
	return nil, errStorage
}
func (failingUsers) PromoteToAdmin(context.Context, primitive.ObjectID) (*models.UpdateResult, error) {
	return nil, errStorage
}

type failingCarts struct{}

func (failingCarts) FindByEmail(context.Context, string) ([]models.CartEntry, error) {
	return nil, errStorage
}
func (failingCarts) Create(context.Context, models.CartEntry) (*models.InsertResult, error) {
	return nil, errStorage
}
func (failingCarts) Delete(context.Context, primitive.ObjectID, string) (*models.DeleteResult, error) {
	return nil, errStorage
}

// insertFailingUsers finds nobody and fails every insert with err
type insertFailingUsers struct {
	failingUsers
	err error
}

func (insertFailingUsers) FindByEmail(context.Context, string) (*models.User, error) {
	return nil, repositories.ErrNotFound
}
func (u insertFailingUsers) Create(context.Context, models.User) (*models.InsertResult, error) {
	return nil, u.err
}
