package core

import "context"

// Ports define interfaces for external dependencies.

// UserStorage defines user-related database operations.
//
// GetUserByID and GetUserByEmail only return active users; deactivated
// accounts behave as if they do not exist. CreateUser must surface the
// store's unique-constraint violation on email as ErrUserExists.
type UserStorage interface {
	CreateUser(ctx context.Context, u *User) error
	GetUserByID(ctx context.Context, id string) (*User, error)
	GetUserByEmail(ctx context.Context, email string) (*User, error)
	ListUsers(ctx context.Context) ([]*User, error)
	UpdateUser(ctx context.Context, u *User) error
	DeactivateUser(ctx context.Context, id string) error
}

// ProductStorage defines product-related database operations.
type ProductStorage interface {
	CreateProduct(ctx context.Context, p *Product) error
	GetProductByID(ctx context.Context, id string) (*Product, error)
	ListProducts(ctx context.Context, opts ListOptions) ([]*Product, int, error)
	UpdateProduct(ctx context.Context, p *Product) error
	DeleteProduct(ctx context.Context, id string) error
}

type Storage interface {
	UserStorage
	ProductStorage
}
