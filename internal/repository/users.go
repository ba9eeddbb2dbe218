package repository

import (
	"context"
	"database/sql"
	"errors"

	"ecommerce_back_end/internal/models"

	"github.com/go-sql-driver/mysql"
)

var (
	ErrDuplicateUsername = errors.New("nom d'utilisateur déjà pris")
	ErrUserNotFound      = errors.New("utilisateur introuvable")
)

// Code MySQL ER_DUP_ENTRY
const mysqlDupEntry = 1062

type UserRepository interface {
	Create(ctx context.Context, username, passwordHash string) error
	FindByUsername(ctx context.Context, username string) (*models.User, error)
}

type userRepoImpl struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) UserRepository {
	return &userRepoImpl{db: db}
}

func (r *userRepoImpl) Create(ctx context.Context, username, passwordHash string) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO users (username, password) VALUES (?, ?)",
		username, passwordHash,
	)
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlDupEntry {
		return ErrDuplicateUsername
	}
	return err
}

func (r *userRepoImpl) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	err := r.db.QueryRowContext(ctx,
		"SELECT id, username, password FROM users WHERE username = ?",
		username,
	).Scan(&user.ID, &user.Username, &user.Password)
	if err == sql.ErrNoRows {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}
