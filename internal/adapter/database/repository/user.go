package repository

import (
	"context"
	"database/sql"
	"errors"

	sq "github.com/Masterminds/squirrel"

	"todotrack/internal/adapter/database"
	"todotrack/internal/core/domain"
	"todotrack/internal/core/port"
)

type UserRepository struct {
	db      *database.DB
	scanner *database.Scanner
}

func NewUserRepository(db *database.DB) port.UserRepository {
	return &UserRepository{
		db:      db,
		scanner: database.NewScanner(),
	}
}

func (ur *UserRepository) GetByID(ctx context.Context, id int) (domain.User, error) {
	return ur.getOne(ctx, sq.Eq{"id": id})
}

// GetByLogin matches the login form's single identifier field against both
// username and email.
func (ur *UserRepository) GetByLogin(ctx context.Context, login string) (domain.User, error) {
	return ur.getOne(ctx, sq.Or{
		sq.Eq{"username": login},
		sq.Eq{"email": login},
	})
}

func (ur *UserRepository) getOne(ctx context.Context, pred interface{}) (domain.User, error) {
	query := ur.db.QueryBuilder.Select("*").
		From("users").
		Where(pred).
		Limit(1)

	sqlStr, args, err := query.ToSql()

	if err != nil {
		return domain.User{}, err
	}

	rows, err := ur.db.QueryContext(ctx, sqlStr, args...)

	if err != nil {
		return domain.User{}, storageErr(err)
	}

	defer rows.Close()

	var user domain.User
	err = ur.scanner.ScanRowToStruct(rows, &user)

	if errors.Is(err, sql.ErrNoRows) {
		return domain.User{}, domain.ErrNotFound
	}

	if err != nil {
		return domain.User{}, storageErr(err)
	}

	return user, nil
}

func (ur *UserRepository) Create(ctx context.Context, user domain.User) (domain.User, error) {
	query, args, err := ur.db.QueryBuilder.Insert("users").
		Columns("uuid", "username", "email", "encrypted_password", "created_at", "updated_at").
		Values(user.UUID.String(), user.Username, user.Email, user.EncryptedPassword, user.CreatedAt, user.UpdatedAt).
		ToSql()

	if err != nil {
		return domain.User{}, err
	}

	result, err := ur.db.ExecContext(ctx, query, args...)

	if err != nil {
		return domain.User{}, storageErr(err)
	}

	if id, err := result.LastInsertId(); err == nil {
		user.ID = int(id)
	}

	return user, nil
}
