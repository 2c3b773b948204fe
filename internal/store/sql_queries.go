package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/GeorgesCH/SSDTeamProject/models"
)

const (
	createUser = `INSERT INTO users (first_name, last_name, email, password_hash, role, key)
	VALUES ($1, $2, $3, $4, $5, $6)
	RETURNING user_id, first_name, last_name, email, password_hash, role, key, created_at;`

	findUserByEmail = `SELECT user_id, first_name, last_name, email, password_hash, role, key, created_at
	FROM users
	WHERE email = $1;`

	getAllUsers = `SELECT user_id, first_name, last_name, email, password_hash, role, key, created_at
	FROM users
	ORDER BY user_id;`

	getUsersByRole = `SELECT user_id, first_name, last_name, email, password_hash, role, key, created_at
	FROM users
	WHERE role = $1
	ORDER BY user_id;`

	deleteUserRecords  = `DELETE FROM records WHERE user_id = $1;`
	deleteUserMessages = `DELETE FROM posts WHERE user_id = $1 OR recipient = $2;`
	deleteUser         = `DELETE FROM users WHERE user_id = $1;`

	createRecord = `INSERT INTO records (user_id, kind, record)
	VALUES ($1, $2, $3)
	RETURNING id, user_id, kind, record, date_posted;`

	getRecordsByOwner = `SELECT id, user_id, kind, record, date_posted
	FROM records
	WHERE user_id = $1 AND kind = $2
	ORDER BY date_posted DESC;`

	createMessage = `INSERT INTO posts (user_id, recipient, title, content)
	VALUES ($1, $2, $3, $4)
	RETURNING id, user_id, recipient, title, content, date_posted;`

	getMessagesForUser = `SELECT p.id, p.user_id, u.email, p.recipient, p.title, p.content, p.date_posted
	FROM posts p
	JOIN users u ON u.user_id = p.user_id
	WHERE p.user_id = $1 OR p.recipient = $2
	ORDER BY p.date_posted DESC;`
)

var messageColumns = []string{
	"p.id", "p.user_id", "u.email", "p.recipient", "p.title", "p.content", "p.date_posted",
}

// buildConversationQuery builds the two-sided conversation query: messages
// sent by user to other plus messages sent by other to user, newest first.
func buildConversationQuery(user, other models.User) (string, []any, error) {
	query, args, err := sq.
		Select(messageColumns...).
		From("posts p").
		Join("users u ON u.user_id = p.user_id").
		Where(sq.Or{
			sq.And{sq.Eq{"p.user_id": user.UserID}, sq.Eq{"p.recipient": other.Email}},
			sq.And{sq.Eq{"p.user_id": other.UserID}, sq.Eq{"p.recipient": user.Email}},
		}).
		OrderBy("p.date_posted DESC").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildUpdateUserQuery builds a partial UPDATE for the non-nil fields of
// update, returning all columns so the caller receives the stored state.
func buildUpdateUserQuery(userID int64, update models.UserUpdate) (string, []any, error) {
	if update.Empty() {
		return "", nil, ErrNothingToUpdate
	}

	builder := sq.Update("users")

	if update.Email != nil {
		builder = builder.Set("email", *update.Email)
	}
	if update.FirstName != nil {
		builder = builder.Set("first_name", *update.FirstName)
	}
	if update.LastName != nil {
		builder = builder.Set("last_name", *update.LastName)
	}
	if update.Role != nil {
		builder = builder.Set("role", string(*update.Role))
	}
	if update.PasswordHash != nil {
		builder = builder.Set("password_hash", *update.PasswordHash)
	}

	query, args, err := builder.
		Where(sq.Eq{"user_id": userID}).
		Suffix("RETURNING user_id, first_name, last_name, email, password_hash, role, key, created_at").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
