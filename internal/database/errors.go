package database

import (
	"errors"

	"github.com/lib/pq"
)

// SQLSTATE codes the repositories translate into domain outcomes
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
)

// Constraint names declared in migrations/000001_create_chat_tables.up.sql
const (
	ConstraintUsernameUnique   = "users_username_key"
	ConstraintGroupNameUnique  = "groups_name_key"
	ConstraintMembershipUnique = "group_members_group_user_key"
	ConstraintMemberGroupFK    = "group_members_group_id_fkey"
	ConstraintMemberUserFK     = "group_members_user_id_fkey"
	ConstraintMessageGroupFK   = "messages_group_id_fkey"
	ConstraintMessageUserFK    = "messages_user_id_fkey"
)

// IsUniqueViolation reports whether err is a unique constraint failure.
// When constraint is non-empty the violated constraint must match it.
func IsUniqueViolation(err error, constraint string) bool {
	return isViolation(err, codeUniqueViolation, constraint)
}

// IsForeignKeyViolation reports whether err is a foreign key failure.
// When constraint is non-empty the violated constraint must match it.
func IsForeignKeyViolation(err error, constraint string) bool {
	return isViolation(err, codeForeignKeyViolation, constraint)
}

func isViolation(err error, code, constraint string) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}
	if string(pqErr.Code) != code {
		return false
	}
	return constraint == "" || pqErr.Constraint == constraint
}
