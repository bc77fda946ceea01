// Package services contains server-side business logic. Each service reads
// or mutates one table through the repository manager and reports
// failures with the sentinel errors from internal/common.
package services

import (
	"context"
	"errors"
	"time"

	"github.com/dmitrijs2005/saferoom/internal/common"
	"github.com/dmitrijs2005/saferoom/internal/server/repositories/users"
)

// Clock returns the current local time. Tests swap it for a fixed one.
type Clock func() time.Time

// resolveEmail looks up the email of userID, falling back to
// common.UnknownEmail when the user row is gone.
func resolveEmail(ctx context.Context, repo users.Repository, userID string) (string, error) {
	user, err := repo.GetUserByLogin(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.UnknownEmail, nil
		}
		return "", err
	}
	return user.Email, nil
}
