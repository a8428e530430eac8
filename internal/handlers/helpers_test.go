package handlers

import "context"

func authenticatedAs(userID int64) UserIDGetter {
	return func(context.Context) (int64, bool) {
		return userID, true
	}
}

func anonymous(context.Context) (int64, bool) {
	return 0, false
}
