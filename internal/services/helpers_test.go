package services_test

import (
	"context"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-bookshelf/internal/services"
)

// expectTx makes the transactor run fn inline.
func expectTx(tx *services.MockTransactor) *gomock.Call {
	return tx.EXPECT().
		Do(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(ctx context.Context) error) error {
			return fn(ctx)
		})
}

// expectAfterCommit makes the transactor run the callback at once, as it does
// when no transaction is pending.
func expectAfterCommit(tx *services.MockTransactor) *gomock.Call {
	return tx.EXPECT().
		AfterCommit(gomock.Any(), gomock.Any()).
		Do(func(_ context.Context, fn func()) { fn() })
}
