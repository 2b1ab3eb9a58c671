package users_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/on-the-ground/tagless_go/users"
	"github.com/stretchr/testify/assert"
)

func TestNewUserInformation_CopiesOrders(t *testing.T) {
	orders := []users.Order{users.NewOrder("u1", "o1")}
	info := users.NewUserInformation("Ada", orders)

	orders[0] = users.NewOrder("u1", "changed")

	assert.Equal(t, users.OrderID("o1"), info.Orders[0].ID)
}

func TestNewUserInformation_NilOrdersBecomeEmpty(t *testing.T) {
	info := users.NewUserInformation("Ada", nil)

	assert.NotNil(t, info.Orders)
	assert.Empty(t, info.Orders)
}

func TestUserNotFound(t *testing.T) {
	err := users.UserNotFound{UserID: "ghost"}
	assert.Equal(t, "user with ID ghost does not exist", err.Error())

	wrapped := fmt.Errorf("fetch: %w", err)
	assert.True(t, errors.Is(wrapped, users.UserNotFound{UserID: "ghost"}))
	assert.False(t, errors.Is(wrapped, users.UserNotFound{UserID: "other"}))

	var nf users.UserNotFound
	assert.True(t, errors.As(wrapped, &nf))
	assert.Equal(t, users.UserID("ghost"), nf.UserID)
}
