package service

import (
	"context"
	"fmt"
	"testing"

	"englishbot/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUserService_EnsureRegistered(t *testing.T) {
	userRepo := new(testutil.MockUserRepository)
	userRepo.On("EnsureUser", mock.Anything, int64(123), "alice").Return(true, nil).Once()

	service := NewUserService(userRepo, testutil.NewTestLogger())

	require.NoError(t, service.EnsureRegistered(context.Background(), 123, "alice"))
	require.NoError(t, service.EnsureRegistered(context.Background(), 123, "alice"))

	userRepo.AssertNumberOfCalls(t, "EnsureUser", 1)
}

func TestUserService_EnsureRegistered_ErrorIsRetried(t *testing.T) {
	userRepo := new(testutil.MockUserRepository)
	userRepo.On("EnsureUser", mock.Anything, int64(123), "alice").Return(false, fmt.Errorf("db error")).Once()
	userRepo.On("EnsureUser", mock.Anything, int64(123), "alice").Return(false, nil).Once()

	service := NewUserService(userRepo, testutil.NewTestLogger())

	assert.Error(t, service.EnsureRegistered(context.Background(), 123, "alice"))
	assert.NoError(t, service.EnsureRegistered(context.Background(), 123, "alice"))

	userRepo.AssertExpectations(t)
}

func TestUserService_KnownUsersAreCapped(t *testing.T) {
	userRepo := new(testutil.MockUserRepository)
	userRepo.On("EnsureUser", mock.Anything, mock.Anything, mock.Anything).Return(false, nil)

	service := NewUserService(userRepo, testutil.NewTestLogger())
	service.maxKnown = 2

	ctx := context.Background()
	for _, id := range []int64{1, 2, 3} {
		require.NoError(t, service.EnsureRegistered(ctx, id, "user"))
	}

	assert.LessOrEqual(t, service.KnownUsers(), 2)

	// Users dropped from the cache are checked against the database again
	require.NoError(t, service.EnsureRegistered(ctx, 1, "user"))
	userRepo.AssertNumberOfCalls(t, "EnsureUser", 4)
}
