/*
 * Copyright (c) 2025, CampusHQ LLC. (https://campushq.io).
 *
 * CampusHQ LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/campushq/campus/internal/system/config"
)

type RedisStoreTestSuite struct {
	suite.Suite
	mr    *miniredis.Miniredis
	store RemoteStoreInterface
}

func TestRedisStoreSuite(t *testing.T) {
	suite.Run(t, new(RedisStoreTestSuite))
}

func (suite *RedisStoreTestSuite) SetupTest() {
	suite.mr = miniredis.RunT(suite.T())
	client := redis.NewClient(&redis.Options{Addr: suite.mr.Addr()})
	suite.store = newRedisStoreWithClient(client, "campus", 2*time.Second)
}

func (suite *RedisStoreTestSuite) TestIsAvailable() {
	assert.True(suite.T(), suite.store.IsAvailable())
}

func (suite *RedisStoreTestSuite) TestDisabledStoreIsUnavailable() {
	store := NewRedisStore(config.RedisConfig{Enabled: false, Address: "localhost:6379"})
	assert.False(suite.T(), store.IsAvailable())

	_, _, err := store.Get(context.Background(), "school:1:profile")
	assert.ErrorIs(suite.T(), err, ErrRemoteUnavailable)
	assert.ErrorIs(suite.T(), store.Set(context.Background(), "school:1:profile", "{}", time.Minute),
		ErrRemoteUnavailable)
	assert.ErrorIs(suite.T(), store.Delete(context.Background(), "school:1:profile"), ErrRemoteUnavailable)

	_, err = store.DeleteByPattern(context.Background(), "school:1:*")
	assert.ErrorIs(suite.T(), err, ErrRemoteUnavailable)

	_, err = store.TestConnection(context.Background())
	assert.ErrorIs(suite.T(), err, ErrRemoteUnavailable)
}

func (suite *RedisStoreTestSuite) TestStoreWithoutAddressIsUnavailable() {
	store := NewRedisStore(config.RedisConfig{Enabled: true})
	assert.False(suite.T(), store.IsAvailable())
}

func (suite *RedisStoreTestSuite) TestSetAndGet() {
	ctx := context.Background()

	err := suite.store.Set(ctx, "school:1:profile", `{"name":"Northside High"}`, time.Minute)
	assert.NoError(suite.T(), err)

	value, found, err := suite.store.Get(ctx, "school:1:profile")
	assert.NoError(suite.T(), err)
	assert.True(suite.T(), found)
	assert.Equal(suite.T(), `{"name":"Northside High"}`, value)

	// Keys are stored under the application namespace.
	assert.Contains(suite.T(), suite.mr.Keys(), "campus:school:1:profile")
}

func (suite *RedisStoreTestSuite) TestGetMissingKey() {
	value, found, err := suite.store.Get(context.Background(), "school:9:profile")
	assert.NoError(suite.T(), err)
	assert.False(suite.T(), found)
	assert.Empty(suite.T(), value)
}

func (suite *RedisStoreTestSuite) TestTTLExpiry() {
	ctx := context.Background()

	err := suite.store.Set(ctx, "school:1:profile", `{}`, 2*time.Second)
	assert.NoError(suite.T(), err)

	_, found, err := suite.store.Get(ctx, "school:1:profile")
	assert.NoError(suite.T(), err)
	assert.True(suite.T(), found)

	suite.mr.FastForward(3 * time.Second)

	_, found, err = suite.store.Get(ctx, "school:1:profile")
	assert.NoError(suite.T(), err)
	assert.False(suite.T(), found)
}

func (suite *RedisStoreTestSuite) TestDelete() {
	ctx := context.Background()

	assert.NoError(suite.T(), suite.store.Set(ctx, "school:1:profile", `{}`, time.Minute))
	assert.NoError(suite.T(), suite.store.Delete(ctx, "school:1:profile"))

	_, found, err := suite.store.Get(ctx, "school:1:profile")
	assert.NoError(suite.T(), err)
	assert.False(suite.T(), found)
}

func (suite *RedisStoreTestSuite) TestDeleteMissingKeyIsNoop() {
	assert.NoError(suite.T(), suite.store.Delete(context.Background(), "school:9:profile"))
}

func (suite *RedisStoreTestSuite) TestDeleteByPattern() {
	ctx := context.Background()

	assert.NoError(suite.T(), suite.store.Set(ctx, "school:1:profile", `{}`, time.Minute))
	assert.NoError(suite.T(), suite.store.Set(ctx, "school:1:schedule:7", `{}`, time.Minute))
	assert.NoError(suite.T(), suite.store.Set(ctx, "school:2:profile", `{}`, time.Minute))

	deleted, err := suite.store.DeleteByPattern(ctx, "school:1:*")
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 2, deleted)

	_, found, _ := suite.store.Get(ctx, "school:1:profile")
	assert.False(suite.T(), found)
	_, found, _ = suite.store.Get(ctx, "school:1:schedule:7")
	assert.False(suite.T(), found)
	_, found, _ = suite.store.Get(ctx, "school:2:profile")
	assert.True(suite.T(), found)
}

func (suite *RedisStoreTestSuite) TestDeleteByPatternWithoutMatches() {
	deleted, err := suite.store.DeleteByPattern(context.Background(), "school:9:*")
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 0, deleted)
}

func (suite *RedisStoreTestSuite) TestDeleteByWildcardClearsNamespace() {
	ctx := context.Background()

	assert.NoError(suite.T(), suite.store.Set(ctx, "school:1:profile", `{}`, time.Minute))
	assert.NoError(suite.T(), suite.store.Set(ctx, "admin:stats:global", `{}`, time.Minute))

	deleted, err := suite.store.DeleteByPattern(ctx, "*")
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 2, deleted)
	assert.Empty(suite.T(), suite.mr.Keys())
}

func (suite *RedisStoreTestSuite) TestDeleteByPatternRejectsInvalidPatterns() {
	invalidPatterns := []string{
		"",
		"school:1",
		"school:*:profile",
		"*school:1:*",
		"school:1:**",
	}

	for _, pattern := range invalidPatterns {
		_, err := suite.store.DeleteByPattern(context.Background(), pattern)
		assert.ErrorIs(suite.T(), err, ErrInvalidPattern, "pattern: %q", pattern)
	}
}

func (suite *RedisStoreTestSuite) TestNamespaceIsolation() {
	ctx := context.Background()
	otherClient := redis.NewClient(&redis.Options{Addr: suite.mr.Addr()})
	otherStore := newRedisStoreWithClient(otherClient, "other", 2*time.Second)

	assert.NoError(suite.T(), suite.store.Set(ctx, "school:1:profile", `{"ns":"campus"}`, time.Minute))
	assert.NoError(suite.T(), otherStore.Set(ctx, "school:1:profile", `{"ns":"other"}`, time.Minute))

	deleted, err := suite.store.DeleteByPattern(ctx, "*")
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 1, deleted)

	_, found, err := otherStore.Get(ctx, "school:1:profile")
	assert.NoError(suite.T(), err)
	assert.True(suite.T(), found)
}

func (suite *RedisStoreTestSuite) TestTestConnection() {
	latency, err := suite.store.TestConnection(context.Background())
	assert.NoError(suite.T(), err)
	assert.Greater(suite.T(), latency, time.Duration(0))
}

func (suite *RedisStoreTestSuite) TestTestConnectionAfterServerStop() {
	suite.mr.Close()

	_, err := suite.store.TestConnection(context.Background())
	assert.ErrorIs(suite.T(), err, ErrRemoteUnavailable)
}

func (suite *RedisStoreTestSuite) TestErrorsAreWrappedByKind() {
	ctx := context.Background()
	suite.mr.SetError("FORCED")

	_, _, err := suite.store.Get(ctx, "school:1:profile")
	assert.ErrorIs(suite.T(), err, ErrRemoteReadFailed)

	err = suite.store.Set(ctx, "school:1:profile", `{}`, time.Minute)
	assert.ErrorIs(suite.T(), err, ErrRemoteWriteFailed)

	err = suite.store.Delete(ctx, "school:1:profile")
	assert.ErrorIs(suite.T(), err, ErrRemoteWriteFailed)

	_, err = suite.store.DeleteByPattern(ctx, "school:1:*")
	assert.ErrorIs(suite.T(), err, ErrPatternEnumerationFailed)
}
