package commands

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"eventdeck/application/ports"
	"eventdeck/domain/core/entities"
)

// UserResolver implements upsert-by-name: find the user whose name
// matches exactly, creating the record when none exists. Concurrent
// resolutions of the same name within this process collapse into one
// upstream sequence; the cross-client race (two clients creating the same
// name at once) can only be closed by a uniqueness constraint upstream.
type UserResolver struct {
	store  ports.RemoteStore
	cache  ports.EntityCache
	group  singleflight.Group
	logger *zap.Logger
}

// NewUserResolver creates a new resolver instance
func NewUserResolver(store ports.RemoteStore, cache ports.EntityCache, logger *zap.Logger) *UserResolver {
	return &UserResolver{store: store, cache: cache, logger: logger}
}

// Resolve returns the user record for name, creating it if absent.
// The lookup always hits the store, not the cache: a stale users snapshot
// must not cause a duplicate create.
func (r *UserResolver) Resolve(ctx context.Context, name string) (entities.User, error) {
	// The shared resolution is joined by every concurrent caller, so it
	// must not die with the first caller's context.
	resolveCtx := context.WithoutCancel(ctx)

	ch := r.group.DoChan("user:"+name, func() (interface{}, error) {
		return r.resolve(resolveCtx, name)
	})

	select {
	case <-ctx.Done():
		return entities.User{}, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return entities.User{}, res.Err
		}
		return res.Val.(entities.User), nil
	}
}

func (r *UserResolver) resolve(ctx context.Context, name string) (entities.User, error) {
	users, err := r.store.ListUsers(ctx)
	if err != nil {
		return entities.User{}, err
	}

	if existing, ok := entities.FindUserByName(users, name); ok {
		return existing, nil
	}

	created, err := r.store.CreateUser(ctx, name)
	if err != nil {
		return entities.User{}, err
	}

	r.logger.Info("created user for unknown creator",
		zap.String("name", name),
		zap.Int("userID", created.ID),
	)

	// The cached users collection no longer matches the store.
	r.cache.InvalidateUsers()

	return created, nil
}
