package design

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/image2code-backend/internal/domain/entity"
	errs "github.com/amirhossein-jamali/image2code-backend/internal/domain/error"
	"github.com/amirhossein-jamali/image2code-backend/mocks/port/core"
	"github.com/amirhossein-jamali/image2code-backend/mocks/port/persistence"
)

var fixedTime = time.Date(2024, 3, 9, 8, 30, 0, 0, time.UTC)

type deps struct {
	designs *persistence.MockDesignRepository
	users   *persistence.MockUserRepository
	cache   *persistence.MockDesignCache
	clock   *core.MockTimeProvider
	logger  *core.MockLogger
}

func newDeps(t *testing.T) *deps {
	d := &deps{
		designs: persistence.NewMockDesignRepository(t),
		users:   persistence.NewMockUserRepository(t),
		cache:   persistence.NewMockDesignCache(t),
		clock:   core.NewMockTimeProvider(t),
		logger:  core.NewMockLogger(t),
	}
	d.clock.EXPECT().Now().Return(fixedTime).Maybe()
	for _, level := range []string{"Debug", "Info", "Warn", "Error"} {
		d.logger.On(level, mock.Anything, mock.Anything).Maybe()
	}
	return d
}

func (d *deps) service(withCache bool) *Service {
	if withCache {
		return NewService(d.designs, d.users, d.cache, d.clock, d.logger).(*Service)
	}
	return NewService(d.designs, d.users, nil, d.clock, d.logger).(*Service)
}

func sampleDesign() *entity.Design {
	return &entity.Design{
		UID:         "d-1",
		UserEmail:   "Owner@Example.com",
		ImageURL:    "https://cdn.example.com/d-1.png",
		Description: "pricing page",
		Model:       "basic",
		Language:    "react-tailwind",
		Code:        json.RawMessage(`{"projectTitle": "Pricing",  "files": {"/App.js": {"code": "x"}}}`),
		Options:     []string{"dark"},
	}
}

func TestService_CreateDesign(t *testing.T) {
	ctx := context.Background()

	t.Run("stores the design and returns code byte for byte", func(t *testing.T) {
		d := newDeps(t)
		stored := map[string]*entity.Design{}
		d.users.EXPECT().GetByEmail(ctx, "owner@example.com").Return(&entity.User{Email: "owner@example.com"}, nil)
		d.designs.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Design")).
			RunAndReturn(func(_ context.Context, design *entity.Design) error {
				copied := *design
				copied.ID = 1
				stored[design.UID] = &copied
				design.ID = 1
				return nil
			})
		d.designs.EXPECT().GetByUID(ctx, "d-1").
			RunAndReturn(func(_ context.Context, uid string) (*entity.Design, error) {
				return stored[uid], nil
			})

		svc := d.service(false)
		input := sampleDesign()
		original := append(json.RawMessage(nil), input.Code...)

		created, err := svc.CreateDesign(ctx, input)
		require.NoError(t, err)
		assert.Equal(t, "owner@example.com", created.UserEmail)
		assert.Equal(t, fixedTime.Format(time.RFC3339), created.CreatedAt)

		fetched, err := svc.GetDesign(ctx, "d-1")
		require.NoError(t, err)
		assert.Equal(t, []byte(original), []byte(fetched.Code))
	})

	t.Run("keeps a caller supplied createdAt", func(t *testing.T) {
		d := newDeps(t)
		d.users.EXPECT().GetByEmail(ctx, "owner@example.com").Return(&entity.User{}, nil)
		d.designs.EXPECT().Create(ctx, mock.Anything).Return(nil)

		input := sampleDesign()
		input.CreatedAt = "3/9/2024"
		created, err := d.service(false).CreateDesign(ctx, input)

		require.NoError(t, err)
		assert.Equal(t, "3/9/2024", created.CreatedAt)
	})

	t.Run("missing required fields are invalid input", func(t *testing.T) {
		mutations := map[string]func(*entity.Design){
			"uid":      func(d *entity.Design) { d.UID = "" },
			"imageUrl": func(d *entity.Design) { d.ImageURL = " " },
			"model":    func(d *entity.Design) { d.Model = "" },
			"code":     func(d *entity.Design) { d.Code = nil },
			"badCode":  func(d *entity.Design) { d.Code = json.RawMessage(`{not json`) },
			"email":    func(d *entity.Design) { d.UserEmail = "" },
		}
		for name, mutate := range mutations {
			t.Run(name, func(t *testing.T) {
				d := newDeps(t)
				input := sampleDesign()
				mutate(input)

				_, err := d.service(false).CreateDesign(ctx, input)

				assert.True(t, errs.IsInvalidInputError(err), "got %v", err)
			})
		}
	})

	t.Run("unknown owner is not found", func(t *testing.T) {
		d := newDeps(t)
		d.users.EXPECT().GetByEmail(ctx, "owner@example.com").Return(nil, errs.ErrUserNotFound)

		_, err := d.service(false).CreateDesign(ctx, sampleDesign())

		assert.ErrorIs(t, err, errs.ErrUserNotFound)
	})

	t.Run("duplicate uid is a conflict", func(t *testing.T) {
		d := newDeps(t)
		d.users.EXPECT().GetByEmail(ctx, "owner@example.com").Return(&entity.User{}, nil)
		d.designs.EXPECT().Create(ctx, mock.Anything).Return(errs.ErrDuplicateDesign)

		_, err := d.service(false).CreateDesign(ctx, sampleDesign())

		assert.ErrorIs(t, err, errs.ErrDuplicateDesign)
	})
}

func TestService_UpdateDesign(t *testing.T) {
	ctx := context.Background()

	t.Run("applies only the provided fields and invalidates the cache", func(t *testing.T) {
		d := newDeps(t)
		existing := sampleDesign()
		d.designs.EXPECT().GetByUID(ctx, "d-1").Return(existing, nil)
		d.designs.EXPECT().Update(ctx, existing).Return(nil)
		d.cache.EXPECT().Invalidate(ctx, "d-1").Return(nil)

		description := "updated"
		updated, err := d.service(true).UpdateDesign(ctx, "d-1", entity.DesignUpdate{
			Code:        json.RawMessage(`{"v":2}`),
			Description: &description,
		})

		require.NoError(t, err)
		assert.Equal(t, `{"v":2}`, string(updated.Code))
		assert.Equal(t, "updated", updated.Description)
		assert.Equal(t, "https://cdn.example.com/d-1.png", updated.ImageURL)
	})

	t.Run("empty update is rejected", func(t *testing.T) {
		d := newDeps(t)

		_, err := d.service(false).UpdateDesign(ctx, "d-1", entity.DesignUpdate{})

		assert.ErrorIs(t, err, errs.ErrInvalidInput)
	})

	t.Run("unknown uid is not found", func(t *testing.T) {
		d := newDeps(t)
		d.designs.EXPECT().GetByUID(ctx, "nope").Return(nil, errs.ErrDesignNotFound)

		url := "https://cdn.example.com/x.png"
		_, err := d.service(false).UpdateDesign(ctx, "nope", entity.DesignUpdate{ImageURL: &url})

		assert.ErrorIs(t, err, errs.ErrDesignNotFound)
	})

	t.Run("cache invalidation failure does not fail the update", func(t *testing.T) {
		d := newDeps(t)
		existing := sampleDesign()
		d.designs.EXPECT().GetByUID(ctx, "d-1").Return(existing, nil)
		d.designs.EXPECT().Update(ctx, existing).Return(nil)
		d.cache.EXPECT().Invalidate(ctx, "d-1").Return(errors.New("redis down"))

		createdAt := "later"
		_, err := d.service(true).UpdateDesign(ctx, "d-1", entity.DesignUpdate{CreatedAt: &createdAt})

		assert.NoError(t, err)
	})
}

func TestService_GetDesign(t *testing.T) {
	ctx := context.Background()

	t.Run("reads through the cache", func(t *testing.T) {
		d := newDeps(t)
		want := sampleDesign()
		d.designs.EXPECT().GetByUID(mock.Anything, "d-1").Return(want, nil)
		d.cache.EXPECT().GetOrLoad(ctx, "d-1", mock.Anything).
			RunAndReturn(func(c context.Context, _ string, load func(context.Context) (*entity.Design, error)) (*entity.Design, error) {
				return load(c)
			})

		got, err := d.service(true).GetDesign(ctx, "d-1")

		require.NoError(t, err)
		assert.Same(t, want, got)
	})

	t.Run("blank uid is invalid", func(t *testing.T) {
		d := newDeps(t)

		_, err := d.service(true).GetDesign(ctx, "  ")

		assert.ErrorIs(t, err, errs.ErrInvalidInput)
	})
}

func TestService_ListAndDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("lists by normalized owner", func(t *testing.T) {
		d := newDeps(t)
		d.designs.EXPECT().ListByOwner(ctx, "owner@example.com").Return([]*entity.Design{sampleDesign()}, nil)

		list, err := d.service(false).ListDesigns(ctx, "OWNER@example.com")

		require.NoError(t, err)
		assert.Len(t, list, 1)
	})

	t.Run("delete invalidates the cache", func(t *testing.T) {
		d := newDeps(t)
		d.designs.EXPECT().Delete(ctx, "d-1").Return(nil)
		d.cache.EXPECT().Invalidate(ctx, "d-1").Return(nil)

		assert.NoError(t, d.service(true).DeleteDesign(ctx, "d-1"))
	})

	t.Run("delete of unknown uid is not found", func(t *testing.T) {
		d := newDeps(t)
		d.designs.EXPECT().Delete(ctx, "nope").Return(errs.ErrDesignNotFound)

		err := d.service(true).DeleteDesign(ctx, "nope")

		assert.ErrorIs(t, err, errs.ErrDesignNotFound)
		d.cache.AssertNotCalled(t, "Invalidate", mock.Anything, mock.Anything)
	})
}
