package tagservice

import (
	"context"
	"toDoBoard/internal/domain/ids"
	"toDoBoard/internal/domain/tag/tagerrors"
	"toDoBoard/internal/domain/tag/tagmodels"

	"github.com/go-playground/validator/v10"
)

type TagStorage interface {
	LoadTags(ctx context.Context) ([]tagmodels.Tag, error)
	SaveTags(ctx context.Context, tags []tagmodels.Tag) error
}

type TagService struct {
	db       TagStorage
	valid    *validator.Validate
	idPolicy ids.Policy
}

func NewTagService(db TagStorage, idPolicy ids.Policy) *TagService {
	return &TagService{db: db, valid: validator.New(), idPolicy: idPolicy}
}

func (ts *TagService) GetAllTags(ctx context.Context) ([]tagmodels.Tag, error) {
	return ts.db.LoadTags(ctx)
}

func (ts *TagService) GetTagByID(ctx context.Context, tagID int) (tagmodels.Tag, error) {
	tags, err := ts.db.LoadTags(ctx)
	if err != nil {
		return tagmodels.Tag{}, err
	}

	for _, tag := range tags {
		if tag.ID == tagID {
			return tag, nil
		}
	}
	return tagmodels.Tag{}, tagerrors.ErrTagNotFound
}

func (ts *TagService) CreateTag(ctx context.Context, req tagmodels.TagRequest) (tagmodels.Tag, error) {
	if err := ts.valid.Struct(req); err != nil {
		return tagmodels.Tag{}, tagerrors.ErrNameRequired
	}

	tags, err := ts.db.LoadTags(ctx)
	if err != nil {
		return tagmodels.Tag{}, err
	}

	existing := make([]int, 0, len(tags))
	for _, tag := range tags {
		existing = append(existing, tag.ID)
	}

	tag := tagmodels.Tag{
		ID:   ts.idPolicy.Next(existing),
		Name: req.Name,
	}

	if err = ts.db.SaveTags(ctx, append(tags, tag)); err != nil {
		return tagmodels.Tag{}, err
	}
	return tag, nil
}

func (ts *TagService) UpdateTag(ctx context.Context, tagID int, req tagmodels.TagUpdateRequest) (tagmodels.Tag, error) {
	tags, err := ts.db.LoadTags(ctx)
	if err != nil {
		return tagmodels.Tag{}, err
	}

	for i := range tags {
		if tags[i].ID != tagID {
			continue
		}

		tagmodels.MergeTag(&tags[i], req)
		if err = ts.db.SaveTags(ctx, tags); err != nil {
			return tagmodels.Tag{}, err
		}
		return tags[i], nil
	}

	return tagmodels.Tag{}, tagerrors.ErrTagNotFound
}

// DeleteTag не проверяет задачи, ссылающиеся на тег, и молча пропускает отсутствующий id.
func (ts *TagService) DeleteTag(ctx context.Context, tagID int) error {
	tags, err := ts.db.LoadTags(ctx)
	if err != nil {
		return err
	}

	left := make([]tagmodels.Tag, 0, len(tags))
	for _, tag := range tags {
		if tag.ID != tagID {
			left = append(left, tag)
		}
	}

	return ts.db.SaveTags(ctx, left)
}
