package announcement

import (
	"context"
	"sort"
	"time"

	"github.com/officeflow/officeflow-backend-go/internal/authz"
	"github.com/officeflow/officeflow-backend-go/internal/domain/announcement"
	"github.com/officeflow/officeflow-backend-go/internal/domain/session"
	"github.com/officeflow/officeflow-backend-go/internal/pkg/validator"
	"github.com/officeflow/officeflow-backend-go/internal/store"
	"github.com/officeflow/officeflow-backend-go/internal/store/codec"
)

type PostRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

func (r *PostRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Title) {
		errs = append(errs, validator.ValidationError{
			Field:   "title",
			Message: "title is required",
		})
	}
	if validator.IsEmpty(r.Content) {
		errs = append(errs, validator.ValidationError{
			Field:   "content",
			Message: "content is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type Service struct {
	store store.Store
	cache *store.Cache
	now   func() time.Time
}

func NewService(st store.Store, cache *store.Cache) *Service {
	return &Service{store: st, cache: cache, now: time.Now}
}

// List returns announcements, newest first. Visible to every signed-in
// role.
func (s *Service) List(sess session.Session) []announcement.Announcement {
	out := codec.Announcements(s.cache.Get(store.CollectionAnnouncements))
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out
}

// Post creates an announcement. Admin only; author and date come from
// the session and clock, never the payload. Announcements are immutable
// once posted.
func (s *Service) Post(ctx context.Context, sess session.Session, req PostRequest) (string, error) {
	if !sess.Resolved() || !authz.CanPostAnnouncements(sess.Role) {
		return "", authz.ErrForbidden
	}
	if err := req.Validate(); err != nil {
		return "", err
	}

	return s.store.Create(ctx, store.CollectionAnnouncements, map[string]any{
		"title":   req.Title,
		"content": req.Content,
		"date":    codec.Timestamp(s.now()),
		"author":  sess.Name(),
	})
}
