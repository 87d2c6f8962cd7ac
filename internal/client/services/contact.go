package services

import (
	"context"
	"slices"

	"github.com/dmitrijs2005/portfolio/internal/common"
	"github.com/dmitrijs2005/portfolio/internal/models"
)

// SendMessage submits the public contact form. It needs no session and does
// not change the container.
func (a *Admin) SendMessage(ctx context.Context, req models.ContactMessageRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	return a.client.SendContactMessage(ctx, req)
}

func (a *Admin) DeleteMessage(ctx context.Context, id models.ID) error {
	return deleteEntity(ctx, a, messages, id, a.client.DeleteMessage)
}

// MarkMessageAsRead flips the read flag locally and returns without waiting
// for the server. The server is told in the background; if that fails the
// flag is flipped back. Use Wait to block until pending updates are done.
func (a *Admin) MarkMessageAsRead(ctx context.Context, id models.ID) error {
	if id.IsZero() {
		return common.ErrMissingID
	}

	var found, changed bool
	gen := a.generation()
	a.apply(gen, func() {
		i := slices.IndexFunc(a.data.messages, func(m models.ContactMessage) bool { return m.ID == id })
		if i < 0 {
			return
		}
		found = true
		if a.data.messages[i].Read {
			return
		}
		a.data.messages = setRead(a.data.messages, i, true)
		changed = true
	})
	if !found {
		return common.ErrorNotFound
	}
	if !changed {
		return nil
	}

	bgCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), a.reconcileTimeout)
	a.bg.Add(1)
	go func() {
		defer a.bg.Done()
		defer cancel()

		if err := a.client.MarkMessageRead(bgCtx, id); err != nil {
			a.log.Warn(bgCtx, "failed to mark message as read, reverting", "id", id, "error", err)
			a.apply(gen, func() {
				if i := slices.IndexFunc(a.data.messages, func(m models.ContactMessage) bool { return m.ID == id }); i >= 0 {
					a.data.messages = setRead(a.data.messages, i, false)
				}
			})
		}
	}()
	return nil
}

func setRead(items []models.ContactMessage, i int, read bool) []models.ContactMessage {
	out := slices.Clone(items)
	out[i].Read = read
	return out
}
