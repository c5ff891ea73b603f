package circulation

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"

	"github.com/snnyvrz/shelfshare/apps/circulation-api/internal/logging"
	"github.com/snnyvrz/shelfshare/apps/circulation-api/internal/model"
	"github.com/snnyvrz/shelfshare/apps/circulation-api/internal/repository"
)

// DonationInput is one entry of a donation submission.
type DonationInput struct {
	BookTitle   string
	Author      string
	Category    string
	Num         int
	PublishYear int
	CoverImage  string
	Description string
	Notes       string
	// HasExist is the donor's claim that the library already owns the title.
	HasExist bool
}

type donationStep struct {
	adminOnly bool
	// admit brings the donated copies into the catalog.
	admit  bool
	record func(d *model.DonationRecord, actor Actor, at *time.Time)
}

var donationSteps = map[model.DonationStatus]map[model.DonationStatus]donationStep{
	model.DonationPending: {
		model.DonationConfirmed: {
			adminOnly: true,
			record: func(d *model.DonationRecord, actor Actor, at *time.Time) {
				d.ConfirmDate = at
				d.ConfirmerName = actor.Email
			},
		},
		model.DonationCanceled: {
			adminOnly: true,
			record: func(d *model.DonationRecord, _ Actor, at *time.Time) {
				d.CanceledAt = at
			},
		},
	},
	model.DonationConfirmed: {
		model.DonationSent: {
			record: func(d *model.DonationRecord, _ Actor, at *time.Time) {
				d.SendDate = at
			},
		},
	},
	model.DonationSent: {
		model.DonationReceived: {
			adminOnly: true,
			admit:     true,
			record: func(d *model.DonationRecord, actor Actor, at *time.Time) {
				d.ReceiveDate = at
				d.ReceiverName = actor.Email
			},
		},
	},
}

func (in DonationInput) apply(d *model.DonationRecord) {
	d.BookTitle = strings.TrimSpace(in.BookTitle)
	d.Author = in.Author
	d.Category = in.Category
	d.Num = in.Num
	d.PublishYear = in.PublishYear
	d.CoverImage = in.CoverImage
	d.Description = in.Description
	d.Notes = in.Notes
	d.HasExist = in.HasExist
}

// CreateDonation submits a single entry.
func (s *Service) CreateDonation(ctx context.Context, donorName string, in DonationInput) (*model.DonationRecord, error) {
	recs, err := s.CreateDonations(ctx, donorName, []DonationInput{in})
	if err != nil {
		return nil, err
	}
	return &recs[0], nil
}

// CreateDonations validates a whole submission and stores every entry as a
// pending donation. A single failing entry rejects the submission.
func (s *Service) CreateDonations(ctx context.Context, donorName string, entries []DonationInput) ([]model.DonationRecord, error) {
	donorName = strings.TrimSpace(donorName)
	if donorName == "" {
		return nil, newError(CodeUnauthorizedActor, "a donation needs a donor")
	}
	if len(entries) == 0 {
		return nil, newError(CodeInvalidQuantity, "a donation needs at least one entry")
	}

	var recs []model.DonationRecord
	err := s.atomically(ctx, func(ctx context.Context, st repository.Stores) error {
		if err := validateDonationBatch(ctx, st, entries, uuid.Nil); err != nil {
			return err
		}

		recs = make([]model.DonationRecord, 0, len(entries))
		now := s.now()
		for _, in := range entries {
			rec := model.DonationRecord{
				DonationerName: donorName,
				DonationDate:   now,
				Status:         model.DonationPending,
			}
			in.apply(&rec)
			if err := st.Donations.Insert(ctx, &rec); err != nil {
				return storeError(err, "donation")
			}
			recs = append(recs, rec)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	for _, rec := range recs {
		logging.FromContext(ctx).WithFields(logrus.Fields{
			"donation_id": rec.ID,
			"book":        rec.BookTitle,
			"num":         rec.Num,
			"donor":       rec.DonationerName,
		}).Info("donation created")

		s.publish(ctx, Event{
			Type:      EventDonationCreated,
			RecordID:  rec.ID,
			BookTitle: rec.BookTitle,
			Status:    string(rec.Status),
			Actor:     rec.DonationerName,
		})
	}
	return recs, nil
}

// UpdateDonation lets the donor edit a pending donation. The entry is
// validated again, ignoring the donation itself.
func (s *Service) UpdateDonation(ctx context.Context, actor Actor, id uuid.UUID, in DonationInput) (*model.DonationRecord, error) {
	var updated *model.DonationRecord
	err := s.atomically(ctx, func(ctx context.Context, st repository.Stores) error {
		current, err := st.Donations.GetByID(ctx, id)
		if err != nil {
			return storeError(err, "donation")
		}
		if err := requireSelf(actor, current.DonationerName, "edit this donation"); err != nil {
			return err
		}
		if current.Status != model.DonationPending {
			return newError(CodeInvalidTransition, "donation is %s and can no longer be edited", current.Status)
		}
		if err := validateDonationBatch(ctx, st, []DonationInput{in}, id); err != nil {
			return err
		}

		updated, err = st.Donations.Update(ctx, id, func(d *model.DonationRecord) error {
			if d.Status != model.DonationPending {
				return repository.ErrConflict
			}
			in.apply(d)
			return nil
		})
		return storeError(err, "donation")
	})
	if err != nil {
		return nil, err
	}

	logging.FromContext(ctx).WithFields(logrus.Fields{
		"donation_id": updated.ID,
		"book":        updated.BookTitle,
		"num":         updated.Num,
		"actor":       actor.Email,
	}).Info("donation updated")

	s.publish(ctx, Event{
		Type:      EventDonationUpdated,
		RecordID:  updated.ID,
		BookTitle: updated.BookTitle,
		Status:    string(updated.Status),
		Actor:     actor.Email,
	})
	return updated, nil
}

// TransitionDonation moves a donation to target. Receiving a donation admits
// its copies into the catalog in the same unit of work.
func (s *Service) TransitionDonation(ctx context.Context, id uuid.UUID, target model.DonationStatus, actor Actor) (*model.DonationRecord, error) {
	var (
		updated *model.DonationRecord
		from    model.DonationStatus
	)
	err := s.atomically(ctx, func(ctx context.Context, st repository.Stores) error {
		current, err := st.Donations.GetByID(ctx, id)
		if err != nil {
			return storeError(err, "donation")
		}
		from = current.Status

		step, ok := donationSteps[from][target]
		if !ok {
			return newError(CodeInvalidTransition, "donation cannot move from %s to %s", from, target)
		}
		if step.adminOnly {
			err = requireAdmin(actor, "mark a donation "+string(target))
		} else {
			err = requireSelf(actor, current.DonationerName, "mark this donation "+string(target))
		}
		if err != nil {
			return err
		}

		at := s.stamp()
		updated, err = st.Donations.Update(ctx, id, func(d *model.DonationRecord) error {
			if d.Status != from {
				return repository.ErrConflict
			}
			d.Status = target
			step.record(d, actor, at)
			return nil
		})
		if err != nil {
			return storeError(err, "donation")
		}

		if step.admit {
			if _, err := mergeOrCreate(ctx, st.Books, Admission{
				Title:       updated.BookTitle,
				Author:      updated.Author,
				Category:    updated.Category,
				Num:         updated.Num,
				Description: updated.Description,
				PublishYear: updated.PublishYear,
				CoverImage:  updated.CoverImage,
			}); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logging.FromContext(ctx).WithFields(logrus.Fields{
		"donation_id": updated.ID,
		"from":        from,
		"to":          updated.Status,
		"actor":       actor.Email,
	}).Info("donation transitioned")

	s.publish(ctx, Event{
		Type:      donationEventType(string(updated.Status)),
		RecordID:  updated.ID,
		BookTitle: updated.BookTitle,
		Status:    string(updated.Status),
		Actor:     actor.Email,
	})
	return updated, nil
}

type DonationFilter struct {
	Donor  string
	Status model.DonationStatus
}

// ListDonations returns donations matching f. Non-admins only see their own.
func (s *Service) ListDonations(ctx context.Context, actor Actor, f DonationFilter) ([]model.DonationRecord, error) {
	owner, err := scopeOwner(actor)
	if err != nil {
		return nil, err
	}
	if owner != "" {
		f.Donor = owner
	}

	donations, err := s.uow.Stores().Donations.List(ctx)
	if err != nil {
		return nil, storeError(err, "donations")
	}

	return lo.Filter(donations, func(d model.DonationRecord, _ int) bool {
		if f.Donor != "" && !strings.EqualFold(d.DonationerName, strings.TrimSpace(f.Donor)) {
			return false
		}
		return f.Status == "" || d.Status == f.Status
	}), nil
}

func (s *Service) GetDonation(ctx context.Context, actor Actor, id uuid.UUID) (*model.DonationRecord, error) {
	donation, err := s.uow.Stores().Donations.GetByID(ctx, id)
	if err != nil {
		return nil, storeError(err, "donation")
	}
	if !actor.IsAdmin() && !actor.Is(donation.DonationerName) {
		return nil, newError(CodeUnauthorizedActor, "donation belongs to another donor")
	}
	return donation, nil
}
