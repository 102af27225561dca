// leads.go
//
// Admissions desk: application intake, employee task workflow and lead follow-up service
// Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC
//
// This file is part of admissions-desk.
// admissions-desk is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// admissions-desk is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with admissions-desk.
// If not, see <https://www.gnu.org/licenses/>.
// Additional terms under GNU AGPL version 3 section 7:
// a) The reasonable legal notice of original copyright and author attribution must be preserved
//    by including the string: "Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC"
//    in this material, copies, or source code of derived works.

package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/localnerve/admissions-desk/internal/models"
	"github.com/localnerve/admissions-desk/internal/types"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Conversation status values
const (
	ConversationNew           = "new"
	ConversationContacted     = "contacted"
	ConversationFollowUp      = "follow_up"
	ConversationInterested    = "interested"
	ConversationNotInterested = "not_interested"
	ConversationClosed        = "closed"
)

var conversationStatuses = map[string]struct{}{
	ConversationNew:           {},
	ConversationContacted:     {},
	ConversationFollowUp:      {},
	ConversationInterested:    {},
	ConversationNotInterested: {},
	ConversationClosed:        {},
}

// NormalizeConversationStatus maps raw input onto the allowlist; unknown values become "new"
func NormalizeConversationStatus(raw string) string {
	status := strings.ToLower(strings.TrimSpace(raw))
	if _, ok := conversationStatuses[status]; ok {
		return status
	}
	return ConversationNew
}

// dateTimeLayouts are the accepted reminder and contact timestamp formats
var dateTimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// parseDateTime parses an optional timestamp. nil or blank clears the field.
func parseDateTime(field string, raw *string) (*time.Time, error) {
	if raw == nil {
		return nil, nil
	}
	value := strings.TrimSpace(*raw)
	if value == "" {
		return nil, nil
	}
	for _, layout := range dateTimeLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			t = t.UTC()
			return &t, nil
		}
	}
	return nil, types.NewValidationError(field, "invalid datetime %q", value)
}

// ConversationInput is the body of a conversation upsert. Absent fields are cleared.
type ConversationInput struct {
	LookingFor         *string           `json:"lookingFor"`
	ConversationStatus types.LooseString `json:"conversationStatus"`
	Notes              *string           `json:"notes"`
	ReminderAt         *string           `json:"reminderAt"`
	ReminderDone       types.FlexBool    `json:"reminderDone"`
	LastContactedAt    *string           `json:"lastContactedAt"`
}

// ConversationView is a conversation joined with the lead's contact fields
type ConversationView struct {
	models.LeadConversation
	UserName  *string `json:"name"`
	UserEmail *string `json:"email"`
	UserPhone *string `json:"phone"`
	UserCity  *string `json:"city"`
}

// Leads is the one-row-per-user CRM conversation store
type Leads struct {
	DB    *gorm.DB
	Clock Clock
}

func (s *Leads) view(ctx context.Context) *gorm.DB {
	return s.DB.WithContext(ctx).
		Table("lead_conversations lc").
		Select("lc.*, u.name AS user_name, u.email AS user_email, u.phone AS user_phone, u.city AS user_city").
		Joins("JOIN users u ON u.id = lc.user_id")
}

// List returns every conversation, most recently updated first
func (s *Leads) List(ctx context.Context) ([]ConversationView, error) {
	views := make([]ConversationView, 0)
	err := s.view(ctx).
		Order("lc.updated_at DESC").
		Order("lc.id DESC").
		Scan(&views).Error
	if err != nil {
		return nil, fmt.Errorf("list conversations: %w", err)
	}
	return views, nil
}

// Get returns the conversation for userID
func (s *Leads) Get(ctx context.Context, userID uint64) (*ConversationView, error) {
	if userID == 0 {
		return nil, types.NewValidationError("userId", "must be a positive integer")
	}
	var views []ConversationView
	err := s.view(ctx).
		Where("lc.user_id = ?", userID).
		Limit(1).
		Scan(&views).Error
	if err != nil {
		return nil, fmt.Errorf("load conversation for user %d: %w", userID, err)
	}
	if len(views) == 0 {
		return nil, types.NewNotFoundError("conversation", userID)
	}
	return &views[0], nil
}

// Upsert creates or replaces the conversation for userID
func (s *Leads) Upsert(ctx context.Context, userID uint64, in ConversationInput) (*ConversationView, error) {
	if userID == 0 {
		return nil, types.NewValidationError("userId", "must be a positive integer")
	}
	reminderAt, err := parseDateTime("reminderAt", in.ReminderAt)
	if err != nil {
		return nil, err
	}
	lastContactedAt, err := parseDateTime("lastContactedAt", in.LastContactedAt)
	if err != nil {
		return nil, err
	}

	db := s.DB.WithContext(ctx)

	var user models.User
	if err := db.Select("id").Take(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, types.NewNotFoundError("user", userID)
		}
		return nil, fmt.Errorf("load user %d: %w", userID, err)
	}

	now := s.Clock.now()
	row := models.LeadConversation{
		UserID:             userID,
		LookingFor:         trimToNil(in.LookingFor),
		ConversationStatus: NormalizeConversationStatus(in.ConversationStatus.String()),
		Notes:              trimToNil(in.Notes),
		ReminderAt:         reminderAt,
		ReminderDone:       in.ReminderDone.Bool(),
		LastContactedAt:    lastContactedAt,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	err = db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"looking_for",
			"conversation_status",
			"notes",
			"reminder_at",
			"reminder_done",
			"last_contacted_at",
			"updated_at",
		}),
	}).Create(&row).Error
	if err != nil {
		return nil, fmt.Errorf("upsert conversation for user %d: %w", userID, err)
	}

	return s.Get(ctx, userID)
}
